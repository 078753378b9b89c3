// Package execx runs external commands and captures their output.
package execx

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	xerrors "github.com/extstrap/cli/internal/errors"
)

// Runner runs an external command to completion and returns its captured
// output. Implementations are synchronous; a Runner never runs two commands
// concurrently on behalf of the same caller.
type Runner interface {
	// Run executes name with args in dir (empty dir means the current
	// directory) and returns trimmed combined output. A non-zero exit
	// results in an error wrapping ErrExternal.
	Run(ctx context.Context, dir, name string, args ...string) (string, error)
}

// ExecRunner runs commands via os/exec.
type ExecRunner struct{}

// NewExecRunner creates a Runner backed by os/exec.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) (string, error) {
	bin, err := exec.LookPath(name)
	if err != nil {
		return "", xerrors.NewNotFoundError(
			fmt.Sprintf("%s not found in PATH", name), "",
			fmt.Sprintf("Install %s and re-run.", name))
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir

	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	if err := cmd.Run(); err != nil {
		output := strings.TrimSpace(buf.String())
		ctxMap := map[string]string{
			"command": name + " " + strings.Join(args, " "),
		}
		if output != "" {
			ctxMap["output"] = output
		}
		if exitErr, ok := err.(*exec.ExitError); ok {
			return output, xerrors.NewExternalError(
				fmt.Sprintf("%s exited with status %d", name, exitErr.ExitCode()), ctxMap)
		}
		return output, fmt.Errorf("executing %s: %w", name, err)
	}

	return strings.TrimSpace(buf.String()), nil
}
