package execx

import (
	"context"
	"fmt"
	"strings"
)

// FakeRunner is a scripted Runner for tests. Outputs are keyed by the full
// command line ("git config user.name"); unscripted commands fail.
type FakeRunner struct {
	// Outputs maps command lines to canned output.
	Outputs map[string]string

	// Errors maps command lines to errors, taking precedence over Outputs.
	Errors map[string]error

	// Calls records every command line in invocation order.
	Calls []string
}

// NewFakeRunner creates an empty FakeRunner.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{
		Outputs: make(map[string]string),
		Errors:  make(map[string]error),
	}
}

// Run implements Runner.
func (r *FakeRunner) Run(_ context.Context, _ string, name string, args ...string) (string, error) {
	line := strings.TrimSpace(name + " " + strings.Join(args, " "))
	r.Calls = append(r.Calls, line)

	if err, ok := r.Errors[line]; ok {
		return "", err
	}
	if out, ok := r.Outputs[line]; ok {
		return out, nil
	}
	return "", fmt.Errorf("unscripted command: %s", line)
}
