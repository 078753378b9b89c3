package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	xerrors "github.com/extstrap/cli/internal/errors"
	"github.com/extstrap/cli/internal/execx"
	"github.com/extstrap/cli/internal/output"
	"github.com/extstrap/cli/internal/prompt"
	"github.com/extstrap/cli/internal/setup"
)

// helpLinks are shown when the user cancels before choosing whether to
// install dependencies, so the manual follow-up steps are still visible.
var helpLinks = [][2]string{
	{"Install dependencies", "https://docs.npmjs.com/cli/commands/npm-install"},
	{"Extension manifest reference", "https://code.visualstudio.com/api/references/extension-manifest"},
}

func runSetup(cmd *cobra.Command, args []string) error {
	sc := &setup.Context{
		Dir:    "",
		Config: GetConfig(),
		Runner: execx.NewExecRunner(),
		Asker:  prompt.NewHuhAsker(),
	}

	err := setup.Run(cmd.Context(), sc)
	if err == nil {
		return nil
	}

	// Cancellation is a normal outcome: show a short notice (plus help
	// links when the flow ended early) and exit successfully.
	var cancelled *prompt.Cancellation
	if errors.As(err, &cancelled) {
		output.Println("")
		output.Println(output.StyleDim.Render("Setup cancelled. No files were changed."))
		if cancelled.ShowHelp {
			for _, link := range helpLinks {
				output.Println(output.FormatLink(link[0], link[1]))
			}
		}
		return nil
	}

	output.Error("setup failed", "error", err)
	return &xerrors.ExitError{Err: err, Code: ExitCodeFromError(err), Printed: true}
}
