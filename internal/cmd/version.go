package cmd

import (
	"github.com/spf13/cobra"

	"github.com/extstrap/cli/internal/output"
	"github.com/extstrap/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			output.Println(version.GetInfo().String())
		},
	}
}
