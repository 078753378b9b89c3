package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/extstrap/cli/internal/config"
	"github.com/extstrap/cli/internal/output"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage extsetup configuration",
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigVetCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configFlag
			if path == "" {
				var err error
				path, err = config.GetConfigFile()
				if err != nil {
					return err
				}
			}
			if err := config.WriteDefault(path); err != nil {
				return err
			}
			output.Println(output.FormatCheckmark("Wrote " + output.StyleNoun.Render(path)))
			return nil
		},
	}
}

func newConfigVetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Vet(configFlag)
			if err != nil {
				return err
			}
			output.Println(output.FormatCheckmark(fmt.Sprintf(
				"Config valid (packageManager: %s, requireClean: %t)",
				cfg.PackageManager, cfg.RequireClean)))
			return nil
		},
	}
}
