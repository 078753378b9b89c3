// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/extstrap/cli/internal/config"
	"github.com/extstrap/cli/internal/output"
)

var (
	// Global flags
	configFlag         string
	packageManagerFlag string
	requireCleanFlag   bool
	verboseFlag        bool
	timestampsFlag     bool

	// Resolved configuration (loaded during PersistentPreRunE)
	toolConfig *config.Config
)

// NewRootCmd creates the root command for the extsetup CLI.
// Running it with no arguments starts the setup flow in the current
// directory.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "extsetup",
		Short: "Customize a cloned extension boilerplate",
		Long: `extsetup interactively customizes a freshly cloned extension boilerplate:
it prompts for project metadata, rewrites package.json, resets the
changelog, updates the license, optionally installs or upgrades
dependencies, and commits the result.

Run it with no arguments inside the cloned repository.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
		RunE: runSetup,
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: EXTSETUP_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", false, "Show timestamps in log output")
	rootCmd.Flags().StringVar(&packageManagerFlag, "package-manager", "", "Package manager to use: npm, pnpm, yarn (env: EXTSETUP_PACKAGE_MANAGER)")
	rootCmd.Flags().BoolVar(&requireCleanFlag, "require-clean", false, "Abort when the working tree has uncommitted changes")

	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration.
func initializeGlobals(cmd *cobra.Command) error {
	loadedConfig, err := config.NewLoader().Load(configFlag)
	if err != nil {
		return err
	}

	// Flags take precedence over env and file values.
	if packageManagerFlag != "" {
		loadedConfig.PackageManager = packageManagerFlag
	}
	if cmd.Flags().Changed("require-clean") {
		loadedConfig.RequireClean = requireCleanFlag
	}

	toolConfig = loadedConfig

	logCfg := output.LogConfig{
		Verbose: verboseFlag,
	}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if loadedConfig.Log.Timestamps != nil {
		logCfg.Timestamps = loadedConfig.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	if verboseFlag {
		output.Debug("initializing CLI",
			"config", configFlag,
			"packageManager", loadedConfig.PackageManager,
			"requireClean", loadedConfig.RequireClean,
		)
	}

	return nil
}

// GetConfig returns the loaded tool configuration.
func GetConfig() *config.Config {
	return toolConfig
}
