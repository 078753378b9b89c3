// Package config provides configuration loading and management.
package config

// DefaultPackageManager is used when no package manager is configured.
const DefaultPackageManager = "npm"

// Config holds the extsetup configuration.
type Config struct {
	// PackageManager is the dependency tool invoked for install/upgrade
	// (npm, pnpm, or yarn).
	PackageManager string `mapstructure:"packageManager" yaml:"packageManager"`

	// RequireClean aborts the run when the working tree has uncommitted
	// changes. When false (the default) a dirty tree only warns.
	RequireClean bool `mapstructure:"requireClean" yaml:"requireClean"`

	// Log holds logging configuration.
	Log LogSettings `mapstructure:"log" yaml:"log"`
}

// LogSettings holds logging configuration.
type LogSettings struct {
	// Timestamps controls timestamp reporting; nil means default (off).
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		PackageManager: DefaultPackageManager,
	}
}

// WithDefaults fills unset fields with defaults.
func (c *Config) WithDefaults() *Config {
	if c.PackageManager == "" {
		c.PackageManager = DefaultPackageManager
	}
	return c
}

// InstallArgs returns the dependency-install command arguments for the
// configured package manager.
func (c *Config) InstallArgs() []string {
	return []string{"install"}
}

// UpdateArgs returns the dependency-upgrade command arguments for the
// configured package manager.
func (c *Config) UpdateArgs() []string {
	switch c.PackageManager {
	case "pnpm":
		return []string{"update", "--latest"}
	case "yarn":
		return []string{"upgrade", "--latest"}
	default:
		return []string{"update"}
	}
}
