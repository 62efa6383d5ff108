package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Loader provides configuration loading capabilities.
type Loader interface {
	// Load loads configuration from file and environment variables.
	// Priority: defaults → config file → environment variables (env wins)
	Load() (*Config, error)
}

type loader struct {
	rootDir string
}

// NewLoader creates a new configuration loader for the given root directory.
func NewLoader(rootDir string) Loader {
	return &loader{
		rootDir: rootDir,
	}
}

// Load loads configuration with the following priority (highest to lowest):
// 1. Environment variables (FWKGEN_*)
// 2. Config file (.fwkgen.yaml in the root directory, then the home directory)
// 3. Default values
func (l *loader) Load() (*Config, error) {
	v := newViper()

	v.SetConfigName(".fwkgen")
	v.SetConfigType("yaml")
	v.AddConfigPath(l.rootDir)
	// Fall back to the user-level config when the project has none
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}

	// Try to read config file
	if err := v.ReadInConfig(); err != nil {
		// Config file not found is acceptable - we'll use defaults + env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return unmarshalAndValidate(v)
}

// LoadConfigFile loads configuration from an explicit file path,
// bypassing the search paths. The file must exist.
func LoadConfigFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return unmarshalAndValidate(v)
}

// newViper returns a viper instance with env bindings and defaults set.
func newViper() *viper.Viper {
	v := viper.New()

	// Enable environment variable overrides
	v.SetEnvPrefix("FWKGEN")
	v.AutomaticEnv()
	// Replace . with _ in env var names (e.g., FWKGEN_FRAMEWORK_NAME)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Bind environment variables to config keys
	v.BindEnv("framework.name")
	v.BindEnv("framework.info_plist")
	v.BindEnv("paths.headers")
	v.BindEnv("paths.sources")
	v.BindEnv("output.dir")
	v.BindEnv("watch.debounce_ms")

	setDefaults(v)

	return v
}

func unmarshalAndValidate(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setDefaults configures viper with default values.
func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("framework.name", defaults.Framework.Name)
	v.SetDefault("framework.configurations", defaults.Framework.Configurations)
	v.SetDefault("framework.info_plist", defaults.Framework.InfoPlist)

	v.SetDefault("paths.headers", defaults.Paths.Headers)
	v.SetDefault("paths.sources", defaults.Paths.Sources)
	v.SetDefault("paths.header_patterns", defaults.Paths.HeaderPatterns)
	v.SetDefault("paths.source_patterns", defaults.Paths.SourcePatterns)
	v.SetDefault("paths.ignore", defaults.Paths.Ignore)

	v.SetDefault("output.dir", defaults.Output.Dir)

	v.SetDefault("watch.debounce_ms", defaults.Watch.DebounceMS)
}

// LoadConfig is a convenience function that creates a loader and loads config.
// It uses the current working directory as the root.
func LoadConfig() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return NewLoader(wd).Load()
}

// LoadConfigFromDir loads configuration from a specific directory.
func LoadConfigFromDir(rootDir string) (*Config, error) {
	return NewLoader(rootDir).Load()
}
