package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for Config System:
// - Default() returns valid configuration with all expected defaults
// - LoadConfig() uses defaults when no config file exists
// - LoadConfig() loads from .fwkgen.yaml when present
// - LoadConfig() merges partial config files with defaults
// - Environment variables override config file values
// - LoadConfig() returns error for malformed YAML
// - LoadConfig() returns error for invalid configuration values
// - Validate() accepts valid configuration
// - Validate() rejects names that cannot appear in a project file
// - Validate() rejects configuration lists that are not a distinct pair
// - Validate() rejects empty discovery patterns
// - Validate() rejects negative debounce intervals
// - Validate() returns multiple errors for multiple invalid fields
// - SourcesDir() falls back to the headers directory

func TestDefault_ReturnsValidConfiguration(t *testing.T) {
	cfg := Default()

	require.NotNil(t, cfg)

	// Verify framework defaults
	assert.Empty(t, cfg.Framework.Name)
	assert.Equal(t, []string{"Debug", "Release"}, cfg.Framework.Configurations)
	assert.Empty(t, cfg.Framework.InfoPlist)

	// Verify discovery defaults
	assert.Equal(t, ".", cfg.Paths.Headers)
	assert.Equal(t, []string{"*.h"}, cfg.Paths.HeaderPatterns)
	assert.Equal(t, []string{"**/*.m"}, cfg.Paths.SourcePatterns)
	assert.NotEmpty(t, cfg.Paths.Ignore)

	// Verify output and watch defaults
	assert.Equal(t, ".", cfg.Output.Dir)
	assert.Equal(t, 500, cfg.Watch.DebounceMS)

	// Verify default config passes validation
	err := Validate(cfg)
	assert.NoError(t, err)
}

func TestLoadConfig_UsesDefaultsWhenNoConfigFile(t *testing.T) {
	tempDir := t.TempDir()

	loader := NewLoader(tempDir)
	cfg, err := loader.Load()

	require.NoError(t, err)
	require.NotNil(t, cfg)

	expected := Default()
	assert.Equal(t, expected.Framework.Configurations, cfg.Framework.Configurations)
	assert.Equal(t, expected.Paths.HeaderPatterns, cfg.Paths.HeaderPatterns)
	assert.Equal(t, expected.Watch.DebounceMS, cfg.Watch.DebounceMS)
}

func TestLoadConfig_LoadsFromConfigFile(t *testing.T) {
	tempDir := t.TempDir()

	configContent := `
framework:
  name: NetworkKit
  configurations: ["Dev", "Prod"]
  info_plist: Support/Info.plist

paths:
  headers: include
  sources: src
  header_patterns:
    - "**/*.h"
  source_patterns:
    - "**/*.m"
    - "**/*.mm"
  ignore:
    - "vendor/**"

output:
  dir: build

watch:
  debounce_ms: 250
`

	configPath := filepath.Join(tempDir, ".fwkgen.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	loader := NewLoader(tempDir)
	cfg, err := loader.Load()

	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "NetworkKit", cfg.Framework.Name)
	assert.Equal(t, []string{"Dev", "Prod"}, cfg.Framework.Configurations)
	assert.Equal(t, "Support/Info.plist", cfg.Framework.InfoPlist)

	assert.Equal(t, "include", cfg.Paths.Headers)
	assert.Equal(t, "src", cfg.Paths.Sources)
	assert.Equal(t, []string{"**/*.h"}, cfg.Paths.HeaderPatterns)
	assert.Equal(t, []string{"**/*.m", "**/*.mm"}, cfg.Paths.SourcePatterns)
	assert.Equal(t, []string{"vendor/**"}, cfg.Paths.Ignore)

	assert.Equal(t, "build", cfg.Output.Dir)
	assert.Equal(t, 250, cfg.Watch.DebounceMS)
}

func TestLoadConfig_MergesConfigWithDefaults(t *testing.T) {
	tempDir := t.TempDir()

	// Only override the name, rest should come from defaults
	configContent := `
framework:
  name: AudioKit
`

	configPath := filepath.Join(tempDir, ".fwkgen.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	loader := NewLoader(tempDir)
	cfg, err := loader.Load()

	require.NoError(t, err)

	assert.Equal(t, "AudioKit", cfg.Framework.Name)
	assert.Equal(t, []string{"Debug", "Release"}, cfg.Framework.Configurations)
	assert.Equal(t, []string{"*.h"}, cfg.Paths.HeaderPatterns)
	assert.Equal(t, 500, cfg.Watch.DebounceMS)
}

func TestLoadConfig_EnvironmentVariablesOverrideConfigFile(t *testing.T) {
	// Note: Cannot use t.Parallel() with t.Setenv()

	tempDir := t.TempDir()

	configContent := `
framework:
  name: FileKit

paths:
  headers: include
`

	configPath := filepath.Join(tempDir, ".fwkgen.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	t.Setenv("FWKGEN_FRAMEWORK_NAME", "EnvKit")
	t.Setenv("FWKGEN_OUTPUT_DIR", "/tmp/out")

	loader := NewLoader(tempDir)
	cfg, err := loader.Load()

	require.NoError(t, err)

	// Environment variables should win
	assert.Equal(t, "EnvKit", cfg.Framework.Name)
	assert.Equal(t, "/tmp/out", cfg.Output.Dir)

	// Headers not overridden, should come from config file
	assert.Equal(t, "include", cfg.Paths.Headers)
}

func TestLoadConfigFile_ExplicitPath(t *testing.T) {
	tempDir := t.TempDir()

	configContent := `
framework:
  name: ExplicitKit
`

	// The explicit path need not follow the .fwkgen naming convention
	configPath := filepath.Join(tempDir, "custom.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	cfg, err := LoadConfigFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, "ExplicitKit", cfg.Framework.Name)
}

func TestLoadConfigFile_MissingPath(t *testing.T) {
	_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_ReturnsErrorForMalformedYaml(t *testing.T) {
	tempDir := t.TempDir()

	malformedContent := `
framework:
  name: "unclosed quote
  configurations: not-a-list
`

	configPath := filepath.Join(tempDir, ".fwkgen.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(malformedContent), 0644))

	loader := NewLoader(tempDir)
	cfg, err := loader.Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadConfig_ReturnsErrorForInvalidValues(t *testing.T) {
	tempDir := t.TempDir()

	invalidContent := `
framework:
  name: "My Framework"
  configurations: ["Debug"]
`

	configPath := filepath.Join(tempDir, ".fwkgen.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(invalidContent), 0644))

	loader := NewLoader(tempDir)
	cfg, err := loader.Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestValidate_AcceptsValidConfiguration(t *testing.T) {
	cfg := &Config{
		Framework: FrameworkConfig{
			Name:           "NetworkKit",
			Configurations: []string{"Debug", "Release"},
		},
		Paths: PathsConfig{
			Headers:        "include",
			HeaderPatterns: []string{"*.h"},
			SourcePatterns: []string{"**/*.m"},
		},
		Output: OutputConfig{Dir: "build"},
		Watch:  WatchConfig{DebounceMS: 100},
	}

	err := Validate(cfg)
	assert.NoError(t, err)
}

func TestValidate_RejectsNameWithSpaces(t *testing.T) {
	cfg := Default()
	cfg.Framework.Name = "My Framework"

	err := Validate(cfg)
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidName)
}

func TestValidate_RejectsNameStartingWithDigit(t *testing.T) {
	cfg := Default()
	cfg.Framework.Name = "3DKit"

	err := Validate(cfg)
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidName)
}

func TestValidate_AllowsEmptyName(t *testing.T) {
	// The generate command requires a name; validation does not, so that
	// inspect-style commands can run from a minimal config.
	cfg := Default()
	cfg.Framework.Name = ""

	err := Validate(cfg)
	assert.NoError(t, err)
}

func TestValidate_RejectsSingleConfiguration(t *testing.T) {
	cfg := Default()
	cfg.Framework.Configurations = []string{"Debug"}

	err := Validate(cfg)
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfigurations)
}

func TestValidate_RejectsDuplicateConfigurations(t *testing.T) {
	cfg := Default()
	cfg.Framework.Configurations = []string{"Debug", "Debug"}

	err := Validate(cfg)
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfigurations)
}

func TestValidate_RejectsEmptyHeaderPatterns(t *testing.T) {
	cfg := Default()
	cfg.Paths.HeaderPatterns = []string{}

	err := Validate(cfg)
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyPatterns)
}

func TestValidate_RejectsNegativeDebounce(t *testing.T) {
	cfg := Default()
	cfg.Watch.DebounceMS = -50

	err := Validate(cfg)
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDebounce)
}

func TestValidate_ReturnsMultipleErrorsForMultipleInvalidFields(t *testing.T) {
	cfg := &Config{
		Framework: FrameworkConfig{
			Name:           "bad name",
			Configurations: []string{"Debug"},
		},
		Paths: PathsConfig{},
		Watch: WatchConfig{DebounceMS: -1},
	}

	err := Validate(cfg)
	assert.Error(t, err)

	errMsg := err.Error()
	assert.Contains(t, errMsg, "framework name")
	assert.Contains(t, errMsg, "configurations")
	assert.Contains(t, errMsg, "pattern")
	assert.Contains(t, errMsg, "debounce")
}

func TestSourcesDir_FallsBackToHeaders(t *testing.T) {
	cfg := Default()
	cfg.Paths.Headers = "include"
	cfg.Paths.Sources = ""

	assert.Equal(t, "include", cfg.SourcesDir())

	cfg.Paths.Sources = "src"
	assert.Equal(t, "src", cfg.SourcesDir())
}

func TestConfigurationPair(t *testing.T) {
	cfg := Default()
	cfg.Framework.Configurations = []string{"Dev", "Prod"}

	debug, release := cfg.ConfigurationPair()
	assert.Equal(t, "Dev", debug)
	assert.Equal(t, "Prod", release)
}

func TestSourceExtensions(t *testing.T) {
	cfg := Default()
	assert.Equal(t, []string{".h", ".m"}, cfg.SourceExtensions())

	cfg.Paths.HeaderPatterns = []string{"**/*.h", "**/*.hpp"}
	cfg.Paths.SourcePatterns = []string{"**/*.m", "**/*.mm", "Sources/**"}
	assert.Equal(t, []string{".h", ".hpp", ".m", ".mm"}, cfg.SourceExtensions(),
		"patterns without a *.ext tail contribute nothing")
}

func TestToGeneratorOptions(t *testing.T) {
	cfg := Default()
	cfg.Framework.Name = "MapKit"
	cfg.Framework.Configurations = []string{"Dev", "Prod"}
	cfg.Paths.Headers = "include"
	cfg.Output.Dir = "build"

	opts := cfg.ToGeneratorOptions()
	assert.Equal(t, "MapKit", opts.Name)
	assert.Equal(t, "include", opts.HeadersDir)
	assert.Equal(t, "include", opts.SourcesDir, "sources fall back to the headers directory")
	assert.Equal(t, "build", opts.OutputDir)
	assert.Equal(t, [2]string{"Dev", "Prod"}, opts.Configurations)
	assert.Equal(t, cfg.Paths.HeaderPatterns, opts.HeaderPatterns)
	assert.Equal(t, cfg.Paths.Ignore, opts.IgnorePatterns)
}
