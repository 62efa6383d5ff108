package config

import "sort"

// Config represents the complete fwkgen configuration.
// It can be loaded from .fwkgen.yaml with environment variable overrides.
type Config struct {
	Framework FrameworkConfig `yaml:"framework" mapstructure:"framework"`
	Paths     PathsConfig     `yaml:"paths" mapstructure:"paths"`
	Output    OutputConfig    `yaml:"output" mapstructure:"output"`
	Watch     WatchConfig     `yaml:"watch" mapstructure:"watch"`
}

// FrameworkConfig describes the framework target the project is
// generated for.
type FrameworkConfig struct {
	Name           string   `yaml:"name" mapstructure:"name"`                     // product and target name, e.g. "NetworkKit"
	Configurations []string `yaml:"configurations" mapstructure:"configurations"` // exactly two build configuration names, debug flavor first
	InfoPlist      string   `yaml:"info_plist" mapstructure:"info_plist"`         // INFOPLIST_FILE value; empty means $(SRCROOT)/Info.plist
}

// PathsConfig defines where framework files are discovered.
type PathsConfig struct {
	Headers        string   `yaml:"headers" mapstructure:"headers"`                 // directory scanned for header files
	Sources        string   `yaml:"sources" mapstructure:"sources"`                 // directory scanned for implementation files; empty means the headers directory
	HeaderPatterns []string `yaml:"header_patterns" mapstructure:"header_patterns"` // glob patterns for headers
	SourcePatterns []string `yaml:"source_patterns" mapstructure:"source_patterns"` // glob patterns for implementation files
	Ignore         []string `yaml:"ignore" mapstructure:"ignore"`                   // glob patterns to skip while scanning
}

// OutputConfig defines where the project bundle is written.
type OutputConfig struct {
	Dir string `yaml:"dir" mapstructure:"dir"` // directory receiving <name>.xcodeproj
}

// WatchConfig tunes regenerate-on-change mode.
type WatchConfig struct {
	DebounceMS int `yaml:"debounce_ms" mapstructure:"debounce_ms"` // quiet period after a change before regenerating
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Framework: FrameworkConfig{
			Name:           "", // No default; set via flag, config file, or FWKGEN_FRAMEWORK_NAME
			Configurations: []string{"Debug", "Release"},
			InfoPlist:      "", // Empty means the generator default $(SRCROOT)/Info.plist
		},
		Paths: PathsConfig{
			Headers:        ".",
			Sources:        "", // Empty means scan the headers directory
			HeaderPatterns: []string{"*.h"},
			SourcePatterns: []string{"**/*.m"},
			Ignore: []string{
				"build/**",
				".git/**",
				"DerivedData/**",
				"*.xcodeproj/**",
			},
		},
		Output: OutputConfig{
			Dir: ".",
		},
		Watch: WatchConfig{
			DebounceMS: 500,
		},
	}
}

// SourcesDir returns the directory scanned for implementation files,
// falling back to the headers directory when unset.
func (c *Config) SourcesDir() string {
	if c.Paths.Sources != "" {
		return c.Paths.Sources
	}
	return c.Paths.Headers
}

// SourceExtensions extracts unique file extensions from the header and
// source patterns, sorted, with leading dot (e.g. []string{".h", ".m"}).
// Watch mode uses these to filter filesystem events.
func (c *Config) SourceExtensions() []string {
	extMap := make(map[string]bool)

	for _, pattern := range c.Paths.HeaderPatterns {
		if ext := extractExtension(pattern); ext != "" {
			extMap[ext] = true
		}
	}

	for _, pattern := range c.Paths.SourcePatterns {
		if ext := extractExtension(pattern); ext != "" {
			extMap[ext] = true
		}
	}

	extensions := make([]string, 0, len(extMap))
	for ext := range extMap {
		extensions = append(extensions, ext)
	}
	sort.Strings(extensions)

	return extensions
}

// extractExtension extracts the file extension from a glob pattern.
// Returns empty string if pattern doesn't match a simple extension pattern.
// Examples: "**/*.m" -> ".m", "*.h" -> ".h"
func extractExtension(pattern string) string {
	// Find the last occurrence of *.ext pattern
	for i := len(pattern) - 1; i >= 1; i-- {
		if pattern[i] == '.' && pattern[i-1] == '*' {
			return pattern[i:]
		}
	}
	return ""
}

// ConfigurationPair returns the debug-flavored and release-flavored
// configuration names. Validate guarantees there are exactly two.
func (c *Config) ConfigurationPair() (debug, release string) {
	return c.Framework.Configurations[0], c.Framework.Configurations[1]
}
