package config

import (
	"github.com/objc-tools/fwkgen/internal/generator"
)

// ToGeneratorOptions converts a Config to generator.Options.
func (c *Config) ToGeneratorOptions() generator.Options {
	opts := generator.Options{
		Name:           c.Framework.Name,
		HeadersDir:     c.Paths.Headers,
		SourcesDir:     c.SourcesDir(),
		OutputDir:      c.Output.Dir,
		InfoPlist:      c.Framework.InfoPlist,
		HeaderPatterns: c.Paths.HeaderPatterns,
		SourcePatterns: c.Paths.SourcePatterns,
		IgnorePatterns: c.Paths.Ignore,
	}
	// Validate guarantees a pair; guard anyway for hand-built configs
	if len(c.Framework.Configurations) == 2 {
		opts.Configurations = [2]string{c.Framework.Configurations[0], c.Framework.Configurations[1]}
	}
	return opts
}
