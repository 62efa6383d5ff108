package cli

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/objc-tools/fwkgen/internal/config"
)

var (
	cfgFile string
	verbose bool
	quiet   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fwkgen",
	Short: "Generate Xcode framework projects from Objective-C sources",
	Long: `fwkgen scans a directory of Objective-C headers and implementation
files, extracts the declared API, and emits a ready-to-build Xcode
framework project: project.pbxproj plus a shared scheme and workspace.

Output is deterministic: the same inputs always produce byte-identical
project files, so generated projects diff cleanly under version control.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initLogging)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .fwkgen.yaml, then $HOME/.fwkgen.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "disable progress and non-error output")

	// Bind flags to viper
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
}

// initLogging routes slog through a tinted stderr handler honoring
// --verbose and --quiet.
func initLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	if quiet {
		level = slog.LevelError
	}

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})))
}

// loadConfiguration resolves the effective configuration. An explicit
// --config path wins; otherwise .fwkgen.yaml is searched in the working
// directory and then the home directory.
func loadConfiguration() (*config.Config, error) {
	if cfgFile != "" {
		return config.LoadConfigFile(cfgFile)
	}
	return config.LoadConfig()
}
