package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/objc-tools/fwkgen/internal/config"
	"github.com/objc-tools/fwkgen/internal/generator"
)

var (
	nameFlag      string
	headersFlag   string
	sourcesFlag   string
	outputFlag    string
	infoPlistFlag string
	configsFlag   []string
	watchFlag     bool
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an Xcode framework project",
	Long: `Generate scans the configured directories for Objective-C headers and
implementation files and writes <name>.xcodeproj into the output
directory.

The generator:
  - Discovers headers (top level) and sources (all subdirectories)
  - Parses every header into a structured API model
  - Builds the project graph and verifies its references
  - Serializes project.pbxproj deterministically
  - Emits a shared scheme and workspace data

Examples:
  # Generate NetworkKit.xcodeproj from ./NetworkKit
  fwkgen generate --name NetworkKit --headers ./NetworkKit --output ./build

  # Custom build configuration names, debug flavor first
  fwkgen generate -n MapKit --configurations Dev,Prod

  # Regenerate whenever a header or source changes
  fwkgen generate -n MapKit --watch
`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVarP(&nameFlag, "name", "n", "", "Framework name (required unless set in config)")
	generateCmd.Flags().StringVar(&headersFlag, "headers", "", "Directory scanned for header files")
	generateCmd.Flags().StringVar(&sourcesFlag, "sources", "", "Directory scanned for implementation files")
	generateCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Directory receiving <name>.xcodeproj")
	generateCmd.Flags().StringVar(&infoPlistFlag, "info-plist", "", "INFOPLIST_FILE build setting value")
	generateCmd.Flags().StringSliceVar(&configsFlag, "configurations", nil, "Build configuration names, debug flavor first (exactly two)")
	generateCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Watch for file changes and regenerate")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	// Set up context with cancellation for Ctrl+C
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nInterrupted! Cancelling generation...")
		cancel()
	}()

	cfg, err := loadConfiguration()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	applyGenerateFlags(cmd, cfg)
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.Framework.Name == "" {
		return fmt.Errorf("framework name is required (use --name, framework.name, or FWKGEN_FRAMEWORK_NAME)")
	}

	return executeGenerate(ctx, cfg, watchFlag, quiet)
}

// applyGenerateFlags overlays flags the user actually set onto the
// loaded configuration.
func applyGenerateFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("name") {
		cfg.Framework.Name = nameFlag
	}
	if cmd.Flags().Changed("headers") {
		cfg.Paths.Headers = headersFlag
	}
	if cmd.Flags().Changed("sources") {
		cfg.Paths.Sources = sourcesFlag
	}
	if cmd.Flags().Changed("output") {
		cfg.Output.Dir = outputFlag
	}
	if cmd.Flags().Changed("info-plist") {
		cfg.Framework.InfoPlist = infoPlistFlag
	}
	if cmd.Flags().Changed("configurations") {
		cfg.Framework.Configurations = configsFlag
	}
}

// executeGenerate runs one generation and, in watch mode, keeps
// regenerating until the context is cancelled.
func executeGenerate(ctx context.Context, cfg *config.Config, watch, quiet bool) error {
	progress := NewCLIProgressReporter(quiet)

	gen, err := generator.New(cfg.ToGeneratorOptions(), slog.Default(), progress)
	if err != nil {
		return fmt.Errorf("failed to create generator: %w", err)
	}

	if _, err := gen.Run(ctx); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("generation cancelled")
		}
		return fmt.Errorf("generation failed: %w", err)
	}

	if !watch {
		return nil
	}

	return watchAndRegenerate(ctx, cfg, gen, quiet)
}

// watchAndRegenerate blocks, rerunning the generator after every
// debounced batch of changes, until ctx is cancelled.
func watchAndRegenerate(ctx context.Context, cfg *config.Config, gen *generator.Generator, quiet bool) error {
	debounce := time.Duration(cfg.Watch.DebounceMS) * time.Millisecond
	dirs := []string{cfg.Paths.Headers, cfg.SourcesDir()}

	w, err := generator.NewWatcher(dirs, cfg.SourceExtensions(), debounce, slog.Default())
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer w.Stop()

	regen := func(files []string) {
		slog.Info("change detected", "files", len(files))
		if _, err := gen.Run(ctx); err != nil && ctx.Err() == nil {
			slog.Error("regeneration failed", "error", err)
		}
	}
	if err := w.Start(ctx, regen); err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	if !quiet {
		fmt.Println("Watching for changes. Press Ctrl+C to stop.")
	}

	<-ctx.Done()
	return nil
}
