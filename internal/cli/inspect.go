package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/objc-tools/fwkgen/internal/generator"
	"github.com/objc-tools/fwkgen/internal/objc"
)

var (
	inspectHeadersFlag string
	inspectJSONFlag    bool
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Extract and print the Objective-C API without generating a project",
	Long: `Inspect parses the configured headers and prints a summary of the
extracted API: classes, methods, properties, enums, constants, free
functions and imports.

Examples:
  # Summarize the API of the headers in the current directory
  fwkgen inspect

  # Full model as JSON
  fwkgen inspect --headers ./NetworkKit --json
`,
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVar(&inspectHeadersFlag, "headers", "", "Directory scanned for header files")
	inspectCmd.Flags().BoolVar(&inspectJSONFlag, "json", false, "Print the full API model as JSON")
}

func runInspect(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	cfg, err := loadConfiguration()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cmd.Flags().Changed("headers") {
		cfg.Paths.Headers = inspectHeadersFlag
	}

	// Progress bars would interleave with the printed report
	gen, err := generator.New(cfg.ToGeneratorOptions(), slog.Default(), NewCLIProgressReporter(true))
	if err != nil {
		return fmt.Errorf("failed to create generator: %w", err)
	}

	model, err := gen.Inspect(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("inspection cancelled")
		}
		return fmt.Errorf("inspection failed: %w", err)
	}

	if inspectJSONFlag {
		data, err := json.MarshalIndent(model, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal model: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	printSummary(model.Summary())
	return nil
}

func printSummary(s objc.Summary) {
	fmt.Printf("Classes:    %d\n", s.TotalClasses)
	fmt.Printf("Methods:    %d\n", s.TotalMethods)
	fmt.Printf("Properties: %d\n", s.TotalProperties)
	fmt.Printf("Enums:      %d\n", s.TotalEnums)
	fmt.Printf("Constants:  %d\n", s.TotalConstants)
	fmt.Printf("Functions:  %d\n", s.TotalFunctions)

	if len(s.ClassNames) > 0 {
		fmt.Printf("\nClass names: %s\n", strings.Join(s.ClassNames, ", "))
	}
	if len(s.Imports) > 0 {
		fmt.Printf("Imports:     %s\n", strings.Join(s.Imports, ", "))
	}
}
