package cli

import (
	"fmt"
	"log"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/objc-tools/fwkgen/internal/generator"
)

// CLIProgressReporter implements progress reporting with progress bars.
type CLIProgressReporter struct {
	quiet     bool
	parseBar  *progressbar.ProgressBar
	startTime time.Time
}

// NewCLIProgressReporter creates a new CLI progress reporter.
func NewCLIProgressReporter(quiet bool) *CLIProgressReporter {
	return &CLIProgressReporter{
		quiet:     quiet,
		startTime: time.Now(),
	}
}

func (c *CLIProgressReporter) OnDiscoveryStart() {
	if c.quiet {
		return
	}
	log.Println("Discovering files...")
}

func (c *CLIProgressReporter) OnDiscoveryComplete(headerFiles, sourceFiles int) {
	if c.quiet {
		return
	}
	log.Printf("Processing %d header files and %d implementation files\n", headerFiles, sourceFiles)
}

func (c *CLIProgressReporter) OnParseStart(totalHeaders int) {
	if c.quiet {
		return
	}
	c.parseBar = progressbar.NewOptions(totalHeaders,
		progressbar.OptionSetDescription("Parsing headers"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("files/s"),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionOnCompletion(func() {
			fmt.Println()
		}),
	)
}

// OnHeaderParsed may be called from several parser workers at once;
// progressbar.Add is safe for that.
func (c *CLIProgressReporter) OnHeaderParsed(path string) {
	if c.quiet {
		return
	}
	if c.parseBar != nil {
		c.parseBar.Add(1)
	}
}

func (c *CLIProgressReporter) OnComplete(result *generator.Result) {
	if c.quiet {
		return
	}
	if c.parseBar != nil {
		c.parseBar.Finish()
		c.parseBar = nil
	}

	summary := result.Model.Summary()
	fmt.Println()
	fmt.Printf("✓ Generated %s in %.1fs\n", result.ProjectDir, result.Duration.Seconds())
	fmt.Printf("  Headers:    %d\n", len(result.Headers))
	fmt.Printf("  Sources:    %d\n", len(result.Sources))
	fmt.Printf("  Classes:    %d\n", summary.TotalClasses)
	fmt.Printf("  Methods:    %d\n", summary.TotalMethods)
	fmt.Printf("  Properties: %d\n", summary.TotalProperties)
}
