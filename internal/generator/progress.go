package generator

// ProgressReporter provides callbacks for reporting generation progress.
// Implementations can display progress bars, log messages, or remain silent.
type ProgressReporter interface {
	// OnDiscoveryStart is called when file discovery begins.
	OnDiscoveryStart()

	// OnDiscoveryComplete is called when file discovery finishes.
	OnDiscoveryComplete(headerFiles, sourceFiles int)

	// OnParseStart is called before header parsing begins.
	OnParseStart(totalHeaders int)

	// OnHeaderParsed is called after each header is parsed.
	// It may be called concurrently from parser workers.
	OnHeaderParsed(path string)

	// OnComplete is called when generation completes successfully.
	OnComplete(result *Result)
}

// NoOpProgressReporter is a progress reporter that does nothing.
// Used when progress reporting is disabled (e.g., --quiet flag).
type NoOpProgressReporter struct{}

func (n *NoOpProgressReporter) OnDiscoveryStart()                                {}
func (n *NoOpProgressReporter) OnDiscoveryComplete(headerFiles, sourceFiles int) {}
func (n *NoOpProgressReporter) OnParseStart(totalHeaders int)                    {}
func (n *NoOpProgressReporter) OnHeaderParsed(path string)                       {}
func (n *NoOpProgressReporter) OnComplete(result *Result)                        {}
