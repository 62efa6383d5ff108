// Package generator wires discovery, header parsing and project
// serialization into one pipeline that turns a directory of
// Objective-C files into an .xcodeproj bundle on disk.
package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/objc-tools/fwkgen/internal/discovery"
	"github.com/objc-tools/fwkgen/internal/objc"
	"github.com/objc-tools/fwkgen/internal/xcodeproj"
)

var (
	// ErrNoHeaders reports a headers directory with no matching files.
	ErrNoHeaders = errors.New("no header files found")

	// ErrMissingName reports a run attempted without a framework name.
	ErrMissingName = errors.New("framework name is required")

	// ErrNoReadableHeaders reports that every discovered header failed
	// to read or decode.
	ErrNoReadableHeaders = errors.New("no readable header files")
)

// Options configures a Generator.
type Options struct {
	Name           string    // product and target name
	HeadersDir     string    // directory scanned for header files
	SourcesDir     string    // directory scanned for implementation files; empty means HeadersDir
	OutputDir      string    // receives <Name>.xcodeproj; empty means the working directory
	InfoPlist      string    // INFOPLIST_FILE value; empty means $(SRCROOT)/Info.plist
	Configurations [2]string // build configuration names, debug flavor first
	HeaderPatterns []string  // glob patterns for headers; empty means *.h
	SourcePatterns []string  // glob patterns for sources; empty means **/*.m
	IgnorePatterns []string  // glob patterns skipped while scanning
	Workers        int       // parallel header parsers; 0 means runtime.NumCPU()
}

// Result summarizes one completed generation.
type Result struct {
	ProjectDir string         // path of the written .xcodeproj bundle
	Model      *objc.APIModel // API extracted from the discovered headers
	Headers    []string       // discovered header paths, sorted
	Sources    []string       // discovered implementation paths, sorted
	Duration   time.Duration
}

// Generator runs the discover → parse → serialize pipeline.
type Generator struct {
	opts     Options
	finder   *discovery.Finder
	logger   *slog.Logger
	progress ProgressReporter
}

// New creates a Generator. logger and progress may be nil.
func New(opts Options, logger *slog.Logger, progress ProgressReporter) (*Generator, error) {
	if opts.HeadersDir == "" {
		opts.HeadersDir = "."
	}
	if opts.SourcesDir == "" {
		opts.SourcesDir = opts.HeadersDir
	}
	if opts.OutputDir == "" {
		opts.OutputDir = "."
	}
	if opts.Configurations[0] == "" || opts.Configurations[1] == "" {
		opts.Configurations = [2]string{"Debug", "Release"}
	}
	if len(opts.HeaderPatterns) == 0 {
		opts.HeaderPatterns = []string{"*.h"}
	}
	if len(opts.SourcePatterns) == 0 {
		opts.SourcePatterns = []string{"**/*.m"}
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}

	finder, err := discovery.NewFinder(opts.HeaderPatterns, opts.SourcePatterns, opts.IgnorePatterns)
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = slog.Default()
	}
	if progress == nil {
		progress = &NoOpProgressReporter{}
	}

	return &Generator{
		opts:     opts,
		finder:   finder,
		logger:   logger,
		progress: progress,
	}, nil
}

// Run executes the full pipeline and writes the project bundle.
func (g *Generator) Run(ctx context.Context) (*Result, error) {
	if g.opts.Name == "" {
		return nil, ErrMissingName
	}

	start := time.Now()

	headers, sources, err := g.discover()
	if err != nil {
		return nil, err
	}

	model, err := g.parseHeaders(ctx, headers)
	if err != nil {
		return nil, err
	}

	doc := xcodeproj.BuildDocument(xcodeproj.Framework{
		Name:           g.opts.Name,
		Configurations: g.opts.Configurations,
		Headers:        headers,
		Sources:        sources,
		InfoPlist:      g.opts.InfoPlist,
	})

	pbxproj, err := xcodeproj.Serialize(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize project: %w", err)
	}

	writer, err := NewBundleWriter(g.opts.OutputDir)
	if err != nil {
		return nil, err
	}

	debugCfg, releaseCfg := g.opts.Configurations[0], g.opts.Configurations[1]
	projectDir, err := writer.Write(&Bundle{
		ProjectName: g.opts.Name,
		Pbxproj:     pbxproj,
		Scheme:      xcodeproj.GenerateScheme(g.opts.Name, debugCfg, releaseCfg),
		Workspace:   xcodeproj.GenerateWorkspace(g.opts.Name),
	})
	if err != nil {
		return nil, err
	}

	result := &Result{
		ProjectDir: projectDir,
		Model:      model,
		Headers:    headers,
		Sources:    sources,
		Duration:   time.Since(start),
	}

	g.logger.Info("project generated",
		"path", projectDir,
		"headers", len(headers),
		"sources", len(sources),
		"classes", len(model.Classes),
		"duration", result.Duration)
	g.progress.OnComplete(result)

	return result, nil
}

// Inspect discovers and parses headers without writing a project,
// returning the aggregated API model.
func (g *Generator) Inspect(ctx context.Context) (*objc.APIModel, error) {
	g.progress.OnDiscoveryStart()
	headers, err := g.finder.FindHeaders(g.opts.HeadersDir)
	if err != nil {
		return nil, err
	}
	if len(headers) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoHeaders, g.opts.HeadersDir)
	}
	g.progress.OnDiscoveryComplete(len(headers), 0)

	return g.parseHeaders(ctx, headers)
}

func (g *Generator) discover() (headers, sources []string, err error) {
	g.progress.OnDiscoveryStart()

	headers, err = g.finder.FindHeaders(g.opts.HeadersDir)
	if err != nil {
		return nil, nil, err
	}
	if len(headers) == 0 {
		return nil, nil, fmt.Errorf("%w in %s", ErrNoHeaders, g.opts.HeadersDir)
	}

	sources, err = g.finder.FindSources(g.opts.SourcesDir)
	if err != nil {
		return nil, nil, err
	}

	g.progress.OnDiscoveryComplete(len(headers), len(sources))
	return headers, sources, nil
}

// parseHeaders reads and parses every header concurrently. Results are
// slotted by index so the aggregated model keeps discovery order. An
// unreadable header is skipped with a warning; the run fails only when
// no header could be read at all.
func (g *Generator) parseHeaders(ctx context.Context, headers []string) (*objc.APIModel, error) {
	g.progress.OnParseStart(len(headers))

	fileAPIs := make([]objc.FileAPI, len(headers))
	var skipped atomic.Int64

	workers := g.opts.Workers
	if workers > len(headers) {
		workers = len(headers)
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, path := range headers {
		i, path := i, path
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				g.logger.Warn("skipping unreadable header", "path", path, "error", err)
				skipped.Add(1)
				return nil
			}
			text, err := objc.DecodeBytes(data)
			if err != nil {
				g.logger.Warn("skipping undecodable header", "path", path, "error", err)
				skipped.Add(1)
				return nil
			}
			fileAPIs[i] = objc.ParseFile(g.relPath(path), text)
			g.progress.OnHeaderParsed(path)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if int(skipped.Load()) == len(headers) {
		return nil, fmt.Errorf("%w: all %d discovered headers were skipped", ErrNoReadableHeaders, len(headers))
	}

	return objc.Aggregate(fileAPIs), nil
}

// relPath reports path relative to the headers directory so model
// output stays stable across machines; falls back to the path itself.
func (g *Generator) relPath(path string) string {
	rel, err := filepath.Rel(g.opts.HeadersDir, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
