// Package discovery locates artifact files under scan roots by glob
// pattern. Results are always sorted by path so downstream id
// allocation and serialization see a stable order regardless of
// filesystem iteration order.
package discovery

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// ErrInputNotFound reports a scan root that does not exist or is not a
// directory.
var ErrInputNotFound = errors.New("input directory not found")

type compiledPattern struct {
	pattern string
	glob    glob.Glob
}

// Finder matches header and implementation files against configured
// glob patterns. Patterns use forward slashes; "*" stays within one
// path segment and "**" crosses segments, so "*.h" finds top-level
// headers while "**/*.m" finds sources in any subdirectory.
type Finder struct {
	headers []compiledPattern
	sources []compiledPattern
	ignores []compiledPattern
}

// NewFinder compiles the header, source and ignore patterns.
func NewFinder(headerPatterns, sourcePatterns, ignorePatterns []string) (*Finder, error) {
	headers, err := compilePatterns(headerPatterns)
	if err != nil {
		return nil, err
	}
	sources, err := compilePatterns(sourcePatterns)
	if err != nil {
		return nil, err
	}
	ignores, err := compilePatterns(ignorePatterns)
	if err != nil {
		return nil, err
	}
	return &Finder{headers: headers, sources: sources, ignores: ignores}, nil
}

func compilePatterns(patterns []string) ([]compiledPattern, error) {
	compiled := make([]compiledPattern, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("failed to compile pattern %q: %w", p, err)
		}
		compiled = append(compiled, compiledPattern{pattern: p, glob: g})
	}
	return compiled, nil
}

// FindHeaders returns the header files under root, joined with root
// and sorted by relative path.
func (f *Finder) FindHeaders(root string) ([]string, error) {
	return f.find(root, f.headers)
}

// FindSources returns the implementation files under root, joined with
// root and sorted by relative path.
func (f *Finder) FindSources(root string) ([]string, error) {
	return f.find(root, f.sources)
}

func (f *Finder) find(root string, patterns []compiledPattern) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, root)
	}

	var found []string
	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if f.shouldIgnore(rel) {
			return nil
		}
		if matchesAny(rel, patterns) {
			found = append(found, rel)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	sort.Strings(found)
	for i, rel := range found {
		found[i] = filepath.Join(root, filepath.FromSlash(rel))
	}
	return found, nil
}

// shouldIgnore retries directory-style patterns with a trailing /** so
// an ignore entry like "build" also covers everything below build/.
func (f *Finder) shouldIgnore(rel string) bool {
	for _, p := range f.ignores {
		if p.glob.Match(rel) {
			return true
		}
		g, err := glob.Compile(p.pattern+"/**", '/')
		if err == nil && g.Match(rel) {
			return true
		}
	}
	return false
}

// matchesAny retries "**/"-prefixed patterns without the prefix so
// they also match files at the top of the scan root.
func matchesAny(rel string, patterns []compiledPattern) bool {
	for _, p := range patterns {
		if p.glob.Match(rel) {
			return true
		}
		if trimmed, ok := strings.CutPrefix(p.pattern, "**/"); ok {
			g, err := glob.Compile(trimmed, '/')
			if err == nil && g.Match(rel) {
				return true
			}
		}
	}
	return false
}
