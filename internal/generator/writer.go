package generator

import (
	"fmt"
	"os"
	"path/filepath"
)

// Bundle holds the serialized artifacts of one generation.
type Bundle struct {
	ProjectName string // names the .xcodeproj directory
	Pbxproj     []byte
	Scheme      []byte
	Workspace   []byte
}

// BundleWriter writes project bundles using a stage → rename pattern so
// readers never observe a half-written .xcodeproj.
type BundleWriter struct {
	outputDir string
	stageDir  string
}

// NewBundleWriter creates a writer targeting outputDir.
func NewBundleWriter(outputDir string) (*BundleWriter, error) {
	stageDir := filepath.Join(outputDir, ".fwkgen.tmp")

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	// Clean up stale staging left by an interrupted run
	if err := os.RemoveAll(stageDir); err != nil {
		return nil, fmt.Errorf("failed to clean staging directory: %w", err)
	}

	return &BundleWriter{
		outputDir: outputDir,
		stageDir:  stageDir,
	}, nil
}

// Write stages the bundle tree under a temp directory and renames it
// into place, replacing any previous bundle of the same name. It
// returns the final bundle path.
func (w *BundleWriter) Write(bundle *Bundle) (string, error) {
	bundleName := bundle.ProjectName + ".xcodeproj"
	staged := filepath.Join(w.stageDir, bundleName)

	if err := os.RemoveAll(w.stageDir); err != nil {
		return "", fmt.Errorf("failed to clean staging directory: %w", err)
	}

	entries := []struct {
		rel  string
		data []byte
	}{
		{"project.pbxproj", bundle.Pbxproj},
		{filepath.Join("xcshareddata", "xcschemes", bundle.ProjectName+".xcscheme"), bundle.Scheme},
		{filepath.Join("project.xcworkspace", "contents.xcworkspacedata"), bundle.Workspace},
	}

	for _, entry := range entries {
		path := filepath.Join(staged, entry.rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			os.RemoveAll(w.stageDir)
			return "", fmt.Errorf("failed to create staging directory: %w", err)
		}
		if err := os.WriteFile(path, entry.data, 0644); err != nil {
			os.RemoveAll(w.stageDir)
			return "", fmt.Errorf("failed to write %s: %w", entry.rel, err)
		}
	}

	finalPath := filepath.Join(w.outputDir, bundleName)

	// Replacing an existing bundle is remove + rename. The window where
	// neither directory exists cannot be closed with plain os.Rename.
	if err := os.RemoveAll(finalPath); err != nil {
		os.RemoveAll(w.stageDir)
		return "", fmt.Errorf("failed to remove previous bundle: %w", err)
	}
	if err := os.Rename(staged, finalPath); err != nil {
		os.RemoveAll(w.stageDir)
		return "", fmt.Errorf("failed to move bundle into place: %w", err)
	}

	os.RemoveAll(w.stageDir)

	return finalPath, nil
}
