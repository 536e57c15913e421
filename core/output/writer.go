// Package output handles file naming and writing for saved documentation.
// Saved files are named after the resource (e.g. lb_examples.md) inside a
// caller-chosen output directory.
package output

import (
	"fmt"
	"os"
	"path/filepath"
)

// Writer writes extracted documentation to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory, creating it if
// needed. An empty outputDir defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// Write stores data under the given filename and returns the full path.
func (w *Writer) Write(filename string, data []byte) (string, error) {
	path := filepath.Join(w.OutputDir, filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// ExamplesFilename is the default filename for a resource's Example Usage.
func ExamplesFilename(resource, ext string) string {
	return resource + "_examples" + ext
}

// ArgumentsFilename is the default filename for a resource's Argument Reference.
func ArgumentsFilename(resource, ext string) string {
	return resource + "_arguments" + ext
}
