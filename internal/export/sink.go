// Package export writes campaign deliverables to tabular and JSON artifacts.
// The core pipeline stages never import this package; it consumes a finished
// Campaign only.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// TabularSink receives one named table at a time. The CSV implementation is
// the only one shipped; a spreadsheet-backed sink can be substituted without
// touching the exporters.
type TabularSink interface {
	WriteTable(name string, header []string, rows [][]string) (string, error)
}

// CSVDirectory writes each table as <name>.csv inside a directory.
type CSVDirectory struct {
	dir string
}

// NewCSVDirectory ensures the output directory exists and returns a sink
// writing into it.
func NewCSVDirectory(dir string) (*CSVDirectory, error) {
	if dir == "" {
		return nil, fmt.Errorf("output directory is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return &CSVDirectory{dir: dir}, nil
}

// WriteTable implements TabularSink. It returns the path of the written file.
func (c *CSVDirectory) WriteTable(name string, header []string, rows [][]string) (string, error) {
	path := filepath.Join(c.dir, name+".csv")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("failed to write header to %s: %w", path, err)
	}
	if err := w.WriteAll(rows); err != nil {
		return "", fmt.Errorf("failed to write rows to %s: %w", path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return path, nil
}
