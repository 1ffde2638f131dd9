// Package report renders the solve result for the console and the clue file.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/steved1964/scroggle-clue-site/internal/solver"
)

// Write prints the word total and the clue line to w.
func Write(w io.Writer, res *solver.Result) error {
	if _, err := fmt.Fprintf(w, "Total: %d\n%s\n", res.Count(), res.ClueLine()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// WriteFile writes the same two lines to the clue file at path, replacing
// any previous contents.
func WriteFile(path string, res *solver.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create clue file: %w", err)
	}
	defer f.Close()

	if err := Write(f, res); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close clue file: %w", err)
	}
	return nil
}
