package report

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"amortizer/domain"
	"amortizer/finance"
)

// WriteFile writes the schedule for terms to path, replacing any existing file.
func WriteFile(path string, terms domain.LoanTerms) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not open file %s for output: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return WriteTable(f, terms, finance.NewSchedule(terms))
}

// OpenViewer runs viewer with path as its only argument and waits for it to exit.
func OpenViewer(ctx context.Context, viewer, path string) error {
	if viewer == "" {
		return nil
	}
	cmd := exec.CommandContext(ctx, viewer, path)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("viewer %s: %w", viewer, err)
	}
	return nil
}
