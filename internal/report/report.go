// Package report writes the audit results as a CSV file with the header
// STUDENT,AIRPLANE,INSTRUCTOR,TAKEOFF,LANDING,FILED,AREA,REASON.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/jszwec/csvutil"

	"flightaudit/internal/models"
)

// Write encodes the violations to w, header first. An empty violation
// list still produces the header row.
func Write(w io.Writer, violations []models.Violation) error {
	cw := csv.NewWriter(w)
	enc := csvutil.NewEncoder(cw)

	if len(violations) == 0 {
		header, err := csvutil.Header(models.Violation{}, "csv")
		if err != nil {
			return fmt.Errorf("failed to build header: %w", err)
		}
		if err := cw.Write(header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}
	for i := range violations {
		if err := enc.Encode(violations[i]); err != nil {
			return fmt.Errorf("failed to encode violation: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteFile writes the violations to the named CSV file, creating or
// truncating it.
func WriteFile(path string, violations []models.Violation) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := Write(f, violations); err != nil {
		return err
	}
	return f.Close()
}
