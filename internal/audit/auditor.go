package audit

import (
	"log/slog"

	"flightaudit/internal/dataset"
	"flightaudit/internal/models"
)

// Auditor runs the three violation scans over one loaded dataset. Each
// scan is independent and a lesson may appear in the output once per
// scan that flags it.
type Auditor struct {
	data *dataset.Dataset
}

// New creates an auditor over the given dataset.
func New(data *dataset.Dataset) *Auditor {
	return &Auditor{data: data}
}

// Discover runs the weather, inspection, and endorsement scans and
// concatenates their results in that order.
func (a *Auditor) Discover() []models.Violation {
	var violations []models.Violation
	violations = append(violations, a.WeatherViolations()...)
	violations = append(violations, a.InspectionViolations()...)
	violations = append(violations, a.EndorsementViolations()...)

	slog.Info("Audit complete", "violations", len(violations))
	return violations
}
