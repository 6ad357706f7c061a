package audit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightaudit/internal/dataset"
	"flightaudit/internal/models"
)

func TestShopIntervalContains(t *testing.T) {
	in := time.Date(2017, 2, 1, 0, 0, 0, 0, time.UTC)
	out := time.Date(2017, 2, 5, 0, 0, 0, 0, time.UTC)
	interval := shopInterval{in: in, out: out}

	hour := time.Hour

	tests := []struct {
		name    string
		takeoff time.Time
		landing time.Time
		want    bool
	}{
		{"takeoff exactly at the in-date", in, in.Add(2 * hour), true},
		{"landing exactly at the out-date", out.Add(-2 * hour), out, true},
		{"landing exactly at the in-date", in.Add(-2 * hour), in, false},
		{"takeoff exactly at the out-date", out, out.Add(2 * hour), false},
		{"flight entirely inside", in.Add(24 * hour), in.Add(26 * hour), true},
		{"flight spans the whole interval", in.Add(-hour), out.Add(hour), true},
		{"flight entirely before", in.Add(-3 * hour), in.Add(-hour), false},
		{"flight entirely after", out.Add(hour), out.Add(3 * hour), false},
		{"takeoff before, landing inside", in.Add(-hour), in.Add(hour), true},
		{"takeoff inside, landing after", out.Add(-hour), out.Add(hour), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, interval.contains(tt.takeoff, tt.landing))
		})
	}
}

// inspectionDataset builds a dataset with a single plane whose fleet row
// carries the given annual date and accrued hours.
func inspectionDataset(annual string, hours float64, repairs []models.Repair, lessons []models.Lesson) *dataset.Dataset {
	ds := &dataset.Dataset{
		Pilots: []models.Pilot{{ID: "S00681", Joined: "2015-01-01", Solo: "2015-06-01"}},
		Fleet: []models.Plane{
			{TailNumber: "684TM", Type: "Piper Archer", Capability: "VFR", Annual: annual, Hours: hours},
		},
		Repairs:  repairs,
		Lessons:  lessons,
		DayCycle: models.DayCycle{Timezone: "UTC"},
	}
	ds.Index()
	return ds
}

func lessonAt(takeoff, landing string) models.Lesson {
	return models.Lesson{
		Student: "S00681", Airplane: "684TM",
		Takeoff: takeoff, Landing: landing,
		Filed: "VFR", Area: "Pattern",
	}
}

func TestInspectionHourBoundaries(t *testing.T) {
	tests := []struct {
		name  string
		hours float64
		want  string
	}{
		// A two hour flight that lands exactly at 100.0 hours is compliant.
		{"landing exactly at one hundred hours", 98.0, ""},
		{"crossing one hundred hours mid flight", 99.0, models.ReasonInspection},
		{"already at one hundred hours at takeoff", 100.0, models.ReasonInspection},
		{"well under the limit", 10.0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := inspectionDataset("2016-06-01", tt.hours, nil, []models.Lesson{
				lessonAt("2017-01-10T10:00:00", "2017-01-10T12:00:00"),
			})
			violations := New(ds).InspectionViolations()
			if tt.want == "" {
				assert.Empty(t, violations)
				return
			}
			require.Len(t, violations, 1)
			assert.Equal(t, tt.want, violations[0].Reason)
		})
	}
}

func TestInspectionAnnualBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		annual  string
		takeoff string
		want    string
	}{
		{
			name:    "exactly 365 days is compliant",
			annual:  "2016-01-01",
			takeoff: "2016-12-31T12:00:00",
			want:    "",
		},
		{
			name:    "366 days is overdue",
			annual:  "2016-01-01",
			takeoff: "2017-01-02T12:00:00",
			want:    models.ReasonAnnual,
		},
		{
			name:    "missing annual date is overdue from the start",
			annual:  "",
			takeoff: "2016-02-01T12:00:00",
			want:    models.ReasonAnnual,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := inspectionDataset(tt.annual, 0, nil, []models.Lesson{
				lessonAt(tt.takeoff, tt.takeoff[:11]+"14:00:00"),
			})
			violations := New(ds).InspectionViolations()
			if tt.want == "" {
				assert.Empty(t, violations)
				return
			}
			require.Len(t, violations, 1)
			assert.Equal(t, tt.want, violations[0].Reason)
		})
	}
}

func TestInspectionGroundedLesson(t *testing.T) {
	repairs := []models.Repair{
		{TailNumber: "684TM", InDate: "2017-03-19", OutDate: "2017-03-25", Description: "engine repair"},
	}
	ds := inspectionDataset("2016-06-01", 0, repairs, []models.Lesson{
		lessonAt("2017-03-20T13:00:00", "2017-03-20T15:00:00"),
	})

	violations := New(ds).InspectionViolations()
	require.Len(t, violations, 1)
	assert.Equal(t, models.ReasonGrounded, violations[0].Reason)
}

func TestInspectionRepairResetsHours(t *testing.T) {
	// 99 hours accrued, then a repair, then a long flight: the reset
	// keeps the flight legal.
	repairs := []models.Repair{
		{TailNumber: "684TM", InDate: "2017-02-01", OutDate: "2017-02-03", Description: "100 hour inspection"},
	}
	ds := inspectionDataset("2016-06-01", 99.0, repairs, []models.Lesson{
		lessonAt("2017-02-10T10:00:00", "2017-02-10T14:00:00"),
	})
	assert.Empty(t, New(ds).InspectionViolations())

	// Without the repair the same flight crosses 100 hours.
	ds = inspectionDataset("2016-06-01", 99.0, nil, []models.Lesson{
		lessonAt("2017-02-10T10:00:00", "2017-02-10T14:00:00"),
	})
	violations := New(ds).InspectionViolations()
	require.Len(t, violations, 1)
	assert.Equal(t, models.ReasonInspection, violations[0].Reason)
}

func TestInspectionAnnualRepairResetsClock(t *testing.T) {
	repairs := []models.Repair{
		{TailNumber: "684TM", InDate: "2017-01-15", OutDate: "2017-01-20", Description: "Annual Inspection"},
	}
	// The fleet annual is ancient, but the shop visit renews it.
	ds := inspectionDataset("2015-01-01", 0, repairs, []models.Lesson{
		lessonAt("2017-02-01T10:00:00", "2017-02-01T12:00:00"),
	})
	assert.Empty(t, New(ds).InspectionViolations())
}

func TestInspectionHoursAccumulateAcrossLessons(t *testing.T) {
	// Two 30 hour gaps: 60 accrued before the audit, then two 25 hour
	// flights. The second flight crosses 100 hours.
	ds := inspectionDataset("2016-06-01", 60.0, nil, []models.Lesson{
		lessonAt("2017-01-05T00:00:00", "2017-01-06T01:00:00"),
		lessonAt("2017-01-10T00:00:00", "2017-01-11T01:00:00"),
	})
	violations := New(ds).InspectionViolations()
	require.Len(t, violations, 1)
	assert.Equal(t, "2017-01-10T00:00:00", violations[0].Takeoff)
	assert.Equal(t, models.ReasonInspection, violations[0].Reason)
}

func TestInspectionMultipleFlagsCollapse(t *testing.T) {
	// Over a year past annual and over 100 hours accrued.
	ds := inspectionDataset("2015-01-01", 150.0, nil, []models.Lesson{
		lessonAt("2017-01-27T13:00:00", "2017-01-27T15:00:00"),
	})
	violations := New(ds).InspectionViolations()
	require.Len(t, violations, 1)
	assert.Equal(t, models.ReasonMaintenance, violations[0].Reason)
}

func TestInspectionSkipsUnknownAirplane(t *testing.T) {
	ds := inspectionDataset("2016-06-01", 0, nil, []models.Lesson{
		{Student: "S00681", Airplane: "XXXXX", Takeoff: "2017-01-10T10:00:00", Landing: "2017-01-10T12:00:00", Filed: "VFR", Area: "Pattern"},
	})
	assert.Empty(t, New(ds).InspectionViolations())
}

func TestInspectionScanIdempotent(t *testing.T) {
	build := func() *dataset.Dataset {
		return inspectionDataset("2015-06-01", 95.0,
			[]models.Repair{{TailNumber: "684TM", InDate: "2017-03-19", OutDate: "2017-03-25", Description: "engine repair"}},
			[]models.Lesson{
				lessonAt("2017-01-05T10:00:00", "2017-01-05T12:00:00"),
				lessonAt("2017-03-20T13:00:00", "2017-03-20T15:00:00"),
			})
	}
	auditor := New(build())
	first := auditor.InspectionViolations()
	second := auditor.InspectionViolations()
	assert.Equal(t, first, second)
}
