// Package dataset loads the audit snapshot from a directory of CSV and
// JSON files. The CSV tables are decoded by header name with csvutil, so
// column order in the source files does not matter.
package dataset

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jszwec/csvutil"

	"flightaudit/internal/models"
)

// File names inside the dataset directory.
const (
	DayCycleFile    = "daycycle.json"
	WeatherFile     = "weather.json"
	MinimumsFile    = "minimums.csv"
	StudentsFile    = "students.csv"
	InstructorsFile = "instructors.csv"
	FleetFile       = "fleet.csv"
	RepairsFile     = "repairs.csv"
	LessonsFile     = "lessons.csv"
)

// Dataset is the full in-memory snapshot for one audit pass. All tables
// are immutable after Load.
type Dataset struct {
	Pilots      []models.Pilot
	Instructors []models.Instructor
	Fleet       []models.Plane
	Repairs     []models.Repair
	Lessons     []models.Lesson
	Minimums    []models.MinimumsRow
	Weather     models.WeatherLog
	DayCycle    models.DayCycle

	pilotsByID      map[string]*models.Pilot
	instructorsByID map[string]*models.Instructor
	planesByTail    map[string]*models.Plane
}

// Load reads every dataset file under dir and indexes the reference
// tables by identifier.
func Load(dir string) (*Dataset, error) {
	ds := &Dataset{}

	var err error
	if ds.Pilots, err = readCSV[models.Pilot](filepath.Join(dir, StudentsFile)); err != nil {
		return nil, err
	}
	if ds.Instructors, err = readCSV[models.Instructor](filepath.Join(dir, InstructorsFile)); err != nil {
		return nil, err
	}
	if ds.Fleet, err = readCSV[models.Plane](filepath.Join(dir, FleetFile)); err != nil {
		return nil, err
	}
	if ds.Repairs, err = readCSV[models.Repair](filepath.Join(dir, RepairsFile)); err != nil {
		return nil, err
	}
	if ds.Lessons, err = readCSV[models.Lesson](filepath.Join(dir, LessonsFile)); err != nil {
		return nil, err
	}
	if ds.Minimums, err = readCSV[models.MinimumsRow](filepath.Join(dir, MinimumsFile)); err != nil {
		return nil, err
	}
	if err = readJSON(filepath.Join(dir, WeatherFile), &ds.Weather); err != nil {
		return nil, err
	}
	if err = readJSON(filepath.Join(dir, DayCycleFile), &ds.DayCycle); err != nil {
		return nil, err
	}

	ds.Index()

	slog.Info("Dataset loaded",
		"dir", dir,
		"pilots", len(ds.Pilots),
		"instructors", len(ds.Instructors),
		"planes", len(ds.Fleet),
		"repairs", len(ds.Repairs),
		"lessons", len(ds.Lessons),
		"weather_reports", len(ds.Weather),
	)

	return ds, nil
}

// Index rebuilds the identifier lookups from the table slices. Load calls
// it; callers that assemble a Dataset directly must call it themselves.
func (d *Dataset) Index() {
	d.pilotsByID = make(map[string]*models.Pilot, len(d.Pilots))
	for i := range d.Pilots {
		d.pilotsByID[d.Pilots[i].ID] = &d.Pilots[i]
	}
	d.instructorsByID = make(map[string]*models.Instructor, len(d.Instructors))
	for i := range d.Instructors {
		d.instructorsByID[d.Instructors[i].ID] = &d.Instructors[i]
	}
	d.planesByTail = make(map[string]*models.Plane, len(d.Fleet))
	for i := range d.Fleet {
		d.planesByTail[d.Fleet[i].TailNumber] = &d.Fleet[i]
	}
}

// Pilot returns the pilot with the given id, or nil if unknown.
func (d *Dataset) Pilot(id string) *models.Pilot {
	return d.pilotsByID[id]
}

// Instructor returns the instructor with the given id, or nil if unknown.
func (d *Dataset) Instructor(id string) *models.Instructor {
	return d.instructorsByID[id]
}

// Plane returns the plane with the given tail number, or nil if unknown.
func (d *Dataset) Plane(tail string) *models.Plane {
	return d.planesByTail[tail]
}

func readCSV[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	var rows []T
	if err := csvutil.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", filepath.Base(path), err)
	}
	return rows, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", filepath.Base(path), err)
	}
	return nil
}
