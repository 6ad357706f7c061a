package models

import "strings"

// Lesson represents one row of lessons.csv: a single takeoff and landing.
// All fields are kept as the raw strings from the file so that violation
// reports round-trip the original record exactly.
type Lesson struct {
	Student    string `csv:"STUDENT"`
	Airplane   string `csv:"AIRPLANE"`
	Instructor string `csv:"INSTRUCTOR"`
	Takeoff    string `csv:"TAKEOFF"`
	Landing    string `csv:"LANDING"`
	Filed      string `csv:"FILED"`
	Area       string `csv:"AREA"`
}

// Instructed reports whether an instructor was aboard for this lesson.
func (l *Lesson) Instructed() bool {
	return strings.TrimSpace(l.Instructor) != ""
}

// FiledVFR reports whether the lesson was filed under visual flight rules.
func (l *Lesson) FiledVFR() bool {
	return strings.EqualFold(strings.TrimSpace(l.Filed), "VFR")
}

// FiledIFR reports whether the lesson was filed under instrument flight
// rules.
func (l *Lesson) FiledIFR() bool {
	return strings.EqualFold(strings.TrimSpace(l.Filed), "IFR")
}

// Violation reasons. Each scan collapses multiple problems into a single
// combined label; the three scans do not coordinate labels with each other.
const (
	ReasonVisibility  = "Visibility"
	ReasonWinds       = "Winds"
	ReasonCeiling     = "Ceiling"
	ReasonWeather     = "Weather"
	ReasonUnknown     = "Unknown"
	ReasonSolo        = "Solo"
	ReasonEndorsement = "Endorsement"
	ReasonIFR         = "IFR"
	ReasonCredentials = "Credentials"
	ReasonAnnual      = "Annual"
	ReasonInspection  = "Inspection"
	ReasonGrounded    = "Grounded"
	ReasonMaintenance = "Maintenance"
)

// Violation is a copy of the offending lesson with the reason appended.
// A lesson may appear once per scan that flags it.
type Violation struct {
	Student    string `csv:"STUDENT"`
	Airplane   string `csv:"AIRPLANE"`
	Instructor string `csv:"INSTRUCTOR"`
	Takeoff    string `csv:"TAKEOFF"`
	Landing    string `csv:"LANDING"`
	Filed      string `csv:"FILED"`
	Area       string `csv:"AREA"`
	Reason     string `csv:"REASON"`
}

// NewViolation copies the lesson and attaches the reason label.
func NewViolation(lesson *Lesson, reason string) Violation {
	return Violation{
		Student:    lesson.Student,
		Airplane:   lesson.Airplane,
		Instructor: lesson.Instructor,
		Takeoff:    lesson.Takeoff,
		Landing:    lesson.Landing,
		Filed:      lesson.Filed,
		Area:       lesson.Area,
		Reason:     reason,
	}
}
