package audit

import (
	"log/slog"
	"time"

	"flightaudit/internal/models"
	"flightaudit/internal/timeutil"
)

// badEndorsement reports whether the lesson was flown without the
// endorsement the plane requires. Every instructor is certified for
// advanced planes, so an instructed flight is only a problem when the
// plane is multiengine and the instructor holds no MEI. A solo student
// must hold the plane's endorsements before takeoff.
func badEndorsement(takeoff time.Time, pilot *models.Pilot, instructor *models.Instructor, plane *models.Plane) bool {
	if instructor != nil {
		return plane.IsMultiengine() && !instructor.TeachesMultiengine()
	}
	if plane.IsMultiengine() && !HasMultiengineEndorsement(takeoff, pilot) {
		return true
	}
	if plane.IsAdvanced() && !HasAdvancedEndorsement(takeoff, pilot) {
		return true
	}
	return false
}

// badIFR reports whether the flight could not have been a valid IFR
// flight: the plane must be IFR outfitted, an instructor aboard must
// hold a CFII, and a solo student must be instrument rated at takeoff.
func badIFR(takeoff time.Time, pilot *models.Pilot, instructor *models.Instructor, plane *models.Plane) bool {
	if !plane.IsIFRCapable() {
		return true
	}
	if instructor != nil {
		return !instructor.TeachesInstrument()
	}
	return !HasInstrumentRating(takeoff, pilot)
}

// EndorsementViolations scans every lesson for credential problems: a
// pre-solo student flying alone ("Solo"), a missing plane endorsement
// ("Endorsement"), or an invalid IFR filing ("IFR"). A solo problem
// combined with either other kind is reported as "Credentials".
func (a *Auditor) EndorsementViolations() []models.Violation {
	loc := a.data.DayCycle.Location()

	var violations []models.Violation
	for i := range a.data.Lessons {
		lesson := &a.data.Lessons[i]
		pilot := a.data.Pilot(lesson.Student)
		plane := a.data.Plane(lesson.Airplane)
		if pilot == nil || plane == nil {
			slog.Debug("Skipping lesson with unknown reference",
				"student", lesson.Student, "airplane", lesson.Airplane)
			continue
		}
		var instructor *models.Instructor
		if lesson.Instructed() {
			instructor = a.data.Instructor(lesson.Instructor)
		}
		takeoff, err := timeutil.Parse(lesson.Takeoff, loc)
		if err != nil {
			slog.Debug("Skipping lesson with unreadable takeoff", "takeoff", lesson.Takeoff)
			continue
		}

		solo := !lesson.Instructed() && Certify(takeoff, pilot) < PilotStudent
		endorsement := badEndorsement(takeoff, pilot, instructor, plane)
		ifr := lesson.FiledIFR() && badIFR(takeoff, pilot, instructor, plane)

		var reason string
		switch {
		case solo && (endorsement || ifr):
			reason = models.ReasonCredentials
		case solo:
			reason = models.ReasonSolo
		case endorsement:
			reason = models.ReasonEndorsement
		case ifr:
			reason = models.ReasonIFR
		default:
			continue
		}
		violations = append(violations, models.NewViolation(lesson, reason))
	}

	slog.Info("Endorsement scan complete", "lessons", len(a.data.Lessons), "violations", len(violations))
	return violations
}
