// Package audit implements the rule checks for the flight school audit:
// pilot certification, weather minimums, endorsements, and the
// per-aircraft maintenance timeline. Every check here is a pure function
// over the loaded dataset; none of them performs I/O or fails mid-scan.
package audit

import (
	"time"

	"flightaudit/internal/models"
	"flightaudit/internal/timeutil"
)

// Certification is a pilot's certification tier at a point in time.
type Certification int

const (
	// PilotInvalid marks a flight before the pilot even joined the school.
	PilotInvalid Certification = iota - 1
	// PilotNovice has joined the school but not soloed.
	PilotNovice
	// PilotStudent has soloed but holds no license.
	PilotStudent
	// PilotCertified holds a private license with under 50 hours past it.
	PilotCertified
	// PilotFiftyHours is 50 hours past the license, an insurance threshold.
	PilotFiftyHours
)

// Certify returns the pilot's certification tier at the time of takeoff.
// A threshold counts as met when its date is on or before takeoff; empty
// or unparseable dates are never met.
func Certify(takeoff time.Time, pilot *models.Pilot) Certification {
	joined, ok := milestone(pilot.Joined, takeoff)
	if !ok || takeoff.Before(joined) {
		return PilotInvalid
	}
	if at, ok := milestone(pilot.FiftyHours, takeoff); ok && !takeoff.Before(at) {
		return PilotFiftyHours
	}
	if at, ok := milestone(pilot.License, takeoff); ok && !takeoff.Before(at) {
		return PilotCertified
	}
	if at, ok := milestone(pilot.Solo, takeoff); ok && !takeoff.Before(at) {
		return PilotStudent
	}
	return PilotNovice
}

// HasInstrumentRating reports whether the pilot was instrument rated at
// takeoff. A rated pilot may still choose to fly VFR.
func HasInstrumentRating(takeoff time.Time, pilot *models.Pilot) bool {
	at, ok := milestone(pilot.Instrument, takeoff)
	return ok && !takeoff.Before(at)
}

// HasAdvancedEndorsement reports whether the pilot could solo an advanced
// plane (retractable gear) at takeoff.
func HasAdvancedEndorsement(takeoff time.Time, pilot *models.Pilot) bool {
	at, ok := milestone(pilot.Advanced, takeoff)
	return ok && !takeoff.Before(at)
}

// HasMultiengineEndorsement reports whether the pilot could solo a
// multiengine plane at takeoff.
func HasMultiengineEndorsement(takeoff time.Time, pilot *models.Pilot) bool {
	at, ok := milestone(pilot.Multiengine, takeoff)
	return ok && !takeoff.Before(at)
}

// milestone parses a qualification date, borrowing the takeoff's zone
// when the stored date is naive.
func milestone(date string, takeoff time.Time) (time.Time, bool) {
	if date == "" {
		return time.Time{}, false
	}
	at, err := timeutil.ParseAt(date, takeoff)
	if err != nil {
		return time.Time{}, false
	}
	return at, true
}
