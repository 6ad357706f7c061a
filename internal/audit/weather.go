package audit

import (
	"log/slog"
	"time"

	"flightaudit/internal/models"
	"flightaudit/internal/timeutil"
)

// Unit conversions used by the weather checks.
const (
	feetPerStatuteMile     = 5280.0
	knotsPerMeterPerSecond = 1.94384
)

// badVisibility reports whether the visibility reading violates the
// minimum in statute miles. A measured reading is judged by its minimum
// visibility when recorded, else by the prevailing visibility. Missing or
// unavailable readings are violations: the school kept bad records.
func badVisibility(visibility *models.Visibility, minimum float64) bool {
	if visibility == nil {
		return true
	}
	switch visibility.Status {
	case models.VisibilityMeasured:
		value := visibility.Prevailing
		if visibility.Minimum != nil {
			value = *visibility.Minimum
		}
		if visibility.Units == "FT" {
			value /= feetPerStatuteMile
		}
		return value < minimum
	default:
		return true
	}
}

// badWinds reports whether the wind reading violates the wind or
// crosswind maximums in knots. The effective wind is the worse of the
// steady speed and the gusts. Calm winds never violate; unavailable or
// unrecognized readings always do.
func badWinds(wind *models.Wind, maxWind, maxCross float64) bool {
	if wind == nil {
		return true
	}
	switch wind.Status {
	case models.WindCalm:
		return false
	case models.WindMeasured:
		speed := wind.Speed
		gusts := wind.Gusts
		cross := wind.Crosswind
		if wind.Units == "MPS" {
			speed *= knotsPerMeterPerSecond
			gusts *= knotsPerMeterPerSecond
			cross *= knotsPerMeterPerSecond
		}
		worst := speed
		if gusts > worst {
			worst = gusts
		}
		return worst > maxWind || cross > maxCross
	default:
		return true
	}
}

// badCeiling reports whether the sky reading violates the minimum ceiling
// in feet. Only broken, overcast, and indefinite-ceiling layers count; a
// sky with nothing worse than scattered clouds never violates. Clear
// skies never violate; unavailable or unrecognized readings always do.
func badCeiling(sky *models.Sky, minimum float64) bool {
	if sky == nil {
		return true
	}
	switch sky.Status {
	case models.SkyClear:
		return false
	case models.SkyLayers:
		lowest := 0.0
		found := false
		for i := range sky.Layers {
			layer := &sky.Layers[i]
			if !layer.Obscuring() || layer.Units != "FT" {
				continue
			}
			if !found || layer.Height < lowest {
				lowest = layer.Height
				found = true
			}
		}
		if !found {
			return false
		}
		return lowest < minimum
	default:
		return true
	}
}

// ReportFor returns the weather observation in effect at takeoff: the
// report with the exact takeoff timestamp if one exists, otherwise the
// chronologically latest report strictly before takeoff. It returns nil
// when no report exists at or before takeoff.
func ReportFor(takeoff time.Time, weather models.WeatherLog) *models.WeatherReport {
	if report, ok := weather[takeoff.Format("2006-01-02T15:04:05-07:00")]; ok {
		return report
	}

	var best time.Time
	var found *models.WeatherReport
	for key, report := range weather {
		at, err := timeutil.ParseAt(key, takeoff)
		if err != nil {
			continue
		}
		if at.Before(takeoff) && (found == nil || at.After(best)) {
			best = at
			found = report
		}
	}
	return found
}

// WeatherViolation classifies one observation against the resolved
// minimums. It returns the empty string when the flight is fine, the
// offending category when exactly one check fails, "Weather" when more
// than one fails, and "Unknown" when there is no observation to judge or
// no minimums could be resolved for the flight.
func WeatherViolation(report *models.WeatherReport, minimums *models.Minimums) string {
	if report == nil || minimums == nil {
		return models.ReasonUnknown
	}

	vis := badVisibility(report.Visibility, minimums.Visibility)
	wind := badWinds(report.Wind, minimums.Wind, minimums.Crosswind)
	ceil := badCeiling(report.Sky, minimums.Ceiling)

	count := 0
	for _, v := range []bool{vis, wind, ceil} {
		if v {
			count++
		}
	}
	switch {
	case count == 0:
		return ""
	case count > 1:
		return models.ReasonWeather
	case vis:
		return models.ReasonVisibility
	case wind:
		return models.ReasonWinds
	default:
		return models.ReasonCeiling
	}
}

// WeatherViolations scans every lesson for takeoffs that violated the
// school's weather minimums, judged at the moment of takeoff only.
func (a *Auditor) WeatherViolations() []models.Violation {
	loc := a.data.DayCycle.Location()

	var violations []models.Violation
	for i := range a.data.Lessons {
		lesson := &a.data.Lessons[i]
		pilot := a.data.Pilot(lesson.Student)
		if pilot == nil {
			slog.Debug("Skipping lesson with unknown student", "student", lesson.Student)
			continue
		}
		takeoff, err := timeutil.Parse(lesson.Takeoff, loc)
		if err != nil {
			slog.Debug("Skipping lesson with unreadable takeoff", "takeoff", lesson.Takeoff)
			continue
		}

		daytime, _ := a.data.DayCycle.Daytime(takeoff)
		cert := Certify(takeoff, pilot)
		minimums := ResolveMinimums(cert, lesson.Area, lesson.Instructed(), lesson.FiledVFR(), daytime, a.data.Minimums)
		report := ReportFor(takeoff, a.data.Weather)

		if reason := WeatherViolation(report, minimums); reason != "" {
			violations = append(violations, models.NewViolation(lesson, reason))
		}
	}

	slog.Info("Weather scan complete", "lessons", len(a.data.Lessons), "violations", len(violations))
	return violations
}
