package audit

import (
	"log/slog"
	"sort"
	"time"

	"flightaudit/internal/models"
	"flightaudit/internal/timeutil"
)

// The inspection scan replays each aircraft's year as a single
// chronological timeline of lessons and shop visits. A lesson's
// compliance depends on everything that happened to the plane before it,
// so the hour counter and annual date are folded through the sorted
// events rather than recomputed per lesson.

const (
	maxHoursBetweenService = 100.0
	maxDaysBetweenAnnuals  = 365
)

type eventKind int

const (
	eventLesson eventKind = iota
	eventRepair
	eventAnnual
)

// shopInterval is a period the plane spent in the shop and must not fly.
type shopInterval struct {
	in  time.Time
	out time.Time
}

// contains reports whether any part of the [takeoff, landing] flight
// overlaps the shop interval. A takeoff exactly at the in-date or a
// landing exactly at the out-date is in the shop; a landing exactly at
// the in-date is not.
func (s shopInterval) contains(takeoff, landing time.Time) bool {
	if !takeoff.Before(s.in) && takeoff.Before(s.out) {
		return true
	}
	if landing.After(s.in) && !landing.After(s.out) {
		return true
	}
	return !takeoff.After(s.in) && !landing.Before(s.out)
}

// planeRecord is the running maintenance state for one aircraft.
type planeRecord struct {
	lastAnnual time.Time
	hasAnnual  bool
	hours      float64
	shop       []shopInterval
}

type timelineEvent struct {
	tail    string
	at      time.Time
	kind    eventKind
	lesson  *models.Lesson
	landing time.Time
}

// InspectionViolations scans every lesson for maintenance problems: a
// plane more than a year past its annual inspection ("Annual"), a plane
// flown past 100 hours since its last service ("Inspection"), or a plane
// flown while the repair log holds it in the shop ("Grounded"). More than
// one problem on a single lesson is reported as "Maintenance".
func (a *Auditor) InspectionViolations() []models.Violation {
	loc := a.data.DayCycle.Location()

	// Seed each plane's state from its fleet row. An empty or unreadable
	// annual date is treated as an inspection that never happened, so
	// every lesson on that plane is overdue.
	records := make(map[string]*planeRecord, len(a.data.Fleet))
	for i := range a.data.Fleet {
		plane := &a.data.Fleet[i]
		rec := &planeRecord{hours: plane.Hours}
		if at, err := timeutil.Parse(plane.Annual, loc); err == nil {
			rec.lastAnnual = at
			rec.hasAnnual = true
		}
		records[plane.TailNumber] = rec
	}

	var events []timelineEvent
	for i := range a.data.Lessons {
		lesson := &a.data.Lessons[i]
		if _, ok := records[lesson.Airplane]; !ok {
			slog.Debug("Skipping lesson with unknown airplane", "airplane", lesson.Airplane)
			continue
		}
		takeoff, err := timeutil.Parse(lesson.Takeoff, loc)
		if err != nil {
			slog.Debug("Skipping lesson with unreadable takeoff", "takeoff", lesson.Takeoff)
			continue
		}
		landing, err := timeutil.Parse(lesson.Landing, loc)
		if err != nil {
			slog.Debug("Skipping lesson with unreadable landing", "landing", lesson.Landing)
			continue
		}
		events = append(events, timelineEvent{
			tail:    lesson.Airplane,
			at:      takeoff,
			kind:    eventLesson,
			lesson:  lesson,
			landing: landing,
		})
	}
	for i := range a.data.Repairs {
		repair := &a.data.Repairs[i]
		rec, ok := records[repair.TailNumber]
		if !ok {
			slog.Debug("Skipping repair with unknown airplane", "airplane", repair.TailNumber)
			continue
		}
		in, err := timeutil.Parse(repair.InDate, loc)
		if err != nil {
			slog.Debug("Skipping repair with unreadable in-date", "in_date", repair.InDate)
			continue
		}
		kind := eventRepair
		if repair.IsAnnual() {
			kind = eventAnnual
		}
		events = append(events, timelineEvent{tail: repair.TailNumber, at: in, kind: kind})
		if out, err := timeutil.Parse(repair.OutDate, loc); err == nil {
			rec.shop = append(rec.shop, shopInterval{in: in, out: out})
		}
	}

	sort.SliceStable(events, func(i, j int) bool {
		if events[i].tail != events[j].tail {
			return events[i].tail < events[j].tail
		}
		return events[i].at.Before(events[j].at)
	})

	var violations []models.Violation
	for _, event := range events {
		rec := records[event.tail]
		switch event.kind {
		case eventAnnual:
			rec.lastAnnual = event.at
			rec.hasAnnual = true
			rec.hours = 0
		case eventRepair:
			rec.hours = 0
		case eventLesson:
			if reason := rec.check(event.at, event.landing); reason != "" {
				violations = append(violations, models.NewViolation(event.lesson, reason))
			}
			rec.hours += event.landing.Sub(event.at).Hours()
		}
	}

	slog.Info("Inspection scan complete", "events", len(events), "violations", len(violations))
	return violations
}

// check classifies a single lesson against the plane's state at takeoff.
// Exactly 365 days since the annual is compliant, as is a flight that
// lands with exactly 100.0 hours on the counter.
func (r *planeRecord) check(takeoff, landing time.Time) string {
	grounded := false
	for _, interval := range r.shop {
		if interval.contains(takeoff, landing) {
			grounded = true
			break
		}
	}

	annual := !r.hasAnnual
	if r.hasAnnual {
		days := int(takeoff.Sub(r.lastAnnual) / (24 * time.Hour))
		annual = days > maxDaysBetweenAnnuals
	}

	duration := landing.Sub(takeoff).Hours()
	inspection := r.hours >= maxHoursBetweenService || r.hours+duration > maxHoursBetweenService

	var reasons []string
	if annual {
		reasons = append(reasons, models.ReasonAnnual)
	}
	if inspection {
		reasons = append(reasons, models.ReasonInspection)
	}
	if grounded {
		reasons = append(reasons, models.ReasonGrounded)
	}
	switch len(reasons) {
	case 0:
		return ""
	case 1:
		return reasons[0]
	default:
		return models.ReasonMaintenance
	}
}
