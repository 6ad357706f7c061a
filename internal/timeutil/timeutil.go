// Package timeutil parses the dataset's timestamp strings. The source
// files mix fully-zoned ISO timestamps with naive dates, so parsing takes
// a fallback location: a timestamp that carries its own offset keeps it,
// while a naive timestamp is interpreted in the supplied location.
package timeutil

import (
	"fmt"
	"time"
)

// Layouts that carry their own zone offset.
var zonedLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04Z07:00",
}

// Layouts without zone information, interpreted in the fallback location.
var naiveLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Parse converts a timestamp string to a time.Time. If the string has no
// zone offset it is localized to loc (UTC when loc is nil). An empty or
// unrecognized string returns an error; callers treat that as a date that
// never happened.
func Parse(timestamp string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, timestamp); err == nil {
			return t, nil
		}
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, timestamp, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", timestamp)
}

// ParseAt is Parse with the fallback zone borrowed from another timestamp
// instead of a named location.
func ParseAt(timestamp string, reference time.Time) (time.Time, error) {
	return Parse(timestamp, reference.Location())
}
