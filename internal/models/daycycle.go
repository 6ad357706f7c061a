package models

import (
	"encoding/json"
	"time"
)

// SunTimes holds the sunrise and sunset for one calendar day, as "HH:MM"
// strings in 24-hour local time.
type SunTimes struct {
	Sunrise string `json:"sunrise"`
	Sunset  string `json:"sunset"`
}

// DayCycle is the sunrise/sunset table from daycycle.json. The top level
// of the file mixes the timezone name with year keys, so it needs a
// custom decoder. Days is keyed by year string, then by "mm-dd".
type DayCycle struct {
	Timezone string
	Days     map[string]map[string]SunTimes

	loc *time.Location
}

// UnmarshalJSON splits the timezone entry from the year tables.
func (d *DayCycle) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	d.Days = make(map[string]map[string]SunTimes)
	for key, value := range raw {
		if key == "timezone" {
			if err := json.Unmarshal(value, &d.Timezone); err != nil {
				return err
			}
			continue
		}
		var days map[string]SunTimes
		if err := json.Unmarshal(value, &days); err != nil {
			// Non-year entries (e.g. airport metadata) are ignored.
			continue
		}
		d.Days[key] = days
	}
	return nil
}

// Location resolves the table's timezone, falling back to UTC when the
// name is missing or unknown. The lookup is cached.
func (d *DayCycle) Location() *time.Location {
	if d.loc != nil {
		return d.loc
	}
	loc, err := time.LoadLocation(d.Timezone)
	if err != nil || d.Timezone == "" {
		loc = time.UTC
	}
	d.loc = loc
	return d.loc
}

// Daytime reports whether t falls between sunrise and sunset. The second
// result is false when the table has no entry for t's date or no timezone,
// in which case the caller cannot resolve day or night.
func (d *DayCycle) Daytime(t time.Time) (bool, bool) {
	if d.Timezone == "" {
		return false, false
	}

	loc := d.Location()
	t = t.In(loc)

	year := t.Format("2006")
	monthDay := t.Format("01-02")
	days, ok := d.Days[year]
	if !ok {
		return false, false
	}
	sun, ok := days[monthDay]
	if !ok || sun.Sunrise == "" || sun.Sunset == "" {
		return false, false
	}

	date := t.Format("2006-01-02")
	sunrise, err := time.ParseInLocation("2006-01-02T15:04", date+"T"+sun.Sunrise, loc)
	if err != nil {
		return false, false
	}
	sunset, err := time.ParseInLocation("2006-01-02T15:04", date+"T"+sun.Sunset, loc)
	if err != nil {
		return false, false
	}

	return t.After(sunrise) && t.Before(sunset), true
}
