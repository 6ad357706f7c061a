package models

import "encoding/json"

// Weather measurements in weather.json are polymorphic: each field is
// either a string sentinel ("unavailable", "calm", "clear") or a
// structured reading. Each measurement type decodes into an explicit
// status plus the measured fields, so the audit code never has to inspect
// raw JSON shapes. Anything unrecognized decodes to the Unknown status,
// which every downstream check treats as a violation.

// VisibilityStatus tags the shape of a visibility measurement.
type VisibilityStatus int

const (
	VisibilityUnknown VisibilityStatus = iota
	VisibilityUnavailable
	VisibilityMeasured
)

// Visibility is a visibility measurement. Prevailing and Units are always
// set for a measured reading; Minimum and Maximum are optional.
type Visibility struct {
	Status     VisibilityStatus
	Prevailing float64
	Minimum    *float64
	Maximum    *float64
	Units      string
}

// UnmarshalJSON decodes either the "unavailable" sentinel or a structured
// visibility reading.
func (v *Visibility) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == "unavailable" {
			v.Status = VisibilityUnavailable
		} else {
			v.Status = VisibilityUnknown
		}
		return nil
	}

	var raw struct {
		Prevailing float64  `json:"prevailing"`
		Minimum    *float64 `json:"minimum"`
		Maximum    *float64 `json:"maximum"`
		Units      string   `json:"units"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		v.Status = VisibilityUnknown
		return nil
	}
	v.Status = VisibilityMeasured
	v.Prevailing = raw.Prevailing
	v.Minimum = raw.Minimum
	v.Maximum = raw.Maximum
	v.Units = raw.Units
	return nil
}

// WindStatus tags the shape of a wind measurement.
type WindStatus int

const (
	WindUnknown WindStatus = iota
	WindUnavailable
	WindCalm
	WindMeasured
)

// Wind is a wind measurement. Absent optional fields take the same
// defaults the reports use: gusts default to the steady speed and the
// crosswind component defaults to zero.
type Wind struct {
	Status    WindStatus
	Speed     float64
	Gusts     float64
	Crosswind float64
	Units     string
}

// UnmarshalJSON decodes the "calm"/"unavailable" sentinels or a
// structured wind reading.
func (w *Wind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		switch s {
		case "calm":
			w.Status = WindCalm
		case "unavailable":
			w.Status = WindUnavailable
		default:
			w.Status = WindUnknown
		}
		return nil
	}

	var raw struct {
		Speed     *float64 `json:"speed"`
		Gusts     *float64 `json:"gusts"`
		Crosswind *float64 `json:"crosswind"`
		Units     string   `json:"units"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		w.Status = WindUnknown
		return nil
	}
	w.Status = WindMeasured
	if raw.Speed != nil {
		w.Speed = *raw.Speed
	}
	if raw.Gusts != nil {
		w.Gusts = *raw.Gusts
	} else {
		w.Gusts = w.Speed
	}
	if raw.Crosswind != nil {
		w.Crosswind = *raw.Crosswind
	}
	w.Units = raw.Units
	if w.Units == "" {
		w.Units = "KT"
	}
	return nil
}

// SkyStatus tags the shape of a sky (ceiling) measurement.
type SkyStatus int

const (
	SkyUnknown SkyStatus = iota
	SkyUnavailable
	SkyClear
	SkyLayers
)

// CloudLayer is a single layer in a sky measurement. Only layers typed
// "broken", "overcast", or "indefinite ceiling" count toward the ceiling.
type CloudLayer struct {
	Cover  string  `json:"cover"`
	Type   string  `json:"type"`
	Height float64 `json:"height"`
	Units  string  `json:"units"`
}

// Obscuring reports whether the layer counts as a ceiling.
func (c *CloudLayer) Obscuring() bool {
	switch c.Type {
	case "broken", "overcast", "indefinite ceiling":
		return true
	}
	return false
}

// Sky is a sky measurement: clear, unavailable, or a list of cloud layers.
type Sky struct {
	Status SkyStatus
	Layers []CloudLayer
}

// UnmarshalJSON decodes the "clear"/"unavailable" sentinels or a list of
// cloud layers.
func (s *Sky) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		switch str {
		case "clear":
			s.Status = SkyClear
		case "unavailable":
			s.Status = SkyUnavailable
		default:
			s.Status = SkyUnknown
		}
		return nil
	}

	var layers []CloudLayer
	if err := json.Unmarshal(data, &layers); err != nil {
		s.Status = SkyUnknown
		return nil
	}
	s.Status = SkyLayers
	s.Layers = layers
	return nil
}

// WeatherReport is one timestamped observation from weather.json. Any of
// the three measurements may be absent, which downstream checks treat as
// a violation (bad record keeping).
type WeatherReport struct {
	Visibility *Visibility `json:"visibility"`
	Wind       *Wind       `json:"wind"`
	Sky        *Sky        `json:"sky"`
	Code       string      `json:"code"`
}

// WeatherLog maps ISO timestamp strings to observations.
type WeatherLog map[string]*WeatherReport
