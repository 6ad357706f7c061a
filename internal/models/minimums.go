package models

// MinimumsRow is one row of minimums.csv: the weather limits the school
// negotiated with its insurer for a given pilot category, meteorological
// condition, flight area, and time of day. Several rows may apply to the
// same flight.
type MinimumsRow struct {
	Category   string  `csv:"CATEGORY"`
	Conditions string  `csv:"CONDITIONS"`
	Area       string  `csv:"AREA"`
	Time       string  `csv:"TIME"`
	Ceiling    float64 `csv:"CEILING"`
	Visibility float64 `csv:"VISIBILITY"`
	Wind       float64 `csv:"WIND"`
	Crosswind  float64 `csv:"CROSSWIND"`
}

// Minimums are the resolved limits for one flight: ceiling in feet,
// visibility in statute miles, wind and crosswind in knots.
type Minimums struct {
	Ceiling    float64
	Visibility float64
	Wind       float64
	Crosswind  float64
}
