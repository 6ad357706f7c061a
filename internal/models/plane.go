package models

import "strings"

// Plane represents one row of fleet.csv.
// Annual is the date of the last annual inspection as of the start of the
// audit. Hours is the flight time accrued since the last 100-hour service,
// again as of the start of the audit.
type Plane struct {
	TailNumber  string  `csv:"TAILNO"`
	Type        string  `csv:"TYPE"`
	Capability  string  `csv:"CAPABILITY"`
	Advanced    string  `csv:"ADVANCED"`
	Multiengine string  `csv:"MULTIENGINE"`
	Annual      string  `csv:"ANNUAL"`
	Hours       float64 `csv:"HOURS"`
}

// IsIFRCapable reports whether the plane is outfitted for instrument
// flight. A capable plane may still fly VFR lessons.
func (p *Plane) IsIFRCapable() bool {
	return strings.EqualFold(strings.TrimSpace(p.Capability), "IFR")
}

// IsAdvanced reports whether the plane requires an advanced endorsement.
func (p *Plane) IsAdvanced() bool {
	return yes(p.Advanced)
}

// IsMultiengine reports whether the plane requires a multiengine
// endorsement.
func (p *Plane) IsMultiengine() bool {
	return yes(p.Multiengine)
}

// Repair represents one row of repairs.csv. The plane is in the shop from
// InDate through OutDate and must not fly during that window. A repair
// whose description is "annual inspection" also resets the annual clock.
type Repair struct {
	TailNumber  string `csv:"TAILNO"`
	InDate      string `csv:"IN-DATE"`
	OutDate     string `csv:"OUT-DATE"`
	Description string `csv:"DESCRIPTION"`
}

// IsAnnual reports whether this repair counts as an annual inspection.
func (r *Repair) IsAnnual() bool {
	return strings.EqualFold(strings.TrimSpace(r.Description), "annual inspection")
}
