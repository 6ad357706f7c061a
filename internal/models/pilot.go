package models

import "strings"

// Pilot represents one row of students.csv.
// The date columns are kept as the raw strings from the file; an empty or
// unparseable date means the milestone was never reached.
type Pilot struct {
	ID          string `csv:"ID"`
	LastName    string `csv:"LASTNAME"`
	FirstName   string `csv:"FIRSTNAME"`
	Joined      string `csv:"JOINED"`
	Solo        string `csv:"SOLO"`
	License     string `csv:"LICENSE"`
	FiftyHours  string `csv:"50 HOURS"`
	Instrument  string `csv:"INSTRUMENT"`
	Advanced    string `csv:"ADVANCED"`
	Multiengine string `csv:"MULTIENGINE"`
}

// Instructor represents one row of instructors.csv.
// The capability columns are Yes/No strings in the file.
type Instructor struct {
	ID        string `csv:"ID"`
	LastName  string `csv:"LASTNAME"`
	FirstName string `csv:"FIRSTNAME"`
	CFI       string `csv:"CFI"`
	CFII      string `csv:"CFII"`
	MEI       string `csv:"MEI"`
}

// TeachesInstrument reports whether this instructor can take a student
// on an IFR flight.
func (i *Instructor) TeachesInstrument() bool {
	return yes(i.CFII)
}

// TeachesMultiengine reports whether this instructor can take a student
// on a multiengine flight.
func (i *Instructor) TeachesMultiengine() bool {
	return yes(i.MEI)
}

func yes(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "yes")
}
