package audit

import (
	"flightaudit/internal/models"
)

// ResolveMinimums selects the binding weather limits for one flight from
// the policy table. A row matches when all four of its condition columns
// apply to the flight; several qualification paths may each match, and
// the flight is compliant if it satisfies the most permissive applicable
// limits. The result therefore aggregates elementwise across matches:
// lowest ceiling, lowest visibility, highest wind, highest crosswind.
// With zero matching rows the result is nil and the weather check must
// treat the flight as unclassifiable.
func ResolveMinimums(cert Certification, area string, instructed, vfr, daytime bool, table []models.MinimumsRow) *models.Minimums {
	var result *models.Minimums
	for i := range table {
		row := &table[i]
		if !categoryMatches(row.Category, cert, instructed) {
			continue
		}
		if !conditionsMatch(row.Conditions, vfr) {
			continue
		}
		if !areaMatches(row.Area, area) {
			continue
		}
		if !timeMatches(row.Time, daytime) {
			continue
		}

		if result == nil {
			result = &models.Minimums{
				Ceiling:    row.Ceiling,
				Visibility: row.Visibility,
				Wind:       row.Wind,
				Crosswind:  row.Crosswind,
			}
			continue
		}
		if row.Ceiling < result.Ceiling {
			result.Ceiling = row.Ceiling
		}
		if row.Visibility < result.Visibility {
			result.Visibility = row.Visibility
		}
		if row.Wind > result.Wind {
			result.Wind = row.Wind
		}
		if row.Crosswind > result.Crosswind {
			result.Crosswind = row.Crosswind
		}
	}
	return result
}

// categoryMatches applies the CATEGORY column. "Dual" matches any flight
// with an instructor aboard, regardless of tier. "50 Hours" requires that
// exact tier; "Certified" and "Student" match that tier or above.
func categoryMatches(category string, cert Certification, instructed bool) bool {
	switch category {
	case "Dual":
		return instructed
	case "50 Hours":
		return cert == PilotFiftyHours
	case "Certified":
		return cert >= PilotCertified
	case "Student":
		return cert >= PilotStudent
	}
	return true
}

func conditionsMatch(conditions string, vfr bool) bool {
	if vfr {
		return conditions == "VMC"
	}
	return conditions == "IMC"
}

// areaMatches applies the AREA column. "Any" covers every flight, and
// "Local" covers the pattern and practice area as well as local flights.
func areaMatches(rowArea, flightArea string) bool {
	switch rowArea {
	case "Any":
		return true
	case "Local":
		switch flightArea {
		case "Pattern", "Practice Area", "Local":
			return true
		}
		return false
	}
	return rowArea == flightArea
}

func timeMatches(rowTime string, daytime bool) bool {
	if daytime {
		return rowTime == "Day"
	}
	return rowTime == "Night"
}
