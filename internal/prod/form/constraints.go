package form

import (
	"time"

	"prod-tracker/internal/prod"
)

// First two-digit year accepted for a batch.
const minYear = 16

// SpecFor returns the input constraint of field in mode. The upper bound of
// year is the two-digit current year taken from now.
func SpecFor(mode prod.Mode, field prod.Field, now time.Time) prod.FieldSpec {
	switch field {
	case prod.FieldDeptID, prod.FieldModelID:
		return prod.FieldSpec{Required: mode == prod.ModeCreate}
	case prod.FieldMelt:
		return prod.FieldSpec{Min: 0, Max: 999, Required: true}
	case prod.FieldMeltShift:
		return prod.FieldSpec{Min: 0, Max: 3}
	case prod.FieldNumber:
		return prod.FieldSpec{Min: 1, Max: 999, Required: true}
	case prod.FieldYear:
		return prod.FieldSpec{Min: minYear, Max: now.Year() % 100, Required: true}
	case prod.FieldProgress:
		return prod.FieldSpec{Min: 0, Max: 100}
	}
	return prod.FieldSpec{}
}
