package prod

import "fmt"

// Field names an editable attribute of a batch form.
type Field int

const (
	FieldDeptID Field = iota
	FieldModelID
	FieldMelt
	FieldMeltShift
	FieldNumber
	FieldYear
	FieldProgress
)

var fieldNames = map[Field]string{
	FieldDeptID:    "deptId",
	FieldModelID:   "modelId",
	FieldMelt:      "melt",
	FieldMeltShift: "meltShift",
	FieldNumber:    "number",
	FieldYear:      "year",
	FieldProgress:  "progress",
}

// AllFields lists every field in display order.
func AllFields() []Field {
	return []Field{FieldDeptID, FieldModelID, FieldMelt, FieldMeltShift, FieldNumber, FieldYear, FieldProgress}
}

// ParseField maps a wire name such as "meltShift" to its Field.
func ParseField(s string) (Field, error) {
	for f, name := range fieldNames {
		if name == s {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, s)
}

func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// IsSelection reports whether the field is picked from an option list.
func (f Field) IsSelection() bool {
	return f == FieldDeptID || f == FieldModelID
}

// IsNumber reports whether the field holds an integer.
func (f Field) IsNumber() bool {
	switch f {
	case FieldMelt, FieldMeltShift, FieldNumber, FieldYear, FieldProgress:
		return true
	}
	return false
}
