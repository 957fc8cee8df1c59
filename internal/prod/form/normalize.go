package form

import (
	"prod-tracker/internal/model"
	"prod-tracker/internal/prod"
)

// LoadFields seeds form fields from a server record. Null attributes become
// the empty display value; BuildPayload turns them back into absent values.
func LoadFields(rec model.Prod) prod.Fields {
	return prod.Fields{
		DeptID:    prod.SelectState{Value: rec.DeptID()},
		ModelID:   prod.SelectState{Value: rec.ModelID()},
		Melt:      prod.NumberState{Value: prod.Int(rec.Melt)},
		MeltShift: prod.NumberState{Value: loadInt(rec.MeltShift)},
		Number:    prod.NumberState{Value: prod.Int(rec.Number)},
		Year:      prod.NumberState{Value: prod.Int(rec.Year)},
		Progress:  prod.NumberState{Value: loadInt(rec.Progress)},
		Status:    prod.StatusFromFlags(loadBool(rec.HasDefect), loadBool(rec.IsSpoiled)),
	}
}

// BuildPayload assembles the write input from validated fields. Empty or
// zero optional numbers and cleared toggles are sent as absent. In Edit mode the
// record id is attached and the identity fields are left out.
func BuildPayload(mode prod.Mode, recordID string, fields prod.Fields) prod.Payload {
	p := prod.Payload{
		Melt:      intOrZero(fields.Melt.Value),
		MeltShift: absentIfZero(fields.MeltShift.Value),
		Number:    intOrZero(fields.Number.Value),
		Year:      intOrZero(fields.Year.Value),
		Progress:  absentIfZero(fields.Progress.Value),
		HasDefect: absentIfFalse(fields.Status.HasDefect()),
		IsSpoiled: absentIfFalse(fields.Status.IsSpoiled()),
	}

	if mode == prod.ModeEdit {
		id := recordID
		p.ID = &id
		return p
	}

	deptID, modelID := fields.DeptID.Value, fields.ModelID.Value
	p.DeptID = &deptID
	p.ModelID = &modelID
	return p
}

func loadInt(v *int) prod.IntValue {
	if v == nil {
		return prod.EmptyInt
	}
	return prod.Int(*v)
}

func loadBool(v *bool) bool {
	return v != nil && *v
}

func intOrZero(v prod.IntValue) int {
	n, _ := v.Get()
	return n
}

func absentIfZero(v prod.IntValue) *int {
	n, ok := v.Get()
	if !ok || n == 0 {
		return nil
	}
	return &n
}

func absentIfFalse(b bool) *bool {
	if !b {
		return nil
	}
	return &b
}
