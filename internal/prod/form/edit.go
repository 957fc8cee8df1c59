package form

import (
	"fmt"

	"prod-tracker/internal/prod"
)

// EditSelection stores a choice field. The field is flagged when it is
// required and value is empty.
func (f *Form) EditSelection(field prod.Field, value string, required bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	slot, err := f.selectSlot(field)
	if err != nil {
		return err
	}
	*slot = prod.SelectState{
		Value: value,
		Err:   required && value == "",
	}
	return nil
}

// EditNumber parses raw into a numeric field and validates it against
// [min, max]. Unparsable input stores the empty value. An empty optional
// field is valid; an empty required field is not.
func (f *Form) EditNumber(field prod.Field, raw string, min, max int, required bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	slot, err := f.numberSlot(field)
	if err != nil {
		return err
	}
	v := prod.ParseInt(raw)
	*slot = prod.NumberState{
		Value: v,
		Err:   numberErr(v, min, max, required),
	}
	return nil
}

// ToggleStatus flips one of the two mutually exclusive status toggles.
func (f *Form) ToggleStatus(target prod.Status) error {
	if target != prod.StatusDefect && target != prod.StatusSpoiled {
		return fmt.Errorf("%w: %s", prod.ErrUnknownStatus, target)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields.Status = f.fields.Status.Toggle(target)
	return nil
}

func numberErr(v prod.IntValue, min, max int, required bool) bool {
	n, ok := v.Get()
	if !ok {
		return required
	}
	return n < min || n > max
}

func (f *Form) selectSlot(field prod.Field) (*prod.SelectState, error) {
	if !field.IsSelection() {
		return nil, fmt.Errorf("%w: %s is not a selection", prod.ErrUnknownField, field)
	}
	if f.mode == prod.ModeEdit {
		return nil, fmt.Errorf("%w: %s", prod.ErrFieldLocked, field)
	}
	if field == prod.FieldDeptID {
		return &f.fields.DeptID, nil
	}
	return &f.fields.ModelID, nil
}

func (f *Form) numberSlot(field prod.Field) (*prod.NumberState, error) {
	switch field {
	case prod.FieldMelt:
		return &f.fields.Melt, nil
	case prod.FieldMeltShift:
		return &f.fields.MeltShift, nil
	case prod.FieldNumber:
		return &f.fields.Number, nil
	case prod.FieldYear:
		return &f.fields.Year, nil
	case prod.FieldProgress:
		return &f.fields.Progress, nil
	}
	return nil, fmt.Errorf("%w: %s is not numeric", prod.ErrUnknownField, field)
}

// markErr sets the error flag of any field.
func (f *Form) markErr(field prod.Field) {
	switch field {
	case prod.FieldDeptID:
		f.fields.DeptID.Err = true
	case prod.FieldModelID:
		f.fields.ModelID.Err = true
	default:
		if slot, err := f.numberSlot(field); err == nil {
			slot.Err = true
		}
	}
}
