package prod

import "fmt"

// Mode decides which fields a form requires and whether identity fields are editable.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

// ParseMode accepts "create" and "edit".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "create":
		return ModeCreate, nil
	case "edit":
		return ModeEdit, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "create"
}

// RequiredFields is the set of fields that must be non-empty before a submit.
// Department and model are fixed once a batch exists, so Edit leaves them out.
func (m Mode) RequiredFields() []Field {
	if m == ModeEdit {
		return []Field{FieldMelt, FieldNumber, FieldYear}
	}
	return []Field{FieldDeptID, FieldModelID, FieldMelt, FieldNumber, FieldYear}
}

// Header is the form title shown to the user.
func (m Mode) Header() string {
	if m == ModeEdit {
		return "Редактировать продукцию"
	}
	return "Добавить продукцию"
}

// SubmitLabel is the caption of the confirm button.
func (m Mode) SubmitLabel() string {
	if m == ModeEdit {
		return "Сохранить"
	}
	return "Добавить"
}

// FailureHeader is shown above a submission error.
func (m Mode) FailureHeader() string {
	return m.SubmitLabel() + " не удалось.."
}
