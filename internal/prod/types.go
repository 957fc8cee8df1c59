package prod

import "prod-tracker/internal/model"

// --- Form State ---

// SelectState is a choice field together with its error flag.
type SelectState struct {
	Value string
	Err   bool
}

// NumberState is a numeric field together with its error flag.
type NumberState struct {
	Value IntValue
	Err   bool
}

// Fields holds every editable attribute of a batch form.
type Fields struct {
	DeptID    SelectState
	ModelID   SelectState
	Melt      NumberState
	MeltShift NumberState
	Number    NumberState
	Year      NumberState
	Progress  NumberState
	Status    Status
}

// Empty reports whether the field currently holds the empty value.
func (f Fields) Empty(field Field) bool {
	switch field {
	case FieldDeptID:
		return f.DeptID.Value == ""
	case FieldModelID:
		return f.ModelID.Value == ""
	case FieldMelt:
		return f.Melt.Value.IsEmpty()
	case FieldMeltShift:
		return f.MeltShift.Value.IsEmpty()
	case FieldNumber:
		return f.Number.Value.IsEmpty()
	case FieldYear:
		return f.Year.Value.IsEmpty()
	case FieldProgress:
		return f.Progress.Value.IsEmpty()
	}
	return true
}

// Err returns the error flag of field.
func (f Fields) Err(field Field) bool {
	switch field {
	case FieldDeptID:
		return f.DeptID.Err
	case FieldModelID:
		return f.ModelID.Err
	case FieldMelt:
		return f.Melt.Err
	case FieldMeltShift:
		return f.MeltShift.Err
	case FieldNumber:
		return f.Number.Err
	case FieldYear:
		return f.Year.Err
	case FieldProgress:
		return f.Progress.Err
	}
	return false
}

// FieldSpec is the input constraint of a field.
type FieldSpec struct {
	Min      int
	Max      int
	Required bool
}

// FormView is a read-only snapshot of a form.
type FormView struct {
	ID            string
	Mode          Mode
	RecordID      string
	Open          bool
	Submitting    bool
	Fields        Fields
	SubmissionErr error
}

// SubmitResult tells how a submit ended.
type SubmitResult int

const (
	// SubmitBlocked means validation failed and nothing was sent.
	SubmitBlocked SubmitResult = iota
	// SubmitFailed means the write operation returned an error.
	SubmitFailed
	// SubmitSucceeded means the write committed and the form closed.
	SubmitSucceeded
)

func (r SubmitResult) String() string {
	switch r {
	case SubmitFailed:
		return "failed"
	case SubmitSucceeded:
		return "succeeded"
	default:
		return "blocked"
	}
}

// --- Submission ---

// Payload is the validated input sent to the write operation. Nil pointers
// are absent values and encode as null, so the server can tell "clear this"
// from an empty string. DeptID and ModelID are only sent on create.
type Payload struct {
	ID        *string `json:"id,omitempty"`
	DeptID    *string `json:"deptId,omitempty"`
	ModelID   *string `json:"modelId,omitempty"`
	Melt      int     `json:"melt"`
	MeltShift *int    `json:"meltShift"`
	Number    int     `json:"number"`
	Year      int     `json:"year"`
	Progress  *int    `json:"progress"`
	HasDefect *bool   `json:"hasDefect"`
	IsSpoiled *bool   `json:"isSpoiled"`
}

// Option is one entry of a dropdown list.
type Option struct {
	Label string
	Value string
}

// --- UseCase Inputs ---

type EditFormInput struct {
	Record model.Prod
}

type EditSelectionInput struct {
	FormID string
	Field  Field
	Value  string
}

type EditNumberInput struct {
	FormID string
	Field  Field
	Raw    string
}

type ToggleStatusInput struct {
	FormID string
	Target Status
}

type OptionsInput struct {
	Mode Mode
}

// --- UseCase Outputs ---

type FormOutput struct {
	Form FormView
}

type SubmitOutput struct {
	Result SubmitResult
	Form   FormView
	Prod   *model.Prod
}

type OptionsOutput struct {
	Depts  []Option
	Models []Option
}

type DeptOutput struct {
	Dept model.Dept
}
