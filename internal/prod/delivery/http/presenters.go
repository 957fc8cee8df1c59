package http

import (
	"prod-tracker/internal/model"
	"prod-tracker/internal/prod"
)

// --- Request DTOs ---

type editFormReq struct {
	Record model.Prod `json:"record"`
}

func (r editFormReq) validate() error {
	if r.Record.ID == "" {
		return errWrongBody
	}
	return nil
}

func (r editFormReq) toInput() prod.EditFormInput {
	return prod.EditFormInput{Record: r.Record}
}

// ---

type selectionReq struct {
	FormID string `json:"-"`
	Field  string `json:"field" binding:"required"`
	Value  string `json:"value"`

	field prod.Field
}

func (r *selectionReq) validate() error {
	f, err := prod.ParseField(r.Field)
	if err != nil {
		return err
	}
	if !f.IsSelection() {
		return prod.ErrUnknownField
	}
	r.field = f
	return nil
}

func (r selectionReq) toInput() prod.EditSelectionInput {
	return prod.EditSelectionInput{FormID: r.FormID, Field: r.field, Value: r.Value}
}

// ---

type numberReq struct {
	FormID string `json:"-"`
	Field  string `json:"field" binding:"required"`
	Value  string `json:"value"`

	field prod.Field
}

func (r *numberReq) validate() error {
	f, err := prod.ParseField(r.Field)
	if err != nil {
		return err
	}
	if !f.IsNumber() {
		return prod.ErrUnknownField
	}
	r.field = f
	return nil
}

func (r numberReq) toInput() prod.EditNumberInput {
	return prod.EditNumberInput{FormID: r.FormID, Field: r.field, Raw: r.Value}
}

// ---

type statusReq struct {
	FormID string `json:"-"`
	Status string `json:"status" binding:"required"`

	target prod.Status
}

func (r *statusReq) validate() error {
	s, err := prod.ParseStatus(r.Status)
	if err != nil {
		return err
	}
	r.target = s
	return nil
}

func (r statusReq) toInput() prod.ToggleStatusInput {
	return prod.ToggleStatusInput{FormID: r.FormID, Target: r.target}
}

// ---

type optionsReq struct {
	Mode string `form:"mode"`

	mode prod.Mode
}

func (r *optionsReq) validate() error {
	if r.Mode == "" {
		r.mode = prod.ModeCreate
		return nil
	}
	m, err := prod.ParseMode(r.Mode)
	if err != nil {
		return err
	}
	r.mode = m
	return nil
}

func (r optionsReq) toInput() prod.OptionsInput {
	return prod.OptionsInput{Mode: r.mode}
}

// --- Response DTOs ---

type fieldResp struct {
	Value any  `json:"value"`
	Error bool `json:"error"`
}

type submissionErrResp struct {
	Header  string `json:"header"`
	Message string `json:"message"`
}

type formResp struct {
	ID            string               `json:"id"`
	Mode          string               `json:"mode"`
	Header        string               `json:"header"`
	SubmitLabel   string               `json:"submit_label"`
	RecordID      string               `json:"record_id,omitempty"`
	Open          bool                 `json:"open"`
	Submitting    bool                 `json:"submitting"`
	Fields        map[string]fieldResp `json:"fields"`
	HasDefect     bool                 `json:"has_defect"`
	IsSpoiled     bool                 `json:"is_spoiled"`
	SubmissionErr *submissionErrResp   `json:"submission_error"`
}

func numberValue(v prod.IntValue) any {
	if n, ok := v.Get(); ok {
		return n
	}
	return nil
}

func newFormResp(v prod.FormView) formResp {
	fs := v.Fields
	resp := formResp{
		ID:          v.ID,
		Mode:        v.Mode.String(),
		Header:      v.Mode.Header(),
		SubmitLabel: v.Mode.SubmitLabel(),
		RecordID:    v.RecordID,
		Open:        v.Open,
		Submitting:  v.Submitting,
		Fields: map[string]fieldResp{
			prod.FieldDeptID.String():    {Value: fs.DeptID.Value, Error: fs.DeptID.Err},
			prod.FieldModelID.String():   {Value: fs.ModelID.Value, Error: fs.ModelID.Err},
			prod.FieldMelt.String():      {Value: numberValue(fs.Melt.Value), Error: fs.Melt.Err},
			prod.FieldMeltShift.String(): {Value: numberValue(fs.MeltShift.Value), Error: fs.MeltShift.Err},
			prod.FieldNumber.String():    {Value: numberValue(fs.Number.Value), Error: fs.Number.Err},
			prod.FieldYear.String():      {Value: numberValue(fs.Year.Value), Error: fs.Year.Err},
			prod.FieldProgress.String():  {Value: numberValue(fs.Progress.Value), Error: fs.Progress.Err},
		},
		HasDefect: fs.Status.HasDefect(),
		IsSpoiled: fs.Status.IsSpoiled(),
	}
	if v.SubmissionErr != nil {
		resp.SubmissionErr = &submissionErrResp{
			Header:  v.Mode.FailureHeader(),
			Message: v.SubmissionErr.Error(),
		}
	}
	return resp
}

func (h *handler) newFormResp(out prod.FormOutput) formResp {
	return newFormResp(out.Form)
}

type submitResp struct {
	Result string      `json:"result"`
	Form   formResp    `json:"form"`
	Prod   *model.Prod `json:"prod,omitempty"`
}

func (h *handler) newSubmitResp(out prod.SubmitOutput) submitResp {
	return submitResp{
		Result: out.Result.String(),
		Form:   newFormResp(out.Form),
		Prod:   out.Prod,
	}
}

type optionResp struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type optionsResp struct {
	Depts  []optionResp `json:"depts"`
	Models []optionResp `json:"models"`
}

func newOptionResps(opts []prod.Option) []optionResp {
	resps := make([]optionResp, len(opts))
	for i, o := range opts {
		resps[i] = optionResp{Label: o.Label, Value: o.Value}
	}
	return resps
}

func (h *handler) newOptionsResp(out prod.OptionsOutput) optionsResp {
	return optionsResp{
		Depts:  newOptionResps(out.Depts),
		Models: newOptionResps(out.Models),
	}
}

type deptResp struct {
	Dept model.Dept `json:"dept"`
}

func (h *handler) newDeptResp(out prod.DeptOutput) deptResp {
	return deptResp{Dept: out.Dept}
}
