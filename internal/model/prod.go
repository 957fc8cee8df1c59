package model

// Prod is a production batch as returned by the data API.
// Nullable attributes are pointers; nil means the server holds null.
type Prod struct {
	ID        string    `json:"id"`
	Dept      *DeptRef  `json:"dept,omitempty"`
	Model     *ModelRef `json:"model,omitempty"`
	Melt      int       `json:"melt"`
	MeltShift *int      `json:"meltShift"`
	Number    int       `json:"number"`
	Year      int       `json:"year"`
	Progress  *int      `json:"progress"`
	HasDefect *bool     `json:"hasDefect"`
	IsSpoiled *bool     `json:"isSpoiled"`
}

// DeptRef is the back-pointer from a Prod to the department that owns it.
type DeptRef struct {
	ID string `json:"id"`
}

// ModelRef identifies the product model a batch was made of.
type ModelRef struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// DeptID returns the parent department id, or "" when the reference is missing.
func (p Prod) DeptID() string {
	if p.Dept == nil {
		return ""
	}
	return p.Dept.ID
}

// ModelID returns the product model id, or "" when the reference is missing.
func (p Prod) ModelID() string {
	if p.Model == nil {
		return ""
	}
	return p.Model.ID
}
