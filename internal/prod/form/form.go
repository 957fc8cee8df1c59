package form

import (
	"errors"
	"sync"

	"prod-tracker/internal/model"
	"prod-tracker/internal/prod"
	pkgLog "prod-tracker/pkg/log"
)

// Deps are the collaborators a Form talks to.
type Deps struct {
	Writer prod.Writer
	// Hook runs after a successful write. Optional.
	Hook   prod.CommitHook
	Logger pkgLog.Logger
}

// Form is the state machine behind the create/edit batch dialog.
// All methods are safe for concurrent use; at most one Submit may be
// outstanding at a time.
type Form struct {
	mu sync.Mutex

	mode     prod.Mode
	recordID string

	open          bool
	fields        prod.Fields
	submissionErr error
	submitting    bool

	writer prod.Writer
	hook   prod.CommitHook
	l      pkgLog.Logger
}

// New creates a form. Create mode starts empty; Edit mode is seeded from
// record, which is then mandatory.
func New(mode prod.Mode, record *model.Prod, deps Deps) (*Form, error) {
	if deps.Writer == nil {
		return nil, errors.New("writer is required")
	}
	if deps.Logger == nil {
		return nil, errors.New("logger is required")
	}
	if mode != prod.ModeCreate && mode != prod.ModeEdit {
		return nil, prod.ErrUnknownMode
	}

	f := &Form{
		mode:   mode,
		writer: deps.Writer,
		hook:   deps.Hook,
		l:      deps.Logger,
	}

	if mode == prod.ModeEdit {
		if record == nil || record.ID == "" {
			return nil, prod.ErrMissingRecord
		}
		f.recordID = record.ID
		f.fields = LoadFields(*record)
	}

	return f, nil
}

func (f *Form) Mode() prod.Mode {
	return f.mode
}

// Open shows the form. Field values survive a close/open cycle.
func (f *Form) Open() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.open = true
}

func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.open = false
}

// Snapshot returns a copy of the current state.
func (f *Form) Snapshot() prod.FormView {
	f.mu.Lock()
	defer f.mu.Unlock()
	return prod.FormView{
		Mode:          f.mode,
		RecordID:      f.recordID,
		Open:          f.open,
		Submitting:    f.submitting,
		Fields:        f.fields,
		SubmissionErr: f.submissionErr,
	}
}
