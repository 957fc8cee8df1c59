package form

import (
	"context"

	"prod-tracker/internal/model"
	"prod-tracker/internal/prod"
)

// Outcome describes a finished Submit.
type Outcome struct {
	Result  prod.SubmitResult
	Written *model.Prod
	// HookErr is the commit hook failure, if any. The write itself stands.
	HookErr error
}

// Submit validates the form and, when it passes, sends the payload to the
// writer. Validation failures only raise field error flags. A write failure
// is stored as the submission error and returned; the form stays open with
// its edits so the user can retry.
func (f *Form) Submit(ctx context.Context) (Outcome, error) {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return Outcome{Result: prod.SubmitBlocked}, prod.ErrSubmitInFlight
	}

	blocked := false
	for _, field := range f.mode.RequiredFields() {
		if f.fields.Empty(field) {
			f.markErr(field)
			blocked = true
		}
	}
	for _, field := range prod.AllFields() {
		if f.fields.Err(field) {
			blocked = true
		}
	}
	if blocked {
		f.mu.Unlock()
		return Outcome{Result: prod.SubmitBlocked}, nil
	}

	payload := BuildPayload(f.mode, f.recordID, f.fields)
	f.submitting = true
	f.mu.Unlock()

	written, err := f.writer.UpsertProd(ctx, payload)

	var hookErr error
	if err == nil && f.hook != nil {
		if hookErr = f.hook.AfterCommit(ctx, written); hookErr != nil {
			f.l.Warnf(ctx, "form.Submit AfterCommit %s: %v", written.ID, hookErr)
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false

	if err != nil {
		f.submissionErr = err
		return Outcome{Result: prod.SubmitFailed}, err
	}

	f.submissionErr = nil
	f.open = false
	return Outcome{Result: prod.SubmitSucceeded, Written: &written, HookErr: hookErr}, nil
}
