package usecase

import (
	"context"
	"errors"
	"time"

	"prod-tracker/internal/metrics"
	"prod-tracker/internal/prod"
)

// Submit validates and sends the form. A blocked or failed submit is not an
// error of this call: the outcome is in Result and the form view carries the
// field flags or the submission error. Only a concurrent submit on the same
// form returns an error.
func (uc *implUseCase) Submit(ctx context.Context, id string) (prod.SubmitOutput, error) {
	f, err := uc.session(id)
	if err != nil {
		return prod.SubmitOutput{}, err
	}
	mode := f.Mode().String()

	start := time.Now()
	out, err := f.Submit(ctx)
	if errors.Is(err, prod.ErrSubmitInFlight) {
		return prod.SubmitOutput{}, err
	}
	if out.Result != prod.SubmitBlocked {
		metrics.WriteDuration.WithLabelValues(mode).Observe(time.Since(start).Seconds())
	}
	metrics.FormSubmissions.WithLabelValues(mode, out.Result.String()).Inc()

	if err != nil {
		uc.l.Warnf(ctx, "uc.Submit UpsertProd %s: %v", id, err)
	}
	if out.HookErr != nil {
		uc.l.Errorf(ctx, "uc.Submit Reconcile %s: %v", id, out.HookErr)
	}

	return prod.SubmitOutput{
		Result: out.Result,
		Form:   view(id, f),
		Prod:   out.Written,
	}, nil
}
