package usecase

import (
	"github.com/google/uuid"

	"prod-tracker/internal/metrics"
	"prod-tracker/internal/prod"
	"prod-tracker/internal/prod/form"
)

func (uc *implUseCase) deps() form.Deps {
	return form.Deps{
		Writer: uc.repo,
		Hook:   uc.reconciler,
		Logger: uc.l,
	}
}

func (uc *implUseCase) store(f *form.Form) string {
	id := uuid.NewString()
	uc.sessions.Add(id, f)
	metrics.FormsActive.Inc()
	return id
}

func (uc *implUseCase) session(id string) (*form.Form, error) {
	f, ok := uc.sessions.Get(id)
	if !ok {
		return nil, prod.ErrFormNotFound
	}
	return f, nil
}

func view(id string, f *form.Form) prod.FormView {
	v := f.Snapshot()
	v.ID = id
	return v
}
