package usecase

import (
	"context"

	"prod-tracker/internal/prod"
	"prod-tracker/internal/prod/form"
)

// CreateForm starts an empty create form. It is closed until Open.
func (uc *implUseCase) CreateForm(ctx context.Context) (prod.FormOutput, error) {
	f, err := form.New(prod.ModeCreate, nil, uc.deps())
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateForm form.New: %v", err)
		return prod.FormOutput{}, err
	}
	id := uc.store(f)
	return prod.FormOutput{Form: view(id, f)}, nil
}

// EditForm starts an edit form seeded from an existing batch.
func (uc *implUseCase) EditForm(ctx context.Context, input prod.EditFormInput) (prod.FormOutput, error) {
	f, err := form.New(prod.ModeEdit, &input.Record, uc.deps())
	if err != nil {
		uc.l.Warnf(ctx, "uc.EditForm form.New: %v", err)
		return prod.FormOutput{}, err
	}
	id := uc.store(f)
	return prod.FormOutput{Form: view(id, f)}, nil
}

func (uc *implUseCase) Detail(ctx context.Context, id string) (prod.FormOutput, error) {
	f, err := uc.session(id)
	if err != nil {
		return prod.FormOutput{}, err
	}
	return prod.FormOutput{Form: view(id, f)}, nil
}

func (uc *implUseCase) Open(ctx context.Context, id string) (prod.FormOutput, error) {
	f, err := uc.session(id)
	if err != nil {
		return prod.FormOutput{}, err
	}
	f.Open()
	return prod.FormOutput{Form: view(id, f)}, nil
}

func (uc *implUseCase) Close(ctx context.Context, id string) (prod.FormOutput, error) {
	f, err := uc.session(id)
	if err != nil {
		return prod.FormOutput{}, err
	}
	f.Close()
	return prod.FormOutput{Form: view(id, f)}, nil
}

// EditSelection sets a department or model choice. Whether an empty choice
// is an error depends on the form's mode.
func (uc *implUseCase) EditSelection(ctx context.Context, input prod.EditSelectionInput) (prod.FormOutput, error) {
	f, err := uc.session(input.FormID)
	if err != nil {
		return prod.FormOutput{}, err
	}

	spec := form.SpecFor(f.Mode(), input.Field, uc.now())
	if err := f.EditSelection(input.Field, input.Value, spec.Required); err != nil {
		return prod.FormOutput{}, err
	}
	return prod.FormOutput{Form: view(input.FormID, f)}, nil
}

// EditNumber parses raw into a numeric field using the field's bounds.
func (uc *implUseCase) EditNumber(ctx context.Context, input prod.EditNumberInput) (prod.FormOutput, error) {
	f, err := uc.session(input.FormID)
	if err != nil {
		return prod.FormOutput{}, err
	}

	spec := form.SpecFor(f.Mode(), input.Field, uc.now())
	if err := f.EditNumber(input.Field, input.Raw, spec.Min, spec.Max, spec.Required); err != nil {
		return prod.FormOutput{}, err
	}
	return prod.FormOutput{Form: view(input.FormID, f)}, nil
}

func (uc *implUseCase) ToggleStatus(ctx context.Context, input prod.ToggleStatusInput) (prod.FormOutput, error) {
	f, err := uc.session(input.FormID)
	if err != nil {
		return prod.FormOutput{}, err
	}
	if err := f.ToggleStatus(input.Target); err != nil {
		return prod.FormOutput{}, err
	}
	return prod.FormOutput{Form: view(input.FormID, f)}, nil
}
