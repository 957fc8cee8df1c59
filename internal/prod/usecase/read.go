package usecase

import (
	"context"

	"prod-tracker/internal/deptcache"
	"prod-tracker/internal/prod"
	"prod-tracker/internal/prod/options"
)

// Options returns the department and model dropdowns for a form in
// input.Mode. Create forms trigger a fetch unless one is already running,
// in which case the loading placeholders come back at once. A failed fetch
// is reported through the placeholders, not as an error.
func (uc *implUseCase) Options(ctx context.Context, input prod.OptionsInput) (prod.OptionsOutput, error) {
	snap := options.Snapshot{}
	if input.Mode == prod.ModeCreate {
		snap = uc.loader.Snapshot()
		if snap.State != options.StateLoading && snap.State != options.StateLoaded {
			var err error
			if snap, err = uc.loader.Load(ctx); err != nil {
				uc.l.Warnf(ctx, "uc.Options Load: %v", err)
			}
		}
	}

	depts, models := options.Build(input.Mode, snap)
	return prod.OptionsOutput{Depts: depts, Models: models}, nil
}

// Dept returns the cached department record with its batch list.
func (uc *implUseCase) Dept(ctx context.Context, id string) (prod.DeptOutput, error) {
	dept, ok, err := uc.cache.Read(ctx, deptcache.DeptKey(id))
	if err != nil {
		uc.l.Errorf(ctx, "uc.Dept Read: %v", err)
		return prod.DeptOutput{}, err
	}
	if !ok {
		return prod.DeptOutput{}, prod.ErrDeptNotFound
	}
	return prod.DeptOutput{Dept: dept}, nil
}
