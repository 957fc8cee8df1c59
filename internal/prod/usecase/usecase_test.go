package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"prod-tracker/internal/deptcache/store/memory"
	"prod-tracker/internal/model"
	"prod-tracker/internal/prod"
	"prod-tracker/internal/prod/options"
	"prod-tracker/internal/prod/repository"
	"prod-tracker/internal/prod/usecase"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// fakeRepo keeps batches in memory the way the data API would.
type fakeRepo struct {
	mu      sync.Mutex
	records map[string]model.Prod
	seq     int
	err      error
	listErr  error
	listGate chan struct{}
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{records: make(map[string]model.Prod)}
}

func (r *fakeRepo) UpsertProd(ctx context.Context, in prod.Payload) (model.Prod, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return model.Prod{}, r.err
	}

	var rec model.Prod
	if in.ID != nil {
		rec = r.records[*in.ID]
	} else {
		r.seq++
		rec.ID = fmt.Sprintf("P%d", r.seq)
		rec.Dept = &model.DeptRef{ID: *in.DeptID}
		rec.Model = &model.ModelRef{ID: *in.ModelID}
	}
	rec.Melt, rec.MeltShift = in.Melt, in.MeltShift
	rec.Number, rec.Year, rec.Progress = in.Number, in.Year, in.Progress
	rec.HasDefect, rec.IsSpoiled = in.HasDefect, in.IsSpoiled
	r.records[rec.ID] = rec
	return rec, nil
}

func (r *fakeRepo) ListDeptsAndModels(ctx context.Context) (repository.ListOptionsResult, error) {
	if r.listGate != nil {
		<-r.listGate
	}
	if r.listErr != nil {
		return repository.ListOptionsResult{}, r.listErr
	}
	return repository.ListOptionsResult{
		Depts:  []model.Dept{{ID: "d2", Name: "Сборка"}, {ID: "d1", Name: "Литейный"}},
		Models: []model.ProdModel{{ID: "m1", Name: "Вал"}},
	}, nil
}

type fixture struct {
	uc     prod.UseCase
	repo   *fakeRepo
	cache  *memory.Store
	loader *options.Loader
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	repo := newFakeRepo()
	cache, err := memory.New(16)
	if err != nil {
		t.Fatalf("memory.New: %v", err)
	}
	l := &mockLogger{}
	loader := options.NewLoader(repo, time.Minute, l)
	uc := usecase.New(l, repo, cache, loader, usecase.Config{SessionTTL: time.Minute, MaxSessions: 8})
	return fixture{uc: uc, repo: repo, cache: cache, loader: loader}
}

// mustForm wraps a use case call: mustForm(t)(uc.Open(ctx, id)).
func mustForm(t *testing.T) func(prod.FormOutput, error) prod.FormView {
	t.Helper()
	return func(out prod.FormOutput, err error) prod.FormView {
		t.Helper()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return out.Form
	}
}

func fill(t *testing.T, uc prod.UseCase, id string) {
	t.Helper()
	ctx := context.Background()
	mustForm(t)(uc.EditSelection(ctx, prod.EditSelectionInput{FormID: id, Field: prod.FieldDeptID, Value: "d1"}))
	mustForm(t)(uc.EditSelection(ctx, prod.EditSelectionInput{FormID: id, Field: prod.FieldModelID, Value: "m1"}))
	mustForm(t)(uc.EditNumber(ctx, prod.EditNumberInput{FormID: id, Field: prod.FieldMelt, Raw: "12"}))
	mustForm(t)(uc.EditNumber(ctx, prod.EditNumberInput{FormID: id, Field: prod.FieldNumber, Raw: "3"}))
	mustForm(t)(uc.EditNumber(ctx, prod.EditNumberInput{FormID: id, Field: prod.FieldYear, Raw: "22"}))
}

func TestCreateSubmitEditFlow(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)

	created := mustForm(t)(fx.uc.CreateForm(ctx))
	if created.ID == "" || created.Mode != prod.ModeCreate || created.Open {
		t.Fatalf("unexpected new form: %+v", created)
	}
	mustForm(t)(fx.uc.Open(ctx, created.ID))
	fill(t, fx.uc, created.ID)

	out, err := fx.uc.Submit(ctx, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Result != prod.SubmitSucceeded || out.Prod == nil || out.Form.Open {
		t.Fatalf("unexpected submit output: %+v", out)
	}

	dept, err := fx.uc.Dept(ctx, "d1")
	if err != nil {
		t.Fatalf("Dept: %v", err)
	}
	if len(dept.Dept.Prods) != 1 || dept.Dept.Prods[0].ID != out.Prod.ID {
		t.Fatalf("cache not reconciled: %+v", dept.Dept)
	}
	if dept.Dept.Prods[0].Dept != nil {
		t.Errorf("cached batch should not keep its department reference")
	}

	edit := mustForm(t)(fx.uc.EditForm(ctx, prod.EditFormInput{Record: *out.Prod}))
	if edit.RecordID != out.Prod.ID || edit.Fields.Melt.Value != prod.Int(12) {
		t.Fatalf("edit form not seeded: %+v", edit)
	}

	if _, err := fx.uc.EditSelection(ctx, prod.EditSelectionInput{FormID: edit.ID, Field: prod.FieldDeptID, Value: "d2"}); !errors.Is(err, prod.ErrFieldLocked) {
		t.Errorf("expected ErrFieldLocked, got %v", err)
	}

	mustForm(t)(fx.uc.EditNumber(ctx, prod.EditNumberInput{FormID: edit.ID, Field: prod.FieldMelt, Raw: "40"}))
	mustForm(t)(fx.uc.ToggleStatus(ctx, prod.ToggleStatusInput{FormID: edit.ID, Target: prod.StatusSpoiled}))

	out, err = fx.uc.Submit(ctx, edit.ID)
	if err != nil || out.Result != prod.SubmitSucceeded {
		t.Fatalf("edit submit: %+v, %v", out, err)
	}

	dept, _ = fx.uc.Dept(ctx, "d1")
	if len(dept.Dept.Prods) != 1 {
		t.Fatalf("expected one cached batch, got %d", len(dept.Dept.Prods))
	}
	got := dept.Dept.Prods[0]
	if got.Melt != 40 || got.IsSpoiled == nil || !*got.IsSpoiled {
		t.Errorf("cached batch not replaced: %+v", got)
	}
}

func TestSubmitBlockedAndFailed(t *testing.T) {
	ctx := context.Background()

	t.Run("blocked", func(t *testing.T) {
		fx := newFixture(t)
		id := mustForm(t)(fx.uc.CreateForm(ctx)).ID

		out, err := fx.uc.Submit(ctx, id)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Result != prod.SubmitBlocked {
			t.Errorf("result = %v, want blocked", out.Result)
		}
		for _, f := range prod.ModeCreate.RequiredFields() {
			if !out.Form.Fields.Err(f) {
				t.Errorf("expected error flag on %s", f)
			}
		}
		if len(fx.repo.records) != 0 {
			t.Errorf("blocked submit must not write")
		}
	})

	t.Run("failed", func(t *testing.T) {
		fx := newFixture(t)
		fx.repo.err = errors.New("GraphQL error: melt taken")
		id := mustForm(t)(fx.uc.CreateForm(ctx)).ID
		mustForm(t)(fx.uc.Open(ctx, id))
		fill(t, fx.uc, id)

		out, err := fx.uc.Submit(ctx, id)
		if err != nil {
			t.Fatalf("a failed write is reported in the output, got %v", err)
		}
		if out.Result != prod.SubmitFailed || !out.Form.Open || out.Form.SubmissionErr == nil {
			t.Errorf("unexpected output: %+v", out)
		}
		if _, err := fx.uc.Dept(ctx, "d1"); !errors.Is(err, prod.ErrDeptNotFound) {
			t.Errorf("failed write must not touch the cache, got %v", err)
		}
	})
}

func TestFormNotFound(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)

	if _, err := fx.uc.Detail(ctx, "missing"); !errors.Is(err, prod.ErrFormNotFound) {
		t.Errorf("Detail: expected ErrFormNotFound, got %v", err)
	}
	if _, err := fx.uc.Submit(ctx, "missing"); !errors.Is(err, prod.ErrFormNotFound) {
		t.Errorf("Submit: expected ErrFormNotFound, got %v", err)
	}
	if _, err := fx.uc.EditForm(ctx, prod.EditFormInput{}); !errors.Is(err, prod.ErrMissingRecord) {
		t.Errorf("EditForm: expected ErrMissingRecord, got %v", err)
	}
}

func TestEditNumberUsesFieldBounds(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)
	id := mustForm(t)(fx.uc.CreateForm(ctx)).ID

	v := mustForm(t)(fx.uc.EditNumber(ctx, prod.EditNumberInput{FormID: id, Field: prod.FieldMeltShift, Raw: "4"}))
	if !v.Fields.MeltShift.Err {
		t.Errorf("meltShift 4 should be out of range")
	}
	v = mustForm(t)(fx.uc.EditNumber(ctx, prod.EditNumberInput{FormID: id, Field: prod.FieldMeltShift, Raw: ""}))
	if v.Fields.MeltShift.Err {
		t.Errorf("empty optional field should be valid")
	}
	v = mustForm(t)(fx.uc.EditNumber(ctx, prod.EditNumberInput{FormID: id, Field: prod.FieldNumber, Raw: "0"}))
	if !v.Fields.Number.Err || v.Fields.Number.Value != prod.Int(0) {
		t.Errorf("number 0 should be stored and flagged: %+v", v.Fields.Number)
	}
	v = mustForm(t)(fx.uc.EditNumber(ctx, prod.EditNumberInput{FormID: id, Field: prod.FieldYear, Raw: "15"}))
	if !v.Fields.Year.Err {
		t.Errorf("year 15 should be out of range")
	}
}

func TestOptions(t *testing.T) {
	ctx := context.Background()

	t.Run("create loads lists", func(t *testing.T) {
		fx := newFixture(t)
		out, err := fx.uc.Options(ctx, prod.OptionsInput{Mode: prod.ModeCreate})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Depts) != 2 || out.Depts[0].Value != "d1" || len(out.Models) != 1 {
			t.Errorf("unexpected options: %+v", out)
		}
	})

	t.Run("create with failing provider", func(t *testing.T) {
		fx := newFixture(t)
		fx.repo.listErr = errors.New("down")
		out, err := fx.uc.Options(ctx, prod.OptionsInput{Mode: prod.ModeCreate})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Depts) != 1 || out.Depts[0].Label != options.ErroredPlaceholder {
			t.Errorf("expected errored placeholder, got %+v", out.Depts)
		}
	})

	t.Run("edit shows placeholders", func(t *testing.T) {
		fx := newFixture(t)
		out, _ := fx.uc.Options(ctx, prod.OptionsInput{Mode: prod.ModeEdit})
		if len(out.Depts) != 1 || out.Depts[0].Label != options.DeptPlaceholder {
			t.Errorf("unexpected depts: %+v", out.Depts)
		}
		if len(out.Models) != 1 || out.Models[0].Label != options.ModelPlaceholder {
			t.Errorf("unexpected models: %+v", out.Models)
		}
	})
	t.Run("create while a fetch is running", func(t *testing.T) {
		fx := newFixture(t)
		fx.repo.listGate = make(chan struct{})

		done := make(chan prod.OptionsOutput, 1)
		go func() {
			out, _ := fx.uc.Options(ctx, prod.OptionsInput{Mode: prod.ModeCreate})
			done <- out
		}()

		deadline := time.Now().Add(time.Second)
		for fx.loader.Snapshot().State != options.StateLoading && time.Now().Before(deadline) {
			time.Sleep(time.Millisecond)
		}

		out, err := fx.uc.Options(ctx, prod.OptionsInput{Mode: prod.ModeCreate})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Depts) != 1 || out.Depts[0].Label != options.LoadingPlaceholder {
			t.Errorf("expected loading placeholder, got %+v", out.Depts)
		}

		close(fx.repo.listGate)
		if first := <-done; len(first.Depts) != 2 {
			t.Errorf("first caller should get the loaded lists, got %+v", first.Depts)
		}
	})
}
