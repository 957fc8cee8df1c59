package memory_test

import (
	"context"
	"testing"

	"prod-tracker/internal/deptcache/store/memory"
	"prod-tracker/internal/model"
)

func TestStore(t *testing.T) {
	ctx := context.Background()
	s, err := memory.New(2)
	if err != nil {
		t.Fatalf("memory.New: %v", err)
	}

	if _, ok, err := s.Read(ctx, "Dept:missing"); ok || err != nil {
		t.Errorf("expected miss, got ok=%v err=%v", ok, err)
	}

	prods := []model.Prod{{ID: "P1"}}
	if err := s.Write(ctx, "Dept:d1", model.Dept{ID: "d1", Prods: prods}); err != nil {
		t.Fatalf("write: %v", err)
	}
	prods[0].ID = "mutated"

	got, ok, err := s.Read(ctx, "Dept:d1")
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if got.Prods[0].ID != "P1" {
		t.Errorf("store must not alias caller slices, got %s", got.Prods[0].ID)
	}

	got.Prods[0].ID = "changed"
	again, _, _ := s.Read(ctx, "Dept:d1")
	if again.Prods[0].ID != "P1" {
		t.Errorf("read must return a copy, got %s", again.Prods[0].ID)
	}

	_ = s.Write(ctx, "Dept:d2", model.Dept{ID: "d2"})
	_ = s.Write(ctx, "Dept:d3", model.Dept{ID: "d3"})
	if s.Len() != 2 {
		t.Errorf("expected bounded size 2, got %d", s.Len())
	}
}

func TestNewRejectsBadSize(t *testing.T) {
	if _, err := memory.New(0); err == nil {
		t.Error("expected error for size 0")
	}
}
