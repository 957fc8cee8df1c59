package deptcache

import (
	"context"
	"fmt"
	"sync"

	"prod-tracker/internal/metrics"
	"prod-tracker/internal/model"
	pkgLog "prod-tracker/pkg/log"
)

// DeptKey is the cache identity of a department record.
func DeptKey(id string) string {
	return "Dept:" + id
}

// Reconciler merges written batches into the cached batch list of their
// department. Reconciliations on the same key are serialized.
type Reconciler struct {
	store Store
	l     pkgLog.Logger
	locks keyMutex
}

// New creates a Reconciler over store.
func New(store Store, l pkgLog.Logger) *Reconciler {
	return &Reconciler{
		store: store,
		l:     l,
		locks: keyMutex{locks: make(map[string]*refLock)},
	}
}

// AfterCommit implements prod.CommitHook.
func (r *Reconciler) AfterCommit(ctx context.Context, written model.Prod) error {
	_, err := r.Reconcile(ctx, written)
	return err
}

// Reconcile replaces any cached batch with the same id by written, appended
// at the end of its department's list, and returns the updated department.
// The batch is stored without its department back-pointer.
func (r *Reconciler) Reconcile(ctx context.Context, written model.Prod) (model.Dept, error) {
	deptID := written.DeptID()
	if deptID == "" {
		metrics.CacheReconciliations.WithLabelValues(metrics.OutcomeError).Inc()
		return model.Dept{}, fmt.Errorf("%w: batch %s", ErrNoParent, written.ID)
	}
	key := DeptKey(deptID)

	unlock := r.locks.lock(key)
	defer unlock()

	dept, ok, err := r.store.Read(ctx, key)
	if err != nil {
		metrics.CacheReconciliations.WithLabelValues(metrics.OutcomeError).Inc()
		return model.Dept{}, fmt.Errorf("%w: %s: %v", ErrStoreRead, key, err)
	}
	if !ok {
		r.l.Debugf(ctx, "deptcache.Reconcile: %s not cached, starting empty", key)
		dept = model.Dept{ID: deptID}
	}

	written.Dept = nil
	dept.Prods = Merge(dept.Prods, written)

	if err := r.store.Write(ctx, key, dept); err != nil {
		metrics.CacheReconciliations.WithLabelValues(metrics.OutcomeError).Inc()
		return model.Dept{}, fmt.Errorf("%w: %s: %v", ErrStoreWrite, key, err)
	}

	metrics.CacheReconciliations.WithLabelValues(metrics.OutcomeSuccess).Inc()
	return dept, nil
}

// Merge drops every entry sharing written's id and appends written.
// The input slice is not modified.
func Merge(prods []model.Prod, written model.Prod) []model.Prod {
	out := make([]model.Prod, 0, len(prods)+1)
	for _, p := range prods {
		if p.ID != written.ID {
			out = append(out, p)
		}
	}
	return append(out, written)
}

// keyMutex hands out one mutex per key. An entry lives only while some
// caller holds or waits on it.
type keyMutex struct {
	mu    sync.Mutex
	locks map[string]*refLock
}

type refLock struct {
	sync.Mutex
	refs int
}

func (k *keyMutex) lock(key string) func() {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &refLock{}
		k.locks[key] = m
	}
	m.refs++
	k.mu.Unlock()

	m.Lock()
	return func() {
		m.Unlock()

		k.mu.Lock()
		m.refs--
		if m.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
