package options

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"prod-tracker/internal/metrics"
	"prod-tracker/internal/prod/repository"
	pkgLog "prod-tracker/pkg/log"
)

const cacheKey = "depts_and_models"

// Loader fetches the option lists on demand and keeps them for a while.
// Concurrent loads share one request.
type Loader struct {
	repo  repository.OptionsRepository
	l     pkgLog.Logger
	group singleflight.Group
	cache *expirable.LRU[string, repository.ListOptionsResult]

	mu      sync.Mutex
	state   State
	lastErr error
}

// NewLoader creates a Loader. Loaded lists are reused until ttl passes.
func NewLoader(repo repository.OptionsRepository, ttl time.Duration, l pkgLog.Logger) *Loader {
	return &Loader{
		repo:  repo,
		l:     l,
		cache: expirable.NewLRU[string, repository.ListOptionsResult](1, nil, ttl),
	}
}

// Snapshot reports the current state without triggering a fetch.
func (ld *Loader) Snapshot() Snapshot {
	ld.mu.Lock()
	defer ld.mu.Unlock()

	s := Snapshot{State: ld.state, Err: ld.lastErr}
	if res, ok := ld.cache.Peek(cacheKey); ok {
		s.State = StateLoaded
		s.Depts = res.Depts
		s.Models = res.Models
	} else if s.State == StateLoaded {
		s.State = StateNotRequested
	}
	return s
}

// Load returns the cached lists or fetches them. A failed fetch leaves the
// loader errored until the next Load. The fetch is shared by every waiting
// caller, so it is not cancelled with the caller that started it; the
// client timeout bounds it.
func (ld *Loader) Load(ctx context.Context) (Snapshot, error) {
	if res, ok := ld.cache.Get(cacheKey); ok {
		return Snapshot{State: StateLoaded, Depts: res.Depts, Models: res.Models}, nil
	}

	ld.setState(StateLoading, nil)

	fetchCtx := context.WithoutCancel(ctx)
	v, err, shared := ld.group.Do(cacheKey, func() (any, error) {
		res, err := ld.repo.ListDeptsAndModels(fetchCtx)
		if err != nil {
			metrics.OptionsLoads.WithLabelValues(metrics.OutcomeError).Inc()
			return nil, err
		}
		metrics.OptionsLoads.WithLabelValues(metrics.OutcomeSuccess).Inc()
		ld.cache.Add(cacheKey, res)
		return res, nil
	})
	if err != nil {
		ld.l.Errorf(ctx, "options.Load ListDeptsAndModels: %v", err)
		ld.setState(StateErrored, err)
		return Snapshot{State: StateErrored, Err: err}, err
	}
	if shared {
		ld.l.Debugf(ctx, "options.Load: shared in-flight fetch")
	}

	res := v.(repository.ListOptionsResult)
	ld.setState(StateLoaded, nil)
	return Snapshot{State: StateLoaded, Depts: res.Depts, Models: res.Models}, nil
}

func (ld *Loader) setState(s State, err error) {
	ld.mu.Lock()
	defer ld.mu.Unlock()
	ld.state = s
	ld.lastErr = err
}
