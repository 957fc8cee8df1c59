package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"prod-tracker/internal/deptcache"
	"prod-tracker/internal/metrics"
	"prod-tracker/internal/prod"
	"prod-tracker/internal/prod/form"
	"prod-tracker/internal/prod/options"
	"prod-tracker/internal/prod/repository"
	pkgLog "prod-tracker/pkg/log"
)

const (
	defaultSessionTTL  = 30 * time.Minute
	defaultMaxSessions = 1024
)

// Config bounds how many form sessions are kept and for how long.
type Config struct {
	SessionTTL  time.Duration
	MaxSessions int
}

var _ prod.UseCase = (*implUseCase)(nil)

// implUseCase is the private implementation of prod.UseCase.
type implUseCase struct {
	repo       repository.Repository
	reconciler *deptcache.Reconciler
	cache      deptcache.Store
	loader     *options.Loader
	l          pkgLog.Logger
	now        func() time.Time

	sessions *expirable.LRU[string, *form.Form]
}

// New creates a new prod UseCase implementation. Written batches are merged
// into cache by a Reconciler before a submit returns.
func New(l pkgLog.Logger, repo repository.Repository, cache deptcache.Store, loader *options.Loader, cfg Config) *implUseCase {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = defaultMaxSessions
	}

	return &implUseCase{
		repo:       repo,
		reconciler: deptcache.New(cache, l),
		cache:      cache,
		loader:     loader,
		l:          l,
		now:        time.Now,
		sessions: expirable.NewLRU[string, *form.Form](cfg.MaxSessions, func(string, *form.Form) {
			metrics.FormsActive.Dec()
		}, cfg.SessionTTL),
	}
}
