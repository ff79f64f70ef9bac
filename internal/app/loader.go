package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/five82/hackdex/internal/catalog"
	"github.com/five82/hackdex/internal/state"
)

// Loader performs the single catalog load of a session and records the
// outcome in Store.
type Loader struct {
	Store   *state.Store
	Fetcher catalog.Fetcher
	Logger  *zap.Logger
}

// Load fetches the catalog and display names, resolves the store and returns
// its snapshot. Calls after the first return the already resolved snapshot
// without fetching again.
func (l *Loader) Load(ctx context.Context) state.Snapshot {
	logger := l.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if l.Store.Phase() != state.PhaseLoading {
		return l.Store.Snapshot()
	}

	start := time.Now()
	logger.Info("catalog load started")

	cat, err := catalog.Load(ctx, l.Fetcher)
	if !l.Store.Resolve(cat, err) {
		return l.Store.Snapshot()
	}

	if err != nil {
		logger.Error("catalog load failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
	} else {
		logger.Info("catalog loaded",
			zap.Int("hacks", len(cat.Hacks)),
			zap.Int("name_categories", len(cat.Names)),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
	return l.Store.Snapshot()
}
