package scheduler

import (
	"context"
	"time"

	"github.com/sggtools/boapi/internal/index"
	"github.com/sggtools/boapi/internal/logger"
	"github.com/sggtools/boapi/internal/sources/snapshot"
	redisstore "github.com/sggtools/boapi/internal/store/redis"
)

// SnapshotReloader re-reads the local snapshot file on an interval and on
// manual trigger, updating the memory index and (best effort) the redis
// store.
type SnapshotReloader struct {
	loader        *snapshot.Loader
	mapper        *snapshot.Mapper
	store         *redisstore.Store
	index         *index.MemoryIndex
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewSnapshotReloader creates a reloader. store may be nil when redis is
// disabled.
func NewSnapshotReloader(
	snapshotFile string,
	origin string,
	store *redisstore.Store,
	idx *index.MemoryIndex,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *SnapshotReloader {
	return &SnapshotReloader{
		loader:        snapshot.NewLoader(snapshotFile),
		mapper:        snapshot.NewMapper(origin),
		store:         store,
		index:         idx,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start loads the snapshot once, then refreshes periodically until ctx ends
// or Stop is called. A failed initial load is logged but does not prevent the
// refresh loop from starting: the manual trigger must stay able to recover
// once the file is fixed.
func (sr *SnapshotReloader) Start(ctx context.Context) {
	if err := sr.Reload(ctx); err != nil {
		sr.logger.Error("initial snapshot load failed", logger.Error(err))
	}

	ticker := time.NewTicker(sr.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := sr.Reload(ctx); err != nil {
					sr.logger.Error("failed to reload snapshot", logger.Error(err))
				}
			case <-sr.manualTrigger:
				sr.logger.Info("manual snapshot reload triggered")
				if err := sr.Reload(ctx); err != nil {
					sr.logger.Error("failed to reload snapshot", logger.Error(err))
				}
			case <-sr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop ends the periodic refresh.
func (sr *SnapshotReloader) Stop() {
	close(sr.stopCh)
}

// Reload reads the snapshot file and updates index and store.
func (sr *SnapshotReloader) Reload(ctx context.Context) error {
	file, err := sr.loader.Load()
	if err != nil {
		return err
	}

	byLang := sr.mapper.Map(file)
	total := 0
	for _, items := range byLang {
		total += len(items)
	}
	sr.logger.Info("loaded snapshot",
		logger.Int("languages", len(byLang)),
		logger.Int("bulletins", total))

	sr.index.Update(byLang)

	if sr.store != nil {
		if err := sr.store.SaveAll(ctx, byLang); err != nil {
			// Memory index is the primary source, redis only helps restarts.
			sr.logger.Warn("failed to save snapshot to redis", logger.Error(err))
		}
	}

	return nil
}
