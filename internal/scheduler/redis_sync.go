package scheduler

import (
	"context"

	"github.com/sggtools/boapi/internal/index"
	"github.com/sggtools/boapi/internal/logger"
	redisstore "github.com/sggtools/boapi/internal/store/redis"
)

// RedisSyncer seeds the memory index from redis on startup, so the snapshot
// endpoints can answer before the file is (re)read.
type RedisSyncer struct {
	store  *redisstore.Store
	index  *index.MemoryIndex
	logger logger.Logger
}

// NewRedisSyncer creates a syncer.
func NewRedisSyncer(store *redisstore.Store, idx *index.MemoryIndex, log logger.Logger) *RedisSyncer {
	return &RedisSyncer{store: store, index: idx, logger: log}
}

// Sync loads persisted snapshots and updates the memory index.
func (rs *RedisSyncer) Sync(ctx context.Context) error {
	byLang, err := rs.store.GetAll(ctx)
	if err != nil {
		return err
	}

	if len(byLang) == 0 {
		rs.logger.Info("no snapshot found in redis")
		return nil
	}

	rs.index.Update(byLang)
	rs.logger.Info("synced snapshot from redis",
		logger.Int("languages", len(byLang)))

	return nil
}
