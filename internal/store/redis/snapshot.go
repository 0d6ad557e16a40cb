// Package redis persists snapshot copies of the bulletin listings so a
// restart can serve /api/BO/Snapshot before the local file is re-read.
// Best effort throughout: the memory index is the primary source.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/sggtools/boapi/internal/domain"
)

// DefaultSnapshotTTL bounds how long a persisted snapshot outlives its last
// refresh.
const DefaultSnapshotTTL = 48 * time.Hour

// Store handles redis operations for snapshots.
type Store struct {
	client *goredis.Client
}

// NewStore creates a snapshot store.
func NewStore(client *goredis.Client) *Store {
	return &Store{client: client}
}

// SaveSnapshot stores one language's bulletins as a JSON blob with TTL.
func (s *Store) SaveSnapshot(ctx context.Context, lang domain.Language, items []domain.Bulletin) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := s.client.Set(ctx, SnapshotKey(lang), data, DefaultSnapshotTTL).Err(); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// SaveAll stores every language of a mapped snapshot.
func (s *Store) SaveAll(ctx context.Context, byLang map[domain.Language][]domain.Bulletin) error {
	for lang, items := range byLang {
		if err := s.SaveSnapshot(ctx, lang, items); err != nil {
			return err
		}
	}
	return nil
}

// GetSnapshot retrieves one language's bulletins. A missing key returns
// (nil, false, nil), not an error.
func (s *Store) GetSnapshot(ctx context.Context, lang domain.Language) ([]domain.Bulletin, bool, error) {
	data, err := s.client.Get(ctx, SnapshotKey(lang)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get snapshot: %w", err)
	}

	var items []domain.Bulletin
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return items, true, nil
}

// GetAll retrieves every language that has a persisted snapshot.
func (s *Store) GetAll(ctx context.Context) (map[domain.Language][]domain.Bulletin, error) {
	out := make(map[domain.Language][]domain.Bulletin)
	for _, lang := range []domain.Language{domain.LanguageFR, domain.LanguageAR} {
		items, ok, err := s.GetSnapshot(ctx, lang)
		if err != nil {
			return nil, err
		}
		if ok {
			out[lang] = items
		}
	}
	return out, nil
}
