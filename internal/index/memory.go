package index

import (
	"sync"
	"time"

	"github.com/sggtools/boapi/internal/domain"
)

// MemoryIndex holds the last loaded snapshot of bulletins per language.
// It is the primary in-process source for the snapshot endpoints; the redis
// store only survives restarts. Insertion order within a language is the
// upstream order and is preserved as-is.
type MemoryIndex struct {
	mu         sync.RWMutex
	byLanguage map[domain.Language][]domain.Bulletin
	lastReload time.Time
}

// NewMemoryIndex creates an empty index.
func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{
		byLanguage: make(map[domain.Language][]domain.Bulletin),
	}
}

// Update replaces all languages at once and stamps the reload time.
func (idx *MemoryIndex) Update(byLang map[domain.Language][]domain.Bulletin) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.byLanguage = make(map[domain.Language][]domain.Bulletin, len(byLang))
	for lang, items := range byLang {
		idx.byLanguage[lang] = append([]domain.Bulletin(nil), items...)
	}
	idx.lastReload = time.Now()
}

// SetLanguage replaces one language's bulletins without touching the others.
func (idx *MemoryIndex) SetLanguage(lang domain.Language, items []domain.Bulletin) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.byLanguage[lang] = append([]domain.Bulletin(nil), items...)
}

// Get returns the bulletins for lang and whether the language is present.
// The returned slice is a copy; callers may not mutate index state.
func (idx *MemoryIndex) Get(lang domain.Language) ([]domain.Bulletin, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	items, ok := idx.byLanguage[lang]
	if !ok {
		return nil, false
	}
	return append([]domain.Bulletin(nil), items...), true
}

// Count returns the total number of bulletins across languages.
func (idx *MemoryIndex) Count() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	total := 0
	for _, items := range idx.byLanguage {
		total += len(items)
	}
	return total
}

// Languages returns how many languages hold at least one bulletin.
func (idx *MemoryIndex) Languages() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	n := 0
	for _, items := range idx.byLanguage {
		if len(items) > 0 {
			n++
		}
	}
	return n
}

// GetLastReload returns the timestamp of the last full Update.
func (idx *MemoryIndex) GetLastReload() time.Time {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.lastReload
}
