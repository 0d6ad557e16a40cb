package snapshot

import (
	"github.com/sggtools/boapi/internal/bulletin"
	"github.com/sggtools/boapi/internal/domain"
)

// Mapper converts raw snapshot records into normalized bulletins using the
// same rules as the live fetch path.
type Mapper struct {
	origin string
}

// NewMapper creates a mapper that absolutizes document paths against origin.
func NewMapper(origin string) *Mapper {
	return &Mapper{origin: origin}
}

// Map normalizes the whole snapshot. Entries under unknown language codes are
// dropped; within a language, record order is preserved.
func (m *Mapper) Map(file *File) map[domain.Language][]domain.Bulletin {
	out := make(map[domain.Language][]domain.Bulletin, len(file.Bulletins))
	for code, records := range file.Bulletins {
		lang, ok := domain.ParseLanguage(code)
		if !ok {
			continue
		}
		out[lang] = bulletin.ParseRecords(records, m.origin)
	}
	return out
}
