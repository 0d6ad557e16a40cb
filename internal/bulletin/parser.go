package bulletin

import (
	"github.com/sggtools/boapi/internal/domain"
	"github.com/sggtools/boapi/internal/upstream"
)

// ParseRecord normalizes one raw upstream row into a Bulletin. Best effort by
// design: the source schema is scraped and unstable, so a row missing fields
// still yields a Bulletin with sentinel values instead of an error. One bad
// date must never fail the batch.
func ParseRecord(rec upstream.Record, origin string) domain.Bulletin {
	date, ok := domain.NormalizeDate(rec.BoDate)
	if !ok {
		date = domain.DateUnknown
	}

	return domain.Bulletin{
		ID:          rec.BoID,
		Number:      rec.BoNum,
		Date:        date,
		DocumentURL: domain.AbsoluteURL(rec.BoURL, origin),
	}
}

// ParseRecords maps a whole listing in upstream order.
func ParseRecords(records []upstream.Record, origin string) []domain.Bulletin {
	items := make([]domain.Bulletin, 0, len(records))
	for _, rec := range records {
		items = append(items, ParseRecord(rec, origin))
	}
	return items
}
