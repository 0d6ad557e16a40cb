package deps

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"

	"github.com/sggtools/boapi/internal/domain"
	"github.com/sggtools/boapi/internal/index"
	"github.com/sggtools/boapi/internal/logger"
)

// BulletinFetcher is the live fetch pipeline as handlers see it.
type BulletinFetcher interface {
	Latest(ctx context.Context, lang domain.Language) (*domain.Bulletin, error)
	All(ctx context.Context, lang domain.Language) ([]domain.Bulletin, error)
}

// TextExtractor is the PDF-to-text collaborator as handlers see it.
type TextExtractor interface {
	Extract(ctx context.Context, pdfURL string) (string, error)
}

// Deps carries everything route handlers need. Built once in app wiring.
type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string

	Fetcher     BulletinFetcher
	Extractor   TextExtractor
	MemoryIndex *index.MemoryIndex // nil when the snapshot file is not configured
	RedisClient *goredis.Client    // nil when redis is disabled

	ReloadTrigger chan struct{} // manual snapshot reload (nil when snapshot disabled)
	ReloadToken   string        // bearer token for POST /reload ("" = open)
	TrustProxy    bool

	TextRateBurst  int // token bucket for the extraction route
	TextRatePerMin int

	Gatherer prometheus.Gatherer // nil disables /metrics
}
