// Package bulletin implements the Bulletin Officiel fetch pipeline: identifier
// resolution against the live page, one listing call, then row normalization.
package bulletin

import (
	"context"
	"fmt"
	"time"

	"github.com/sggtools/boapi/internal/domain"
	"github.com/sggtools/boapi/internal/logger"
	"github.com/sggtools/boapi/internal/metrics"
	"github.com/sggtools/boapi/internal/upstream"
)

// ScriptSource fetches the inline script text of a page (the scraping
// collaborator).
type ScriptSource interface {
	Scripts(ctx context.Context, pageURL string) (string, error)
}

// ListingSource fetches raw bulletin rows for an identifier pair (the AJAX
// listing collaborator).
type ListingSource interface {
	Listing(ctx context.Context, ids domain.IdentifierPair) ([]upstream.Record, error)
}

// LanguageSettings configures one edition: which page to scrape for live
// identifiers and which static pair to fall back to.
type LanguageSettings struct {
	PageURL          string
	FallbackModuleID string
	FallbackTabID    string
}

// ResolutionSource tags how the identifier pair was obtained.
type ResolutionSource string

const (
	// ResolutionLive means both identifiers came from the scraped page.
	ResolutionLive ResolutionSource = "live"
	// ResolutionFallback means at least one identifier is the static value.
	ResolutionFallback ResolutionSource = "fallback"
)

// Resolution is the outcome of one identifier-resolution step.
type Resolution struct {
	IDs    domain.IdentifierPair
	Source ResolutionSource
}

// ErrUnknownLanguage is returned for a language no settings were supplied for.
var ErrUnknownLanguage = fmt.Errorf("unknown language")

// Fetcher orchestrates one sequential fetch: resolve identifiers, call the
// listing endpoint, normalize rows. It holds no cross-request state.
type Fetcher struct {
	scraper   ScriptSource
	listing   ListingSource
	origin    string
	languages map[domain.Language]LanguageSettings
	logger    logger.Logger
	metrics   metrics.Recorder
}

// NewFetcher wires the fetch pipeline. All collaborators and settings are
// explicit; there is no ambient configuration.
func NewFetcher(
	scraper ScriptSource,
	listing ListingSource,
	origin string,
	languages map[domain.Language]LanguageSettings,
	log logger.Logger,
	rec metrics.Recorder,
) *Fetcher {
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &Fetcher{
		scraper:   scraper,
		listing:   listing,
		origin:    origin,
		languages: languages,
		logger:    log,
		metrics:   rec,
	}
}

// ResolveIdentifiers attempts a live scrape of the language's page and merges
// the result with the static fallback pair, field by field. Any failure on
// the live path is absorbed: the caller always gets a usable pair. Source is
// ResolutionLive only when both identifiers came from the page.
func (f *Fetcher) ResolveIdentifiers(ctx context.Context, lang domain.Language) (Resolution, error) {
	settings, ok := f.languages[lang]
	if !ok {
		return Resolution{}, ErrUnknownLanguage
	}

	res := Resolution{
		IDs: domain.IdentifierPair{
			ModuleID: settings.FallbackModuleID,
			TabID:    settings.FallbackTabID,
		},
		Source: ResolutionFallback,
	}

	scripts, err := f.scraper.Scripts(ctx, settings.PageURL)
	if err != nil {
		f.logger.Warn("live identifier scrape failed, using fallback identifiers",
			logger.String("lang", string(lang)),
			logger.Error(err))
		f.metrics.RecordResolution(string(lang), string(ResolutionFallback))
		return res, nil
	}

	live := domain.ExtractIdentifiers(scripts, lang)
	if live.ModuleID != "" {
		res.IDs.ModuleID = live.ModuleID
	}
	if live.TabID != "" {
		res.IDs.TabID = live.TabID
	}
	if live.Complete() {
		res.Source = ResolutionLive
	} else {
		f.logger.Warn("live scrape returned incomplete identifiers",
			logger.String("lang", string(lang)),
			logger.String("module_id", live.ModuleID),
			logger.String("tab_id", live.TabID))
	}

	f.metrics.RecordResolution(string(lang), string(res.Source))
	return res, nil
}

// All fetches and normalizes the full bulletin listing for lang, in upstream
// order. Listing failures surface as errors; handlers collapse them to an
// absence signal.
func (f *Fetcher) All(ctx context.Context, lang domain.Language) ([]domain.Bulletin, error) {
	res, err := f.ResolveIdentifiers(ctx, lang)
	if err != nil {
		return nil, err
	}

	f.logger.Debug("fetching bulletin listing",
		logger.String("lang", string(lang)),
		logger.String("module_id", res.IDs.ModuleID),
		logger.String("tab_id", res.IDs.TabID),
		logger.String("resolution", string(res.Source)))

	start := time.Now()
	records, err := f.listing.Listing(ctx, res.IDs)
	f.metrics.RecordUpstreamLatency(time.Since(start))
	if err != nil {
		f.metrics.RecordFetch(string(lang), "error")
		return nil, fmt.Errorf("failed to fetch bulletin listing: %w", err)
	}

	f.metrics.RecordFetch(string(lang), "ok")
	return ParseRecords(records, f.origin), nil
}

// Latest returns the first bulletin of the listing in upstream order, or nil
// when the listing is empty. The upstream owns any client-visible ordering;
// no sort is applied here.
func (f *Fetcher) Latest(ctx context.Context, lang domain.Language) (*domain.Bulletin, error) {
	items, err := f.All(ctx, lang)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}
