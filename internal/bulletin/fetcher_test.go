package bulletin

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sggtools/boapi/internal/domain"
	"github.com/sggtools/boapi/internal/logger"
	"github.com/sggtools/boapi/internal/scraper"
	"github.com/sggtools/boapi/internal/upstream"
)

type stubScraper struct {
	scripts string
	err     error
}

func (s *stubScraper) Scripts(ctx context.Context, pageURL string) (string, error) {
	return s.scripts, s.err
}

type stubListing struct {
	records []upstream.Record
	err     error
	gotIDs  domain.IdentifierPair
}

func (s *stubListing) Listing(ctx context.Context, ids domain.IdentifierPair) ([]upstream.Record, error) {
	s.gotIDs = ids
	return s.records, s.err
}

func testSettings() map[domain.Language]LanguageSettings {
	return map[domain.Language]LanguageSettings{
		domain.LanguageFR: {
			PageURL:          "https://example.com/fr.aspx",
			FallbackModuleID: "2873",
			FallbackTabID:    "775",
		},
		domain.LanguageAR: {
			PageURL:          "https://example.com/ar.aspx",
			FallbackModuleID: "3111",
			FallbackTabID:    "847",
		},
	}
}

func newTestFetcher(sc ScriptSource, li ListingSource) *Fetcher {
	return NewFetcher(sc, li, origin, testSettings(), logger.New("error", false), nil)
}

func TestResolveIdentifiersLive(t *testing.T) {
	sc := &stubScraper{scripts: "ModuleId = 5; ModuleId = 9; var TabId = 42;"}
	f := newTestFetcher(sc, &stubListing{})

	res, err := f.ResolveIdentifiers(context.Background(), domain.LanguageFR)
	if err != nil {
		t.Fatalf("ResolveIdentifiers() error = %v", err)
	}

	if res.Source != ResolutionLive {
		t.Errorf("Source = %q, want live", res.Source)
	}
	if res.IDs.ModuleID != "5" || res.IDs.TabID != "42" {
		t.Errorf("IDs = %+v, want 5/42", res.IDs)
	}
}

func TestResolveIdentifiersScrapeFailure(t *testing.T) {
	sc := &stubScraper{err: errors.New("connection refused")}
	f := newTestFetcher(sc, &stubListing{})

	res, err := f.ResolveIdentifiers(context.Background(), domain.LanguageAR)
	if err != nil {
		t.Fatalf("ResolveIdentifiers() must absorb scrape failures, got %v", err)
	}

	if res.Source != ResolutionFallback {
		t.Errorf("Source = %q, want fallback", res.Source)
	}
	if res.IDs.ModuleID != "3111" || res.IDs.TabID != "847" {
		t.Errorf("IDs = %+v, want the static ar pair", res.IDs)
	}
}

func TestResolveIdentifiersPartialScrape(t *testing.T) {
	// Page yields a module id but no tab declaration: the missing field comes
	// from the fallback and the resolution is tagged fallback.
	sc := &stubScraper{scripts: "ModuleId = 12;"}
	f := newTestFetcher(sc, &stubListing{})

	res, err := f.ResolveIdentifiers(context.Background(), domain.LanguageFR)
	if err != nil {
		t.Fatalf("ResolveIdentifiers() error = %v", err)
	}

	if res.Source != ResolutionFallback {
		t.Errorf("Source = %q, want fallback for a partial scrape", res.Source)
	}
	if res.IDs.ModuleID != "12" {
		t.Errorf("ModuleID = %q, want live value 12", res.IDs.ModuleID)
	}
	if res.IDs.TabID != "775" {
		t.Errorf("TabID = %q, want fallback 775", res.IDs.TabID)
	}
}

func TestResolveIdentifiersUnknownLanguage(t *testing.T) {
	f := newTestFetcher(&stubScraper{}, &stubListing{})

	if _, err := f.ResolveIdentifiers(context.Background(), domain.Language("de")); !errors.Is(err, ErrUnknownLanguage) {
		t.Fatalf("error = %v, want ErrUnknownLanguage", err)
	}
}

func TestAllUsesResolvedIdentifiers(t *testing.T) {
	sc := &stubScraper{scripts: "ModuleId = 2900; var TabId = 800;"}
	li := &stubListing{records: []upstream.Record{
		{BoNum: "7200", BoDate: "/Date(1687392000000)/", BoURL: "/BO/7200.pdf"},
		{BoNum: "7199", BoDate: "garbage", BoURL: "/BO/7199.pdf"},
	}}
	f := newTestFetcher(sc, li)

	items, err := f.All(context.Background(), domain.LanguageFR)
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}

	if li.gotIDs.ModuleID != "2900" || li.gotIDs.TabID != "800" {
		t.Errorf("listing received ids %+v, want the live pair", li.gotIDs)
	}
	if len(items) != 2 {
		t.Fatalf("All() returned %d items, want 2", len(items))
	}
	if items[0].Number.String() != "7200" {
		t.Errorf("items[0].Number = %s, want upstream order preserved", items[0].Number)
	}
	if items[1].Date != domain.DateUnknown {
		t.Errorf("items[1].Date = %q, want the unknown sentinel", items[1].Date)
	}
}

func TestAllListingFailure(t *testing.T) {
	f := newTestFetcher(&stubScraper{}, &stubListing{err: errors.New("upstream down")})

	if _, err := f.All(context.Background(), domain.LanguageFR); err == nil {
		t.Fatal("All() should surface listing failures")
	}
}

func TestLatestEmptyListing(t *testing.T) {
	f := newTestFetcher(&stubScraper{}, &stubListing{records: []upstream.Record{}})

	item, err := f.Latest(context.Background(), domain.LanguageFR)
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}
	if item != nil {
		t.Errorf("Latest() = %+v, want nil for an empty listing", item)
	}
}

func TestLatestReturnsFirstElement(t *testing.T) {
	li := &stubListing{records: []upstream.Record{
		{BoNum: "7200", BoDate: "/Date(1687392000000)/", BoURL: "/BO/7200.pdf"},
		{BoNum: "7199", BoDate: "/Date(1686787200000)/", BoURL: "/BO/7199.pdf"},
	}}
	f := newTestFetcher(&stubScraper{}, li)

	item, err := f.Latest(context.Background(), domain.LanguageFR)
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}
	if item == nil || item.Number.String() != "7200" {
		t.Errorf("Latest() = %+v, want the first listing element", item)
	}
}

// End to end over real HTTP clients: the scrape endpoint is dead, the listing
// endpoint answers. The fetch must still succeed on fallback identifiers.
func TestFetchSurvivesDeadScraper(t *testing.T) {
	deadScrape := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	deadScrape.Close()

	var gotModule, gotTab string
	listing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotModule = r.Header.Get("ModuleId")
		gotTab = r.Header.Get("TabId")
		_, _ = w.Write([]byte(`[{"BoId": 7, "BoNum": "7200", "BoDate": "/Date(1687392000000)/", "BoUrl": "/BO/7200.pdf"}]`))
	}))
	defer listing.Close()

	f := NewFetcher(
		scraper.New(deadScrape.URL, time.Second),
		upstream.New(listing.URL, time.Second),
		origin,
		testSettings(),
		logger.New("error", false),
		nil,
	)

	item, err := f.Latest(context.Background(), domain.LanguageFR)
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}
	if item == nil {
		t.Fatal("Latest() = nil, want a bulletin built from fallback identifiers")
	}

	if gotModule != "2873" || gotTab != "775" {
		t.Errorf("listing received %s/%s, want the static fr pair", gotModule, gotTab)
	}
	if item.Date != "2023-06-22T00:00:00Z" {
		t.Errorf("item.Date = %q, want normalized date", item.Date)
	}
	if item.DocumentURL != "https://www.sgg.gov.ma/BO/7200.pdf" {
		t.Errorf("item.DocumentURL = %q, want absolutized", item.DocumentURL)
	}
}
