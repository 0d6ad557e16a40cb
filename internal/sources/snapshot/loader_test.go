package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sggtools/boapi/internal/domain"
)

const sampleSnapshot = `{
  "bulletins": {
    "fr": [
      {"BoId": 101, "BoNum": "7200", "BoDate": "/Date(1687392000000)/", "BoUrl": "/BO/fr/7200.pdf"},
      {"BoId": 100, "BoNum": "7199", "BoDate": "garbage", "BoUrl": ""}
    ],
    "ar": [
      {"BoId": 201, "BoNum": "7200", "BoDate": "/Date(1687392000000)/", "BoUrl": "https://cdn.example/ar/7200.pdf"}
    ],
    "de": [
      {"BoId": 1, "BoNum": "1", "BoDate": "/Date(0)/", "BoUrl": "/x.pdf"}
    ]
  }
}`

func writeSnapshot(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snapshot.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write snapshot file: %v", err)
	}
	return path
}

func TestLoaderLoad(t *testing.T) {
	path := writeSnapshot(t, sampleSnapshot)

	file, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(file.Bulletins["fr"]) != 2 {
		t.Errorf("fr records = %d, want 2", len(file.Bulletins["fr"]))
	}
	if len(file.Bulletins["ar"]) != 1 {
		t.Errorf("ar records = %d, want 1", len(file.Bulletins["ar"]))
	}
}

func TestLoaderInvalidJSON(t *testing.T) {
	path := writeSnapshot(t, "{not json")

	if _, err := NewLoader(path).Load(); err == nil {
		t.Fatal("Load() should fail on invalid json")
	}
}

func TestLoaderMissingFile(t *testing.T) {
	if _, err := NewLoader("/nonexistent/snapshot.json").Load(); err == nil {
		t.Fatal("Load() should fail for a missing file")
	}
}

func TestMapperMap(t *testing.T) {
	path := writeSnapshot(t, sampleSnapshot)
	file, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	byLang := NewMapper("https://www.sgg.gov.ma").Map(file)

	fr := byLang[domain.LanguageFR]
	if len(fr) != 2 {
		t.Fatalf("fr bulletins = %d, want 2", len(fr))
	}
	if fr[0].Date != "2023-06-22T00:00:00Z" {
		t.Errorf("fr[0].Date = %q, want 2023-06-22T00:00:00Z", fr[0].Date)
	}
	if fr[0].DocumentURL != "https://www.sgg.gov.ma/BO/fr/7200.pdf" {
		t.Errorf("fr[0].DocumentURL = %q, want absolutized path", fr[0].DocumentURL)
	}
	if fr[1].Date != domain.DateUnknown {
		t.Errorf("fr[1].Date = %q, want %q for unparsable token", fr[1].Date, domain.DateUnknown)
	}
	if fr[1].DocumentURL != "" {
		t.Errorf("fr[1].DocumentURL = %q, want empty", fr[1].DocumentURL)
	}

	ar := byLang[domain.LanguageAR]
	if len(ar) != 1 || ar[0].DocumentURL != "https://cdn.example/ar/7200.pdf" {
		t.Errorf("ar bulletins = %+v, want absolute URL untouched", ar)
	}

	if len(byLang) != 2 {
		t.Errorf("languages mapped = %d, want 2 (unknown codes dropped)", len(byLang))
	}
}
