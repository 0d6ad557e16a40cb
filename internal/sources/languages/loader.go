// Package languages resolves per-edition settings: which page to scrape for
// live identifiers and the static fallback pair. Built-in defaults match the
// production sgg.gov.ma values; an optional YAML file overrides them.
package languages

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sggtools/boapi/internal/bulletin"
	"github.com/sggtools/boapi/internal/domain"
)

// Defaults returns the compiled-in settings for both editions.
func Defaults() map[domain.Language]bulletin.LanguageSettings {
	return map[domain.Language]bulletin.LanguageSettings{
		domain.LanguageFR: {
			PageURL:          "https://www.sgg.gov.ma/BulletinOfficiel.aspx",
			FallbackModuleID: "2873",
			FallbackTabID:    "775",
		},
		domain.LanguageAR: {
			PageURL:          "https://www.sgg.gov.ma/arabe/BulletinOfficiel.aspx",
			FallbackModuleID: "3111",
			FallbackTabID:    "847",
		},
	}
}

// Loader reads the optional languages YAML file.
type Loader struct {
	filePath string
}

// NewLoader creates a loader for filePath. An empty path means defaults only.
func NewLoader(filePath string) *Loader {
	return &Loader{filePath: filePath}
}

// Load returns the effective settings: defaults merged with the file's
// overrides. Entries for unknown language codes are rejected, and the merged
// result must keep a page URL and a complete fallback pair per edition, since
// the fetch pipeline has nothing else to degrade to.
func (l *Loader) Load() (map[domain.Language]bulletin.LanguageSettings, error) {
	settings := Defaults()
	if l.filePath == "" {
		return settings, nil
	}

	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read languages file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse languages yaml: %w", err)
	}

	for code, entry := range file.Languages {
		lang, ok := domain.ParseLanguage(code)
		if !ok {
			return nil, fmt.Errorf("unknown language code %q in languages file", code)
		}

		merged := settings[lang]
		if entry.PageURL != "" {
			merged.PageURL = entry.PageURL
		}
		if entry.FallbackModuleID != "" {
			merged.FallbackModuleID = entry.FallbackModuleID
		}
		if entry.FallbackTabID != "" {
			merged.FallbackTabID = entry.FallbackTabID
		}
		settings[lang] = merged
	}

	for lang, s := range settings {
		if s.PageURL == "" || s.FallbackModuleID == "" || s.FallbackTabID == "" {
			return nil, fmt.Errorf("incomplete settings for language %q", lang)
		}
	}

	return settings, nil
}
