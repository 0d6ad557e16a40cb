package domain

import "encoding/json"

// DateUnknown is the sentinel published when a bulletin's date token could not
// be normalized. Consumers must never see a malformed date string.
const DateUnknown = "unknown"

// Language selects which Bulletin Officiel edition to serve.
type Language string

const (
	// LanguageFR is the primary (French) edition.
	LanguageFR Language = "fr"
	// LanguageAR is the secondary (Arabic) edition.
	LanguageAR Language = "ar"
)

// ParseLanguage maps a route segment ("FR", "fr", "AR", "ar") to a Language.
func ParseLanguage(s string) (Language, bool) {
	switch s {
	case "fr", "FR", "Fr":
		return LanguageFR, true
	case "ar", "AR", "Ar":
		return LanguageAR, true
	}
	return "", false
}

// Bulletin is one normalized Bulletin Officiel entry.
// ID and Number pass through whatever the upstream supplies (numeric or
// string label), Date is RFC3339 UTC or DateUnknown, DocumentURL is always
// absolute (or empty when the upstream provided no document).
type Bulletin struct {
	ID          json.Number `json:"id,omitempty"`
	Number      json.Number `json:"number,omitempty"`
	Date        string      `json:"date"`
	DocumentURL string      `json:"documentUrl"`
}

// IdentifierPair carries the two numeric values the upstream CMS requires as
// request metadata. Empty string means the identifier could not be found.
// Scoped to a single fetch, never persisted.
type IdentifierPair struct {
	ModuleID string
	TabID    string
}

// Complete reports whether both identifiers are present.
func (p IdentifierPair) Complete() bool {
	return p.ModuleID != "" && p.TabID != ""
}
