package domain

import (
	"regexp"
	"strconv"
)

var (
	// Any assignment form counts for ModuleId: the page embeds one block per
	// content module and several of them set ModuleId inline.
	moduleIDPattern = regexp.MustCompile(`ModuleId\s*=\s*(\d+)`)
	// TabId only counts as a declaration.
	tabIDPattern = regexp.MustCompile(`var\s+TabId\s*=\s*(\d+)`)
)

// ExtractIdentifiers scans inline script text (already fetched by the
// scraping collaborator) for the ModuleId/TabId pair the upstream CMS routes
// on. Pure text analysis, no I/O.
//
// TabID is the first declaration in document order. For ModuleID every match
// is collected and one value is chosen per language: the French page carries
// the bulletin module under the lowest id, the Arabic one under the highest.
// That min/max tie-break is an observed property of the upstream markup, not
// a documented contract; if the page ever reorders its modules this will pick
// the wrong block with no error. Keep it as is.
func ExtractIdentifiers(scriptText string, lang Language) IdentifierPair {
	var pair IdentifierPair

	if m := tabIDPattern.FindStringSubmatch(scriptText); m != nil {
		pair.TabID = m[1]
	}

	var moduleIDs []int64
	for _, m := range moduleIDPattern.FindAllStringSubmatch(scriptText, -1) {
		n, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			continue
		}
		moduleIDs = append(moduleIDs, n)
	}

	if len(moduleIDs) > 0 {
		selected := moduleIDs[0]
		for _, n := range moduleIDs[1:] {
			if lang == LanguageFR && n < selected {
				selected = n
			}
			if lang != LanguageFR && n > selected {
				selected = n
			}
		}
		pair.ModuleID = strconv.FormatInt(selected, 10)
	}

	return pair
}
