package snapshot

import "github.com/sggtools/boapi/internal/upstream"

// File is the shape of the local snapshot document:
//
//	{"bulletins": {"fr": [rawRecord, ...], "ar": [...]}}
//
// Records keep the upstream's own field names; the file is a captured
// listing response, not a re-serialization of normalized items.
type File struct {
	Bulletins map[string][]upstream.Record `json:"bulletins"`
}
