// Package snapshot loads the optional local JSON snapshot of bulletin
// listings. The file is a read-only capture of earlier upstream responses,
// keyed by language code and kept in upstream order.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
)

// Loader reads and decodes the snapshot file.
type Loader struct {
	filePath string
}

// NewLoader creates a snapshot loader.
func NewLoader(filePath string) *Loader {
	return &Loader{filePath: filePath}
}

// Load reads and parses the snapshot file.
func (l *Loader) Load() (*File, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot json: %w", err)
	}

	return &file, nil
}
