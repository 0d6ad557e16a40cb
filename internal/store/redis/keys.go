package redis

import "github.com/sggtools/boapi/internal/domain"

const keyPrefixSnapshot = "boapi:snapshot:"

// SnapshotKey returns the redis key holding one language's snapshot blob.
func SnapshotKey(lang domain.Language) string {
	return keyPrefixSnapshot + string(lang)
}
