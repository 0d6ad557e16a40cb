package domain

import "strings"

// AbsoluteURL rewrites a possibly relative document path against origin.
// Already-absolute URLs pass through unchanged and an empty path stays empty
// (callers treat empty as "no document available"). The concatenation is
// deliberately raw: the upstream emits root-relative paths and normalizing
// slashes here would diverge from its own link format.
func AbsoluteURL(path, origin string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return origin + path
}
