// Package route holds small path helpers shared by HTTP handlers.
package route

import (
	"net/http"
	"net/url"
	"strings"
)

// RedirectTrailingSlash canonicalizes request paths by stripping trailing "/"
// characters. The query string is preserved.
//
// It returns true when a redirect was written. Route handlers should stop further
// processing when true.
func RedirectTrailingSlash(w http.ResponseWriter, r *http.Request) bool {
	if w == nil || r == nil || r.URL == nil {
		return false
	}

	originalPath := r.URL.Path
	canonical := strings.TrimRight(originalPath, "/")
	if canonical == "" {
		canonical = "/"
	}
	if canonical == originalPath {
		return false
	}

	target := (&url.URL{Path: canonical, RawQuery: r.URL.RawQuery}).String()
	http.Redirect(w, r, target, http.StatusMovedPermanently)
	return true
}

// SplitPathParts returns the non-empty, unescaped segments of a path
// remainder. It reports false when a segment cannot be unescaped.
func SplitPathParts(rest string) ([]string, bool) {
	raw := strings.Split(strings.Trim(rest, "/"), "/")
	parts := make([]string, 0, len(raw))
	for _, segment := range raw {
		if segment == "" {
			continue
		}
		unescaped, err := url.PathUnescape(segment)
		if err != nil {
			return nil, false
		}
		parts = append(parts, unescaped)
	}
	return parts, true
}
