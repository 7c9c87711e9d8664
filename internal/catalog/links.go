package catalog

import (
	"net/url"
	"strings"
)

// IsValidExternalURL decides whether a link is worth offering, e.g. the
// "Live Demo" button. Empty, blank and "#" placeholders are rejected. Anything
// that parses as an absolute URL is accepted, and so is anything starting
// with http:// or https:// even when parsing fails.
func IsValidExternalURL(raw string) bool {
	if strings.TrimSpace(raw) == "" || raw == "#" {
		return false
	}

	if isAbsoluteURL(raw) {
		return true
	}

	// Lenient second pass; keeps links the strict parser rejects.
	return strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://")
}

// isAbsoluteURL follows browser URL parsing: any scheme makes a URL absolute,
// so "mailto:" is valid. Hierarchical web schemes also need a host, which
// browsers read from the first path segment when the slashes are missing
// ("http:/x" and "http:x" both have host x).
func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" {
		return false
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https", "ws", "wss", "ftp":
		return u.Host != "" || strings.TrimLeft(u.Opaque+u.Path, "/") != ""
	}
	return true
}
