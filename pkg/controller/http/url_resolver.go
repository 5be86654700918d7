package http

import (
	"net/url"
	"strings"
)

// ResolveURL resolves a link sent by the tracker against the tracker's base
// URL. Timeline links in burndown payloads are usually relative to the Trac
// root; absolute links and an empty base are returned unchanged.
func ResolveURL(base, target string) string {
	if base == "" {
		return target
	}

	t, err := url.Parse(target)
	if err != nil || t.IsAbs() {
		return target
	}

	b, err := url.Parse(strings.TrimRight(base, "/") + "/")
	if err != nil {
		return target
	}

	// Keep the base path for root-relative links of a Trac mounted below /
	if strings.HasPrefix(t.Path, "/") && !strings.HasPrefix(t.Path, b.Path) {
		t.Path = strings.TrimRight(b.Path, "/") + t.Path
	}
	return b.ResolveReference(t).String()
}
