// Package links converts streaming-service web links into native-scheme identifiers.
package links

import (
	"net/url"
	"strings"
)

// schemes maps a streaming-service web host to the scheme of its native client.
var schemes = map[string]string{
	"open.spotify.com": "spotify",
}

// ToNativeURI converts https://<host>/<type>/<id>[?...] into <scheme>:<type>:<id>
// for known hosts. Any other link is returned unchanged.
func ToNativeURI(link string) string {
	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil || u.Scheme != "https" {
		return link
	}

	scheme, ok := schemes[strings.ToLower(u.Host)]
	if !ok {
		return link
	}

	segments := pathSegments(u.Path)
	// Localized links carry a leading intl-<lang> segment.
	if len(segments) > 0 && strings.HasPrefix(segments[0], "intl-") {
		segments = segments[1:]
	}
	if len(segments) < 2 {
		return link
	}

	return scheme + ":" + segments[0] + ":" + segments[1]
}

func pathSegments(path string) []string {
	var segments []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}
