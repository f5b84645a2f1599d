package links

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToNativeURI(t *testing.T) {
	tests := []struct {
		name string
		link string
		want string
	}{
		{
			name: "track with query",
			link: "https://open.spotify.com/track/abc123?x=1",
			want: "spotify:track:abc123",
		},
		{
			name: "playlist",
			link: "https://open.spotify.com/playlist/37i9dQZF1DXcBWIGoYBM5M",
			want: "spotify:playlist:37i9dQZF1DXcBWIGoYBM5M",
		},
		{
			name: "album with trailing slash",
			link: "https://open.spotify.com/album/4aawyAB9vmqN3uQ7FjRGTy/",
			want: "spotify:album:4aawyAB9vmqN3uQ7FjRGTy",
		},
		{
			name: "localized link",
			link: "https://open.spotify.com/intl-pt/track/abc123?si=42",
			want: "spotify:track:abc123",
		},
		{
			name: "fragment dropped",
			link: "https://open.spotify.com/track/abc123#now",
			want: "spotify:track:abc123",
		},
		{
			name: "missing id passes through",
			link: "https://open.spotify.com/track",
			want: "https://open.spotify.com/track",
		},
		{
			name: "plain http passes through",
			link: "http://open.spotify.com/track/abc123",
			want: "http://open.spotify.com/track/abc123",
		},
		{
			name: "unknown host passes through",
			link: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			want: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		},
		{
			name: "native uri passes through",
			link: "spotify:track:abc123",
			want: "spotify:track:abc123",
		},
		{
			name: "garbage passes through",
			link: "::not a url",
			want: "::not a url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToNativeURI(tt.link))
		})
	}
}

func TestToNativeURI_UnrecognizedIsIdentity(t *testing.T) {
	for _, link := range []string{"", "https://example.com/a/b", "file:///tmp/song.mp3"} {
		assert.Equal(t, link, ToNativeURI(link))
	}
}
