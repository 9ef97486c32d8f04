package spotify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zmb3/spotify/v2"
)

func TestExtractShowID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Spotify URI format",
			input:    "spotify:show:4rOoJ6Egrf8K2IrywzwOMk",
			expected: "4rOoJ6Egrf8K2IrywzwOMk",
		},
		{
			name:     "Spotify URL format",
			input:    "https://open.spotify.com/show/4rOoJ6Egrf8K2IrywzwOMk",
			expected: "4rOoJ6Egrf8K2IrywzwOMk",
		},
		{
			name:     "Spotify URL with query params",
			input:    "https://open.spotify.com/show/4rOoJ6Egrf8K2IrywzwOMk?si=abc123",
			expected: "4rOoJ6Egrf8K2IrywzwOMk",
		},
		{
			name:     "Plain show ID",
			input:    "4rOoJ6Egrf8K2IrywzwOMk",
			expected: "4rOoJ6Egrf8K2IrywzwOMk",
		},
		{
			name:     "Empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "HTTP URL (not HTTPS)",
			input:    "http://open.spotify.com/show/testID",
			expected: "testID",
		},
		{
			name:     "Localized URL",
			input:    "https://open.spotify.com/intl-ja/show/abc123",
			expected: "abc123",
		},
		{
			name:     "URL with multiple query params",
			input:    "https://open.spotify.com/show/abc123?si=xyz&utm_source=copy",
			expected: "abc123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := extractShowID(tt.input)
			assert.Equal(t, tt.expected, result,
				"extractShowID(%s) should return %s", tt.input, tt.expected)
		})
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
		{
			name:     "rate limit error with 429",
			err:      errors.New("Error 429: rate limit exceeded"),
			expected: true,
		},
		{
			name:     "rate limit text",
			err:      errors.New("rate limit exceeded"),
			expected: true,
		},
		{
			name:     "server error 500",
			err:      errors.New("Error 500: internal server error"),
			expected: true,
		},
		{
			name:     "server error 502",
			err:      errors.New("502 Bad Gateway"),
			expected: true,
		},
		{
			name:     "server error 503",
			err:      errors.New("503 Service Unavailable"),
			expected: true,
		},
		{
			name:     "server error 504",
			err:      errors.New("504 Gateway Timeout"),
			expected: true,
		},
		{
			name:     "client error 400",
			err:      errors.New("400 Bad Request"),
			expected: false,
		},
		{
			name:     "not found error",
			err:      errors.New("404 not found"),
			expected: false,
		},
		{
			name:     "generic error",
			err:      errors.New("something went wrong"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := isRetryable(tt.err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestConvertEpisode(t *testing.T) {
	show := &spotify.SimpleShow{
		Name:      "Dev Talk",
		Publisher: "Ana, Bia",
		Images:    []spotify.Image{{URL: "https://i.scdn.co/show.jpg"}},
	}

	tests := []struct {
		name              string
		ep                spotify.EpisodePage
		expectedThumbnail string
		expectedURL       string
		expectedDuration  int
	}{
		{
			name: "episode image and preview",
			ep: spotify.EpisodePage{
				Name:            "Ep 1",
				Duration_ms:     3725000,
				AudioPreviewURL: "https://p.scdn.co/mp3-preview/1",
				Images:          []spotify.Image{{URL: "https://i.scdn.co/ep1.jpg"}},
			},
			expectedThumbnail: "https://i.scdn.co/ep1.jpg",
			expectedURL:       "https://p.scdn.co/mp3-preview/1",
			expectedDuration:  3725,
		},
		{
			name: "falls back to show image",
			ep: spotify.EpisodePage{
				Name:        "Ep 2",
				Duration_ms: 1500,
			},
			expectedThumbnail: "https://i.scdn.co/show.jpg",
			expectedURL:       "",
			expectedDuration:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ep := convertEpisode(show, tt.ep)
			assert.Equal(t, tt.ep.Name, ep.Title)
			assert.Equal(t, "Ana, Bia", ep.Members)
			assert.Equal(t, tt.expectedThumbnail, ep.Thumbnail)
			assert.Equal(t, tt.expectedURL, ep.URL)
			assert.Equal(t, tt.expectedDuration, ep.Duration)
		})
	}
}
