// Package source provides episode sources that build the player catalog.
package source

import (
	"context"

	"github.com/osa030/podcastr/internal/domain/episode"
	"github.com/osa030/podcastr/internal/infra/spotify"
)

// Provider is the interface for episode providers.
// Different implementations load episodes from various places
// (e.g., a catalog file, a Spotify show).
type Provider interface {
	// Episodes loads the provider's episodes in display order.
	Episodes(ctx context.Context) ([]episode.Episode, error)

	// Name returns the provider name (used in config).
	Name() string
}

// SpotifyClient defines the interface for Spotify operations needed by providers.
type SpotifyClient interface {
	GetShow(ctx context.Context, showURL string, limit int) (*spotify.Show, error)
}
