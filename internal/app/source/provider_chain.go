package source

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/podcastr/internal/app/filter"
	"github.com/osa030/podcastr/internal/domain/episode"
	"github.com/osa030/podcastr/internal/domain/playlist"
)

// ErrNoEpisodes is returned when no provider yields a playable episode.
var ErrNoEpisodes = errors.New("no episodes available from any provider")

// ProviderWithMetadata wraps a provider with its metadata.
type ProviderWithMetadata struct {
	Provider    Provider
	DisplayName string
}

// ProviderChain loads episodes from every provider in order.
type ProviderChain struct {
	name      string
	providers []ProviderWithMetadata
	filters   *filter.Chain
}

// NewProviderChain creates a new provider chain. A nil filter chain accepts every episode.
func NewProviderChain(name string, providers []ProviderWithMetadata, filters *filter.Chain) *ProviderChain {
	if filters == nil {
		filters = filter.NewChain()
	}
	return &ProviderChain{
		name:      name,
		providers: providers,
		filters:   filters,
	}
}

// Load asks every provider for episodes and returns the filtered result.
// Failing providers are logged and skipped.
func (c *ProviderChain) Load(ctx context.Context) (playlist.Playlist, error) {
	var all []episode.Episode
	var sources []string

	for i, pm := range c.providers {
		zlog.Debug().Msgf("loading provider: index=%d total=%d name=%s provider_type=%s",
			i+1, len(c.providers), pm.DisplayName, pm.Provider.Name())

		eps, err := pm.Provider.Episodes(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return playlist.Playlist{}, errors.Wrap(ctx.Err(), "catalog load cancelled")
			}
			zlog.Warn().Msgf("provider failed, trying next: provider=%s error=%v", pm.DisplayName, err)
			continue
		}

		if len(eps) == 0 {
			zlog.Debug().Msgf("provider returned no episodes: provider=%s", pm.DisplayName)
			continue
		}

		all = append(all, eps...)
		sources = append(sources, pm.DisplayName)
		zlog.Info().Msgf("provider returned episodes: provider=%s count=%d total_so_far=%d",
			pm.DisplayName, len(eps), len(all))
	}

	accepted := c.filters.Apply(ctx, all)
	if len(accepted) == 0 {
		return playlist.Playlist{}, ErrNoEpisodes
	}
	if dropped := len(all) - len(accepted); dropped > 0 {
		zlog.Info().Msgf("filters rejected episodes: count=%d", dropped)
	}

	return playlist.Playlist{
		Name:     c.name,
		Source:   strings.Join(sources, ", "),
		Episodes: accepted,
	}, nil
}

// Name returns the chain name.
func (c *ProviderChain) Name() string {
	return "provider_chain"
}
