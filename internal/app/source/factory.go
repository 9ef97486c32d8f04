package source

import (
	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/podcastr/internal/app/filter"
	"github.com/osa030/podcastr/internal/infra/config"
)

// NewProviderChainFromConfig creates a provider chain from configuration.
// spotify may be nil when no spotify source is configured.
func NewProviderChainFromConfig(cfg *config.Config, spotify SpotifyClient, filters *filter.Chain) (*ProviderChain, error) {
	if len(cfg.Sources) == 0 {
		return nil, errors.New("no episode sources configured")
	}

	var providers []ProviderWithMetadata

	for i, scfg := range cfg.Sources {
		var provider Provider
		var err error
		zlog.Debug().Msgf("creating episode provider: index=%d type=%s settings=%+v", i+1, scfg.Type, scfg.Settings)
		switch scfg.Type {
		case "file":
			provider, err = NewFileProvider(scfg.Settings)

		case "spotify":
			if spotify == nil {
				return nil, errors.Newf("spotify client is required by source %d", i)
			}
			provider, err = NewSpotifyProvider(spotify, scfg.Settings)

		default:
			return nil, errors.Newf("unsupported source type: %s (source index %d)", scfg.Type, i)
		}

		if err != nil {
			return nil, errors.Wrapf(err, "failed to create provider (index %d, type %s)", i, scfg.Type)
		}

		providers = append(providers, ProviderWithMetadata{
			Provider:    provider,
			DisplayName: scfg.DisplayName,
		})

		zlog.Info().Msgf("registered episode provider: index=%d type=%s display_name=%s", i+1, scfg.Type, scfg.DisplayName)
	}

	return NewProviderChain(cfg.Catalog.Name, providers, filters), nil
}

// NewFilterChainFromConfig creates the filter chain for enabled filters.
// playable_filter always runs first.
func NewFilterChainFromConfig(cfg *config.Config) (*filter.Chain, error) {
	chain := filter.NewChain()
	chain.Add(&filter.PlayableFilter{})

	for _, name := range filter.RegisteredNames() {
		if name == "playable_filter" || !cfg.IsFilterEnabled(name) {
			continue
		}
		f, err := filter.New(name, cfg.Filters[name].Settings)
		if err != nil {
			return nil, err
		}
		chain.Add(f)
		zlog.Info().Msgf("enabled filter: %s", name)
	}

	for name, fcfg := range cfg.Filters {
		if _, ok := filter.GetRegistered()[name]; !ok && fcfg.Enabled {
			return nil, errors.Newf("unknown filter: %s", name)
		}
	}

	return chain, nil
}
