package filter

import (
	"context"

	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/podcastr/internal/domain/episode"
)

// PlayableFilter rejects episodes a media element cannot load.
type PlayableFilter struct{}

func (f *PlayableFilter) Name() string {
	return "playable_filter"
}

func (f *PlayableFilter) Description() string {
	return "Rejects episodes without a title or media URL"
}

func (f *PlayableFilter) ReturnCodes() []string {
	return []string{"not_playable"}
}

func (f *PlayableFilter) ValidateConfig(settings map[string]any) error {
	// No configuration needed
	return nil
}

func (f *PlayableFilter) Check(ctx context.Context, ep episode.Episode) Result {
	if err := ep.Validate(); err != nil {
		zlog.Debug().Msgf("filter: %v", err)
		return Reject("not_playable")
	}
	return Accept()
}

func init() {
	Register("playable_filter", func() Filter {
		return &PlayableFilter{}
	})
}
