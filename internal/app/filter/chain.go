package filter

import (
	"context"

	zlog "github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/osa030/podcastr/internal/domain/episode"
)

// Chain executes filters in sequence.
type Chain struct {
	filters []Filter
}

// NewChain creates a new filter chain.
func NewChain() *Chain {
	return &Chain{
		filters: make([]Filter, 0),
	}
}

// Add adds a filter to the chain.
func (c *Chain) Add(f Filter) {
	c.filters = append(c.filters, f)
}

// Execute runs all filters in sequence.
// Returns immediately if any filter rejects the episode.
func (c *Chain) Execute(ctx context.Context, ep episode.Episode) Result {
	for _, f := range c.filters {
		result := f.Check(ctx, ep)
		if !result.Accepted {
			return result
		}
	}
	return Accept()
}

// Apply returns the episodes every filter accepts, in their original order.
// Stateful filters are reset first.
func (c *Chain) Apply(ctx context.Context, eps []episode.Episode) []episode.Episode {
	c.Reset()
	return lo.Filter(eps, func(ep episode.Episode, _ int) bool {
		result := c.Execute(ctx, ep)
		if !result.Accepted {
			zlog.Debug().Msgf("filter: episode rejected: title=%s code=%s", ep.Title, result.Code)
		}
		return result.Accepted
	})
}

// Reset clears the state of stateful filters.
func (c *Chain) Reset() {
	for _, f := range c.filters {
		if r, ok := f.(Resetter); ok {
			r.Reset()
		}
	}
}

// Filters returns all filters in the chain.
func (c *Chain) Filters() []Filter {
	return c.filters
}
