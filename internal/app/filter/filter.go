// Package filter provides the filter chain applied to episodes loaded from sources.
package filter

import (
	"context"
	"sort"

	"github.com/cockroachdb/errors"

	"github.com/osa030/podcastr/internal/domain/episode"
)

// Result represents the result of a filter check.
type Result struct {
	Accepted bool
	Code     string // e.g., "not_playable", "duration_limit_exceeded"
}

// Accept returns an accepted result.
func Accept() Result {
	return Result{Accepted: true}
}

// Reject returns a rejected result with the given code.
func Reject(code string) Result {
	return Result{Accepted: false, Code: code}
}

// Filter is the interface for episode filters.
type Filter interface {
	// Name returns the filter name (used in config).
	Name() string
	// Description returns a human-readable description.
	Description() string
	// ReturnCodes returns the codes this filter can return.
	ReturnCodes() []string
	// ValidateConfig validates and applies the filter configuration.
	ValidateConfig(settings map[string]any) error
	// Check performs the filter check.
	Check(ctx context.Context, ep episode.Episode) Result
}

// Resetter is implemented by filters that keep state across one chain run.
type Resetter interface {
	Reset()
}

// registry holds registered filter factories.
var registry = make(map[string]func() Filter)

// Register registers a filter factory.
func Register(name string, factory func() Filter) {
	registry[name] = factory
}

// GetRegistered returns all registered filter factories.
func GetRegistered() map[string]func() Filter {
	return registry
}

// RegisteredNames returns the registered filter names in sorted order.
func RegisteredNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New creates a registered filter and applies its settings.
func New(name string, settings map[string]any) (Filter, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, errors.Newf("unknown filter: %s", name)
	}
	f := factory()
	if err := f.ValidateConfig(settings); err != nil {
		return nil, errors.Wrapf(err, "invalid settings for filter %s", name)
	}
	return f, nil
}
