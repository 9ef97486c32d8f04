package filter

import (
	"context"
	"regexp"
	"strings"
	"sync"

	"github.com/osa030/podcastr/internal/domain/episode"
)

// DuplicateEpisodeFilter rejects episodes already accepted in the current run.
// Detects:
// - Identical media URLs
// - Reruns (normalized title + same members)
type DuplicateEpisodeFilter struct {
	mu     sync.Mutex
	urls   map[string]struct{}
	titles map[string]struct{}
}

// NewDuplicateEpisodeFilter creates a new duplicate episode filter.
func NewDuplicateEpisodeFilter() *DuplicateEpisodeFilter {
	f := &DuplicateEpisodeFilter{}
	f.Reset()
	return f
}

// Name returns the filter name.
func (f *DuplicateEpisodeFilter) Name() string {
	return "duplicate_episode_filter"
}

// Description returns the filter description.
func (f *DuplicateEpisodeFilter) Description() string {
	return "Rejects episodes listed twice across sources, including reruns with the same members"
}

// ReturnCodes returns possible return codes.
func (f *DuplicateEpisodeFilter) ReturnCodes() []string {
	return []string{"duplicate_episode"}
}

// ValidateConfig validates the filter configuration.
func (f *DuplicateEpisodeFilter) ValidateConfig(settings map[string]any) error {
	// No configuration needed
	return nil
}

// Reset forgets every episode seen so far.
func (f *DuplicateEpisodeFilter) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.urls = make(map[string]struct{})
	f.titles = make(map[string]struct{})
}

// Check checks if the episode is a duplicate and records it otherwise.
func (f *DuplicateEpisodeFilter) Check(ctx context.Context, ep episode.Episode) Result {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.urls[ep.URL]; ok && ep.URL != "" {
		return Reject("duplicate_episode")
	}
	key := normalizeTitle(ep.Title) + "\x00" + strings.ToLower(strings.TrimSpace(ep.Members))
	if _, ok := f.titles[key]; ok {
		return Reject("duplicate_episode")
	}

	f.urls[ep.URL] = struct{}{}
	f.titles[key] = struct{}{}
	return Accept()
}

var (
	// "Title (Rerun)", "Title - Replay", "Rerun: Title"
	rerunPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\s*[\(\[](re-?run|rebroadcast|replay|repost|encore)[\)\]]`),
		regexp.MustCompile(`\s*-\s*(re-?run|rebroadcast|replay|repost|encore)$`),
		regexp.MustCompile(`^(re-?run|rebroadcast|replay|repost|encore)\s*:\s*`),
	}
	whitespace = regexp.MustCompile(`\s+`)
)

// normalizeTitle removes rerun markers and folds case and whitespace.
func normalizeTitle(title string) string {
	normalized := strings.ToLower(title)
	for _, pattern := range rerunPatterns {
		normalized = pattern.ReplaceAllString(normalized, "")
	}
	normalized = strings.TrimSpace(normalized)
	normalized = whitespace.ReplaceAllString(normalized, " ")
	return strings.TrimRight(normalized, " -")
}

func init() {
	Register("duplicate_episode_filter", func() Filter {
		return NewDuplicateEpisodeFilter()
	})
}
