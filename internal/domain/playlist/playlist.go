// Package playlist provides the Playlist domain entity.
package playlist

import "github.com/osa030/podcastr/internal/domain/episode"

// Playlist represents an ordered set of episodes loaded from one or more sources.
type Playlist struct {
	Name     string            // Playlist name
	Source   string            // Display name of the source(s) it was loaded from
	Episodes []episode.Episode // Episodes in play order
}

// Len returns the number of episodes.
func (p *Playlist) Len() int {
	return len(p.Episodes)
}

// At returns the episode at index i.
func (p *Playlist) At(i int) (episode.Episode, bool) {
	if i < 0 || i >= len(p.Episodes) {
		return episode.Episode{}, false
	}
	return p.Episodes[i], true
}

// Titles returns all episode titles in the playlist.
func (p *Playlist) Titles() []string {
	titles := make([]string, len(p.Episodes))
	for i, e := range p.Episodes {
		titles[i] = e.Title
	}
	return titles
}

// TotalDuration returns the total duration of all episodes in seconds.
func (p *Playlist) TotalDuration() int {
	var total int
	for _, e := range p.Episodes {
		total += e.Duration
	}
	return total
}
