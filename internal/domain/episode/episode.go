// Package episode provides the Episode domain entity.
package episode

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

// Episode represents a playable podcast episode.
// Values are immutable once constructed.
type Episode struct {
	Title     string `yaml:"title" json:"title" validate:"required"`
	Members   string `yaml:"members" json:"members"`                    // Display-only contributor list
	Thumbnail string `yaml:"thumbnail" json:"thumbnail"`                // Thumbnail URL
	Duration  int    `yaml:"duration" json:"duration" validate:"gte=0"` // Duration in seconds
	URL       string `yaml:"url" json:"url" validate:"required"`        // Media URL
}

var validate = validator.New()

// Validate checks that the episode can be handed to a media element.
func (e Episode) Validate() error {
	if err := validate.Struct(e); err != nil {
		return errors.Wrapf(err, "invalid episode %q", e.Title)
	}
	return nil
}

// DurationString returns the duration formatted as HH:MM:SS.
func (e Episode) DurationString() string {
	return FormatDuration(e.Duration)
}

// FormatDuration formats a number of seconds as HH:MM:SS.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
}
