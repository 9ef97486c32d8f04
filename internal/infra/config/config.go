// Package config provides configuration loading from YAML files.
package config

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Server   ServerConfig            `yaml:"server"`
	Catalog  CatalogConfig           `yaml:"catalog"`
	Playback PlaybackConfig          `yaml:"playback"`
	Media    MediaConfig             `yaml:"media"`
	Sources  []SourceConfig          `yaml:"sources" validate:"required,min=1,dive"`
	Filters  map[string]FilterConfig `yaml:"filters"`
	Messages MessagesConfig          `yaml:"messages"`
	Spotify  SpotifyConfig           `yaml:"spotify"`
}

// ServerConfig represents server configuration.
type ServerConfig struct {
	Addr  string      `yaml:"addr" default:":8080"`
	Token string      `yaml:"token"` // Required by mutating RPCs when set
	Hooks HooksConfig `yaml:"hooks"`
}

// HooksConfig represents lifecycle hooks configuration.
type HooksConfig struct {
	OnStarted []string `yaml:"on_started"`
	OnStopped []string `yaml:"on_stopped"`
}

// CatalogConfig represents the episode catalog configuration.
type CatalogConfig struct {
	Name string `yaml:"name" default:"Podcasts"`
}

// PlaybackConfig represents playback control configuration.
type PlaybackConfig struct {
	IndexPolicy        string `yaml:"index_policy" default:"reject" validate:"oneof=reject clamp"`
	ShuffleAvoidRepeat bool   `yaml:"shuffle_avoid_repeat"`
	Autoplay           *bool  `yaml:"autoplay" default:"true"`
}

// AutoplayEnabled reports whether loaded episodes start playing on their own.
func (p PlaybackConfig) AutoplayEnabled() bool {
	return p.Autoplay == nil || *p.Autoplay
}

// MediaConfig represents the media element configuration.
type MediaConfig struct {
	Backend              string    `yaml:"backend" default:"clock" validate:"oneof=clock mpv"`
	TimeUpdateIntervalMs int       `yaml:"time_update_interval_ms" default:"250" validate:"gte=10,lte=5000"`
	MPV                  MPVConfig `yaml:"mpv"`
}

// MPVConfig represents the mpv backend configuration.
type MPVConfig struct {
	Path           string   `yaml:"path" default:"mpv"`
	Socket         string   `yaml:"socket"`
	ExtraArgs      []string `yaml:"extra_args"`
	StartTimeoutMs int      `yaml:"start_timeout_ms" default:"5000" validate:"gte=100"`
}

// SourceConfig represents a single episode source configuration.
type SourceConfig struct {
	Type        string         `yaml:"type" validate:"required,oneof=file spotify"`
	DisplayName string         `yaml:"display_name" validate:"required"`
	Settings    map[string]any `yaml:"settings" validate:"required"`
}

// FilterConfig represents a filter's configuration.
type FilterConfig struct {
	Enabled  bool           `yaml:"enabled"`
	Settings map[string]any `yaml:"settings,omitempty"`
}

// MessagesConfig represents user-facing messages.
type MessagesConfig struct {
	Success          string `yaml:"success" default:"OK"`
	DefaultError     string `yaml:"default_error" default:"Something went wrong"`
	EmptyQueue       string `yaml:"empty_queue" default:"There is nothing to play"`
	IndexOutOfRange  string `yaml:"index_out_of_range" default:"No such episode"`
	NoEpisode        string `yaml:"no_episode" default:"Select a podcast to listen"`
	CatalogEmpty     string `yaml:"catalog_empty" default:"The catalog is empty"`
	ControlDisabled  string `yaml:"control_disabled" default:"This control is not available now"`
	InvalidArgument  string `yaml:"invalid_argument" default:"Invalid request"`
	PermissionDenied string `yaml:"permission_denied" default:"Invalid control token"`
}

// SpotifyConfig represents Spotify API configuration.
type SpotifyConfig struct {
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	RefreshToken string `yaml:"refresh_token"`
	Market       string `yaml:"market" validate:"omitempty,len=2" default:"US"`
}

// Load loads configuration from a YAML file.
// Environment variables take precedence over file values for sensitive fields.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}
	return Parse(data)
}

// Parse parses configuration from YAML data.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config file")
	}

	// Override with environment variables
	cfg.overrideFromEnv()

	// Set defaults using creasty/defaults
	if err := defaults.Set(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to set defaults")
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return &cfg, nil
}

// overrideFromEnv overrides config values with environment variables.
func (c *Config) overrideFromEnv() {
	if v := os.Getenv("SPOTIFY_CLIENT_ID"); v != "" {
		c.Spotify.ClientID = v
	}
	if v := os.Getenv("SPOTIFY_CLIENT_SECRET"); v != "" {
		c.Spotify.ClientSecret = v
	}
	if v := os.Getenv("SPOTIFY_REFRESH_TOKEN"); v != "" {
		c.Spotify.RefreshToken = v
	}
	if v := os.Getenv("PODCASTR_TOKEN"); v != "" {
		c.Server.Token = v
	}
}

// GetMessage returns the message for the given code.
func (c *Config) GetMessage(code string) string {
	switch code {
	case "success":
		return c.Messages.Success
	case "empty_queue":
		return c.Messages.EmptyQueue
	case "index_out_of_range":
		return c.Messages.IndexOutOfRange
	case "no_episode":
		return c.Messages.NoEpisode
	case "catalog_empty":
		return c.Messages.CatalogEmpty
	case "control_disabled":
		return c.Messages.ControlDisabled
	case "invalid_argument":
		return c.Messages.InvalidArgument
	case "permission_denied":
		return c.Messages.PermissionDenied
	default:
		return c.Messages.DefaultError
	}
}

// HasSourceType reports whether any configured source has the given type.
func (c *Config) HasSourceType(sourceType string) bool {
	for _, s := range c.Sources {
		if s.Type == sourceType {
			return true
		}
	}
	return false
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "struct validation failed")
	}

	// Spotify credentials are only needed by spotify sources
	if c.HasSourceType("spotify") {
		if c.Spotify.ClientID == "" {
			return errors.New("spotify.client_id (ClientID) is required by spotify sources")
		}
		if c.Spotify.ClientSecret == "" {
			return errors.New("spotify.client_secret (ClientSecret) is required by spotify sources")
		}
	}

	return nil
}

// IsFilterEnabled checks if a filter is enabled.
func (c *Config) IsFilterEnabled(filterName string) bool {
	if f, ok := c.Filters[filterName]; ok {
		return f.Enabled
	}
	return false
}

// EnabledFilters returns the settings of every enabled filter keyed by name.
func (c *Config) EnabledFilters() map[string]map[string]any {
	enabled := make(map[string]map[string]any)
	for name, f := range c.Filters {
		if f.Enabled {
			enabled[name] = f.Settings
		}
	}
	return enabled
}
