package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalConfig = `
sources:
  - type: file
    display_name: Local
    settings:
      path: config/episodes.yaml
`

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte(minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "Podcasts", cfg.Catalog.Name)
	assert.Equal(t, "reject", cfg.Playback.IndexPolicy)
	assert.False(t, cfg.Playback.ShuffleAvoidRepeat)
	assert.True(t, cfg.Playback.AutoplayEnabled())
	assert.Equal(t, "clock", cfg.Media.Backend)
	assert.Equal(t, 250, cfg.Media.TimeUpdateIntervalMs)
	assert.Equal(t, "mpv", cfg.Media.MPV.Path)
	assert.Equal(t, 5000, cfg.Media.MPV.StartTimeoutMs)
	assert.Equal(t, "US", cfg.Spotify.Market)
	assert.Equal(t, "Select a podcast to listen", cfg.GetMessage("no_episode"))
}

func TestParse_Values(t *testing.T) {
	data := `
server:
  addr: ":9090"
  token: secret
playback:
  index_policy: clamp
  shuffle_avoid_repeat: true
  autoplay: false
media:
  backend: mpv
  mpv:
    socket: /tmp/test.sock
    extra_args: ["--volume=50"]
sources:
  - type: spotify
    display_name: Show
    settings:
      show_url: spotify:show:abc
spotify:
  client_id: id
  client_secret: secret
  market: JP
filters:
  duration_limit_filter:
    enabled: true
    settings:
      max_seconds: 3600
  playable_filter:
    enabled: false
`
	cfg, err := Parse([]byte(data))
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "secret", cfg.Server.Token)
	assert.Equal(t, "clamp", cfg.Playback.IndexPolicy)
	assert.True(t, cfg.Playback.ShuffleAvoidRepeat)
	assert.False(t, cfg.Playback.AutoplayEnabled())
	assert.Equal(t, "mpv", cfg.Media.Backend)
	assert.Equal(t, "/tmp/test.sock", cfg.Media.MPV.Socket)
	assert.Equal(t, []string{"--volume=50"}, cfg.Media.MPV.ExtraArgs)
	assert.Equal(t, "JP", cfg.Spotify.Market)
	assert.True(t, cfg.HasSourceType("spotify"))
	assert.False(t, cfg.HasSourceType("file"))

	assert.True(t, cfg.IsFilterEnabled("duration_limit_filter"))
	assert.False(t, cfg.IsFilterEnabled("playable_filter"))
	assert.False(t, cfg.IsFilterEnabled("unknown"))
	enabled := cfg.EnabledFilters()
	require.Contains(t, enabled, "duration_limit_filter")
	assert.Equal(t, 3600, enabled["duration_limit_filter"]["max_seconds"])
	assert.NotContains(t, enabled, "playable_filter")
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		errMsg string
	}{
		{
			name:   "no sources",
			data:   "server:\n  addr: \":8080\"\n",
			errMsg: "Sources",
		},
		{
			name:   "unknown source type",
			data:   "sources:\n  - type: rss\n    display_name: Feed\n    settings: {url: x}\n",
			errMsg: "Type",
		},
		{
			name:   "missing display name",
			data:   "sources:\n  - type: file\n    settings: {path: x}\n",
			errMsg: "DisplayName",
		},
		{
			name:   "invalid index policy",
			data:   minimalConfig + "playback:\n  index_policy: wrap\n",
			errMsg: "IndexPolicy",
		},
		{
			name:   "invalid backend",
			data:   minimalConfig + "media:\n  backend: vlc\n",
			errMsg: "Backend",
		},
		{
			name:   "invalid market length",
			data:   minimalConfig + "spotify:\n  market: JAPAN\n",
			errMsg: "Market",
		},
		{
			name:   "spotify source without credentials",
			data:   "sources:\n  - type: spotify\n    display_name: Show\n    settings: {show_url: x}\n",
			errMsg: "ClientID",
		},
		{
			name:   "malformed yaml",
			data:   "sources: [",
			errMsg: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SPOTIFY_CLIENT_ID", "")
			t.Setenv("SPOTIFY_CLIENT_SECRET", "")

			_, err := Parse([]byte(tt.data))
			require.Error(t, err, "expected validation to fail")
			assert.Contains(t, err.Error(), tt.errMsg,
				"error message should mention the problematic field")
		})
	}
}

func TestParse_EnvOverrides(t *testing.T) {
	t.Setenv("SPOTIFY_CLIENT_ID", "env-id")
	t.Setenv("SPOTIFY_CLIENT_SECRET", "env-secret")
	t.Setenv("PODCASTR_TOKEN", "env-token")

	data := "sources:\n  - type: spotify\n    display_name: Show\n    settings: {show_url: x}\n"
	cfg, err := Parse([]byte(data))
	require.NoError(t, err)

	assert.Equal(t, "env-id", cfg.Spotify.ClientID)
	assert.Equal(t, "env-secret", cfg.Spotify.ClientSecret)
	assert.Equal(t, "env-token", cfg.Server.Token)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalConfig), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Sources, 1)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_Example(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "..", "config", "server.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "Faladev", cfg.Catalog.Name)
	assert.Equal(t, "clock", cfg.Media.Backend)
	assert.True(t, cfg.IsFilterEnabled("duplicate_episode_filter"))
	assert.False(t, cfg.HasSourceType("spotify"))
}

func TestConfig_GetMessage(t *testing.T) {
	cfg, err := Parse([]byte(minimalConfig))
	require.NoError(t, err)

	tests := []struct {
		code     string
		expected string
	}{
		{"success", "OK"},
		{"empty_queue", "There is nothing to play"},
		{"index_out_of_range", "No such episode"},
		{"catalog_empty", "The catalog is empty"},
		{"control_disabled", "This control is not available now"},
		{"permission_denied", "Invalid control token"},
		{"unknown", "Something went wrong"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, cfg.GetMessage(tt.code))
		})
	}
}
