package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"", zerolog.InfoLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"verbose", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.input))
		})
	}
}

func TestInit_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "podcastr.log")
	require.NoError(t, Init(Config{Output: "file", Level: "info", File: path}))
	t.Cleanup(func() { _ = Init(Config{Output: "discard"}) })

	zlog.Info().Msg("player: started")
	zlog.Debug().Msg("hidden")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"player: started"`)
	assert.NotContains(t, string(data), "hidden")
}

func TestInit_Invalid(t *testing.T) {
	assert.Error(t, Init(Config{Output: "file"}))
	assert.Error(t, Init(Config{Output: "syslog"}))
}

func TestShortCaller(t *testing.T) {
	assert.Equal(t, filepath.Join("player", "player.go")+":42", shortCaller(0, filepath.Join("internal", "app", "player", "player.go"), 42))
	assert.Equal(t, "main.go:7", shortCaller(0, "main.go", 7))
}
