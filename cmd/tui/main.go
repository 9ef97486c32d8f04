// Package main provides the terminal player entry point.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/podcastr/internal/app/session"
	"github.com/osa030/podcastr/internal/app/source"
	"github.com/osa030/podcastr/internal/infra/config"
	"github.com/osa030/podcastr/internal/infra/logger"
	"github.com/osa030/podcastr/internal/infra/media"
	"github.com/osa030/podcastr/internal/infra/spotify"
	"github.com/osa030/podcastr/internal/ui/tui"
)

var (
	app        = kingpin.New("podcastr", "podcastr terminal player")
	configPath = app.Flag("config", "Path to config file").Default("config/server.yaml").String()
	verbose    = app.Flag("verbose", "Enable verbose (DEBUG) logging").Short('v').Bool()
	logfile    = app.Flag("logfile", "Path to log file").Default("logs/podcastr.log").String()
)

func main() {
	// Load .env file if it exists (errors are ignored)
	_ = godotenv.Load()

	kingpin.MustParse(app.Parse(os.Args[1:]))

	// The terminal belongs to the player, so logs always go to a file
	loggerConfig := logger.Config{
		Output: "file",
		Level:  "info",
		File:   *logfile,
	}
	if *verbose {
		loggerConfig.Level = "debug"
	}
	if err := logger.Init(loggerConfig); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	if err := run(); err != nil {
		zlog.Error().Msgf("Player error: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var spotifyClient source.SpotifyClient
	if cfg.HasSourceType("spotify") {
		client, err := spotify.New(ctx, spotify.Config{
			ClientID:     cfg.Spotify.ClientID,
			ClientSecret: cfg.Spotify.ClientSecret,
			RefreshToken: cfg.Spotify.RefreshToken,
			Market:       cfg.Spotify.Market,
		})
		if err != nil {
			return errors.Wrap(err, "failed to create Spotify client")
		}
		spotifyClient = client
	}

	element, err := media.New(media.Config{
		Backend:            cfg.Media.Backend,
		TimeUpdateInterval: cfg.Media.TimeUpdateIntervalMs,
		MPV: media.MPVConfig{
			Path:           cfg.Media.MPV.Path,
			Socket:         cfg.Media.MPV.Socket,
			ExtraArgs:      cfg.Media.MPV.ExtraArgs,
			StartTimeoutMs: cfg.Media.MPV.StartTimeoutMs,
		},
	})
	if err != nil {
		return errors.Wrap(err, "failed to create media element")
	}

	sessionMgr, err := session.NewManager(cfg, element, spotifyClient)
	if err != nil {
		_ = element.Close()
		return errors.Wrap(err, "failed to create session manager")
	}
	defer sessionMgr.Close()

	if err := sessionMgr.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start session")
	}

	zlog.Info().Msgf("Starting player: catalog=%s episodes=%d", sessionMgr.Catalog().Name, len(sessionMgr.Catalog().Episodes))
	return tui.Run(ctx, sessionMgr)
}
