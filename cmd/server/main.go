// Package main provides the server entry point.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/alecthomas/kingpin/v2"
	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	apiconnect "github.com/osa030/podcastr/internal/api/connect"
	"github.com/osa030/podcastr/internal/app/filter"
	"github.com/osa030/podcastr/internal/app/session"
	"github.com/osa030/podcastr/internal/app/source"
	"github.com/osa030/podcastr/internal/gen/podcastr/v1/podcastrv1connect"
	"github.com/osa030/podcastr/internal/infra/config"
	"github.com/osa030/podcastr/internal/infra/logger"
	"github.com/osa030/podcastr/internal/infra/media"
	"github.com/osa030/podcastr/internal/infra/spotify"
)

var (
	app        = kingpin.New("podcastr-server", "podcastr player server")
	configPath = app.Flag("config", "Path to config file").Default("config/server.yaml").String()
	verbose    = app.Flag("verbose", "Enable verbose (DEBUG) logging").Short('v').Bool()
	logfile    = app.Flag("logfile", "Path to log file (default: stdout)").String()

	listFiltersCmd = app.Command("list-filters", "List available filters and exit")
)

func init() {
	app.Command("start", "Start the server (default)").Default()
}

func main() {
	// Load .env file if it exists (errors are ignored)
	_ = godotenv.Load()

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	if command == listFiltersCmd.FullCommand() {
		printFilters()
		return
	}

	loggerConfig := logger.Config{
		Output: "stdout",
		Level:  "info",
	}
	if *verbose {
		loggerConfig.Level = "debug"
	}
	if *logfile != "" {
		loggerConfig.Output = "file"
		loggerConfig.File = *logfile
	}
	if err := logger.Init(loggerConfig); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	zlog.Info().Msgf("Loading config from %s", *configPath)
	cfg, err := config.Load(*configPath)
	if err != nil {
		zlog.Fatal().Msgf("Failed to load config: %v", err)
	}

	// run returns instead of exiting so its defers execute
	if err := run(cfg); err != nil {
		zlog.Error().Msgf("Server error: %v", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx := context.Background()

	// Left as a nil interface when no source needs Spotify
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
		if err := validateShows(ctx, cfg, client); err != nil {
			return errors.Wrap(err, "show validation failed")
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
	if err := sessionMgr.Start(ctx); err != nil {
		sessionMgr.Close()
		return errors.Wrap(err, "failed to start session")
	}

	mux := http.NewServeMux()
	path, handler := podcastrv1connect.NewPlayerServiceHandler(
		apiconnect.NewPlayerService(sessionMgr, cfg),
		connect.WithInterceptors(apiconnect.NewControlAuthInterceptor(cfg)),
	)
	mux.Handle(path, handler)

	// h2c serves HTTP/2 without TLS, which server streams need
	server := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           h2c.NewHandler(mux, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrCh := make(chan error, 1)
	go func() {
		zlog.Info().Msgf("Starting server: addr=%s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrCh <- err
		}
	}()

	// Give the listener a moment before running hooks that may connect to it
	time.Sleep(100 * time.Millisecond)
	executeHooks(cfg.Server.Hooks.OnStarted, "on_started")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case <-sigCh:
		zlog.Info().Msg("Received shutdown signal...")
	case <-sessionMgr.Done():
		zlog.Info().Msg("Session ended, shutting down...")
	case err := <-serverErrCh:
		runErr = errors.Wrap(err, "server error")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Closing the session first ends the notification streams
	sessionMgr.Close()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zlog.Error().Msgf("Failed to shutdown server: %v", err)
	}
	zlog.Info().Msg("Server stopped")

	executeHooks(cfg.Server.Hooks.OnStopped, "on_stopped")
	return runErr
}

// printFilters prints available filters.
func printFilters() {
	fmt.Println("Available Filters:")
	registry := filter.GetRegistered()
	for _, name := range filter.RegisteredNames() {
		f := registry[name]()
		codes := strings.Join(f.ReturnCodes(), ", ")
		fmt.Printf("  %-30s - %s [codes: %s]\n", f.Name(), f.Description(), codes)
	}
}

// validateShows checks that the configured Spotify shows exist.
// It retries with backoff to ride out transient errors during startup.
func validateShows(ctx context.Context, cfg *config.Config, client *spotify.Client) error {
	maxRetries := 5
	baseDelay := 1 * time.Second

	validate := func(name, url string) error {
		zlog.Info().Msgf("Validating show: source=%s url=%s", name, url)

		var lastErr error
		for i := 0; i < maxRetries; i++ {
			if i > 0 {
				delay := baseDelay * time.Duration(1<<uint(i-1))
				zlog.Info().Msgf("Retrying show validation in %v...", delay)
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-time.After(delay):
				}
			}

			if err := client.CheckShowExists(ctx, url); err != nil {
				lastErr = err
				zlog.Warn().Msgf("Failed to validate show (attempt %d/%d): %v", i+1, maxRetries, err)
				continue
			}
			return nil
		}
		return errors.Wrapf(lastErr, "failed after %d attempts", maxRetries)
	}

	var errs []string
	for _, s := range cfg.Sources {
		if s.Type != "spotify" {
			continue
		}
		url, _ := s.Settings["show_url"].(string)
		if url == "" {
			// Rejected with a proper message when the provider is built
			continue
		}
		if err := validate(s.DisplayName, url); err != nil {
			errs = append(errs, fmt.Sprintf("%s (%s): %v", s.DisplayName, url, err))
		}
	}

	if len(errs) > 0 {
		return errors.Newf("show validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// executeHooks runs a list of shell commands.
func executeHooks(hooks []string, stage string) {
	if len(hooks) == 0 {
		return
	}

	zlog.Info().Msgf("Executing %s hooks (%d commands)", stage, len(hooks))

	for _, hook := range hooks {
		zlog.Info().Msgf("Executing hook: %s", hook)
		// sh -c allows redirection and pipes
		cmd := exec.Command("sh", "-c", hook)
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr

		if err := cmd.Run(); err != nil {
			zlog.Error().Err(err).Msgf("Failed to execute hook: %s", hook)
		}
	}
}
