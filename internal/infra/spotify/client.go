// Package spotify provides a client for the Spotify API.
package spotify

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"
	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/osa030/podcastr/internal/domain/episode"
)

// Client is a Spotify API client.
type Client struct {
	client     *spotify.Client
	market     string
	maxRetries int
	retryDelay time.Duration
}

// Config represents Spotify client configuration.
type Config struct {
	ClientID     string
	ClientSecret string
	RefreshToken string // Optional; client credentials are used without it
	Market       string
}

// Show is a podcast show with its episodes.
type Show struct {
	ID        string
	Name      string
	Publisher string
	Episodes  []episode.Episode
}

// New creates a new Spotify client.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, errors.New("spotify credentials are required")
	}

	var httpClient *http.Client
	if cfg.RefreshToken != "" {
		auth := spotifyauth.New(
			spotifyauth.WithClientID(cfg.ClientID),
			spotifyauth.WithClientSecret(cfg.ClientSecret),
		)
		// Get HTTP client with auto-refresh capability
		httpClient = auth.Client(ctx, &oauth2.Token{RefreshToken: cfg.RefreshToken})
	} else {
		// Show and episode metadata is public; an app token is enough.
		cc := &clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     spotifyauth.TokenURL,
		}
		httpClient = cc.Client(ctx)
	}

	market := cfg.Market
	if market == "" {
		market = "US"
	}

	return &Client{
		client:     spotify.New(httpClient),
		market:     market,
		maxRetries: 3,
		retryDelay: time.Second,
	}, nil
}

// GetShow retrieves a show and up to limit of its most recent episodes.
// A non-positive limit fetches every episode.
func (c *Client) GetShow(ctx context.Context, showURL string, limit int) (*Show, error) {
	showID := extractShowID(showURL)
	if showID == "" {
		return nil, errors.New("invalid show URL")
	}

	var full *spotify.FullShow
	err := c.retry(func() error {
		s, err := c.client.GetShow(ctx, spotify.ID(showID), spotify.Market(c.market))
		if err != nil {
			return err
		}
		full = s
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get show %s", showID)
	}

	show := &Show{
		ID:        string(full.ID),
		Name:      full.Name,
		Publisher: full.Publisher,
	}

	offset := 0
	pageSize := 50 // Spotify API max per page
	for {
		if limit > 0 && len(show.Episodes) >= limit {
			break
		}

		var page *spotify.SimpleEpisodePage
		err := c.retry(func() error {
			p, err := c.client.GetShowEpisodes(ctx, showID,
				spotify.Limit(pageSize),
				spotify.Offset(offset),
				spotify.Market(c.market),
			)
			if err != nil {
				return err
			}
			page = p
			return nil
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to get show episodes")
		}

		for _, ep := range page.Episodes {
			show.Episodes = append(show.Episodes, convertEpisode(&full.SimpleShow, ep))
		}

		if len(page.Episodes) < pageSize {
			break
		}
		offset += pageSize
	}

	if limit > 0 && len(show.Episodes) > limit {
		show.Episodes = show.Episodes[:limit]
	}

	zlog.Debug().Msgf("spotify: fetched show: name=%s episodes=%d", show.Name, len(show.Episodes))
	return show, nil
}

// CheckShowExists checks if a show exists without fetching its episodes.
func (c *Client) CheckShowExists(ctx context.Context, showURL string) error {
	showID := extractShowID(showURL)
	if showID == "" {
		return errors.New("invalid show URL")
	}

	err := c.retry(func() error {
		_, err := c.client.GetShowEpisodes(ctx, showID,
			spotify.Limit(1),
			spotify.Offset(0),
			spotify.Market(c.market),
		)
		return err
	})
	if err != nil {
		return errors.Wrap(err, "show does not exist or is not accessible")
	}
	return nil
}

// GetShowURL returns the Spotify URL for a show.
func (c *Client) GetShowURL(showID string) string {
	return fmt.Sprintf("https://open.spotify.com/show/%s", showID)
}

// convertEpisode converts a Spotify episode to a domain Episode.
// Spotify only exposes a preview clip as a directly playable URL; episodes
// without one keep an empty URL and are dropped by the playable filter.
func convertEpisode(show *spotify.SimpleShow, ep spotify.EpisodePage) episode.Episode {
	var thumbnail string
	switch {
	case len(ep.Images) > 0:
		thumbnail = ep.Images[0].URL
	case len(show.Images) > 0:
		thumbnail = show.Images[0].URL
	}

	return episode.Episode{
		Title:     ep.Name,
		Members:   show.Publisher,
		Thumbnail: thumbnail,
		Duration:  int(ep.Duration_ms) / 1000,
		URL:       ep.AudioPreviewURL,
	}
}

// retry retries an operation with exponential backoff.
func (c *Client) retry(fn func() error) error {
	var lastErr error
	for i := 0; i < c.maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		if !isRetryable(err) {
			return err
		}

		if i < c.maxRetries-1 {
			time.Sleep(c.retryDelay * time.Duration(i+1))
		}
	}
	return errors.Wrap(lastErr, "max retries exceeded")
}

// isRetryable checks if an error is retryable.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	// Rate limit errors and server errors are retryable
	errStr := err.Error()
	return strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "429") ||
		strings.Contains(errStr, "500") ||
		strings.Contains(errStr, "502") ||
		strings.Contains(errStr, "503") ||
		strings.Contains(errStr, "504")
}

// extractShowID extracts the show ID from a Spotify show URL or URI.
func extractShowID(input string) string {
	input = strings.TrimSpace(input)
	// Handle Spotify URI format: spotify:show:SHOW_ID
	if strings.HasPrefix(input, "spotify:show:") {
		return strings.TrimPrefix(input, "spotify:show:")
	}

	// Handle URL format: https://open.spotify.com/show/SHOW_ID or https://open.spotify.com/intl-XX/show/SHOW_ID
	if strings.Contains(input, "open.spotify.com") && strings.Contains(input, "/show/") {
		parts := strings.Split(input, "/show/")
		if len(parts) >= 2 {
			// Remove query parameters and trailing slashes
			id := strings.Split(parts[len(parts)-1], "?")[0]
			id = strings.TrimRight(id, "/")
			return id
		}
	}

	// Assume it's already a show ID
	return input
}
