// Package connect provides Connect RPC service implementations.
package connect

import (
	"context"
	"math"
	"sync"

	"connectrpc.com/connect"
	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/podcastr/internal/app/playback"
	"github.com/osa030/podcastr/internal/app/player"
	"github.com/osa030/podcastr/internal/app/session"
	podcastrv1 "github.com/osa030/podcastr/internal/gen/podcastr/v1"
	"github.com/osa030/podcastr/internal/gen/podcastr/v1/podcastrv1connect"
	"github.com/osa030/podcastr/internal/infra/config"
)

// ErrControlDisabled is returned when a toggle is not available for the
// current queue.
var ErrControlDisabled = errors.New("control is disabled")

// PlayerService implements the PlayerService RPC.
type PlayerService struct {
	session *session.Manager
	config  *config.Config
}

// NewPlayerService creates a new PlayerService.
func NewPlayerService(session *session.Manager, cfg *config.Config) *PlayerService {
	return &PlayerService{
		session: session,
		config:  cfg,
	}
}

// Ensure PlayerService implements the interface.
var _ podcastrv1connect.PlayerServiceHandler = (*PlayerService)(nil)

// GetStatus returns the session and player status.
func (s *PlayerService) GetStatus(
	ctx context.Context,
	req *connect.Request[podcastrv1.GetStatusRequest],
) (*connect.Response[podcastrv1.GetStatusResponse], error) {
	status := s.session.GetStatus()
	return connect.NewResponse(&podcastrv1.GetStatusResponse{
		SessionId:       status.SessionID,
		CatalogName:     status.CatalogName,
		CatalogSize:     int32(status.CatalogSize),
		SubscriberCount: int32(status.SubscriberCount),
		State:           status.State,
	}), nil
}

// ListEpisodes returns the catalog.
func (s *PlayerService) ListEpisodes(
	ctx context.Context,
	req *connect.Request[podcastrv1.ListEpisodesRequest],
) (*connect.Response[podcastrv1.ListEpisodesResponse], error) {
	catalog := s.session.Catalog()
	return connect.NewResponse(&podcastrv1.ListEpisodesResponse{
		CatalogName: catalog.Name,
		Source:      catalog.Source,
		Episodes:    session.ToEpisodes(catalog.Episodes),
	}), nil
}

// PlayEpisode plays a single catalog episode.
func (s *PlayerService) PlayEpisode(
	ctx context.Context,
	req *connect.Request[podcastrv1.PlayEpisodeRequest],
) (*connect.Response[podcastrv1.ControlResponse], error) {
	return s.control("play_episode", func() error {
		return s.session.PlayEpisode(int(req.Msg.Index))
	})
}

// PlayCatalog queues the catalog and starts at the requested index.
func (s *PlayerService) PlayCatalog(
	ctx context.Context,
	req *connect.Request[podcastrv1.PlayCatalogRequest],
) (*connect.Response[podcastrv1.ControlResponse], error) {
	return s.control("play_catalog", func() error {
		return s.session.PlayCatalog(int(req.Msg.Index))
	})
}

// Next selects the next episode.
func (s *PlayerService) Next(
	ctx context.Context,
	req *connect.Request[podcastrv1.ControlRequest],
) (*connect.Response[podcastrv1.ControlResponse], error) {
	return s.control("next", s.requireQueue(s.session.Store().PlayNext))
}

// Previous selects the previous episode.
func (s *PlayerService) Previous(
	ctx context.Context,
	req *connect.Request[podcastrv1.ControlRequest],
) (*connect.Response[podcastrv1.ControlResponse], error) {
	return s.control("previous", s.requireQueue(s.session.Store().PlayPrevious))
}

// TogglePlay flips play/pause.
func (s *PlayerService) TogglePlay(
	ctx context.Context,
	req *connect.Request[podcastrv1.ControlRequest],
) (*connect.Response[podcastrv1.ControlResponse], error) {
	return s.control("toggle_play", s.requireQueue(s.session.Store().TogglePlay))
}

// ToggleLoop flips looping of the current episode.
func (s *PlayerService) ToggleLoop(
	ctx context.Context,
	req *connect.Request[podcastrv1.ControlRequest],
) (*connect.Response[podcastrv1.ControlResponse], error) {
	return s.control("toggle_loop", s.requireEnabled(
		func(c player.Controls) player.Control { return c.Loop },
		s.session.Store().ToggleLoop,
	))
}

// ToggleShuffle flips shuffle mode.
func (s *PlayerService) ToggleShuffle(
	ctx context.Context,
	req *connect.Request[podcastrv1.ControlRequest],
) (*connect.Response[podcastrv1.ControlResponse], error) {
	return s.control("toggle_shuffle", s.requireEnabled(
		func(c player.Controls) player.Control { return c.Shuffle },
		s.session.Store().ToggleShuffle,
	))
}

// Seek moves playback of the current episode.
func (s *PlayerService) Seek(
	ctx context.Context,
	req *connect.Request[podcastrv1.SeekRequest],
) (*connect.Response[podcastrv1.ControlResponse], error) {
	if math.IsNaN(req.Msg.Seconds) || math.IsInf(req.Msg.Seconds, 0) {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New(s.config.GetMessage("invalid_argument")))
	}
	return s.control("seek", func() error {
		return s.session.Player().Seek(req.Msg.Seconds)
	})
}

// Subscribe streams the initial state and then every change until the
// client disconnects or the session ends.
func (s *PlayerService) Subscribe(
	ctx context.Context,
	req *connect.Request[podcastrv1.SubscribeRequest],
	stream *connect.ServerStream[podcastrv1.Notification],
) error {
	notifManager := s.session.GetNotificationManager()
	adapter := &notificationStreamAdapter{stream: stream}

	// Registered before the initial state is captured so no change is lost.
	// Notifications stamped before it carry older state and are dropped.
	adapter.mu.Lock()
	subscriptionID := notifManager.Subscribe(adapter)
	initial := &podcastrv1.Notification{
		Type:       podcastrv1.NotificationType_NOTIFICATION_TYPE_INITIAL_STATE,
		SequenceNo: notifManager.NextSequenceNo(),
		SessionId:  s.session.SessionID(),
		State:      s.session.PlayerState(),
	}
	adapter.floor = initial.SequenceNo
	err := adapter.stream.Send(initial)
	adapter.mu.Unlock()
	if err != nil {
		notifManager.Unsubscribe(subscriptionID)
		return err
	}
	zlog.Debug().Msgf("subscriber joined: subscription_id=%s", subscriptionID)

	select {
	case <-ctx.Done():
	case <-s.session.Done():
	}

	notifManager.Unsubscribe(subscriptionID)
	zlog.Debug().Msgf("subscriber left: subscription_id=%s", subscriptionID)
	return nil
}

// requireQueue wraps a store operation that is meaningless without a selection.
func (s *PlayerService) requireQueue(op func()) func() error {
	return func() error {
		if s.session.Store().Snapshot().IsEmpty() {
			return playback.ErrEmptyQueue
		}
		op()
		return nil
	}
}

// requireEnabled wraps a toggle that follows the enablement of its control
// in the rendered view.
func (s *PlayerService) requireEnabled(control func(player.Controls) player.Control, op func()) func() error {
	return func() error {
		if !control(s.session.Player().View().Controls).Enabled {
			return ErrControlDisabled
		}
		op()
		return nil
	}
}

// control runs op and answers with the resulting state or a mapped error.
func (s *PlayerService) control(name string, op func() error) (*connect.Response[podcastrv1.ControlResponse], error) {
	if err := op(); err != nil {
		zlog.Info().Msgf("control rejected: op=%s err=%v", name, err)
		return nil, s.toConnectError(err)
	}
	zlog.Info().Msgf("control: op=%s", name)
	return connect.NewResponse(&podcastrv1.ControlResponse{
		Message: s.config.GetMessage("success"),
		State:   s.session.PlayerState(),
	}), nil
}

// toConnectError maps domain errors to Connect codes with configured messages.
func (s *PlayerService) toConnectError(err error) *connect.Error {
	var (
		code    connect.Code
		message string
	)
	switch {
	case errors.Is(err, playback.ErrIndexOutOfRange):
		code, message = connect.CodeInvalidArgument, s.config.GetMessage("index_out_of_range")
	case errors.Is(err, playback.ErrEmptyQueue):
		code, message = connect.CodeFailedPrecondition, s.config.GetMessage("empty_queue")
	case errors.Is(err, player.ErrNoEpisode):
		code, message = connect.CodeFailedPrecondition, s.config.GetMessage("no_episode")
	case errors.Is(err, ErrControlDisabled):
		code, message = connect.CodeFailedPrecondition, s.config.GetMessage("control_disabled")
	case errors.Is(err, session.ErrCatalogEmpty):
		code, message = connect.CodeFailedPrecondition, s.config.GetMessage("catalog_empty")
	default:
		zlog.Error().Msgf("control failed: %v", err)
		code, message = connect.CodeInternal, s.config.GetMessage("default_error")
	}
	return connect.NewError(code, errors.New(message))
}

// notificationSender is satisfied by *connect.ServerStream[podcastrv1.Notification].
type notificationSender interface {
	Send(*podcastrv1.Notification) error
}

// notificationStreamAdapter adapts connect.ServerStream to notification.Stream.
// ServerStream is not safe for concurrent sends.
type notificationStreamAdapter struct {
	mu     sync.Mutex
	stream notificationSender
	floor  uint64 // sequence number of the initial state
}

func (a *notificationStreamAdapter) Send(notification *podcastrv1.Notification) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if notification.SequenceNo < a.floor {
		return nil
	}
	return a.stream.Send(notification)
}
