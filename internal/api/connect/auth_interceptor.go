package connect

import (
	"context"
	"crypto/subtle"
	"strings"

	"connectrpc.com/connect"
	"github.com/cockroachdb/errors"

	"github.com/osa030/podcastr/internal/gen/podcastr/v1/podcastrv1connect"
	"github.com/osa030/podcastr/internal/infra/config"
)

// ControlTokenHeader carries the control token on mutating procedures.
const ControlTokenHeader = "X-Control-Token"

// IsMutating reports whether a procedure changes player state.
func IsMutating(procedure string) bool {
	switch procedure {
	case podcastrv1connect.PlayerServiceGetStatusProcedure,
		podcastrv1connect.PlayerServiceListEpisodesProcedure,
		podcastrv1connect.PlayerServiceSubscribeProcedure:
		return false
	default:
		return strings.HasPrefix(procedure, "/"+podcastrv1connect.PlayerServiceName+"/")
	}
}

// NewControlAuthInterceptor creates an interceptor that validates the control
// token on mutating PlayerService procedures. Without server.token every
// request passes.
func NewControlAuthInterceptor(cfg *config.Config) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if cfg.Server.Token == "" || !IsMutating(req.Spec().Procedure) {
				return next(ctx, req)
			}

			token := req.Header().Get(ControlTokenHeader)
			if token == "" {
				return nil, connect.NewError(connect.CodeUnauthenticated, errors.New(cfg.GetMessage("permission_denied")))
			}
			if subtle.ConstantTimeCompare([]byte(token), []byte(cfg.Server.Token)) != 1 {
				return nil, connect.NewError(connect.CodePermissionDenied, errors.New(cfg.GetMessage("permission_denied")))
			}

			return next(ctx, req)
		}
	}
}

// WithControlToken sets the control token header on every unary call.
func WithControlToken(token string) connect.ClientOption {
	return connect.WithInterceptors(connect.UnaryInterceptorFunc(func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if token != "" && req.Spec().IsClient {
				req.Header().Set(ControlTokenHeader, token)
			}
			return next(ctx, req)
		}
	}))
}
