package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"beacon/config"
	deliverycontext "beacon/internal/delivery/context"
	"beacon/internal/domain/constants"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/service"
	"beacon/internal/infra/pubsub"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PushHandler turns Pub/Sub push deliveries of social events into notifications.
// Pub/Sub delivers at least once, so message IDs seen within dedup.ttl are acknowledged
// without being handled again.
type PushHandler struct {
	verifyPushAuth bool
	verifyToken    func(req *http.Request) error
	logger         *slog.Logger
	socialUC       usecase.SocialUsecase
	seen           *cache.Cache
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	SocialUC usecase.SocialUsecase
}

func NewPushHandler(params PushHandlerParams) *PushHandler {
	cfg := params.Config
	ttl := cfg.Dedup.TTL

	return &PushHandler{
		verifyPushAuth: cfg.PubSub != nil && cfg.PubSub.Provider == constants.PubSubProviderGoogle &&
			cfg.Env.Env != constants.EnvDevelop,
		verifyToken: verifyPubSubToken,
		logger:      params.Logger.With(slog.String("component", "push")),
		socialUC:    params.SocialUC,
		seen:        cache.New(ttl, 2*ttl),
	}
}

// HandlePush acknowledges (200) handled, duplicate and poison messages, rejects
// undecodable ones (400) and asks for redelivery (503) on infrastructure failures.
func (h *PushHandler) HandlePush(c echo.Context) error {
	if h.verifyPushAuth {
		if err := h.verifyToken(c.Request()); err != nil {
			h.logger.Warn("Rejecting unauthenticated push", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	msg, event, err := decodePush(c)
	if err != nil {
		h.logger.Warn("Rejecting undecodable push", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	ctx, logger := h.scope(c.Request().Context(), msg, event)

	// Add fails when the key exists, so two concurrent redeliveries cannot both run.
	key := msg.Message.MessageID
	if key != "" && h.seen.Add(key, time.Now(), cache.DefaultExpiration) != nil {
		logger.Info("Duplicate push acknowledged")

		return c.NoContent(http.StatusOK)
	}

	outcome, err := h.socialUC.HandleEvent(ctx, event)
	switch {
	case err == nil:
		logger.Info("Social event handled",
			slog.String("type", event.Type),
			slog.Int("enqueued", outcome.Enqueued),
			slog.Int("delivered", outcome.Delivered),
			slog.Int("skipped", outcome.Skipped),
		)

		return c.NoContent(http.StatusOK)

	case redeliver(err):
		if key != "" {
			h.seen.Delete(key)
		}
		logger.Error("Social event failed, awaiting redelivery", slog.String("type", event.Type), slog.Any("error", err))

		return c.NoContent(http.StatusServiceUnavailable)

	default:
		logger.Warn("Dropping social event that cannot succeed", slog.String("type", event.Type), slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	}
}

func decodePush(c echo.Context) (*pubsub.PubSubPushMessage, *service.SocialEvent, error) {
	var msg pubsub.PubSubPushMessage
	if err := c.Bind(&msg); err != nil {
		return nil, nil, errors.Wrap(err, "bind push envelope")
	}

	data, err := base64.StdEncoding.DecodeString(msg.Message.Data)
	if err != nil {
		return nil, nil, errors.Wrap(err, "decode message data")
	}

	var event service.SocialEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, nil, errors.Wrap(err, "unmarshal social event")
	}

	return &msg, &event, nil
}

// scope attaches the producer's request ID to ctx so enqueue and delivery logs
// can be joined with the API request that published the event.
func (h *PushHandler) scope(ctx context.Context, msg *pubsub.PubSubPushMessage, event *service.SocialEvent) (context.Context, *slog.Logger) {
	requestID := msg.Message.Attributes["request_id"]
	if requestID == "" {
		requestID = event.RequestID
	}
	if requestID == "" {
		requestID = deliverycontext.GetRequestIDFromContext(ctx)
	}
	if requestID == "" {
		requestID = uuid.New().String()
	}

	logger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("message_id", msg.Message.MessageID),
		slog.String("event_id", event.EventID),
	)
	ctx = deliverycontext.WithRequestID(ctx, requestID)

	return deliverycontext.WithLogger(ctx, logger), logger
}

// redeliver reports whether Pub/Sub should retry. A domain error below 500
// means the event itself is invalid and would fail the same way again.
func redeliver(err error) bool {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode() >= http.StatusInternalServerError
	}

	return true
}

// verifyPubSubToken checks the Google-signed OIDC token of an authenticated
// push subscription. The audience is the push endpoint URL.
func verifyPubSubToken(req *http.Request) error {
	token, ok := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !ok || token == "" {
		return errors.New("missing bearer token")
	}

	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}

	payload, err := idtoken.Validate(req.Context(), token, scheme+"://"+req.Host+req.URL.Path)
	if err != nil {
		return errors.Wrap(err, "validate push token")
	}

	switch payload.Issuer {
	case "accounts.google.com", "https://accounts.google.com":
	default:
		return errors.Errorf("unexpected issuer %q", payload.Issuer)
	}

	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return errors.New("push service account email not verified")
	}

	return nil
}
