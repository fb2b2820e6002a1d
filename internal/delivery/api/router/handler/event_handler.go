package handler

import (
	"log/slog"
	"net/http"

	"beacon/internal/delivery/api/response"
	deliverycontext "beacon/internal/delivery/context"
	"beacon/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type EventHandlerParams struct {
	fx.In

	SocialUC usecase.SocialUsecase
	Logger   *slog.Logger
}

// EventHandler accepts social events from authenticated users
type EventHandler struct {
	socialUC usecase.SocialUsecase
	logger   *slog.Logger
}

func NewEventHandler(params EventHandlerParams) *EventHandler {
	return &EventHandler{
		socialUC: params.SocialUC,
		logger:   params.Logger,
	}
}

// PublishEvent records the caller as the actor and hands the event to the worker.
func (h *EventHandler) PublishEvent(c echo.Context) error {
	userID, ok, err := caller(c)
	if !ok {
		return err
	}
	req, ok, err := decode[usecase.PublishEventRequest](c, "event")
	if !ok {
		return err
	}

	ctx := c.Request().Context()
	event, err := h.socialUC.PublishEvent(ctx, userID.String(), req)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Publish social event failed",
			slog.String("type", req.Type),
			slog.Any("error", err),
		)

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, map[string]string{"event_id": event.EventID})
}
