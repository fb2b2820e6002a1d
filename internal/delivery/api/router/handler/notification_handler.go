package handler

import (
	"net/http"

	"beacon/internal/delivery/api/response"
	"beacon/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type NotificationHandlerParams struct {
	fx.In

	QueueUC usecase.QueueUsecase
}

// NotificationHandler is the producer API used by other backend services
type NotificationHandler struct {
	queueUC usecase.QueueUsecase
}

func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{queueUC: params.QueueUC}
}

// Enqueue stores a notification for the processor. A disabled category answers 422.
func (h *NotificationHandler) Enqueue(c echo.Context) error {
	req, ok, err := decode[usecase.EnqueueRequest](c, "notification")
	if !ok {
		return err
	}

	id, err := h.queueUC.Enqueue(c.Request().Context(), req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, map[string]string{"id": id.String()})
}

// Send delivers synchronously and returns per-token counts.
func (h *NotificationHandler) Send(c echo.Context) error {
	req, ok, err := decode[usecase.DirectRequest](c, "notification")
	if !ok {
		return err
	}

	report, err := h.queueUC.SendDirect(c.Request().Context(), req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report)
}
