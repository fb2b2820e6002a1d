package handler

import (
	"context"
	"net/http"

	"beacon/internal/delivery/api/response"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type HistoryHandlerParams struct {
	fx.In

	HistoryUC usecase.HistoryUsecase
}

// HistoryHandler serves the caller's delivery history and acknowledgements
type HistoryHandler struct {
	historyUC usecase.HistoryUsecase
}

func NewHistoryHandler(params HistoryHandlerParams) *HistoryHandler {
	return &HistoryHandler{historyUC: params.HistoryUC}
}

// ListHistory returns the caller's history newest first, paged by ?limit&offset
func (h *HistoryHandler) ListHistory(c echo.Context) error {
	userID, ok, err := caller(c)
	if !ok {
		return err
	}

	var limit, offset int
	if err := echo.QueryParamsBinder(c).
		Int("limit", &limit).
		Int("offset", &offset).
		BindError(); err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "limit and offset must be integers")
	}

	page, err := h.historyUC.ListHistory(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

func (h *HistoryHandler) MarkDelivered(c echo.Context) error {
	return h.acknowledge(c, h.historyUC.MarkDelivered)
}

func (h *HistoryHandler) MarkRead(c echo.Context) error {
	return h.acknowledge(c, h.historyUC.MarkRead)
}

func (h *HistoryHandler) acknowledge(c echo.Context, mark func(ctx context.Context, userID, historyID uuid.UUID) error) error {
	userID, ok, err := caller(c)
	if !ok {
		return err
	}

	historyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid notification ID")
	}

	if err := mark(c.Request().Context(), userID, historyID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
