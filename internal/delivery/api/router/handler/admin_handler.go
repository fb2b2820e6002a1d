package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"beacon/internal/delivery/api/response"
	deliverycontext "beacon/internal/delivery/context"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// AdminHandler is the operator surface over the queue
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// PurgeRequest carries an optional Go duration such as "720h".
type PurgeRequest struct {
	OlderThan string `json:"older_than"`
}

// ListEntries supports ?status=failed&status=pending&user_id&category&before&limit&offset
func (h *AdminHandler) ListEntries(c echo.Context) error {
	var (
		query  usecase.EntryQuery
		userID string
		before time.Time
	)
	if err := echo.QueryParamsBinder(c).
		Strings("status", &query.Statuses).
		String("user_id", &userID).
		String("category", &query.Category).
		Time("before", &before, time.RFC3339).
		Int("limit", &query.Limit).
		Int("offset", &query.Offset).
		BindError(); err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "Invalid entry query")
	}

	if userID != "" {
		id, err := uuid.Parse(userID)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
		}
		query.UserID = &id
	}
	if !before.IsZero() {
		query.Before = &before
	}

	page, err := h.adminUC.ListEntries(c.Request().Context(), &query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

// GetEntry returns one entry and every delivery attempt recorded for it
func (h *AdminHandler) GetEntry(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid entry ID")
	}

	detail, err := h.adminUC.GetEntry(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, detail)
}

func (h *AdminHandler) RetryFailed(c echo.Context) error {
	return h.bulk(c, "retry", h.adminUC.RetryFailed)
}

func (h *AdminHandler) Cancel(c echo.Context) error {
	return h.bulk(c, "cancel", h.adminUC.Cancel)
}

func (h *AdminHandler) Stats(c echo.Context) error {
	counts, err := h.adminUC.Stats(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, counts)
}

func (h *AdminHandler) Purge(c echo.Context) error {
	var req PurgeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid purge input", err)
	}

	var olderThan time.Duration
	if req.OlderThan != "" {
		d, err := time.ParseDuration(req.OlderThan)
		if err != nil || d <= 0 {
			return response.BadRequest(c, "VALIDATION_ERROR", "older_than must be a positive duration")
		}
		olderThan = d
	}

	purged, err := h.adminUC.Purge(c.Request().Context(), olderThan)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"purged": purged})
}

func (h *AdminHandler) bulk(c echo.Context, action string, op func(ctx context.Context, query *usecase.EntryQuery) (int64, error)) error {
	var query usecase.EntryQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "Invalid entry filter", err)
	}

	ctx := c.Request().Context()
	affected, err := op(ctx, &query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("Admin bulk operation",
		slog.String("action", action),
		slog.Int64("affected", affected),
	)

	return response.Success(c, http.StatusOK, map[string]int64{"affected": affected})
}
