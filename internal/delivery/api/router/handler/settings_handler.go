package handler

import (
	"net/http"

	"beacon/internal/delivery/api/response"
	"beacon/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type SettingsHandlerParams struct {
	fx.In

	SettingsUC usecase.SettingsUsecase
}

// SettingsHandler exposes the caller's notification switches
type SettingsHandler struct {
	settingsUC usecase.SettingsUsecase
}

func NewSettingsHandler(params SettingsHandlerParams) *SettingsHandler {
	return &SettingsHandler{settingsUC: params.SettingsUC}
}

func (h *SettingsHandler) GetSettings(c echo.Context) error {
	userID, ok, err := caller(c)
	if !ok {
		return err
	}

	settings, err := h.settingsUC.GetSettings(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, settings)
}

// UpdateSettings applies only the switches present in the body
func (h *SettingsHandler) UpdateSettings(c echo.Context) error {
	userID, ok, err := caller(c)
	if !ok {
		return err
	}

	var req usecase.SettingsUpdate
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid settings input", err)
	}

	settings, err := h.settingsUC.UpdateSettings(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, settings)
}
