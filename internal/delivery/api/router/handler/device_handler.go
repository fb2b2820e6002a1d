package handler

import (
	"log/slog"
	"net/http"

	"beacon/internal/delivery/api/response"
	"beacon/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler serves the push token registry.
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// TokenRequest names a single push token. FCM tokens contain ':' so they
// travel in the body rather than the path.
type TokenRequest struct {
	Token string `json:"token" validate:"required,max=512"`
}

// RegisterDevice stores or reactivates the caller's push token.
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	userID, ok, err := caller(c)
	if !ok {
		return err
	}
	req, ok, err := decode[usecase.RegisterTokenRequest](c, "device")
	if !ok {
		return err
	}

	device, err := h.deviceUC.RegisterToken(c.Request().Context(), userID, req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, device)
}

func (h *DeviceHandler) ListDevices(c echo.Context) error {
	userID, ok, err := caller(c)
	if !ok {
		return err
	}

	devices, err := h.deviceUC.ListTokens(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, devices)
}

// UnregisterDevice deactivates one of the caller's tokens, e.g. on logout.
func (h *DeviceHandler) UnregisterDevice(c echo.Context) error {
	userID, ok, err := caller(c)
	if !ok {
		return err
	}
	req, ok, err := decode[TokenRequest](c, "token")
	if !ok {
		return err
	}

	if err := h.deviceUC.DeactivateUserToken(c.Request().Context(), userID, req.Token); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeactivateToken lets a backend producer retire a token for every owner.
func (h *DeviceHandler) DeactivateToken(c echo.Context) error {
	req, ok, err := decode[TokenRequest](c, "token")
	if !ok {
		return err
	}

	affected, err := h.deviceUC.DeactivateToken(c.Request().Context(), req.Token)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"deactivated": affected})
}
