package notification

import (
	"context"
	"log/slog"

	"beacon/config"
	"beacon/internal/domain/constants"
	"beacon/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// GatewayParams holds dependencies for PushGateway, injected by Fx
type GatewayParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPushGateway creates the PushGateway selected by gateway.provider.
func NewPushGateway(params GatewayParams) (service.PushGateway, error) {
	provider := constants.GatewayProviderFirebase
	if params.Config.Gateway != nil && params.Config.Gateway.Provider != "" {
		provider = params.Config.Gateway.Provider
	}

	switch provider {
	case constants.GatewayProviderLog:
		params.Logger.Warn("Using log push gateway, no notification will reach a device")

		return NewLogGateway(params.Logger), nil

	case constants.GatewayProviderFirebase:
		if params.Config.Firebase == nil {
			return nil, errors.New("firebase configuration is required for firebase gateway")
		}
		params.Logger.Info("Using Firebase push gateway",
			slog.String("project_id", params.Config.Firebase.ProjectID),
		)

		return NewFirebaseGateway(params.Ctx, params.Config.Firebase.ProjectID, params.Config.Firebase.CredentialsPath)

	default:
		return nil, errors.Errorf("unknown push gateway provider: %s", provider)
	}
}
