package main

import (
	"context"
	"encoding/json"
	"io"

	"beacon/config"
	"beacon/internal/domain/lifecycle"
	"beacon/internal/infra/auth"
	logs "beacon/internal/infra/log"
	"beacon/internal/infra/metrics"
	"beacon/internal/infra/notification"
	"beacon/internal/infra/persistence/postgres"
	"beacon/internal/usecase/impl"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

// providers is the graph every command draws from. fx only builds what the
// command's dependency struct asks for, so `token` never touches the database.
func providers() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			postgres.NewQueueRepository,
			postgres.NewDeviceRepository,
			postgres.NewHistoryRepository,
			postgres.NewSettingsRepository,
			postgres.NewTransactionManager,
			notification.NewPushGateway,
			metrics.NewNoopMetrics,
			impl.NewGatewayLimiter,
			impl.NewProcessorService,
			impl.NewAdminService,
			auth.NewJWTService,
		),
	)
}

// run builds the graph for D, starts its lifecycle, runs op and stops the graph.
func run[D any](cmd *cobra.Command, op func(ctx context.Context, deps D) error) error {
	var deps D
	app := fx.New(
		fx.NopLogger,
		providers(),
		fx.Invoke(func(d D) { deps = d }),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build application")
	}

	ctx := cmd.Context()
	startCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "failed to start application")
	}

	opErr := op(ctx, deps)

	stopCtx, cancelStop := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
	defer cancelStop()
	if err := app.Stop(stopCtx); err != nil && opErr == nil {
		return errors.Wrap(err, "failed to stop application")
	}

	return opErr
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return errors.WithStack(enc.Encode(v))
}
