package main

import (
	"context"
	"log/slog"

	"beacon/config"
	"beacon/internal/delivery/daemon"
	"beacon/internal/infra/persistence/postgres"
	"beacon/internal/usecase"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type processorDeps struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Processor usecase.ProcessorUsecase
}

func batchCommand() *cobra.Command {
	var recoverFirst bool

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Process one batch of due entries and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, func(ctx context.Context, deps processorDeps) error {
				result := map[string]int64{}
				if recoverFirst {
					requeued, failed, err := deps.Processor.RecoverStale(ctx)
					if err != nil {
						return err
					}
					result["requeued"], result["stale_failed"] = requeued, failed
				}

				processed, err := deps.Processor.ProcessBatch(ctx)
				if err != nil {
					return err
				}
				result["processed"] = int64(processed)

				return printJSON(cmd.OutOrStdout(), result)
			})
		},
	}
	cmd.Flags().BoolVar(&recoverFirst, "recover", true, "return stale processing entries to pending first")

	return cmd
}

func daemonCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "daemon",
		Short: "Drain the queue until interrupted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, func(ctx context.Context, deps processorDeps) error {
				d := daemon.New(deps.Processor, deps.Logger, deps.Config.Queue)
				errCh := make(chan error, 1)
				go func() { errCh <- d.Serve(ctx) }()

				<-ctx.Done()
				if err := d.Stop(context.WithoutCancel(ctx)); err != nil {
					return err
				}

				return <-errCh
			})
		},
	}
}

func recoverCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "recover",
		Short: "Return stale processing entries to pending",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, func(ctx context.Context, deps processorDeps) error {
				requeued, failed, err := deps.Processor.RecoverStale(ctx)
				if err != nil {
					return err
				}

				return printJSON(cmd.OutOrStdout(), map[string]int64{"requeued": requeued, "failed": failed})
			})
		},
	}
}

type dbDeps struct {
	fx.In

	DB *gorm.DB
}

func migrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the notification tables",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, func(ctx context.Context, deps dbDeps) error {
				return postgres.Migrate(ctx, deps.DB)
			})
		},
	}
}
