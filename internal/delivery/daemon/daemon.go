// Package daemon runs the queue processor as a long-lived loop.
package daemon

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"beacon/config"
	"beacon/internal/delivery"
	"beacon/internal/domain/lifecycle"
	"beacon/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the daemon, injected by Fx.
type Params struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	Processor usecase.ProcessorUsecase
}

// Daemon drains the queue until stopped.
type Daemon struct {
	processor        usecase.ProcessorUsecase
	logger           *slog.Logger
	idleInterval     time.Duration
	recoveryInterval time.Duration

	runCtx  context.Context
	cancel  context.CancelFunc
	started atomic.Bool
	done    chan struct{}
}

// NewDaemon registers the daemon's shutdown hook.
func NewDaemon(params Params) (delivery.Delivery, error) {
	d := New(params.Processor, params.Logger, params.Cfg.Queue)

	params.Lc.Append(fx.Hook{
		OnStop: d.Stop,
	})

	return d, nil
}

// New builds a daemon without lifecycle wiring, for the CLI and tests.
func New(processor usecase.ProcessorUsecase, logger *slog.Logger, cfg *config.QueueConfig) *Daemon {
	runCtx, cancel := context.WithCancel(context.Background())

	return &Daemon{
		processor:        processor,
		logger:           logger.With(slog.String("component", "daemon")),
		idleInterval:     cfg.IdleInterval,
		recoveryInterval: cfg.RecoveryInterval,
		runCtx:           runCtx,
		cancel:           cancel,
		done:             make(chan struct{}),
	}
}

// Serve loops until ctx is cancelled or Stop is called. A non-empty batch is
// followed immediately by the next one; an empty or failed batch sleeps first.
func (d *Daemon) Serve(ctx context.Context) error {
	if !d.started.CompareAndSwap(false, true) {
		return errors.New("daemon already started")
	}
	defer close(d.done)

	stopLink := context.AfterFunc(ctx, d.cancel)
	defer stopLink()

	ctx = d.runCtx
	d.logger.Info("Queue daemon started",
		slog.Duration("idle_interval", d.idleInterval),
		slog.Duration("recovery_interval", d.recoveryInterval),
	)

	var nextRecovery time.Time
	for ctx.Err() == nil {
		if !time.Now().Before(nextRecovery) {
			d.recoverStale(ctx)
			nextRecovery = time.Now().Add(d.recoveryInterval)
		}

		processed, err := d.processor.ProcessBatch(ctx)
		if err != nil && ctx.Err() == nil {
			d.logger.Error("Queue batch failed", slog.Any("error", err))
		}
		if err == nil && processed > 0 {
			continue
		}

		if !d.sleep(ctx, d.idleInterval) {
			break
		}
	}

	d.logger.Info("Queue daemon stopped")

	return nil
}

// Stop cancels the loop and waits for the current batch to finish.
func (d *Daemon) Stop(ctx context.Context) error {
	d.cancel()
	if !d.started.Load() {
		return nil
	}

	waitCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-d.done:
		return nil
	case <-waitCtx.Done():
		return errors.Wrap(waitCtx.Err(), "queue daemon did not stop in time")
	}
}

// sleep returns false when interrupted by shutdown.
func (d *Daemon) sleep(ctx context.Context, interval time.Duration) bool {
	timer := time.NewTimer(interval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func (d *Daemon) recoverStale(ctx context.Context) {
	requeued, failed, err := d.processor.RecoverStale(ctx)
	if err != nil {
		if ctx.Err() == nil {
			d.logger.Error("Stale recovery failed", slog.Any("error", err))
		}

		return
	}

	if requeued > 0 || failed > 0 {
		d.logger.Warn("Recovered stale entries",
			slog.Int64("requeued", requeued),
			slog.Int64("failed", failed),
		)
	}
}
