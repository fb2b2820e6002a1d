// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"beacon/config"
	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// NewGatewayLimiter bounds gateway calls per second across the whole process.
func NewGatewayLimiter(cfg *config.Config) *rate.Limiter {
	return rate.NewLimiter(rate.Limit(cfg.Queue.RateLimit), cfg.Queue.RateBurst)
}

// fanOut is the classified result of one gateway call.
type fanOut struct {
	report   *entity.DeliveryReport
	accepted []string
}

// deliverer runs the token lookup and gateway call shared by the processor and send-now.
type deliverer struct {
	deviceRepo repository.DeviceRepository
	gateway    service.PushGateway
	metrics    service.ProcessorMetrics
	timeout    time.Duration
	logger     *slog.Logger
}

func (d *deliverer) activeTokens(ctx context.Context, userID uuid.UUID) ([]string, error) {
	devices, err := d.deviceRepo.FindActiveByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load active tokens")
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		if !slices.Contains(tokens, device.Token) {
			tokens = append(tokens, device.Token)
		}
	}

	return tokens, nil
}

// send calls the gateway under its own timeout and classifies every token.
// A failed call is reported as every token failing; nothing is deactivated then.
func (d *deliverer) send(ctx context.Context, payload entity.Payload, tokens []string) *fanOut {
	callCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	start := time.Now()
	results, err := d.gateway.Send(callCtx, service.PushPayload{
		Title: payload.Title,
		Body:  payload.Body,
		Data:  payload.FlatData(),
	}, tokens)
	d.metrics.GatewayCall(time.Since(start), err)

	if err != nil {
		d.logger.WarnContext(ctx, "Push gateway call failed",
			slog.Int("token_count", len(tokens)),
			slog.Any("error", err),
		)
		d.metrics.TokenOutcomes(0, len(tokens), 0)

		return &fanOut{report: &entity.DeliveryReport{
			FailureCount: len(tokens),
			ErrorMessage: "gateway error: " + err.Error(),
		}}
	}

	out := &fanOut{report: &entity.DeliveryReport{}}
	var failureCodes []string
	for _, result := range results {
		if result.Success {
			out.report.SuccessCount++
			out.accepted = append(out.accepted, result.Token)

			continue
		}

		out.report.FailureCount++
		if !slices.Contains(failureCodes, result.ErrorCode) {
			failureCodes = append(failureCodes, result.ErrorCode)
		}
		if service.IsPermanentTokenError(result.ErrorCode) {
			out.report.DeactivatedTokens = append(out.report.DeactivatedTokens, result.Token)
		}
	}

	// Tokens the gateway did not report on count as failed.
	if missing := len(tokens) - len(results); missing > 0 {
		out.report.FailureCount += missing
		if !slices.Contains(failureCodes, service.TokenErrorUnknown) {
			failureCodes = append(failureCodes, service.TokenErrorUnknown)
		}
	}

	if out.report.SuccessCount == 0 {
		slices.Sort(failureCodes)
		out.report.ErrorMessage = entity.ReasonAllTokensFailed
		if len(failureCodes) > 0 {
			out.report.ErrorMessage += ": " + strings.Join(failureCodes, ", ")
		}
	}

	d.metrics.TokenOutcomes(out.report.SuccessCount, out.report.FailureCount, len(out.report.DeactivatedTokens))

	return out
}

// applyTokenOutcomes deactivates permanently failed tokens and stamps accepted ones.
func (d *deliverer) applyTokenOutcomes(ctx context.Context, deviceRepo repository.DeviceRepository, userID uuid.UUID, out *fanOut, now time.Time) error {
	for _, token := range out.report.DeactivatedTokens {
		if _, err := deviceRepo.DeactivateUserToken(ctx, userID, token); err != nil {
			return errors.Wrap(err, "failed to deactivate token")
		}
		d.logger.InfoContext(ctx, "Device token deactivated",
			slog.String("user_id", userID.String()),
			slog.String("token_prefix", entity.TokenPrefix(token)),
		)
	}

	if err := deviceRepo.TouchTokens(ctx, userID, out.accepted, now); err != nil {
		return errors.Wrap(err, "failed to stamp accepted tokens")
	}

	return nil
}

// newHistory builds the audit row for one gateway attempt.
func newHistory(userID uuid.UUID, entryID *uuid.UUID, attempt int, payload entity.Payload, report *entity.DeliveryReport, now time.Time) *entity.NotificationHistory {
	history := &entity.NotificationHistory{
		ID:           uuid.New(),
		UserID:       userID,
		QueueEntryID: entryID,
		Category:     payload.Category,
		Title:        payload.Title,
		Body:         payload.Body,
		Data:         payload.Data,
		Attempt:      attempt,
		IsSent:       report.Succeeded(),
		SuccessCount: report.SuccessCount,
		FailureCount: report.FailureCount,
		ErrorMessage: report.ErrorMessage,
		CreatedAt:    now,
	}
	if history.IsSent {
		history.SentAt = &now
	}

	return history
}

// loadSettings falls back to the all-enabled defaults for users without a row.
func loadSettings(ctx context.Context, repo repository.SettingsRepository, userID uuid.UUID) (*entity.NotificationSettings, error) {
	settings, err := repo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return entity.DefaultNotificationSettings(userID), nil
		}

		return nil, errors.Wrap(err, "failed to load notification settings")
	}

	return settings, nil
}
