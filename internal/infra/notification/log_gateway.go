package notification

import (
	"context"
	"log/slog"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/service"
)

// logGateway accepts every token and only logs the push. Used in development.
type logGateway struct {
	logger *slog.Logger
}

// NewLogGateway creates a PushGateway that never contacts a provider.
func NewLogGateway(logger *slog.Logger) service.PushGateway {
	return &logGateway{logger: logger}
}

func (g *logGateway) Send(ctx context.Context, payload service.PushPayload, tokens []string) ([]service.TokenResult, error) {
	results := make([]service.TokenResult, 0, len(tokens))
	for _, token := range tokens {
		g.logger.DebugContext(ctx, "[LogGateway] Push accepted",
			slog.String("token_prefix", entity.TokenPrefix(token)),
			slog.String("title", payload.Title),
		)
		results = append(results, service.TokenResult{Token: token, Success: true})
	}

	return results, nil
}
