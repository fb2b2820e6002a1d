// Package notification contains the push gateway implementations.
package notification

import (
	"context"

	"beacon/internal/domain/service"
	"beacon/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// Firebase limits a multicast to 500 tokens per request.
const maxMulticastTokens = 500

// multicastSender is the slice of *messaging.Client the gateway needs.
type multicastSender interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseGateway struct {
	client multicastSender
}

// NewFirebaseGateway creates a PushGateway backed by Firebase Cloud Messaging.
func NewFirebaseGateway(ctx context.Context, projectID, credentialsPath string) (service.PushGateway, error) {
	if credentialsPath == "" {
		return nil, errors.New("firebase credentials path is required")
	}

	var fbConfig *firebase.Config
	if projectID != "" {
		fbConfig = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return newFirebaseGateway(client), nil
}

func newFirebaseGateway(client multicastSender) *firebaseGateway {
	return &firebaseGateway{client: client}
}

// Send fans the payload out in chunks of at most 500 tokens. Results keep input order.
func (g *firebaseGateway) Send(ctx context.Context, payload service.PushPayload, tokens []string) ([]service.TokenResult, error) {
	results := make([]service.TokenResult, 0, len(tokens))

	for start := 0; start < len(tokens); start += maxMulticastTokens {
		chunk := tokens[start:min(start+maxMulticastTokens, len(tokens))]

		response, err := g.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
			Tokens: chunk,
			Notification: &messaging.Notification{
				Title: payload.Title,
				Body:  payload.Body,
			},
			Data: payload.Data,
		})
		if err != nil {
			// Tokens of earlier chunks already received the push; report them and
			// mark the rest as transient. A call-level error says nothing about
			// the individual tokens, so none of them may be deactivated for it.
			if start == 0 {
				return nil, errors.Wrap(err, "failed to send multicast notification")
			}
			code := callFailureCode(err)
			for _, token := range tokens[start:] {
				results = append(results, service.TokenResult{Token: token, ErrorCode: code})
			}

			return results, nil
		}

		for idx, token := range chunk {
			if idx >= len(response.Responses) {
				results = append(results, service.TokenResult{Token: token, ErrorCode: service.TokenErrorUnknown})

				continue
			}

			sendResponse := response.Responses[idx]
			if sendResponse.Success && sendResponse.Error == nil {
				results = append(results, service.TokenResult{Token: token, Success: true})

				continue
			}
			results = append(results, service.TokenResult{Token: token, ErrorCode: classifyTokenError(sendResponse.Error)})
		}
	}

	return results, nil
}

func callFailureCode(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return service.TokenErrorTimeout
	}

	return service.TokenErrorUnavailable
}

// classifyTokenError maps a Firebase error onto the gateway's error codes.
func classifyTokenError(err error) string {
	switch {
	case err == nil:
		return service.TokenErrorUnknown
	case messaging.IsUnregistered(err):
		return service.TokenErrorUnregistered
	case messaging.IsInvalidArgument(err):
		return service.TokenErrorInvalidArgument
	case messaging.IsSenderIDMismatch(err):
		return service.TokenErrorSenderIDMismatch
	case messaging.IsQuotaExceeded(err):
		return service.TokenErrorQuotaExceeded
	case messaging.IsUnavailable(err):
		return service.TokenErrorUnavailable
	case messaging.IsInternal(err):
		return service.TokenErrorInternal
	case messaging.IsThirdPartyAuthError(err):
		return service.TokenErrorThirdPartyAuth
	case errors.Is(err, context.DeadlineExceeded):
		return service.TokenErrorTimeout
	default:
		return service.TokenErrorUnknown
	}
}
