package service

import "context"

// Per-token error codes reported by push gateways.
const (
	TokenErrorUnregistered        = "unregistered"
	TokenErrorNotRegistered       = "not-registered"
	TokenErrorInvalidArgument     = "invalid-argument"
	TokenErrorInvalidRegistration = "invalid-registration"
	TokenErrorSenderIDMismatch    = "sender-id-mismatch"
	TokenErrorQuotaExceeded       = "quota-exceeded"
	TokenErrorUnavailable         = "unavailable"
	TokenErrorInternal            = "internal"
	TokenErrorThirdPartyAuth      = "third-party-auth-error"
	TokenErrorTimeout             = "timeout"
	TokenErrorUnknown             = "unknown"
)

// PushPayload is the message sent to every token of one user.
type PushPayload struct {
	Title string
	Body  string
	Data  map[string]string
}

// TokenResult is the gateway's verdict for one token.
type TokenResult struct {
	Token     string
	Success   bool
	ErrorCode string
}

// PushGateway delivers a payload to a set of device tokens.
type PushGateway interface {
	// Send returns one result per token in input order. A non-nil error means the
	// whole call failed and no per-token verdict is available.
	Send(ctx context.Context, payload PushPayload, tokens []string) ([]TokenResult, error)
}

// IsPermanentTokenError reports whether the token will never work again and
// should be deactivated. Everything else is treated as transient.
func IsPermanentTokenError(code string) bool {
	switch code {
	case TokenErrorUnregistered,
		TokenErrorNotRegistered,
		TokenErrorInvalidArgument,
		TokenErrorInvalidRegistration,
		TokenErrorSenderIDMismatch:
		return true
	default:
		return false
	}
}
