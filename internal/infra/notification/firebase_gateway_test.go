package notification

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"beacon/internal/domain/service"
	"beacon/internal/errors"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	calls    [][]string
	failCall int
	callErr  error
	failing  map[string]error
}

func (f *fakeSender) SendEachForMulticast(_ context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	f.calls = append(f.calls, message.Tokens)
	if f.failCall > 0 && len(f.calls) == f.failCall {
		if f.callErr != nil {
			return nil, f.callErr
		}

		return nil, errors.New("connection reset")
	}

	response := &messaging.BatchResponse{}
	for _, token := range message.Tokens {
		if err, ok := f.failing[token]; ok {
			response.FailureCount++
			response.Responses = append(response.Responses, &messaging.SendResponse{Error: err})

			continue
		}
		response.SuccessCount++
		response.Responses = append(response.Responses, &messaging.SendResponse{Success: true, MessageID: "m-" + token})
	}

	return response, nil
}

func tokens(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("token-%04d", i)
	}

	return out
}

func TestFirebaseGateway_ChunksAndKeepsOrder(t *testing.T) {
	sender := &fakeSender{failing: map[string]error{"token-0501": errors.New("boom")}}
	gateway := newFirebaseGateway(sender)
	input := tokens(1200)

	results, err := gateway.Send(context.Background(), service.PushPayload{Title: "t", Body: "b"}, input)
	require.NoError(t, err)

	require.Len(t, sender.calls, 3)
	assert.Len(t, sender.calls[0], 500)
	assert.Len(t, sender.calls[1], 500)
	assert.Len(t, sender.calls[2], 200)

	require.Len(t, results, 1200)
	for i, result := range results {
		assert.Equal(t, input[i], result.Token)
	}
	assert.False(t, results[501].Success)
	assert.Equal(t, service.TokenErrorUnknown, results[501].ErrorCode)
	assert.True(t, results[500].Success)
}

func TestFirebaseGateway_CallFailure(t *testing.T) {
	gateway := newFirebaseGateway(&fakeSender{failCall: 1})

	_, err := gateway.Send(context.Background(), service.PushPayload{}, tokens(3))
	require.Error(t, err)

	// a failure after the first chunk keeps earlier verdicts
	gateway = newFirebaseGateway(&fakeSender{failCall: 2})
	results, err := gateway.Send(context.Background(), service.PushPayload{}, tokens(600))
	require.NoError(t, err)
	require.Len(t, results, 600)
	assert.True(t, results[499].Success)
	assert.False(t, results[500].Success)
	for _, result := range results[500:] {
		assert.Equal(t, service.TokenErrorUnavailable, result.ErrorCode)
		assert.False(t, service.IsPermanentTokenError(result.ErrorCode))
	}
}

func TestFirebaseGateway_LaterChunkFailureIsTransient(t *testing.T) {
	gateway := newFirebaseGateway(&fakeSender{failCall: 2, callErr: errors.Wrap(context.DeadlineExceeded, "send chunk")})

	results, err := gateway.Send(context.Background(), service.PushPayload{}, tokens(700))
	require.NoError(t, err)
	require.Len(t, results, 700)
	for _, result := range results[500:] {
		assert.Equal(t, service.TokenErrorTimeout, result.ErrorCode)
	}

	assert.Equal(t, service.TokenErrorUnavailable, callFailureCode(errors.New("request entity too large")))
}

func TestClassifyTokenError(t *testing.T) {
	assert.Equal(t, service.TokenErrorTimeout, classifyTokenError(errors.Wrap(context.DeadlineExceeded, "send")))
	assert.Equal(t, service.TokenErrorUnknown, classifyTokenError(errors.New("other")))
	assert.False(t, service.IsPermanentTokenError(classifyTokenError(errors.New("other"))))
}

func TestLogGateway_AcceptsEverything(t *testing.T) {
	gateway := NewLogGateway(slog.New(slog.NewTextHandler(io.Discard, nil)))

	results, err := gateway.Send(context.Background(), service.PushPayload{Title: "t"}, []string{"a", "b"})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.True(t, results[0].Success && results[1].Success)
}
