package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkarpenko/card-vault/internal/adapter"
	"github.com/vkarpenko/card-vault/internal/logger"
	"github.com/vkarpenko/card-vault/models"
)

func ownerCards() []models.Card {
	return []models.Card{
		{ReferenceID: "ref-aaaa", SensitiveValue: "4111-1111-1111-1111", OwnerID: 1},
		{ReferenceID: "ref-bbbb", SensitiveValue: "5105-1051-0510-5100", OwnerID: 1},
	}
}

func TestRelay_SubstitutionRoundTrip(t *testing.T) {
	vault := &mockVault{
		resolveFn: func(_ context.Context, ownerID int64) []models.Card {
			assert.Equal(t, int64(1), ownerID)
			return ownerCards()
		},
	}

	var sentBody string
	echo := &mockThirdParty{
		sendFn: func(_ context.Context, call models.UpstreamCall) (string, error) {
			sentBody = call.Body
			return call.Body, nil
		},
	}

	svc := NewRelayService(vault, echo, logger.Nop())

	args := `{"card":"ref-aaaa","backup":"ref-bbbb"}`
	resp, err := svc.Relay(context.Background(), models.RelayRequest{
		URL:     "https://payments.example/charge",
		Method:  "POST",
		OwnerID: 1,
		Args:    args,
	})
	require.NoError(t, err)

	// outbound pass: the third party sees real values, no reference ids
	assert.Contains(t, sentBody, "4111-1111-1111-1111")
	assert.Contains(t, sentBody, "5105-1051-0510-5100")
	assert.NotContains(t, sentBody, "ref-aaaa")
	assert.NotContains(t, sentBody, "ref-bbbb")

	// inbound pass through an echo upstream is the exact inverse
	assert.Equal(t, args, resp.Result)
	assert.NotContains(t, resp.Result, "4111-1111-1111-1111")
}

func TestRelay_ResponseRetokenized(t *testing.T) {
	vault := &mockVault{
		resolveFn: func(_ context.Context, _ int64) []models.Card { return ownerCards() },
	}
	upstream := &mockThirdParty{
		sendFn: func(_ context.Context, _ models.UpstreamCall) (string, error) {
			// upstream volunteers a sensitive value the request never carried
			return `{"status":"ok","card":"4111-1111-1111-1111"}`, nil
		},
	}

	svc := NewRelayService(vault, upstream, logger.Nop())

	resp, err := svc.Relay(context.Background(), models.RelayRequest{
		URL: "https://payments.example/charge", Method: "POST", OwnerID: 1, Args: "{}",
	})
	require.NoError(t, err)
	assert.Equal(t, `{"status":"ok","card":"ref-aaaa"}`, resp.Result)
}

func TestRelay_UpstreamFailureLeaksNothing(t *testing.T) {
	vault := &mockVault{
		resolveFn: func(_ context.Context, _ int64) []models.Card { return ownerCards() },
	}
	failing := &mockThirdParty{
		sendFn: func(_ context.Context, _ models.UpstreamCall) (string, error) {
			return "", &adapter.UpstreamError{Status: 503, Message: "Service Unavailable"}
		},
	}

	svc := NewRelayService(vault, failing, logger.Nop())

	resp, err := svc.Relay(context.Background(), models.RelayRequest{
		URL: "https://payments.example/charge", Method: "POST", OwnerID: 1, Args: "ref-aaaa",
	})

	var upstreamErr *adapter.UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, 503, upstreamErr.Status)
	assert.Empty(t, resp.Result, "no body may be returned on the error path")
	assert.NotContains(t, upstreamErr.Error(), "4111", "upstream errors must not carry sensitive values")
}

func TestRelay_InvalidRequest(t *testing.T) {
	client := &mockThirdParty{
		sendFn: func(_ context.Context, _ models.UpstreamCall) (string, error) {
			return "", nil
		},
	}
	svc := NewRelayService(&mockVault{}, client, logger.Nop())

	tests := []models.RelayRequest{
		{Method: "POST", OwnerID: 1},                                         // no url
		{URL: "https://payments.example", OwnerID: 1},                        // no method
		{URL: "https://payments.example", Method: "POST"},                    // no owner
		{URL: "https://payments.example", Method: "POST", OwnerID: -2},       // bad owner
	}

	for _, req := range tests {
		_, err := svc.Relay(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	}

	assert.Zero(t, client.calls, "the third party must not be contacted for invalid requests")
}

func TestRelay_UnknownOwnerPassesThrough(t *testing.T) {
	vault := &mockVault{
		resolveFn: func(_ context.Context, _ int64) []models.Card { return []models.Card{} },
	}
	echo := &mockThirdParty{
		sendFn: func(_ context.Context, call models.UpstreamCall) (string, error) {
			return call.Body, nil
		},
	}

	svc := NewRelayService(vault, echo, logger.Nop())

	resp, err := svc.Relay(context.Background(), models.RelayRequest{
		URL: "https://payments.example", Method: "POST", OwnerID: 99, Args: "ref-aaaa untouched",
	})
	require.NoError(t, err)
	assert.Equal(t, "ref-aaaa untouched", resp.Result)
}
