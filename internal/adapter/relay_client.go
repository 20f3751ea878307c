package adapter

import (
	"context"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/vkarpenko/card-vault/internal/logger"
	"github.com/vkarpenko/card-vault/models"
)

// HTTPClientConfig configures the outbound third-party client.
type HTTPClientConfig struct {
	// Timeout bounds every outbound call; a call that exceeds it is
	// reported as an upstream failure. Defaults to 15s when unset.
	Timeout time.Duration
}

type thirdPartyHTTPClient struct {
	client *resty.Client
	logger *logger.Logger
}

// NewThirdPartyHTTPClient constructs an HTTP implementation of
// [ThirdPartyClient] with the configured request timeout.
func NewThirdPartyHTTPClient(cfg HTTPClientConfig, logger *logger.Logger) ThirdPartyClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetTimeout(cfg.Timeout)

	return &thirdPartyHTTPClient{client: cli, logger: logger}
}

// Send implements [ThirdPartyClient]. The outbound request carries the
// transformed payload verbatim; headers from the relay request are forwarded
// as-is. The response body is returned only for 2xx statuses.
func (c *thirdPartyHTTPClient) Send(ctx context.Context, call models.UpstreamCall) (string, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeaders(call.Headers).
		SetBody(call.Body).
		Execute(call.Method, call.URL)
	if err != nil {
		c.logger.Err(err).Str("url", call.URL).Msg("upstream request failed")
		return "", &UpstreamError{Status: http.StatusBadGateway, Message: "upstream unreachable"}
	}

	if resp.IsError() {
		c.logger.Error().
			Str("url", call.URL).
			Int("status", resp.StatusCode()).
			Msg("upstream returned non-success status")
		return "", &UpstreamError{Status: resp.StatusCode(), Message: http.StatusText(resp.StatusCode())}
	}

	return resp.String(), nil
}
