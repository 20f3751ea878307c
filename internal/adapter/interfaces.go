// Package adapter implements outbound integrations. Its single concern here
// is the third-party HTTP call performed by the detokenizing relay.
package adapter

import (
	"context"

	"github.com/vkarpenko/card-vault/models"
)

// ThirdPartyClient sends the transformed relay payload to the declared
// third-party endpoint and returns the raw response body.
//
// Any non-success outcome (transport failure, timeout, or a non-2xx
// status) is reported as an *UpstreamError so the relay can stop before
// the inbound substitution pass.
type ThirdPartyClient interface {
	Send(ctx context.Context, call models.UpstreamCall) (string, error)
}
