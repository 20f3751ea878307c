package adapter

import "fmt"

// UpstreamError describes a failed third-party call: either a transport
// failure (timeout, connection refused) or a non-2xx response status.
//
// Message carries status text only, never the response body: on the error
// path nothing the third party returned may reach the relay caller.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream error: status=%d message=%s", e.Status, e.Message)
}
