package models

// RelayRequest is the body of a detokenizing relay call. The M2M credential
// presented in the Authorization header authorizes the caller to use the
// relay at all; OwnerID alone selects whose cards are substituted.
type RelayRequest struct {
	// URL is the third-party endpoint to invoke.
	URL string `json:"url"`

	// Method is the HTTP method for the outbound call.
	Method string `json:"method"`

	// Headers are forwarded verbatim to the third party.
	Headers map[string]string `json:"headers"`

	// OwnerID selects the card set used for substitution in both directions.
	OwnerID int64 `json:"owner_id"`

	// Args is the free-form outbound payload. Reference ids embedded in it
	// are replaced with the owner's sensitive values before sending.
	Args string `json:"args"`
}

// RelayResponse carries the third-party response body after every sensitive
// value has been replaced back with its reference id.
type RelayResponse struct {
	Result string `json:"result"`
}

// UpstreamCall is the outbound request handed to the third-party client.
// Body is the transformed payload; it exists only between the two
// substitution passes and never reaches the relay caller.
type UpstreamCall struct {
	URL     string
	Method  string
	Headers map[string]string
	Body    string
}
