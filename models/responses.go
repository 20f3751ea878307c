package models

// TokenizeRequest is the body of POST /api/cards.
type TokenizeRequest struct {
	// SensitiveValue is the protected payload to vault, e.g. a card number.
	SensitiveValue string `json:"sensitive_value"`
}

// TokenizeResponse returns the reference id standing in for the vaulted value.
type TokenizeResponse struct {
	ReferenceID string `json:"reference_id"`
}

// ErrorResponse is the structured error payload returned for authorization,
// validation, and upstream failures.
type ErrorResponse struct {
	Message string `json:"message"`
}
