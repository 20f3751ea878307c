package http

// Response messages reused across handlers. "Unauthorized" is deliberately
// uniform: credential failures never reveal which check rejected the caller.
const (
	msgUnauthorized   = "Unauthorized"
	msgInvalidJSON    = "Invalid JSON was passed"
	msgInvalidRequest = "invalid data provided"
)
