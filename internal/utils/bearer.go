package utils

import "strings"

// ParseBearerToken extracts the token segment from a raw "Authorization"
// header value of the documented shape:
//
//	Authorization: <scheme> <token>
//
// It is a pure, total function: a missing, malformed, or empty-token header
// yields ok == false, never an error. Both the user session surface and the
// machine-to-machine relay surface share this single extraction step.
func ParseBearerToken(authorizationHeader string) (string, bool) {
	parts := strings.Fields(strings.TrimSpace(authorizationHeader))
	if len(parts) != 2 || parts[1] == "" {
		return "", false
	}

	return parts[1], true
}
