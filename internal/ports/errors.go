package ports

import "fmt"

// GatewayError is the uniform shape every remote or transport failure is
// normalized into. Message prefers a server-supplied human-readable string
// and falls back to a generic one; it is safe to show to the user.
type GatewayError struct {
	Code    int // HTTP status, or 0 for transport failures
	Message string
}

func (e *GatewayError) Error() string {
	if e.Code == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Code)
}

// ValidationError reports a missing or malformed required field. It is
// raised locally, before any I/O, and never reaches the remote service.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}
