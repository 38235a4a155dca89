package errkind

// Package errkind assigns stable labels to the core's error taxonomy,
// suitable for tagging logs.

import (
	"errors"

	"github.com/edumax/schoolapp/internal/ports"
)

// Kind returns a normalized label for err.
func Kind(err error) string {
	if err == nil {
		return ""
	}

	var valErr *ports.ValidationError
	if errors.As(err, &valErr) {
		return "validation"
	}

	var gwErr *ports.GatewayError
	if errors.As(err, &gwErr) {
		if gwErr.Code == 0 {
			return "transport"
		}
		return "gateway"
	}

	return "internal"
}
