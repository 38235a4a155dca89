package errkind

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edumax/schoolapp/internal/ports"
)

func TestKind(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "nil", err: nil, expected: ""},
		{name: "validation", err: &ports.ValidationError{Field: "email", Reason: "is required"}, expected: "validation"},
		{name: "gateway", err: &ports.GatewayError{Code: 401, Message: "Invalid credentials"}, expected: "gateway"},
		{name: "transport", err: &ports.GatewayError{Message: "unreachable"}, expected: "transport"},
		{name: "wrapped gateway", err: fmt.Errorf("login: %w", &ports.GatewayError{Code: 500, Message: "boom"}), expected: "gateway"},
		{name: "other", err: errors.New("disk full"), expected: "internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Kind(tt.err))
		})
	}
}
