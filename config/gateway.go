package config

import (
	"fmt"
	"strings"
	"time"
)

// GatewayMode represents which API gateway implementation to use.
type GatewayMode string

const (
	// GatewayModeHTTP talks to the remote school-management service.
	GatewayModeHTTP GatewayMode = "http"
	// GatewayModeMock uses an in-memory fake gateway (for development only).
	GatewayModeMock GatewayMode = "mock"
)

// UnmarshalText implements encoding.TextUnmarshaler for GatewayMode.
func (g *GatewayMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "http", "mock":
		*g = GatewayMode(v)
		return nil
	default:
		return fmt.Errorf("invalid GatewayMode: %q (valid options: http, mock)", v)
	}
}

// GatewayConfig groups API gateway configuration.
type GatewayConfig struct {
	// Mode determines which gateway implementation to use.
	Mode GatewayMode `env:"GATEWAY_MODE" envDefault:"http"`

	// BaseURL is the base URL of the school-management API.
	BaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:3000"`

	// Timeout bounds each outbound API call.
	Timeout time.Duration `env:"API_TIMEOUT" envDefault:"15s"`
}

// Sanitize applies guardrails to gateway configuration values.
func (g *GatewayConfig) Sanitize() {
	g.BaseURL = strings.TrimRight(strings.TrimSpace(g.BaseURL), "/")
	if g.Timeout <= 0 {
		g.Timeout = 15 * time.Second
	}
	if g.Timeout > 2*time.Minute {
		g.Timeout = 2 * time.Minute
	}
}
