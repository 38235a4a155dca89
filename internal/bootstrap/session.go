package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/edumax/schoolapp/config"
	"github.com/edumax/schoolapp/internal/adapters/bolt"
	"github.com/edumax/schoolapp/internal/adapters/devapi"
	"github.com/edumax/schoolapp/internal/adapters/schoolapi"
	"github.com/edumax/schoolapp/internal/ports"
	"github.com/edumax/schoolapp/internal/service"
)

// Core bundles the wired session core. Close releases the credential store.
type Core struct {
	Sessions *service.SessionManager
	Gateway  ports.Gateway
	store    *bolt.Store
}

// Close closes the underlying credential store.
func (c *Core) Close() error { return c.store.Close() }

// BuildCore wires the credential store, the gateway for the configured mode,
// and the session manager. The gateway reads its bearer token through the
// session manager, which is the only writer of session state.
func BuildCore(cfg config.AppConfig, logger *slog.Logger) (*Core, error) {
	store, err := bolt.Open(cfg.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("open credential store: %w", err)
	}

	core := &Core{store: store}

	switch cfg.Gateway.Mode {
	case config.GatewayModeMock:
		logger.Warn("using in-memory mock gateway", "mode", cfg.Gateway.Mode)
		core.Gateway = devapi.NewGateway()
	default:
		core.Gateway = schoolapi.NewClient(cfg.Gateway.BaseURL, cfg.Gateway.Timeout, func() string {
			return core.Sessions.Token()
		})
	}

	core.Sessions = service.NewSessionManager(service.SessionManagerOptions{
		Gateway: core.Gateway,
		Store:   store,
		Logger:  logger,
	})
	return core, nil
}
