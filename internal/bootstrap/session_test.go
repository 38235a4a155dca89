package bootstrap

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edumax/schoolapp/config"
	"github.com/edumax/schoolapp/internal/adapters/devapi"
	domainauth "github.com/edumax/schoolapp/internal/domain/auth"
)

func TestBuildCore_MockMode(t *testing.T) {
	cfg := config.AppConfig{
		Gateway: config.GatewayConfig{Mode: config.GatewayModeMock},
		Store:   config.StoreConfig{Path: filepath.Join(t.TempDir(), "creds.db")},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	core, err := BuildCore(cfg, logger)
	require.NoError(t, err)
	defer core.Close()

	assert.IsType(t, &devapi.Gateway{}, core.Gateway)

	ctx := context.Background()
	sess := core.Sessions.Bootstrap(ctx)
	assert.Equal(t, domainauth.StateUnauthenticated, sess.State)

	sess, err = core.Sessions.Login(ctx, "prof@app.com", "1234")
	require.NoError(t, err)
	assert.Equal(t, domainauth.RoleProfessor, sess.Role)
}

func TestBuildCore_LoginSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creds.db")
	cfg := config.AppConfig{
		Gateway: config.GatewayConfig{Mode: config.GatewayModeMock},
		Store:   config.StoreConfig{Path: path},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	core, err := BuildCore(cfg, logger)
	require.NoError(t, err)
	core.Sessions.Bootstrap(ctx)
	_, err = core.Sessions.Login(ctx, "admin@app.com", "1234")
	require.NoError(t, err)
	require.NoError(t, core.Close())

	// Same store path, fresh process.
	restarted, err := BuildCore(cfg, logger)
	require.NoError(t, err)
	defer restarted.Close()

	sess := restarted.Sessions.Bootstrap(ctx)
	assert.Equal(t, domainauth.StateAuthenticated, sess.State)
	assert.Equal(t, domainauth.RoleAdmin, sess.Role)
}
