package ports

// Package ports defines interfaces (hexagonal ports) for the session core.
// Implementations live in internal/adapters; orchestration in internal/service.

import (
	"context"

	domainauth "github.com/edumax/schoolapp/internal/domain/auth"
)

// CredentialStore persists the device's (token, role) pair across restarts.
//
// Load fails soft: a missing record, a partial pair, or a read error all
// report found=false with a nil error. Callers must treat that identically
// to "never logged in"; the pair is recoverable by re-login.
//
// Save writes both fields as one logical unit. Clear removes both and is
// idempotent: clearing a store that holds nothing succeeds silently.
type CredentialStore interface {
	Load(ctx context.Context) (cred domainauth.Credential, found bool, err error)
	Save(ctx context.Context, cred domainauth.Credential) error
	Clear(ctx context.Context) error
}
