package school

// Package school contains simple hand-written test doubles for the session
// core's ports. These are lightweight and suitable for unit tests without
// codegen.

import (
	"context"
	"sync"

	domainauth "github.com/edumax/schoolapp/internal/domain/auth"
	domainschool "github.com/edumax/schoolapp/internal/domain/school"
	"github.com/edumax/schoolapp/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.CredentialStore = (*MemoryCredentialStore)(nil)
	_ ports.Gateway         = (*StubGateway)(nil)
)

// MemoryCredentialStore is an in-memory CredentialStore with optional
// failure injection per operation.
type MemoryCredentialStore struct {
	mu    sync.Mutex
	cred  domainauth.Credential
	found bool

	LoadErr  error
	SaveErr  error
	ClearErr error
}

// NewMemoryCredentialStore creates an empty in-memory store.
func NewMemoryCredentialStore() *MemoryCredentialStore {
	return &MemoryCredentialStore{}
}

// Seed places a credential pair in the store, as if saved by a prior run.
func (s *MemoryCredentialStore) Seed(cred domainauth.Credential) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cred = cred
	s.found = true
}

func (s *MemoryCredentialStore) Load(_ context.Context) (domainauth.Credential, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.LoadErr != nil {
		return domainauth.Credential{}, false, s.LoadErr
	}
	if !s.found || !s.cred.Valid() {
		return domainauth.Credential{}, false, nil
	}
	return s.cred, true, nil
}

func (s *MemoryCredentialStore) Save(_ context.Context, cred domainauth.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.cred = cred
	s.found = true
	return nil
}

func (s *MemoryCredentialStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ClearErr != nil {
		return s.ClearErr
	}
	s.cred = domainauth.Credential{}
	s.found = false
	return nil
}

// StubGateway is a scripted Gateway. Unset funcs return zero values.
type StubGateway struct {
	LoginFunc            func(ctx context.Context, email, password string) (ports.LoginResult, error)
	ReportForFunc        func(ctx context.Context, studentID int) ([]domainschool.ReportRow, error)
	CreateStudentFunc    func(ctx context.Context, s domainschool.Student) error
	CreateProfessorFunc  func(ctx context.Context, p domainschool.Professor) error
	CreateDisciplineFunc func(ctx context.Context, d domainschool.Discipline) error

	mu         sync.Mutex
	loginCalls int
}

// LoginCalls reports how many times Login was invoked.
func (g *StubGateway) LoginCalls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.loginCalls
}

func (g *StubGateway) Login(ctx context.Context, email, password string) (ports.LoginResult, error) {
	g.mu.Lock()
	g.loginCalls++
	g.mu.Unlock()
	if g.LoginFunc != nil {
		return g.LoginFunc(ctx, email, password)
	}
	return ports.LoginResult{}, nil
}

func (g *StubGateway) ReportFor(ctx context.Context, studentID int) ([]domainschool.ReportRow, error) {
	if g.ReportForFunc != nil {
		return g.ReportForFunc(ctx, studentID)
	}
	return []domainschool.ReportRow{}, nil
}

func (g *StubGateway) CreateStudent(ctx context.Context, s domainschool.Student) error {
	if g.CreateStudentFunc != nil {
		return g.CreateStudentFunc(ctx, s)
	}
	return nil
}

func (g *StubGateway) CreateProfessor(ctx context.Context, p domainschool.Professor) error {
	if g.CreateProfessorFunc != nil {
		return g.CreateProfessorFunc(ctx, p)
	}
	return nil
}

func (g *StubGateway) CreateDiscipline(ctx context.Context, d domainschool.Discipline) error {
	if g.CreateDisciplineFunc != nil {
		return g.CreateDisciplineFunc(ctx, d)
	}
	return nil
}
