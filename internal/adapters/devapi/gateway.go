package devapi

// Package devapi provides a simple in-memory Gateway for local development.
// It is seeded with the demo accounts the login screen advertises and a
// canned report, so the app can run without the school service.

import (
	"context"
	"net/http"
	"sync"

	domainauth "github.com/edumax/schoolapp/internal/domain/auth"
	"github.com/edumax/schoolapp/internal/domain/school"
	"github.com/edumax/schoolapp/internal/ports"
)

type account struct {
	password string
	token    string
	role     domainauth.Role
}

// Gateway implements ports.Gateway entirely in memory.
type Gateway struct {
	mu          sync.Mutex
	accounts    map[string]account
	reports     map[int][]school.ReportRow
	students    []school.Student
	professors  []school.Professor
	disciplines []school.Discipline
}

var _ ports.Gateway = (*Gateway)(nil)

// NewGateway constructs a dev gateway with the standard demo accounts.
func NewGateway() *Gateway {
	return &Gateway{
		accounts: map[string]account{
			"admin@app.com": {password: "1234", token: "dev-token-admin", role: domainauth.RoleAdmin},
			"prof@app.com":  {password: "1234", token: "dev-token-prof", role: domainauth.RoleProfessor},
			"aluno@app.com": {password: "1234", token: "dev-token-aluno", role: domainauth.RoleAluno},
		},
		reports: map[int][]school.ReportRow{
			1: {
				{DisciplineID: 1, DisciplineName: "Cálculo I", Grade1: 8.5, Grade2: 7.0, Average: 7.75},
				{DisciplineID: 2, DisciplineName: "Algoritmos", Grade1: 9.0, Grade2: 9.5, Average: 9.25},
			},
		},
	}
}

func (g *Gateway) Login(_ context.Context, email, password string) (ports.LoginResult, error) {
	if email == "" {
		return ports.LoginResult{}, &ports.ValidationError{Field: "email", Reason: "is required"}
	}
	if password == "" {
		return ports.LoginResult{}, &ports.ValidationError{Field: "password", Reason: "is required"}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	acc, ok := g.accounts[email]
	if !ok || acc.password != password {
		return ports.LoginResult{}, &ports.GatewayError{Code: http.StatusUnauthorized, Message: "Invalid credentials"}
	}
	return ports.LoginResult{Token: acc.token, Role: acc.role}, nil
}

func (g *Gateway) ReportFor(_ context.Context, studentID int) ([]school.ReportRow, error) {
	if studentID <= 0 {
		return nil, &ports.ValidationError{Field: "studentID", Reason: "must be a positive integer"}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	rows := g.reports[studentID]
	out := make([]school.ReportRow, len(rows))
	copy(out, rows)
	return out, nil
}

func (g *Gateway) CreateStudent(_ context.Context, s school.Student) error {
	if s.Name == "" || s.Registration == "" || s.Course == "" {
		return &ports.ValidationError{Field: "aluno", Reason: "all fields are required"}
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.students = append(g.students, s)
	return nil
}

func (g *Gateway) CreateProfessor(_ context.Context, p school.Professor) error {
	if p.Name == "" || p.Email == "" || p.Title == "" {
		return &ports.ValidationError{Field: "professor", Reason: "all fields are required"}
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.professors = append(g.professors, p)
	return nil
}

func (g *Gateway) CreateDiscipline(_ context.Context, d school.Discipline) error {
	if d.Name == "" || d.Code == "" {
		return &ports.ValidationError{Field: "disciplina", Reason: "all fields are required"}
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.disciplines = append(g.disciplines, d)
	return nil
}
