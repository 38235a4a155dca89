package ports

import (
	"context"

	domainauth "github.com/edumax/schoolapp/internal/domain/auth"
	"github.com/edumax/schoolapp/internal/domain/school"
)

// LoginResult is the credential material returned by a successful login.
// Role is already normalized: a response that omits the role degrades to
// the student tier before the result leaves the gateway.
type LoginResult struct {
	Token string
	Role  domainauth.Role
}

// Gateway is the single outbound seam to the remote school-management
// service. Implementations perform network I/O only; they never touch the
// credential store or session state. Callers persist results themselves.
//
// Every operation validates its inputs for presence before any I/O
// (returning *ValidationError) and normalizes transport or remote failures
// into *GatewayError.
type Gateway interface {
	Login(ctx context.Context, email, password string) (LoginResult, error)

	// ReportFor returns the academic report rows for a student, ordered as
	// the service returns them. An empty slice is a valid result, distinct
	// from an error.
	ReportFor(ctx context.Context, studentID int) ([]school.ReportRow, error)

	CreateStudent(ctx context.Context, s school.Student) error
	CreateProfessor(ctx context.Context, p school.Professor) error
	CreateDiscipline(ctx context.Context, d school.Discipline) error
}
