package auth

// Package auth contains domain-level types for the device session.
// It is pure and free of adapter concerns.

// Role represents an application's authorization role.
// Keep string form for easy persistence. Valid values are defined
// as constants below.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleProfessor Role = "professor"
	RoleAluno     Role = "aluno"
)

// ParseRole maps a role tag from the wire or the store to a known Role.
// Empty or unrecognized input degrades to RoleAluno, the least-privileged
// tier. The backend omits the role for student accounts, so missing input
// is a normal case, not an error; unknown input must never elevate.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin
	case RoleProfessor:
		return RoleProfessor
	default:
		return RoleAluno
	}
}

// Credential is the persisted (token, role) pair representing a logged-in
// session. Both fields are written and read as a unit; a record with either
// field missing is treated as corruption and discarded whole.
type Credential struct {
	Token string `json:"token"`
	Role  Role   `json:"role"`
}

// Valid reports whether the pair is complete enough to restore a session.
func (c Credential) Valid() bool {
	return c.Token != "" && c.Role != ""
}

// State is the session lifecycle state.
type State string

const (
	// StateAuthenticating is the bootstrap interval: the store read has not
	// resolved yet and no role-gated surface may render.
	StateAuthenticating  State = "authenticating"
	StateUnauthenticated State = "unauthenticated"
	StateAuthenticated   State = "authenticated"
)

// Session is a snapshot of the device session. Token and Role are set iff
// State is StateAuthenticated.
type Session struct {
	State State
	Token string
	Role  Role
}

// IsAuthenticated returns true if the session holds a live credential.
func (s Session) IsAuthenticated() bool { return s.State == StateAuthenticated }
