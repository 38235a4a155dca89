package access

// Package access maps roles to the screens and actions they unlock.
// The mapping is pure: no state, no I/O.

import domainauth "github.com/edumax/schoolapp/internal/domain/auth"

// Capability names an action or screen a role may access.
type Capability string

const (
	CapViewReport       Capability = "view_report"
	CapCreateDiscipline Capability = "create_discipline"
	CapCreateStudent    Capability = "create_student"
	CapCreateProfessor  Capability = "create_professor"
)

// Set is a capability set derived from a role. It is never persisted.
type Set map[Capability]bool

// Has reports whether the set contains c.
func (s Set) Has(c Capability) bool { return s[c] }

// ForRole returns the capability set for a role. The sets are monotonically
// contained: aluno ⊂ professor ⊂ admin. Any role the policy does not
// recognize gets the aluno set; unknown input degrades to least privilege,
// never to an error and never upward.
func ForRole(role domainauth.Role) Set {
	set := Set{CapViewReport: true}
	switch role {
	case domainauth.RoleAdmin:
		set[CapCreateDiscipline] = true
		set[CapCreateStudent] = true
		set[CapCreateProfessor] = true
	case domainauth.RoleProfessor:
		set[CapCreateDiscipline] = true
	}
	return set
}
