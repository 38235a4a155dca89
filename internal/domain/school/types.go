package school

// Package school holds the payload types exchanged with the remote
// school-management service. Field names on the wire follow the service's
// Portuguese contract; the core passes these through untouched apart from
// presence checks at the gateway boundary.

// Student is the registration payload for a new student.
type Student struct {
	Name         string `json:"nome"`
	Registration string `json:"matricula"`
	Course       string `json:"curso"`
}

// Professor is the registration payload for a new professor.
type Professor struct {
	Name  string `json:"nome"`
	Email string `json:"email"`
	Title string `json:"titulacao"`
}

// Discipline is the registration payload for a new discipline.
type Discipline struct {
	Name string `json:"nome"`
	Code string `json:"codigo"`
}

// ReportRow is one line of a student's academic report.
type ReportRow struct {
	DisciplineID   int     `json:"disciplina_id"`
	DisciplineName string  `json:"disciplina_nome"`
	Grade1         float64 `json:"nota1"`
	Grade2         float64 `json:"nota2"`
	Average        float64 `json:"media"`
}
