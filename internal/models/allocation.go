package models

// Allocation representa una alocación tal como la persiste la API remota.
// Profesor y curso llegan anidados; los horarios en forma canónica ("HH:MM+0000").
type Allocation struct {
	ID        int       `json:"id"`
	Professor Professor `json:"professor"`
	Course    Course    `json:"course"`
	DayOfWeek string    `json:"dayOfWeek"`
	StartHour string    `json:"startHour"`
	EndHour   string    `json:"endHour"`
}

// AllocationPayload es el cuerpo de POST /allocations y PUT /allocations/:id
type AllocationPayload struct {
	ProfessorID int    `json:"professorId"`
	CourseID    int    `json:"courseId"`
	DayOfWeek   string `json:"dayOfWeek"`
	StartHour   string `json:"startHour"`
	EndHour     string `json:"endHour"`
}

// Draft es el borrador editable: ids planos y horarios en forma de pantalla ("HH:MM").
type Draft struct {
	ID          int
	ProfessorID int
	CourseID    int
	DayOfWeek   string
	StartHour   string
	EndHour     string
}

// EmptyDraft devuelve el valor centinela del modo "crear".
func EmptyDraft() Draft {
	return Draft{}
}

// IsNew indica si el borrador todavía no fue persistido.
func (d Draft) IsNew() bool {
	return d.ID == 0
}

// DraftUpdate agrupa los cambios de campo del formulario. Un nil deja el campo intacto.
type DraftUpdate struct {
	ProfessorID *int
	CourseID    *int
	DayOfWeek   *string
	StartHour   *string
	EndHour     *string
}

// ApplyTo devuelve una copia de d con los campos presentes reemplazados.
func (u DraftUpdate) ApplyTo(d Draft) Draft {
	if u.ProfessorID != nil {
		d.ProfessorID = *u.ProfessorID
	}
	if u.CourseID != nil {
		d.CourseID = *u.CourseID
	}
	if u.DayOfWeek != nil {
		d.DayOfWeek = *u.DayOfWeek
	}
	if u.StartHour != nil {
		d.StartHour = *u.StartHour
	}
	if u.EndHour != nil {
		d.EndHour = *u.EndHour
	}
	return d
}
