package editor

import (
	"alocacoes-admin/internal/models"
	"alocacoes-admin/internal/timecodec"
)

// Form guarda el único borrador vivo.
type Form struct {
	draft models.Draft
}

func NewForm() *Form {
	return &Form{draft: models.EmptyDraft()}
}

func (f *Form) Reset() {
	f.draft = models.EmptyDraft()
}

func (f *Form) Hydrate(row models.Allocation) {
	f.draft = RecordFromAllocation(row)
}

func (f *Form) Apply(u models.DraftUpdate) {
	f.draft = u.ApplyTo(f.draft)
}

func (f *Form) Draft() models.Draft {
	return f.draft
}

// RecordFromAllocation aplana profesor y curso a sus ids y deja los horarios en forma de pantalla.
func RecordFromAllocation(a models.Allocation) models.Draft {
	return models.Draft{
		ID:          a.ID,
		ProfessorID: a.Professor.ID,
		CourseID:    a.Course.ID,
		DayOfWeek:   a.DayOfWeek,
		StartHour:   timecodec.Decode(a.StartHour),
		EndHour:     timecodec.Decode(a.EndHour),
	}
}

// PayloadFromDraft arma el cuerpo de create/update con los horarios en forma canónica.
func PayloadFromDraft(d models.Draft) models.AllocationPayload {
	return models.AllocationPayload{
		ProfessorID: d.ProfessorID,
		CourseID:    d.CourseID,
		DayOfWeek:   d.DayOfWeek,
		StartHour:   timecodec.Encode(d.StartHour),
		EndHour:     timecodec.Encode(d.EndHour),
	}
}
