package editor

import (
	"context"

	"alocacoes-admin/internal/listview"
	"alocacoes-admin/internal/models"
)

// Columns describe la tabla de alocaciones. Profesor y curso se muestran por nombre.
func Columns() []listview.Column[models.Allocation] {
	return []listview.Column[models.Allocation]{
		{ID: "id", Label: "ID", Value: func(a models.Allocation) any { return a.ID }},
		{ID: "professor", Label: "Professor", Render: func(a models.Allocation) string { return a.Professor.Name }},
		{ID: "course", Label: "Course", Render: func(a models.Allocation) string { return a.Course.Name }},
		{ID: "dayOfWeek", Label: "DayofWeek", Value: func(a models.Allocation) any { return a.DayOfWeek }},
		{ID: "startHour", Label: "StartHour", Value: func(a models.Allocation) any { return a.StartHour }},
		{ID: "endHour", Label: "EndHour", Value: func(a models.Allocation) any { return a.EndHour }},
	}
}

// Actions devuelve Edit y Remove ligadas a este controller. confirmer se usa en Remove.
func (c *Controller) Actions(confirmer Confirmer) []listview.Action[models.Allocation] {
	return []listview.Action[models.Allocation]{
		{
			Name: ActionEdit,
			Run: func(ctx context.Context, row models.Allocation, _ func(context.Context) error) error {
				return c.OpenEdit(ctx, row)
			},
		},
		{
			Name: ActionRemove,
			Run: func(ctx context.Context, row models.Allocation, refetch func(context.Context) error) error {
				return c.Remove(ctx, row, confirmer, refetch)
			},
		},
	}
}

// NewListView arma la vista de listado de alocaciones sobre fetch.
func NewListView(fetch listview.Fetcher[models.Allocation]) *listview.View[models.Allocation] {
	return listview.New(fetch, func(a models.Allocation) int { return a.ID }, Columns())
}
