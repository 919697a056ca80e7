package repository

import (
	"database/sql"
	"testing"

	"alocacoes-admin/internal/database"
	"alocacoes-admin/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.InitDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestReferencesSeeded(t *testing.T) {
	repo := NewReferenceRepository(openDB(t))

	professors, err := repo.GetAllProfessors()
	require.NoError(t, err)
	assert.Len(t, professors, 4)
	assert.Equal(t, models.Professor{ID: 1, Name: "Ana Souza"}, professors[0])

	courses, err := repo.GetAllCourses()
	require.NoError(t, err)
	assert.Len(t, courses, 5)
}

func TestAllocationCRUD(t *testing.T) {
	repo := NewAllocationRepository(openDB(t))
	payload := models.AllocationPayload{ProfessorID: 2, CourseID: 3, DayOfWeek: "MONDAY", StartHour: "08:00+0000", EndHour: "10:00+0000"}

	created, err := repo.Create(payload)
	require.NoError(t, err)
	assert.Equal(t, models.Allocation{
		ID:        1,
		Professor: models.Professor{ID: 2, Name: "Bruno Lima"},
		Course:    models.Course{ID: 3, Name: "Física I"},
		DayOfWeek: "MONDAY",
		StartHour: "08:00+0000",
		EndHour:   "10:00+0000",
	}, created)

	payload.DayOfWeek = "FRIDAY"
	updated, err := repo.Update(created.ID, payload)
	require.NoError(t, err)
	assert.Equal(t, "FRIDAY", updated.DayOfWeek)

	all, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, repo.Delete(created.ID))
	assert.ErrorIs(t, repo.Delete(created.ID), ErrNotFound)

	_, err = repo.Get(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAllocationUnknownReference(t *testing.T) {
	repo := NewAllocationRepository(openDB(t))
	_, err := repo.Create(models.AllocationPayload{ProfessorID: 99, CourseID: 1})
	assert.ErrorIs(t, err, ErrUnknownReference)

	_, err = repo.Update(1, models.AllocationPayload{ProfessorID: 1, CourseID: 1})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetAllEmpty(t *testing.T) {
	all, err := NewAllocationRepository(openDB(t)).GetAll()
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}
