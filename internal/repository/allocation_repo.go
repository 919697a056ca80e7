package repository

import (
	"database/sql"

	"alocacoes-admin/internal/models"

	"github.com/pkg/errors"
)

var (
	ErrNotFound         = errors.New("allocation not found")
	ErrUnknownReference = errors.New("unknown professor or course")
)

const selectAllocation = `
	SELECT
		a.id, a.day_of_week, a.start_hour, a.end_hour,
		p.id, p.name, c.id, c.name
	FROM allocations a
	JOIN professors p ON p.id = a.professor_id
	JOIN courses c ON c.id = a.course_id
`

type AllocationRepository struct {
	DB *sql.DB
}

func NewAllocationRepository(db *sql.DB) *AllocationRepository {
	return &AllocationRepository{DB: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAllocation(s scanner) (models.Allocation, error) {
	var a models.Allocation
	err := s.Scan(&a.ID, &a.DayOfWeek, &a.StartHour, &a.EndHour,
		&a.Professor.ID, &a.Professor.Name, &a.Course.ID, &a.Course.Name)
	return a, err
}

func (r *AllocationRepository) GetAll() ([]models.Allocation, error) {
	rows, err := r.DB.Query(selectAllocation + " ORDER BY a.id ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	allocations := []models.Allocation{}
	for rows.Next() {
		a, err := scanAllocation(rows)
		if err != nil {
			return nil, err
		}
		allocations = append(allocations, a)
	}
	return allocations, rows.Err()
}

func (r *AllocationRepository) Get(id int) (models.Allocation, error) {
	a, err := scanAllocation(r.DB.QueryRow(selectAllocation+" WHERE a.id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return a, ErrNotFound
	}
	return a, err
}

func (r *AllocationRepository) Create(p models.AllocationPayload) (models.Allocation, error) {
	if err := r.checkReferences(p); err != nil {
		return models.Allocation{}, err
	}
	res, err := r.DB.Exec(
		"INSERT INTO allocations (professor_id, course_id, day_of_week, start_hour, end_hour) VALUES (?, ?, ?, ?, ?)",
		p.ProfessorID, p.CourseID, p.DayOfWeek, p.StartHour, p.EndHour,
	)
	if err != nil {
		return models.Allocation{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Allocation{}, err
	}
	return r.Get(int(id))
}

func (r *AllocationRepository) Update(id int, p models.AllocationPayload) (models.Allocation, error) {
	if err := r.checkReferences(p); err != nil {
		return models.Allocation{}, err
	}
	res, err := r.DB.Exec(
		"UPDATE allocations SET professor_id=?, course_id=?, day_of_week=?, start_hour=?, end_hour=? WHERE id=?",
		p.ProfessorID, p.CourseID, p.DayOfWeek, p.StartHour, p.EndHour, id,
	)
	if err != nil {
		return models.Allocation{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.Allocation{}, ErrNotFound
	}
	return r.Get(id)
}

func (r *AllocationRepository) Delete(id int) error {
	res, err := r.DB.Exec("DELETE FROM allocations WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *AllocationRepository) checkReferences(p models.AllocationPayload) error {
	var ok bool
	err := r.DB.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM professors WHERE id = ?) AND EXISTS(SELECT 1 FROM courses WHERE id = ?)",
		p.ProfessorID, p.CourseID,
	).Scan(&ok)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUnknownReference
	}
	return nil
}
