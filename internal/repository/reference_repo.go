package repository

import (
	"database/sql"

	"alocacoes-admin/internal/models"
)

type ReferenceRepository struct {
	DB *sql.DB
}

func NewReferenceRepository(db *sql.DB) *ReferenceRepository {
	return &ReferenceRepository{DB: db}
}

func (r *ReferenceRepository) GetAllProfessors() ([]models.Professor, error) {
	rows, err := r.DB.Query("SELECT id, name FROM professors ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	professors := []models.Professor{}
	for rows.Next() {
		var p models.Professor
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, err
		}
		professors = append(professors, p)
	}
	return professors, rows.Err()
}

func (r *ReferenceRepository) GetAllCourses() ([]models.Course, error) {
	rows, err := r.DB.Query("SELECT id, name FROM courses ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	courses := []models.Course{}
	for rows.Next() {
		var c models.Course
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}
