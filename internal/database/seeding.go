package database

import (
	"database/sql"

	"github.com/pkg/errors"
)

func seedData(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM professors").Scan(&count); err != nil {
		return errors.Wrap(err, "contando profesores")
	}
	if count > 0 {
		return nil
	}

	professors := []string{"Ana Souza", "Bruno Lima", "Carla Mendes", "Diego Alves"}
	for _, p := range professors {
		if _, err := db.Exec("INSERT INTO professors (name) VALUES (?)", p); err != nil {
			return errors.Wrap(err, "seed professors")
		}
	}

	courses := []string{"Álgebra I", "Cálculo I", "Física I", "Algoritmos y Estructuras de Datos", "Sistemas Operativos"}
	for _, c := range courses {
		if _, err := db.Exec("INSERT INTO courses (name) VALUES (?)", c); err != nil {
			return errors.Wrap(err, "seed courses")
		}
	}
	return nil
}
