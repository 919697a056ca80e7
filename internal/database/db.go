package database

import (
	"database/sql"

	"alocacoes-admin/internal/logger"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const schema = `
CREATE TABLE IF NOT EXISTS professors (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS courses (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS allocations (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	professor_id INTEGER NOT NULL,
	course_id INTEGER NOT NULL,
	day_of_week TEXT,
	start_hour TEXT,
	end_hour TEXT,
	FOREIGN KEY(professor_id) REFERENCES professors(id),
	FOREIGN KEY(course_id) REFERENCES courses(id)
);
`

// InitDB abre la base SQLite, crea las tablas si no existen y carga los datos iniciales.
func InitDB(dataSourceName string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, errors.Wrap(err, "abriendo base")
	}
	// SQLite admite un único escritor; con ":memory:" cada conexión sería otra base.
	db.SetMaxOpenConns(1)

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "ping")
	}

	if _, err = db.Exec(schema); err != nil {
		logger.L().Error("schema failed", zap.Error(err))
		db.Close()
		return nil, errors.Wrap(err, "creando tablas")
	}

	if err := seedData(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
