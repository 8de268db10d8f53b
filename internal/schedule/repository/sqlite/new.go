// Package sqlite implements the schedule repository on a local SQLite
// database.
package sqlite

import (
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"personal-task-scheduler/internal/schedule/repository"
	pkgLog "personal-task-scheduler/pkg/log"
)

//go:embed schema.sql
var schema string

// Open opens (or creates) the database at path and initializes the schema.
// Use ":memory:" for an ephemeral database.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return db, nil
}

type implRepository struct {
	db *sql.DB
	l  pkgLog.Logger
}

// New creates a SQLite-backed ScheduleRepository over the given database.
func New(db *sql.DB, l pkgLog.Logger) repository.ScheduleRepository {
	return &implRepository{db: db, l: l}
}
