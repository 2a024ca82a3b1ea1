// Package postgres implements storage.Store over database/sql with lib/pq.
package postgres

import (
	"database/sql"
	"log"

	"github.com/dclocky/SchoolPulse/app/storage"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

var _ storage.Store = (*Store)(nil)

// Bootstrap creates missing tables and indexes. Statements are idempotent so
// it is safe to run on every startup.
//
// class_sessions deliberately has no foreign key to timetable_entries:
// deleting an entry orphans its sessions so recorded notes and attendance
// survive timetable rework.
func (s *Store) Bootstrap() error {
	log.Println("Ensuring database schema...")

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'teacher',
			subjects JSONB NOT NULL DEFAULT '[]'
		)`,
		`CREATE TABLE IF NOT EXISTS subjects (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			color TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS classes (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			grade TEXT NOT NULL,
			section TEXT NOT NULL,
			room_number TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS time_slots (
			id SERIAL PRIMARY KEY,
			start_time TEXT NOT NULL,
			end_time TEXT NOT NULL,
			label TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS timetable_entries (
			id SERIAL PRIMARY KEY,
			teacher_id INTEGER NOT NULL,
			class_id INTEGER,
			subject_id INTEGER,
			time_slot_id INTEGER NOT NULL,
			day_of_week INTEGER NOT NULL CHECK (day_of_week BETWEEN 0 AND 6),
			room_number TEXT,
			is_free_period BOOLEAN NOT NULL DEFAULT false
		)`,
		// Backstop against concurrent creates racing past the in-transaction
		// conflict check.
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_timetable_teacher_slot
			ON timetable_entries (teacher_id, day_of_week, time_slot_id)
			WHERE NOT is_free_period`,
		`CREATE TABLE IF NOT EXISTS students (
			id SERIAL PRIMARY KEY,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			class_id INTEGER NOT NULL,
			email TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS class_sessions (
			id SERIAL PRIMARY KEY,
			timetable_entry_id INTEGER NOT NULL,
			date DATE NOT NULL,
			notes TEXT,
			lesson_plan TEXT,
			UNIQUE (timetable_entry_id, date)
		)`,
		`CREATE TABLE IF NOT EXISTS attendance_records (
			id SERIAL PRIMARY KEY,
			class_session_id INTEGER NOT NULL,
			student_id INTEGER NOT NULL,
			status TEXT NOT NULL,
			recorded_at TIMESTAMPTZ NOT NULL,
			UNIQUE (class_session_id, student_id)
		)`,
		`CREATE TABLE IF NOT EXISTS homework (
			id SERIAL PRIMARY KEY,
			class_session_id INTEGER NOT NULL,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			due_date TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS substitutions (
			id SERIAL PRIMARY KEY,
			original_teacher_id INTEGER NOT NULL,
			substitute_teacher_id INTEGER NOT NULL,
			start_date DATE NOT NULL,
			end_date DATE NOT NULL,
			reason TEXT,
			CHECK (end_date >= start_date)
		)`,
		`CREATE TABLE IF NOT EXISTS settings (
			id SERIAL PRIMARY KEY,
			semester_start_date TIMESTAMPTZ NOT NULL,
			semester_end_date TIMESTAMPTZ NOT NULL,
			school_name TEXT NOT NULL DEFAULT 'SchoolPulse'
		)`,
	}

	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			log.Printf("Schema statement failed: %v", err)
			return err
		}
	}

	log.Println("Database schema ready")
	return nil
}
