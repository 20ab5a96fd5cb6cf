// Package profile persists provider profiles, the reusable "who is sending
// this proposal" records selected on the generation form.
package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// Profile describes one provider. Name is the only mandatory field.
type Profile struct {
	ID              int64
	Name            string
	Industry        string
	Services        string
	Differentiators string
	Email           string
	Phone           string
	Website         string
	Notes           string
}

// ErrNotFound is returned when no profile exists for the requested id.
var ErrNotFound = errors.New("profile not found")

// Store is a SQLite-backed profile table.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS providers (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	industry TEXT NOT NULL DEFAULT '',
	services TEXT NOT NULL DEFAULT '',
	differentiators TEXT NOT NULL DEFAULT '',
	contact_email TEXT NOT NULL DEFAULT '',
	contact_phone TEXT NOT NULL DEFAULT '',
	website TEXT NOT NULL DEFAULT '',
	notes TEXT NOT NULL DEFAULT ''
);`

// Open opens (and creates if needed) the profile database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open profile db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init profile schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// Create inserts a profile and returns its id.
func (s *Store) Create(ctx context.Context, p Profile) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO providers (name, industry, services, differentiators, contact_email, contact_phone, website, notes)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Name, p.Industry, p.Services, p.Differentiators, p.Email, p.Phone, p.Website, p.Notes)
	if err != nil {
		return 0, fmt.Errorf("insert profile: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert profile id: %w", err)
	}
	return id, nil
}

// Get loads one profile by id.
func (s *Store) Get(ctx context.Context, id int64) (Profile, error) {
	var p Profile
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, industry, services, differentiators, contact_email, contact_phone, website, notes
		 FROM providers WHERE id = ?`, id).
		Scan(&p.ID, &p.Name, &p.Industry, &p.Services, &p.Differentiators, &p.Email, &p.Phone, &p.Website, &p.Notes)
	if errors.Is(err, sql.ErrNoRows) {
		return Profile{}, ErrNotFound
	}
	if err != nil {
		return Profile{}, fmt.Errorf("select profile: %w", err)
	}
	return p, nil
}

// List returns all profiles ordered by name.
func (s *Store) List(ctx context.Context) ([]Profile, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, industry, services, differentiators, contact_email, contact_phone, website, notes
		 FROM providers ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	var out []Profile
	for rows.Next() {
		var p Profile
		if err := rows.Scan(&p.ID, &p.Name, &p.Industry, &p.Services, &p.Differentiators, &p.Email, &p.Phone, &p.Website, &p.Notes); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
