// Package sqlite provides a SQLite-backed implementation of the
// storage.Store interface. The default database path is :memory:, so the
// book still lives only for the process lifetime unless a file path is
// configured explicitly.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/hmelnych/contactbook/internal/models"
	"github.com/hmelnych/contactbook/internal/storage"
)

// InMemory is the database path for a throwaway in-process database.
const InMemory = ":memory:"

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path. For file
// paths it creates the parent directories; migrations run automatically
// either way.
func New(dbPath string) (*SQLiteStore, error) {
	if dbPath != InMemory {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// The phones table cascades on contact deletion.
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveRecord inserts the record or overwrites the row with the same name.
// Overwriting reuses the existing row id and seq, so the contact keeps its
// insertion position like it would in the in-memory book.
func (s *SQLiteStore) SaveRecord(ctx context.Context, record *models.Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	name := record.Name.String()

	var id string
	err = tx.QueryRowContext(ctx, "SELECT id FROM contacts WHERE name = ?", name).Scan(&id)
	switch {
	case err == sql.ErrNoRows:
		id = uuid.New().String()
		_, err = tx.ExecContext(ctx,
			"INSERT INTO contacts (id, name, birthday) VALUES (?, ?, ?)",
			id, name, birthdayValue(record),
		)
		if err != nil {
			return fmt.Errorf("failed to insert contact: %w", err)
		}
	case err != nil:
		return fmt.Errorf("failed to look up contact: %w", err)
	default:
		_, err = tx.ExecContext(ctx,
			"UPDATE contacts SET birthday = ? WHERE id = ?",
			birthdayValue(record), id,
		)
		if err != nil {
			return fmt.Errorf("failed to update contact: %w", err)
		}
		if _, err = tx.ExecContext(ctx, "DELETE FROM phones WHERE contact_id = ?", id); err != nil {
			return fmt.Errorf("failed to clear phones: %w", err)
		}
	}

	for position, phone := range record.Phones {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO phones (contact_id, position, value) VALUES (?, ?, ?)",
			id, position, phone.String(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert phone: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetRecord retrieves a record by contact name, including all phones.
func (s *SQLiteStore) GetRecord(ctx context.Context, name string) (*models.Record, error) {
	var (
		id       string
		birthday sql.NullString
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT id, birthday FROM contacts WHERE name = ?",
		name,
	).Scan(&id, &birthday)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}

	return s.buildRecord(ctx, id, name, birthday)
}

// DeleteRecord removes the contact and, via cascade, its phones. The bool
// reports whether a row was removed.
func (s *SQLiteStore) DeleteRecord(ctx context.Context, name string) (bool, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM contacts WHERE name = ?", name)
	if err != nil {
		return false, fmt.Errorf("failed to delete contact: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return affected > 0, nil
}

// ListRecords returns all records ordered by insertion sequence.
func (s *SQLiteStore) ListRecords(ctx context.Context) ([]*models.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, birthday FROM contacts ORDER BY seq",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer rows.Close()

	type row struct {
		id, name string
		birthday sql.NullString
	}
	var contacts []row
	for rows.Next() {
		var r row
		if err := rows.Scan(&r.id, &r.name, &r.birthday); err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contacts: %w", err)
	}

	records := make([]*models.Record, 0, len(contacts))
	for _, c := range contacts {
		record, err := s.buildRecord(ctx, c.id, c.name, c.birthday)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// buildRecord reconstructs a validated Record from its stored columns.
func (s *SQLiteStore) buildRecord(ctx context.Context, id, name string, birthday sql.NullString) (*models.Record, error) {
	record, err := models.NewRecord(name, birthday.String)
	if err != nil {
		return nil, fmt.Errorf("stored contact %s is invalid: %w", name, err)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT value FROM phones WHERE contact_id = ? ORDER BY position",
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get phones: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("failed to scan phone: %w", err)
		}
		if err := record.AddPhone(value); err != nil {
			return nil, fmt.Errorf("stored phone for %s is invalid: %w", name, err)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate phones: %w", err)
	}

	return record, nil
}

// birthdayValue maps an optional birthday onto a nullable column value.
func birthdayValue(record *models.Record) any {
	if record.Birthday == nil {
		return nil
	}
	return record.Birthday.String()
}
