// Package storage provides abstractions for contact storage.
package storage

import (
	"context"
	"errors"

	"github.com/hmelnych/contactbook/internal/models"
)

// ErrNotFound is returned by lookups targeting a contact that is not in the
// store. It is an expected condition callers branch on, not a failure.
var ErrNotFound = errors.New("contact not found")

// Store defines the interface for contact storage operations.
// The service layer works against this abstraction so backends
// (in-memory, SQLite) can be swapped without changing it.
type Store interface {
	// SaveRecord inserts the record, or overwrites the record carrying the
	// same name wholesale. An overwritten contact keeps its original
	// insertion position in the listing order.
	SaveRecord(ctx context.Context, record *models.Record) error

	// GetRecord retrieves a record by contact name.
	// Returns ErrNotFound if no such contact exists.
	GetRecord(ctx context.Context, name string) (*models.Record, error)

	// DeleteRecord removes the record with the given name. The bool reports
	// whether a record was actually removed; an absent name is not an error.
	DeleteRecord(ctx context.Context, name string) (bool, error)

	// ListRecords returns all records in insertion order.
	ListRecords(ctx context.Context) ([]*models.Record, error)

	// Close releases any resources held by the store.
	Close() error
}
