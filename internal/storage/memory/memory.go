// Package memory provides the in-memory address book that backs the contact
// service by default. Contents live for the process lifetime only.
package memory

import (
	"context"
	"sync"

	"github.com/hmelnych/contactbook/internal/models"
	"github.com/hmelnych/contactbook/internal/storage"
)

// Ensure AddressBook implements storage.Store
var _ storage.Store = (*AddressBook)(nil)

// AddressBook keeps records in a map keyed by contact name, with a side
// index preserving insertion order. Every method holds the single lock for
// its full duration, so listing never observes a half-applied mutation.
// Records are cloned on the way in and out; the book exclusively owns its
// contents.
type AddressBook struct {
	mu      sync.Mutex
	records map[string]*models.Record
	order   []string
}

// NewAddressBook returns an empty address book.
func NewAddressBook() *AddressBook {
	return &AddressBook{records: make(map[string]*models.Record)}
}

// SaveRecord inserts the record or overwrites the one with the same name.
// An overwritten contact keeps its original position in the listing order.
func (b *AddressBook) SaveRecord(_ context.Context, record *models.Record) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	name := record.Name.String()
	if _, exists := b.records[name]; !exists {
		b.order = append(b.order, name)
	}
	b.records[name] = record.Clone()
	return nil
}

// GetRecord retrieves a record by contact name.
func (b *AddressBook) GetRecord(_ context.Context, name string) (*models.Record, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	record, ok := b.records[name]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return record.Clone(), nil
}

// DeleteRecord removes the record with the given name, reporting whether it
// was present.
func (b *AddressBook) DeleteRecord(_ context.Context, name string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.records[name]; !ok {
		return false, nil
	}
	delete(b.records, name)
	for i, n := range b.order {
		if n == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return true, nil
}

// ListRecords returns all records in insertion order.
func (b *AddressBook) ListRecords(_ context.Context) ([]*models.Record, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	records := make([]*models.Record, 0, len(b.order))
	for _, name := range b.order {
		records = append(records, b.records[name].Clone())
	}
	return records, nil
}

// Close implements storage.Store; the in-memory book holds no resources.
func (b *AddressBook) Close() error { return nil }
