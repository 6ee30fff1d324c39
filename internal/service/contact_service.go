// Package service exposes the contact operations the command layer calls
// into. Validation errors propagate to the caller untouched; not-found
// conditions surface as storage.ErrNotFound or a bool, never a panic.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/hmelnych/contactbook/internal/calculator"
	"github.com/hmelnych/contactbook/internal/metrics"
	"github.com/hmelnych/contactbook/internal/models"
	"github.com/hmelnych/contactbook/internal/storage"
)

// ContactService implements the operations behind the REPL commands on top
// of a storage backend.
type ContactService struct {
	store storage.Store
}

// NewContactService creates a ContactService with the given storage backend.
func NewContactService(store storage.Store) *ContactService {
	return &ContactService{store: store}
}

// CreateContact validates the name and optional birthday ("" means unknown)
// and stores the record, overwriting any record with the same name.
func (s *ContactService) CreateContact(ctx context.Context, name, birthday string) (*models.Record, error) {
	record, err := models.NewRecord(name, birthday)
	if err != nil {
		countValidationFailure(err)
		return nil, err
	}
	if err := s.store.SaveRecord(ctx, record); err != nil {
		slog.Error("CreateContact failed", "name", name, "error", err)
		return nil, err
	}
	slog.Debug("contact created", "name", name, "has_birthday", record.Birthday != nil)
	return record, nil
}

// AddPhone validates the phone and appends it to the named contact.
func (s *ContactService) AddPhone(ctx context.Context, name, phone string) error {
	record, err := s.store.GetRecord(ctx, name)
	if err != nil {
		return err
	}
	if err := record.AddPhone(phone); err != nil {
		countValidationFailure(err)
		return err
	}
	if err := s.store.SaveRecord(ctx, record); err != nil {
		slog.Error("AddPhone failed", "name", name, "error", err)
		return err
	}
	slog.Debug("phone added", "name", name)
	return nil
}

// EditPhone replaces the first phone equal to old on the named contact. The
// bool reports whether old was found; a malformed replacement returns
// models.ErrInvalidPhone without touching the contact.
func (s *ContactService) EditPhone(ctx context.Context, name, old, replacement string) (bool, error) {
	record, err := s.store.GetRecord(ctx, name)
	if err != nil {
		return false, err
	}
	found, err := record.EditPhone(old, replacement)
	if err != nil {
		countValidationFailure(err)
		return false, err
	}
	if !found {
		return false, nil
	}
	if err := s.store.SaveRecord(ctx, record); err != nil {
		slog.Error("EditPhone failed", "name", name, "error", err)
		return false, err
	}
	slog.Debug("phone edited", "name", name)
	return true, nil
}

// RemovePhone removes every phone equal to value from the named contact.
// An absent phone value is a no-op.
func (s *ContactService) RemovePhone(ctx context.Context, name, value string) error {
	record, err := s.store.GetRecord(ctx, name)
	if err != nil {
		return err
	}
	record.RemovePhone(value)
	if err := s.store.SaveRecord(ctx, record); err != nil {
		slog.Error("RemovePhone failed", "name", name, "error", err)
		return err
	}
	slog.Debug("phone removed", "name", name)
	return nil
}

// FindPhone reports whether the named contact holds the exact phone value.
func (s *ContactService) FindPhone(ctx context.Context, name, value string) (models.Phone, bool, error) {
	record, err := s.store.GetRecord(ctx, name)
	if err != nil {
		return "", false, err
	}
	phone, ok := record.FindPhone(value)
	return phone, ok, nil
}

// SetBirthday validates the birthday and writes it onto the named contact,
// overwriting any previous value.
func (s *ContactService) SetBirthday(ctx context.Context, name, birthday string) error {
	record, err := s.store.GetRecord(ctx, name)
	if err != nil {
		return err
	}
	if err := record.SetBirthday(birthday); err != nil {
		countValidationFailure(err)
		return err
	}
	if err := s.store.SaveRecord(ctx, record); err != nil {
		slog.Error("SetBirthday failed", "name", name, "error", err)
		return err
	}
	slog.Debug("birthday set", "name", name)
	return nil
}

// Lookup retrieves the named contact. Returns storage.ErrNotFound when
// absent.
func (s *ContactService) Lookup(ctx context.Context, name string) (*models.Record, error) {
	return s.store.GetRecord(ctx, name)
}

// Delete removes the named contact, reporting whether it existed.
func (s *ContactService) Delete(ctx context.Context, name string) (bool, error) {
	found, err := s.store.DeleteRecord(ctx, name)
	if err != nil {
		slog.Error("Delete failed", "name", name, "error", err)
		return false, err
	}
	slog.Debug("contact deleted", "name", name, "found", found)
	return found, nil
}

// ListContacts returns all contacts in insertion order.
func (s *ContactService) ListContacts(ctx context.Context) ([]*models.Record, error) {
	return s.store.ListRecords(ctx)
}

// UpcomingBirthdays reports contacts whose birthday falls within the default
// 7-day window of today, in insertion order.
func (s *ContactService) UpcomingBirthdays(ctx context.Context, today time.Time) ([]calculator.Upcoming, error) {
	records, err := s.store.ListRecords(ctx)
	if err != nil {
		slog.Error("UpcomingBirthdays failed", "error", err)
		return nil, err
	}
	return calculator.UpcomingBirthdays(records, today, calculator.DefaultHorizonDays), nil
}

// countValidationFailure attributes a rejected value to its field kind.
func countValidationFailure(err error) {
	switch {
	case errors.Is(err, models.ErrInvalidPhone):
		metrics.ValidationFailures.WithLabelValues("phone").Inc()
	case errors.Is(err, models.ErrInvalidBirthday):
		metrics.ValidationFailures.WithLabelValues("birthday").Inc()
	case errors.Is(err, models.ErrEmptyName):
		metrics.ValidationFailures.WithLabelValues("name").Inc()
	}
}
