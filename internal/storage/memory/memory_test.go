package memory

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/hmelnych/contactbook/internal/models"
	"github.com/hmelnych/contactbook/internal/storage"
)

func mustRecord(t *testing.T, name, birthday string, phones ...string) *models.Record {
	t.Helper()
	record, err := models.NewRecord(name, birthday)
	if err != nil {
		t.Fatalf("record %s: %v", name, err)
	}
	for _, phone := range phones {
		if err := record.AddPhone(phone); err != nil {
			t.Fatalf("phone %s: %v", phone, err)
		}
	}
	return record
}

func TestSaveAndGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	book := NewAddressBook()

	saved := mustRecord(t, "John", "12.06.1990", "0501234567", "0661112233")
	if err := book.SaveRecord(ctx, saved); err != nil {
		t.Fatalf("SaveRecord: %v", err)
	}

	got, err := book.GetRecord(ctx, "John")
	if err != nil {
		t.Fatalf("GetRecord: %v", err)
	}
	if !reflect.DeepEqual(got, saved) {
		t.Errorf("GetRecord = %v, want %v", got, saved)
	}
}

func TestGetRecordNotFound(t *testing.T) {
	book := NewAddressBook()
	if _, err := book.GetRecord(context.Background(), "Missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("GetRecord absent error = %v, want ErrNotFound", err)
	}
}

func TestSaveOverwritesByName(t *testing.T) {
	ctx := context.Background()
	book := NewAddressBook()

	if err := book.SaveRecord(ctx, mustRecord(t, "John", "", "0501234567")); err != nil {
		t.Fatal(err)
	}
	if err := book.SaveRecord(ctx, mustRecord(t, "Jane", "", "0671234567")); err != nil {
		t.Fatal(err)
	}
	// Overwrite replaces the record wholesale, no merge.
	if err := book.SaveRecord(ctx, mustRecord(t, "John", "01.01.1990", "0999999999")); err != nil {
		t.Fatal(err)
	}

	got, err := book.GetRecord(ctx, "John")
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Phones) != 1 || got.Phones[0].String() != "0999999999" {
		t.Errorf("phones after overwrite = %v, want [0999999999]", got.Phones)
	}
	if got.Birthday == nil || got.Birthday.String() != "01.01.1990" {
		t.Errorf("birthday after overwrite = %v, want 01.01.1990", got.Birthday)
	}

	// The overwritten contact keeps its original position.
	records, err := book.ListRecords(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 || records[0].Name != "John" || records[1].Name != "Jane" {
		t.Errorf("listing order after overwrite = %v, want [John Jane]", records)
	}
}

func TestDeleteRecord(t *testing.T) {
	ctx := context.Background()
	book := NewAddressBook()

	if err := book.SaveRecord(ctx, mustRecord(t, "John", "")); err != nil {
		t.Fatal(err)
	}

	found, err := book.DeleteRecord(ctx, "Missing")
	if err != nil || found {
		t.Errorf("DeleteRecord absent = (%v, %v), want (false, nil)", found, err)
	}

	found, err = book.DeleteRecord(ctx, "John")
	if err != nil || !found {
		t.Errorf("DeleteRecord present = (%v, %v), want (true, nil)", found, err)
	}
	if _, err := book.GetRecord(ctx, "John"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("record still retrievable after delete: %v", err)
	}

	records, err := book.ListRecords(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Errorf("listing after delete = %v, want empty", records)
	}
}

func TestListRecordsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	book := NewAddressBook()

	names := []string{"Zoe", "Adam", "Mary"}
	for _, name := range names {
		if err := book.SaveRecord(ctx, mustRecord(t, name, "")); err != nil {
			t.Fatal(err)
		}
	}

	records, err := book.ListRecords(ctx)
	if err != nil {
		t.Fatal(err)
	}
	for i, name := range names {
		if records[i].Name.String() != name {
			t.Fatalf("listing = %v, want insertion order %v", records, names)
		}
	}
}

func TestBookOwnsItsRecords(t *testing.T) {
	ctx := context.Background()
	book := NewAddressBook()

	original := mustRecord(t, "John", "", "0501234567")
	if err := book.SaveRecord(ctx, original); err != nil {
		t.Fatal(err)
	}

	// Mutating the caller's record after saving must not reach the book.
	if err := original.AddPhone("0660000000"); err != nil {
		t.Fatal(err)
	}

	got, err := book.GetRecord(ctx, "John")
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Phones) != 1 {
		t.Errorf("stored record aliased caller state: %v", got.Phones)
	}

	// Mutating a retrieved record must not reach the book either.
	got.RemovePhone("0501234567")
	again, err := book.GetRecord(ctx, "John")
	if err != nil {
		t.Fatal(err)
	}
	if len(again.Phones) != 1 {
		t.Errorf("stored record aliased retrieved copy: %v", again.Phones)
	}
}
