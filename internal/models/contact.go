package models

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// BirthdayFormat is the only accepted layout for birthday input and output:
// zero-padded two-digit day and month, four-digit year.
const BirthdayFormat = "02.01.2006"

var phonePattern = regexp.MustCompile(`^\d{10}$`)

// Name is a contact's display name and its unique key in the address book.
type Name string

// NewName validates that value is non-empty.
func NewName(value string) (Name, error) {
	if value == "" {
		return "", ErrEmptyName
	}
	return Name(value), nil
}

func (n Name) String() string { return string(n) }

// Phone is a validated phone number: exactly 10 ASCII digits. Input is not
// normalized; separators or spaces fail validation.
type Phone string

// NewPhone validates value against the 10-digit rule.
func NewPhone(value string) (Phone, error) {
	if !phonePattern.MatchString(value) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPhone, value)
	}
	return Phone(value), nil
}

func (p Phone) String() string { return string(p) }

// Birthday is a validated calendar date.
type Birthday struct {
	date time.Time
}

// NewBirthday parses value strictly against BirthdayFormat. Impossible dates
// such as 31.02.2020 or 29.02 on a non-leap year fail.
func NewBirthday(value string) (Birthday, error) {
	date, err := time.Parse(BirthdayFormat, value)
	if err != nil {
		return Birthday{}, fmt.Errorf("%w: %q", ErrInvalidBirthday, value)
	}
	return Birthday{date: date}, nil
}

// Date returns the underlying calendar date.
func (b Birthday) Date() time.Time { return b.date }

// String formats the date back as DD.MM.YYYY.
func (b Birthday) String() string { return b.date.Format(BirthdayFormat) }

// Record represents one contact.
type Record struct {
	// Name identifies the contact. Immutable after construction.
	Name Name

	// Phones is the contact's phone numbers in insertion order.
	// Duplicates are allowed.
	Phones []Phone

	// Birthday is the contact's birthday; nil means unknown.
	Birthday *Birthday
}

// NewRecord constructs a record with the given name. An empty birthday
// string means the birthday is unknown; a non-empty one is validated and a
// failure aborts construction.
func NewRecord(name, birthday string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	record := &Record{Name: n}
	if birthday != "" {
		b, err := NewBirthday(birthday)
		if err != nil {
			return nil, err
		}
		record.Birthday = &b
	}
	return record, nil
}

// AddPhone validates value and appends it. Duplicates are not checked.
func (r *Record) AddPhone(value string) error {
	phone, err := NewPhone(value)
	if err != nil {
		return err
	}
	r.Phones = append(r.Phones, phone)
	return nil
}

// RemovePhone removes every phone whose value equals value exactly.
// Removing an absent value is a no-op.
func (r *Record) RemovePhone(value string) {
	kept := r.Phones[:0]
	for _, phone := range r.Phones {
		if phone.String() != value {
			kept = append(kept, phone)
		}
	}
	r.Phones = kept
}

// EditPhone replaces the first phone equal to old with replacement, in
// place. The replacement is validated first, so a malformed replacement
// returns ErrInvalidPhone and leaves the list untouched even when old is
// absent. The bool reports whether old was found.
func (r *Record) EditPhone(old, replacement string) (bool, error) {
	phone, err := NewPhone(replacement)
	if err != nil {
		return false, err
	}
	for i, existing := range r.Phones {
		if existing.String() == old {
			r.Phones[i] = phone
			return true, nil
		}
	}
	return false, nil
}

// FindPhone returns the stored phone equal to value, if any.
func (r *Record) FindPhone(value string) (Phone, bool) {
	for _, phone := range r.Phones {
		if phone.String() == value {
			return phone, true
		}
	}
	return "", false
}

// SetBirthday validates value and overwrites the birthday.
func (r *Record) SetBirthday(value string) error {
	birthday, err := NewBirthday(value)
	if err != nil {
		return err
	}
	r.Birthday = &birthday
	return nil
}

// Clone returns a deep copy. Stores hand out clones so callers never alias
// book-owned records.
func (r *Record) Clone() *Record {
	dup := &Record{Name: r.Name}
	if len(r.Phones) > 0 {
		dup.Phones = append([]Phone(nil), r.Phones...)
	}
	if r.Birthday != nil {
		b := *r.Birthday
		dup.Birthday = &b
	}
	return dup
}

// String renders the record as "name, phones: p1; p2, Birthday: DD.MM.YYYY",
// omitting the birthday part when unknown.
func (r *Record) String() string {
	phones := make([]string, len(r.Phones))
	for i, phone := range r.Phones {
		phones[i] = phone.String()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s, phones: %s", r.Name, strings.Join(phones, "; "))
	if r.Birthday != nil {
		fmt.Fprintf(&sb, ", Birthday: %s", r.Birthday)
	}
	return sb.String()
}
