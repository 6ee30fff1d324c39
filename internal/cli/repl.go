// Package cli implements the interactive command loop. It owns all user-
// facing text: core errors propagate up to exactly one adapter here and
// come out as display messages.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/hmelnych/contactbook/internal/metrics"
	"github.com/hmelnych/contactbook/internal/service"
	"github.com/hmelnych/contactbook/internal/storage"
)

const prompt = "Enter command (add, change, phone, all, add-birthday, show-birthday, birthdays, hello, exit or close): "

// REPL reads commands from in and writes responses to out until the user
// quits or input ends.
type REPL struct {
	contacts *service.ContactService
	in       io.Reader
	out      io.Writer
	now      func() time.Time
}

// New creates a REPL over the given service and streams.
func New(contacts *service.ContactService, in io.Reader, out io.Writer) *REPL {
	return &REPL{contacts: contacts, in: in, out: out, now: time.Now}
}

// Run executes the command loop. It returns when the user enters close or
// exit, input reaches EOF, or reading fails.
func (r *REPL) Run(ctx context.Context) error {
	fmt.Fprintln(r.out, "Welcome to your address book!")

	scanner := bufio.NewScanner(r.in)
	for {
		fmt.Fprint(r.out, prompt)
		if !scanner.Scan() {
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			fmt.Fprintln(r.out, "Enter the command from the list")
			continue
		}

		command, args := parseInput(line)
		metrics.Commands.WithLabelValues(command).Inc()

		if command == "close" || command == "exit" {
			fmt.Fprintln(r.out, "Good bye!")
			return nil
		}
		fmt.Fprintln(r.out, r.dispatch(ctx, command, args))
	}
}

// parseInput splits a line into the command name and its arguments.
func parseInput(line string) (string, []string) {
	fields := strings.Fields(line)
	return fields[0], fields[1:]
}

func (r *REPL) dispatch(ctx context.Context, command string, args []string) string {
	switch command {
	case "hello":
		return "How can I help you?"
	case "add":
		return r.addContact(ctx, args)
	case "change":
		return r.changeContact(ctx, args)
	case "phone":
		return r.showPhone(ctx, args)
	case "all":
		return r.showAllContacts(ctx)
	case "add-birthday":
		return r.addBirthday(ctx, args)
	case "show-birthday":
		return r.showBirthday(ctx, args)
	case "birthdays":
		return r.birthdays(ctx)
	default:
		return "Enter the command from the list"
	}
}

// addContact creates the contact if it does not exist yet, then appends the
// phone. A contact created in the same command stays in the book even when
// the phone turns out to be invalid.
func (r *REPL) addContact(ctx context.Context, args []string) string {
	if len(args) < 2 {
		return "Error: Please provide both name and phone number."
	}
	name, phone := args[0], args[1]

	message := "Contact updated."
	_, err := r.contacts.Lookup(ctx, name)
	if errors.Is(err, storage.ErrNotFound) {
		if _, err := r.contacts.CreateContact(ctx, name, ""); err != nil {
			return errorMessage(err)
		}
		message = "Contact added."
	} else if err != nil {
		return errorMessage(err)
	}

	if err := r.contacts.AddPhone(ctx, name, phone); err != nil {
		return errorMessage(err)
	}
	return message
}

func (r *REPL) changeContact(ctx context.Context, args []string) string {
	if len(args) < 3 {
		return "Error: Please provide contact name, old phone number, and new phone number."
	}
	name, oldPhone, newPhone := args[0], args[1], args[2]

	found, err := r.contacts.EditPhone(ctx, name, oldPhone, newPhone)
	if err != nil {
		return errorMessage(err)
	}
	if !found {
		return fmt.Sprintf("No phone number %s found for %s.", oldPhone, name)
	}
	return fmt.Sprintf("Phone number updated for %s from %s to %s.", name, oldPhone, newPhone)
}

func (r *REPL) showPhone(ctx context.Context, args []string) string {
	if len(args) < 1 {
		return "Error: Please specify the contact name."
	}
	name := args[0]

	record, err := r.contacts.Lookup(ctx, name)
	if err != nil {
		return errorMessage(err)
	}
	if len(record.Phones) == 0 {
		return fmt.Sprintf("No phone numbers found for %s.", name)
	}

	phones := make([]string, len(record.Phones))
	for i, phone := range record.Phones {
		phones[i] = phone.String()
	}
	return fmt.Sprintf("%s's phone numbers: %s", name, strings.Join(phones, ", "))
}

func (r *REPL) showAllContacts(ctx context.Context) string {
	records, err := r.contacts.ListContacts(ctx)
	if err != nil {
		return errorMessage(err)
	}
	if len(records) == 0 {
		return "The address book is empty."
	}

	lines := make([]string, len(records))
	for i, record := range records {
		phones := make([]string, len(record.Phones))
		for j, phone := range record.Phones {
			phones[j] = phone.String()
		}
		lines[i] = fmt.Sprintf("%s: %s", record.Name, strings.Join(phones, ", "))
	}
	return strings.Join(lines, "\n")
}

func (r *REPL) addBirthday(ctx context.Context, args []string) string {
	if len(args) < 2 {
		return "Error: Please provide both name and birthday."
	}
	name, birthday := args[0], args[1]

	if err := r.contacts.SetBirthday(ctx, name, birthday); err != nil {
		return errorMessage(err)
	}
	return fmt.Sprintf("Birthday %s has been added to %s.", birthday, name)
}

func (r *REPL) showBirthday(ctx context.Context, args []string) string {
	if len(args) < 1 {
		return "Error: Please specify the contact name."
	}
	name := args[0]

	record, err := r.contacts.Lookup(ctx, name)
	if err != nil {
		return errorMessage(err)
	}
	if record.Birthday == nil {
		return "Birthday not found."
	}
	return fmt.Sprintf("%s's birthday is on %s.", name, record.Birthday)
}

func (r *REPL) birthdays(ctx context.Context) string {
	upcoming, err := r.contacts.UpcomingBirthdays(ctx, r.now())
	if err != nil {
		return errorMessage(err)
	}
	if len(upcoming) == 0 {
		return "No upcoming birthdays."
	}

	lines := make([]string, len(upcoming))
	for i, entry := range upcoming {
		lines[i] = fmt.Sprintf("%s's birthday on %s", entry.Name, entry.Date)
	}
	return strings.Join(lines, "\n")
}

// errorMessage is the single place core errors become display text.
func errorMessage(err error) string {
	if errors.Is(err, storage.ErrNotFound) {
		return "Contact not found."
	}
	return fmt.Sprintf("Error: %v", err)
}
