// Package calculator implements the date arithmetic behind the upcoming
// birthdays report.
package calculator

import (
	"time"

	"github.com/hmelnych/contactbook/internal/models"
)

// DefaultHorizonDays is the window the birthdays command looks ahead.
const DefaultHorizonDays = 7

// Upcoming is one entry of the upcoming birthdays report.
type Upcoming struct {
	// Name of the contact.
	Name string

	// Date the birthday falls on this time around, formatted DD.MM.YYYY.
	Date string
}

// UpcomingBirthdays reports every record whose birthday falls within
// horizonDays of today, both ends inclusive. A birthday that already passed
// this year is projected onto next year. Records without a birthday are
// skipped. The result keeps the order of records, not chronological order.
//
// A Feb 29 birthday projected onto a non-leap year lands on Mar 1 via date
// normalization.
func UpcomingBirthdays(records []*models.Record, today time.Time, horizonDays int) []Upcoming {
	today = truncateToDay(today)
	end := today.AddDate(0, 0, horizonDays)

	var upcoming []Upcoming
	for _, record := range records {
		if record.Birthday == nil {
			continue
		}
		birthday := record.Birthday.Date()
		next := time.Date(today.Year(), birthday.Month(), birthday.Day(), 0, 0, 0, 0, today.Location())
		if next.Before(today) {
			next = time.Date(today.Year()+1, birthday.Month(), birthday.Day(), 0, 0, 0, 0, today.Location())
		}
		if !next.Before(today) && !next.After(end) {
			upcoming = append(upcoming, Upcoming{
				Name: record.Name.String(),
				Date: next.Format(models.BirthdayFormat),
			})
		}
	}
	return upcoming
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
