package calculator

import (
	"reflect"
	"testing"
	"time"

	"github.com/hmelnych/contactbook/internal/models"
)

func mustRecord(t *testing.T, name, birthday string) *models.Record {
	t.Helper()
	record, err := models.NewRecord(name, birthday)
	if err != nil {
		t.Fatalf("record %s: %v", name, err)
	}
	return record
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestUpcomingBirthdays(t *testing.T) {
	tests := []struct {
		name    string
		records []struct{ name, birthday string }
		today   time.Time
		want    []Upcoming
	}{
		{
			name: "birthday within window",
			records: []struct{ name, birthday string }{
				{"John", "12.06.1990"},
			},
			today: date(2024, time.June, 10),
			want:  []Upcoming{{Name: "John", Date: "12.06.2024"}},
		},
		{
			name: "birthday passed this year is excluded",
			records: []struct{ name, birthday string }{
				{"John", "05.06.1990"},
			},
			today: date(2024, time.June, 10),
			want:  nil,
		},
		{
			name: "year rollover",
			records: []struct{ name, birthday string }{
				{"John", "01.01.1990"},
			},
			today: date(2024, time.December, 28),
			want:  []Upcoming{{Name: "John", Date: "01.01.2025"}},
		},
		{
			name: "birthday today is included",
			records: []struct{ name, birthday string }{
				{"John", "10.06.1990"},
			},
			today: date(2024, time.June, 10),
			want:  []Upcoming{{Name: "John", Date: "10.06.2024"}},
		},
		{
			name: "birthday exactly seven days out is included",
			records: []struct{ name, birthday string }{
				{"John", "17.06.1990"},
			},
			today: date(2024, time.June, 10),
			want:  []Upcoming{{Name: "John", Date: "17.06.2024"}},
		},
		{
			name: "birthday eight days out is excluded",
			records: []struct{ name, birthday string }{
				{"John", "18.06.1990"},
			},
			today: date(2024, time.June, 10),
			want:  nil,
		},
		{
			name: "record order preserved over date order",
			records: []struct{ name, birthday string }{
				{"Late", "16.06.1985"},
				{"Early", "11.06.1985"},
			},
			today: date(2024, time.June, 10),
			want: []Upcoming{
				{Name: "Late", Date: "16.06.2024"},
				{Name: "Early", Date: "11.06.2024"},
			},
		},
		{
			name: "records without birthday are skipped",
			records: []struct{ name, birthday string }{
				{"NoBirthday", ""},
				{"John", "12.06.1990"},
			},
			today: date(2024, time.June, 10),
			want:  []Upcoming{{Name: "John", Date: "12.06.2024"}},
		},
		{
			name: "leap day birthday on non-leap year lands on March 1",
			records: []struct{ name, birthday string }{
				{"Leap", "29.02.2020"},
			},
			today: date(2025, time.February, 25),
			want:  []Upcoming{{Name: "Leap", Date: "01.03.2025"}},
		},
		{
			name: "leap day birthday on leap year stays on February 29",
			records: []struct{ name, birthday string }{
				{"Leap", "29.02.2020"},
			},
			today: date(2024, time.February, 25),
			want:  []Upcoming{{Name: "Leap", Date: "29.02.2024"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var records []*models.Record
			for _, r := range tt.records {
				records = append(records, mustRecord(t, r.name, r.birthday))
			}

			got := UpcomingBirthdays(records, tt.today, DefaultHorizonDays)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("UpcomingBirthdays() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUpcomingBirthdaysIgnoresTimeOfDay(t *testing.T) {
	records := []*models.Record{mustRecord(t, "John", "10.06.1990")}

	// A birthday "today" must count even when called late in the day.
	today := time.Date(2024, time.June, 10, 23, 45, 0, 0, time.UTC)
	got := UpcomingBirthdays(records, today, DefaultHorizonDays)
	want := []Upcoming{{Name: "John", Date: "10.06.2024"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("UpcomingBirthdays() = %v, want %v", got, want)
	}
}
