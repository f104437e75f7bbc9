package models

import (
	"fmt"
	"time"
)

// Date is a fully resolved calendar date. It always refers to a real day:
// construction goes through NewDate, which rejects values like February 30.
type Date struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Day   int        `json:"day"`
}

// NewDate validates the (year, month, day) triple against the calendar.
func NewDate(year int, month time.Month, day int) (Date, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, fmt.Errorf("no such calendar date: %04d-%02d-%02d", year, int(month), day)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// DateOf truncates a time.Time to its calendar date.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ParseDate parses the canonical YYYY-MM-DD rendering.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// Time returns the midnight instant of the date in UTC.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) String() string {
	return d.Time().Format("2006-01-02")
}

func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

// TimeOfDay is a resolved wall-clock time with no date or timezone component.
type TimeOfDay struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("time out of range: %d:%02d", hour, minute)
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// ParseTimeOfDay parses the canonical 24-hour HH:MM rendering.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time %q: %w", s, err)
	}
	return NewTimeOfDay(hour, minute)
}

// TimeOfDayFromMinutes converts minutes from midnight, e.g. 570 for 09:30.
func TimeOfDayFromMinutes(m int) (TimeOfDay, error) {
	return NewTimeOfDay(m/60, m%60)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Minutes returns minutes from midnight, the unit the scheduling grid works in.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// Slot is one bookable (date, time) unit. Slots are equal iff both fields are.
type Slot struct {
	Date Date      `json:"date"`
	Time TimeOfDay `json:"time"`
}

func (s Slot) String() string {
	return s.Date.String() + " " + s.Time.String()
}

// StartsAt returns the slot's start instant in the given location.
func (s Slot) StartsAt(loc *time.Location) time.Time {
	return time.Date(s.Date.Year, s.Date.Month, s.Date.Day, s.Time.Hour, s.Time.Minute, 0, 0, loc)
}
