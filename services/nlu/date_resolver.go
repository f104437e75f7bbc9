// File: services/nlu/date_resolver.go
package nlu

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"schedly/models"
)

var weekdayNames = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// weekdayOrder keeps matching deterministic; map iteration order is not.
var weekdayOrder = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

var monthNames = map[string]time.Month{
	"january":   time.January,
	"february":  time.February,
	"march":     time.March,
	"april":     time.April,
	"may":       time.May,
	"june":      time.June,
	"july":      time.July,
	"august":    time.August,
	"september": time.September,
	"october":   time.October,
	"november":  time.November,
	"december":  time.December,
}

var monthOrder = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

var dayNumberPattern = regexp.MustCompile(`\b(\d{1,2})\b`)

// DateResolver maps a date expression to a concrete calendar date anchored to
// a reference date. Resolution rules, in priority order:
//
//  1. the canonical YYYY-MM-DD form;
//  2. the literals "today" and "tomorrow";
//  3. a weekday name, where the bare name means the next occurrence strictly
//     after the reference (so "friday" said on a Friday is next week's),
//     "this <weekday>" stays inside the current Monday-started week even when
//     that day has passed, and "next <weekday>" always lands in the following
//     calendar week;
//  4. a month name plus day number, defaulting to the reference year and
//     rolling to the next year when the result would lie strictly in the past.
//
// Invalid days of month ("february 30") fail; they are never clamped.
type DateResolver struct{}

func NewDateResolver() *DateResolver {
	return &DateResolver{}
}

func (r *DateResolver) Resolve(expr string, ref models.Date) (models.Date, error) {
	expr = strings.ToLower(strings.TrimSpace(expr))
	if expr == "" {
		return models.Date{}, fmt.Errorf("%w: empty expression", ErrUnparseableDate)
	}

	if d, err := models.ParseDate(expr); err == nil {
		return d, nil
	}

	if strings.Contains(expr, "today") {
		return ref, nil
	}
	if strings.Contains(expr, "tomorrow") {
		return ref.AddDays(1), nil
	}

	for _, name := range weekdayOrder {
		if strings.Contains(expr, name) {
			return resolveWeekday(expr, weekdayNames[name], ref), nil
		}
	}

	for _, name := range monthOrder {
		if strings.Contains(expr, name) {
			return resolveMonthDay(expr, monthNames[name], ref)
		}
	}

	return models.Date{}, fmt.Errorf("%w: %q", ErrUnparseableDate, expr)
}

// mondayIndex maps a weekday onto 0..6 with Monday first, the convention that
// defines where one calendar week ends and the next begins.
func mondayIndex(w time.Weekday) int {
	return (int(w) + 6) % 7
}

func resolveWeekday(expr string, target time.Weekday, ref models.Date) models.Date {
	cur := mondayIndex(ref.Weekday())
	want := mondayIndex(target)

	switch {
	case strings.Contains(expr, "next"):
		// First day of the following week, then walk to the target.
		return ref.AddDays(7 - cur + want)
	case strings.Contains(expr, "this"):
		// Occurrence within the current week, even if already past.
		return ref.AddDays(want - cur)
	default:
		// Next occurrence strictly after the reference date.
		delta := want - cur
		if delta <= 0 {
			delta += 7
		}
		return ref.AddDays(delta)
	}
}

func resolveMonthDay(expr string, month time.Month, ref models.Date) (models.Date, error) {
	m := dayNumberPattern.FindStringSubmatch(expr)
	if m == nil {
		return models.Date{}, fmt.Errorf("%w: no day number in %q", ErrUnparseableDate, expr)
	}
	day, err := strconv.Atoi(m[1])
	if err != nil {
		return models.Date{}, fmt.Errorf("%w: %q", ErrUnparseableDate, expr)
	}

	d, err := models.NewDate(ref.Year, month, day)
	if err != nil {
		return models.Date{}, fmt.Errorf("%w: %q", ErrUnparseableDate, expr)
	}
	if d.Before(ref) {
		d, err = models.NewDate(ref.Year+1, month, day)
		if err != nil {
			return models.Date{}, fmt.Errorf("%w: %q", ErrUnparseableDate, expr)
		}
	}
	return d, nil
}
