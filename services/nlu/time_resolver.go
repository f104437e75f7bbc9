// File: services/nlu/time_resolver.go
package nlu

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"schedly/models"
)

var (
	twelveHourPattern     = regexp.MustCompile(`\b(\d{1,2}):(\d{2})\s*(am|pm)\b`)
	twelveHourBarePattern = regexp.MustCompile(`\b(\d{1,2})\s*(am|pm)\b`)
	twentyFourPattern     = regexp.MustCompile(`\b(\d{1,2}):(\d{2})\b`)
)

// TimeResolver maps a time expression to a wall-clock time. Accepted forms:
// "H am/pm", "H:MM am/pm" (case-insensitive, optional space) and bare 24-hour
// "HH:MM". Hour 12 is special-cased: 12am is midnight, 12pm is noon.
type TimeResolver struct{}

func NewTimeResolver() *TimeResolver {
	return &TimeResolver{}
}

func (r *TimeResolver) Resolve(expr string) (models.TimeOfDay, error) {
	expr = strings.ToLower(strings.TrimSpace(expr))
	if expr == "" {
		return models.TimeOfDay{}, fmt.Errorf("%w: empty expression", ErrUnparseableTime)
	}

	if strings.Contains(expr, "am") || strings.Contains(expr, "pm") {
		if m := twelveHourPattern.FindStringSubmatch(expr); m != nil {
			return normalizeTwelveHour(m[1], m[2], m[3])
		}
		if m := twelveHourBarePattern.FindStringSubmatch(expr); m != nil {
			return normalizeTwelveHour(m[1], "00", m[2])
		}
		return models.TimeOfDay{}, fmt.Errorf("%w: %q", ErrUnparseableTime, expr)
	}

	if m := twentyFourPattern.FindStringSubmatch(expr); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		t, err := models.NewTimeOfDay(hour, minute)
		if err != nil {
			return models.TimeOfDay{}, fmt.Errorf("%w: %q", ErrUnparseableTime, expr)
		}
		return t, nil
	}

	return models.TimeOfDay{}, fmt.Errorf("%w: %q", ErrUnparseableTime, expr)
}

func normalizeTwelveHour(hourStr, minuteStr, period string) (models.TimeOfDay, error) {
	hour, _ := strconv.Atoi(hourStr)
	minute, _ := strconv.Atoi(minuteStr)

	if period == "pm" && hour != 12 {
		hour += 12
	} else if period == "am" && hour == 12 {
		hour = 0
	}

	t, err := models.NewTimeOfDay(hour, minute)
	if err != nil {
		return models.TimeOfDay{}, fmt.Errorf("%w: %d:%02d %s", ErrUnparseableTime, hour, minute, period)
	}
	return t, nil
}
