package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/daphos/shift-service/internal/domain"
)

// DayLabeler renders the display label of a calendar day.
type DayLabeler func(day time.Time) string

var germanWeekdays = [...]string{"So.", "Mo.", "Di.", "Mi.", "Do.", "Fr.", "Sa."}

// GermanDayLabel formats a day as weekday abbreviation plus day and month, e.g. "Mo., 10.11.".
func GermanDayLabel(day time.Time) string {
	return fmt.Sprintf("%s, %02d.%02d.", germanWeekdays[day.Weekday()], day.Day(), int(day.Month()))
}

// DayHours is the worked time attributed to one calendar day.
type DayHours struct {
	Date       time.Time
	Label      string
	ExactHours float64
	// Hours is ExactHours rounded to one decimal for display.
	Hours float64
}

// DailyBreakdown lists days in ascending date order.
type DailyBreakdown []DayHours

// Total sums the exact hours of every day.
func (b DailyBreakdown) Total() float64 {
	var total float64
	for _, d := range b {
		total += d.ExactHours
	}
	return total
}

// LastDays returns the trailing n days of the breakdown.
func (b DailyBreakdown) LastDays(n int) DailyBreakdown {
	if n <= 0 {
		return DailyBreakdown{}
	}
	if n >= len(b) {
		return b
	}
	return b[len(b)-n:]
}

// DailyHoursBreakdown groups shifts by the calendar day they start on.
// A shift crossing midnight counts entirely towards its start day.
// Days are ordered by date, never by label. A nil labeler uses GermanDayLabel.
func DailyHoursBreakdown(shifts []domain.Shift, labeler DayLabeler) DailyBreakdown {
	if labeler == nil {
		labeler = GermanDayLabel
	}

	type dayKey struct {
		year  int
		month time.Month
		day   int
	}
	days := make(map[dayKey]time.Time, len(shifts))
	hours := make(map[dayKey]float64, len(shifts))
	for _, s := range shifts {
		y, m, d := s.Start.Date()
		key := dayKey{y, m, d}
		if _, ok := days[key]; !ok {
			days[key] = domain.DateOnly(s.Start)
		}
		hours[key] += Duration(s)
	}

	out := make(DailyBreakdown, 0, len(days))
	for key, day := range days {
		out = append(out, DayHours{
			Date:       day,
			Label:      labeler(day),
			ExactHours: hours[key],
			Hours:      Round(hours[key], 1),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}
