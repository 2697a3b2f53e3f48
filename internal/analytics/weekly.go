package analytics

import (
	"sort"
	"time"

	"github.com/daphos/shift-service/internal/domain"
)

// WeekShift is a shift placed in the weekly calendar.
type WeekShift struct {
	Shift domain.Shift
	Hours float64
	Type  domain.ShiftType
}

// WeekDay is one column of the weekly calendar.
type WeekDay struct {
	Date    time.Time
	IsToday bool
	Shifts  []WeekShift
}

// Week holds Monday through Sunday.
type Week [7]WeekDay

// Hours sums the hours of every shift in the week.
func (w Week) Hours() float64 {
	total := 0.0
	for _, day := range w {
		for _, s := range day.Shifts {
			total += s.Hours
		}
	}
	return total
}

// WeekStart returns midnight of the Monday of the ISO week containing ref.
func WeekStart(ref time.Time) time.Time {
	day := domain.DateOnly(ref)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// WeeklyCalendarView buckets shifts into the seven days of the week containing ref.
// A shift lands on the calendar day its start falls on; shifts outside the week are ignored.
func WeeklyCalendarView(shifts []domain.Shift, ref time.Time) Week {
	var week Week
	monday := WeekStart(ref)
	for i := range week {
		day := monday.AddDate(0, 0, i)
		week[i] = WeekDay{
			Date:    day,
			IsToday: domain.SameDay(day, ref),
			Shifts:  []WeekShift{},
		}
	}

	for _, s := range shifts {
		for i := range week {
			if domain.SameDay(s.Start, week[i].Date) {
				week[i].Shifts = append(week[i].Shifts, WeekShift{
					Shift: s,
					Hours: Duration(s),
					Type:  s.Type(),
				})
				break
			}
		}
	}

	for i := range week {
		day := week[i].Shifts
		sort.SliceStable(day, func(a, b int) bool { return day[a].Shift.Start.Before(day[b].Shift.Start) })
	}
	return week
}
