package analytics

import (
	"time"

	"github.com/daphos/shift-service/internal/domain"
)

// Options tune a Summary. The zero value uses the defaults.
type Options struct {
	FullTimeHours float64
	DayLabel      DayLabeler
}

// Summary bundles every metric shown for one employee.
type Summary struct {
	TotalHours           float64
	ShiftCount           int
	AverageShiftDuration float64
	FullTimeHours        float64
	Utilization          float64
	Capacity             CapacitySplit
	Daily                DailyBreakdown
	Types                TypeCounts
	Week                 Week
}

// Summarize computes the metric bundle for shifts relative to the reference time ref.
func Summarize(shifts []domain.Shift, ref time.Time, opts Options) Summary {
	full := baseline(opts.FullTimeHours)
	total := TotalHours(shifts)

	avg := 0.0
	if len(shifts) > 0 {
		avg = total / float64(len(shifts))
	}

	return Summary{
		TotalHours:           total,
		ShiftCount:           len(shifts),
		AverageShiftDuration: avg,
		FullTimeHours:        full,
		Utilization:          utilization(total, full),
		Capacity:             capacity(total, full),
		Daily:                DailyHoursBreakdown(shifts, opts.DayLabel),
		Types:                ShiftTypeDistribution(shifts),
		Week:                 WeeklyCalendarView(shifts, ref),
	}
}
