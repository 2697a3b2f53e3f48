// Package analytics derives work-hour statistics from a single employee's shifts.
//
// Every function is pure: inputs are never modified, nothing reads the clock
// and nothing performs I/O. Empty input yields zero values, never an error.
package analytics

import (
	"math"

	"github.com/daphos/shift-service/internal/domain"
)

// DefaultFullTimeHours is the weekly baseline utilization is measured against.
const DefaultFullTimeHours = 40.0

const millisPerHour = 3_600_000

// Duration returns the length of a shift in fractional hours.
func Duration(s domain.Shift) float64 {
	return float64(s.End.Sub(s.Start).Milliseconds()) / millisPerHour
}

// TotalHours sums the durations of all shifts.
func TotalHours(shifts []domain.Shift) float64 {
	var total float64
	for _, s := range shifts {
		total += Duration(s)
	}
	return total
}

// ShiftCount returns the number of shifts.
func ShiftCount(shifts []domain.Shift) int {
	return len(shifts)
}

// AverageShiftDuration returns the mean shift length, or 0 for no shifts.
func AverageShiftDuration(shifts []domain.Shift) float64 {
	if len(shifts) == 0 {
		return 0
	}
	return TotalHours(shifts) / float64(len(shifts))
}

// UtilizationPercentage relates worked hours to a full-time baseline, capped at 100.
// A non-positive baseline is replaced by DefaultFullTimeHours.
func UtilizationPercentage(shifts []domain.Shift, fullTimeHours float64) float64 {
	return utilization(TotalHours(shifts), fullTimeHours)
}

func utilization(total, fullTimeHours float64) float64 {
	fullTimeHours = baseline(fullTimeHours)
	pct := total / fullTimeHours * 100
	if pct < 0 {
		return 0
	}
	return math.Min(pct, 100)
}

func baseline(fullTimeHours float64) float64 {
	if fullTimeHours <= 0 || math.IsNaN(fullTimeHours) || math.IsInf(fullTimeHours, 0) {
		return DefaultFullTimeHours
	}
	return fullTimeHours
}

// CapacitySplit divides the full-time baseline into worked and still available hours.
type CapacitySplit struct {
	WorkedHours    float64
	AvailableHours float64
}

// Capacity returns worked hours and the remaining hours up to the baseline (never negative).
func Capacity(shifts []domain.Shift, fullTimeHours float64) CapacitySplit {
	return capacity(TotalHours(shifts), fullTimeHours)
}

func capacity(total, fullTimeHours float64) CapacitySplit {
	return CapacitySplit{
		WorkedHours:    total,
		AvailableHours: math.Max(0, baseline(fullTimeHours)-total),
	}
}

// Round rounds v to the given number of decimal places.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
