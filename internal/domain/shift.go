package domain

import (
	"errors"
	"time"
)

// ErrInvalidShiftBounds is returned when a shift does not end strictly after it starts.
var ErrInvalidShiftBounds = errors.New("shift end must be after start")

// ShiftType is the coarse classification of a shift by its start hour.
type ShiftType string

const (
	ShiftTypeMorning   ShiftType = "morning"
	ShiftTypeAfternoon ShiftType = "afternoon"
	ShiftTypeNight     ShiftType = "night"
)

// ShiftTypes lists the bands in display order.
var ShiftTypes = []ShiftType{ShiftTypeMorning, ShiftTypeAfternoon, ShiftTypeNight}

// Shift is a time-bounded work assignment for one employee.
// Start and End are wall-clock values, see WallClock.
type Shift struct {
	ID         string
	EmployeeID string
	Start      time.Time
	End        time.Time
	Note       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Type classifies the shift by the hour of its start.
func (s Shift) Type() ShiftType {
	return ClassifyStartHour(s.Start.Hour())
}

// ClassifyStartHour maps an hour of day to its band:
// morning [6,14), afternoon [14,22), night otherwise.
func ClassifyStartHour(hour int) ShiftType {
	switch {
	case hour >= 6 && hour < 14:
		return ShiftTypeMorning
	case hour >= 14 && hour < 22:
		return ShiftTypeAfternoon
	default:
		return ShiftTypeNight
	}
}

// ValidateShiftBounds rejects shifts whose end is not strictly after start.
func ValidateShiftBounds(start, end time.Time) error {
	if !end.After(start) {
		return ErrInvalidShiftBounds
	}
	return nil
}
