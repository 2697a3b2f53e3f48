package analytics

import "github.com/daphos/shift-service/internal/domain"

// TypeCounts holds the number of shifts per start-hour band.
type TypeCounts struct {
	Morning   int
	Afternoon int
	Night     int
}

// TypeSlice is one non-empty band of a distribution.
type TypeSlice struct {
	Type  domain.ShiftType
	Count int
}

// Total returns the number of classified shifts.
func (c TypeCounts) Total() int {
	return c.Morning + c.Afternoon + c.Night
}

// Count returns the count of a single band.
func (c TypeCounts) Count(t domain.ShiftType) int {
	switch t {
	case domain.ShiftTypeMorning:
		return c.Morning
	case domain.ShiftTypeAfternoon:
		return c.Afternoon
	case domain.ShiftTypeNight:
		return c.Night
	}
	return 0
}

// Slices projects the counts for display, omitting empty bands.
func (c TypeCounts) Slices() []TypeSlice {
	out := make([]TypeSlice, 0, len(domain.ShiftTypes))
	for _, t := range domain.ShiftTypes {
		if n := c.Count(t); n > 0 {
			out = append(out, TypeSlice{Type: t, Count: n})
		}
	}
	return out
}

func (c *TypeCounts) add(t domain.ShiftType) {
	switch t {
	case domain.ShiftTypeMorning:
		c.Morning++
	case domain.ShiftTypeAfternoon:
		c.Afternoon++
	default:
		c.Night++
	}
}

// ShiftTypeDistribution counts shifts per band of their start hour.
func ShiftTypeDistribution(shifts []domain.Shift) TypeCounts {
	var counts TypeCounts
	for _, s := range shifts {
		counts.add(s.Type())
	}
	return counts
}
