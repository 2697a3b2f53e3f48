package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daphos/shift-service/internal/domain"
)

func at(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := domain.ParseLocalTime(value)
	require.NoError(t, err)
	return ts
}

func shift(t *testing.T, id, start, end string) domain.Shift {
	t.Helper()
	return domain.Shift{ID: id, EmployeeID: "1", Start: at(t, start), End: at(t, end)}
}

func TestEmptyInputYieldsZeroMetrics(t *testing.T) {
	var shifts []domain.Shift

	assert.Zero(t, TotalHours(shifts))
	assert.Zero(t, ShiftCount(shifts))
	assert.Zero(t, AverageShiftDuration(shifts))
	assert.Zero(t, UtilizationPercentage(shifts, DefaultFullTimeHours))
	assert.Empty(t, DailyHoursBreakdown(shifts, nil))
	assert.Equal(t, TypeCounts{}, ShiftTypeDistribution(shifts))
	assert.Empty(t, ShiftTypeDistribution(shifts).Slices())
}

func TestSingleMorningShift(t *testing.T) {
	shifts := []domain.Shift{shift(t, "s1", "2025-11-10T06:00", "2025-11-10T14:00")}

	assert.Equal(t, 8.0, Duration(shifts[0]))
	assert.Equal(t, 8.0, TotalHours(shifts))
	assert.Equal(t, 1, ShiftCount(shifts))
	assert.Equal(t, 20.0, UtilizationPercentage(shifts, DefaultFullTimeHours))
	assert.Equal(t, TypeCounts{Morning: 1}, ShiftTypeDistribution(shifts))
}

func TestFractionalDuration(t *testing.T) {
	s := shift(t, "s1", "2025-11-10T08:00", "2025-11-10T12:30")
	assert.Equal(t, 4.5, Duration(s))
}

func TestMorningAndAfternoonSameDay(t *testing.T) {
	shifts := []domain.Shift{
		shift(t, "s1", "2025-11-10T06:00", "2025-11-10T14:00"),
		shift(t, "s2", "2025-11-10T14:00", "2025-11-10T22:00"),
	}

	assert.Equal(t, 16.0, TotalHours(shifts))
	daily := DailyHoursBreakdown(shifts, nil)
	require.Len(t, daily, 1)
	assert.Equal(t, "Mo., 10.11.", daily[0].Label)
	assert.Equal(t, 16.0, daily[0].Hours)
	assert.Equal(t, TypeCounts{Morning: 1, Afternoon: 1}, ShiftTypeDistribution(shifts))
}

func TestNightShiftAttributedToStartDay(t *testing.T) {
	shifts := []domain.Shift{shift(t, "s1", "2025-11-14T22:00", "2025-11-15T06:00")}

	assert.Equal(t, 8.0, Duration(shifts[0]))
	assert.Equal(t, TypeCounts{Night: 1}, ShiftTypeDistribution(shifts))

	daily := DailyHoursBreakdown(shifts, nil)
	require.Len(t, daily, 1)
	assert.Equal(t, time.Date(2025, 11, 14, 0, 0, 0, 0, time.UTC), daily[0].Date)
	assert.Equal(t, 8.0, daily[0].ExactHours)
}

func TestUtilizationIsCapped(t *testing.T) {
	var shifts []domain.Shift
	for i, day := range []string{"10", "11", "12", "13"} {
		shifts = append(shifts, shift(t, string(rune('a'+i)), "2025-11-"+day+"T06:00", "2025-11-"+day+"T17:00"))
	}
	require.Equal(t, 44.0, TotalHours(shifts))

	assert.Equal(t, 100.0, UtilizationPercentage(shifts, 40))
	assert.Equal(t, CapacitySplit{WorkedHours: 44, AvailableHours: 0}, Capacity(shifts, 40))
}

func TestUtilizationMonotonicAndBounded(t *testing.T) {
	var shifts []domain.Shift
	prev := 0.0
	for i := 0; i < 12; i++ {
		day := time.Date(2025, 11, 1+i, 8, 0, 0, 0, time.UTC)
		shifts = append(shifts, domain.Shift{Start: day, End: day.Add(5 * time.Hour)})
		got := UtilizationPercentage(shifts, DefaultFullTimeHours)
		assert.GreaterOrEqual(t, got, prev)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, 100.0)
		prev = got
	}
}

func TestNonPositiveBaselineFallsBackToDefault(t *testing.T) {
	shifts := []domain.Shift{shift(t, "s1", "2025-11-10T06:00", "2025-11-10T14:00")}

	assert.Equal(t, 20.0, UtilizationPercentage(shifts, 0))
	assert.Equal(t, 20.0, UtilizationPercentage(shifts, -10))
	assert.Equal(t, 40.0, UtilizationPercentage(shifts, 20))
}

func TestAverageShiftDuration(t *testing.T) {
	shifts := []domain.Shift{
		shift(t, "s1", "2025-11-10T08:00", "2025-11-10T12:00"),
		shift(t, "s2", "2025-11-11T08:00", "2025-11-11T20:00"),
	}
	assert.Equal(t, 8.0, AverageShiftDuration(shifts))
	assert.Equal(t, TotalHours(shifts)/float64(ShiftCount(shifts)), AverageShiftDuration(shifts))
}

func TestRound(t *testing.T) {
	assert.Equal(t, 2.3, Round(2.25, 1))
	assert.Equal(t, 0.33, Round(1.0/3, 2))
	assert.Equal(t, 4.0, Round(4, 1))
}
