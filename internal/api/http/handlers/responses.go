package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/daphos/shift-service/internal/analytics"
	"github.com/daphos/shift-service/internal/api/dto"
	"github.com/daphos/shift-service/internal/domain"
	"github.com/daphos/shift-service/internal/service"
	apperrors "github.com/daphos/shift-service/pkg/util/errorutil"
)

func employeeResponse(e *domain.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:        e.ID,
		Name:      e.Name,
		Role:      e.Role,
		IsActive:  e.IsActive,
		CreatedAt: optionalTime(e.CreatedAt),
		UpdatedAt: optionalTime(e.UpdatedAt),
	}
}

// optionalTime drops unknown timestamps, such as those of the built-in default roster.
func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func employeeResponses(employees []domain.Employee) []dto.EmployeeResponse {
	out := make([]dto.EmployeeResponse, 0, len(employees))
	for i := range employees {
		out = append(out, employeeResponse(&employees[i]))
	}
	return out
}

func shiftResponse(s *domain.Shift) dto.ShiftResponse {
	return dto.ShiftResponse{
		ID:            s.ID,
		EmployeeID:    s.EmployeeID,
		Start:         domain.FormatLocalTime(s.Start),
		End:           domain.FormatLocalTime(s.End),
		Note:          s.Note,
		Type:          s.Type(),
		DurationHours: analytics.Duration(*s),
		CreatedAt:     optionalTime(s.CreatedAt),
		UpdatedAt:     optionalTime(s.UpdatedAt),
	}
}

func shiftResponses(shifts []domain.Shift) []dto.ShiftResponse {
	out := make([]dto.ShiftResponse, 0, len(shifts))
	for i := range shifts {
		out = append(out, shiftResponse(&shifts[i]))
	}
	return out
}

func dailyResponses(days analytics.DailyBreakdown) []dto.DailyHoursResponse {
	out := make([]dto.DailyHoursResponse, 0, len(days))
	for _, d := range days {
		out = append(out, dto.DailyHoursResponse{
			Date:  d.Date.Format(domain.DateLayout),
			Label: d.Label,
			Hours: d.Hours,
		})
	}
	return out
}

func distributionResponse(counts analytics.TypeCounts) dto.DistributionResponse {
	slices := counts.Slices()
	out := dto.DistributionResponse{
		Morning:   counts.Morning,
		Afternoon: counts.Afternoon,
		Night:     counts.Night,
		Slices:    make([]dto.TypeSliceResponse, 0, len(slices)),
	}
	for _, s := range slices {
		out.Slices = append(out.Slices, dto.TypeSliceResponse{Type: s.Type, Count: s.Count})
	}
	return out
}

func weekResponses(week analytics.Week) []dto.WeekDayResponse {
	out := make([]dto.WeekDayResponse, 0, len(week))
	for _, day := range week {
		shifts := make([]dto.ShiftResponse, 0, len(day.Shifts))
		for _, ws := range day.Shifts {
			shifts = append(shifts, shiftResponse(&ws.Shift))
		}
		out = append(out, dto.WeekDayResponse{
			Date:    day.Date.Format(domain.DateLayout),
			IsToday: day.IsToday,
			Shifts:  shifts,
		})
	}
	return out
}

func dashboardResponse(d *service.EmployeeDashboard, ref time.Time) dto.DashboardResponse {
	s := d.Summary
	return dto.DashboardResponse{
		Employee:  employeeResponse(&d.Employee),
		Reference: domain.FormatLocalTime(ref),
		Metrics: dto.MetricsResponse{
			TotalHours:           s.TotalHours,
			ShiftCount:           s.ShiftCount,
			AverageShiftDuration: s.AverageShiftDuration,
			FullTimeHours:        s.FullTimeHours,
			Utilization:          s.Utilization,
			Capacity: dto.CapacityResponse{
				WorkedHours:    s.Capacity.WorkedHours,
				AvailableHours: s.Capacity.AvailableHours,
			},
		},
		Daily:         dailyResponses(s.Daily),
		LastSevenDays: dailyResponses(s.Daily.LastDays(7)),
		Distribution:  distributionResponse(s.Types),
		Week:          weekResponses(s.Week),
		Shifts:        shiftResponses(d.Shifts),
	}
}

func rosterResponses(entries []service.RosterEntry) []dto.RosterEntryResponse {
	out := make([]dto.RosterEntryResponse, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		out = append(out, dto.RosterEntryResponse{
			Employee:             employeeResponse(&e.Employee),
			TotalHours:           e.TotalHours,
			ShiftCount:           e.ShiftCount,
			AverageShiftDuration: e.AverageShiftDuration,
			Utilization:          e.Utilization,
			WeekHours:            e.WeekHours,
			Distribution:         distributionResponse(e.Types),
		})
	}
	return out
}

// parseReference reads the ref query value: a local timestamp or a bare date.
// Empty means now.
func parseReference(raw string, now func() time.Time) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return now(), nil
	}
	if t, err := domain.ParseLocalTime(raw); err == nil {
		return t, nil
	}
	t, err := domain.ParseDate(raw)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError("invalid ref", map[string]any{"ref": raw})
	}
	return t, nil
}

func parseShiftRequest(req dto.ShiftRequest) (service.ShiftInput, error) {
	details := map[string]any{}
	start, err := domain.ParseLocalTime(req.Start)
	if err != nil {
		details["start"] = err.Error()
	}
	end, err := domain.ParseLocalTime(req.End)
	if err != nil {
		details["end"] = err.Error()
	}
	if len(details) > 0 {
		return service.ShiftInput{}, apperrors.NewValidationError("invalid shift", details)
	}
	return service.ShiftInput{Start: start, End: end, Note: req.Note}, nil
}

func parseFullTimeHours(raw string) (float64, error) {
	if strings.TrimSpace(raw) == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		return 0, apperrors.NewValidationError("full_time_hours must be a positive number", map[string]any{"full_time_hours": raw})
	}
	return v, nil
}
