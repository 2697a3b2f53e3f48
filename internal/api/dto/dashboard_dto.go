package dto

import "github.com/daphos/shift-service/internal/domain"

// DashboardResponse is the metric bundle of one employee.
type DashboardResponse struct {
	Employee      EmployeeResponse     `json:"employee"`
	Reference     string               `json:"reference"`
	Metrics       MetricsResponse      `json:"metrics"`
	Daily         []DailyHoursResponse `json:"daily"`
	LastSevenDays []DailyHoursResponse `json:"last_seven_days"`
	Distribution  DistributionResponse `json:"distribution"`
	Week          []WeekDayResponse    `json:"week"`
	Shifts        []ShiftResponse      `json:"shifts"`
}

// MetricsResponse holds the scalar metrics.
type MetricsResponse struct {
	TotalHours           float64          `json:"total_hours"`
	ShiftCount           int              `json:"shift_count"`
	AverageShiftDuration float64          `json:"average_shift_duration"`
	FullTimeHours        float64          `json:"full_time_hours"`
	Utilization          float64          `json:"utilization_percentage"`
	Capacity             CapacityResponse `json:"capacity"`
}

// CapacityResponse splits the full-time baseline into worked and available hours.
type CapacityResponse struct {
	WorkedHours    float64 `json:"worked_hours"`
	AvailableHours float64 `json:"available_hours"`
}

// DailyHoursResponse is one bar of the daily chart.
type DailyHoursResponse struct {
	Date  string  `json:"date"`
	Label string  `json:"label"`
	Hours float64 `json:"hours"`
}

// DistributionResponse counts shifts per type.
type DistributionResponse struct {
	Morning   int                 `json:"morning"`
	Afternoon int                 `json:"afternoon"`
	Night     int                 `json:"night"`
	Slices    []TypeSliceResponse `json:"slices"`
}

// TypeSliceResponse is a non-empty pie slice.
type TypeSliceResponse struct {
	Type  domain.ShiftType `json:"type"`
	Count int              `json:"count"`
}

// WeekDayResponse is one calendar column.
type WeekDayResponse struct {
	Date    string          `json:"date"`
	IsToday bool            `json:"is_today"`
	Shifts  []ShiftResponse `json:"shifts"`
}

// RosterEntryResponse summarizes one employee in the overview.
type RosterEntryResponse struct {
	Employee             EmployeeResponse     `json:"employee"`
	TotalHours           float64              `json:"total_hours"`
	ShiftCount           int                  `json:"shift_count"`
	AverageShiftDuration float64              `json:"average_shift_duration"`
	Utilization          float64              `json:"utilization_percentage"`
	WeekHours            float64              `json:"week_hours"`
	Distribution         DistributionResponse `json:"distribution"`
}
