package dto

import (
	"time"

	"github.com/daphos/shift-service/internal/domain"
)

// ShiftRequest payload. Start and End are local wall-clock timestamps
// such as 2025-11-10T06:00.
type ShiftRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Note  string `json:"note"`
}

// ShiftResponse represents a shift with its derived duration and type.
type ShiftResponse struct {
	ID            string           `json:"id"`
	EmployeeID    string           `json:"employee_id"`
	Start         string           `json:"start"`
	End           string           `json:"end"`
	Note          string           `json:"note"`
	Type          domain.ShiftType `json:"type"`
	DurationHours float64          `json:"duration_hours"`
	CreatedAt     *time.Time       `json:"created_at,omitempty"`
	UpdatedAt     *time.Time       `json:"updated_at,omitempty"`
}
