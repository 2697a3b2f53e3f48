package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/daphos/shift-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventEmployeeCreated       EventType = "employee_created"
	EventEmployeeUpdated       EventType = "employee_updated"
	EventEmployeeStatusChanged EventType = "employee_status_changed"
	EventEmployeeDeleted       EventType = "employee_deleted"
	EventShiftCreated          EventType = "shift_created"
	EventShiftUpdated          EventType = "shift_updated"
	EventShiftDeleted          EventType = "shift_deleted"
)

// AllEventTypes lists every event the services publish.
var AllEventTypes = []EventType{
	EventEmployeeCreated,
	EventEmployeeUpdated,
	EventEmployeeStatusChanged,
	EventEmployeeDeleted,
	EventShiftCreated,
	EventShiftUpdated,
	EventShiftDeleted,
}

// Event represents a domain event emitted by services.
type Event struct {
	ID         string      `json:"id"`
	Type       EventType   `json:"type"`
	EmployeeID string      `json:"employee_id"`
	Timestamp  time.Time   `json:"timestamp"`
	Payload    interface{} `json:"payload"`
}

// New stamps an event with a fresh id and the current time.
func New(eventType EventType, employeeID string, payload interface{}) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		EmployeeID: employeeID,
		Timestamp:  time.Now().UTC(),
		Payload:    payload,
	}
}

// EmployeePayload payload for created, updated and deleted employees.
type EmployeePayload struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}

// EmployeeStatusChangedPayload payload.
type EmployeeStatusChangedPayload struct {
	Name      string `json:"name"`
	OldActive bool   `json:"old_active"`
	NewActive bool   `json:"new_active"`
}

// ShiftPayload payload for shift events.
type ShiftPayload struct {
	ShiftID      string           `json:"shift_id"`
	EmployeeName string           `json:"employee_name,omitempty"`
	Start        string           `json:"start"`
	End          string           `json:"end"`
	Type         domain.ShiftType `json:"type"`
	Note         string           `json:"note,omitempty"`
}

// NewShiftPayload describes shift for notification consumers.
func NewShiftPayload(shift domain.Shift, employeeName string) ShiftPayload {
	return ShiftPayload{
		ShiftID:      shift.ID,
		EmployeeName: employeeName,
		Start:        domain.FormatLocalTime(shift.Start),
		End:          domain.FormatLocalTime(shift.End),
		Type:         shift.Type(),
		Note:         shift.Note,
	}
}
