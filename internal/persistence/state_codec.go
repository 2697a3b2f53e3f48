package persistence

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/daphos/shift-service/internal/domain"
)

// employeeRecord and shiftRecord are the stored JSON shapes of the roster lists.
// createdAt and updatedAt are optional; lists written without them still load.
type employeeRecord struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	IsActive  bool   `json:"isActive"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

type shiftRecord struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"`
	Start      string `json:"start"`
	End        string `json:"end"`
	Note       string `json:"note"`
	CreatedAt  string `json:"createdAt,omitempty"`
	UpdatedAt  string `json:"updatedAt,omitempty"`
}

func encodeStamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

// decodeStamp treats a missing or unreadable stamp as unknown.
func decodeStamp(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}

// EncodeEmployees serializes the employee list.
func EncodeEmployees(employees []domain.Employee) ([]byte, error) {
	records := make([]employeeRecord, 0, len(employees))
	for _, e := range employees {
		records = append(records, employeeRecord{
			ID:        e.ID,
			Name:      e.Name,
			Role:      e.Role,
			IsActive:  e.IsActive,
			CreatedAt: encodeStamp(e.CreatedAt),
			UpdatedAt: encodeStamp(e.UpdatedAt),
		})
	}
	return json.Marshal(records)
}

// DecodeEmployees parses an employee list. Anything but a JSON array of records is rejected.
func DecodeEmployees(payload []byte) ([]domain.Employee, error) {
	var records []employeeRecord
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, fmt.Errorf("decode employees: %w", err)
	}
	if records == nil {
		return nil, fmt.Errorf("decode employees: payload is not an array")
	}
	employees := make([]domain.Employee, 0, len(records))
	for i, r := range records {
		if r.ID == "" {
			return nil, fmt.Errorf("decode employees: record %d has no id", i)
		}
		employees = append(employees, domain.Employee{
			ID:        r.ID,
			Name:      r.Name,
			Role:      r.Role,
			IsActive:  r.IsActive,
			CreatedAt: decodeStamp(r.CreatedAt),
			UpdatedAt: decodeStamp(r.UpdatedAt),
		})
	}
	return employees, nil
}

// EncodeShifts serializes the shift list with zone-less timestamps.
func EncodeShifts(shifts []domain.Shift) ([]byte, error) {
	records := make([]shiftRecord, 0, len(shifts))
	for _, s := range shifts {
		records = append(records, shiftRecord{
			ID:         s.ID,
			EmployeeID: s.EmployeeID,
			Start:      domain.FormatLocalTime(s.Start),
			End:        domain.FormatLocalTime(s.End),
			Note:       s.Note,
			CreatedAt:  encodeStamp(s.CreatedAt),
			UpdatedAt:  encodeStamp(s.UpdatedAt),
		})
	}
	return json.Marshal(records)
}

// DecodeShifts parses a shift list. Unparsable timestamps or inverted bounds reject the payload.
func DecodeShifts(payload []byte) ([]domain.Shift, error) {
	var records []shiftRecord
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, fmt.Errorf("decode shifts: %w", err)
	}
	if records == nil {
		return nil, fmt.Errorf("decode shifts: payload is not an array")
	}
	shifts := make([]domain.Shift, 0, len(records))
	for i, r := range records {
		if r.ID == "" {
			return nil, fmt.Errorf("decode shifts: record %d has no id", i)
		}
		start, err := domain.ParseLocalTime(r.Start)
		if err != nil {
			return nil, fmt.Errorf("decode shifts: record %s: %w", r.ID, err)
		}
		end, err := domain.ParseLocalTime(r.End)
		if err != nil {
			return nil, fmt.Errorf("decode shifts: record %s: %w", r.ID, err)
		}
		if err := domain.ValidateShiftBounds(start, end); err != nil {
			return nil, fmt.Errorf("decode shifts: record %s: %w", r.ID, err)
		}
		shifts = append(shifts, domain.Shift{
			ID:         r.ID,
			EmployeeID: r.EmployeeID,
			Start:      start,
			End:        end,
			Note:       r.Note,
			CreatedAt:  decodeStamp(r.CreatedAt),
			UpdatedAt:  decodeStamp(r.UpdatedAt),
		})
	}
	return shifts, nil
}
