package dto

import "time"

// EmployeeRequest payload for create and update.
type EmployeeRequest struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// EmployeeResponse represents a roster entry.
type EmployeeResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// GroupedEmployeesResponse splits a listing into active and inactive employees.
type GroupedEmployeesResponse struct {
	Active   []EmployeeResponse `json:"active"`
	Inactive []EmployeeResponse `json:"inactive"`
}
