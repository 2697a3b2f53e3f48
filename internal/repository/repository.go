package repository

import (
	"context"
	"errors"

	"github.com/daphos/shift-service/internal/domain"
)

// ErrNotFound is returned when a record with the requested id does not exist.
var ErrNotFound = errors.New("record not found")

// EmployeeRepository handles persistence for employees.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) error
	Update(ctx context.Context, employee *domain.Employee) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
}

// ShiftRepository handles persistence for shifts.
// Shifts reference employees by id only; no implementation enforces the reference.
type ShiftRepository interface {
	Create(ctx context.Context, shift *domain.Shift) error
	Update(ctx context.Context, shift *domain.Shift) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Shift, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]domain.Shift, error)
	List(ctx context.Context) ([]domain.Shift, error)
}
