package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/daphos/shift-service/internal/domain"
	"github.com/daphos/shift-service/internal/events"
	"github.com/daphos/shift-service/internal/repository"
	apperrors "github.com/daphos/shift-service/pkg/util/errorutil"
)

// EmployeeService manages the roster.
type EmployeeService struct {
	employees  repository.EmployeeRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// EmployeeDependencies encapsulates collaborators of the employee service.
type EmployeeDependencies struct {
	EmployeeRepo repository.EmployeeRepository
	Dispatcher   events.Dispatcher
	Logger       *zap.Logger
}

// EmployeeInput carries name and role for create and update.
type EmployeeInput struct {
	Name string
	Role string
}

// NewEmployeeService constructs the service.
func NewEmployeeService(deps EmployeeDependencies) *EmployeeService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EmployeeService{
		employees:  deps.EmployeeRepo,
		dispatcher: deps.Dispatcher,
		logger:     logger,
	}
}

func (in EmployeeInput) normalize() (EmployeeInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Role = strings.TrimSpace(in.Role)
	details := map[string]any{}
	if in.Name == "" {
		details["name"] = "required"
	}
	if in.Role == "" {
		details["role"] = "required"
	}
	if len(details) > 0 {
		return in, apperrors.NewValidationError("invalid employee", details)
	}
	return in, nil
}

// Create adds an active employee with a fresh id.
func (s *EmployeeService) Create(ctx context.Context, input EmployeeInput) (*domain.Employee, error) {
	input, err := input.normalize()
	if err != nil {
		return nil, err
	}
	employee := &domain.Employee{
		ID:       uuid.NewString(),
		Name:     input.Name,
		Role:     input.Role,
		IsActive: true,
	}
	if err := s.employees.Create(ctx, employee); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.publish(ctx, events.New(events.EventEmployeeCreated, employee.ID, employeePayload(employee)))
	return employee, nil
}

// Update replaces name and role. Inactive employees are read-only.
func (s *EmployeeService) Update(ctx context.Context, id string, input EmployeeInput) (*domain.Employee, error) {
	input, err := input.normalize()
	if err != nil {
		return nil, err
	}
	employee, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !employee.IsActive {
		return nil, inactiveEmployee(id)
	}
	employee.Name = input.Name
	employee.Role = input.Role
	if err := s.employees.Update(ctx, employee); err != nil {
		return nil, mapRepoError(err, "employee", id)
	}
	s.publish(ctx, events.New(events.EventEmployeeUpdated, employee.ID, employeePayload(employee)))
	return employee, nil
}

// ToggleStatus flips the active flag.
func (s *EmployeeService) ToggleStatus(ctx context.Context, id string) (*domain.Employee, error) {
	employee, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	old := employee.IsActive
	employee.IsActive = !old
	if err := s.employees.Update(ctx, employee); err != nil {
		return nil, mapRepoError(err, "employee", id)
	}
	s.publish(ctx, events.New(events.EventEmployeeStatusChanged, employee.ID, events.EmployeeStatusChangedPayload{
		Name:      employee.Name,
		OldActive: old,
		NewActive: employee.IsActive,
	}))
	return employee, nil
}

// Delete removes the employee. Its shifts are kept.
func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	employee, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.employees.Delete(ctx, id); err != nil {
		return mapRepoError(err, "employee", id)
	}
	s.publish(ctx, events.New(events.EventEmployeeDeleted, id, employeePayload(employee)))
	return nil
}

// Get returns one employee.
func (s *EmployeeService) Get(ctx context.Context, id string) (*domain.Employee, error) {
	employee, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "employee", id)
	}
	return employee, nil
}

// List returns the employees matching query in its requested order.
func (s *EmployeeService) List(ctx context.Context, query domain.EmployeeQuery) ([]domain.Employee, error) {
	if !query.Status.Valid() {
		return nil, apperrors.NewValidationError("invalid status filter", map[string]any{"status": query.Status})
	}
	if !query.Sort.Valid() {
		return nil, apperrors.NewValidationError("invalid sort", map[string]any{"sort": query.Sort})
	}
	employees, err := s.employees.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return query.Apply(employees), nil
}

func (s *EmployeeService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event handlers failed", zap.String("event_type", string(event.Type)), zap.Error(err))
	}
}

func employeePayload(e *domain.Employee) events.EmployeePayload {
	return events.EmployeePayload{Name: e.Name, Role: e.Role, IsActive: e.IsActive}
}
