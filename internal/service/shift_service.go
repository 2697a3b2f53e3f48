package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/daphos/shift-service/internal/domain"
	"github.com/daphos/shift-service/internal/events"
	"github.com/daphos/shift-service/internal/repository"
	apperrors "github.com/daphos/shift-service/pkg/util/errorutil"
)

// ShiftService manages shifts of existing employees.
type ShiftService struct {
	employees  repository.EmployeeRepository
	shifts     repository.ShiftRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// ShiftDependencies encapsulates collaborators of the shift service.
type ShiftDependencies struct {
	EmployeeRepo repository.EmployeeRepository
	ShiftRepo    repository.ShiftRepository
	Dispatcher   events.Dispatcher
	Logger       *zap.Logger
}

// ShiftInput fully describes a shift's editable fields.
type ShiftInput struct {
	Start time.Time
	End   time.Time
	Note  string
}

// NewShiftService constructs the service.
func NewShiftService(deps ShiftDependencies) *ShiftService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ShiftService{
		employees:  deps.EmployeeRepo,
		shifts:     deps.ShiftRepo,
		dispatcher: deps.Dispatcher,
		logger:     logger,
	}
}

func (in ShiftInput) validate() (ShiftInput, error) {
	in.Start = domain.WallClock(in.Start)
	in.End = domain.WallClock(in.End)
	in.Note = strings.TrimSpace(in.Note)
	if in.Start.IsZero() || in.End.IsZero() {
		return in, apperrors.NewValidationError("start and end are required", nil)
	}
	if err := domain.ValidateShiftBounds(in.Start, in.End); err != nil {
		return in, apperrors.NewValidationError(err.Error(), map[string]any{
			"start": domain.FormatLocalTime(in.Start),
			"end":   domain.FormatLocalTime(in.End),
		})
	}
	return in, nil
}

// Create assigns a new shift to an active employee.
func (s *ShiftService) Create(ctx context.Context, employeeID string, input ShiftInput) (*domain.Shift, error) {
	input, err := input.validate()
	if err != nil {
		return nil, err
	}
	employee, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return nil, mapRepoError(err, "employee", employeeID)
	}
	if !employee.IsActive {
		return nil, inactiveEmployee(employeeID)
	}

	shift := &domain.Shift{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		Start:      input.Start,
		End:        input.End,
		Note:       input.Note,
	}
	if err := s.shifts.Create(ctx, shift); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.publish(ctx, events.EventShiftCreated, *shift, employee.Name)
	return shift, nil
}

// Update replaces start, end and note of a shift. Shifts of inactive employees are read-only;
// orphaned shifts stay editable.
func (s *ShiftService) Update(ctx context.Context, id string, input ShiftInput) (*domain.Shift, error) {
	input, err := input.validate()
	if err != nil {
		return nil, err
	}
	shift, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	name := ""
	if owner, err := s.employees.GetByID(ctx, shift.EmployeeID); err == nil {
		if !owner.IsActive {
			return nil, inactiveEmployee(owner.ID)
		}
		name = owner.Name
	}

	shift.Start = input.Start
	shift.End = input.End
	shift.Note = input.Note
	if err := s.shifts.Update(ctx, shift); err != nil {
		return nil, mapRepoError(err, "shift", id)
	}
	s.publish(ctx, events.EventShiftUpdated, *shift, name)
	return shift, nil
}

// Delete removes a shift.
func (s *ShiftService) Delete(ctx context.Context, id string) error {
	shift, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.shifts.Delete(ctx, id); err != nil {
		return mapRepoError(err, "shift", id)
	}
	s.publish(ctx, events.EventShiftDeleted, *shift, s.employeeName(ctx, shift.EmployeeID))
	return nil
}

// Get returns one shift.
func (s *ShiftService) Get(ctx context.Context, id string) (*domain.Shift, error) {
	shift, err := s.shifts.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "shift", id)
	}
	return shift, nil
}

// ListByEmployee returns an employee's shifts ordered by start.
func (s *ShiftService) ListByEmployee(ctx context.Context, employeeID string) ([]domain.Shift, error) {
	if _, err := s.employees.GetByID(ctx, employeeID); err != nil {
		return nil, mapRepoError(err, "employee", employeeID)
	}
	shifts, err := s.shifts.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return shifts, nil
}

// employeeName is best effort; orphaned shifts have no owner to name.
func (s *ShiftService) employeeName(ctx context.Context, id string) string {
	employee, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return ""
	}
	return employee.Name
}

func (s *ShiftService) publish(ctx context.Context, eventType events.EventType, shift domain.Shift, employeeName string) {
	if s.dispatcher == nil {
		return
	}
	event := events.New(eventType, shift.EmployeeID, events.NewShiftPayload(shift, employeeName))
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event handlers failed", zap.String("event_type", string(eventType)), zap.Error(err))
	}
}
