package service

import (
	"context"
	"time"

	"github.com/daphos/shift-service/internal/analytics"
	"github.com/daphos/shift-service/internal/config"
	"github.com/daphos/shift-service/internal/domain"
	"github.com/daphos/shift-service/internal/repository"
	apperrors "github.com/daphos/shift-service/pkg/util/errorutil"
	"github.com/daphos/shift-service/pkg/workerpool"
)

// DashboardService runs the metrics aggregator over stored shifts.
type DashboardService struct {
	employees     repository.EmployeeRepository
	shifts        repository.ShiftRepository
	pool          *workerpool.Pool
	fullTimeHours float64
}

// DashboardDependencies encapsulates collaborators of the dashboard service.
type DashboardDependencies struct {
	EmployeeRepo repository.EmployeeRepository
	ShiftRepo    repository.ShiftRepository
	Pool         *workerpool.Pool
}

// EmployeeDashboard is everything the detail view shows for one employee.
type EmployeeDashboard struct {
	Employee domain.Employee
	Shifts   []domain.Shift
	Summary  analytics.Summary
}

// RosterEntry condenses one employee's metrics for the overview.
type RosterEntry struct {
	Employee             domain.Employee
	TotalHours           float64
	ShiftCount           int
	AverageShiftDuration float64
	Utilization          float64
	Types                analytics.TypeCounts
	WeekHours            float64
}

// NewDashboardService constructs the service. A nil pool computes the overview inline.
func NewDashboardService(cfg config.Config, deps DashboardDependencies) *DashboardService {
	return &DashboardService{
		employees:     deps.EmployeeRepo,
		shifts:        deps.ShiftRepo,
		pool:          deps.Pool,
		fullTimeHours: cfg.Metrics.FullTimeHours,
	}
}

// Dashboard summarizes one employee's shifts relative to ref. A non-positive
// fullTimeHours uses the configured baseline.
func (s *DashboardService) Dashboard(ctx context.Context, employeeID string, ref time.Time, fullTimeHours float64) (*EmployeeDashboard, error) {
	employee, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return nil, mapRepoError(err, "employee", employeeID)
	}
	shifts, err := s.shifts.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if fullTimeHours <= 0 {
		fullTimeHours = s.fullTimeHours
	}
	return &EmployeeDashboard{
		Employee: *employee,
		Shifts:   shifts,
		Summary:  analytics.Summarize(shifts, domain.WallClock(ref), analytics.Options{FullTimeHours: fullTimeHours}),
	}, nil
}

// Overview computes a roster entry for every employee, in listing order.
func (s *DashboardService) Overview(ctx context.Context, ref time.Time) ([]RosterEntry, error) {
	employees, err := s.employees.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	shifts, err := s.shifts.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	employees = domain.EmployeeQuery{}.Apply(employees)

	byEmployee := make(map[string][]domain.Shift, len(employees))
	for _, sh := range shifts {
		byEmployee[sh.EmployeeID] = append(byEmployee[sh.EmployeeID], sh)
	}

	ref = domain.WallClock(ref)
	entries := make([]RosterEntry, len(employees))
	if s.pool == nil {
		for i, e := range employees {
			entries[i] = s.rosterEntry(e, byEmployee[e.ID], ref)
		}
		return entries, nil
	}

	results := make(chan workerpool.Result, len(employees))
	for i, e := range employees {
		i, e := i, e
		task := workerpool.Task{
			Fn: func(context.Context) (any, error) {
				entries[i] = s.rosterEntry(e, byEmployee[e.ID], ref)
				return i, nil
			},
			ResultC: results,
		}
		if err := s.pool.Submit(ctx, task); err != nil {
			return nil, apperrors.MapError(err)
		}
	}
	for range employees {
		select {
		case <-ctx.Done():
			return nil, apperrors.MapError(ctx.Err())
		case res := <-results:
			if res.Err != nil {
				return nil, apperrors.MapError(res.Err)
			}
		}
	}
	return entries, nil
}

func (s *DashboardService) rosterEntry(e domain.Employee, shifts []domain.Shift, ref time.Time) RosterEntry {
	summary := analytics.Summarize(shifts, ref, analytics.Options{FullTimeHours: s.fullTimeHours})
	return RosterEntry{
		Employee:             e,
		TotalHours:           summary.TotalHours,
		ShiftCount:           summary.ShiftCount,
		AverageShiftDuration: summary.AverageShiftDuration,
		Utilization:          summary.Utilization,
		Types:                summary.Types,
		WeekHours:            summary.Week.Hours(),
	}
}
