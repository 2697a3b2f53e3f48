// Package memory keeps the whole roster in process memory and writes a
// snapshot through a StateStore after every mutation.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/daphos/shift-service/internal/domain"
	"github.com/daphos/shift-service/internal/repository"
)

// StateStore persists complete snapshots of the roster.
type StateStore interface {
	Load(ctx context.Context, fallback domain.Dataset) domain.Dataset
	Save(ctx context.Context, state domain.Dataset) error
}

// Store holds the employee and shift lists. Use Employees and Shifts for the
// repository views.
type Store struct {
	mu        sync.RWMutex
	employees []domain.Employee
	shifts    []domain.Shift
	state     StateStore
	now       func() time.Time
}

// Open loads the persisted snapshot, falling back per list to fallback.
// A nil state keeps everything in memory only.
func Open(ctx context.Context, state StateStore, fallback domain.Dataset) *Store {
	if state == nil {
		state = NopStateStore{}
	}
	data := state.Load(ctx, fallback)
	return &Store{
		employees: data.Employees,
		shifts:    data.Shifts,
		state:     state,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Employees returns the store's employee repository.
func (s *Store) Employees() repository.EmployeeRepository { return employeeRepo{s} }

// Shifts returns the store's shift repository.
func (s *Store) Shifts() repository.ShiftRepository { return shiftRepo{s} }

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() domain.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.Dataset{Employees: s.employees, Shifts: s.shifts}.Clone()
}

// Replace swaps the whole state once it has been persisted.
func (s *Store) Replace(ctx context.Context, data domain.Dataset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data = data.Clone()
	return s.commit(ctx, data.Employees, data.Shifts)
}

// commit saves the candidate lists and installs them only when the save succeeds.
// Must be called with mu held; a changed list must be a fresh copy.
func (s *Store) commit(ctx context.Context, employees []domain.Employee, shifts []domain.Shift) error {
	if err := s.state.Save(ctx, domain.Dataset{Employees: employees, Shifts: shifts}.Clone()); err != nil {
		return err
	}
	s.employees, s.shifts = employees, shifts
	return nil
}

func (s *Store) indexEmployee(id string) int {
	for i := range s.employees {
		if s.employees[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) indexShift(id string) int {
	for i := range s.shifts {
		if s.shifts[i].ID == id {
			return i
		}
	}
	return -1
}

type employeeRepo struct{ s *Store }

func (r employeeRepo) Create(ctx context.Context, employee *domain.Employee) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	now := r.s.now()
	created := *employee
	created.CreatedAt, created.UpdatedAt = now, now
	next := append(append(make([]domain.Employee, 0, len(r.s.employees)+1), r.s.employees...), created)
	if err := r.s.commit(ctx, next, r.s.shifts); err != nil {
		return err
	}
	*employee = created
	return nil
}

func (r employeeRepo) Update(ctx context.Context, employee *domain.Employee) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.s.indexEmployee(employee.ID)
	if i < 0 {
		return repository.ErrNotFound
	}
	updated := *employee
	updated.CreatedAt = r.s.employees[i].CreatedAt
	updated.UpdatedAt = r.s.now()
	next := append([]domain.Employee{}, r.s.employees...)
	next[i] = updated
	if err := r.s.commit(ctx, next, r.s.shifts); err != nil {
		return err
	}
	*employee = updated
	return nil
}

func (r employeeRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.s.indexEmployee(id)
	if i < 0 {
		return repository.ErrNotFound
	}
	next := append(append([]domain.Employee{}, r.s.employees[:i]...), r.s.employees[i+1:]...)
	return r.s.commit(ctx, next, r.s.shifts)
}

func (r employeeRepo) GetByID(_ context.Context, id string) (*domain.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, e := range r.s.employees {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r employeeRepo) List(_ context.Context) ([]domain.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return append([]domain.Employee{}, r.s.employees...), nil
}

type shiftRepo struct{ s *Store }

func (r shiftRepo) Create(ctx context.Context, shift *domain.Shift) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	now := r.s.now()
	created := *shift
	created.CreatedAt, created.UpdatedAt = now, now
	next := append(append(make([]domain.Shift, 0, len(r.s.shifts)+1), r.s.shifts...), created)
	if err := r.s.commit(ctx, r.s.employees, next); err != nil {
		return err
	}
	*shift = created
	return nil
}

func (r shiftRepo) Update(ctx context.Context, shift *domain.Shift) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.s.indexShift(shift.ID)
	if i < 0 {
		return repository.ErrNotFound
	}
	updated := *shift
	updated.EmployeeID = r.s.shifts[i].EmployeeID
	updated.CreatedAt = r.s.shifts[i].CreatedAt
	updated.UpdatedAt = r.s.now()
	next := append([]domain.Shift{}, r.s.shifts...)
	next[i] = updated
	if err := r.s.commit(ctx, r.s.employees, next); err != nil {
		return err
	}
	*shift = updated
	return nil
}

func (r shiftRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.s.indexShift(id)
	if i < 0 {
		return repository.ErrNotFound
	}
	next := append(append([]domain.Shift{}, r.s.shifts[:i]...), r.s.shifts[i+1:]...)
	return r.s.commit(ctx, r.s.employees, next)
}

func (r shiftRepo) GetByID(_ context.Context, id string) (*domain.Shift, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, sh := range r.s.shifts {
		if sh.ID == id {
			return &sh, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r shiftRepo) ListByEmployee(_ context.Context, employeeID string) ([]domain.Shift, error) {
	r.s.mu.RLock()
	result := []domain.Shift{}
	for _, sh := range r.s.shifts {
		if sh.EmployeeID == employeeID {
			result = append(result, sh)
		}
	}
	r.s.mu.RUnlock()
	sortByStart(result)
	return result, nil
}

func (r shiftRepo) List(_ context.Context) ([]domain.Shift, error) {
	r.s.mu.RLock()
	result := append([]domain.Shift{}, r.s.shifts...)
	r.s.mu.RUnlock()
	sortByStart(result)
	return result, nil
}

func sortByStart(shifts []domain.Shift) {
	sort.SliceStable(shifts, func(i, j int) bool {
		return shifts[i].Start.Before(shifts[j].Start)
	})
}

// NopStateStore returns the fallback on load and discards saves.
type NopStateStore struct{}

func (NopStateStore) Load(_ context.Context, fallback domain.Dataset) domain.Dataset {
	return fallback.Clone()
}

func (NopStateStore) Save(context.Context, domain.Dataset) error { return nil }
