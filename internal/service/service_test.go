package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/daphos/shift-service/internal/auth"
	"github.com/daphos/shift-service/internal/config"
	"github.com/daphos/shift-service/internal/domain"
	"github.com/daphos/shift-service/internal/events"
	"github.com/daphos/shift-service/internal/persistence"
	"github.com/daphos/shift-service/internal/repository/memory"
	apperrors "github.com/daphos/shift-service/pkg/util/errorutil"
	"github.com/daphos/shift-service/pkg/workerpool"
)

type fixture struct {
	employees  *EmployeeService
	shifts     *ShiftService
	dashboard  *DashboardService
	dispatcher events.Dispatcher
	store      *memory.Store
}

func newFixture(t *testing.T, seed domain.Dataset) fixture {
	t.Helper()
	store := memory.Open(context.Background(), nil, seed)
	dispatcher := events.NewInMemoryDispatcher()
	pool := workerpool.NewPool(2, 4)
	t.Cleanup(pool.Close)

	cfg := config.Config{Metrics: config.MetricsConfig{FullTimeHours: 40}}
	return fixture{
		employees: NewEmployeeService(EmployeeDependencies{
			EmployeeRepo: store.Employees(),
			Dispatcher:   dispatcher,
		}),
		shifts: NewShiftService(ShiftDependencies{
			EmployeeRepo: store.Employees(),
			ShiftRepo:    store.Shifts(),
			Dispatcher:   dispatcher,
		}),
		dashboard: NewDashboardService(cfg, DashboardDependencies{
			EmployeeRepo: store.Employees(),
			ShiftRepo:    store.Shifts(),
			Pool:         pool,
		}),
		dispatcher: dispatcher,
		store:      store,
	}
}

func at(t *testing.T, value string) time.Time {
	t.Helper()
	v, err := domain.ParseLocalTime(value)
	require.NoError(t, err)
	return v
}

func TestEmployeeLifecycle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, domain.Dataset{})

	created, err := f.employees.Create(ctx, EmployeeInput{Name: "  Anna  ", Role: "Pflege"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Anna", created.Name)
	assert.True(t, created.IsActive)

	updated, err := f.employees.Update(ctx, created.ID, EmployeeInput{Name: "Anna B.", Role: "Leitung"})
	require.NoError(t, err)
	assert.Equal(t, "Leitung", updated.Role)

	toggled, err := f.employees.ToggleStatus(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)

	_, err = f.employees.Update(ctx, created.ID, EmployeeInput{Name: "x", Role: "y"})
	assert.True(t, apperrors.IsCode(err, CodeEmployeeInactive))

	require.NoError(t, f.employees.Delete(ctx, created.ID))
	_, err = f.employees.Get(ctx, created.ID)
	assert.True(t, apperrors.IsCode(err, "NOT_FOUND"))
}

func TestEmployeeValidation(t *testing.T) {
	f := newFixture(t, domain.Dataset{})
	_, err := f.employees.Create(context.Background(), EmployeeInput{Name: " ", Role: ""})
	require.Error(t, err)
	de := apperrors.ToDomainError(err)
	assert.Equal(t, "VALIDATION_FAILED", de.Code)
	assert.Contains(t, de.Details, "name")
	assert.Contains(t, de.Details, "role")
}

func TestEmployeeListQuery(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, persistence.DefaultDataset())

	all, err := f.employees.List(ctx, domain.EmployeeQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 10)

	_, err = f.employees.List(ctx, domain.EmployeeQuery{Sort: "age"})
	assert.True(t, apperrors.IsCode(err, "VALIDATION_FAILED"))
}

func TestShiftBoundsAreValidated(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, domain.Dataset{})
	e, err := f.employees.Create(ctx, EmployeeInput{Name: "Anna", Role: "Pflege"})
	require.NoError(t, err)

	_, err = f.shifts.Create(ctx, e.ID, ShiftInput{Start: at(t, "2025-11-10T14:00"), End: at(t, "2025-11-10T06:00")})
	assert.True(t, apperrors.IsCode(err, "VALIDATION_FAILED"))

	_, err = f.shifts.Create(ctx, e.ID, ShiftInput{Start: at(t, "2025-11-10T14:00"), End: at(t, "2025-11-10T14:00")})
	assert.True(t, apperrors.IsCode(err, "VALIDATION_FAILED"))

	list, err := f.shifts.ListByEmployee(ctx, e.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestShiftLifecycle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, domain.Dataset{})
	e, err := f.employees.Create(ctx, EmployeeInput{Name: "Anna", Role: "Pflege"})
	require.NoError(t, err)

	second, err := f.shifts.Create(ctx, e.ID, ShiftInput{Start: at(t, "2025-11-11T14:00"), End: at(t, "2025-11-11T22:00")})
	require.NoError(t, err)
	first, err := f.shifts.Create(ctx, e.ID, ShiftInput{Start: at(t, "2025-11-10T06:00"), End: at(t, "2025-11-10T14:00"), Note: "Früh"})
	require.NoError(t, err)

	list, err := f.shifts.ListByEmployee(ctx, e.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)

	updated, err := f.shifts.Update(ctx, second.ID, ShiftInput{Start: at(t, "2025-11-11T15:00"), End: at(t, "2025-11-11T23:00"), Note: "spät"})
	require.NoError(t, err)
	assert.Equal(t, e.ID, updated.EmployeeID)
	assert.Equal(t, "spät", updated.Note)

	require.NoError(t, f.shifts.Delete(ctx, first.ID))
	_, err = f.shifts.Get(ctx, first.ID)
	assert.True(t, apperrors.IsCode(err, "NOT_FOUND"))

	_, err = f.shifts.Create(ctx, "missing", ShiftInput{Start: at(t, "2025-11-10T06:00"), End: at(t, "2025-11-10T14:00")})
	assert.True(t, apperrors.IsCode(err, "NOT_FOUND"))
}

func TestInactiveEmployeeShiftsAreReadOnly(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, domain.Dataset{})
	e, err := f.employees.Create(ctx, EmployeeInput{Name: "Anna", Role: "Pflege"})
	require.NoError(t, err)
	sh, err := f.shifts.Create(ctx, e.ID, ShiftInput{Start: at(t, "2025-11-10T06:00"), End: at(t, "2025-11-10T14:00")})
	require.NoError(t, err)
	_, err = f.employees.ToggleStatus(ctx, e.ID)
	require.NoError(t, err)

	_, err = f.shifts.Create(ctx, e.ID, ShiftInput{Start: at(t, "2025-11-11T06:00"), End: at(t, "2025-11-11T14:00")})
	assert.True(t, apperrors.IsCode(err, CodeEmployeeInactive))
	_, err = f.shifts.Update(ctx, sh.ID, ShiftInput{Start: at(t, "2025-11-10T07:00"), End: at(t, "2025-11-10T14:00")})
	assert.True(t, apperrors.IsCode(err, CodeEmployeeInactive))

	// History survives deactivation.
	list, err := f.shifts.ListByEmployee(ctx, e.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestDeletingEmployeeOrphansShifts(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, domain.Dataset{})
	e, err := f.employees.Create(ctx, EmployeeInput{Name: "Anna", Role: "Pflege"})
	require.NoError(t, err)
	sh, err := f.shifts.Create(ctx, e.ID, ShiftInput{Start: at(t, "2025-11-10T06:00"), End: at(t, "2025-11-10T14:00")})
	require.NoError(t, err)
	require.NoError(t, f.employees.Delete(ctx, e.ID))

	orphan, err := f.shifts.Get(ctx, sh.ID)
	require.NoError(t, err)
	assert.Equal(t, e.ID, orphan.EmployeeID)

	_, err = f.shifts.Update(ctx, sh.ID, ShiftInput{Start: at(t, "2025-11-10T06:00"), End: at(t, "2025-11-10T15:00")})
	assert.NoError(t, err)

	entries, err := f.dashboard.Overview(ctx, at(t, "2025-11-12T09:00"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDashboardScenarios(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, domain.Dataset{})
	e, err := f.employees.Create(ctx, EmployeeInput{Name: "Anna", Role: "Pflege"})
	require.NoError(t, err)

	for _, in := range []ShiftInput{
		{Start: at(t, "2025-11-10T06:00"), End: at(t, "2025-11-10T14:00")},
		{Start: at(t, "2025-11-10T14:00"), End: at(t, "2025-11-10T22:00")},
		{Start: at(t, "2025-11-11T22:00"), End: at(t, "2025-11-12T06:00")},
	} {
		_, err := f.shifts.Create(ctx, e.ID, in)
		require.NoError(t, err)
	}

	d, err := f.dashboard.Dashboard(ctx, e.ID, at(t, "2025-11-12T09:00"), 0)
	require.NoError(t, err)
	s := d.Summary
	assert.Equal(t, 24.0, s.TotalHours)
	assert.Equal(t, 3, s.ShiftCount)
	assert.Equal(t, 60.0, s.Utilization)
	assert.Equal(t, 40.0, s.FullTimeHours)
	require.Len(t, s.Daily, 2)
	assert.Equal(t, 16.0, s.Daily[0].Hours)
	assert.Equal(t, 8.0, s.Daily[1].Hours)
	assert.Equal(t, 1, s.Types.Night)
	assert.True(t, s.Week[2].IsToday)

	custom, err := f.dashboard.Dashboard(ctx, e.ID, at(t, "2025-11-12T09:00"), 20)
	require.NoError(t, err)
	assert.Equal(t, 100.0, custom.Summary.Utilization)

	_, err = f.dashboard.Dashboard(ctx, "missing", time.Now(), 0)
	assert.True(t, apperrors.IsCode(err, "NOT_FOUND"))
}

func TestOverviewCoversEveryEmployee(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, persistence.DefaultDataset())

	entries, err := f.dashboard.Overview(ctx, at(t, "2025-11-12T09:00"))
	require.NoError(t, err)
	require.Len(t, entries, 10)

	total := 0
	for i, entry := range entries {
		total += entry.ShiftCount
		assert.Equal(t, entry.ShiftCount, entry.Types.Total())
		assert.LessOrEqual(t, entry.Utilization, 100.0)
		if i > 0 {
			assert.LessOrEqual(t, entries[i-1].Employee.Name, entry.Employee.Name)
		}
	}
	assert.Equal(t, 39, total)
}

type recordingNotifier struct {
	messages []string
	err      error
}

func (r *recordingNotifier) Notify(_ context.Context, text string) error {
	r.messages = append(r.messages, text)
	return r.err
}

func TestNotificationsFollowMutations(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, domain.Dataset{})
	notifier := &recordingNotifier{}
	NewNotificationService(f.dispatcher, zap.NewNop(), notifier, nil).RegisterHandlers()

	e, err := f.employees.Create(ctx, EmployeeInput{Name: "Anna", Role: "Pflege"})
	require.NoError(t, err)
	_, err = f.shifts.Create(ctx, e.ID, ShiftInput{Start: at(t, "2025-11-10T06:00"), End: at(t, "2025-11-10T14:00")})
	require.NoError(t, err)
	_, err = f.employees.ToggleStatus(ctx, e.ID)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Employee added: Anna (Pflege)",
		"Shift added for Anna: 2025-11-10T06:00:00 to 2025-11-10T14:00:00 (morning)",
		"Employee deactivated: Anna",
	}, notifier.messages)
}

func TestNotifierFailureDoesNotFailMutation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, domain.Dataset{})
	NewNotificationService(f.dispatcher, zap.NewNop(), &recordingNotifier{err: errors.New("offline")}, nil).RegisterHandlers()

	_, err := f.employees.Create(ctx, EmployeeInput{Name: "Anna", Role: "Pflege"})
	assert.NoError(t, err)
}

type gatedNotifier struct {
	release  chan struct{}
	mu       sync.Mutex
	messages []string
}

func (g *gatedNotifier) Notify(ctx context.Context, text string) error {
	select {
	case <-g.release:
	case <-ctx.Done():
		return ctx.Err()
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.messages = append(g.messages, text)
	return nil
}

func (g *gatedNotifier) delivered() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.messages...)
}

func TestQueuedNotificationsDoNotBlockMutations(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, domain.Dataset{})
	queue := workerpool.NewPool(1, 8)
	t.Cleanup(queue.Close)
	notifier := &gatedNotifier{release: make(chan struct{})}
	NewNotificationService(f.dispatcher, zap.NewNop(), notifier, queue).RegisterHandlers()

	done := make(chan error, 1)
	go func() {
		e, err := f.employees.Create(ctx, EmployeeInput{Name: "Anna", Role: "Pflege"})
		if err == nil {
			_, err = f.employees.ToggleStatus(ctx, e.ID)
		}
		done <- err
	}()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("mutation waited for the notifier")
	}
	assert.Empty(t, notifier.delivered())

	close(notifier.release)
	assert.Eventually(t, func() bool { return len(notifier.delivered()) == 2 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"Employee added: Anna (Pflege)", "Employee deactivated: Anna"}, notifier.delivered())
}

func TestOperatorLogin(t *testing.T) {
	hash, err := auth.HashPassword("s3cret", bcrypt.MinCost)
	require.NoError(t, err)
	cfg := config.Config{Auth: config.AuthConfig{OperatorUsername: "admin", OperatorPasswordHash: hash}}
	tokens := auth.NewTokenManager("secret", 5)
	svc := NewAuthService(cfg, tokens)

	token, exp, err := svc.Login(context.Background(), "admin", "s3cret")
	require.NoError(t, err)
	assert.True(t, exp.After(time.Now()))
	claims, err := tokens.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, domain.SubjectTypeOperator, claims.Subject)

	_, _, err = svc.Login(context.Background(), "admin", "wrong")
	assert.True(t, apperrors.IsCode(err, "UNAUTHORIZED"))
	_, _, err = svc.Login(context.Background(), "root", "s3cret")
	assert.True(t, apperrors.IsCode(err, "UNAUTHORIZED"))
}
