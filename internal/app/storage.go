// Package app wires configuration, storage and services into runnable processes.
package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/daphos/shift-service/internal/api/http/handlers"
	"github.com/daphos/shift-service/internal/config"
	"github.com/daphos/shift-service/internal/domain"
	"github.com/daphos/shift-service/internal/persistence"
	"github.com/daphos/shift-service/internal/repository"
	"github.com/daphos/shift-service/internal/repository/memory"
	"github.com/daphos/shift-service/internal/repository/sqlite"
)

// ErrStoreNotEmpty is returned by Seed when the store already holds employees.
var ErrStoreNotEmpty = errors.New("store already contains employees")

// Storage is the repository pair selected by STORAGE_DRIVER plus what is needed to probe and close it.
type Storage struct {
	Driver    string
	Employees repository.EmployeeRepository
	Shifts    repository.ShiftRepository
	Checks    map[string]handlers.PingFunc

	memory  *memory.Store
	closers []func()
}

// OpenStorage connects the configured backend. The memory driver restores its
// snapshot from Redis and falls back to the default dataset.
func OpenStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Storage, error) {
	s := &Storage{Driver: cfg.Storage.Driver, Checks: map[string]handlers.PingFunc{}}

	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, pg.Close)
		if cfg.Postgres.RunMigrations {
			if err := persistence.RunMigrations(ctx, pg.PoolHandle(), cfg.Postgres.MigrationsDir, logger); err != nil {
				s.Close()
				return nil, err
			}
		}
		s.Employees = repository.NewEmployeeRepository(pg.PoolHandle())
		s.Shifts = repository.NewShiftRepository(pg.PoolHandle())
		s.Checks["postgres"] = pg.Ping

	case config.StorageSQLite:
		db, err := persistence.OpenSQLite(ctx, cfg.SQLite, logger)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, func() { _ = db.Close() })
		s.Employees = sqlite.NewEmployeeRepo(db)
		s.Shifts = sqlite.NewShiftRepo(db)
		s.Checks["sqlite"] = db.PingContext

	case config.StorageMemory:
		redis := persistence.NewRedis(ctx, cfg.Redis, logger)
		s.closers = append(s.closers, redis.Close)
		state := persistence.NewRedisStateStore(redis, cfg.Redis, logger)
		s.memory = memory.Open(ctx, state, persistence.DefaultDataset())
		s.Employees = s.memory.Employees()
		s.Shifts = s.memory.Shifts()
		s.Checks["redis"] = redis.Ping

	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
	}

	logger.Info("storage ready", zap.String("driver", cfg.Storage.Driver))
	return s, nil
}

// NewMemoryStorage wraps an already opened memory store.
func NewMemoryStorage(store *memory.Store) *Storage {
	return &Storage{
		Driver:    config.StorageMemory,
		Employees: store.Employees(),
		Shifts:    store.Shifts(),
		Checks:    map[string]handlers.PingFunc{},
		memory:    store,
	}
}

// Seed loads data into an empty database. The memory store is reset to data instead.
func (s *Storage) Seed(ctx context.Context, data domain.Dataset) error {
	if s.memory != nil {
		return s.memory.Replace(ctx, data)
	}
	existing, err := s.Employees.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return ErrStoreNotEmpty
	}

	for i := range data.Employees {
		e := data.Employees[i]
		if err := s.Employees.Create(ctx, &e); err != nil {
			return fmt.Errorf("seed employee %s: %w", e.ID, err)
		}
	}
	for i := range data.Shifts {
		sh := data.Shifts[i]
		if err := s.Shifts.Create(ctx, &sh); err != nil {
			return fmt.Errorf("seed shift %s: %w", sh.ID, err)
		}
	}
	return nil
}

// Close releases connections in reverse order of opening.
func (s *Storage) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	s.closers = nil
}
