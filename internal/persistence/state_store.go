package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/daphos/shift-service/internal/config"
	"github.com/daphos/shift-service/internal/domain"
)

// RedisStateStore keeps the full employee and shift lists as JSON under two fixed keys.
type RedisStateStore struct {
	client       *redis.Client
	employeesKey string
	shiftsKey    string
	logger       *zap.Logger
}

// NewRedisStateStore builds a state store on an existing Redis connection.
func NewRedisStateStore(r *Redis, cfg config.RedisConfig, logger *zap.Logger) *RedisStateStore {
	return &RedisStateStore{
		client:       r.Client,
		employeesKey: cfg.EmployeesKey,
		shiftsKey:    cfg.ShiftsKey,
		logger:       logger,
	}
}

// Load reads both lists. Each list that is absent, unreadable or corrupt is replaced by
// its counterpart from fallback; the failure is logged and never returned.
func (s *RedisStateStore) Load(ctx context.Context, fallback domain.Dataset) domain.Dataset {
	state := fallback.Clone()

	if employees, err := loadList(ctx, s.client, s.employeesKey, DecodeEmployees); err != nil {
		s.logFallback(s.employeesKey, err)
	} else {
		state.Employees = employees
	}

	if shifts, err := loadList(ctx, s.client, s.shiftsKey, DecodeShifts); err != nil {
		s.logFallback(s.shiftsKey, err)
	} else {
		state.Shifts = shifts
	}

	return state
}

// Save writes both lists in one transaction.
func (s *RedisStateStore) Save(ctx context.Context, state domain.Dataset) error {
	employees, err := EncodeEmployees(state.Employees)
	if err != nil {
		return err
	}
	shifts, err := EncodeShifts(state.Shifts)
	if err != nil {
		return err
	}
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, s.employeesKey, employees, 0)
		pipe.Set(ctx, s.shiftsKey, shifts, 0)
		return nil
	})
	if err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

func (s *RedisStateStore) logFallback(key string, err error) {
	if errors.Is(err, redis.Nil) {
		s.logger.Info("no persisted state; using defaults", zap.String("key", key))
		return
	}
	s.logger.Warn("persisted state unusable; using defaults", zap.String("key", key), zap.Error(err))
}

func loadList[T any](ctx context.Context, client *redis.Client, key string, decode func([]byte) ([]T, error)) ([]T, error) {
	payload, err := client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, err
	}
	return decode(payload)
}
