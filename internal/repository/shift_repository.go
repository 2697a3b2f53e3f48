package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/daphos/shift-service/internal/domain"
)

type shiftRepository struct {
	pool *pgxpool.Pool
}

// NewShiftRepository returns a Postgres-backed implementation.
// starts_at/ends_at are TIMESTAMP columns, so the wall clock round-trips unchanged.
func NewShiftRepository(pool *pgxpool.Pool) ShiftRepository {
	return &shiftRepository{pool: pool}
}

const shiftColumns = `id, employee_id, starts_at, ends_at, note, created_at, updated_at`

func (r *shiftRepository) Create(ctx context.Context, shift *domain.Shift) error {
	const query = `
        INSERT INTO shifts (id, employee_id, starts_at, ends_at, note)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		shift.ID,
		shift.EmployeeID,
		shift.Start,
		shift.End,
		shift.Note,
	).Scan(&shift.CreatedAt, &shift.UpdatedAt)
}

func (r *shiftRepository) Update(ctx context.Context, shift *domain.Shift) error {
	const query = `
        UPDATE shifts SET starts_at=$1, ends_at=$2, note=$3, updated_at=NOW()
        WHERE id=$4
        RETURNING updated_at`

	err := r.pool.QueryRow(ctx, query,
		shift.Start,
		shift.End,
		shift.Note,
		shift.ID,
	).Scan(&shift.UpdatedAt)
	return translate(err)
}

func (r *shiftRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM shifts WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *shiftRepository) GetByID(ctx context.Context, id string) (*domain.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE id=$1`

	var shift domain.Shift
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&shift.ID,
		&shift.EmployeeID,
		&shift.Start,
		&shift.End,
		&shift.Note,
		&shift.CreatedAt,
		&shift.UpdatedAt,
	); err != nil {
		return nil, translate(err)
	}
	return &shift, nil
}

func (r *shiftRepository) ListByEmployee(ctx context.Context, employeeID string) ([]domain.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE employee_id=$1 ORDER BY starts_at ASC, id ASC`
	return r.query(ctx, query, employeeID)
}

func (r *shiftRepository) List(ctx context.Context) ([]domain.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts ORDER BY starts_at ASC, id ASC`
	return r.query(ctx, query)
}

func (r *shiftRepository) query(ctx context.Context, query string, args ...any) ([]domain.Shift, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Shift{}
	for rows.Next() {
		var shift domain.Shift
		if err := rows.Scan(
			&shift.ID,
			&shift.EmployeeID,
			&shift.Start,
			&shift.End,
			&shift.Note,
			&shift.CreatedAt,
			&shift.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, shift)
	}
	return result, rows.Err()
}
