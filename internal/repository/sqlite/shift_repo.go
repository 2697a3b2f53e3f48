package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/daphos/shift-service/internal/domain"
	"github.com/daphos/shift-service/internal/repository"
)

const shiftColumns = `id, employee_id, starts_at, ends_at, note, created_at, updated_at`

// ShiftRepo stores starts_at/ends_at as fixed-width local timestamps so
// lexical order matches chronological order.
type ShiftRepo struct {
	db *sql.DB
}

func NewShiftRepo(db *sql.DB) *ShiftRepo {
	return &ShiftRepo{db: db}
}

func (r *ShiftRepo) Create(ctx context.Context, shift *domain.Shift) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO shifts (`+shiftColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		shift.ID,
		shift.EmployeeID,
		domain.FormatLocalTime(shift.Start),
		domain.FormatLocalTime(shift.End),
		shift.Note,
		now.Format(stampLayout),
		now.Format(stampLayout),
	)
	if err != nil {
		return err
	}
	shift.CreatedAt, shift.UpdatedAt = now, now
	return nil
}

func (r *ShiftRepo) Update(ctx context.Context, shift *domain.Shift) error {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`UPDATE shifts SET starts_at = ?, ends_at = ?, note = ?, updated_at = ? WHERE id = ?`,
		domain.FormatLocalTime(shift.Start),
		domain.FormatLocalTime(shift.End),
		shift.Note,
		now.Format(stampLayout),
		shift.ID,
	)
	if err := affected(res, err); err != nil {
		return err
	}
	shift.UpdatedAt = now
	return nil
}

func (r *ShiftRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM shifts WHERE id = ?`, id)
	return affected(res, err)
}

func (r *ShiftRepo) GetByID(ctx context.Context, id string) (*domain.Shift, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+shiftColumns+` FROM shifts WHERE id = ?`, id)
	shift, err := scanShift(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

func (r *ShiftRepo) ListByEmployee(ctx context.Context, employeeID string) ([]domain.Shift, error) {
	return r.query(ctx,
		`SELECT `+shiftColumns+` FROM shifts WHERE employee_id = ? ORDER BY starts_at, id`, employeeID)
}

func (r *ShiftRepo) List(ctx context.Context) ([]domain.Shift, error) {
	return r.query(ctx, `SELECT `+shiftColumns+` FROM shifts ORDER BY starts_at, id`)
}

func (r *ShiftRepo) query(ctx context.Context, query string, args ...any) ([]domain.Shift, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shifts := []domain.Shift{}
	for rows.Next() {
		shift, err := scanShift(rows)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, shift)
	}
	return shifts, rows.Err()
}

func scanShift(row scanner) (domain.Shift, error) {
	var (
		s                            domain.Shift
		start, end, created, updated string
	)
	if err := row.Scan(&s.ID, &s.EmployeeID, &start, &end, &s.Note, &created, &updated); err != nil {
		return s, err
	}
	var err error
	if s.Start, err = domain.ParseLocalTime(start); err != nil {
		return s, err
	}
	if s.End, err = domain.ParseLocalTime(end); err != nil {
		return s, err
	}
	if s.CreatedAt, err = time.Parse(stampLayout, created); err != nil {
		return s, err
	}
	if s.UpdatedAt, err = time.Parse(stampLayout, updated); err != nil {
		return s, err
	}
	return s, nil
}
