// Package sqlite stores employees and shifts in an embedded SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/daphos/shift-service/internal/domain"
	"github.com/daphos/shift-service/internal/repository"
)

const stampLayout = time.RFC3339Nano

var (
	_ repository.EmployeeRepository = (*EmployeeRepo)(nil)
	_ repository.ShiftRepository    = (*ShiftRepo)(nil)
)

type EmployeeRepo struct {
	db *sql.DB
}

func NewEmployeeRepo(db *sql.DB) *EmployeeRepo {
	return &EmployeeRepo{db: db}
}

func (r *EmployeeRepo) Create(ctx context.Context, employee *domain.Employee) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO employees (id, name, role, is_active, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		employee.ID,
		employee.Name,
		employee.Role,
		employee.IsActive,
		now.Format(stampLayout),
		now.Format(stampLayout),
	)
	if err != nil {
		return err
	}
	employee.CreatedAt, employee.UpdatedAt = now, now
	return nil
}

func (r *EmployeeRepo) Update(ctx context.Context, employee *domain.Employee) error {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`UPDATE employees SET name = ?, role = ?, is_active = ?, updated_at = ? WHERE id = ?`,
		employee.Name,
		employee.Role,
		employee.IsActive,
		now.Format(stampLayout),
		employee.ID,
	)
	if err := affected(res, err); err != nil {
		return err
	}
	employee.UpdatedAt = now
	return nil
}

func (r *EmployeeRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE id = ?`, id)
	return affected(res, err)
}

func (r *EmployeeRepo) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, role, is_active, created_at, updated_at FROM employees WHERE id = ?`, id)
	employee, err := scanEmployee(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *EmployeeRepo) List(ctx context.Context) ([]domain.Employee, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, role, is_active, created_at, updated_at FROM employees ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := []domain.Employee{}
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}
	return employees, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row scanner) (domain.Employee, error) {
	var (
		e                domain.Employee
		created, updated string
	)
	if err := row.Scan(&e.ID, &e.Name, &e.Role, &e.IsActive, &created, &updated); err != nil {
		return e, err
	}
	var err error
	if e.CreatedAt, err = time.Parse(stampLayout, created); err != nil {
		return e, err
	}
	if e.UpdatedAt, err = time.Parse(stampLayout, updated); err != nil {
		return e, err
	}
	return e, nil
}

func affected(res sql.Result, err error) error {
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
