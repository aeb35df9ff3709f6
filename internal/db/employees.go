package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/guardiao/gestao/internal/cpf"
	"github.com/guardiao/gestao/internal/models"
)

const employeeColumns = `id, name, cpf, post, admission_date, score`

func ListEmployees(ctx context.Context, database *sql.DB) ([]models.Employee, error) {
	rows, err := database.QueryContext(ctx, `
SELECT `+employeeColumns+`
FROM employees
ORDER BY lower(name)`)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	return scanEmployees(rows)
}

// SearchEmployees matches the query as a case-insensitive substring of the
// name or the CPF. An empty query returns everything, same order as List.
func SearchEmployees(ctx context.Context, database *sql.DB, query string) ([]models.Employee, error) {
	rows, err := database.QueryContext(ctx, `
SELECT `+employeeColumns+`
FROM employees
WHERE $1 = '' OR name ILIKE '%' || $1 || '%' OR cpf ILIKE '%' || $1 || '%'
ORDER BY lower(name)`, query)
	if err != nil {
		return nil, fmt.Errorf("search employees: %w", err)
	}
	defer rows.Close()
	return scanEmployees(rows)
}

func GetEmployee(ctx context.Context, database *sql.DB, id int64) (*models.Employee, error) {
	row := database.QueryRowContext(ctx, `
SELECT `+employeeColumns+`
FROM employees
WHERE id = $1`, id)

	var e models.Employee
	err := row.Scan(&e.ID, &e.Name, &e.CPF, &e.Post, &e.Admission, &e.Score)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get employee %d: %w", id, err)
	}
	return &e, nil
}

// InsertEmployee normalizes and validates the CPF before any write, then
// creates the row. Returns ErrInvalidCPF or ErrConflict accordingly.
func InsertEmployee(ctx context.Context, database *sql.DB, e models.NewEmployee) (int64, error) {
	number := cpf.Normalize(e.CPF)
	if !cpf.IsValid(number) {
		return 0, ErrInvalidCPF
	}

	var exists bool
	if err := database.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM employees WHERE cpf = $1)`, number).Scan(&exists); err != nil {
		return 0, fmt.Errorf("check cpf: %w", err)
	}
	if exists {
		return 0, ErrConflict
	}

	score := models.DefaultScore
	if e.Score != nil {
		score = *e.Score
	}

	var id int64
	err := database.QueryRowContext(ctx, `
INSERT INTO employees (name, cpf, post, admission_date, score)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`,
		e.Name, number, e.Post, e.Admission, score,
	).Scan(&id)
	if uniqueViolation(err) {
		return 0, ErrConflict
	}
	if err != nil {
		return 0, fmt.Errorf("insert employee: %w", err)
	}
	return id, nil
}

// UpdateEmployee overwrites name, cpf, post and admission date. The score is
// never written through this path.
func UpdateEmployee(ctx context.Context, database *sql.DB, id int64, e models.UpdateEmployee) error {
	number := cpf.Normalize(e.CPF)
	if !cpf.IsValid(number) {
		return ErrInvalidCPF
	}

	res, err := database.ExecContext(ctx, `
UPDATE employees
SET name = $1, cpf = $2, post = $3, admission_date = $4
WHERE id = $5`,
		e.Name, number, e.Post, e.Admission, id,
	)
	if uniqueViolation(err) {
		return ErrConflict
	}
	if err != nil {
		return fmt.Errorf("update employee %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteEmployee hard-deletes the row. Evaluation and admin record rows are
// left behind on purpose; reports join them out.
func DeleteEmployee(ctx context.Context, database *sql.DB, id int64) error {
	res, err := database.ExecContext(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanEmployees(rows *sql.Rows) ([]models.Employee, error) {
	var out []models.Employee
	for rows.Next() {
		var e models.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.CPF, &e.Post, &e.Admission, &e.Score); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
