package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/guardiao/gestao/internal/models"
)

// ApplyEvaluation resolves the category delta, appends the ledger row and
// adds the delta to the employee's score inside one transaction. Both writes
// commit together or neither does. Returns the applied delta.
//
// Deliberately not idempotent: every call is a distinct event and stacks.
func ApplyEvaluation(ctx context.Context, database *sql.DB, deltas models.DeltaTable, employeeID int64, category string, description *string) (int, error) {
	delta := deltas.Delta(category)

	tx, err := database.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin evaluation tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
INSERT INTO evaluations (employee_id, category, description, points, created_at)
VALUES ($1, $2, $3, $4, $5)`,
		employeeID, category, description, delta, time.Now().UTC(),
	); err != nil {
		return 0, fmt.Errorf("insert evaluation: %w", err)
	}

	// Relative increment: the store serializes concurrent deltas, so no
	// read-modify-write and no lost updates.
	res, err := tx.ExecContext(ctx, `
UPDATE employees SET score = score + $1 WHERE id = $2`, delta, employeeID)
	if err != nil {
		return 0, fmt.Errorf("apply delta: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit evaluation: %w", err)
	}
	return delta, nil
}

func ListEvaluationsByEmployee(ctx context.Context, database *sql.DB, employeeID int64) ([]models.Evaluation, error) {
	rows, err := database.QueryContext(ctx, `
SELECT id, employee_id, category, description, points, created_at
FROM evaluations
WHERE employee_id = $1
ORDER BY created_at DESC`, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list evaluations: %w", err)
	}
	defer rows.Close()

	var out []models.Evaluation
	for rows.Next() {
		var ev models.Evaluation
		if err := rows.Scan(&ev.ID, &ev.EmployeeID, &ev.Category, &ev.Description, &ev.Points, &ev.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}
