package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/guardiao/gestao/internal/models"
)

// InsertAdminRecord appends a non-scoring note. Insert-only.
func InsertAdminRecord(ctx context.Context, database *sql.DB, employeeID int64, category string, description *string) error {
	if employeeID == 0 {
		return fmt.Errorf("%w: employee id required", ErrInvalidInput)
	}
	if _, err := database.ExecContext(ctx, `
INSERT INTO admin_records (employee_id, category, description, created_at)
VALUES ($1, $2, $3, $4)`,
		employeeID, category, description, time.Now().UTC(),
	); err != nil {
		return fmt.Errorf("insert admin record: %w", err)
	}
	return nil
}

func ListAdminRecordsByEmployee(ctx context.Context, database *sql.DB, employeeID int64) ([]models.AdminRecord, error) {
	rows, err := database.QueryContext(ctx, `
SELECT id, employee_id, category, description, created_at
FROM admin_records
WHERE employee_id = $1
ORDER BY created_at DESC`, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list admin records: %w", err)
	}
	defer rows.Close()

	var out []models.AdminRecord
	for rows.Next() {
		var rec models.AdminRecord
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.Category, &rec.Description, &rec.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
