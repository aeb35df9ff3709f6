package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/guardiao/gestao/internal/models"
)

// EvaluationReport joins matching evaluations to their employees, newest
// first. Orphaned evaluations (deleted employee) drop out via the inner
// join. Aggregates are computed over the same matching set.
func EvaluationReport(ctx context.Context, database *sql.DB, f models.ReportFilter) (*models.ReportResult, error) {
	rows, err := database.QueryContext(ctx, `
SELECT v.created_at, e.name, e.cpf, e.post, v.category, v.points, v.description
FROM evaluations v
JOIN employees e ON e.id = v.employee_id
WHERE ($1::timestamptz IS NULL OR v.created_at >= $1)
  AND ($2::timestamptz IS NULL OR v.created_at < $2::timestamptz + INTERVAL '1 day')
  AND ($3::text IS NULL OR e.post = $3)
  AND ($4::text IS NULL OR v.category = $4)
ORDER BY v.created_at DESC`,
		f.Start, f.End, f.Post, f.Category)
	if err != nil {
		return nil, fmt.Errorf("evaluation report: %w", err)
	}
	defer rows.Close()

	res := &models.ReportResult{
		CountByCategory: map[string]int{},
		Items:           []models.ReportItem{},
	}
	for rows.Next() {
		var it models.ReportItem
		if err := rows.Scan(&it.CreatedAt, &it.Employee, &it.CPF, &it.Post, &it.Category, &it.Points, &it.Description); err != nil {
			return nil, err
		}
		res.Items = append(res.Items, it)
		res.TotalCount++
		res.PointSum += it.Points
		res.CountByCategory[strings.ToLower(it.Category)]++
	}
	return res, rows.Err()
}

// Summary returns the dashboard KPIs: employee count, average score and a
// label for the most recent evaluation.
func Summary(ctx context.Context, database *sql.DB) (*models.EmployeeSummary, error) {
	row := database.QueryRowContext(ctx, `
SELECT
  (SELECT count(*) FROM employees),
  (SELECT avg(score)::float8 FROM employees),
  (SELECT category || ' ' || to_char(created_at, 'DD/MM HH24:MI')
     FROM evaluations ORDER BY created_at DESC LIMIT 1)`)

	var s models.EmployeeSummary
	var avg sql.NullFloat64
	var last sql.NullString
	if err := row.Scan(&s.Count, &avg, &last); err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}
	if avg.Valid {
		s.AvgScore = &avg.Float64
	}
	if last.Valid {
		s.LastAction = &last.String
	}
	return &s, nil
}
