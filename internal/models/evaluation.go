package models

import "time"

// Evaluation is an immutable ledger entry. Points stores the delta that was
// applied at insert time; history never re-derives it from the category.
type Evaluation struct {
	ID          int64     `db:"id" json:"id"`
	EmployeeID  int64     `db:"employee_id" json:"employeeId"`
	Category    string    `db:"category" json:"tipo"`
	Description *string   `db:"description" json:"descricao"`
	Points      int       `db:"points" json:"pontos"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// AdminRecord is an administrative note. It never affects the score.
type AdminRecord struct {
	ID          int64     `db:"id" json:"id"`
	EmployeeID  int64     `db:"employee_id" json:"employeeId"`
	Category    string    `db:"category" json:"tipo"`
	Description *string   `db:"description" json:"descricao"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}
