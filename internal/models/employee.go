package models

import "time"

const DefaultScore = 1000

type Employee struct {
	ID        int64      `db:"id" json:"id"`
	Name      string     `db:"name" json:"nome"`
	CPF       string     `db:"cpf" json:"cpf"`
	Post      *string    `db:"post" json:"posto"`
	Admission *time.Time `db:"admission_date" json:"admissao"`
	Score     int        `db:"score" json:"score"`
}

// NewEmployee carries the fields accepted on insert. Score nil means the
// default of 1000.
type NewEmployee struct {
	Name      string
	CPF       string
	Post      *string
	Admission *time.Time
	Score     *int
}

// UpdateEmployee overwrites everything except the score, which only the
// evaluation ledger may touch.
type UpdateEmployee struct {
	Name      string
	CPF       string
	Post      *string
	Admission *time.Time
}

type EmployeeSummary struct {
	Count      int      `json:"count"`
	AvgScore   *float64 `json:"avgScore"`
	LastAction *string  `json:"lastAction"`
}
