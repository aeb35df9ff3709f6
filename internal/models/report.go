package models

import "time"

// ReportFilter composes the optional evaluation report filters with AND
// semantics. End is extended to the end of its day by the query.
type ReportFilter struct {
	Start    *time.Time
	End      *time.Time
	Post     *string
	Category *string
}

type ReportItem struct {
	CreatedAt   time.Time `json:"data"`
	Employee    string    `json:"colaborador"`
	CPF         string    `json:"cpf"`
	Post        *string   `json:"posto"`
	Category    string    `json:"tipo"`
	Points      int       `json:"pontos"`
	Description *string   `json:"descricao"`
}

type ReportResult struct {
	TotalCount      int            `json:"totalRegistros"`
	PointSum        int            `json:"somaPontos"`
	CountByCategory map[string]int `json:"porTipo"`
	Items           []ReportItem   `json:"items"`
}
