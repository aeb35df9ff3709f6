package app

import "time"

// One named type per wire shape; handlers never return ad-hoc maps.

type errorResponse struct {
	Error string `json:"error"`
}

type pingResponse struct {
	OK   bool      `json:"ok"`
	Time time.Time `json:"time"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type registerRequest struct {
	Email    string   `json:"email"`
	Name     string   `json:"name"`
	Password string   `json:"password"`
	Roles    []string `json:"roles,omitempty"`
}

type idResponse struct {
	ID int64 `json:"id"`
}

type employeeRequest struct {
	Nome     string  `json:"nome"`
	CPF      string  `json:"cpf"`
	Posto    *string `json:"posto"`
	Admissao *string `json:"admissao"` // YYYY-MM-DD
	Score    *int    `json:"score"`    // insert only; update ignores it
}

type evaluationRequest struct {
	EmployeeID int64   `json:"employeeId"`
	Tipo       string  `json:"tipo"`
	Descricao  *string `json:"descricao"`
}

type deltaResponse struct {
	Delta int `json:"delta"`
}

type adminRecordRequest struct {
	EmployeeID int64   `json:"employeeId"`
	Tipo       string  `json:"tipo"`
	Descricao  *string `json:"descricao"`
}
