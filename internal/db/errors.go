package db

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
	ErrInvalidCPF   = errors.New("invalid cpf")
	ErrInvalidInput = errors.New("invalid input")
)

// uniqueViolation detects the store's unique constraint failure. The
// pre-insert existence checks catch duplicates first; this is the backstop
// for concurrent inserts.
func uniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
