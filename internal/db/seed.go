package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/guardiao/gestao/internal/models"
)

// EnsureAdminUser creates the bootstrap admin account if the email is not
// registered yet. Called once at startup; an existing account wins.
func EnsureAdminUser(ctx context.Context, database *sql.DB, email, name, passwordHash string) (bool, error) {
	if email == "" {
		return false, nil
	}
	_, err := CreateAuthUser(ctx, database, email, name, passwordHash, []string{string(models.RoleAdmin)})
	if errors.Is(err, ErrConflict) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
