package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/guardiao/gestao/internal/models"
)

func GetAuthUserByEmail(ctx context.Context, database *sql.DB, email string) (*models.AuthUser, error) {
	row := database.QueryRowContext(ctx, `
SELECT id, email, name, password_hash, roles, created_at
FROM auth_users
WHERE lower(email) = lower($1)`, email)

	var u models.AuthUser
	var roles string
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &roles, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get auth user: %w", err)
	}
	u.Roles = models.SplitRoles(roles)
	return &u, nil
}

func CreateAuthUser(ctx context.Context, database *sql.DB, email, name, passwordHash string, roles []string) (int64, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var exists bool
	if err := database.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM auth_users WHERE lower(email) = $1)`, email).Scan(&exists); err != nil {
		return 0, fmt.Errorf("check auth user: %w", err)
	}
	if exists {
		return 0, ErrConflict
	}

	var id int64
	err := database.QueryRowContext(ctx, `
INSERT INTO auth_users (email, name, password_hash, roles)
VALUES ($1, $2, $3, $4)
RETURNING id`,
		email, name, passwordHash, models.JoinRoles(roles),
	).Scan(&id)
	if uniqueViolation(err) {
		return 0, ErrConflict
	}
	if err != nil {
		return 0, fmt.Errorf("create auth user: %w", err)
	}
	return id, nil
}
