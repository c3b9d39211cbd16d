package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fastprodman/marketplace/internal/infra/pgutils"
	"github.com/fastprodman/marketplace/internal/repos/users"
	"github.com/google/uuid"
)

func (r *usersRepo) LockForUpdate(ctx context.Context, tx *sql.Tx, userID uuid.UUID) (users.User, error) {
	u, err := scanUser(tx.QueryRowContext(ctx, `
		SELECT id, name, balance, created_at
		FROM users
		WHERE id = $1
		FOR UPDATE
	`, userID))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return users.User{}, users.ErrUserNotFound
		case pgutils.IsLockNotAvailable(err):
			return users.User{}, fmt.Errorf("lock user: %w", users.ErrRowLocked)
		default:
			return users.User{}, fmt.Errorf("lock user: %w", err)
		}
	}

	return u, nil
}
