package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fastprodman/marketplace/internal/repos/users"
	"github.com/google/uuid"
)

// Summary reads balance and order count in one statement, so both values
// come from the same snapshot.
func (r *usersRepo) Summary(ctx context.Context, userID uuid.UUID) (users.Summary, error) {
	var s users.Summary

	err := r.db.QueryRowContext(ctx, `
		SELECT u.balance,
		       (SELECT COUNT(*) FROM orders o WHERE o.user_id = u.id)
		FROM users u
		WHERE u.id = $1
	`, userID).Scan(&s.Balance, &s.OrderCount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.Summary{}, users.ErrUserNotFound
		}

		return users.Summary{}, fmt.Errorf("read summary: %w", err)
	}

	return s, nil
}
