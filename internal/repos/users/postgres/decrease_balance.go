package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fastprodman/marketplace/internal/repos/users"
	"github.com/google/uuid"
)

// DecreaseBalance is a relative update, so it always applies to the balance
// visible to tx rather than to a value read earlier.
func (r *usersRepo) DecreaseBalance(ctx context.Context, tx *sql.Tx, userID uuid.UUID, amount int64) (int64, error) {
	var balance int64

	err := tx.QueryRowContext(ctx, `
		UPDATE users
		SET balance = balance - $2
		WHERE id = $1
		RETURNING balance
	`, userID, amount).Scan(&balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, users.ErrUserNotFound
		}

		return 0, fmt.Errorf("decrease balance: %w", err)
	}

	return balance, nil
}
