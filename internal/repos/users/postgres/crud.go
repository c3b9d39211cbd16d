package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fastprodman/marketplace/internal/repos/users"
	"github.com/google/uuid"
)

func (r *usersRepo) Create(ctx context.Context, name string, balance int64) (users.User, error) {
	u := users.User{ID: uuid.New(), Name: name, Balance: balance}

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (id, name, balance)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`, u.ID, u.Name, u.Balance).Scan(&u.CreatedAt)
	if err != nil {
		return users.User{}, fmt.Errorf("insert user: %w", err)
	}

	return u, nil
}

func (r *usersRepo) Get(ctx context.Context, userID uuid.UUID) (users.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, `
		SELECT id, name, balance, created_at
		FROM users
		WHERE id = $1
	`, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.User{}, users.ErrUserNotFound
		}

		return users.User{}, fmt.Errorf("get user: %w", err)
	}

	return u, nil
}

func (r *usersRepo) List(ctx context.Context) ([]users.User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, balance, created_at
		FROM users
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	list := make([]users.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	return list, nil
}

// Update replaces name and balance.
func (r *usersRepo) Update(ctx context.Context, user users.User) (users.User, error) {
	err := r.db.QueryRowContext(ctx, `
		UPDATE users
		SET name = $2, balance = $3
		WHERE id = $1
		RETURNING created_at
	`, user.ID, user.Name, user.Balance).Scan(&user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.User{}, users.ErrUserNotFound
		}

		return users.User{}, fmt.Errorf("update user: %w", err)
	}

	return user, nil
}

// Delete removes the user; its orders go with it (ON DELETE CASCADE).
func (r *usersRepo) Delete(ctx context.Context, userID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}

	if affected == 0 {
		return users.ErrUserNotFound
	}

	return nil
}
