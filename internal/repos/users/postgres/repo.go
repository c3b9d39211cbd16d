package users

import (
	"database/sql"

	"github.com/fastprodman/marketplace/internal/repos/users"
)

var _ users.Users = (*usersRepo)(nil)

type usersRepo struct{ db *sql.DB }

func New(db *sql.DB) *usersRepo {
	return &usersRepo{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (users.User, error) {
	var u users.User

	err := row.Scan(&u.ID, &u.Name, &u.Balance, &u.CreatedAt)
	if err != nil {
		return users.User{}, err //nolint:wrapcheck
	}

	return u, nil
}
