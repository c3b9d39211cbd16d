package pgutils

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes the repositories care about.
const (
	CodeUniqueViolation     = "23505"
	CodeForeignKeyViolation = "23503"
	CodeLockNotAvailable    = "55P03"
)

// HasCode reports whether err wraps a Postgres error with the given SQLSTATE.
func HasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}

	return false
}

func IsUniqueViolation(err error) bool { return HasCode(err, CodeUniqueViolation) }

func IsForeignKeyViolation(err error) bool { return HasCode(err, CodeForeignKeyViolation) }

// IsLockNotAvailable matches lock_timeout expiry and NOWAIT failures.
func IsLockNotAvailable(err error) bool { return HasCode(err, CodeLockNotAvailable) }
