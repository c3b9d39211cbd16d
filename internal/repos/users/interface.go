package users

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound = errors.New("user not found")
	// ErrRowLocked means the row lock was not granted before lock_timeout.
	ErrRowLocked = errors.New("user row is locked")
)

// User is an account that orders are debited against.
type User struct {
	ID        uuid.UUID
	Name      string
	Balance   int64
	CreatedAt time.Time
}

// Summary is the committed state of an account as seen by a single read.
type Summary struct {
	Balance    int64
	OrderCount int64
}

type Users interface {
	Create(ctx context.Context, name string, balance int64) (User, error)
	Get(ctx context.Context, userID uuid.UUID) (User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, user User) (User, error)
	Delete(ctx context.Context, userID uuid.UUID) error

	// LockForUpdate reads the row with FOR UPDATE; the lock is held until tx ends.
	LockForUpdate(ctx context.Context, tx *sql.Tx, userID uuid.UUID) (User, error)
	// DecreaseBalance subtracts amount from the balance as seen by tx and
	// returns the new balance.
	DecreaseBalance(ctx context.Context, tx *sql.Tx, userID uuid.UUID, amount int64) (int64, error)
	Summary(ctx context.Context, userID uuid.UUID) (Summary, error)
}
