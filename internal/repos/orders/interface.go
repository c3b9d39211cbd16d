package orders

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	// ErrUnknownUser is returned when an order references a user that does not exist.
	ErrUnknownUser = errors.New("order references unknown user")
)

// Order is a single debit against a user.
type Order struct {
	ID        uuid.UUID
	Amount    int64
	UserID    uuid.UUID
	CreatedAt time.Time
}

type Orders interface {
	Create(ctx context.Context, amount int64, userID uuid.UUID) (Order, error)
	Get(ctx context.Context, orderID uuid.UUID) (Order, error)
	List(ctx context.Context) ([]Order, error)
	Update(ctx context.Context, order Order) (Order, error)
	Delete(ctx context.Context, orderID uuid.UUID) error

	// Insert stages a new order inside tx.
	Insert(ctx context.Context, tx *sql.Tx, amount int64, userID uuid.UUID) (Order, error)
}
