package orders

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fastprodman/marketplace/internal/infra/pgutils"
	"github.com/fastprodman/marketplace/internal/repos/orders"
	"github.com/google/uuid"
)

var _ orders.Orders = (*ordersRepo)(nil)

type ordersRepo struct{ db *sql.DB }

func New(db *sql.DB) *ordersRepo {
	return &ordersRepo{db: db}
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func insert(ctx context.Context, q queryRower, amount int64, userID uuid.UUID) (orders.Order, error) {
	o := orders.Order{ID: uuid.New(), Amount: amount, UserID: userID}

	err := q.QueryRowContext(ctx, `
		INSERT INTO orders (id, amount, user_id)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`, o.ID, o.Amount, o.UserID).Scan(&o.CreatedAt)
	if err != nil {
		return orders.Order{}, convertWriteErr(err, "insert order")
	}

	return o, nil
}

func (r *ordersRepo) Insert(ctx context.Context, tx *sql.Tx, amount int64, userID uuid.UUID) (orders.Order, error) {
	return insert(ctx, tx, amount, userID)
}

func (r *ordersRepo) Create(ctx context.Context, amount int64, userID uuid.UUID) (orders.Order, error) {
	return insert(ctx, r.db, amount, userID)
}

func (r *ordersRepo) Get(ctx context.Context, orderID uuid.UUID) (orders.Order, error) {
	var o orders.Order

	err := r.db.QueryRowContext(ctx, `
		SELECT id, amount, user_id, created_at
		FROM orders
		WHERE id = $1
	`, orderID).Scan(&o.ID, &o.Amount, &o.UserID, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return orders.Order{}, orders.ErrOrderNotFound
		}

		return orders.Order{}, fmt.Errorf("get order: %w", err)
	}

	return o, nil
}

func (r *ordersRepo) List(ctx context.Context) ([]orders.Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, amount, user_id, created_at
		FROM orders
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	list := make([]orders.Order, 0)
	for rows.Next() {
		var o orders.Order

		err = rows.Scan(&o.ID, &o.Amount, &o.UserID, &o.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}

	return list, nil
}

// Update replaces amount and owner.
func (r *ordersRepo) Update(ctx context.Context, order orders.Order) (orders.Order, error) {
	err := r.db.QueryRowContext(ctx, `
		UPDATE orders
		SET amount = $2, user_id = $3
		WHERE id = $1
		RETURNING created_at
	`, order.ID, order.Amount, order.UserID).Scan(&order.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return orders.Order{}, orders.ErrOrderNotFound
		}

		return orders.Order{}, convertWriteErr(err, "update order")
	}

	return order, nil
}

func (r *ordersRepo) Delete(ctx context.Context, orderID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, orderID)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}

	if affected == 0 {
		return orders.ErrOrderNotFound
	}

	return nil
}

func convertWriteErr(err error, op string) error {
	if pgutils.IsForeignKeyViolation(err) {
		return fmt.Errorf("%s: %w", op, orders.ErrUnknownUser)
	}

	return fmt.Errorf("%s: %w", op, err)
}
