package marketplace

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fastprodman/marketplace/internal/config"
	"github.com/fastprodman/marketplace/internal/infra/pgutils"
	"github.com/fastprodman/marketplace/internal/repos/orders"
	pgorders "github.com/fastprodman/marketplace/internal/repos/orders/postgres"
	"github.com/fastprodman/marketplace/internal/repos/users"
	pgusers "github.com/fastprodman/marketplace/internal/repos/users/postgres"
)

type Service struct {
	db     *sql.DB
	users  users.Users
	orders orders.Orders
	policy Policy
}

func New(db *sql.DB, cfg config.MarketplaceConfig) *Service {
	return &Service{
		db:     db,
		users:  pgusers.New(db),
		orders: pgorders.New(db),
		policy: Policy{
			LockTimeout:          cfg.LockTimeout,
			AllowNegativeBalance: cfg.AllowNegativeBalance,
		},
	}
}

// PlaceOrders runs the whole batch in a single DB transaction:
//
// 1) Lock the user row (FOR UPDATE), bounded by the policy lock timeout.
// 2) For each line in input order: validate, insert the order, decrement the balance.
// 3) Commit.
// 4) Read balance and order count from committed state.
//
// Any failure before commit rolls back every staged order and debit.
func (s *Service) PlaceOrders(ctx context.Context, p Placement) (Summary, error) {
	log := slog.With("user_id", p.UserID, "lines", len(p.Lines))

	var balance int64

	err := pgutils.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if s.policy.LockTimeout > 0 {
			err := pgutils.SetLockTimeout(ctx, tx, s.policy.LockTimeout)
			if err != nil {
				return err
			}
		}

		// 1) Lock user row
		user, err := s.users.LockForUpdate(ctx, tx, p.UserID)
		if err != nil {
			return fmt.Errorf("lock user: %w", err)
		}

		balance = user.Balance

		// 2) Stage every line
		for i, line := range p.Lines {
			if line.Amount <= 0 {
				return fmt.Errorf("line %d: %w", i, ErrInvalidAmount)
			}

			// pre-check against locked balance
			if !s.policy.AllowNegativeBalance && balance < line.Amount {
				return fmt.Errorf("line %d: balance %d, amount %d: %w", i, balance, line.Amount, ErrInsufficientFunds)
			}

			_, err = s.orders.Insert(ctx, tx, line.Amount, p.UserID)
			if err != nil {
				return fmt.Errorf("line %d: insert order: %w", i, err)
			}

			balance, err = s.users.DecreaseBalance(ctx, tx, p.UserID, line.Amount)
			if err != nil {
				return fmt.Errorf("line %d: decrease balance: %w", i, err)
			}
		}

		return nil
	})
	if err != nil {
		if isContention(err) {
			log.Warn("placement lock contention", "error", err)

			return Summary{}, fmt.Errorf("place orders: %w (%w)", ErrContention, err)
		}

		return Summary{}, fmt.Errorf("place orders: %w", err)
	}

	// 4) Fresh read of committed state
	sum, err := s.users.Summary(ctx, p.UserID)
	if err != nil {
		log.Error("summary read after commit failed", "error", err, "committed_balance", balance)

		return Summary{}, fmt.Errorf("place orders: %w: %w", ErrSummaryUnavailable, err)
	}

	log.Debug("orders placed", "total_orders", sum.OrderCount, "balance", sum.Balance)

	return Summary{TotalOrders: sum.OrderCount, AvailableBalance: sum.Balance}, nil
}

func isContention(err error) bool {
	return errors.Is(err, users.ErrRowLocked) ||
		errors.Is(err, context.DeadlineExceeded) ||
		pgutils.IsLockNotAvailable(err)
}
