package marketplace

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrContention means the account lock was not acquired in time. Nothing
	// was committed, so the request can be retried as is.
	ErrContention = errors.New("account is busy, retry later")
	// ErrSummaryUnavailable means the orders were committed but the
	// follow-up summary read failed. Retrying would place them again.
	ErrSummaryUnavailable = errors.New("orders placed, summary unavailable")
)

// Line is one requested debit.
type Line struct {
	Amount int64
}

// Placement is a batch of debits against one account, applied all or nothing.
type Placement struct {
	UserID uuid.UUID
	Lines  []Line
}

// Summary is read after commit. It may include commits from other
// placements that landed between this commit and the read.
type Summary struct {
	TotalOrders      int64
	AvailableBalance int64
}

type Policy struct {
	// LockTimeout bounds the wait for the account row lock. Zero leaves the
	// server default in place.
	LockTimeout time.Duration
	// AllowNegativeBalance lets a batch drive the balance below zero.
	AllowNegativeBalance bool
}
