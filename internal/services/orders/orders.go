// Package orders is plain CRUD over single orders. Creating or editing an
// order here does not touch the owner's balance.
package orders

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	orderrepo "github.com/fastprodman/marketplace/internal/repos/orders"
	pgorders "github.com/fastprodman/marketplace/internal/repos/orders/postgres"
	"github.com/google/uuid"
)

var (
	ErrInvalidAmount = errors.New("amount must be positive")
	ErrMissingUser   = errors.New("user_id is required")
)

type Service struct {
	orders orderrepo.Orders
}

func New(db *sql.DB) *Service {
	return &Service{orders: pgorders.New(db)}
}

func NewWithRepo(repo orderrepo.Orders) *Service {
	return &Service{orders: repo}
}

func (s *Service) Create(ctx context.Context, amount int64, userID uuid.UUID) (orderrepo.Order, error) {
	err := validate(amount, userID)
	if err != nil {
		return orderrepo.Order{}, err
	}

	o, err := s.orders.Create(ctx, amount, userID)
	if err != nil {
		return orderrepo.Order{}, fmt.Errorf("create order: %w", err)
	}

	return o, nil
}

func (s *Service) Get(ctx context.Context, orderID uuid.UUID) (orderrepo.Order, error) {
	o, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return orderrepo.Order{}, fmt.Errorf("get order: %w", err)
	}

	return o, nil
}

func (s *Service) List(ctx context.Context) ([]orderrepo.Order, error) {
	list, err := s.orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	return list, nil
}

func (s *Service) Update(ctx context.Context, orderID uuid.UUID, amount int64, userID uuid.UUID) (orderrepo.Order, error) {
	err := validate(amount, userID)
	if err != nil {
		return orderrepo.Order{}, err
	}

	o, err := s.orders.Update(ctx, orderrepo.Order{ID: orderID, Amount: amount, UserID: userID})
	if err != nil {
		return orderrepo.Order{}, fmt.Errorf("update order: %w", err)
	}

	return o, nil
}

func (s *Service) Delete(ctx context.Context, orderID uuid.UUID) error {
	err := s.orders.Delete(ctx, orderID)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}

	return nil
}

func validate(amount int64, userID uuid.UUID) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if userID == uuid.Nil {
		return ErrMissingUser
	}

	return nil
}
