package api

import (
	"context"

	orderrepo "github.com/fastprodman/marketplace/internal/repos/orders"
	"github.com/fastprodman/marketplace/internal/repos/users"
	"github.com/fastprodman/marketplace/internal/services/marketplace"
	"github.com/google/uuid"
)

type stubMarketplace struct {
	got marketplace.Placement
	sum marketplace.Summary
	err error
}

func (s *stubMarketplace) PlaceOrders(_ context.Context, p marketplace.Placement) (marketplace.Summary, error) {
	s.got = p
	return s.sum, s.err
}

type stubAccounts struct {
	user    users.User
	list    []users.User
	err     error
	gotName string
	gotBal  int64
}

func (s *stubAccounts) Create(_ context.Context, name string, balance int64) (users.User, error) {
	s.gotName, s.gotBal = name, balance
	return s.user, s.err
}

func (s *stubAccounts) Get(_ context.Context, _ uuid.UUID) (users.User, error) {
	return s.user, s.err
}

func (s *stubAccounts) List(_ context.Context) ([]users.User, error) {
	return s.list, s.err
}

func (s *stubAccounts) Update(_ context.Context, _ uuid.UUID, name string, balance int64) (users.User, error) {
	s.gotName, s.gotBal = name, balance
	return s.user, s.err
}

func (s *stubAccounts) Delete(_ context.Context, _ uuid.UUID) error {
	return s.err
}

type stubOrders struct {
	order     orderrepo.Order
	list      []orderrepo.Order
	err       error
	gotAmount int64
	gotUser   uuid.UUID
}

func (s *stubOrders) Create(_ context.Context, amount int64, userID uuid.UUID) (orderrepo.Order, error) {
	s.gotAmount, s.gotUser = amount, userID
	return s.order, s.err
}

func (s *stubOrders) Get(_ context.Context, _ uuid.UUID) (orderrepo.Order, error) {
	return s.order, s.err
}

func (s *stubOrders) List(_ context.Context) ([]orderrepo.Order, error) {
	return s.list, s.err
}

func (s *stubOrders) Update(_ context.Context, _ uuid.UUID, amount int64, userID uuid.UUID) (orderrepo.Order, error) {
	s.gotAmount, s.gotUser = amount, userID
	return s.order, s.err
}

func (s *stubOrders) Delete(_ context.Context, _ uuid.UUID) error {
	return s.err
}
