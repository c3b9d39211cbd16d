// Package accounts is plain CRUD over users. Each call touches one row in
// its own statement; balance debits go through the marketplace instead.
package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/fastprodman/marketplace/internal/repos/users"
	pgusers "github.com/fastprodman/marketplace/internal/repos/users/postgres"
	"github.com/google/uuid"
)

var ErrInvalidName = errors.New("name must not be empty")

type Service struct {
	users users.Users
}

func New(db *sql.DB) *Service {
	return &Service{users: pgusers.New(db)}
}

// NewWithRepo is used when the repository is already built.
func NewWithRepo(repo users.Users) *Service {
	return &Service{users: repo}
}

func (s *Service) Create(ctx context.Context, name string, balance int64) (users.User, error) {
	name, err := normalizeName(name)
	if err != nil {
		return users.User{}, err
	}

	u, err := s.users.Create(ctx, name, balance)
	if err != nil {
		return users.User{}, fmt.Errorf("create user: %w", err)
	}

	return u, nil
}

func (s *Service) Get(ctx context.Context, userID uuid.UUID) (users.User, error) {
	u, err := s.users.Get(ctx, userID)
	if err != nil {
		return users.User{}, fmt.Errorf("get user: %w", err)
	}

	return u, nil
}

func (s *Service) List(ctx context.Context) ([]users.User, error) {
	list, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return list, nil
}

// Update replaces name and balance of an existing user.
func (s *Service) Update(ctx context.Context, userID uuid.UUID, name string, balance int64) (users.User, error) {
	name, err := normalizeName(name)
	if err != nil {
		return users.User{}, err
	}

	u, err := s.users.Update(ctx, users.User{ID: userID, Name: name, Balance: balance})
	if err != nil {
		return users.User{}, fmt.Errorf("update user: %w", err)
	}

	return u, nil
}

func (s *Service) Delete(ctx context.Context, userID uuid.UUID) error {
	err := s.users.Delete(ctx, userID)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	return nil
}

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrInvalidName
	}

	return name, nil
}
