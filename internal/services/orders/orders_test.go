package orders

import (
	"context"
	"testing"

	orderrepo "github.com/fastprodman/marketplace/internal/repos/orders"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOrders struct {
	orderrepo.Orders

	calls    int
	writeErr error
}

func (s *stubOrders) Create(_ context.Context, amount int64, userID uuid.UUID) (orderrepo.Order, error) {
	s.calls++
	if s.writeErr != nil {
		return orderrepo.Order{}, s.writeErr
	}
	return orderrepo.Order{ID: uuid.New(), Amount: amount, UserID: userID}, nil
}

func (s *stubOrders) Update(_ context.Context, o orderrepo.Order) (orderrepo.Order, error) {
	s.calls++
	if s.writeErr != nil {
		return orderrepo.Order{}, s.writeErr
	}
	return o, nil
}

func TestCreate_Validation(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	tests := []struct {
		name    string
		amount  int64
		userID  uuid.UUID
		wantErr error
	}{
		{name: "ok", amount: 1, userID: userID},
		{name: "zero_amount", amount: 0, userID: userID, wantErr: ErrInvalidAmount},
		{name: "negative_amount", amount: -5, userID: userID, wantErr: ErrInvalidAmount},
		{name: "missing_user", amount: 5, userID: uuid.Nil, wantErr: ErrMissingUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := &stubOrders{}
			o, err := NewWithRepo(repo).Create(context.Background(), tt.amount, tt.userID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, repo.calls)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.amount, o.Amount)
			assert.Equal(t, tt.userID, o.UserID)
		})
	}
}

func TestCreate_UnknownUser(t *testing.T) {
	t.Parallel()

	repo := &stubOrders{writeErr: orderrepo.ErrUnknownUser}
	_, err := NewWithRepo(repo).Create(context.Background(), 5, uuid.New())
	require.ErrorIs(t, err, orderrepo.ErrUnknownUser)
}

func TestUpdate(t *testing.T) {
	t.Parallel()

	id, userID := uuid.New(), uuid.New()

	o, err := NewWithRepo(&stubOrders{}).Update(context.Background(), id, 7, userID)
	require.NoError(t, err)
	assert.Equal(t, orderrepo.Order{ID: id, Amount: 7, UserID: userID}, o)

	_, err = NewWithRepo(&stubOrders{}).Update(context.Background(), id, 0, userID)
	require.ErrorIs(t, err, ErrInvalidAmount)

	_, err = NewWithRepo(&stubOrders{writeErr: orderrepo.ErrOrderNotFound}).Update(context.Background(), id, 7, userID)
	require.ErrorIs(t, err, orderrepo.ErrOrderNotFound)
}
