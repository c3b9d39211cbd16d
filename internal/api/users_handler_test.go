package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fastprodman/marketplace/internal/repos/users"
	"github.com/fastprodman/marketplace/internal/services/accounts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func usersRouter(a *stubAccounts) http.Handler {
	return NewRouter(Services{Marketplace: &stubMarketplace{}, Accounts: a, Orders: &stubOrders{}}, RouterOptions{})
}

func TestCreateUserHandler(t *testing.T) {
	t.Parallel()

	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	u := users.User{ID: uuid.New(), Name: "alice", Balance: 100, CreatedAt: created}
	a := &stubAccounts{user: u}

	rr := do(t, usersRouter(a), http.MethodPost, "/users/", `{"name":"alice","balance":100}`)

	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	assert.Equal(t, "alice", a.gotName)
	assert.Equal(t, int64(100), a.gotBal)

	var got userResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, toUserResponse(u), got)
}

func TestCreateUserHandler_ZeroBalanceIsExplicit(t *testing.T) {
	t.Parallel()

	a := &stubAccounts{}
	rr := do(t, usersRouter(a), http.MethodPost, "/users", `{"name":"bob","balance":0}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	rr = do(t, usersRouter(a), http.MethodPost, "/users/", `{"name":"bob"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "balance is required", errorBody(t, rr))
}

func TestCreateUserHandler_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{name: "blank_name", body: `{"name":"  ","balance":1}`, wantMsg: "name must not be blank"},
		{name: "missing_name", body: `{"balance":1}`, wantMsg: "name must not be blank"},
		{name: "unknown_field", body: `{"name":"a","balance":1,"admin":true}`, wantMsg: "invalid JSON"},
		{name: "empty", body: ``, wantMsg: "empty body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rr := do(t, usersRouter(&stubAccounts{}), http.MethodPost, "/users/", tt.body)
			require.Equal(t, http.StatusBadRequest, rr.Code, rr.Body.String())
			assert.Equal(t, tt.wantMsg, errorBody(t, rr))
		})
	}
}

func TestListUsersHandler_EmptyIsArray(t *testing.T) {
	t.Parallel()

	rr := do(t, usersRouter(&stubAccounts{}), http.MethodGet, "/users/", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestGetUserHandler(t *testing.T) {
	t.Parallel()

	t.Run("bad_id", func(t *testing.T) {
		t.Parallel()

		rr := do(t, usersRouter(&stubAccounts{}), http.MethodGet, "/users/not-a-uuid", "")
		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "invalid userId in path", errorBody(t, rr))
	})

	t.Run("not_found", func(t *testing.T) {
		t.Parallel()

		rr := do(t, usersRouter(&stubAccounts{err: users.ErrUserNotFound}), http.MethodGet, "/users/"+uuid.NewString(), "")
		require.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "user not found", errorBody(t, rr))
	})
}

func TestUpdateUserHandler_InvalidName(t *testing.T) {
	t.Parallel()

	a := &stubAccounts{err: accounts.ErrInvalidName}
	rr := do(t, usersRouter(a), http.MethodPut, "/users/"+uuid.NewString(), `{"name":"x","balance":5}`)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, accounts.ErrInvalidName.Error(), errorBody(t, rr))
}

func TestDeleteUserHandler(t *testing.T) {
	t.Parallel()

	rr := do(t, usersRouter(&stubAccounts{}), http.MethodDelete, "/users/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())

	rr = do(t, usersRouter(&stubAccounts{err: users.ErrUserNotFound}), http.MethodDelete, "/users/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDebugRouter_LogsAndServes(t *testing.T) {
	t.Parallel()

	h := NewRouter(Services{Marketplace: &stubMarketplace{}, Accounts: &stubAccounts{}, Orders: &stubOrders{}},
		RouterOptions{Debug: true})

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}
