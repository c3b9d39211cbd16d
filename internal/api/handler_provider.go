package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	orderrepo "github.com/fastprodman/marketplace/internal/repos/orders"
	"github.com/fastprodman/marketplace/internal/repos/users"
	"github.com/fastprodman/marketplace/internal/services/accounts"
	"github.com/fastprodman/marketplace/internal/services/marketplace"
	ordersvc "github.com/fastprodman/marketplace/internal/services/orders"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const maxBodyBytes = 1 << 20 // 1MB cap

type Marketplace interface {
	PlaceOrders(ctx context.Context, p marketplace.Placement) (marketplace.Summary, error)
}

type Accounts interface {
	Create(ctx context.Context, name string, balance int64) (users.User, error)
	Get(ctx context.Context, userID uuid.UUID) (users.User, error)
	List(ctx context.Context) ([]users.User, error)
	Update(ctx context.Context, userID uuid.UUID, name string, balance int64) (users.User, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

type Orders interface {
	Create(ctx context.Context, amount int64, userID uuid.UUID) (orderrepo.Order, error)
	Get(ctx context.Context, orderID uuid.UUID) (orderrepo.Order, error)
	List(ctx context.Context) ([]orderrepo.Order, error)
	Update(ctx context.Context, orderID uuid.UUID, amount int64, userID uuid.UUID) (orderrepo.Order, error)
	Delete(ctx context.Context, orderID uuid.UUID) error
}

// Services groups what the handlers call into.
type Services struct {
	Marketplace Marketplace
	Accounts    Accounts
	Orders      Orders
}

// HandlerProvider exposes HTTP handlers over Services.
type HandlerProvider struct {
	svc Services
}

// NewHandler returns a new Handler provider.
func NewHandler(svc Services) *HandlerProvider {
	return &HandlerProvider{svc: svc}
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// decodeBody reads a single JSON object into dst and validates it.
// It writes the 400 itself and reports false when the body is unusable.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err != nil {
		if errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, "empty body")
			return false
		}

		writeError(w, http.StatusBadRequest, "invalid JSON")
		return false
	}

	err = validate.Struct(dst)
	if err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return false
	}

	return true
}

// parseIDParam reads a UUID path parameter such as `{userId}`.
func parseIDParam(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return uuid.Nil, fmt.Errorf("missing %s", name)
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s: %w", name, err)
	}

	return id, nil
}

// writeServiceError maps service errors onto status codes.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, marketplace.ErrSummaryUnavailable):
		slog.Error("placement summary unavailable", "error", err, "path", r.URL.Path)
		writeError(w, http.StatusInternalServerError, marketplace.ErrSummaryUnavailable.Error())
	case errors.Is(err, marketplace.ErrContention):
		w.Header().Set("Retry-After", "1")
		writeError(w, http.StatusServiceUnavailable, marketplace.ErrContention.Error())
	case errors.Is(err, users.ErrUserNotFound), errors.Is(err, orderrepo.ErrUnknownUser):
		writeError(w, http.StatusNotFound, "user not found")
	case errors.Is(err, orderrepo.ErrOrderNotFound):
		writeError(w, http.StatusNotFound, "order not found")
	case errors.Is(err, marketplace.ErrInvalidAmount), errors.Is(err, ordersvc.ErrInvalidAmount):
		writeError(w, http.StatusBadRequest, "amount must be positive")
	case errors.Is(err, ordersvc.ErrMissingUser):
		writeError(w, http.StatusBadRequest, ordersvc.ErrMissingUser.Error())
	case errors.Is(err, accounts.ErrInvalidName):
		writeError(w, http.StatusBadRequest, accounts.ErrInvalidName.Error())
	case errors.Is(err, marketplace.ErrInsufficientFunds):
		writeError(w, http.StatusConflict, "insufficient funds")
	default:
		slog.Error("request failed", "error", err, "method", r.Method, "path", r.URL.Path)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
