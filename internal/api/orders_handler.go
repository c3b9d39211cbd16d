package api

import (
	"net/http"
	"time"

	orderrepo "github.com/fastprodman/marketplace/internal/repos/orders"
	"github.com/google/uuid"
)

// user_id may be omitted on the wire; the service rejects it then.
type orderRequest struct {
	Amount *int64     `json:"amount" validate:"required"`
	UserID *uuid.UUID `json:"user_id"`
}

func (o orderRequest) userID() uuid.UUID {
	if o.UserID == nil {
		return uuid.Nil
	}
	return *o.UserID
}

type orderResponse struct {
	ID        uuid.UUID `json:"id"`
	Amount    int64     `json:"amount"`
	UserID    uuid.UUID `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
}

func toOrderResponse(o orderrepo.Order) orderResponse {
	return orderResponse{ID: o.ID, Amount: o.Amount, UserID: o.UserID, Timestamp: o.CreatedAt}
}

// CreateOrderHandler handles POST /orders/
func (h *HandlerProvider) CreateOrderHandler(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if !decodeBody(w, r, &req) {
		return
	}

	o, err := h.svc.Orders.Create(r.Context(), *req.Amount, req.userID())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toOrderResponse(o))
}

// ListOrdersHandler handles GET /orders/
func (h *HandlerProvider) ListOrdersHandler(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Orders.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := make([]orderResponse, 0, len(list))
	for _, o := range list {
		resp = append(resp, toOrderResponse(o))
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetOrderHandler handles GET /orders/{orderId}
func (h *HandlerProvider) GetOrderHandler(w http.ResponseWriter, r *http.Request) {
	orderID, err := parseIDParam(r, "orderId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid orderId in path")
		return
	}

	o, err := h.svc.Orders.Get(r.Context(), orderID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toOrderResponse(o))
}

// UpdateOrderHandler handles PUT /orders/{orderId}
func (h *HandlerProvider) UpdateOrderHandler(w http.ResponseWriter, r *http.Request) {
	orderID, err := parseIDParam(r, "orderId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid orderId in path")
		return
	}

	var req orderRequest
	if !decodeBody(w, r, &req) {
		return
	}

	o, err := h.svc.Orders.Update(r.Context(), orderID, *req.Amount, req.userID())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toOrderResponse(o))
}

// DeleteOrderHandler handles DELETE /orders/{orderId}
func (h *HandlerProvider) DeleteOrderHandler(w http.ResponseWriter, r *http.Request) {
	orderID, err := parseIDParam(r, "orderId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid orderId in path")
		return
	}

	err = h.svc.Orders.Delete(r.Context(), orderID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
