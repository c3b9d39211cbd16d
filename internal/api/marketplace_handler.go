package api

import (
	"net/http"

	"github.com/fastprodman/marketplace/internal/services/marketplace"
	"github.com/google/uuid"
)

type placementLine struct {
	Amount *int64 `json:"amount" validate:"required"`
}

type placementRequest struct {
	UserID *uuid.UUID      `json:"user_id" validate:"required"`
	Orders []placementLine `json:"orders" validate:"required,dive"`
}

type placementResponse struct {
	TotalOrders      int64 `json:"total_orders"`
	AvailableBalance int64 `json:"available_balance"`
}

// PlaceOrdersHandler handles POST /marketplace/v1/
//
// Amount signs are checked by the engine after the account lookup, so an
// unknown account is reported as 404 even when lines are invalid.
func (h *HandlerProvider) PlaceOrdersHandler(w http.ResponseWriter, r *http.Request) {
	var req placementRequest
	if !decodeBody(w, r, &req) {
		return
	}

	p := marketplace.Placement{
		UserID: *req.UserID,
		Lines:  make([]marketplace.Line, 0, len(req.Orders)),
	}
	for _, line := range req.Orders {
		p.Lines = append(p.Lines, marketplace.Line{Amount: *line.Amount})
	}

	sum, err := h.svc.Marketplace.PlaceOrders(r.Context(), p)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, placementResponse{
		TotalOrders:      sum.TotalOrders,
		AvailableBalance: sum.AvailableBalance,
	})
}
