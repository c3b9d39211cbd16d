package api

import (
	"net/http"
	"time"

	"github.com/fastprodman/marketplace/internal/repos/users"
	"github.com/google/uuid"
)

type userRequest struct {
	Name    string `json:"name" validate:"notblank"`
	Balance *int64 `json:"balance" validate:"required"`
}

type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Balance   int64     `json:"balance"`
	Timestamp time.Time `json:"timestamp"`
}

func toUserResponse(u users.User) userResponse {
	return userResponse{ID: u.ID, Name: u.Name, Balance: u.Balance, Timestamp: u.CreatedAt}
}

// CreateUserHandler handles POST /users/
func (h *HandlerProvider) CreateUserHandler(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if !decodeBody(w, r, &req) {
		return
	}

	u, err := h.svc.Accounts.Create(r.Context(), req.Name, *req.Balance)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toUserResponse(u))
}

// ListUsersHandler handles GET /users/
func (h *HandlerProvider) ListUsersHandler(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Accounts.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := make([]userResponse, 0, len(list))
	for _, u := range list {
		resp = append(resp, toUserResponse(u))
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetUserHandler handles GET /users/{userId}
func (h *HandlerProvider) GetUserHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "userId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid userId in path")
		return
	}

	u, err := h.svc.Accounts.Get(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// UpdateUserHandler handles PUT /users/{userId}
func (h *HandlerProvider) UpdateUserHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "userId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid userId in path")
		return
	}

	var req userRequest
	if !decodeBody(w, r, &req) {
		return
	}

	u, err := h.svc.Accounts.Update(r.Context(), userID, req.Name, *req.Balance)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// DeleteUserHandler handles DELETE /users/{userId}
func (h *HandlerProvider) DeleteUserHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "userId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid userId in path")
		return
	}

	err = h.svc.Accounts.Delete(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
