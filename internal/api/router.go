package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type RouterOptions struct {
	// Debug enables per-request logging.
	Debug bool
}

// NewRouter constructs a chi router with all API endpoints registered.
func NewRouter(svc Services, opts RouterOptions) http.Handler {
	h := NewHandler(svc)
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	if opts.Debug {
		r.Use(requestLogger)
	}
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/users", func(r chi.Router) {
		r.Post("/", h.CreateUserHandler)
		r.Get("/", h.ListUsersHandler)
		r.Get("/{userId}", h.GetUserHandler)
		r.Put("/{userId}", h.UpdateUserHandler)
		r.Delete("/{userId}", h.DeleteUserHandler)
	})

	r.Route("/orders", func(r chi.Router) {
		r.Post("/", h.CreateOrderHandler)
		r.Get("/", h.ListOrdersHandler)
		r.Get("/{orderId}", h.GetOrderHandler)
		r.Put("/{orderId}", h.UpdateOrderHandler)
		r.Delete("/{orderId}", h.DeleteOrderHandler)
	})

	r.Post("/marketplace/v1/", h.PlaceOrdersHandler)
	r.Post("/marketplace/v1", h.PlaceOrdersHandler)

	return r
}
