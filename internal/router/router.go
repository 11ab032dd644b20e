package router

import (
	"net/http"

	"mini-storefront/internal/handler"
	"mini-storefront/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// Handlers groups the HTTP handlers mounted by New.
type Handlers struct {
	Product  *handler.ProductHandler
	Cart     *handler.CartHandler
	Checkout *handler.CheckoutHandler
	Order    *handler.OrderHandler
	Notice   *handler.NoticeHandler
	Event    *handler.EventHandler
}

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, logger zerolog.Logger) http.Handler {
	r := mux.NewRouter()

	// Health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	// Storefront
	api.HandleFunc("/home", h.Product.Home).Methods(http.MethodGet)
	api.HandleFunc("/products", h.Product.List).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", h.Product.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}/cart", h.Cart.AddToCart).Methods(http.MethodPost)

	// Cart
	api.HandleFunc("/cart", h.Cart.View).Methods(http.MethodGet)
	api.HandleFunc("/cart", h.Cart.Clear).Methods(http.MethodDelete)
	api.HandleFunc("/cart/reload", h.Cart.Reload).Methods(http.MethodPost)
	api.HandleFunc("/cart/items/{id}", h.Cart.RemoveItem).Methods(http.MethodDelete)
	api.HandleFunc("/cart/badge", h.Cart.Badge).Methods(http.MethodGet)
	api.HandleFunc("/cart/badge/decrement", h.Cart.DecrementBadge).Methods(http.MethodPost)

	// Checkout
	api.HandleFunc("/checkout", h.Checkout.Summary).Methods(http.MethodGet)
	api.HandleFunc("/checkout", h.Checkout.Clear).Methods(http.MethodDelete)
	api.HandleFunc("/checkout/reload", h.Checkout.Reload).Methods(http.MethodPost)
	api.HandleFunc("/checkout/orders", h.Checkout.PlaceOrder).Methods(http.MethodPost)

	// Provider dashboard
	api.HandleFunc("/orders", h.Order.List).Methods(http.MethodGet)
	api.HandleFunc("/orders/bulk-status", h.Order.BulkUpdateStatus).Methods(http.MethodPost)
	api.HandleFunc("/orders/{id}", h.Order.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/orders/{id}/status", h.Order.UpdateStatus).Methods(http.MethodPatch)

	api.HandleFunc("/notices", h.Notice.List).Methods(http.MethodGet)
	api.HandleFunc("/events", h.Event.Stream).Methods(http.MethodGet)

	// Apply middleware in order: Recovery -> Logging -> CORS -> RequestID
	var handler http.Handler = r
	handler = middleware.RequestID(handler)
	handler = middleware.CORS(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Recovery(logger)(handler)

	return handler
}
