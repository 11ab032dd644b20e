package handler

import (
	"net/http"

	"mini-storefront/internal/model"
	"mini-storefront/internal/service"

	"github.com/rs/zerolog"
)

// CartHandler handles cart and badge HTTP requests.
type CartHandler struct {
	service service.CartService
	logger  zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(service service.CartService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		logger:  logger.With().Str("handler", "cart").Logger(),
	}
}

type badgeResponse struct {
	Count int `json:"count"`
}

// View handles GET /api/cart requests.
func (h *CartHandler) View(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.View(r.Context())
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Reload handles POST /api/cart/reload requests.
func (h *CartHandler) Reload(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Reload(r.Context())
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Clear handles DELETE /api/cart requests.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Clear(r.Context())
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// RemoveItem handles DELETE /api/cart/items/{id} requests.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, ok := intVar(w, r, "id", h.logger)
	if !ok {
		return
	}

	view, err := h.service.RemoveItem(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// AddToCart handles POST /api/products/{id}/cart requests. The view query
// parameter names the page the click came from.
func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	id, ok := intVar(w, r, "id", h.logger)
	if !ok {
		return
	}

	from := service.AddFromListing
	switch view := r.URL.Query().Get("view"); view {
	case "", string(service.AddFromListing):
	case string(service.AddFromDetail):
		from = service.AddFromDetail
	default:
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidParameter, "invalid view: "+view, h.logger)
		return
	}

	res, err := h.service.AddToCart(r.Context(), id, from)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Badge handles GET /api/cart/badge requests.
func (h *CartHandler) Badge(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, badgeResponse{Count: h.service.BadgeCount(r.Context())})
}

// DecrementBadge handles POST /api/cart/badge/decrement requests.
func (h *CartHandler) DecrementBadge(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, badgeResponse{Count: h.service.DecrementBadge(r.Context())})
}
