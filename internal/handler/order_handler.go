package handler

import (
	"net/http"
	"strconv"
	"time"

	"mini-storefront/internal/listing"
	"mini-storefront/internal/model"
	"mini-storefront/internal/service"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// OrderHandler handles provider dashboard HTTP requests.
type OrderHandler struct {
	service service.OrderService
	loc     *time.Location
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler. Date filters are read in
// loc; nil means local time.
func NewOrderHandler(service service.OrderService, loc *time.Location, logger zerolog.Logger) *OrderHandler {
	if loc == nil {
		loc = time.Local
	}
	return &OrderHandler{
		service: service,
		loc:     loc,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// List handles GET /api/orders requests.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	var status model.OrderStatus
	if raw := params.Get("status"); raw != "" && raw != "All" {
		st, err := model.ParseOrderStatus(raw)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidStatus, model.ErrInvalidStatus.Message, h.logger)
			return
		}
		status = st
	}

	from, err := listing.ParseDay(params.Get("from"), h.loc)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidParameter, err.Error(), h.logger)
		return
	}
	to, err := listing.ParseDay(params.Get("to"), h.loc)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidParameter, err.Error(), h.logger)
		return
	}

	page := 1
	if raw := params.Get("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidParameter, "invalid page parameter", h.logger)
			return
		}
	}

	result, err := h.service.List(r.Context(), listing.OrderQuery{
		Text:   params.Get("q"),
		Status: status,
		From:   from,
		To:     to,
	}, page)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// GetByID handles GET /api/orders/{id} requests.
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	order, err := h.service.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// UpdateStatus handles PATCH /api/orders/{id}/status requests.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req model.StatusRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	res, err := h.service.UpdateStatus(r.Context(), mux.Vars(r)["id"], req.Status)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// BulkUpdateStatus handles POST /api/orders/bulk-status requests.
func (h *OrderHandler) BulkUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req model.BulkStatusRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	res, err := h.service.BulkUpdateStatus(r.Context(), req.IDs, req.Status)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, res)
}
