package handler

import (
	"net/http"
	"strconv"

	"mini-storefront/internal/listing"
	"mini-storefront/internal/model"
	"mini-storefront/internal/service"

	"github.com/rs/zerolog"
)

// ProductHandler handles catalogue HTTP requests.
type ProductHandler struct {
	service service.CatalogService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.CatalogService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// Home handles GET /api/home requests.
func (h *ProductHandler) Home(w http.ResponseWriter, r *http.Request) {
	home, err := h.service.Home(r.Context())
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, home)
}

// List handles GET /api/products requests.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	price, err := listing.ParsePriceBucket(params.Get("price"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidParameter, err.Error(), h.logger)
		return
	}

	sort, err := listing.ParseProductSort(params.Get("sort"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidParameter, err.Error(), h.logger)
		return
	}

	category := params.Get("category")
	if category != "" && category != listing.AllCategories && !model.IsCategory(category) {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidParameter, "unknown category: "+category, h.logger)
		return
	}

	bestSellerOnly := false
	if raw := params.Get("bestSeller"); raw != "" {
		bestSellerOnly, err = strconv.ParseBool(raw)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidParameter, "invalid bestSeller parameter", h.logger)
			return
		}
	}

	products, err := h.service.List(r.Context(), listing.ProductQuery{
		Search:         params.Get("search"),
		Category:       category,
		Price:          price,
		BestSellerOnly: bestSellerOnly,
		Sort:           sort,
	})
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// GetByID handles GET /api/products/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := intVar(w, r, "id", h.logger)
	if !ok {
		return
	}

	product, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}
