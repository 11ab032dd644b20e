package service

import (
	"context"

	"mini-storefront/internal/catalog"
	"mini-storefront/internal/listing"
	"mini-storefront/internal/model"

	"github.com/rs/zerolog"
)

// catalogService implements CatalogService.
type catalogService struct {
	gen    *catalog.Generator
	size   int
	logger zerolog.Logger
}

// NewCatalogService creates a new catalog service generating size products
// per request.
func NewCatalogService(gen *catalog.Generator, size int, logger zerolog.Logger) CatalogService {
	return &catalogService{
		gen:    gen,
		size:   size,
		logger: logger.With().Str("service", "catalog").Logger(),
	}
}

// Home returns freshly generated featured products and the FAQ entries.
func (s *catalogService) Home(ctx context.Context) (*model.HomePage, error) {
	return &model.HomePage{
		Featured: s.gen.Products(s.size),
		FAQs:     model.DefaultFAQs(),
	}, nil
}

// List generates a catalogue and filters it.
func (s *catalogService) List(ctx context.Context, q listing.ProductQuery) ([]model.Product, error) {
	products := listing.FilterProducts(s.gen.Products(s.size), q)

	s.logger.Debug().
		Str("search", q.Search).
		Str("category", q.Category).
		Str("price", string(q.Price)).
		Bool("best_seller_only", q.BestSellerOnly).
		Str("sort", string(q.Sort)).
		Int("count", len(products)).
		Msg("listed products")

	return products, nil
}

// GetByID generates a catalogue and returns the product with id. Attributes
// differ between calls.
func (s *catalogService) GetByID(ctx context.Context, id int) (*model.Product, error) {
	for _, p := range s.gen.Products(s.size) {
		if p.ID == id {
			return &p, nil
		}
	}

	s.logger.Debug().Int("product_id", id).Msg("product not found")
	return nil, model.ErrProductNotFound
}
