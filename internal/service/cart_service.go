package service

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"mini-storefront/internal/cart"
	"mini-storefront/internal/catalog"
	"mini-storefront/internal/event"
	"mini-storefront/internal/model"
	"mini-storefront/internal/notice"

	"github.com/rs/zerolog"
)

// CartOptions sizes the cart and its notices.
type CartOptions struct {
	CartSize            int
	CatalogSize         int
	ToastDuration       time.Duration
	DetailToastDuration time.Duration
}

// cartService implements CartService.
type cartService struct {
	gen    *catalog.Generator
	bus    *event.Bus
	badge  *cart.Badge
	board  *notice.Board
	opts   CartOptions
	logger zerolog.Logger

	mu     sync.Mutex
	items  []model.Product
	loaded bool
	added  map[int]struct{}
}

// NewCartService creates a new cart service. The set of products already
// added resets whenever the badge is cleared.
func NewCartService(gen *catalog.Generator, bus *event.Bus, badge *cart.Badge, board *notice.Board, opts CartOptions, logger zerolog.Logger) CartService {
	s := &cartService{
		gen:    gen,
		bus:    bus,
		badge:  badge,
		board:  board,
		opts:   opts,
		logger: logger.With().Str("service", "cart").Logger(),
		added:  make(map[int]struct{}),
	}
	bus.Subscribe(func(event.Event) {
		s.mu.Lock()
		clear(s.added)
		s.mu.Unlock()
	}, event.KindCartClear)
	return s
}

// View returns the cart, generating it on first use.
func (s *cartService) View(ctx context.Context) (*model.CartView, error) {
	s.mu.Lock()
	if !s.loaded {
		s.items = s.gen.Products(s.opts.CartSize)
		s.loaded = true
	}
	view := s.viewLocked()
	s.mu.Unlock()

	view.BadgeCount = s.badge.Count()
	return view, nil
}

// Reload replaces the cart with freshly generated items.
func (s *cartService) Reload(ctx context.Context) (*model.CartView, error) {
	s.mu.Lock()
	s.items = s.gen.Products(s.opts.CartSize)
	s.loaded = true
	view := s.viewLocked()
	s.mu.Unlock()

	s.logger.Debug().Int("count", len(view.Items)).Msg("cart reloaded")

	view.BadgeCount = s.badge.Count()
	return view, nil
}

// RemoveItem drops a product from the cart. The badge is not touched.
func (s *cartService) RemoveItem(ctx context.Context, productID int) (*model.CartView, error) {
	s.mu.Lock()
	idx := slices.IndexFunc(s.items, func(p model.Product) bool { return p.ID == productID })
	if idx < 0 {
		s.mu.Unlock()
		s.logger.Debug().Int("product_id", productID).Msg("cart item not found")
		return nil, fmt.Errorf("failed to remove product %d: %w", productID, model.ErrCartItemNotFound)
	}
	s.items = slices.Delete(s.items, idx, idx+1)
	view := s.viewLocked()
	s.mu.Unlock()

	s.logger.Debug().Int("product_id", productID).Int("remaining", len(view.Items)).Msg("removed cart item")

	view.BadgeCount = s.badge.Count()
	return view, nil
}

// Clear empties the cart and resets the badge.
func (s *cartService) Clear(ctx context.Context) (*model.CartView, error) {
	s.mu.Lock()
	s.items = nil
	s.loaded = true
	view := s.viewLocked()
	s.mu.Unlock()

	s.bus.Publish(event.CartCleared{})
	s.logger.Info().Msg("cart cleared")

	view.BadgeCount = s.badge.Count()
	return view, nil
}

// AddToCart increments the badge the first time a product is added. Every
// click raises a notice whose lifetime depends on the page it came from.
func (s *cartService) AddToCart(ctx context.Context, productID int, from AddSource) (*model.AddToCartResult, error) {
	if productID < 1 || productID > s.opts.CatalogSize {
		s.logger.Debug().Int("product_id", productID).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	s.mu.Lock()
	_, seen := s.added[productID]
	if !seen {
		s.added[productID] = struct{}{}
	}
	s.mu.Unlock()

	if !seen {
		s.bus.Publish(event.CartIncremented{})
	}

	d := s.opts.ToastDuration
	if from == AddFromDetail {
		d = s.opts.DetailToastDuration
	}
	s.board.Show(fmt.Sprintf("cart:%d", productID), "Added to cart", d)

	s.logger.Debug().
		Int("product_id", productID).
		Str("from", string(from)).
		Bool("added", !seen).
		Msg("add to cart")

	return &model.AddToCartResult{
		ProductID:  productID,
		Added:      !seen,
		BadgeCount: s.badge.Count(),
	}, nil
}

// BadgeCount returns the header badge value.
func (s *cartService) BadgeCount(ctx context.Context) int {
	return s.badge.Count()
}

// DecrementBadge lowers the header badge by one.
func (s *cartService) DecrementBadge(ctx context.Context) int {
	s.bus.Publish(event.CartDecremented{})
	return s.badge.Count()
}

func (s *cartService) viewLocked() *model.CartView {
	items := make([]model.Product, len(s.items))
	copy(items, s.items)
	return &model.CartView{
		Items:    items,
		Subtotal: model.SumPrices(items),
	}
}
