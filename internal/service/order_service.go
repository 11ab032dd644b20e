package service

import (
	"context"
	"sync"
	"time"

	"mini-storefront/internal/catalog"
	"mini-storefront/internal/listing"
	"mini-storefront/internal/model"
	"mini-storefront/internal/notice"
	"mini-storefront/internal/store"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// OrderOptions configures the dashboard.
type OrderOptions struct {
	SeedCount     int
	PageSize      int
	Shipping      decimal.Decimal
	ToastDuration time.Duration
	// Now defaults to time.Now.
	Now func() time.Time
}

// orderService implements OrderService.
type orderService struct {
	store  store.OrderStore
	gen    *catalog.Generator
	board  *notice.Board
	opts   OrderOptions
	logger zerolog.Logger

	seedMu sync.Mutex
}

// NewOrderService creates a new order service.
func NewOrderService(orders store.OrderStore, gen *catalog.Generator, board *notice.Board, opts OrderOptions, logger zerolog.Logger) OrderService {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.PageSize <= 0 {
		opts.PageSize = 10
	}
	return &orderService{
		store:  orders,
		gen:    gen,
		board:  board,
		opts:   opts,
		logger: logger.With().Str("service", "order").Logger(),
	}
}

// List seeds an empty store, then filters and paginates its orders.
func (s *orderService) List(ctx context.Context, q listing.OrderQuery, page int) (*listing.Page[model.Order], error) {
	s.seedIfEmpty()

	filtered := listing.FilterOrders(s.store.List(), q)
	result := listing.Paginate(filtered, page, s.opts.PageSize)

	s.logger.Debug().
		Str("query", q.Text).
		Str("status", string(q.Status)).
		Int("matched", result.TotalItems).
		Int("page", result.Page).
		Msg("listed orders")

	return &result, nil
}

func (s *orderService) seedIfEmpty() {
	s.seedMu.Lock()
	defer s.seedMu.Unlock()

	if s.opts.SeedCount == 0 || s.store.Len() > 0 {
		return
	}

	for _, o := range s.gen.Orders(s.opts.SeedCount, s.opts.Now(), s.opts.Shipping) {
		s.store.Add(o)
	}

	s.logger.Info().Int("count", s.opts.SeedCount).Msg("seeded orders")
}

// GetByID retrieves a single order.
func (s *orderService) GetByID(ctx context.Context, id string) (*model.Order, error) {
	order, ok := s.store.GetByID(id)
	if !ok {
		s.logger.Debug().Str("order_id", id).Msg("order not found")
		return nil, model.ErrOrderNotFound
	}
	return &order, nil
}

// UpdateStatus saves status when it differs from the current one and raises
// a notice. Saving the current status is a no-op.
func (s *orderService) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.StatusUpdate, error) {
	if _, err := model.ParseOrderStatus(string(status)); err != nil {
		return nil, err
	}

	order, ok := s.store.GetByID(id)
	if !ok {
		s.logger.Debug().Str("order_id", id).Msg("order not found")
		return nil, model.ErrOrderNotFound
	}

	if order.Status == status {
		return &model.StatusUpdate{Order: order, Changed: false}, nil
	}

	if !s.store.UpdateStatus(id, status) {
		return nil, model.ErrOrderNotFound
	}
	order, _ = s.store.GetByID(id)

	s.board.Show("order:"+id, "Status updated", s.opts.ToastDuration)
	s.logger.Info().
		Str("order_id", id).
		Str("status", string(status)).
		Msg("order status updated")

	return &model.StatusUpdate{Order: order, Changed: true}, nil
}

// BulkUpdateStatus applies status to every selected order. Duplicate ids are
// applied once; unknown ids are reported as missing.
func (s *orderService) BulkUpdateStatus(ctx context.Context, ids []string, status model.OrderStatus) (*model.BulkStatusResult, error) {
	if len(ids) == 0 {
		return nil, model.ErrNoSelection
	}
	if _, err := model.ParseOrderStatus(string(status)); err != nil {
		return nil, err
	}

	result := &model.BulkStatusResult{
		Status:  status,
		Updated: []string{},
		Missing: []string{},
	}
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		if s.store.UpdateStatus(id, status) {
			result.Updated = append(result.Updated, id)
		} else {
			result.Missing = append(result.Missing, id)
		}
	}

	s.logger.Info().
		Str("status", string(status)).
		Int("updated", len(result.Updated)).
		Int("missing", len(result.Missing)).
		Msg("bulk status applied")

	return result, nil
}
