package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"mini-storefront/internal/catalog"
	"mini-storefront/internal/event"
	"mini-storefront/internal/model"
	"mini-storefront/internal/store"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// CheckoutOptions sizes the order in progress.
type CheckoutOptions struct {
	Size     int
	Shipping decimal.Decimal
	// Now defaults to time.Now.
	Now func() time.Time
}

// checkoutService implements CheckoutService.
type checkoutService struct {
	gen      *catalog.Generator
	store    store.OrderStore
	bus      *event.Bus
	validate *validator.Validate
	opts     CheckoutOptions
	logger   zerolog.Logger

	mu     sync.Mutex
	items  []model.OrderItem
	loaded bool
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(gen *catalog.Generator, orders store.OrderStore, bus *event.Bus, opts CheckoutOptions, logger zerolog.Logger) CheckoutService {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &checkoutService{
		gen:      gen,
		store:    orders,
		bus:      bus,
		validate: newCustomerValidator(),
		opts:     opts,
		logger:   logger.With().Str("service", "checkout").Logger(),
	}
}

// newCustomerValidator reports fields by their JSON names.
func newCustomerValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Summary returns the order in progress, generating it on first use.
func (s *checkoutService) Summary(ctx context.Context) (*model.CheckoutSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		s.items = s.gen.CartItems(s.opts.Size)
		s.loaded = true
	}
	return s.summaryLocked(), nil
}

// Reload replaces the order in progress with freshly generated items.
func (s *checkoutService) Reload(ctx context.Context) (*model.CheckoutSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = s.gen.CartItems(s.opts.Size)
	s.loaded = true

	s.logger.Debug().Int("count", len(s.items)).Msg("checkout reloaded")
	return s.summaryLocked(), nil
}

// Clear empties the order in progress and resets the badge.
func (s *checkoutService) Clear(ctx context.Context) (*model.CheckoutSummary, error) {
	s.mu.Lock()
	s.items = nil
	s.loaded = true
	summary := s.summaryLocked()
	s.mu.Unlock()

	s.bus.Publish(event.CartCleared{})
	s.logger.Info().Msg("checkout cleared")

	return summary, nil
}

// PlaceOrder stores exactly one Pending order built from the order in
// progress and resets the badge. Required fields are checked after trimming.
// The next Summary starts a fresh order.
func (s *checkoutService) PlaceOrder(ctx context.Context, customer model.Customer) (*model.Order, error) {
	customer = trimCustomer(customer)
	if err := s.validateCustomer(customer); err != nil {
		return nil, err
	}

	s.mu.Lock()
	if !s.loaded {
		s.items = s.gen.CartItems(s.opts.Size)
	}
	items := make([]model.OrderItem, len(s.items))
	copy(items, s.items)
	s.items = nil
	s.loaded = false
	s.mu.Unlock()

	now := s.opts.Now()
	subtotal, total := model.Totals(items, s.opts.Shipping)
	order := model.Order{
		ID:        fmt.Sprintf("PO-%d", now.UnixMilli()),
		CreatedAt: now,
		Status:    model.StatusPending,
		Customer:  customer,
		Items:     items,
		Subtotal:  subtotal,
		Shipping:  s.opts.Shipping,
		Total:     total,
	}

	s.store.Add(order)
	s.bus.Publish(event.CartCleared{})

	s.logger.Info().
		Str("order_id", order.ID).
		Int("items", len(items)).
		Str("total", total.StringFixed(2)).
		Msg("order placed")

	return &order, nil
}

func (s *checkoutService) validateCustomer(c model.Customer) error {
	err := s.validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("failed to validate shipping details: %w", err)
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}

	s.logger.Debug().Strs("fields", fields).Msg("incomplete shipping details")
	return &model.FieldsError{Err: model.ErrIncompleteShipping, Fields: fields}
}

func (s *checkoutService) summaryLocked() *model.CheckoutSummary {
	items := make([]model.OrderItem, len(s.items))
	copy(items, s.items)
	subtotal, total := model.Totals(items, s.opts.Shipping)
	return &model.CheckoutSummary{
		Items:    items,
		Subtotal: subtotal,
		Shipping: s.opts.Shipping,
		Total:    total,
	}
}

func trimCustomer(c model.Customer) model.Customer {
	return model.Customer{
		FullName: strings.TrimSpace(c.FullName),
		Email:    strings.TrimSpace(c.Email),
		Phone:    strings.TrimSpace(c.Phone),
		Address1: strings.TrimSpace(c.Address1),
		Address2: strings.TrimSpace(c.Address2),
		City:     strings.TrimSpace(c.City),
		State:    strings.TrimSpace(c.State),
		Zip:      strings.TrimSpace(c.Zip),
	}
}
