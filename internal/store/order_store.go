package store

import (
	"sync"

	"mini-storefront/internal/event"
	"mini-storefront/internal/model"

	"github.com/rs/zerolog"
)

// memoryOrderStore implements OrderStore on a slice guarded by a mutex.
type memoryOrderStore struct {
	mu     sync.RWMutex
	orders []model.Order
	bus    *event.Bus
	logger zerolog.Logger
}

// NewOrderStore creates an empty store that announces changes on bus.
func NewOrderStore(bus *event.Bus, logger zerolog.Logger) OrderStore {
	return &memoryOrderStore{
		bus:    bus,
		logger: logger.With().Str("component", "order-store").Logger(),
	}
}

// Add prepends order to the store and publishes OrderAdded.
func (s *memoryOrderStore) Add(order model.Order) {
	s.mu.Lock()
	s.orders = append([]model.Order{order.Clone()}, s.orders...)
	count := len(s.orders)
	s.mu.Unlock()

	s.logger.Debug().
		Str("order_id", order.ID).
		Int("count", count).
		Msg("order added")

	s.bus.Publish(event.OrderAdded{OrderID: order.ID, Count: count})
}

// List returns copies of all orders, most recent first.
func (s *memoryOrderStore) List() []model.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Order, len(s.orders))
	for i, o := range s.orders {
		out[i] = o.Clone()
	}
	return out
}

// GetByID scans for the first order with the given ID.
func (s *memoryOrderStore) GetByID(id string) (model.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.orders[i].Clone(), true
	}
	return model.Order{}, false
}

// UpdateStatus overwrites the status in place. The previous status is not
// retained. Nothing is published when the ID is unknown.
func (s *memoryOrderStore) UpdateStatus(id string, status model.OrderStatus) bool {
	s.mu.Lock()
	i := s.indexOf(id)
	var previous model.OrderStatus
	if i >= 0 {
		previous = s.orders[i].Status
		s.orders[i].Status = status
	}
	s.mu.Unlock()

	if i < 0 {
		s.logger.Debug().Str("order_id", id).Msg("status update for unknown order")
		return false
	}

	s.logger.Debug().
		Str("order_id", id).
		Str("from", string(previous)).
		Str("to", string(status)).
		Msg("order status updated")

	s.bus.Publish(event.OrderStatusChanged{OrderID: id, Status: status})
	return true
}

// Len returns the number of stored orders.
func (s *memoryOrderStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}

// indexOf must be called with s.mu held.
func (s *memoryOrderStore) indexOf(id string) int {
	for i := range s.orders {
		if s.orders[i].ID == id {
			return i
		}
	}
	return -1
}
