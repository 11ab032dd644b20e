package store

import "mini-storefront/internal/model"

// OrderStore is the shared in-memory collection of placed orders.
type OrderStore interface {
	// Add prepends order to the store and announces the new length.
	// No duplicate-id check is made.
	Add(order model.Order)

	// List returns all orders, most recent first.
	List() []model.Order

	// GetByID returns the first order with the given ID.
	GetByID(id string) (model.Order, bool)

	// UpdateStatus sets the status of the order with the given ID.
	// It reports whether an order was found.
	UpdateStatus(id string, status model.OrderStatus) bool

	// Len returns the number of stored orders.
	Len() int
}
