package event

import "mini-storefront/internal/model"

// Kind identifies a family of events. Its string form is the name used on
// the wire.
type Kind int

const (
	KindOrdersUpdated Kind = iota + 1
	KindCartIncrement
	KindCartDecrement
	KindCartClear
)

var kindNames = map[Kind]string{
	KindOrdersUpdated: "orders:updated",
	KindCartIncrement: "cart:increment",
	KindCartDecrement: "cart:decrement",
	KindCartClear:     "cart:clear",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind returns the kind with the given wire name.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// Event is implemented by every message carried on the bus.
type Event interface {
	Kind() Kind
}

// OrderAdded is published after an order is prepended to the store.
type OrderAdded struct {
	OrderID string `json:"orderId"`
	Count   int    `json:"count"`
}

// OrderStatusChanged is published after an existing order's status is set.
type OrderStatusChanged struct {
	OrderID string            `json:"orderId"`
	Status  model.OrderStatus `json:"status"`
}

// CartIncremented asks the badge to count one more item.
type CartIncremented struct{}

// CartDecremented asks the badge to count one less item.
type CartDecremented struct{}

// CartCleared resets the badge.
type CartCleared struct{}

func (OrderAdded) Kind() Kind         { return KindOrdersUpdated }
func (OrderStatusChanged) Kind() Kind { return KindOrdersUpdated }
func (CartIncremented) Kind() Kind    { return KindCartIncrement }
func (CartDecremented) Kind() Kind    { return KindCartDecrement }
func (CartCleared) Kind() Kind        { return KindCartClear }
