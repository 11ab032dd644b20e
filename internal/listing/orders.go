package listing

import (
	"fmt"
	"strings"
	"time"

	"mini-storefront/internal/model"
)

// DateLayout is the format of the from/to date filters.
const DateLayout = "2006-01-02"

// OrderQuery describes the order dashboard controls. A zero field does not
// filter.
type OrderQuery struct {
	// Text matches order ID, customer name or any item name.
	Text   string
	Status model.OrderStatus
	From   time.Time
	To     time.Time
}

// ParseDay parses a YYYY-MM-DD date in loc. Empty input yields the zero time.
func ParseDay(s string, loc *time.Location) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// FilterOrders returns the orders matching q, keeping their order.
func FilterOrders(orders []model.Order, q OrderQuery) []model.Order {
	text := strings.ToLower(strings.TrimSpace(q.Text))

	var to time.Time
	if !q.To.IsZero() {
		// The to date is inclusive through 23:59:59.
		to = q.To.Add(24*time.Hour - time.Second)
	}

	out := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if text != "" && !matchesText(o, text) {
			continue
		}
		if q.Status != "" && o.Status != q.Status {
			continue
		}
		if !q.From.IsZero() && o.CreatedAt.Before(q.From) {
			continue
		}
		if !to.IsZero() && o.CreatedAt.After(to) {
			continue
		}
		out = append(out, o)
	}
	return out
}

func matchesText(o model.Order, text string) bool {
	if strings.Contains(strings.ToLower(o.ID), text) {
		return true
	}
	if strings.Contains(strings.ToLower(o.Customer.FullName), text) {
		return true
	}
	for _, it := range o.Items {
		if strings.Contains(strings.ToLower(it.Name), text) {
			return true
		}
	}
	return false
}
