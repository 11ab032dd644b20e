package listing

import (
	"testing"
	"time"

	"mini-storefront/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrders() []model.Order {
	return []model.Order{
		{
			ID:        "PO-100",
			CreatedAt: time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC),
			Status:    model.StatusPending,
			Customer:  model.Customer{FullName: "Jane Doe"},
			Items:     []model.OrderItem{{ID: 1, Name: "Food Item 1"}},
		},
		{
			ID:        "PO-200",
			CreatedAt: time.Date(2026, 10, 10, 23, 59, 30, 0, time.UTC),
			Status:    model.StatusShipped,
			Customer:  model.Customer{FullName: "John Roe"},
			Items:     []model.OrderItem{{ID: 1, Name: "Books Item 1"}, {ID: 2, Name: "Home Item 2"}},
		},
		{
			ID:        "PO-300",
			CreatedAt: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
			Status:    model.StatusPending,
			Customer:  model.Customer{FullName: "Customer 3"},
			Items:     []model.OrderItem{{ID: 1, Name: "Clothing Item 1"}},
		},
	}
}

func orderIDs(orders []model.Order) []string {
	out := make([]string, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.ID)
	}
	return out
}

func day(t *testing.T, s string) time.Time {
	d, err := ParseDay(s, time.UTC)
	require.NoError(t, err)
	return d
}

func TestFilterOrders(t *testing.T) {
	tests := []struct {
		name     string
		query    func(t *testing.T) OrderQuery
		expected []string
	}{
		{
			name:     "No filters",
			query:    func(*testing.T) OrderQuery { return OrderQuery{} },
			expected: []string{"PO-100", "PO-200", "PO-300"},
		},
		{
			name:     "Text matches order ID",
			query:    func(*testing.T) OrderQuery { return OrderQuery{Text: "po-2"} },
			expected: []string{"PO-200"},
		},
		{
			name:     "Text matches customer name",
			query:    func(*testing.T) OrderQuery { return OrderQuery{Text: "  jane "} },
			expected: []string{"PO-100"},
		},
		{
			name:     "Text matches any item name",
			query:    func(*testing.T) OrderQuery { return OrderQuery{Text: "HOME"} },
			expected: []string{"PO-200"},
		},
		{
			name:     "Blank text matches everything",
			query:    func(*testing.T) OrderQuery { return OrderQuery{Text: "   "} },
			expected: []string{"PO-100", "PO-200", "PO-300"},
		},
		{
			name:     "Status",
			query:    func(*testing.T) OrderQuery { return OrderQuery{Status: model.StatusPending} },
			expected: []string{"PO-100", "PO-300"},
		},
		{
			name:     "From is inclusive from start of day",
			query:    func(t *testing.T) OrderQuery { return OrderQuery{From: day(t, "2026-10-10")} },
			expected: []string{"PO-100", "PO-200"},
		},
		{
			name:     "To is inclusive through end of day",
			query:    func(t *testing.T) OrderQuery { return OrderQuery{To: day(t, "2026-10-10")} },
			expected: []string{"PO-200", "PO-300"},
		},
		{
			name: "Date range and status",
			query: func(t *testing.T) OrderQuery {
				return OrderQuery{From: day(t, "2026-10-01"), To: day(t, "2026-10-14"), Status: model.StatusPending}
			},
			expected: []string{"PO-300"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterOrders(testOrders(), tt.query(t))
			assert.Equal(t, tt.expected, orderIDs(got))
		})
	}
}

func TestParseDay(t *testing.T) {
	d, err := ParseDay("", time.UTC)
	require.NoError(t, err)
	assert.True(t, d.IsZero())

	d, err = ParseDay("2026-10-18", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDay("18/10/2026", time.UTC)
	assert.Error(t, err)
}
