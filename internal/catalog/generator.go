package catalog

import (
	"fmt"
	"math/rand/v2"
	"net/url"
	"strings"
	"sync"
	"time"

	"mini-storefront/internal/model"

	"github.com/shopspring/decimal"
)

const (
	bestSellerChance = 0.3
	maxOrderItems    = 3
	orderWindow      = 28 * 24 * time.Hour
)

// Generator produces synthetic catalogue records. Every call draws fresh
// values, so the same product ID maps to different attributes on each call.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewGenerator creates a generator drawing from src. A nil src seeds a new
// source from the clock and the runtime's random state.
func NewGenerator(src rand.Source) *Generator {
	if src == nil {
		src = rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64())
	}
	return &Generator{rnd: rand.New(src)}
}

// Products returns count products with IDs 1..count.
func (g *Generator) Products(count int) []model.Product {
	g.mu.Lock()
	defer g.mu.Unlock()

	products := make([]model.Product, 0, max(count, 0))
	for i := 0; i < count; i++ {
		id := i + 1
		category := g.category()
		products = append(products, model.Product{
			ID:          id,
			Name:        itemName(category, id),
			Image:       fmt.Sprintf("https://placehold.co/400x400?text=Product+%d", id),
			Price:       g.price(),
			Rating:      g.rnd.IntN(5) + 1,
			Description: fmt.Sprintf("This is a randomly generated %s product.", strings.ToLower(category)),
			Category:    category,
			BestSeller:  g.rnd.Float64() < bestSellerChance,
		})
	}
	return products
}

// CartItems returns count single-quantity line items with IDs 1..count.
func (g *Generator) CartItems(count int) []model.OrderItem {
	g.mu.Lock()
	defer g.mu.Unlock()

	items := make([]model.OrderItem, 0, max(count, 0))
	for i := 0; i < count; i++ {
		id := i + 1
		items = append(items, model.OrderItem{
			ID:    id,
			Name:  itemName(g.category(), id),
			Price: g.price(),
			Qty:   1,
			Image: fmt.Sprintf("https://placehold.co/200x200?text=Item+%d", id),
		})
	}
	return items
}

// Orders returns count synthetic orders created within the four weeks
// before now, each holding one to three items.
func (g *Generator) Orders(count int, now time.Time, shipping decimal.Decimal) []model.Order {
	g.mu.Lock()
	defer g.mu.Unlock()

	orders := make([]model.Order, 0, max(count, 0))
	for k := 0; k < count; k++ {
		n := 1 + g.rnd.IntN(maxOrderItems)
		items := make([]model.OrderItem, 0, n)
		for i := 0; i < n; i++ {
			id := i + 1
			category := g.category()
			items = append(items, model.OrderItem{
				ID:    id,
				Name:  itemName(category, id),
				Price: g.price(),
				Qty:   1,
				Image: "https://placehold.co/80x80?text=" + url.QueryEscape(category),
			})
		}

		subtotal, total := model.Totals(items, shipping)
		createdAt := now.Add(-time.Duration(g.rnd.Int64N(int64(orderWindow)))).Truncate(time.Millisecond)

		orders = append(orders, model.Order{
			ID:        fmt.Sprintf("PO-%d-%d-%d", now.UnixMilli(), k, g.rnd.IntN(999)),
			CreatedAt: createdAt,
			Status:    model.Statuses[g.rnd.IntN(len(model.Statuses))],
			Customer: model.Customer{
				FullName: fmt.Sprintf("Customer %d", k+1),
				Email:    fmt.Sprintf("customer%d@example.com", k+1),
				Phone:    "(555) 010-0000",
				Address1: "123 Market St",
				City:     "Springfield",
				State:    "CA",
				Zip:      "90210",
			},
			Items:    items,
			Subtotal: subtotal,
			Shipping: shipping,
			Total:    total,
		})
	}
	return orders
}

// price draws a price in [5, 205) rounded to cents.
func (g *Generator) price() decimal.Decimal {
	return decimal.NewFromFloat(g.rnd.Float64()*200 + 5).Round(2)
}

func (g *Generator) category() string {
	return model.Categories[g.rnd.IntN(len(model.Categories))]
}

func itemName(category string, id int) string {
	return fmt.Sprintf("%s Item %d", category, id)
}
