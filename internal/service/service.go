package service

import (
	"context"

	"mini-storefront/internal/listing"
	"mini-storefront/internal/model"
)

// CatalogService defines operations for browsing synthetic products.
type CatalogService interface {
	// Home returns featured products and the FAQ entries.
	Home(ctx context.Context) (*model.HomePage, error)

	// List generates a fresh catalogue and applies the list controls.
	List(ctx context.Context, q listing.ProductQuery) ([]model.Product, error)

	// GetByID generates a fresh catalogue and returns the product with id.
	GetByID(ctx context.Context, id int) (*model.Product, error)
}

// AddSource identifies the page an add-to-cart click came from.
type AddSource string

const (
	AddFromListing AddSource = "listing"
	AddFromDetail  AddSource = "detail"
)

// CartService defines operations for the cart page and the cart badge.
type CartService interface {
	// View returns the cart, generating it on first use.
	View(ctx context.Context) (*model.CartView, error)

	// Reload replaces the cart with freshly generated items.
	Reload(ctx context.Context) (*model.CartView, error)

	// RemoveItem drops a product from the cart.
	RemoveItem(ctx context.Context, productID int) (*model.CartView, error)

	// Clear empties the cart and resets the badge.
	Clear(ctx context.Context) (*model.CartView, error)

	// AddToCart records an add-to-cart click.
	AddToCart(ctx context.Context, productID int, from AddSource) (*model.AddToCartResult, error)

	// BadgeCount returns the header badge value.
	BadgeCount(ctx context.Context) int

	// DecrementBadge lowers the header badge by one, not below zero.
	DecrementBadge(ctx context.Context) int
}

// CheckoutService defines operations for the checkout page.
type CheckoutService interface {
	// Summary returns the order in progress, generating it on first use.
	Summary(ctx context.Context) (*model.CheckoutSummary, error)

	// Reload replaces the order in progress with freshly generated items.
	Reload(ctx context.Context) (*model.CheckoutSummary, error)

	// Clear empties the order in progress and resets the badge.
	Clear(ctx context.Context) (*model.CheckoutSummary, error)

	// PlaceOrder validates the shipping details and stores a Pending order.
	PlaceOrder(ctx context.Context, customer model.Customer) (*model.Order, error)
}

// OrderService defines operations for the provider order dashboard.
type OrderService interface {
	// List filters and paginates the stored orders, seeding the store when
	// it is empty.
	List(ctx context.Context, q listing.OrderQuery, page int) (*listing.Page[model.Order], error)

	// GetByID retrieves a single order.
	GetByID(ctx context.Context, id string) (*model.Order, error)

	// UpdateStatus saves a new status for one order.
	UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.StatusUpdate, error)

	// BulkUpdateStatus applies status to every selected order.
	BulkUpdateStatus(ctx context.Context, ids []string, status model.OrderStatus) (*model.BulkStatusResult, error)
}
