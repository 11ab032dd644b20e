package model

import "github.com/shopspring/decimal"

// CartView is the cart page payload.
type CartView struct {
	Items      []Product       `json:"items"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	BadgeCount int             `json:"badgeCount"`
}

// AddToCartResult reports the outcome of an add-to-cart click.
type AddToCartResult struct {
	ProductID int `json:"productId"`
	// Added is false when the product had already been added; the badge is
	// then left unchanged.
	Added      bool `json:"added"`
	BadgeCount int  `json:"badgeCount"`
}

// CheckoutSummary is the checkout page's order-in-progress.
type CheckoutSummary struct {
	Items    []OrderItem     `json:"items"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Total    decimal.Decimal `json:"total"`
}

// StatusUpdate reports the outcome of saving an order's status.
type StatusUpdate struct {
	Order   Order `json:"order"`
	Changed bool  `json:"changed"`
}

// BulkStatusRequest applies one status to several orders.
type BulkStatusRequest struct {
	IDs    []string    `json:"ids"`
	Status OrderStatus `json:"status"`
}

// BulkStatusResult lists which selected orders were updated.
type BulkStatusResult struct {
	Status  OrderStatus `json:"status"`
	Updated []string    `json:"updated"`
	Missing []string    `json:"missing"`
}

// StatusRequest is the body of a single status change.
type StatusRequest struct {
	Status OrderStatus `json:"status"`
}
