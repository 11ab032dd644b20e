package model

import "github.com/shopspring/decimal"

// Categories lists the catalogue categories in display order.
var Categories = []string{"Food", "Electronics", "Home", "Accessories", "Clothing", "Books"}

// Product represents a synthetic catalogue product.
type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Image       string          `json:"img"`
	Price       decimal.Decimal `json:"price"`
	Rating      int             `json:"rating"`
	Description string          `json:"desc"`
	Category    string          `json:"category"`
	BestSeller  bool            `json:"bestSeller"`
}

// IsCategory reports whether name is one of the catalogue categories.
func IsCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

// FAQ is a question and answer shown on the home page.
type FAQ struct {
	Question string `json:"q"`
	Answer   string `json:"a"`
}

// HomePage is the payload for the landing page.
type HomePage struct {
	Featured []Product `json:"featured"`
	FAQs     []FAQ     `json:"faqs"`
}

// DefaultFAQs returns the static FAQ entries.
func DefaultFAQs() []FAQ {
	return []FAQ{
		{Question: "What payment methods do you accept?", Answer: "Credit card, PayPal, and gift cards."},
		{Question: "How fast is shipping?", Answer: "Most orders arrive within 3-5 business days."},
		{Question: "Can I return a product?", Answer: "Yes, returns accepted within 30 days."},
	}
}
