package listing

import (
	"fmt"
	"slices"
	"strings"

	"mini-storefront/internal/model"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// AllCategories matches every category.
const AllCategories = "All"

// PriceBucket is one of the fixed price ranges offered by the product list.
type PriceBucket string

const (
	PriceAll      PriceBucket = "all"
	PriceUnder25  PriceBucket = "under-25"
	Price25To100  PriceBucket = "25-100"
	Price100To200 PriceBucket = "100-200"
)

// ProductSort selects the product ordering.
type ProductSort string

const (
	SortDefault    ProductSort = "default"
	SortPriceAsc   ProductSort = "price-asc"
	SortPriceDesc  ProductSort = "price-desc"
	SortAlpha      ProductSort = "alpha"
	SortBestSeller ProductSort = "bestseller"
)

var bucketBounds = map[PriceBucket][2]decimal.Decimal{
	PriceUnder25:  {decimal.NewFromInt(0), decimal.NewFromInt(25)},
	Price25To100:  {decimal.NewFromInt(25), decimal.NewFromInt(100)},
	Price100To200: {decimal.NewFromInt(100), decimal.NewFromInt(200)},
}

// ParsePriceBucket validates a bucket name. Empty means PriceAll.
func ParsePriceBucket(s string) (PriceBucket, error) {
	switch b := PriceBucket(s); b {
	case "", PriceAll:
		return PriceAll, nil
	case PriceUnder25, Price25To100, Price100To200:
		return b, nil
	}
	return "", fmt.Errorf("invalid price range: %s", s)
}

// ParseProductSort validates a sort name. Empty means SortDefault.
func ParseProductSort(s string) (ProductSort, error) {
	switch v := ProductSort(s); v {
	case "", SortDefault:
		return SortDefault, nil
	case SortPriceAsc, SortPriceDesc, SortAlpha, SortBestSeller:
		return v, nil
	}
	return "", fmt.Errorf("invalid sort: %s", s)
}

// ProductQuery describes the product list controls.
type ProductQuery struct {
	Search         string
	Category       string
	Price          PriceBucket
	BestSellerOnly bool
	Sort           ProductSort
}

// FilterProducts returns the products matching q in the requested order.
// The input slice is not modified.
func FilterProducts(products []model.Product, q ProductQuery) []model.Product {
	// Casers are stateful; one per call.
	folder := cases.Fold()
	needle := folder.String(q.Search)

	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if needle != "" &&
			!strings.Contains(folder.String(p.Name), needle) &&
			!strings.Contains(folder.String(p.Description), needle) {
			continue
		}
		if q.Category != "" && q.Category != AllCategories && p.Category != q.Category {
			continue
		}
		if bounds, ok := bucketBounds[q.Price]; ok {
			if p.Price.LessThan(bounds[0]) || p.Price.GreaterThan(bounds[1]) {
				continue
			}
		}
		if q.BestSellerOnly && !p.BestSeller {
			continue
		}
		out = append(out, p)
	}

	sortProducts(out, q.Sort)
	return out
}

func sortProducts(products []model.Product, by ProductSort) {
	switch by {
	case SortPriceAsc:
		slices.SortStableFunc(products, func(a, b model.Product) int {
			return a.Price.Cmp(b.Price)
		})
	case SortPriceDesc:
		slices.SortStableFunc(products, func(a, b model.Product) int {
			return b.Price.Cmp(a.Price)
		})
	case SortAlpha:
		col := collate.New(language.English)
		slices.SortStableFunc(products, func(a, b model.Product) int {
			return col.CompareString(a.Name, b.Name)
		})
	case SortBestSeller:
		slices.SortStableFunc(products, func(a, b model.Product) int {
			return boolRank(b.BestSeller) - boolRank(a.BestSeller)
		})
	}
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
