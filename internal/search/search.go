package search

import (
	"slices"
	"strings"
	"unicode"

	"github.com/blacktechlight/internal/db"
)

// SortMode describes how a product list is ordered.
type SortMode string

const (
	SortRelevance SortMode = "relevance"
	SortPriceAsc  SortMode = "price-asc"
	SortPriceDesc SortMode = "price-desc"
)

// ParseSortMode maps a query parameter onto a SortMode, defaulting to relevance.
func ParseSortMode(raw string) SortMode {
	switch SortMode(raw) {
	case SortPriceAsc:
		return SortPriceAsc
	case SortPriceDesc:
		return SortPriceDesc
	default:
		return SortRelevance
	}
}

// StockMode describes the availability filter on the search page.
type StockMode string

const (
	StockAll      StockMode = "all"
	StockInStock  StockMode = "in-stock"
	StockPreorder StockMode = "preorder"
	StockRequest  StockMode = "request"
)

// ParseStockMode maps a query parameter onto a StockMode, defaulting to all.
func ParseStockMode(raw string) StockMode {
	switch StockMode(raw) {
	case StockInStock:
		return StockInStock
	case StockPreorder:
		return StockPreorder
	case StockRequest:
		return StockRequest
	default:
		return StockAll
	}
}

// Normalize lowercases the input, folds "ё" to "е" and replaces runs of
// non-letter/digit runes with single spaces, so queries and candidate
// text compare the way a human expects.
func Normalize(s string) string {
	lowered := strings.ReplaceAll(strings.ToLower(s), "ё", "е")

	var b strings.Builder
	b.Grow(len(lowered))
	lastSpace := true
	for _, r := range lowered {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if !lastSpace {
			b.WriteRune(' ')
			lastSpace = true
		}
	}
	return strings.TrimSpace(b.String())
}

// MatchesStock reports whether a product passes the availability filter.
// The rules mirror the storefront wording: "В наличии", "Под заказ",
// no price or "запрос" in the status means price-on-request.
func MatchesStock(mode StockMode, availability string, price *int) bool {
	a := strings.ToLower(availability)

	switch mode {
	case StockRequest:
		return price == nil || strings.Contains(a, "запрос")
	case StockInStock:
		return strings.Contains(a, "налич")
	case StockPreorder:
		return strings.Contains(a, "заказ")
	default:
		return true
	}
}

func haystack(p db.Product) string {
	return Normalize(strings.Join([]string{
		p.Brand, p.Title, p.Short, p.DescriptionMd, p.SearchKeywords,
	}, " "))
}

// Filter applies the search page filters: category equality, stock mode
// and a normalized substring match over brand, title, short and long
// descriptions and keywords. The input order is preserved.
func Filter(products []db.Product, query, categorySlug string, stock StockMode) []db.Product {
	needle := Normalize(query)

	out := make([]db.Product, 0, len(products))
	for _, p := range products {
		if categorySlug != "" && categorySlug != "all" && p.Category.Slug != categorySlug {
			continue
		}
		if !MatchesStock(stock, p.Availability, p.Price) {
			continue
		}
		if needle != "" && !strings.Contains(haystack(p), needle) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SortProducts orders a product list by the given mode. Relevance keeps
// the input order. Both price modes place products without a price
// strictly after every priced product; the sort is stable so equal keys
// keep their prior relative order.
func SortProducts(products []db.Product, mode SortMode) []db.Product {
	if mode == SortRelevance {
		return products
	}

	out := slices.Clone(products)
	slices.SortStableFunc(out, func(a, b db.Product) int {
		if a.Price == nil && b.Price == nil {
			return 0
		}
		if a.Price == nil {
			return 1
		}
		if b.Price == nil {
			return -1
		}
		if mode == SortPriceAsc {
			return *a.Price - *b.Price
		}
		return *b.Price - *a.Price
	})
	return out
}

// SuggestLimit caps the header overlay suggestion list.
const SuggestLimit = 8

// Suggest returns up to SuggestLimit products whose brand, title, short
// description or keywords contain the normalized query, featured
// products first (stable within each group).
func Suggest(products []db.Product, query string) []db.Product {
	needle := Normalize(query)
	if needle == "" {
		return nil
	}

	var out []db.Product
	for _, p := range products {
		hay := Normalize(strings.Join([]string{p.Brand, p.Title, p.Short, p.SearchKeywords}, " "))
		if strings.Contains(hay, needle) {
			out = append(out, p)
		}
	}

	slices.SortStableFunc(out, func(a, b db.Product) int {
		af, bf := 1, 1
		if a.FeaturedInSearch {
			af = 0
		}
		if b.FeaturedInSearch {
			bf = 0
		}
		return af - bf
	})

	if len(out) > SuggestLimit {
		out = out[:SuggestLimit]
	}
	return out
}

// Featured filters the promo rotation pool.
func Featured(products []db.Product) []db.Product {
	var out []db.Product
	for _, p := range products {
		if p.FeaturedInSearch {
			out = append(out, p)
		}
	}
	return out
}
