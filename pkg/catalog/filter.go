package catalog

import (
	"github.com/matst80/slask-catalog/pkg/types"
)

func matches(p *types.Product, c *types.Criteria) bool {
	if c.Color != nil && p.Color != *c.Color {
		return false
	}
	if c.Brand != nil && p.Designer != *c.Brand {
		return false
	}
	if c.OnSale != nil && p.OnSale != *c.OnSale {
		return false
	}
	if c.PriceRange != nil {
		price := p.EffectivePrice()
		if price < c.PriceRange.Min || price > c.PriceRange.Max {
			return false
		}
	}
	return true
}

// Apply keeps the products matching every present criterion, in input
// order. Empty criteria returns the input unchanged.
func Apply(products []types.Product, c *types.Criteria) []types.Product {
	if c.Empty() {
		return products
	}
	result := make([]types.Product, 0, len(products))
	for i := range products {
		if matches(&products[i], c) {
			result = append(result, products[i])
		}
	}
	return result
}

func FilterByColor(products []types.Product, color string) []types.Product {
	return Apply(products, &types.Criteria{Color: &color})
}

func FilterByBrand(products []types.Product, brand string) []types.Product {
	return Apply(products, &types.Criteria{Brand: &brand})
}

func FilterBySaleStatus(products []types.Product, onSale bool) []types.Product {
	return Apply(products, &types.Criteria{OnSale: &onSale})
}

// FilterByPriceRange keeps products whose effective price is inside
// [min,max]. A range with min > max matches nothing.
func FilterByPriceRange(products []types.Product, min, max float64) []types.Product {
	return Apply(products, &types.Criteria{PriceRange: &types.PriceRange{Min: min, Max: max}})
}
