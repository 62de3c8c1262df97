package catalog

import (
	"cmp"
	"slices"

	"github.com/matst80/slask-catalog/pkg/types"
)

// Sort returns a reordered copy of products, input untouched. Ties keep
// their relative order. An unknown or empty mode keeps the input order.
func Sort(products []types.Product, mode string) []types.Product {
	result := slices.Clone(products)
	switch mode {
	case types.SortPriceHighToLow:
		slices.SortStableFunc(result, func(a, b types.Product) int {
			return cmp.Compare(b.EffectivePrice(), a.EffectivePrice())
		})
	case types.SortPriceLowToHigh:
		slices.SortStableFunc(result, func(a, b types.Product) int {
			return cmp.Compare(a.EffectivePrice(), b.EffectivePrice())
		})
	case types.SortPopularity:
		slices.SortStableFunc(result, func(a, b types.Product) int {
			return cmp.Compare(b.PopularityScore, a.PopularityScore)
		})
	}
	return result
}
