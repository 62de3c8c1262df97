package catalog

import (
	"testing"

	"github.com/matst80/slask-catalog/pkg/types"
)

func sampleProducts() []types.Product {
	return []types.Product{
		{Id: 1, Color: "red", Designer: "gucci", OnSale: true, RegularPrice: 500, DiscountPrice: 250, PopularityScore: 2.5},
		{Id: 2, Color: "black", Designer: "gucci", OnSale: true, RegularPrice: 800, DiscountPrice: 400, PopularityScore: 3.8},
		{Id: 3, Color: "black", Designer: "dolce-gabbana", OnSale: false, RegularPrice: 150, DiscountPrice: 150, PopularityScore: 1.2},
		{Id: 4, Color: "blue", Designer: "gucci", OnSale: false, RegularPrice: 50, DiscountPrice: 50, PopularityScore: 4.5},
	}
}

func ids(products []types.Product) []types.ProductId {
	result := make([]types.ProductId, len(products))
	for i, p := range products {
		result[i] = p.Id
	}
	return result
}

func expectIds(t *testing.T, products []types.Product, expected ...types.ProductId) {
	t.Helper()
	got := ids(products)
	if len(got) != len(expected) {
		t.Fatalf("Expected ids %v, got %v", expected, got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Expected ids %v, got %v", expected, got)
			return
		}
	}
}

func TestApplyNoCriteria(t *testing.T) {
	products := sampleProducts()
	result := Apply(products, &types.Criteria{})
	if len(result) != len(products) {
		t.Fatalf("Expected %d products, got %d", len(products), len(result))
	}
	expectIds(t, result, 1, 2, 3, 4)

	result = Apply(products, nil)
	expectIds(t, result, 1, 2, 3, 4)
}

func TestFilterByColor(t *testing.T) {
	expectIds(t, FilterByColor(sampleProducts(), "black"), 2, 3)
	expectIds(t, FilterByColor(sampleProducts(), "purple"))
}

func TestFilterByBrand(t *testing.T) {
	expectIds(t, FilterByBrand(sampleProducts(), "gucci"), 1, 2, 4)
	expectIds(t, FilterByBrand(sampleProducts(), "dolce-gabbana"), 3)
}

func TestFilterBySaleStatus(t *testing.T) {
	expectIds(t, FilterBySaleStatus(sampleProducts(), true), 1, 2)
	expectIds(t, FilterBySaleStatus(sampleProducts(), false), 3, 4)
}

func TestFilterByPriceRangeUsesEffectivePrice(t *testing.T) {
	// id 1 is on sale at 250, its regular price 500 is outside the range
	expectIds(t, FilterByPriceRange(sampleProducts(), 240, 260), 1)
}

func TestFilterByPriceRangeInclusiveBounds(t *testing.T) {
	expectIds(t, FilterByPriceRange(sampleProducts(), 50, 150), 3, 4)
}

func TestFilterByPriceRangeInvertedBounds(t *testing.T) {
	expectIds(t, FilterByPriceRange(sampleProducts(), 260, 240))
}

func TestApplyCombinedCriteria(t *testing.T) {
	color := "black"
	onSale := true
	result := Apply(sampleProducts(), &types.Criteria{Color: &color, OnSale: &onSale})
	expectIds(t, result, 2)
}

func TestApplyPreservesOrder(t *testing.T) {
	brand := "gucci"
	result := Apply(sampleProducts(), &types.Criteria{Brand: &brand})
	expectIds(t, result, 1, 2, 4)
}
