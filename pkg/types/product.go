package types

type ProductId = uint

// Product is one catalog record as stored in the line delimited catalog file.
type Product struct {
	Id              ProductId `json:"product_id"`
	Color           string    `json:"color"`
	Designer        string    `json:"designer"`
	OnSale          bool      `json:"on_sale"`
	RegularPrice    float64   `json:"regular_price"`
	DiscountPrice   float64   `json:"discount_price"`
	PopularityScore float64   `json:"popularity_score"`
}

// EffectivePrice is the price a buyer actually pays, discount price
// while the product is on sale and regular price otherwise. All price
// comparisons use this, never RegularPrice directly.
func (p *Product) EffectivePrice() float64 {
	if p.OnSale {
		return p.DiscountPrice
	}
	return p.RegularPrice
}
