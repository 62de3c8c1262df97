package types

import "fmt"

const (
	SortPriceHighToLow = "price_high_to_low"
	SortPriceLowToHigh = "price_low_to_high"
	SortPopularity     = "popularity"
)

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Criteria is the normalized form of a filter selection. A nil field
// means the criterion was not provided, which is different from a
// provided value that no product matches.
type Criteria struct {
	Color      *string     `json:"color,omitempty"`
	Brand      *string     `json:"brand,omitempty"`
	OnSale     *bool       `json:"on_sale,omitempty"`
	PriceRange *PriceRange `json:"price_range,omitempty"`
}

func (c *Criteria) Empty() bool {
	return c == nil || (c.Color == nil && c.Brand == nil && c.OnSale == nil && c.PriceRange == nil)
}

// StoredFilters is the flat document kept in the filter store, exactly
// as clients submit it. Empty strings and json null both mean "not
// provided".
type StoredFilters struct {
	Color      string `json:"color,omitempty"`
	Brand      string `json:"brand,omitempty"`
	OnSale     *bool  `json:"on_sale,omitempty"`
	PriceRange string `json:"price_range,omitempty"`
	SortBy     string `json:"sort_by,omitempty"`
}

// ParsePriceRange parses the stored "min-max" form.
func ParsePriceRange(value string) (*PriceRange, error) {
	var min, max float64
	if _, err := fmt.Sscanf(value, "%f-%f", &min, &max); err != nil {
		return nil, fmt.Errorf("invalid price range %q: %w", value, err)
	}
	return &PriceRange{Min: min, Max: max}, nil
}

// Criteria normalizes the stored document into explicit optional
// constraints. A nil receiver (nothing stored) yields empty criteria.
func (s *StoredFilters) Criteria() (*Criteria, error) {
	if s == nil {
		return &Criteria{}, nil
	}
	c := &Criteria{OnSale: s.OnSale}
	if s.Color != "" {
		c.Color = &s.Color
	}
	if s.Brand != "" {
		c.Brand = &s.Brand
	}
	if s.PriceRange != "" {
		r, err := ParsePriceRange(s.PriceRange)
		if err != nil {
			return nil, err
		}
		c.PriceRange = r
	}
	return c, nil
}
