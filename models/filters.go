package models

// SortOption selects the ordering of catalog query results.
type SortOption string

const (
	SortPopular   SortOption = "popular"
	SortRating    SortOption = "rating"
	SortPriceLow  SortOption = "price-low"
	SortPriceHigh SortOption = "price-high"
	SortNewest    SortOption = "newest"
)

// Valid reports whether o is a known sort option.
func (o SortOption) Valid() bool {
	switch o {
	case SortPopular, SortRating, SortPriceLow, SortPriceHigh, SortNewest:
		return true
	}
	return false
}

// Filters is a transient query descriptor for the catalog. All set fields
// are AND-combined. Filters are never persisted.
type Filters struct {
	CategoryID string     `json:"categoryId,omitempty"`
	ProviderID string     `json:"providerId,omitempty"`
	MinPrice   *float64   `json:"minPrice,omitempty"`
	MaxPrice   *float64   `json:"maxPrice,omitempty"`
	Rating     *float64   `json:"rating,omitempty"`
	Verified   *bool      `json:"verified,omitempty"`
	SortBy     SortOption `json:"sortBy,omitempty"`
}

// FiltersUpdate carries the optional fields of a partial filter update.
type FiltersUpdate struct {
	CategoryID *string     `json:"categoryId,omitempty"`
	ProviderID *string     `json:"providerId,omitempty"`
	MinPrice   *float64    `json:"minPrice,omitempty"`
	MaxPrice   *float64    `json:"maxPrice,omitempty"`
	Rating     *float64    `json:"rating,omitempty"`
	Verified   *bool       `json:"verified,omitempty"`
	SortBy     *SortOption `json:"sortBy,omitempty"`
}
