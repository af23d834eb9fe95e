package catalog

import (
	"sort"
	"strings"

	"sokohub/models"
)

// Query produces a filtered, sorted view of the service collection. All set
// filters are AND-combined; search matches case-insensitively against name,
// descriptions and tags. The catalog itself is never mutated and the result
// is always a fresh slice.
//
// An empty catalog, contradictory price bounds or an unknown category id all
// yield an empty result, never an error.
func (c *Catalog) Query(filters models.Filters, search string) []models.Service {
	filtered := make([]models.Service, 0, len(c.services))
	for _, svc := range c.services {
		if filters.CategoryID != "" && svc.CategoryID != filters.CategoryID {
			continue
		}
		if filters.ProviderID != "" && svc.ProviderID != filters.ProviderID {
			continue
		}
		if filters.MinPrice != nil && svc.BasePrice < *filters.MinPrice {
			continue
		}
		if filters.MaxPrice != nil && svc.BasePrice > *filters.MaxPrice {
			continue
		}
		if filters.Rating != nil && svc.Rating < *filters.Rating {
			continue
		}
		if filters.Verified != nil && svc.Verified != *filters.Verified {
			continue
		}
		if search != "" && !matchesSearch(svc, search) {
			continue
		}
		filtered = append(filtered, svc)
	}

	sortServices(filtered, filters.SortBy)
	return filtered
}

func matchesSearch(svc models.Service, search string) bool {
	q := strings.ToLower(search)
	if strings.Contains(strings.ToLower(svc.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(svc.Description), q) {
		return true
	}
	if strings.Contains(strings.ToLower(svc.ShortDescription), q) {
		return true
	}
	for _, tag := range svc.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// sortServices orders the slice in place. All modes sort stably so equal
// elements keep their prior relative order. "newest" reverses insertion
// order; Service has no created-at field, so this is an approximation.
func sortServices(services []models.Service, sortBy models.SortOption) {
	switch sortBy {
	case models.SortRating:
		sort.SliceStable(services, func(i, j int) bool {
			return services[i].Rating > services[j].Rating
		})
	case models.SortPriceLow:
		sort.SliceStable(services, func(i, j int) bool {
			return services[i].BasePrice < services[j].BasePrice
		})
	case models.SortPriceHigh:
		sort.SliceStable(services, func(i, j int) bool {
			return services[i].BasePrice > services[j].BasePrice
		})
	case models.SortNewest:
		for i, j := 0, len(services)-1; i < j; i, j = i+1, j-1 {
			services[i], services[j] = services[j], services[i]
		}
	case models.SortPopular:
		fallthrough
	default:
		sort.SliceStable(services, func(i, j int) bool {
			return services[i].ReviewCount > services[j].ReviewCount
		})
	}
}
