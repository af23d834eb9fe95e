// Package catalog holds the read-only reference data of the storefront:
// categories, providers, services with their packages, staff and reviews.
// The catalog is injected at store construction and never mutated.
package catalog

import "sokohub/models"

// Catalog is an immutable snapshot of the storefront reference data.
// Lookup maps are built once at construction; query methods always return
// fresh slices so callers cannot reach the backing arrays.
type Catalog struct {
	services   []models.Service
	categories []models.Category
	providers  []models.Provider
	staff      []models.StaffMember
	reviews    []models.Review

	serviceByID  map[string]int
	categoryByID map[string]int
	providerByID map[string]int
	staffByID    map[string]int
}

// New builds a catalog from the supplied reference data. The input slices
// are copied; callers keep ownership of their arguments.
func New(services []models.Service, categories []models.Category, providers []models.Provider) *Catalog {
	c := &Catalog{
		services:     append([]models.Service(nil), services...),
		categories:   append([]models.Category(nil), categories...),
		providers:    append([]models.Provider(nil), providers...),
		serviceByID:  make(map[string]int, len(services)),
		categoryByID: make(map[string]int, len(categories)),
		providerByID: make(map[string]int, len(providers)),
		staffByID:    make(map[string]int),
	}
	for i := range c.services {
		c.serviceByID[c.services[i].ID] = i
	}
	for i := range c.categories {
		c.categoryByID[c.categories[i].ID] = i
	}
	for i := range c.providers {
		c.providerByID[c.providers[i].ID] = i
	}
	return c
}

// WithStaff attaches staff reference data and returns the catalog.
func (c *Catalog) WithStaff(staff []models.StaffMember) *Catalog {
	c.staff = append([]models.StaffMember(nil), staff...)
	for i := range c.staff {
		c.staffByID[c.staff[i].ID] = i
	}
	return c
}

// WithReviews attaches review reference data and returns the catalog.
func (c *Catalog) WithReviews(reviews []models.Review) *Catalog {
	c.reviews = append([]models.Review(nil), reviews...)
	return c
}

// Services returns a copy of the full service collection in insertion order.
func (c *Catalog) Services() []models.Service {
	return append([]models.Service(nil), c.services...)
}

// Categories returns a copy of the category collection.
func (c *Catalog) Categories() []models.Category {
	return append([]models.Category(nil), c.categories...)
}

// Providers returns a copy of the provider collection.
func (c *Catalog) Providers() []models.Provider {
	return append([]models.Provider(nil), c.providers...)
}

// ServiceByID looks up a service by id.
func (c *Catalog) ServiceByID(id string) (models.Service, bool) {
	i, ok := c.serviceByID[id]
	if !ok {
		return models.Service{}, false
	}
	return c.services[i], true
}

// CategoryByID looks up a category by id.
func (c *Catalog) CategoryByID(id string) (models.Category, bool) {
	i, ok := c.categoryByID[id]
	if !ok {
		return models.Category{}, false
	}
	return c.categories[i], true
}

// ProviderByID looks up a provider by id.
func (c *Catalog) ProviderByID(id string) (models.Provider, bool) {
	i, ok := c.providerByID[id]
	if !ok {
		return models.Provider{}, false
	}
	return c.providers[i], true
}

// StaffByID looks up a staff member by id.
func (c *Catalog) StaffByID(id string) (models.StaffMember, bool) {
	i, ok := c.staffByID[id]
	if !ok {
		return models.StaffMember{}, false
	}
	return c.staff[i], true
}

// Featured returns the services flagged as featured, in insertion order.
func (c *Catalog) Featured() []models.Service {
	var out []models.Service
	for _, svc := range c.services {
		if svc.Featured {
			out = append(out, svc)
		}
	}
	return out
}

// ByCategory returns the services belonging to the given category.
func (c *Catalog) ByCategory(categoryID string) []models.Service {
	var out []models.Service
	for _, svc := range c.services {
		if svc.CategoryID == categoryID {
			out = append(out, svc)
		}
	}
	return out
}

// ByProvider returns the services offered by the given provider.
func (c *Catalog) ByProvider(providerID string) []models.Service {
	var out []models.Service
	for _, svc := range c.services {
		if svc.ProviderID == providerID {
			out = append(out, svc)
		}
	}
	return out
}

// StaffByProvider returns the staff members working for a provider.
func (c *Catalog) StaffByProvider(providerID string) []models.StaffMember {
	var out []models.StaffMember
	for _, m := range c.staff {
		if m.ProviderID == providerID {
			out = append(out, m)
		}
	}
	return out
}

// StaffByService returns the staff members able to perform a service.
func (c *Catalog) StaffByService(serviceID string) []models.StaffMember {
	var out []models.StaffMember
	for _, m := range c.staff {
		for _, sid := range m.Services {
			if sid == serviceID {
				out = append(out, m)
				break
			}
		}
	}
	return out
}

// ReviewsByService returns the reviews attached to a service.
func (c *Catalog) ReviewsByService(serviceID string) []models.Review {
	var out []models.Review
	for _, r := range c.reviews {
		if r.ServiceID == serviceID {
			out = append(out, r)
		}
	}
	return out
}

// ReviewSummary aggregates the reviews of a service into a count and an
// average rating. A service without reviews yields (0, 0).
func (c *Catalog) ReviewSummary(serviceID string) (count int, average float64) {
	var sum float64
	for _, r := range c.reviews {
		if r.ServiceID == serviceID {
			count++
			sum += r.Rating
		}
	}
	if count == 0 {
		return 0, 0
	}
	return count, sum / float64(count)
}
