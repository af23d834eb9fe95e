package models

// Category is immutable reference data describing a service category.
type Category struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Description  string `json:"description"`
	ServiceCount int    `json:"serviceCount"`
	Icon         string `json:"icon,omitempty"`
	Image        string `json:"image,omitempty"`
	Featured     bool   `json:"featured,omitempty"`
}

// Provider is immutable reference data describing a merchant.
type Provider struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Verified    bool     `json:"verified"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"reviewCount"`
	Phone       string   `json:"phone,omitempty"`
	Logo        string   `json:"logo,omitempty"`
	CategoryIDs []string `json:"categoryIds"`
}

// PricingType describes how a service is priced.
type PricingType string

const (
	PricingFixed      PricingType = "fixed"
	PricingPerSession PricingType = "per-session"
	PricingPerHour    PricingType = "per-hour"
	PricingPackage    PricingType = "package"
)

// ServicePackage is a named pricing/capacity variant of a service,
// e.g. "20 people / 240 min".
type ServicePackage struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Capacity int      `json:"capacity"`
	Price    float64  `json:"price"`
	Currency string   `json:"currency"`
	Duration int      `json:"duration"` // minutes
	Features []string `json:"features,omitempty"`
}

// Service is a bookable offering listed in the catalog. When PricingType is
// "package" the base price is not authoritative for checkout; the price must
// be resolved from the selected package.
type Service struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Slug             string           `json:"slug"`
	Description      string           `json:"description"`
	ShortDescription string           `json:"shortDescription,omitempty"`
	CategoryID       string           `json:"categoryId"`
	ProviderID       string           `json:"providerId"`
	Images           []string         `json:"images,omitempty"`
	BasePrice        float64          `json:"basePrice"`
	Currency         string           `json:"currency"`
	PricingType      PricingType      `json:"pricingType"`
	Duration         int              `json:"duration,omitempty"` // minutes
	Rating           float64          `json:"rating"`
	ReviewCount      int              `json:"reviewCount"`
	Featured         bool             `json:"featured,omitempty"`
	Verified         bool             `json:"verified,omitempty"`
	Packages         []ServicePackage `json:"packages,omitempty"`
	Tags             []string         `json:"tags,omitempty"`
}

// Package returns the package with the given id, if the service has one.
func (s *Service) Package(packageID string) (*ServicePackage, bool) {
	for i := range s.Packages {
		if s.Packages[i].ID == packageID {
			return &s.Packages[i], true
		}
	}
	return nil, false
}

// StaffMember is a named person a provider can assign to a booking.
type StaffMember struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	ProviderID string   `json:"providerId"`
	Services   []string `json:"services"` // service ids this member can perform
}

// Review is customer feedback attached to a service.
type Review struct {
	ID        string  `json:"id"`
	ServiceID string  `json:"serviceId"`
	UserID    string  `json:"userId"`
	UserName  string  `json:"userName"`
	Rating    float64 `json:"rating"` // expected value between 1 and 5
	Comment   string  `json:"comment"`
	CreatedAt string  `json:"createdAt"`
	Helpful   int     `json:"helpful"`
}
