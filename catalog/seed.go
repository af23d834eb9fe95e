package catalog

import "sokohub/models"

// Seed returns the demo catalog used when the service runs without an
// external dataset: a handful of Kenyan marketplace providers with their
// services, staff and reviews.
func Seed() *Catalog {
	categories := []models.Category{
		{ID: "food-beverages", Name: "Food & Beverages", Slug: "food-beverages", Description: "Catering, private chefs and event food services", ServiceCount: 38, Featured: true},
		{ID: "cleaning-services", Name: "Cleaning Services", Slug: "cleaning-services", Description: "Thorough home and office cleaning by trusted professionals", ServiceCount: 45, Featured: true},
		{ID: "auto-mechanics", Name: "Auto Mechanics", Slug: "auto-mechanics", Description: "Certified mechanics for repairs, maintenance, and diagnostics", ServiceCount: 32, Featured: true},
		{ID: "plumbing-electrical", Name: "Plumbing & Electrical", Slug: "plumbing-electrical", Description: "Licensed plumbers and electricians for repairs and installations", ServiceCount: 41},
		{ID: "home-maintenance", Name: "Home Maintenance", Slug: "home-maintenance", Description: "General repairs, HVAC, and property upkeep services", ServiceCount: 53},
	}

	providers := []models.Provider{
		{
			ID: "kenyan-delights", Name: "Kenyan Delights", Slug: "kenyan-delights",
			Description: "Leading catering service in East Africa specializing in traditional Kenyan cuisine",
			Location:    "Nairobi, Kenya", Verified: true, Rating: 4.8, ReviewCount: 156,
			Phone: "+254700111222", CategoryIDs: []string{"food-beverages"},
		},
		{
			ID: "clean-sweep", Name: "Clean Sweep Services", Slug: "clean-sweep",
			Description: "Professional cleaning services for homes and offices",
			Location:    "Nairobi, Kenya", Verified: true, Rating: 4.7, ReviewCount: 234,
			CategoryIDs: []string{"cleaning-services"},
		},
		{
			ID: "auto-experts", Name: "Auto Experts Kenya", Slug: "auto-experts",
			Description: "Certified mechanics with over 15 years of experience",
			Location:    "Mombasa, Kenya", Verified: true, Rating: 4.6, ReviewCount: 567,
			CategoryIDs: []string{"auto-mechanics"},
		},
		{
			ID: "home-helpers", Name: "Home Helpers", Slug: "home-helpers",
			Description: "Complete home maintenance and repair solutions",
			Location:    "Kisumu, Kenya", Verified: false, Rating: 4.3, ReviewCount: 89,
			CategoryIDs: []string{"home-maintenance", "plumbing-electrical"},
		},
	}

	services := []models.Service{
		{
			ID: "nyama-choma-catering-20", Name: "Nyama Choma Catering", Slug: "nyama-choma-catering-20",
			Description:      "Traditional Kenyan barbecue catering with full setup, service staff and sides",
			ShortDescription: "Authentic nyama choma for your event",
			CategoryID:       "food-beverages", ProviderID: "kenyan-delights",
			BasePrice: 25000, Currency: "KES", PricingType: models.PricingPackage,
			Rating: 4.9, ReviewCount: 127, Featured: true, Verified: true,
			Packages: []models.ServicePackage{
				{ID: "pkg-20", Name: "20 People", Capacity: 20, Price: 25000, Currency: "KES", Duration: 240, Features: []string{"2 chefs", "Setup included", "Sides and salads"}},
				{ID: "pkg-50", Name: "50 People", Capacity: 50, Price: 55000, Currency: "KES", Duration: 300, Features: []string{"4 chefs", "Setup included", "Sides and salads", "Dessert table"}},
				{ID: "pkg-100", Name: "100 People", Capacity: 100, Price: 98000, Currency: "KES", Duration: 360, Features: []string{"6 chefs", "Full service staff", "Premium menu"}},
			},
			Tags: []string{"catering", "barbecue", "events", "kenyan cuisine"},
		},
		{
			ID: "home-deep-cleaning", Name: "Home Deep Cleaning", Slug: "home-deep-cleaning",
			Description:      "Complete deep cleaning of your home with eco-friendly products",
			ShortDescription: "Spotless homes, room by room",
			CategoryID:       "cleaning-services", ProviderID: "clean-sweep",
			BasePrice: 4500, Currency: "KES", PricingType: models.PricingPerSession,
			Duration: 180, Rating: 4.7, ReviewCount: 214, Featured: true, Verified: true,
			Tags: []string{"cleaning", "home", "eco-friendly"},
		},
		{
			ID: "office-cleaning", Name: "Office Cleaning", Slug: "office-cleaning",
			Description: "Scheduled office cleaning for small and medium businesses",
			CategoryID:  "cleaning-services", ProviderID: "clean-sweep",
			BasePrice: 6000, Currency: "KES", PricingType: models.PricingPerSession,
			Duration: 120, Rating: 4.5, ReviewCount: 96, Verified: true,
			Tags: []string{"cleaning", "office"},
		},
		{
			ID: "car-diagnostics", Name: "Full Car Diagnostics", Slug: "car-diagnostics",
			Description: "Computerized diagnostics with a written report and repair estimate",
			CategoryID:  "auto-mechanics", ProviderID: "auto-experts",
			BasePrice: 3500, Currency: "KES", PricingType: models.PricingFixed,
			Duration: 90, Rating: 4.6, ReviewCount: 342, Verified: true,
			Tags: []string{"car", "diagnostics", "mechanic"},
		},
		{
			ID: "handyman-hourly", Name: "General Handyman", Slug: "handyman-hourly",
			Description: "Repairs, mounting, small plumbing and electrical fixes around the house",
			CategoryID:  "home-maintenance", ProviderID: "home-helpers",
			BasePrice: 1200, Currency: "KES", PricingType: models.PricingPerHour,
			Rating: 4.3, ReviewCount: 58,
			Tags: []string{"handyman", "repairs", "home"},
		},
	}

	staff := []models.StaffMember{
		{ID: "chef-james-mwangi", Name: "Chef James Mwangi", ProviderID: "kenyan-delights", Services: []string{"nyama-choma-catering-20"}},
		{ID: "michael-kiprop", Name: "Michael Kiprop", ProviderID: "kenyan-delights", Services: []string{"nyama-choma-catering-20"}},
		{ID: "sarah-achieng", Name: "Sarah Achieng", ProviderID: "kenyan-delights", Services: []string{"nyama-choma-catering-20"}},
	}

	reviews := []models.Review{
		{ID: "review-1", ServiceID: "nyama-choma-catering-20", UserID: "user-1", UserName: "amyrobson", Rating: 5, Comment: "From setup to service, everything was impeccable. The nyama choma was perfectly grilled. Asante sana!", CreatedAt: "2024-11-08T10:00:00Z", Helpful: 24},
		{ID: "review-2", ServiceID: "nyama-choma-catering-20", UserID: "user-2", UserName: "johnkimani", Rating: 5, Comment: "Our corporate event was a huge success thanks to Kenyan Delights. Will definitely book again!", CreatedAt: "2024-11-15T14:30:00Z", Helpful: 18},
		{ID: "review-3", ServiceID: "home-deep-cleaning", UserID: "user-4", UserName: "peterodhiambo", Rating: 5, Comment: "My house has never been this clean. They paid attention to every detail and used eco-friendly products.", CreatedAt: "2024-11-20T09:15:00Z", Helpful: 31},
		{ID: "review-4", ServiceID: "home-deep-cleaning", UserID: "user-5", UserName: "gracenwambi", Rating: 4, Comment: "Very thorough cleaning service. Professional team and great value for money.", CreatedAt: "2024-11-10T11:00:00Z", Helpful: 15},
	}

	return New(services, categories, providers).WithStaff(staff).WithReviews(reviews)
}
