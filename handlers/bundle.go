package handlers

// HandlerBundle aggregates the handler groups wired in main and consumed
// by the route registration.
type HandlerBundle struct {
	Catalog      *CatalogHandler
	Cart         *CartHandler
	Favorites    *FavoritesHandler
	Booking      *BookingHandler
	Registration *RegistrationHandler
}
