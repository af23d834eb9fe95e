package models

// CartItem is one entry in the cart. Entries are deduplicated on the
// (ServiceID, PackageID) pair: adding a matching item increments quantity.
type CartItem struct {
	ServiceID       string `json:"serviceId"`
	PackageID       string `json:"packageId,omitempty"`
	Quantity        int    `json:"quantity"`
	SelectedDate    string `json:"selectedDate,omitempty"` // "YYYY-MM-DD"
	SelectedTime    string `json:"selectedTime,omitempty"` // "HH:MM"
	StaffID         string `json:"staffId,omitempty"`
	SpecialRequests string `json:"specialRequests,omitempty"`
}

// CartItemUpdate carries the optional fields of a partial cart item update.
// Nil fields are left untouched.
type CartItemUpdate struct {
	Quantity        *int    `json:"quantity,omitempty"`
	SelectedDate    *string `json:"selectedDate,omitempty"`
	SelectedTime    *string `json:"selectedTime,omitempty"`
	StaffID         *string `json:"staffId,omitempty"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
}

// Cart holds the ordered item list and a cached total. Total is recomputed
// after every mutation and always equals the sum of resolved unit price
// times quantity over the items.
type Cart struct {
	Items    []CartItem `json:"items"`
	Total    float64    `json:"total"`
	Currency string     `json:"currency"`
}
