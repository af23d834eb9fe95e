package store

import (
	"go.uber.org/zap"

	"sokohub/models"
)

// AddToCart adds an item to the cart. If an entry with the same
// (serviceID, packageID) pair already exists its quantity is incremented;
// otherwise the item is appended. A non-positive quantity is rejected and
// the cart is left unchanged. The cached total is recomputed.
func (s *Store) AddToCart(item models.CartItem) error {
	if item.Quantity <= 0 {
		return ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	merged := false
	for i := range s.cart.Items {
		if s.cart.Items[i].ServiceID == item.ServiceID && s.cart.Items[i].PackageID == item.PackageID {
			s.cart.Items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		s.cart.Items = append(s.cart.Items, item)
	}

	s.cart.Total = s.computeCartTotal(s.cart.Items)
	s.logger.Debug("cart item added",
		zap.String("serviceID", item.ServiceID),
		zap.String("packageID", item.PackageID),
		zap.Int("quantity", item.Quantity),
		zap.Bool("merged", merged))
	s.persistLocked()
	return nil
}

// RemoveFromCart removes every cart entry with the given service id.
// Note that removal keys on the service id alone: if the cart holds two
// package variants of the same service, both are removed. This matches the
// storefront's historical behavior.
func (s *Store) RemoveFromCart(serviceID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.cart.Items[:0]
	for _, item := range s.cart.Items {
		if item.ServiceID != serviceID {
			kept = append(kept, item)
		}
	}
	s.cart.Items = kept
	s.cart.Total = s.computeCartTotal(s.cart.Items)
	s.persistLocked()
}

// UpdateCartItem merges the set fields of upd into every cart entry with
// the given service id. A quantity update must be positive; on rejection
// the cart is left unchanged. The cached total is recomputed.
func (s *Store) UpdateCartItem(serviceID string, upd models.CartItemUpdate) error {
	if upd.Quantity != nil && *upd.Quantity <= 0 {
		return ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart.Items {
		if s.cart.Items[i].ServiceID != serviceID {
			continue
		}
		if upd.Quantity != nil {
			s.cart.Items[i].Quantity = *upd.Quantity
		}
		if upd.SelectedDate != nil {
			s.cart.Items[i].SelectedDate = *upd.SelectedDate
		}
		if upd.SelectedTime != nil {
			s.cart.Items[i].SelectedTime = *upd.SelectedTime
		}
		if upd.StaffID != nil {
			s.cart.Items[i].StaffID = *upd.StaffID
		}
		if upd.SpecialRequests != nil {
			s.cart.Items[i].SpecialRequests = *upd.SpecialRequests
		}
	}

	s.cart.Total = s.computeCartTotal(s.cart.Items)
	s.persistLocked()
	return nil
}

// ClearCart resets the cart to empty, preserving the currency default.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = models.Cart{Items: []models.CartItem{}, Currency: s.currency}
	s.persistLocked()
}

// Cart returns a copy of the current cart.
func (s *Store) Cart() models.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cart := s.cart
	cart.Items = append([]models.CartItem(nil), s.cart.Items...)
	return cart
}

// CartTotal returns the cached cart total.
func (s *Store) CartTotal() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cart.Total
}

// computeCartTotal sums resolved unit price times quantity over the items.
// An item whose service no longer exists in the catalog contributes 0, so
// a stale cart never breaks total computation.
func (s *Store) computeCartTotal(items []models.CartItem) float64 {
	var total float64
	for _, item := range items {
		total += s.resolveUnitPrice(item) * float64(item.Quantity)
	}
	return total
}

// ResolvePrice returns the checkout unit price for a service/package pair,
// following the same resolution rules as the cart total.
func (s *Store) ResolvePrice(serviceID, packageID string) float64 {
	return s.resolveUnitPrice(models.CartItem{ServiceID: serviceID, PackageID: packageID})
}

// resolveUnitPrice returns the package price when the item references a
// package that resolves on its service, and the service base price
// otherwise (including when the package reference is dangling). A missing
// service resolves to 0.
func (s *Store) resolveUnitPrice(item models.CartItem) float64 {
	svc, ok := s.catalog.ServiceByID(item.ServiceID)
	if !ok {
		return 0
	}
	if item.PackageID != "" {
		if pkg, ok := svc.Package(item.PackageID); ok {
			return pkg.Price
		}
	}
	return svc.BasePrice
}
