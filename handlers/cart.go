package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sokohub/models"
	"sokohub/store"
	"sokohub/utils"
)

// CartHandler serves the cart endpoints.
type CartHandler struct {
	Store  *store.Store
	Logger *zap.Logger
}

func NewCartHandler(s *store.Store, logger *zap.Logger) *CartHandler {
	return &CartHandler{Store: s, Logger: logger}
}

// GetCart handles GET /api/cart.
func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Cart())
}

// AddItem handles POST /api/cart/items.
func (h *CartHandler) AddItem(c *gin.Context) {
	var item models.CartItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid cart item", err.Error())
		return
	}
	if item.ServiceID == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid cart item", "serviceId is required")
		return
	}
	if err := h.Store.AddToCart(item); err != nil {
		if errors.Is(err, store.ErrInvalidQuantity) {
			utils.JSONError(c, http.StatusBadRequest, "invalid cart item", err.Error())
			return
		}
		h.Logger.Error("AddItem: failed to add cart item", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to add cart item", err.Error())
		return
	}
	c.JSON(http.StatusOK, h.Store.Cart())
}

// RemoveItem handles DELETE /api/cart/items/:serviceId. Removal keys on
// the service id alone, so every package variant of the service goes.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	h.Store.RemoveFromCart(c.Param("serviceId"))
	c.JSON(http.StatusOK, h.Store.Cart())
}

// UpdateItem handles PATCH /api/cart/items/:serviceId.
func (h *CartHandler) UpdateItem(c *gin.Context) {
	var upd models.CartItemUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid cart update", err.Error())
		return
	}
	if err := h.Store.UpdateCartItem(c.Param("serviceId"), upd); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid cart update", err.Error())
		return
	}
	c.JSON(http.StatusOK, h.Store.Cart())
}

// ClearCart handles DELETE /api/cart.
func (h *CartHandler) ClearCart(c *gin.Context) {
	h.Store.ClearCart()
	c.JSON(http.StatusOK, h.Store.Cart())
}
