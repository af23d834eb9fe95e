package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sokohub/store"
)

// FavoritesHandler serves the favorites endpoints.
type FavoritesHandler struct {
	Store  *store.Store
	Logger *zap.Logger
}

func NewFavoritesHandler(s *store.Store, logger *zap.Logger) *FavoritesHandler {
	return &FavoritesHandler{Store: s, Logger: logger}
}

// ListFavorites handles GET /api/favorites.
func (h *FavoritesHandler) ListFavorites(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"favorites": h.Store.Favorites()})
}

// ToggleFavorite handles POST /api/favorites/:serviceId/toggle.
func (h *FavoritesHandler) ToggleFavorite(c *gin.Context) {
	serviceID := c.Param("serviceId")
	h.Store.ToggleFavorite(serviceID)
	c.JSON(http.StatusOK, gin.H{
		"serviceId": serviceID,
		"favorite":  h.Store.IsFavorite(serviceID),
	})
}

// CheckFavorite handles GET /api/favorites/:serviceId.
func (h *FavoritesHandler) CheckFavorite(c *gin.Context) {
	serviceID := c.Param("serviceId")
	c.JSON(http.StatusOK, gin.H{
		"serviceId": serviceID,
		"favorite":  h.Store.IsFavorite(serviceID),
	})
}
