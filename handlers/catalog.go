package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sokohub/models"
	"sokohub/store"
	"sokohub/utils"
)

// CatalogHandler serves catalog browsing and query endpoints.
type CatalogHandler struct {
	Store  *store.Store
	Logger *zap.Logger
}

func NewCatalogHandler(s *store.Store, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{Store: s, Logger: logger}
}

// ListServices handles GET /api/catalog/services. Query parameters are
// applied to the store's filter state before the query runs, mirroring how
// the storefront views drive the store.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	upd, search, err := parseFilterQuery(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid filter parameters", err.Error())
		return
	}

	h.Store.SetFilters(upd)
	h.Store.SetSearchQuery(search)

	services := h.Store.FilteredServices()
	c.JSON(http.StatusOK, gin.H{
		"services": services,
		"count":    len(services),
		"filters":  h.Store.Filters(),
	})
}

// ResetFilters handles DELETE /api/catalog/filters.
func (h *CatalogHandler) ResetFilters(c *gin.Context) {
	h.Store.ResetFilters()
	c.JSON(http.StatusOK, gin.H{"filters": h.Store.Filters()})
}

// GetFeaturedServices handles GET /api/catalog/services/featured.
func (h *CatalogHandler) GetFeaturedServices(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Catalog().Featured())
}

// GetServiceByID handles GET /api/catalog/services/:id.
func (h *CatalogHandler) GetServiceByID(c *gin.Context) {
	id := c.Param("id")
	svc, ok := h.Store.Catalog().ServiceByID(id)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "service not found", id)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// GetServiceReviews handles GET /api/catalog/services/:id/reviews.
func (h *CatalogHandler) GetServiceReviews(c *gin.Context) {
	id := c.Param("id")
	cat := h.Store.Catalog()
	if _, ok := cat.ServiceByID(id); !ok {
		utils.JSONError(c, http.StatusNotFound, "service not found", id)
		return
	}
	count, average := cat.ReviewSummary(id)
	c.JSON(http.StatusOK, gin.H{
		"reviews":       cat.ReviewsByService(id),
		"reviewCount":   count,
		"averageRating": average,
	})
}

// GetServiceStaff handles GET /api/catalog/services/:id/staff.
func (h *CatalogHandler) GetServiceStaff(c *gin.Context) {
	id := c.Param("id")
	cat := h.Store.Catalog()
	if _, ok := cat.ServiceByID(id); !ok {
		utils.JSONError(c, http.StatusNotFound, "service not found", id)
		return
	}
	c.JSON(http.StatusOK, cat.StaffByService(id))
}

// ListCategories handles GET /api/catalog/categories.
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Catalog().Categories())
}

// GetCategoryServices handles GET /api/catalog/categories/:id/services.
func (h *CatalogHandler) GetCategoryServices(c *gin.Context) {
	id := c.Param("id")
	cat := h.Store.Catalog()
	if _, ok := cat.CategoryByID(id); !ok {
		utils.JSONError(c, http.StatusNotFound, "category not found", id)
		return
	}
	c.JSON(http.StatusOK, cat.ByCategory(id))
}

// ListProviders handles GET /api/catalog/providers.
func (h *CatalogHandler) ListProviders(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Catalog().Providers())
}

// GetProviderByID handles GET /api/catalog/providers/:id. The response
// bundles the provider with its services and staff, matching what a
// merchant profile page needs.
func (h *CatalogHandler) GetProviderByID(c *gin.Context) {
	id := c.Param("id")
	cat := h.Store.Catalog()
	provider, ok := cat.ProviderByID(id)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "provider not found", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"provider": provider,
		"services": cat.ByProvider(id),
		"staff":    cat.StaffByProvider(id),
	})
}

// parseFilterQuery reads catalog filter parameters from the query string.
func parseFilterQuery(c *gin.Context) (models.FiltersUpdate, string, error) {
	var upd models.FiltersUpdate

	if v, ok := c.GetQuery("categoryId"); ok {
		upd.CategoryID = &v
	}
	if v, ok := c.GetQuery("providerId"); ok {
		upd.ProviderID = &v
	}
	if v, ok := c.GetQuery("minPrice"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return upd, "", err
		}
		upd.MinPrice = &f
	}
	if v, ok := c.GetQuery("maxPrice"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return upd, "", err
		}
		upd.MaxPrice = &f
	}
	if v, ok := c.GetQuery("rating"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return upd, "", err
		}
		upd.Rating = &f
	}
	if v, ok := c.GetQuery("verified"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return upd, "", err
		}
		upd.Verified = &b
	}
	if v, ok := c.GetQuery("sortBy"); ok {
		sortBy := models.SortOption(v)
		if !sortBy.Valid() {
			return upd, "", fmt.Errorf("unknown sort option %q", v)
		}
		upd.SortBy = &sortBy
	}

	return upd, c.Query("search"), nil
}
