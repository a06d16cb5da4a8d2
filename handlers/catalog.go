package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalogRepo "housemate/database/repository/catalog"
)

// CatalogHandler exposes the read-only reference data the booking flow
// browses: categories, zones, services and coupons.
type CatalogHandler struct {
	CatalogRepo catalogRepo.CatalogRepository
	CouponRepo  catalogRepo.CouponRepository
}

func NewCatalogHandler(catalog catalogRepo.CatalogRepository, coupons catalogRepo.CouponRepository) *CatalogHandler {
	return &CatalogHandler{CatalogRepo: catalog, CouponRepo: coupons}
}

// ListCategoriesHandler handles GET /api/catalog/categories.
func (h *CatalogHandler) ListCategoriesHandler(c *gin.Context) {
	cats, err := h.CatalogRepo.ListCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cats)
}

// ListZonesHandler handles GET /api/catalog/zones.
func (h *CatalogHandler) ListZonesHandler(c *gin.Context) {
	zones, err := h.CatalogRepo.ListZones()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, zones)
}

// ListServicesHandler handles GET /api/catalog/services with an
// optional ?category= filter.
func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	if categoryID := c.Query("category"); categoryID != "" {
		svcs, err := h.CatalogRepo.ListServicesByCategory(categoryID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, svcs)
		return
	}
	svcs, err := h.CatalogRepo.ListServices()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, svcs)
}

// GetServiceHandler handles GET /api/catalog/services/:id.
func (h *CatalogHandler) GetServiceHandler(c *gin.Context) {
	svc, err := h.CatalogRepo.GetService(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if svc == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		return
	}
	c.JSON(http.StatusOK, svc)
}

// ListCouponsHandler handles GET /api/catalog/coupons.
func (h *CatalogHandler) ListCouponsHandler(c *gin.Context) {
	coupons, err := h.CouponRepo.ListActive()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, coupons)
}
