package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	app "goggles_shop/internal/application/catalog"
	domain "goggles_shop/internal/domain/catalog"
)

type CatalogHandler struct {
	svc *app.Service
}

func NewCatalogHandler(svc *app.Service) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// ListProducts handles GET /api/products with optional category and lensColor
// query filters.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	listing, err := h.svc.ListProducts(c.Request.Context(), c.Query("category"), c.Query("lensColor"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load catalog"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products":    toProductViews(listing.Products),
		"category":    listing.Category,
		"lens_color":  listing.LensColor,
		"categories":  listing.Categories,
		"lens_colors": listing.LensColors,
	})
}

// GetProduct handles GET /api/products/:id.
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := h.svc.GetProduct(c.Request.Context(), c.Param("id"))
	if errors.Is(err, domain.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load product"})
		return
	}

	c.JSON(http.StatusOK, toProductView(*product))
}

// Featured handles GET /api/featured: the home listing of top in-stock
// products by price.
func (h *CatalogHandler) Featured(c *gin.Context) {
	products, err := h.svc.Featured(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load featured products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": toProductViews(products)})
}
