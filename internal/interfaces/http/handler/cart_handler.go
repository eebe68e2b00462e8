package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	app "goggles_shop/internal/application/cart"
	cartdomain "goggles_shop/internal/domain/cart"
	catalogdomain "goggles_shop/internal/domain/catalog"
	"goggles_shop/internal/interfaces/http/middleware"
)

type CartHandler struct {
	svc *app.Service
}

func NewCartHandler(svc *app.Service) *CartHandler {
	return &CartHandler{svc: svc}
}

// Show handles GET /api/cart.
func (h *CartHandler) Show(c *gin.Context) {
	sessionID := middleware.EnsureSessionID(c)

	summary, err := h.svc.ListItems(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cart"})
		return
	}

	c.JSON(http.StatusOK, toCartView(summary))
}

// Count handles GET /api/cart/count for the cart badge.
func (h *CartHandler) Count(c *gin.Context) {
	// No session yet means an empty cart, not an error.
	count, err := h.svc.TotalQuantity(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

type addItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// Add handles POST /api/cart/items. A repeat add merges into the existing
// line.
func (h *CartHandler) Add(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	sessionID := middleware.EnsureSessionID(c)

	result, err := h.svc.AddItem(c.Request.Context(), sessionID, req.ProductID, req.Quantity)
	switch {
	case errors.Is(err, catalogdomain.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	case errors.Is(err, cartdomain.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add to cart"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"line_id":  result.Line.ID,
		"quantity": result.Line.Quantity,
		"message":  result.Message,
	})
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

// Update handles PUT /api/cart/items/:id. Quantity zero or less removes the
// line.
func (h *CartHandler) Update(c *gin.Context) {
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sessionID := middleware.EnsureSessionID(c)

	err := h.svc.UpdateQuantity(c.Request.Context(), sessionID, c.Param("id"), req.Quantity)
	switch {
	case errors.Is(err, cartdomain.ErrLineNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "cart line not found"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart"})
		return
	}

	c.Status(http.StatusNoContent)
}

// Remove handles DELETE /api/cart/items/:id. Removal is idempotent.
func (h *CartHandler) Remove(c *gin.Context) {
	sessionID := middleware.EnsureSessionID(c)

	if err := h.svc.RemoveItem(c.Request.Context(), sessionID, c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove from cart"})
		return
	}

	c.Status(http.StatusNoContent)
}
