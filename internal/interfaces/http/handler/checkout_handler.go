package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	app "goggles_shop/internal/application/checkout"
	domain "goggles_shop/internal/domain/order"
	"goggles_shop/internal/interfaces/http/middleware"
)

type CheckoutHandler struct {
	svc *app.Service
}

func NewCheckoutHandler(svc *app.Service) *CheckoutHandler {
	return &CheckoutHandler{svc: svc}
}

// Show handles GET /api/checkout: the cart snapshot backing the checkout
// form. An empty cart is a redirect signal back to the cart view.
func (h *CheckoutHandler) Show(c *gin.Context) {
	summary, err := h.svc.PrepareCheckout(c.Request.Context(), middleware.SessionID(c))
	if errors.Is(err, domain.ErrEmptyCart) {
		c.JSON(http.StatusConflict, gin.H{"redirect": "cart"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to prepare checkout"})
		return
	}

	c.JSON(http.StatusOK, toCartView(summary))
}

type placeOrderRequest struct {
	CustomerName    string `json:"customer_name"`
	Email           string `json:"email"`
	ShippingAddress string `json:"shipping_address"`
}

// PlaceOrder handles POST /api/checkout.
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	details := domain.CustomerDetails{
		CustomerName:    req.CustomerName,
		Email:           req.Email,
		ShippingAddress: req.ShippingAddress,
	}

	placement, err := h.svc.PlaceOrder(c.Request.Context(), middleware.SessionID(c), details)

	var verr *domain.ValidationError
	var serr *domain.InsufficientStockError
	switch {
	case errors.Is(err, domain.ErrEmptyCart):
		middleware.RecordCheckout("place_order", false)
		c.JSON(http.StatusConflict, gin.H{"redirect": "cart"})
		return
	case errors.As(err, &verr):
		middleware.RecordCheckout("place_order", false)
		// Re-render payload: field errors plus the cart the form needs.
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"errors": toFieldErrorViews(verr.Fields),
			"cart":   toCartView(placement.Cart),
		})
		return
	case errors.As(err, &serr):
		middleware.RecordCheckout("place_order", false)
		c.JSON(http.StatusConflict, gin.H{
			"error":      serr.Error(),
			"product_id": serr.ProductID,
			"requested":  serr.Requested,
			"available":  serr.Available,
		})
		return
	case err != nil:
		middleware.RecordCheckout("place_order", false)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to place order"})
		return
	}

	// A new cart session starts on the next cart interaction.
	middleware.ClearSessionID(c)
	middleware.RecordCheckout("place_order", true)

	c.JSON(http.StatusCreated, gin.H{"order_id": placement.Order.ID})
}

// Confirmation handles GET /api/orders/:id.
func (h *CheckoutHandler) Confirmation(c *gin.Context) {
	o, err := h.svc.GetOrder(c.Request.Context(), c.Param("id"))
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load order"})
		return
	}

	c.JSON(http.StatusOK, toOrderView(o))
}
