package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"goggles_shop/internal/interfaces/http/handler"
)

func RegisterRoutes(
	r *gin.Engine,
	catalogHandler *handler.CatalogHandler,
	cartHandler *handler.CartHandler,
	checkoutHandler *handler.CheckoutHandler,
) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/products", catalogHandler.ListProducts)
		api.GET("/products/:id", catalogHandler.GetProduct)
		api.GET("/featured", catalogHandler.Featured)

		api.GET("/cart", cartHandler.Show)
		api.GET("/cart/count", cartHandler.Count)
		api.POST("/cart/items", cartHandler.Add)
		api.PUT("/cart/items/:id", cartHandler.Update)
		api.DELETE("/cart/items/:id", cartHandler.Remove)

		api.GET("/checkout", checkoutHandler.Show)
		api.POST("/checkout", checkoutHandler.PlaceOrder)
		api.GET("/orders/:id", checkoutHandler.Confirmation)
	}
}
