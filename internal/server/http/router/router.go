package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/quickbite/quickbite/internal/server/http/handlers"
	"github.com/quickbite/quickbite/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware. The payment
// webhook stays outside the auth group; the provider authenticates with a
// signature, not a session.
func Setup(facade handlers.StorefrontFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	checkoutHandler := handlers.NewCheckoutHandler(facade)
	webhookHandler := handlers.NewWebhookHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	restaurantOrderHandler := handlers.NewRestaurantOrderHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	api := engine.Group("/api")
	api.GET("/health", healthHandler.Check)
	api.POST("/payment-webhook", webhookHandler.Receive)
	api.GET("/restaurants/:id/menu", catalogHandler.Menu)

	user := api.Group("/user")
	user.POST("/register", authHandler.Register)
	user.POST("/login", authHandler.Login)

	authorized := api.Group("")
	authorized.Use(middleware.AuthRequired(facade))
	authorized.POST("/checkout", checkoutHandler.Checkout)
	authorized.GET("/orders", orderHandler.List)
	authorized.GET("/orders/:id", orderHandler.Get)
	authorized.GET("/restaurant-orders", restaurantOrderHandler.List)
	authorized.PATCH("/restaurant-orders/:id", restaurantOrderHandler.UpdateStatus)
	authorized.POST("/restaurant", catalogHandler.CreateRestaurant)
	authorized.GET("/restaurant", catalogHandler.OwnRestaurant)
	authorized.POST("/restaurant/menu", catalogHandler.AddMenuItem)
	authorized.PATCH("/restaurant/menu/:id", catalogHandler.UpdateMenuItem)
	authorized.DELETE("/restaurant/menu/:id", catalogHandler.DeleteMenuItem)

	return engine
}
