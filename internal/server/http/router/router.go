package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/avoandes/avomarket/internal/domain/model"
	"github.com/avoandes/avomarket/internal/server/http/handlers"
	"github.com/avoandes/avomarket/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.MarketFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	marketHandler := handlers.NewMarketHandler(facade)
	buyerHandler := handlers.NewBuyerHandler(facade)
	vendorHandler := handlers.NewVendorHandler(facade)
	letterHandler := handlers.NewLetterHandler(facade)

	api := engine.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	market := api.Group("/market")
	market.GET("/inventory", marketHandler.Inventory)

	buyer := api.Group("/buyer")
	buyer.Use(middleware.AuthRequired(facade), middleware.RequireRole(model.RoleBuyer))
	buyer.POST("/orders", buyerHandler.PlaceOrder)
	buyer.POST("/orders/auto", buyerHandler.AutoMatch)
	buyer.GET("/orders", buyerHandler.Orders)

	vendor := api.Group("/vendor")
	vendor.Use(middleware.AuthRequired(facade), middleware.RequireRole(model.RoleVendor))
	vendor.GET("/dashboard", vendorHandler.Dashboard)
	vendor.GET("/inventory", vendorHandler.Inventory)
	vendor.POST("/inventory", vendorHandler.AddItem)
	vendor.DELETE("/inventory/:id", vendorHandler.RemoveItem)
	vendor.POST("/orders/:id/accept", vendorHandler.Accept)
	vendor.POST("/orders/:id/advance", vendorHandler.Advance)

	orders := api.Group("/orders")
	orders.Use(middleware.AuthRequired(facade))
	orders.GET("/:id/letter", letterHandler.Download)

	return engine
}
