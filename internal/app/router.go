// internal/app/router.go
package app

import (
	adminHandler "fleetrent-service/internal/handlers/admin"
	authHandler "fleetrent-service/internal/handlers/auth"
	rentalHandler "fleetrent-service/internal/handlers/rental"
	vehicleHandler "fleetrent-service/internal/handlers/vehicle"
	wsHandler "fleetrent-service/internal/handlers/websocket"
	"fleetrent-service/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handlers struct {
	AuthHandler    *authHandler.AuthHandler
	VehicleHandler *vehicleHandler.VehicleHandler
	RentalHandler  *rentalHandler.RentalHandler
	AdminHandler   *adminHandler.AdminHandler
	WSHandler      *wsHandler.WebSocketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupRouter(r *gin.Engine, logger *zap.Logger, h *Handlers) {
	// The /ws endpoint stays outside the serialized group: connections are
	// long-lived and must not hold the request mutex.
	r.GET("/ws", h.WSHandler.HandleConnection)

	api := r.Group("/api/v1")
	api.Use(middleware.SerializeMiddleware())

	// ==================== Health Check ====================
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "version": "1.0.0"})
	})

	// ==================== Public Auth Routes ====================
	auth := api.Group("/auth")
	{
		auth.POST("/login", h.AuthHandler.Login)
		auth.POST("/register", h.AuthHandler.Register)
	}

	// ==================== Vehicles ====================
	vehicles := api.Group("/vehicles")
	vehicles.Use(h.AuthMiddleware.Auth())
	{
		vehicles.GET("", h.VehicleHandler.List)
		vehicles.GET("/available/count", h.VehicleHandler.CountAvailable)
		vehicles.GET("/:id", h.VehicleHandler.Get)
	}

	// ==================== Rentals ====================
	rentals := api.Group("/rentals")
	rentals.Use(h.AuthMiddleware.Auth())
	{
		rentals.POST("", h.RentalHandler.Rent)
		rentals.GET("", h.RentalHandler.List)
		rentals.GET("/quote", h.RentalHandler.Quote)
		rentals.GET("/active", h.RentalHandler.ListActive)
		rentals.GET("/:id", h.RentalHandler.Get)
		rentals.PUT("/:id/return", h.RentalHandler.Return)
		rentals.PUT("/:id/lost", h.RentalHandler.ReportLost)
	}

	// ==================== Admin ====================
	admin := api.Group("/admin")
	admin.Use(h.AuthMiddleware.AdminOnly()...)
	{
		admin.POST("/vehicles", h.VehicleHandler.Create)
		admin.PUT("/vehicles/:id", h.VehicleHandler.Update)
		admin.DELETE("/vehicles/:id", h.VehicleHandler.Delete)

		admin.GET("/rentals", h.AdminHandler.ListRentals)
		admin.GET("/rentals/active", h.AdminHandler.ListActiveRentals)

		admin.GET("/stats", h.AdminHandler.Stats)
		admin.GET("/accounts", h.AdminHandler.Accounts)
		admin.GET("/ws/stats", h.WSHandler.Stats)
		admin.POST("/reset", h.AdminHandler.Reset)
	}
}
