// internal/handlers/admin/admin_handler.go
package admin

import (
	"net/http"

	"fleetrent-service/internal/pkg/response"
	authUsecase "fleetrent-service/internal/service/auth"
	rentalUsecase "fleetrent-service/internal/service/rental"
	vehicleUsecase "fleetrent-service/internal/service/vehicle"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves the management dashboard: aggregate stats, account
// listing, the full rental ledger, and the demo reset.
type AdminHandler struct {
	authService    *authUsecase.AuthService
	vehicleService *vehicleUsecase.VehicleService
	rentalService  *rentalUsecase.RentalService
	logger         *zap.Logger
}

func NewAdminHandler(
	authService *authUsecase.AuthService,
	vehicleService *vehicleUsecase.VehicleService,
	rentalService *rentalUsecase.RentalService,
	logger *zap.Logger,
) *AdminHandler {
	return &AdminHandler{
		authService:    authService,
		vehicleService: vehicleService,
		rentalService:  rentalService,
		logger:         logger,
	}
}

// Stats returns the dashboard aggregates.
func (h *AdminHandler) Stats(c *gin.Context) {
	stats := h.rentalService.Stats(c.Request.Context())
	response.Success(c, http.StatusOK, "stats retrieved", stats)
}

// Accounts lists every account in registration order.
func (h *AdminHandler) Accounts(c *gin.Context) {
	accounts := h.authService.ListAccounts(c.Request.Context())
	response.Success(c, http.StatusOK, "accounts retrieved", gin.H{
		"accounts": accounts,
		"count":    len(accounts),
	})
}

// ListRentals returns the full rental ledger across all customers.
func (h *AdminHandler) ListRentals(c *gin.Context) {
	rentals := h.rentalService.ListAll(c.Request.Context())
	response.Success(c, http.StatusOK, "rentals retrieved", gin.H{
		"rentals": rentals,
		"count":   len(rentals),
	})
}

// ListActiveRentals returns every open rental across all customers.
func (h *AdminHandler) ListActiveRentals(c *gin.Context) {
	rentals := h.rentalService.ListActive(c.Request.Context())
	response.Success(c, http.StatusOK, "active rentals retrieved", gin.H{
		"rentals": rentals,
		"count":   len(rentals),
	})
}

// Reset restores the seed accounts and fleet and clears the ledger.
// Destructive, so admin only, and ordered so the ledger's vehicle status
// flips are overwritten by the fleet reseed.
func (h *AdminHandler) Reset(c *gin.Context) {
	ctx := c.Request.Context()
	h.rentalService.Reset(ctx)
	h.vehicleService.Reset(ctx)
	h.authService.Reset(ctx)

	h.logger.Info("demo data reset")
	response.Success(c, http.StatusOK, "demo data reset", nil)
}
