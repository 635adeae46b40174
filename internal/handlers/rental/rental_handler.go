// internal/handlers/rental/rental_handler.go
package rental

import (
	"net/http"

	"fleetrent-service/internal/domain/rental"
	"fleetrent-service/internal/middleware"
	xerrors "fleetrent-service/internal/pkg/errors"
	"fleetrent-service/internal/pkg/response"
	rentalUsecase "fleetrent-service/internal/service/rental"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RentalHandler struct {
	rentalService *rentalUsecase.RentalService
	logger        *zap.Logger
}

func NewRentalHandler(rentalService *rentalUsecase.RentalService, logger *zap.Logger) *RentalHandler {
	return &RentalHandler{
		rentalService: rentalService,
		logger:        logger,
	}
}

// Rent opens a rental for the authenticated customer.
func (h *RentalHandler) Rent(c *gin.Context) {
	username, ok := middleware.Username(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req rental.RentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	r, err := h.rentalService.Rent(c.Request.Context(), username, &req)
	if err != nil {
		h.logger.Warn("rent rejected",
			zap.String("username", username),
			zap.String("vehicle_id", req.VehicleID),
			zap.Error(err),
		)
		status := http.StatusBadRequest
		switch {
		case xerrors.Is(err, xerrors.ErrVehicleNotFound):
			status = http.StatusNotFound
		case xerrors.Is(err, xerrors.ErrVehicleNotAvailable),
			xerrors.Is(err, xerrors.ErrVehicleAlreadyHeld),
			xerrors.Is(err, xerrors.ErrRentalLimit):
			status = http.StatusConflict
		}
		response.Error(c, status, "failed to rent vehicle", err)
		return
	}

	response.Success(c, http.StatusCreated, "vehicle rented", r)
}

// Quote previews the cost of a rental without committing it.
func (h *RentalHandler) Quote(c *gin.Context) {
	var req rental.QuoteRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	quote, err := h.rentalService.Quote(c.Request.Context(), &req)
	if err != nil {
		status := http.StatusBadRequest
		if xerrors.Is(err, xerrors.ErrVehicleNotFound) {
			status = http.StatusNotFound
		}
		response.Error(c, status, "failed to quote rental", err)
		return
	}

	response.Success(c, http.StatusOK, "quote computed", quote)
}

// List returns the authenticated customer's rental history.
func (h *RentalHandler) List(c *gin.Context) {
	username, ok := middleware.Username(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	rentals := h.rentalService.ListForCustomer(c.Request.Context(), username)
	response.Success(c, http.StatusOK, "rentals retrieved", gin.H{
		"rentals": rentals,
		"count":   len(rentals),
	})
}

// ListActive returns the authenticated customer's open rentals.
func (h *RentalHandler) ListActive(c *gin.Context) {
	username, ok := middleware.Username(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	rentals := h.rentalService.ListActiveForCustomer(c.Request.Context(), username)
	response.Success(c, http.StatusOK, "active rentals retrieved", gin.H{
		"rentals": rentals,
		"count":   len(rentals),
	})
}

// Get returns a single rental. Customers can only read their own.
func (h *RentalHandler) Get(c *gin.Context) {
	username, ok := middleware.Username(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	r, err := h.rentalService.Get(c.Request.Context(), username, middleware.IsAdmin(c), c.Param("id"))
	if err != nil {
		status := http.StatusNotFound
		if xerrors.Is(err, xerrors.ErrForbidden) {
			status = http.StatusForbidden
		}
		response.Error(c, status, "failed to get rental", err)
		return
	}

	response.Success(c, http.StatusOK, "rental retrieved", r)
}

// Return closes a rental and puts the vehicle back in the fleet.
func (h *RentalHandler) Return(c *gin.Context) {
	username, ok := middleware.Username(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	id := c.Param("id")
	if err := h.rentalService.Return(c.Request.Context(), username, middleware.IsAdmin(c), id); err != nil {
		status := http.StatusBadRequest
		switch {
		case xerrors.Is(err, xerrors.ErrRentalNotFound):
			status = http.StatusNotFound
		case xerrors.Is(err, xerrors.ErrForbidden):
			status = http.StatusForbidden
		case xerrors.Is(err, xerrors.ErrRentalNotActive):
			status = http.StatusConflict
		}
		response.Error(c, status, "failed to return vehicle", err)
		return
	}

	h.logger.Info("vehicle returned",
		zap.String("rental_id", id),
		zap.String("username", username),
	)
	response.Success(c, http.StatusOK, "vehicle returned", gin.H{"id": id})
}

// ReportLost marks a rental's vehicle as lost.
func (h *RentalHandler) ReportLost(c *gin.Context) {
	username, ok := middleware.Username(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req rental.ReportLostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	id := c.Param("id")
	if err := h.rentalService.ReportLost(c.Request.Context(), username, middleware.IsAdmin(c), id, &req); err != nil {
		status := http.StatusBadRequest
		switch {
		case xerrors.Is(err, xerrors.ErrRentalNotFound):
			status = http.StatusNotFound
		case xerrors.Is(err, xerrors.ErrForbidden):
			status = http.StatusForbidden
		case xerrors.Is(err, xerrors.ErrRentalNotActive):
			status = http.StatusConflict
		}
		response.Error(c, status, "failed to report vehicle lost", err)
		return
	}

	h.logger.Info("vehicle reported lost",
		zap.String("rental_id", id),
		zap.String("username", username),
	)
	response.Success(c, http.StatusOK, "vehicle reported lost", gin.H{"id": id})
}
