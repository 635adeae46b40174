// internal/handlers/vehicle/vehicle_handler.go
package vehicle

import (
	"net/http"

	"fleetrent-service/internal/domain/vehicle"
	xerrors "fleetrent-service/internal/pkg/errors"
	"fleetrent-service/internal/pkg/response"
	vehicleUsecase "fleetrent-service/internal/service/vehicle"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type VehicleHandler struct {
	vehicleService *vehicleUsecase.VehicleService
	logger         *zap.Logger
}

func NewVehicleHandler(vehicleService *vehicleUsecase.VehicleService, logger *zap.Logger) *VehicleHandler {
	return &VehicleHandler{
		vehicleService: vehicleService,
		logger:         logger,
	}
}

// List returns the fleet, optionally filtered by type, name search, or
// availability.
func (h *VehicleHandler) List(c *gin.Context) {
	var filters vehicle.ListFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid filters", err)
		return
	}

	vehicles := h.vehicleService.List(c.Request.Context(), &filters)
	response.Success(c, http.StatusOK, "vehicles retrieved", gin.H{
		"vehicles": vehicles,
		"count":    len(vehicles),
	})
}

// Get returns a single vehicle by id.
func (h *VehicleHandler) Get(c *gin.Context) {
	v, err := h.vehicleService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "vehicle not found", err)
		return
	}
	response.Success(c, http.StatusOK, "vehicle retrieved", v)
}

// CountAvailable returns how many vehicles count toward availability.
func (h *VehicleHandler) CountAvailable(c *gin.Context) {
	count := h.vehicleService.CountAvailable(c.Request.Context())
	response.Success(c, http.StatusOK, "available count retrieved", gin.H{
		"available": count,
	})
}

// Create adds a vehicle to the fleet (admin only)
func (h *VehicleHandler) Create(c *gin.Context) {
	var req vehicle.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	v, err := h.vehicleService.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "failed to create vehicle", err)
		return
	}

	h.logger.Info("vehicle created",
		zap.String("vehicle_id", v.ID),
		zap.String("name", v.Name),
	)
	response.Success(c, http.StatusCreated, "vehicle created", v)
}

// Update edits a vehicle's details (admin only)
func (h *VehicleHandler) Update(c *gin.Context) {
	var req vehicle.UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	v, err := h.vehicleService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		status := http.StatusBadRequest
		if xerrors.Is(err, xerrors.ErrVehicleNotFound) {
			status = http.StatusNotFound
		}
		response.Error(c, status, "failed to update vehicle", err)
		return
	}

	response.Success(c, http.StatusOK, "vehicle updated", v)
}

// Delete removes a vehicle from the fleet (admin only). Vehicles with an
// active rental cannot be removed.
func (h *VehicleHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.vehicleService.Delete(c.Request.Context(), id); err != nil {
		status := http.StatusBadRequest
		switch {
		case xerrors.Is(err, xerrors.ErrVehicleNotFound):
			status = http.StatusNotFound
		case xerrors.Is(err, xerrors.ErrVehicleHasRental):
			status = http.StatusConflict
		}
		response.Error(c, status, "failed to delete vehicle", err)
		return
	}

	h.logger.Info("vehicle deleted", zap.String("vehicle_id", id))
	response.Success(c, http.StatusOK, "vehicle deleted", gin.H{"id": id})
}
