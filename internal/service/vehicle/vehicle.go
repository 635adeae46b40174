package vehicle

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"fleetrent-service/internal/domain/vehicle"
	xerrors "fleetrent-service/internal/pkg/errors"
	"fleetrent-service/internal/repository/memory"
)

// VehicleService fronts the vehicle registry for the dashboards. It adds the
// input validation and the delete guard that the registry itself, matching
// the engine contract, does not enforce.
type VehicleService struct {
	registry *memory.Registry
	ledger   *memory.Ledger
	logger   *zap.Logger
}

func NewVehicleService(registry *memory.Registry, ledger *memory.Ledger, logger *zap.Logger) *VehicleService {
	return &VehicleService{
		registry: registry,
		ledger:   ledger,
		logger:   logger,
	}
}

// Create adds a vehicle to the fleet.
func (s *VehicleService) Create(ctx context.Context, req *vehicle.CreateVehicleRequest) (vehicle.Vehicle, error) {
	if err := validateType(req.Type); err != nil {
		return vehicle.Vehicle{}, err
	}
	if req.Status != "" {
		if err := validateStatus(req.Status); err != nil {
			return vehicle.Vehicle{}, err
		}
	}

	v := s.registry.Add(strings.TrimSpace(req.Name), req.Type, req.PricePerDay, req.Status)

	s.logger.Info("vehicle added",
		zap.String("vehicle_id", v.ID),
		zap.String("type", string(v.Type)),
	)
	return v, nil
}

// Update edits a vehicle. A nil Status in the request preserves the current
// status so rental-driven transitions are not overwritten by an admin edit.
func (s *VehicleService) Update(ctx context.Context, id string, req *vehicle.UpdateVehicleRequest) (vehicle.Vehicle, error) {
	if err := validateType(req.Type); err != nil {
		return vehicle.Vehicle{}, err
	}

	var ok bool
	if req.Status != nil {
		if err := validateStatus(*req.Status); err != nil {
			return vehicle.Vehicle{}, err
		}
		ok = s.registry.Update(id, strings.TrimSpace(req.Name), req.Type, req.PricePerDay, *req.Status)
	} else {
		ok = s.registry.UpdateDetails(id, strings.TrimSpace(req.Name), req.Type, req.PricePerDay)
	}
	if !ok {
		return vehicle.Vehicle{}, xerrors.ErrVehicleNotFound
	}

	v, _ := s.registry.GetByID(id)
	s.logger.Info("vehicle updated", zap.String("vehicle_id", id))
	return v, nil
}

// Delete removes a vehicle. A vehicle with an Active rental cannot be
// deleted; the rental must be returned or reported lost first.
func (s *VehicleService) Delete(ctx context.Context, id string) error {
	if _, held := s.ledger.ActiveByVehicle(id); held {
		return xerrors.ErrVehicleHasRental
	}
	if !s.registry.Delete(id) {
		return xerrors.ErrVehicleNotFound
	}

	s.logger.Info("vehicle deleted", zap.String("vehicle_id", id))
	return nil
}

// Get returns a single vehicle.
func (s *VehicleService) Get(ctx context.Context, id string) (vehicle.Vehicle, error) {
	v, ok := s.registry.GetByID(id)
	if !ok {
		return vehicle.Vehicle{}, xerrors.ErrVehicleNotFound
	}
	return v, nil
}

// List returns the fleet narrowed by the given filters.
func (s *VehicleService) List(ctx context.Context, filters *vehicle.ListFilters) []vehicle.Vehicle {
	var out []vehicle.Vehicle
	if filters.Available {
		out = s.registry.ListAvailable()
	} else {
		out = s.registry.ListAll()
	}

	if filters.Type != "" {
		out = filterByType(out, filters.Type)
	}
	if filters.Search != "" {
		out = filterBySearch(out, filters.Search)
	}
	return out
}

// CountAvailable reports the fleet-availability statistic.
func (s *VehicleService) CountAvailable(ctx context.Context) int {
	return s.registry.CountAvailable()
}

// Reset reseeds the registry with the starter fleet.
func (s *VehicleService) Reset(ctx context.Context) {
	s.registry.Reset()
	s.logger.Info("vehicle registry reset")
}

func validateType(typ vehicle.Type) error {
	for _, known := range vehicle.KnownTypes {
		if typ == known {
			return nil
		}
	}
	return xerrors.Wrap(xerrors.ErrInvalidInput, "vehicle type must be Car, Motorbike or Truck")
}

func validateStatus(status vehicle.Status) error {
	switch status {
	case vehicle.StatusAvailable, vehicle.StatusRented, vehicle.StatusMaintenance, vehicle.StatusLost:
		return nil
	}
	return xerrors.Wrap(xerrors.ErrInvalidInput, "unknown vehicle status")
}

func filterByType(in []vehicle.Vehicle, typ vehicle.Type) []vehicle.Vehicle {
	var out []vehicle.Vehicle
	for _, v := range in {
		if v.Type == typ {
			out = append(out, v)
		}
	}
	return out
}

func filterBySearch(in []vehicle.Vehicle, term string) []vehicle.Vehicle {
	term = strings.ToLower(term)
	var out []vehicle.Vehicle
	for _, v := range in {
		if strings.Contains(strings.ToLower(v.Name), term) {
			out = append(out, v)
		}
	}
	return out
}
