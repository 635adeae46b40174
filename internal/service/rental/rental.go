package rental

import (
	"context"

	"go.uber.org/zap"

	"fleetrent-service/internal/domain/rental"
	xerrors "fleetrent-service/internal/pkg/errors"
	"fleetrent-service/internal/repository/memory"
)

const (
	// A customer may hold at most this many Active rentals at once.
	maxActiveRentals = 3
	// Maximum rental period: 30 days.
	maxRentalHours = 720
)

// RentalService drives the rental ledger on behalf of the dashboards. The
// per-customer business rules (the active-rental cap and the one-rental-per-
// vehicle-per-customer rule) are enforced here so they hold for every
// caller, not just a well-behaved UI.
type RentalService struct {
	ledger   *memory.Ledger
	registry *memory.Registry
	logger   *zap.Logger
}

func NewRentalService(ledger *memory.Ledger, registry *memory.Registry, logger *zap.Logger) *RentalService {
	return &RentalService{
		ledger:   ledger,
		registry: registry,
		logger:   logger,
	}
}

// Rent creates a rental for the customer. Distinct sentinel errors name the
// first failed check so the caller can present a precise message.
func (s *RentalService) Rent(ctx context.Context, customerUsername string, req *rental.RentRequest) (*rental.Rental, error) {
	v, ok := s.registry.GetByID(req.VehicleID)
	if !ok {
		return nil, xerrors.ErrVehicleNotFound
	}

	// Checked before availability: the held vehicle is already Rented, and
	// "you already have this vehicle" is the more useful rejection.
	active := s.ledger.ListActiveByCustomer(customerUsername)
	for _, r := range active {
		if r.VehicleID == req.VehicleID {
			return nil, xerrors.ErrVehicleAlreadyHeld
		}
	}

	if !v.Rentable() {
		return nil, xerrors.ErrVehicleNotAvailable
	}
	if !req.ExpectedReturnAt.After(req.StartAt) {
		return nil, xerrors.ErrInvalidPeriod
	}

	hours := rental.WholeHours(req.StartAt, req.ExpectedReturnAt)
	if hours <= 0 {
		return nil, xerrors.ErrInvalidPeriod
	}
	if hours > maxRentalHours {
		return nil, xerrors.ErrPeriodTooLong
	}

	if len(active) >= maxActiveRentals {
		return nil, xerrors.ErrRentalLimit
	}

	rec, ok := s.ledger.Rent(customerUsername, req.VehicleID, req.StartAt, req.ExpectedReturnAt)
	if !ok {
		// All checks passed above; the ledger re-running its own guard set
		// cannot fail in a single-threaded process.
		return nil, xerrors.ErrInternal
	}

	s.logger.Info("vehicle rented",
		zap.String("rental_id", rec.ID),
		zap.String("vehicle_id", rec.VehicleID),
		zap.String("customer", customerUsername),
		zap.Float64("total_cost", rec.TotalCost),
		zap.Int64("duration_hours", rec.DurationHours()),
	)
	return rec, nil
}

// Quote previews the cost of a rental without committing it. It uses the
// same whole-hour formula as Rent so the preview always equals the charge.
func (s *RentalService) Quote(ctx context.Context, req *rental.QuoteRequest) (*rental.Quote, error) {
	v, ok := s.registry.GetByID(req.VehicleID)
	if !ok {
		return nil, xerrors.ErrVehicleNotFound
	}
	if !req.ExpectedReturnAt.After(req.StartAt) {
		return nil, xerrors.ErrInvalidPeriod
	}
	hours := rental.WholeHours(req.StartAt, req.ExpectedReturnAt)
	if hours <= 0 {
		return nil, xerrors.ErrInvalidPeriod
	}

	preview := rental.Rental{StartAt: req.StartAt, ExpectedReturnAt: req.ExpectedReturnAt}
	return &rental.Quote{
		VehicleID:         v.ID,
		VehicleName:       v.Name,
		DurationHours:     hours,
		FormattedDuration: preview.FormattedDuration(),
		TotalCost:         rental.Cost(v.PricePerDay, req.StartAt, req.ExpectedReturnAt),
	}, nil
}

// Return marks a rental as returned. Customers may only return their own
// rentals; admins may return any.
func (s *RentalService) Return(ctx context.Context, customerUsername string, isAdmin bool, rentalID string) error {
	rec, ok := s.ledger.GetByID(rentalID)
	if !ok {
		return xerrors.ErrRentalNotFound
	}
	if !isAdmin && rec.CustomerUsername != customerUsername {
		return xerrors.ErrForbidden
	}
	if rec.Status != rental.StatusActive {
		return xerrors.ErrRentalNotActive
	}

	if !s.ledger.Return(rentalID) {
		return xerrors.ErrRentalNotActive
	}

	s.logger.Info("vehicle returned",
		zap.String("rental_id", rentalID),
		zap.String("vehicle_id", rec.VehicleID),
	)
	return nil
}

// ReportLost marks a rental as lost with the expected give-back date.
func (s *RentalService) ReportLost(ctx context.Context, customerUsername string, isAdmin bool, rentalID string, req *rental.ReportLostRequest) error {
	rec, ok := s.ledger.GetByID(rentalID)
	if !ok {
		return xerrors.ErrRentalNotFound
	}
	if !isAdmin && rec.CustomerUsername != customerUsername {
		return xerrors.ErrForbidden
	}
	if rec.Status != rental.StatusActive {
		return xerrors.ErrRentalNotActive
	}

	if !s.ledger.ReportLost(rentalID, req.GiveBackAt) {
		return xerrors.ErrRentalNotActive
	}

	s.logger.Warn("rental reported lost",
		zap.String("rental_id", rentalID),
		zap.String("vehicle_id", rec.VehicleID),
	)
	return nil
}

// Get returns a single rental, with the same ownership rule as Return.
func (s *RentalService) Get(ctx context.Context, customerUsername string, isAdmin bool, rentalID string) (rental.Rental, error) {
	rec, ok := s.ledger.GetByID(rentalID)
	if !ok {
		return rental.Rental{}, xerrors.ErrRentalNotFound
	}
	if !isAdmin && rec.CustomerUsername != customerUsername {
		return rental.Rental{}, xerrors.ErrForbidden
	}
	return rec, nil
}

// ListForCustomer returns the customer's rental history.
func (s *RentalService) ListForCustomer(ctx context.Context, customerUsername string) []rental.Rental {
	return s.ledger.ListByCustomer(customerUsername)
}

// ListActiveForCustomer returns the customer's Active rentals.
func (s *RentalService) ListActiveForCustomer(ctx context.Context, customerUsername string) []rental.Rental {
	return s.ledger.ListActiveByCustomer(customerUsername)
}

// ListAll returns every rental.
func (s *RentalService) ListAll(ctx context.Context) []rental.Rental {
	return s.ledger.ListAll()
}

// ListActive returns every Active rental.
func (s *RentalService) ListActive(ctx context.Context) []rental.Rental {
	return s.ledger.ListActive()
}

// Stats aggregates the admin dashboard figures.
func (s *RentalService) Stats(ctx context.Context) rental.Stats {
	return rental.Stats{
		TotalRevenue:      s.ledger.TotalRevenue(),
		TotalRentals:      s.ledger.TotalCount(),
		ActiveRentals:     len(s.ledger.ListActive()),
		AvailableVehicles: s.registry.CountAvailable(),
	}
}

// Reset clears the ledger and restarts rental id allocation.
func (s *RentalService) Reset(ctx context.Context) {
	s.ledger.Reset()
	s.logger.Info("rental ledger reset")
}
