package memory

import (
	"fmt"
	"time"

	"fleetrent-service/internal/domain/rental"
	"fleetrent-service/internal/domain/vehicle"
	"fleetrent-service/internal/pkg/notify"
)

// Ledger owns the rental records. It reads vehicles through the registry and
// flips their status via SetStatus, but never owns vehicle records; a rental
// keeps only a denormalized id/name snapshot.
type Ledger struct {
	rentals  []rental.Rental
	nextID   int
	registry *Registry
	notifier *notify.Notifier
}

// NewLedger creates an empty ledger. Rental ids start at R1001.
func NewLedger(registry *Registry) *Ledger {
	return &Ledger{
		nextID:   1001,
		registry: registry,
		notifier: notify.NewNotifier(),
	}
}

// Subscribe registers a listener invoked after every mutation.
func (l *Ledger) Subscribe(fn func()) (unsubscribe func()) {
	return l.notifier.Subscribe(fn)
}

// Rent creates an Active rental for the customer and flips the vehicle to
// Rented. The first failed check short-circuits with no side effects:
// unknown vehicle, vehicle not strictly Available, missing dates, end not
// after start, or a whole-hour duration of zero.
func (l *Ledger) Rent(customerUsername, vehicleID string, start, expectedReturn time.Time) (*rental.Rental, bool) {
	v, ok := l.registry.GetByID(vehicleID)
	if !ok {
		return nil, false
	}
	if v.Status != vehicle.StatusAvailable {
		return nil, false
	}
	if start.IsZero() || expectedReturn.IsZero() {
		return nil, false
	}
	if !expectedReturn.After(start) {
		return nil, false
	}
	hours := rental.WholeHours(start, expectedReturn)
	if hours <= 0 {
		return nil, false
	}

	rec := rental.Rental{
		ID:               fmt.Sprintf("R%04d", l.nextID),
		CustomerUsername: customerUsername,
		VehicleID:        vehicleID,
		VehicleName:      v.Name,
		TotalCost:        rental.Cost(v.PricePerDay, start, expectedReturn),
		StartAt:          start,
		ExpectedReturnAt: expectedReturn,
		Status:           rental.StatusActive,
	}
	l.nextID++

	l.registry.SetStatus(vehicleID, vehicle.StatusRented)
	l.rentals = append(l.rentals, rec)
	l.notifier.Publish()
	return &rec, true
}

// Return marks an Active rental as Returned, stamps the actual return time
// and flips the vehicle back to Available. Unknown ids and rentals already
// in a terminal state both fail identically.
func (l *Ledger) Return(rentalID string) bool {
	for i := range l.rentals {
		r := &l.rentals[i]
		if r.ID == rentalID && r.Status == rental.StatusActive {
			now := time.Now()
			r.Status = rental.StatusReturned
			r.ReturnedAt = &now
			l.registry.SetStatus(r.VehicleID, vehicle.StatusAvailable)
			l.notifier.Publish()
			return true
		}
	}
	return false
}

// ReportLost marks an Active rental as Lost with the caller-supplied
// give-back date and flips the vehicle to Lost.
func (l *Ledger) ReportLost(rentalID string, giveBack time.Time) bool {
	for i := range l.rentals {
		r := &l.rentals[i]
		if r.ID == rentalID && r.Status == rental.StatusActive {
			r.Status = rental.StatusLost
			r.GiveBackAt = &giveBack
			l.registry.SetStatus(r.VehicleID, vehicle.StatusLost)
			l.notifier.Publish()
			return true
		}
	}
	return false
}

// GetByID returns a copy of the rental with the given id.
func (l *Ledger) GetByID(rentalID string) (rental.Rental, bool) {
	for i := range l.rentals {
		if l.rentals[i].ID == rentalID {
			return cloneRental(l.rentals[i]), true
		}
	}
	return rental.Rental{}, false
}

// ListAll returns a copy of every rental in creation order.
func (l *Ledger) ListAll() []rental.Rental {
	out := make([]rental.Rental, len(l.rentals))
	for i := range l.rentals {
		out[i] = cloneRental(l.rentals[i])
	}
	return out
}

// ListActive returns all Active rentals.
func (l *Ledger) ListActive() []rental.Rental {
	var out []rental.Rental
	for i := range l.rentals {
		if l.rentals[i].Status == rental.StatusActive {
			out = append(out, cloneRental(l.rentals[i]))
		}
	}
	return out
}

// ListByCustomer returns every rental of the customer, any status.
func (l *Ledger) ListByCustomer(customerUsername string) []rental.Rental {
	var out []rental.Rental
	for i := range l.rentals {
		if l.rentals[i].CustomerUsername == customerUsername {
			out = append(out, cloneRental(l.rentals[i]))
		}
	}
	return out
}

// ActiveByVehicle returns the single Active rental for a vehicle, if any.
// At most one can exist since renting flips the vehicle off Available.
func (l *Ledger) ActiveByVehicle(vehicleID string) (rental.Rental, bool) {
	for i := range l.rentals {
		if l.rentals[i].VehicleID == vehicleID && l.rentals[i].Status == rental.StatusActive {
			return cloneRental(l.rentals[i]), true
		}
	}
	return rental.Rental{}, false
}

// ListActiveByCustomer returns the customer's Active rentals.
func (l *Ledger) ListActiveByCustomer(customerUsername string) []rental.Rental {
	var out []rental.Rental
	for i := range l.rentals {
		if l.rentals[i].CustomerUsername == customerUsername && l.rentals[i].Status == rental.StatusActive {
			out = append(out, cloneRental(l.rentals[i]))
		}
	}
	return out
}

// cloneRental deep-copies a rental so callers cannot write through the
// shared ReturnedAt/GiveBackAt referents.
func cloneRental(r rental.Rental) rental.Rental {
	if r.ReturnedAt != nil {
		t := *r.ReturnedAt
		r.ReturnedAt = &t
	}
	if r.GiveBackAt != nil {
		t := *r.GiveBackAt
		r.GiveBackAt = &t
	}
	return r
}

// TotalRevenue sums the cost of Returned rentals. Active and Lost rentals
// are excluded.
func (l *Ledger) TotalRevenue() float64 {
	total := 0.0
	for i := range l.rentals {
		if l.rentals[i].Status == rental.StatusReturned {
			total += l.rentals[i].TotalCost
		}
	}
	return total
}

// TotalCount reports the number of rentals regardless of status.
func (l *Ledger) TotalCount() int {
	return len(l.rentals)
}

// Reset clears the ledger and restarts id allocation at R1001. Vehicle
// statuses are not touched; callers resetting the ledger alone are expected
// to reset the registry too. It notifies like any other mutation so
// connected views refresh.
func (l *Ledger) Reset() {
	l.rentals = l.rentals[:0]
	l.nextID = 1001
	l.notifier.Publish()
}
