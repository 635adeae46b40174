package memory

import (
	"fmt"
	"strings"

	"fleetrent-service/internal/domain/vehicle"
	"fleetrent-service/internal/pkg/notify"
)

// seedFleet is the canonical starter fleet. Ids are assigned V001..V020 in
// order; the id counter continues from 21.
var seedFleet = []vehicle.Vehicle{
	{Name: "Toyota Camry", Type: vehicle.TypeCar, PricePerDay: 50.0, Status: vehicle.StatusAvailable},
	{Name: "Honda Civic", Type: vehicle.TypeCar, PricePerDay: 45.0, Status: vehicle.StatusAvailable},
	{Name: "Yamaha NMAX", Type: vehicle.TypeMotorbike, PricePerDay: 25.0, Status: vehicle.StatusAvailable},
	{Name: "Ford F-150", Type: vehicle.TypeTruck, PricePerDay: 80.0, Status: vehicle.StatusAvailable},
	{Name: "Tesla Model 3", Type: vehicle.TypeCar, PricePerDay: 100.0, Status: vehicle.StatusRented},
	{Name: "Kawasaki Ninja", Type: vehicle.TypeMotorbike, PricePerDay: 35.0, Status: vehicle.StatusAvailable},
	{Name: "Isuzu D-Max", Type: vehicle.TypeTruck, PricePerDay: 75.0, Status: vehicle.StatusAvailable},
	{Name: "Toyota Corolla", Type: vehicle.TypeCar, PricePerDay: 48.0, Status: vehicle.StatusAvailable},
	{Name: "Honda Accord", Type: vehicle.TypeCar, PricePerDay: 65.0, Status: vehicle.StatusAvailable},
	{Name: "Suzuki Hayate", Type: vehicle.TypeMotorbike, PricePerDay: 20.0, Status: vehicle.StatusMaintenance},
	{Name: "Chevrolet Silverado", Type: vehicle.TypeTruck, PricePerDay: 85.0, Status: vehicle.StatusAvailable},
	{Name: "Toyota Hilux", Type: vehicle.TypeTruck, PricePerDay: 70.0, Status: vehicle.StatusAvailable},
	{Name: "Nissan Altima", Type: vehicle.TypeCar, PricePerDay: 55.0, Status: vehicle.StatusRented},
	{Name: "Kawasaki Z650", Type: vehicle.TypeMotorbike, PricePerDay: 40.0, Status: vehicle.StatusAvailable},
	{Name: "Ford Mustang", Type: vehicle.TypeCar, PricePerDay: 120.0, Status: vehicle.StatusAvailable},
	{Name: "Ford Ranger", Type: vehicle.TypeTruck, PricePerDay: 78.0, Status: vehicle.StatusAvailable},
	{Name: "Yamaha XMAX", Type: vehicle.TypeMotorbike, PricePerDay: 30.0, Status: vehicle.StatusAvailable},
	{Name: "Hyundai Elantra", Type: vehicle.TypeCar, PricePerDay: 42.0, Status: vehicle.StatusAvailable},
	{Name: "Honda PCX", Type: vehicle.TypeMotorbike, PricePerDay: 28.0, Status: vehicle.StatusMaintenance},
	{Name: "Chevrolet Colorado", Type: vehicle.TypeTruck, PricePerDay: 72.0, Status: vehicle.StatusAvailable},
}

// Registry owns the fleet. Every state-mutating operation fires the change
// notifier after the mutation completes.
type Registry struct {
	vehicles []vehicle.Vehicle
	nextID   int
	notifier *notify.Notifier
}

// NewRegistry creates a registry seeded with the starter fleet.
func NewRegistry() *Registry {
	r := &Registry{notifier: notify.NewNotifier()}
	r.Reset()
	return r
}

// Subscribe registers a listener invoked after every mutation.
func (r *Registry) Subscribe(fn func()) (unsubscribe func()) {
	return r.notifier.Subscribe(fn)
}

// Add appends a vehicle under the next sequential id and returns it. An
// empty status defaults to Available.
func (r *Registry) Add(name string, typ vehicle.Type, pricePerDay float64, status vehicle.Status) vehicle.Vehicle {
	if status == "" {
		status = vehicle.StatusAvailable
	}
	v := vehicle.Vehicle{
		ID:          fmt.Sprintf("V%03d", r.nextID),
		Name:        name,
		Type:        typ,
		PricePerDay: pricePerDay,
		Status:      status,
	}
	r.nextID++
	r.vehicles = append(r.vehicles, v)
	r.notifier.Publish()
	return v
}

// Update overwrites the mutable fields of a vehicle, including status.
func (r *Registry) Update(id, name string, typ vehicle.Type, pricePerDay float64, status vehicle.Status) bool {
	for i := range r.vehicles {
		if r.vehicles[i].ID == id {
			r.vehicles[i].Name = name
			r.vehicles[i].Type = typ
			r.vehicles[i].PricePerDay = pricePerDay
			r.vehicles[i].Status = status
			r.notifier.Publish()
			return true
		}
	}
	return false
}

// UpdateDetails overwrites name, type and price but preserves the current
// status, so edits do not clobber rental-driven transitions.
func (r *Registry) UpdateDetails(id, name string, typ vehicle.Type, pricePerDay float64) bool {
	for i := range r.vehicles {
		if r.vehicles[i].ID == id {
			r.vehicles[i].Name = name
			r.vehicles[i].Type = typ
			r.vehicles[i].PricePerDay = pricePerDay
			r.notifier.Publish()
			return true
		}
	}
	return false
}

// Delete removes a vehicle by id.
func (r *Registry) Delete(id string) bool {
	for i := range r.vehicles {
		if r.vehicles[i].ID == id {
			r.vehicles = append(r.vehicles[:i], r.vehicles[i+1:]...)
			r.notifier.Publish()
			return true
		}
	}
	return false
}

// GetByID returns a copy of the vehicle with the given id.
func (r *Registry) GetByID(id string) (vehicle.Vehicle, bool) {
	for i := range r.vehicles {
		if r.vehicles[i].ID == id {
			return r.vehicles[i], true
		}
	}
	return vehicle.Vehicle{}, false
}

// ListAll returns a copy of the whole fleet in insertion order.
func (r *Registry) ListAll() []vehicle.Vehicle {
	out := make([]vehicle.Vehicle, len(r.vehicles))
	copy(out, r.vehicles)
	return out
}

// ListAvailable returns vehicles that count as available: rentable now or
// under maintenance (rentable soon).
func (r *Registry) ListAvailable() []vehicle.Vehicle {
	var out []vehicle.Vehicle
	for i := range r.vehicles {
		if r.vehicles[i].CountsAsAvailable() {
			out = append(out, r.vehicles[i])
		}
	}
	return out
}

// ListByType returns vehicles of the given type.
func (r *Registry) ListByType(typ vehicle.Type) []vehicle.Vehicle {
	var out []vehicle.Vehicle
	for i := range r.vehicles {
		if r.vehicles[i].Type == typ {
			out = append(out, r.vehicles[i])
		}
	}
	return out
}

// SearchByName returns vehicles whose name contains the term,
// case-insensitively.
func (r *Registry) SearchByName(term string) []vehicle.Vehicle {
	term = strings.ToLower(term)
	var out []vehicle.Vehicle
	for i := range r.vehicles {
		if strings.Contains(strings.ToLower(r.vehicles[i].Name), term) {
			out = append(out, r.vehicles[i])
		}
	}
	return out
}

// SetStatus flips a vehicle's status. This is the sole mutator the rental
// ledger uses.
func (r *Registry) SetStatus(id string, status vehicle.Status) bool {
	for i := range r.vehicles {
		if r.vehicles[i].ID == id {
			r.vehicles[i].Status = status
			r.notifier.Publish()
			return true
		}
	}
	return false
}

// CountAvailable counts vehicles that are Available or Under Maintenance.
func (r *Registry) CountAvailable() int {
	count := 0
	for i := range r.vehicles {
		if r.vehicles[i].CountsAsAvailable() {
			count++
		}
	}
	return count
}

// Reset clears the fleet and reseeds the starter vehicles. Rentals held by a
// ledger are untouched; Reset is an administrative operation, not a runtime
// path. It notifies like any other mutation so connected views refresh.
func (r *Registry) Reset() {
	r.vehicles = r.vehicles[:0]
	r.nextID = 1
	for _, v := range seedFleet {
		v.ID = fmt.Sprintf("V%03d", r.nextID)
		r.nextID++
		r.vehicles = append(r.vehicles, v)
	}
	r.notifier.Publish()
}
