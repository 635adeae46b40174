package vehicle

// Status is the single source of truth for whether a vehicle can be rented.
// Only Available vehicles are rentable; Under Maintenance vehicles still
// count toward fleet availability reporting.
type Status string

const (
	StatusAvailable   Status = "Available"
	StatusRented      Status = "Rented"
	StatusMaintenance Status = "Under Maintenance"
	StatusLost        Status = "Lost"
)

// Type of vehicle. Stored as an open string in the registry; the service
// layer constrains it to the known set.
type Type string

const (
	TypeCar       Type = "Car"
	TypeMotorbike Type = "Motorbike"
	TypeTruck     Type = "Truck"
)

// KnownTypes lists the vehicle types the service accepts.
var KnownTypes = []Type{TypeCar, TypeMotorbike, TypeTruck}

// Vehicle represents one unit of the fleet. ID is system-generated
// ("V" + zero-padded 3-digit counter) and immutable once assigned.
type Vehicle struct {
	ID          string  `json:"vehicle_id"`
	Name        string  `json:"name"`
	Type        Type    `json:"type"`
	PricePerDay float64 `json:"price_per_day"`
	Status      Status  `json:"status"`
}

// Rentable reports whether the vehicle can be rented right now.
func (v *Vehicle) Rentable() bool {
	return v.Status == StatusAvailable
}

// CountsAsAvailable reports whether the vehicle counts toward the
// fleet-availability statistic (rentable now or rentable soon).
func (v *Vehicle) CountsAsAvailable() bool {
	return v.Status == StatusAvailable || v.Status == StatusMaintenance
}
