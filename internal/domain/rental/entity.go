package rental

import (
	"fmt"
	"time"
)

// Status of a rental. Returned and Lost are terminal.
type Status string

const (
	StatusActive   Status = "Active"
	StatusReturned Status = "Returned"
	StatusLost     Status = "Lost"
)

// Rental records one rental transaction. VehicleName is a snapshot taken at
// creation so history stays accurate if the vehicle is later renamed or
// deleted. TotalCost is fixed at creation and never recomputed.
type Rental struct {
	ID               string     `json:"rental_id"`
	CustomerUsername string     `json:"customer_username"`
	VehicleID        string     `json:"vehicle_id"`
	VehicleName      string     `json:"vehicle_name"`
	TotalCost        float64    `json:"total_cost"`
	StartAt          time.Time  `json:"start_at"`
	ExpectedReturnAt time.Time  `json:"expected_return_at"`
	ReturnedAt       *time.Time `json:"returned_at,omitempty"`
	GiveBackAt       *time.Time `json:"give_back_at,omitempty"`
	Status           Status     `json:"status"`
}

// DurationHours is the billed duration: whole hours between start and the
// expected return, sub-hour remainder discarded.
func (r *Rental) DurationHours() int64 {
	return WholeHours(r.StartAt, r.ExpectedReturnAt)
}

// FormattedDuration renders the duration as "{hours}h {minutes}m".
func (r *Rental) FormattedDuration() string {
	if r.StartAt.IsZero() || r.ExpectedReturnAt.IsZero() {
		return "0h 0m"
	}
	hours := WholeHours(r.StartAt, r.ExpectedReturnAt)
	minutes := wholeMinutes(r.StartAt, r.ExpectedReturnAt) % 60
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

// WholeHours floor-divides the elapsed time between start and end into
// integer hours.
func WholeHours(start, end time.Time) int64 {
	return int64(end.Sub(start) / time.Hour)
}

// Cost computes the committed rental cost: the daily rate prorated per hour,
// times the whole-hour duration.
func Cost(pricePerDay float64, start, end time.Time) float64 {
	pricePerHour := pricePerDay / 24.0
	return pricePerHour * float64(WholeHours(start, end))
}

func wholeMinutes(start, end time.Time) int64 {
	return int64(end.Sub(start) / time.Minute)
}
