package rental

import "time"

// RentRequest creates a new rental.
type RentRequest struct {
	VehicleID        string    `json:"vehicle_id" binding:"required"`
	StartAt          time.Time `json:"start_at" binding:"required"`
	ExpectedReturnAt time.Time `json:"expected_return_at" binding:"required"`
}

// QuoteRequest asks for a cost preview before committing to a rental.
type QuoteRequest struct {
	VehicleID        string    `form:"vehicle_id" binding:"required"`
	StartAt          time.Time `form:"start_at" binding:"required"`
	ExpectedReturnAt time.Time `form:"expected_return_at" binding:"required"`
}

// Quote is the cost preview. It uses the same whole-hour formula as the
// committed rental so the preview always matches the charge.
type Quote struct {
	VehicleID         string  `json:"vehicle_id"`
	VehicleName       string  `json:"vehicle_name"`
	DurationHours     int64   `json:"duration_hours"`
	FormattedDuration string  `json:"formatted_duration"`
	TotalCost         float64 `json:"total_cost"`
}

// ReportLostRequest marks a rental lost with an expected give-back date.
type ReportLostRequest struct {
	GiveBackAt time.Time `json:"give_back_at" binding:"required"`
}

// Stats aggregates the admin dashboard figures.
type Stats struct {
	TotalRevenue      float64 `json:"total_revenue"`
	TotalRentals      int     `json:"total_rentals"`
	ActiveRentals     int     `json:"active_rentals"`
	AvailableVehicles int     `json:"available_vehicles"`
}
