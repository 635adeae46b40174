package vehicle

// CreateVehicleRequest for adding a vehicle to the fleet. Status defaults to
// Available when omitted.
type CreateVehicleRequest struct {
	Name        string  `json:"name" binding:"required"`
	Type        Type    `json:"type" binding:"required"`
	PricePerDay float64 `json:"price_per_day" binding:"required,gt=0"`
	Status      Status  `json:"status"`
}

// UpdateVehicleRequest for editing a vehicle. A nil Status preserves the
// current one so rental-driven transitions are not clobbered by edits.
type UpdateVehicleRequest struct {
	Name        string  `json:"name" binding:"required"`
	Type        Type    `json:"type" binding:"required"`
	PricePerDay float64 `json:"price_per_day" binding:"required,gt=0"`
	Status      *Status `json:"status"`
}

// ListFilters narrow a vehicle listing.
type ListFilters struct {
	Type      Type   `form:"type"`
	Search    string `form:"search"`
	Available bool   `form:"available"`
}
