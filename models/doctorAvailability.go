package models

const (
	Available   = "Available"
	Unavailable = "Unavailable"
)

// AvailabilityStatuses lists the choices offered by the admin panel.
// Any non-empty status is accepted.
var AvailabilityStatuses = []string{Available, Unavailable}

type AvailabilityForm struct {
	Department   string `json:"department" validate:"required"`
	Doctor       string `json:"doctor" validate:"required"`
	Availability string `json:"availability" validate:"required"`
}

type AvailabilityUpdate struct {
	Department   string `json:"department"`
	Doctor       string `json:"doctor"`
	Availability string `json:"availability"`
	Message      string `json:"message"`
}
