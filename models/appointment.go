package models

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentSlot is a time label such as "9:00 AM". It has no date.
type AppointmentSlot string

type BookingForm struct {
	Department   string `json:"department" validate:"required"`
	Doctor       string `json:"doctor" validate:"required"`
	Time         string `json:"time" validate:"required"`
	PatientEmail string `json:"email,omitempty"`
}

// Confirmation is what a booking returns. It is not stored anywhere.
type Confirmation struct {
	ID         uuid.UUID `json:"id"`
	Department string    `json:"department"`
	Doctor     string    `json:"doctor"`
	Time       string    `json:"time"`
	Message    string    `json:"message"`
	BookedAt   time.Time `json:"booked_at"`
}
