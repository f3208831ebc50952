// Package booking implements consultation appointments: the multi-step
// booking flow for teleconsults and in-clinic visits, persistence, and
// the public and admin HTTP endpoints.
package booking

import (
	"time"

	"github.com/google/uuid"
)

// Appointment types.
const (
	TypeTeleconsult = "teleconsult"
	TypeInClinic    = "in_clinic"
)

// Consultation fees in rupees.
const (
	FeeTeleconsult = 500
	FeeInClinic    = 700
)

// Appointment statuses.
const (
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Appointment maps to the appointments table.
type Appointment struct {
	ID               uuid.UUID `db:"id" json:"id"`
	BookingID        string    `db:"booking_id" json:"booking_id"`
	Type             string    `db:"type" json:"type"`
	DoctorID         string    `db:"doctor_id" json:"doctor_id"`
	DoctorName       string    `db:"doctor_name" json:"doctor_name"`
	Specialty        string    `db:"specialty" json:"specialty"`
	AppointmentDate  string    `db:"appointment_date" json:"appointment_date"`
	TimeSlot         string    `db:"time_slot" json:"time_slot"`
	PatientName      string    `db:"patient_name" json:"patient_name"`
	Age              int       `db:"age" json:"age"`
	Gender           string    `db:"gender" json:"gender"`
	Phone            string    `db:"phone" json:"phone"`
	Email            *string   `db:"email" json:"email,omitempty"`
	Symptoms         string    `db:"symptoms" json:"symptoms"`
	ReturningPatient bool      `db:"returning_patient" json:"returning_patient"`
	Fee              int       `db:"fee" json:"fee"`
	Status           string    `db:"status" json:"status"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

// ValidStatus reports whether s is a recognised appointment status.
func ValidStatus(s string) bool {
	switch s {
	case StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ValidType reports whether t is a recognised appointment type.
func ValidType(t string) bool {
	return t == TypeTeleconsult || t == TypeInClinic
}

// FeeFor returns the consultation fee for an appointment type.
func FeeFor(appointmentType string) int {
	if appointmentType == TypeTeleconsult {
		return FeeTeleconsult
	}
	return FeeInClinic
}
