// Package diagnostics implements lab test bookings: package selection
// with live cost estimation, home sample collection, persistence, and
// the public and admin HTTP endpoints.
package diagnostics

import (
	"time"

	"github.com/google/uuid"
)

// Booking statuses.
const (
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// HomeCollectionCharge is added on top of package prices when samples
// are collected at the patient's address.
const HomeCollectionCharge = 100

// Booking maps to the diagnostic_bookings table. A booking carries
// either a package selection, a declared prescription, or a free-text
// list of tests the patient wants.
type Booking struct {
	ID                  uuid.UUID `db:"id" json:"id"`
	BookingID           string    `db:"booking_id" json:"booking_id"`
	SelectedPackages    []string  `db:"selected_packages" json:"selected_packages"`
	HasPrescription     bool      `db:"has_prescription" json:"has_prescription"`
	TestsRequested      *string   `db:"tests_requested" json:"tests_requested,omitempty"`
	PatientName         string    `db:"patient_name" json:"patient_name"`
	Age                 int       `db:"age" json:"age"`
	Gender              string    `db:"gender" json:"gender"`
	Phone               string    `db:"phone" json:"phone"`
	Email               *string   `db:"email" json:"email,omitempty"`
	PreferredDate       string    `db:"preferred_date" json:"preferred_date"`
	PreferredTime       string    `db:"preferred_time" json:"preferred_time"`
	HomeCollection      bool      `db:"home_collection" json:"home_collection"`
	Address             *string   `db:"address" json:"address,omitempty"`
	CollectionLandmark  *string   `db:"collection_landmark" json:"collection_landmark,omitempty"`
	SpecialInstructions *string   `db:"special_instructions" json:"special_instructions,omitempty"`
	EstimatedCost       int       `db:"estimated_cost" json:"estimated_cost"`
	Status              string    `db:"status" json:"status"`
	CreatedAt           time.Time `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time `db:"updated_at" json:"updated_at"`
}

// ValidStatus reports whether s is a recognised booking status.
func ValidStatus(s string) bool {
	switch s {
	case StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}
