// Package prescriptions implements prescription uploads: patients send
// a prescription as a PDF, photo, or voice note and the clinic staff
// works through them from the dashboard.
package prescriptions

import (
	"time"

	"github.com/google/uuid"
)

// Upload methods.
const (
	MethodPDF   = "pdf"
	MethodPhoto = "photo"
	MethodVoice = "voice"
	MethodNone  = "none"
)

// Prescription statuses. Every new upload starts as StatusNew.
const (
	StatusNew        = "new"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// Prescription maps to the prescription_uploads table.
type Prescription struct {
	ID          uuid.UUID `db:"id" json:"id"`
	PatientName string    `db:"patient_name" json:"patient_name"`
	Gender      string    `db:"gender" json:"gender"`
	Age         int       `db:"age" json:"age"`
	Phone       string    `db:"phone" json:"phone"`
	Method      string    `db:"method" json:"method"`
	FileName    *string   `db:"file_name" json:"file_name,omitempty"`
	Notes       *string   `db:"notes" json:"notes,omitempty"`
	Status      string    `db:"status" json:"status"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// ValidStatus reports whether s is a recognised prescription status.
func ValidStatus(s string) bool {
	switch s {
	case StatusNew, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// ValidMethod reports whether m is a recognised upload method.
func ValidMethod(m string) bool {
	switch m {
	case MethodPDF, MethodPhoto, MethodVoice, MethodNone:
		return true
	}
	return false
}
