package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abcclinic/clinic/internal/clinic"
)

// Wizard step ordering. Each step unlocks the next; skipping ahead is an
// error.
const (
	stepDoctor = iota
	stepSchedule
	stepPatient
	stepConfirm
)

const (
	minAge = 1
	maxAge = 120
)

// PatientDetails carries the patient form fields collected by the wizard.
type PatientDetails struct {
	Name             string
	Age              int
	Gender           string
	Phone            string
	Email            string
	Symptoms         string
	ReturningPatient bool
}

// Wizard walks the appointment booking flow in order: doctor, schedule,
// patient details, confirm. Zero value starts at the doctor step.
type Wizard struct {
	catalog *clinic.Catalog
	typ     string
	step    int

	doctor  *clinic.Doctor
	date    string
	slot    string
	patient PatientDetails
}

// NewWizard starts a booking flow of the given appointment type.
func NewWizard(catalog *clinic.Catalog, appointmentType string) (*Wizard, error) {
	if !ValidType(appointmentType) {
		return nil, fmt.Errorf("unknown appointment type %q", appointmentType)
	}
	return &Wizard{catalog: catalog, typ: appointmentType}, nil
}

// SelectDoctor records the chosen doctor and unlocks the schedule step.
func (w *Wizard) SelectDoctor(doctorID string) error {
	if w.step != stepDoctor {
		return fmt.Errorf("doctor already selected")
	}
	doc := w.catalog.DoctorByID(doctorID)
	if doc == nil {
		return fmt.Errorf("unknown doctor %q", doctorID)
	}
	w.doctor = doc
	w.step = stepSchedule
	return nil
}

// SelectSchedule records the visit date and time slot. The slot must be
// one the doctor actually offers.
func (w *Wizard) SelectSchedule(date, slot string) error {
	if w.step != stepSchedule {
		return fmt.Errorf("select a doctor first")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("invalid date %q: want YYYY-MM-DD", date)
	}
	if !w.doctor.HasSlot(slot) {
		return fmt.Errorf("doctor %s has no %s slot", w.doctor.Name, slot)
	}
	w.date = date
	w.slot = slot
	w.step = stepPatient
	return nil
}

// EnterPatientDetails validates and records the patient form.
func (w *Wizard) EnterPatientDetails(p PatientDetails) error {
	if w.step != stepPatient {
		return fmt.Errorf("select a schedule first")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("patient name is required")
	}
	if p.Age < minAge || p.Age > maxAge {
		return fmt.Errorf("age must be between %d and %d", minAge, maxAge)
	}
	gender, ok := clinic.NormalizeGender(p.Gender)
	if !ok {
		return fmt.Errorf("gender must be %s, %s, or %s", clinic.GenderMale, clinic.GenderFemale, clinic.GenderOther)
	}
	if strings.TrimSpace(p.Phone) == "" {
		return fmt.Errorf("phone number is required")
	}
	if strings.TrimSpace(p.Symptoms) == "" {
		return fmt.Errorf("chief complaint is required")
	}
	p.Gender = gender
	w.patient = p
	w.step = stepConfirm
	return nil
}

// Confirm finalises the flow, producing the appointment with its booking
// code and fee. The appointment is not yet persisted.
func (w *Wizard) Confirm() (*Appointment, error) {
	if w.step != stepConfirm {
		return nil, fmt.Errorf("booking flow incomplete")
	}

	now := time.Now()
	appt := &Appointment{
		ID:               uuid.New(),
		BookingID:        bookingCode(w.typ, now),
		Type:             w.typ,
		DoctorID:         w.doctor.ID,
		DoctorName:       w.doctor.Name,
		Specialty:        w.doctor.Specialty,
		AppointmentDate:  w.date,
		TimeSlot:         w.slot,
		PatientName:      strings.TrimSpace(w.patient.Name),
		Age:              w.patient.Age,
		Gender:           w.patient.Gender,
		Phone:            strings.TrimSpace(w.patient.Phone),
		Symptoms:         strings.TrimSpace(w.patient.Symptoms),
		ReturningPatient: w.patient.ReturningPatient,
		Fee:              FeeFor(w.typ),
		Status:           StatusConfirmed,
	}
	if e := strings.TrimSpace(w.patient.Email); e != "" {
		appt.Email = &e
	}
	return appt, nil
}

// bookingCode builds the human-facing reference shown to the patient:
// TC for teleconsults, IC for in-clinic visits, then six digits derived
// from the booking instant.
func bookingCode(appointmentType string, at time.Time) string {
	prefix := "IC"
	if appointmentType == TypeTeleconsult {
		prefix = "TC"
	}
	return fmt.Sprintf("%s%06d", prefix, at.UnixMilli()%1_000_000)
}
