package booking

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/abcclinic/clinic/internal/clinic"
	"github.com/abcclinic/clinic/internal/platform/telemetry"
)

// CreateRequest carries everything the booking flow needs, in the order
// the patient supplies it.
type CreateRequest struct {
	Type             string `json:"type"`
	DoctorID         string `json:"doctor_id"`
	Date             string `json:"date"`
	TimeSlot         string `json:"time_slot"`
	Name             string `json:"name"`
	Age              int    `json:"age"`
	Gender           string `json:"gender"`
	Phone            string `json:"phone"`
	Email            string `json:"email,omitempty"`
	Symptoms         string `json:"symptoms"`
	ReturningPatient bool   `json:"returning_patient"`
}

type Service struct {
	repo    AppointmentRepository
	catalog *clinic.Catalog
	metrics *telemetry.Provider
}

func NewService(repo AppointmentRepository, catalog *clinic.Catalog) *Service {
	return &Service{repo: repo, catalog: catalog}
}

func (s *Service) SetMetrics(p *telemetry.Provider) { s.metrics = p }

func (s *Service) count(operation string) {
	if s.metrics != nil {
		s.metrics.BookingOperationCounter("appointment", operation)
	}
}

// CreateAppointment walks the booking wizard with the request fields and
// persists the confirmed appointment.
func (s *Service) CreateAppointment(ctx context.Context, req CreateRequest) (*Appointment, error) {
	w, err := NewWizard(s.catalog, req.Type)
	if err != nil {
		return nil, err
	}
	if err := w.SelectDoctor(req.DoctorID); err != nil {
		return nil, err
	}
	if err := w.SelectSchedule(req.Date, req.TimeSlot); err != nil {
		return nil, err
	}
	if err := w.EnterPatientDetails(PatientDetails{
		Name:             req.Name,
		Age:              req.Age,
		Gender:           req.Gender,
		Phone:            req.Phone,
		Email:            req.Email,
		Symptoms:         req.Symptoms,
		ReturningPatient: req.ReturningPatient,
	}); err != nil {
		return nil, err
	}
	appt, err := w.Confirm()
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, appt); err != nil {
		return nil, err
	}
	s.count("create")
	return appt, nil
}

func (s *Service) GetAppointment(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListAppointments(ctx context.Context, limit, offset int) ([]*Appointment, int, error) {
	s.count("list")
	return s.repo.List(ctx, limit, offset)
}

// UpdateStatus sets a new status and returns the refreshed row.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*Appointment, error) {
	if !ValidStatus(status) {
		return nil, fmt.Errorf("invalid status %q", status)
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	s.count("update_status")
	return s.repo.GetByID(ctx, id)
}

func (s *Service) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.count("delete")
	return nil
}
