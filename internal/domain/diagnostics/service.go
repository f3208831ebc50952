package diagnostics

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/abcclinic/clinic/internal/clinic"
	"github.com/abcclinic/clinic/internal/platform/telemetry"
)

// CreateRequest carries the lab booking form.
type CreateRequest struct {
	Packages            []string `json:"packages"`
	HasPrescription     bool     `json:"has_prescription"`
	TestsRequested      string   `json:"tests_requested,omitempty"`
	HomeCollection      bool     `json:"home_collection"`
	Name                string   `json:"name"`
	Age                 int      `json:"age"`
	Gender              string   `json:"gender"`
	Phone               string   `json:"phone"`
	Email               string   `json:"email,omitempty"`
	PreferredDate       string   `json:"preferred_date"`
	PreferredTime       string   `json:"preferred_time"`
	Address             string   `json:"address,omitempty"`
	Landmark            string   `json:"collection_landmark,omitempty"`
	SpecialInstructions string   `json:"special_instructions,omitempty"`
}

type Service struct {
	repo    BookingRepository
	catalog *clinic.Catalog
	metrics *telemetry.Provider
}

func NewService(repo BookingRepository, catalog *clinic.Catalog) *Service {
	return &Service{repo: repo, catalog: catalog}
}

func (s *Service) SetMetrics(p *telemetry.Provider) { s.metrics = p }

func (s *Service) count(operation string) {
	if s.metrics != nil {
		s.metrics.BookingOperationCounter("diagnostic", operation)
	}
}

// CreateBooking builds a draft from the selected packages and persists
// the resulting booking.
func (s *Service) CreateBooking(ctx context.Context, req CreateRequest) (*Booking, error) {
	d := NewDraft(s.catalog)
	seen := make(map[string]bool)
	for _, id := range req.Packages {
		if seen[id] {
			return nil, fmt.Errorf("package %q listed twice", id)
		}
		seen[id] = true
		if err := d.TogglePackage(id); err != nil {
			return nil, err
		}
	}
	d.SetHasPrescription(req.HasPrescription)
	d.SetTestsRequested(req.TestsRequested)
	d.SetHomeCollection(req.HomeCollection)

	b, err := d.Build(PatientDetails{
		Name:                req.Name,
		Age:                 req.Age,
		Gender:              req.Gender,
		Phone:               req.Phone,
		Email:               req.Email,
		PreferredDate:       req.PreferredDate,
		PreferredTime:       req.PreferredTime,
		Address:             req.Address,
		Landmark:            req.Landmark,
		SpecialInstructions: req.SpecialInstructions,
	})
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	s.count("create")
	return b, nil
}

func (s *Service) GetBooking(ctx context.Context, id uuid.UUID) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListBookings(ctx context.Context, limit, offset int) ([]*Booking, int, error) {
	s.count("list")
	return s.repo.List(ctx, limit, offset)
}

// UpdateStatus sets a new status and returns the refreshed row.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*Booking, error) {
	if !ValidStatus(status) {
		return nil, fmt.Errorf("invalid status %q", status)
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	s.count("update_status")
	return s.repo.GetByID(ctx, id)
}

func (s *Service) DeleteBooking(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.count("delete")
	return nil
}
