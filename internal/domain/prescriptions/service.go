package prescriptions

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/abcclinic/clinic/internal/platform/telemetry"
)

// CreateRequest carries the prescription upload form. Method is how the
// patient sent the prescription; file_name identifies the stored upload.
type CreateRequest struct {
	Name     string `json:"name"`
	Gender   string `json:"gender"`
	Age      int    `json:"age"`
	Phone    string `json:"phone"`
	Method   string `json:"method"`
	FileName string `json:"file_name,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

type Service struct {
	repo    PrescriptionRepository
	metrics *telemetry.Provider
}

func NewService(repo PrescriptionRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) SetMetrics(p *telemetry.Provider) { s.metrics = p }

func (s *Service) count(operation string) {
	if s.metrics != nil {
		s.metrics.BookingOperationCounter("prescription", operation)
	}
}

// CreatePrescription validates the upload and persists it in the new
// state.
func (s *Service) CreatePrescription(ctx context.Context, req CreateRequest) (*Prescription, error) {
	if req.Method == "" {
		req.Method = MethodNone
	}
	if !ValidMethod(req.Method) {
		return nil, fmt.Errorf("unknown upload method %q", req.Method)
	}

	sub := NewSubmission(req.Name, req.Age, req.Gender, req.Phone)
	switch req.Method {
	case MethodPDF:
		sub.AttachPDF(req.FileName)
	case MethodPhoto:
		sub.AttachPhoto(req.FileName)
	case MethodVoice:
		sub.AttachVoiceNote(req.FileName)
	}
	sub.SetNotes(req.Notes)

	p, err := sub.Build()
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	s.count("create")
	return p, nil
}

func (s *Service) GetPrescription(ctx context.Context, id uuid.UUID) (*Prescription, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListPrescriptions(ctx context.Context, limit, offset int) ([]*Prescription, int, error) {
	s.count("list")
	return s.repo.List(ctx, limit, offset)
}

// UpdateStatus sets a new status and returns the refreshed row.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*Prescription, error) {
	if !ValidStatus(status) {
		return nil, fmt.Errorf("invalid status %q", status)
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	s.count("update_status")
	return s.repo.GetByID(ctx, id)
}

func (s *Service) DeletePrescription(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.count("delete")
	return nil
}
