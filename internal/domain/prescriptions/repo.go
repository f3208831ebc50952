package prescriptions

import (
	"context"

	"github.com/google/uuid"
)

type PrescriptionRepository interface {
	Create(ctx context.Context, p *Prescription) error
	GetByID(ctx context.Context, id uuid.UUID) (*Prescription, error)
	List(ctx context.Context, limit, offset int) ([]*Prescription, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountCreatedOn(ctx context.Context, date string) (int, error)
	CountByStatus(ctx context.Context, status string) (int, error)
	Count(ctx context.Context) (int, error)
	Recent(ctx context.Context, limit int) ([]*Prescription, error)
}
