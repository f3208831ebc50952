package booking

import (
	"context"

	"github.com/google/uuid"
)

type AppointmentRepository interface {
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error)
	List(ctx context.Context, limit, offset int) ([]*Appointment, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByStatus(ctx context.Context, status string) (int, error)
	CountOnDate(ctx context.Context, date string) (int, error)
	Count(ctx context.Context) (int, error)
	Recent(ctx context.Context, limit int) ([]*Appointment, error)
}
