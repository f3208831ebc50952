package diagnostics

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/abcclinic/clinic/internal/clinic"
)

type mockRepo struct {
	items map[uuid.UUID]*Booking
	seq   int
}

func newMockRepo() *mockRepo {
	return &mockRepo{items: make(map[uuid.UUID]*Booking)}
}

func (m *mockRepo) Create(_ context.Context, b *Booking) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	m.seq++
	b.CreatedAt = time.Now().Add(time.Duration(m.seq) * time.Millisecond)
	b.UpdatedAt = b.CreatedAt
	cp := *b
	m.items[b.ID] = &cp
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Booking, error) {
	b, ok := m.items[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *b
	return &cp, nil
}

func (m *mockRepo) List(_ context.Context, limit, offset int) ([]*Booking, int, error) {
	out := make([]*Booking, 0, len(m.items))
	for _, b := range m.items {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	total := len(out)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return out[offset:end], total, nil
}

func (m *mockRepo) UpdateStatus(_ context.Context, id uuid.UUID, status string) error {
	b, ok := m.items[id]
	if !ok {
		return pgx.ErrNoRows
	}
	b.Status = status
	b.UpdatedAt = time.Now().Add(time.Hour)
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.items[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(m.items, id)
	return nil
}

func (m *mockRepo) Count(_ context.Context) (int, error) {
	return len(m.items), nil
}

func validCreateRequest() CreateRequest {
	return CreateRequest{
		Packages:      []string{"diabetes", "thyroid"},
		Name:          "Suresh Iyer",
		Age:           62,
		Gender:        "Male",
		Phone:         "9876543210",
		PreferredDate: "2026-09-03",
		PreferredTime: "7-9 AM",
	}
}

func TestService_CreateBooking(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, clinic.Default())

	b, err := svc.CreateBooking(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if b.EstimatedCost != 1400 {
		t.Errorf("expected cost 1400, got %d", b.EstimatedCost)
	}
	if b.HomeCollection {
		t.Error("expected home collection off by default")
	}
}

func TestService_CreateBooking_PrescriptionOnly(t *testing.T) {
	svc := NewService(newMockRepo(), clinic.Default())

	req := validCreateRequest()
	req.Packages = nil
	req.HasPrescription = true
	req.TestsRequested = "CBC, lipid profile"

	b, err := svc.CreateBooking(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if !b.HasPrescription {
		t.Error("expected prescription flag stored")
	}
	if b.TestsRequested == nil || *b.TestsRequested != "CBC, lipid profile" {
		t.Error("expected tests requested stored")
	}
	if b.EstimatedCost != 0 {
		t.Errorf("expected cost 0 without packages, got %d", b.EstimatedCost)
	}
}

func TestService_CreateBooking_HomeCollection(t *testing.T) {
	svc := NewService(newMockRepo(), clinic.Default())

	req := validCreateRequest()
	req.HomeCollection = true
	req.Address = "123 Health Street"

	b, err := svc.CreateBooking(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if b.EstimatedCost != 1400+HomeCollectionCharge {
		t.Errorf("expected cost %d, got %d", 1400+HomeCollectionCharge, b.EstimatedCost)
	}
}

func TestService_CreateBooking_Errors(t *testing.T) {
	svc := NewService(newMockRepo(), clinic.Default())

	tests := []struct {
		name   string
		mutate func(*CreateRequest)
	}{
		{"nothing to test for", func(r *CreateRequest) { r.Packages = nil }},
		{"unknown package", func(r *CreateRequest) { r.Packages = []string{"mri"} }},
		{"duplicate package", func(r *CreateRequest) { r.Packages = []string{"basic", "basic"} }},
		{"home collection without address", func(r *CreateRequest) { r.HomeCollection = true }},
		{"missing preferred time", func(r *CreateRequest) { r.PreferredTime = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(&req)
			if _, err := svc.CreateBooking(context.Background(), req); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestService_UpdateStatus(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, clinic.Default())
	b, err := svc.CreateBooking(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	updated, err := svc.UpdateStatus(context.Background(), b.ID, StatusCompleted)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != StatusCompleted {
		t.Errorf("expected completed, got %q", updated.Status)
	}

	if _, err := svc.UpdateStatus(context.Background(), b.ID, "pending"); err == nil {
		t.Error("expected error for invalid status")
	}
}

func TestService_DeleteBooking(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, clinic.Default())
	b, err := svc.CreateBooking(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	if err := svc.DeleteBooking(context.Background(), b.ID); err != nil {
		t.Fatalf("DeleteBooking: %v", err)
	}
	if err := svc.DeleteBooking(context.Background(), b.ID); err == nil {
		t.Error("expected error deleting twice")
	}
}
