// Package admin implements the staff dashboard: login, the daily
// summary projection, and recent activity across all booking kinds.
package admin

import (
	"context"
	"sort"
	"time"

	"github.com/abcclinic/clinic/internal/domain/booking"
	"github.com/abcclinic/clinic/internal/domain/prescriptions"
)

// recentPerKind is how many of each record kind feed the activity list.
const recentPerKind = 3

// recentActivityMax caps the merged activity list.
const recentActivityMax = 10

// Dashboard is the summary shown when staff open the admin panel.
type Dashboard struct {
	PrescriptionsToday int            `json:"prescriptions_today"`
	AppointmentsToday  int            `json:"appointments_today"`
	PendingActions     int            `json:"pending_actions"`
	TotalRecords       int            `json:"total_records"`
	RecentActivity     []ActivityItem `json:"recent_activity"`
}

// ActivityItem is one row of the recent activity feed.
type ActivityItem struct {
	Kind        string    `json:"kind"`
	ID          string    `json:"id"`
	PatientName string    `json:"patient_name"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// DiagnosticCounter is the slice of the diagnostics store the dashboard
// needs: the overall booking count.
type DiagnosticCounter interface {
	Count(ctx context.Context) (int, error)
}

type Service struct {
	prescriptions prescriptions.PrescriptionRepository
	appointments  booking.AppointmentRepository
	diagnostics   DiagnosticCounter
	now           func() time.Time
}

// NewService builds the dashboard service over the three record stores.
func NewService(
	rx prescriptions.PrescriptionRepository,
	appts booking.AppointmentRepository,
	labs DiagnosticCounter,
) *Service {
	return &Service{
		prescriptions: rx,
		appointments:  appts,
		diagnostics:   labs,
		now:           time.Now,
	}
}

// Dashboard assembles the daily summary: today's prescriptions and
// appointments, items still needing staff attention, overall record
// count, and the merged recent activity feed.
func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	today := s.now().Format("2006-01-02")

	rxToday, err := s.prescriptions.CountCreatedOn(ctx, today)
	if err != nil {
		return nil, err
	}
	apptsToday, err := s.appointments.CountOnDate(ctx, today)
	if err != nil {
		return nil, err
	}

	newRx, err := s.prescriptions.CountByStatus(ctx, prescriptions.StatusNew)
	if err != nil {
		return nil, err
	}
	confirmedAppts, err := s.appointments.CountByStatus(ctx, booking.StatusConfirmed)
	if err != nil {
		return nil, err
	}

	rxTotal, err := s.prescriptions.Count(ctx)
	if err != nil {
		return nil, err
	}
	apptTotal, err := s.appointments.Count(ctx)
	if err != nil {
		return nil, err
	}
	labTotal, err := s.diagnostics.Count(ctx)
	if err != nil {
		return nil, err
	}

	activity, err := s.recentActivity(ctx)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		PrescriptionsToday: rxToday,
		AppointmentsToday:  apptsToday,
		PendingActions:     newRx + confirmedAppts,
		TotalRecords:       rxTotal + apptTotal + labTotal,
		RecentActivity:     activity,
	}, nil
}

// recentActivity merges the latest prescriptions and appointments into
// one feed, newest first.
func (s *Service) recentActivity(ctx context.Context) ([]ActivityItem, error) {
	rx, err := s.prescriptions.Recent(ctx, recentPerKind)
	if err != nil {
		return nil, err
	}
	appts, err := s.appointments.Recent(ctx, recentPerKind)
	if err != nil {
		return nil, err
	}

	items := make([]ActivityItem, 0, len(rx)+len(appts))
	for _, p := range rx {
		items = append(items, ActivityItem{
			Kind:        "prescription",
			ID:          p.ID.String(),
			PatientName: p.PatientName,
			Status:      p.Status,
			CreatedAt:   p.CreatedAt,
		})
	}
	for _, a := range appts {
		items = append(items, ActivityItem{
			Kind:        "appointment",
			ID:          a.ID.String(),
			PatientName: a.PatientName,
			Status:      a.Status,
			CreatedAt:   a.CreatedAt,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	if len(items) > recentActivityMax {
		items = items[:recentActivityMax]
	}
	return items, nil
}
