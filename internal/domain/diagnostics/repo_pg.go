package diagnostics

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type bookingRepoPG struct{ pool *pgxpool.Pool }

func NewBookingRepoPG(pool *pgxpool.Pool) BookingRepository {
	return &bookingRepoPG{pool: pool}
}

const labCols = `id, booking_id, selected_packages, has_prescription,
	tests_requested, patient_name, age, gender, phone, email, preferred_date,
	preferred_time, home_collection, address, collection_landmark,
	special_instructions, estimated_cost, status, created_at, updated_at`

func (r *bookingRepoPG) scanRow(row pgx.Row) (*Booking, error) {
	var b Booking
	err := row.Scan(&b.ID, &b.BookingID, &b.SelectedPackages, &b.HasPrescription,
		&b.TestsRequested, &b.PatientName, &b.Age, &b.Gender, &b.Phone,
		&b.Email, &b.PreferredDate, &b.PreferredTime, &b.HomeCollection,
		&b.Address, &b.CollectionLandmark, &b.SpecialInstructions,
		&b.EstimatedCost, &b.Status, &b.CreatedAt, &b.UpdatedAt)
	return &b, err
}

func (r *bookingRepoPG) Create(ctx context.Context, b *Booking) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return r.pool.QueryRow(ctx, `
		INSERT INTO diagnostic_bookings (id, booking_id, selected_packages,
			has_prescription, tests_requested, patient_name, age, gender,
			phone, email, preferred_date, preferred_time, home_collection,
			address, collection_landmark, special_instructions,
			estimated_cost, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
		RETURNING created_at, updated_at`,
		b.ID, b.BookingID, b.SelectedPackages, b.HasPrescription,
		b.TestsRequested, b.PatientName, b.Age, b.Gender, b.Phone, b.Email,
		b.PreferredDate, b.PreferredTime, b.HomeCollection, b.Address,
		b.CollectionLandmark, b.SpecialInstructions, b.EstimatedCost, b.Status).
		Scan(&b.CreatedAt, &b.UpdatedAt)
}

func (r *bookingRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	return r.scanRow(r.pool.QueryRow(ctx, `SELECT `+labCols+` FROM diagnostic_bookings WHERE id = $1`, id))
}

func (r *bookingRepoPG) List(ctx context.Context, limit, offset int) ([]*Booking, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM diagnostic_bookings`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+labCols+` FROM diagnostic_bookings ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Booking
	for rows.Next() {
		b, err := r.scanRow(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, b)
	}
	return items, total, rows.Err()
}

func (r *bookingRepoPG) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE diagnostic_bookings SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *bookingRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM diagnostic_bookings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *bookingRepoPG) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM diagnostic_bookings`).Scan(&n)
	return n, err
}
