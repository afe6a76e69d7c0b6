package booking

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines booking data access
type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	ListByGuest(ctx context.Context, guestID uuid.UUID, limit, offset int) ([]*Booking, int, error)
	ListByResort(ctx context.Context, resortID uuid.UUID, limit, offset int) ([]*Booking, int, error)
	ListActiveByResortDate(ctx context.Context, resortID uuid.UUID, date time.Time) ([]*Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates booking repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, b *Booking) error {
	query := `
		INSERT INTO bookings (
			id, resort_id, guest_id, booking_date, checkout_date,
			booking_type, time_slot_id, guest_count,
			day_type, guest_tier_id, price, downpayment_percent,
			downpayment_amount, legacy_pricing, status, notes,
			created_at, updated_at
		) VALUES (
			:id, :resort_id, :guest_id, :booking_date, :checkout_date,
			:booking_type, :time_slot_id, :guest_count,
			:day_type, :guest_tier_id, :price, :downpayment_percent,
			:downpayment_amount, :legacy_pricing, :status, :notes,
			:created_at, :updated_at
		)
	`
	_, err := r.db.NamedExecContext(ctx, query, b)
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	var b Booking
	err := r.db.GetContext(ctx, &b, `SELECT * FROM bookings WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *repository) ListByGuest(ctx context.Context, guestID uuid.UUID, limit, offset int) ([]*Booking, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM bookings WHERE guest_id = $1`, guestID); err != nil {
		return nil, 0, err
	}

	query := `SELECT * FROM bookings WHERE guest_id = $1 ORDER BY booking_date DESC, created_at DESC LIMIT $2 OFFSET $3`
	var bookings []*Booking
	if err := r.db.SelectContext(ctx, &bookings, query, guestID, limit, offset); err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

func (r *repository) ListByResort(ctx context.Context, resortID uuid.UUID, limit, offset int) ([]*Booking, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM bookings WHERE resort_id = $1`, resortID); err != nil {
		return nil, 0, err
	}

	query := `SELECT * FROM bookings WHERE resort_id = $1 ORDER BY booking_date DESC, created_at DESC LIMIT $2 OFFSET $3`
	var bookings []*Booking
	if err := r.db.SelectContext(ctx, &bookings, query, resortID, limit, offset); err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

func (r *repository) ListActiveByResortDate(ctx context.Context, resortID uuid.UUID, date time.Time) ([]*Booking, error) {
	query := `
		SELECT * FROM bookings
		WHERE resort_id = $1 AND booking_date = $2 AND status != 'cancelled'
		ORDER BY created_at
	`
	var bookings []*Booking
	if err := r.db.SelectContext(ctx, &bookings, query, resortID, date); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE bookings SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrBookingNotFound
	}
	return nil
}
