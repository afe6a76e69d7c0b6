package resort

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines resort data access
type Repository interface {
	Create(ctx context.Context, r *Resort) error
	GetByID(ctx context.Context, id uuid.UUID) (*Resort, error)
	Update(ctx context.Context, r *Resort) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListApproved(ctx context.Context, city string, limit, offset int) ([]*Resort, int, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Resort, error)
	ListPending(ctx context.Context, limit, offset int) ([]*Resort, int, error)
	UpdatePricingConfig(ctx context.Context, id uuid.UUID, cfg ConfigColumn) error
	UpdateModeration(ctx context.Context, id uuid.UUID, status ModerationStatus, reason string) error
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates resort repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, resort *Resort) error {
	query := `
		INSERT INTO resorts (
			id, owner_id, name, description, city, address, amenities, max_guests,
			price, day_tour_price, night_tour_price, overnight_price,
			pricing_config, moderation_status, is_active, created_at, updated_at
		) VALUES (
			:id, :owner_id, :name, :description, :city, :address, :amenities, :max_guests,
			:price, :day_tour_price, :night_tour_price, :overnight_price,
			:pricing_config, :moderation_status, :is_active, :created_at, :updated_at
		)
	`
	_, err := r.db.NamedExecContext(ctx, query, resort)
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Resort, error) {
	query := `SELECT * FROM resorts WHERE id = $1`
	var resort Resort
	err := r.db.GetContext(ctx, &resort, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &resort, nil
}

func (r *repository) Update(ctx context.Context, resort *Resort) error {
	resort.UpdatedAt = time.Now()
	query := `
		UPDATE resorts SET
			name = :name, description = :description, city = :city,
			address = :address, amenities = :amenities, max_guests = :max_guests,
			price = :price, day_tour_price = :day_tour_price,
			night_tour_price = :night_tour_price, overnight_price = :overnight_price,
			is_active = :is_active, updated_at = :updated_at
		WHERE id = :id
	`
	_, err := r.db.NamedExecContext(ctx, query, resort)
	return err
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `UPDATE resorts SET is_active = false, updated_at = NOW() WHERE id = $1`, id)
	return err
}

func (r *repository) ListApproved(ctx context.Context, city string, limit, offset int) ([]*Resort, int, error) {
	where := `moderation_status = 'approved' AND is_active = true`
	args := []interface{}{}
	if city != "" {
		where += ` AND city ILIKE $1`
		args = append(args, city)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM resorts WHERE `+where, args...); err != nil {
		return nil, 0, err
	}

	query := `SELECT * FROM resorts WHERE ` + where + ` ORDER BY created_at DESC`
	if city != "" {
		query += ` LIMIT $2 OFFSET $3`
	} else {
		query += ` LIMIT $1 OFFSET $2`
	}
	args = append(args, limit, offset)

	var resorts []*Resort
	if err := r.db.SelectContext(ctx, &resorts, query, args...); err != nil {
		return nil, 0, err
	}
	return resorts, total, nil
}

func (r *repository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Resort, error) {
	query := `SELECT * FROM resorts WHERE owner_id = $1 ORDER BY created_at DESC`
	var resorts []*Resort
	if err := r.db.SelectContext(ctx, &resorts, query, ownerID); err != nil {
		return nil, err
	}
	return resorts, nil
}

func (r *repository) ListPending(ctx context.Context, limit, offset int) ([]*Resort, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM resorts WHERE moderation_status = 'pending'`); err != nil {
		return nil, 0, err
	}

	query := `SELECT * FROM resorts WHERE moderation_status = 'pending' ORDER BY created_at ASC LIMIT $1 OFFSET $2`
	var resorts []*Resort
	if err := r.db.SelectContext(ctx, &resorts, query, limit, offset); err != nil {
		return nil, 0, err
	}
	return resorts, total, nil
}

func (r *repository) UpdatePricingConfig(ctx context.Context, id uuid.UUID, cfg ConfigColumn) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE resorts SET pricing_config = $1, updated_at = NOW() WHERE id = $2`, cfg, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrResortNotFound
	}
	return nil
}

func (r *repository) UpdateModeration(ctx context.Context, id uuid.UUID, status ModerationStatus, reason string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE resorts SET moderation_status = $1, rejection_reason = NULLIF($2, ''), updated_at = NOW() WHERE id = $3`,
		status, reason, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrResortNotFound
	}
	return nil
}
