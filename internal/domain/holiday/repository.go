package holiday

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines holiday data access
type Repository interface {
	List(ctx context.Context) ([]*Holiday, error)
	ListYear(ctx context.Context, year int) ([]*Holiday, error)
	Create(ctx context.Context, h *Holiday) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates holiday repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]*Holiday, error) {
	query := `SELECT * FROM holidays ORDER BY holiday_date`
	var holidays []*Holiday
	if err := r.db.SelectContext(ctx, &holidays, query); err != nil {
		return nil, err
	}
	return holidays, nil
}

func (r *repository) ListYear(ctx context.Context, year int) ([]*Holiday, error) {
	query := `SELECT * FROM holidays WHERE EXTRACT(YEAR FROM holiday_date) = $1 ORDER BY holiday_date`
	var holidays []*Holiday
	if err := r.db.SelectContext(ctx, &holidays, query, year); err != nil {
		return nil, err
	}
	return holidays, nil
}

func (r *repository) Create(ctx context.Context, h *Holiday) error {
	query := `
		INSERT INTO holidays (id, holiday_date, name, kind, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (holiday_date) DO UPDATE SET name = EXCLUDED.name, kind = EXCLUDED.kind
	`
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	if h.CreatedAt.IsZero() {
		h.CreatedAt = time.Now()
	}
	_, err := r.db.ExecContext(ctx, query, h.ID, h.Date, h.Name, h.Kind, h.CreatedAt)
	return err
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM holidays WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrHolidayNotFound
	}
	return nil
}
