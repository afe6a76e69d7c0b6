package resort

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/resortify/resortify-api/internal/domain/pricing"
)

const (
	resortCacheKeyPrefix = "resort:"
	resortCacheTTL       = 5 * time.Minute
)

// Service handles resort business logic
type Service struct {
	repo  Repository
	redis *redis.Client
}

// NewService creates resort service. redis may be nil.
func NewService(repo Repository, rdb *redis.Client) *Service {
	return &Service{repo: repo, redis: rdb}
}

// Create registers a new resort for an owner; it starts in pending
// moderation and is invisible to guests until approved.
func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, req *CreateResortRequest) (*Resort, error) {
	now := time.Now()
	r := &Resort{
		ID:               uuid.New(),
		OwnerID:          ownerID,
		Name:             req.Name,
		Description:      req.Description,
		City:             req.City,
		Amenities:        req.Amenities,
		ModerationStatus: ModerationPending,
		IsActive:         true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if req.Address != "" {
		r.Address = sql.NullString{String: req.Address, Valid: true}
	}
	if req.MaxGuests > 0 {
		r.MaxGuests = sql.NullInt32{Int32: int32(req.MaxGuests), Valid: true}
	}
	setLegacyPrice(&r.Price, req.Price)
	setLegacyPrice(&r.DayTourPrice, req.DayTourPrice)
	setLegacyPrice(&r.NightTourPrice, req.NightTourPrice)
	setLegacyPrice(&r.OvernightPrice, req.OvernightPrice)

	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// GetByID returns a resort by id, going through the cache
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Resort, error) {
	if r, ok := s.cached(ctx, id); ok {
		return r, nil
	}

	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, ErrResortNotFound
	}

	s.cache(ctx, r)
	return r, nil
}

// GetPublic returns an approved active resort for guest-facing reads
func (s *Service) GetPublic(ctx context.Context, id uuid.UUID) (*Resort, error) {
	r, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !r.IsApproved() || !r.IsActive {
		return nil, ErrResortNotFound
	}
	return r, nil
}

// GetOwned returns a resort after verifying ownership
func (s *Service) GetOwned(ctx context.Context, ownerID, id uuid.UUID) (*Resort, error) {
	r, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !r.CanBeEditedBy(ownerID) {
		return nil, ErrNotOwner
	}
	return r, nil
}

// Update applies a partial update after an ownership check
func (s *Service) Update(ctx context.Context, ownerID, id uuid.UUID, req *UpdateResortRequest) (*Resort, error) {
	r, err := s.GetOwned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		r.Name = *req.Name
	}
	if req.Description != nil {
		r.Description = *req.Description
	}
	if req.City != nil {
		r.City = *req.City
	}
	if req.Address != nil {
		r.Address = sql.NullString{String: *req.Address, Valid: *req.Address != ""}
	}
	if req.Amenities != nil {
		r.Amenities = req.Amenities
	}
	if req.MaxGuests != nil {
		r.MaxGuests = sql.NullInt32{Int32: int32(*req.MaxGuests), Valid: true}
	}
	setLegacyPrice(&r.Price, req.Price)
	setLegacyPrice(&r.DayTourPrice, req.DayTourPrice)
	setLegacyPrice(&r.NightTourPrice, req.NightTourPrice)
	setLegacyPrice(&r.OvernightPrice, req.OvernightPrice)

	if err := s.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return r, nil
}

// Delete deactivates a resort after an ownership check
func (s *Service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if _, err := s.GetOwned(ctx, ownerID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

// ListApproved lists guest-visible resorts
func (s *Service) ListApproved(ctx context.Context, city string, limit, offset int) ([]*Resort, int, error) {
	return s.repo.ListApproved(ctx, city, limit, offset)
}

// ListByOwner lists all of an owner's resorts regardless of status
func (s *Service) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Resort, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// ListPending lists resorts awaiting moderation
func (s *Service) ListPending(ctx context.Context, limit, offset int) ([]*Resort, int, error) {
	return s.repo.ListPending(ctx, limit, offset)
}

// Moderate approves or rejects a pending resort
func (s *Service) Moderate(ctx context.Context, id uuid.UUID, status ModerationStatus, reason string) error {
	r, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if r.ModerationStatus != ModerationPending {
		return ErrAlreadyModerated
	}
	if err := s.repo.UpdateModeration(ctx, id, status, reason); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

// GetPricingConfig returns the stored config plus the completeness
// advisory and overlap warnings for the owner's editor
func (s *Service) GetPricingConfig(ctx context.Context, ownerID, id uuid.UUID) (*SaveConfigResponse, error) {
	r, err := s.GetOwned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	cfg := r.PricingConfig.Config
	resp := &SaveConfigResponse{
		Config:       cfg,
		Completeness: pricing.ConfigCompleteness(cfg),
	}
	if cfg != nil {
		resp.Warnings = pricing.TierOverlapWarnings(cfg.GuestTiers)
	}
	return resp, nil
}

// SavePricingConfig validates and persists an owner's pricing
// configuration. Field errors refuse the save entirely; tier overlaps
// and incomplete pricing come back as warnings/advisories on success.
func (s *Service) SavePricingConfig(ctx context.Context, ownerID, id uuid.UUID, cfg *pricing.ResortPricingConfig) (*SaveConfigResponse, map[string]string, error) {
	if _, err := s.GetOwned(ctx, ownerID, id); err != nil {
		return nil, nil, err
	}

	cfg.Prune()
	if errs := pricing.ValidateConfig(cfg); errs != nil {
		return nil, errs, nil
	}

	if err := s.repo.UpdatePricingConfig(ctx, id, ConfigColumn{Config: cfg}); err != nil {
		return nil, nil, err
	}
	s.invalidate(ctx, id)

	return &SaveConfigResponse{
		Config:       cfg,
		Completeness: pricing.ConfigCompleteness(cfg),
		Warnings:     pricing.TierOverlapWarnings(cfg.GuestTiers),
	}, nil, nil
}

func setLegacyPrice(dst *sql.NullFloat64, src *float64) {
	if src != nil {
		*dst = sql.NullFloat64{Float64: *src, Valid: true}
	}
}

func (s *Service) cached(ctx context.Context, id uuid.UUID) (*Resort, bool) {
	if s.redis == nil {
		return nil, false
	}
	raw, err := s.redis.Get(ctx, resortCacheKeyPrefix+id.String()).Bytes()
	if err != nil {
		return nil, false
	}
	var r Resort
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, false
	}
	return &r, true
}

func (s *Service) cache(ctx context.Context, r *Resort) {
	if s.redis == nil {
		return
	}
	raw, err := json.Marshal(r)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, resortCacheKeyPrefix+r.ID.String(), raw, resortCacheTTL).Err(); err != nil {
		log.Warn().Err(err).Str("resort_id", r.ID.String()).Msg("Failed to cache resort")
	}
}

func (s *Service) invalidate(ctx context.Context, id uuid.UUID) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Del(ctx, resortCacheKeyPrefix+id.String()).Err(); err != nil {
		log.Warn().Err(err).Str("resort_id", id.String()).Msg("Failed to invalidate resort cache")
	}
}
