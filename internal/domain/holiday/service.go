package holiday

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/resortify/resortify-api/internal/domain/pricing"
)

const (
	calendarCacheKey = "holidays:calendar"
	calendarCacheTTL = time.Hour
)

// Service loads the holiday calendar fed to the day-type classifier.
// The classifier itself never changes when the holiday set does: admins
// extend the table yearly, and the static seed covers a fresh database.
type Service struct {
	repo  Repository
	redis *redis.Client
}

// NewService creates holiday service. redis may be nil.
func NewService(repo Repository, rdb *redis.Client) *Service {
	return &Service{repo: repo, redis: rdb}
}

// Calendar returns the holiday calendar for day-type classification.
// Reads go through Redis when available; an empty table falls back to
// the static seed so pricing keeps working before the first import.
func (s *Service) Calendar(ctx context.Context) (pricing.HolidayCalendar, error) {
	if dates, ok := s.cachedDates(ctx); ok {
		return pricing.NewHolidayCalendar(dates...), nil
	}

	holidays, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	var dates []string
	if len(holidays) == 0 {
		dates = SeedDates()
	} else {
		dates = make([]string, len(holidays))
		for i, h := range holidays {
			dates[i] = h.DateKey()
		}
	}

	s.cacheDates(ctx, dates)
	return pricing.NewHolidayCalendar(dates...), nil
}

// List returns holidays, optionally filtered to one year
func (s *Service) List(ctx context.Context, year int) ([]*Holiday, error) {
	if year > 0 {
		return s.repo.ListYear(ctx, year)
	}
	return s.repo.List(ctx)
}

// Add records a holiday date and invalidates the cached calendar
func (s *Service) Add(ctx context.Context, date, name string, kind Kind) (*Holiday, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if !kind.IsValid() {
		kind = KindRegular
	}

	h := &Holiday{ID: uuid.New(), Date: day, Name: name, Kind: kind}
	if err := s.repo.Create(ctx, h); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return h, nil
}

// Remove deletes a holiday and invalidates the cached calendar
func (s *Service) Remove(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *Service) cachedDates(ctx context.Context) ([]string, bool) {
	if s.redis == nil {
		return nil, false
	}
	raw, err := s.redis.Get(ctx, calendarCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	var dates []string
	if err := json.Unmarshal(raw, &dates); err != nil {
		return nil, false
	}
	return dates, true
}

func (s *Service) cacheDates(ctx context.Context, dates []string) {
	if s.redis == nil {
		return
	}
	raw, err := json.Marshal(dates)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, calendarCacheKey, raw, calendarCacheTTL).Err(); err != nil {
		log.Warn().Err(err).Msg("Failed to cache holiday calendar")
	}
}

func (s *Service) invalidate(ctx context.Context) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Del(ctx, calendarCacheKey).Err(); err != nil {
		log.Warn().Err(err).Msg("Failed to invalidate holiday calendar cache")
	}
}
