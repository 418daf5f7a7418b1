package availability

import (
	"context"
	"encoding/json"
	"time"

	bookingRepo "docportal/database/repository/booking"
	catalogRepo "docportal/database/repository/catalog"
	"docportal/models"
	"docportal/utils"

	"go.uber.org/zap"
)

const (
	cacheTTL            = 2 * time.Minute
	specialtiesTTL      = 10 * time.Minute
	specialtiesCacheKey = "specialties"
)

// CacheKey returns the cache key holding the availability payload for a date.
// The admission controller deletes this key after every accepted booking.
func CacheKey(date string) string {
	return "availability:" + date
}

// DefaultService computes availability from the catalog and booking repos,
// with a read-through redis cache in front.
type DefaultService struct {
	Catalog  catalogRepo.CatalogRepository
	Bookings bookingRepo.BookingRepository
	Cache    utils.Cache
	Logger   *zap.Logger
}

// OptionsForDate reads the catalog and the date's bookings and merges them
// into the remaining open slots per treatment. Cache failures are logged and
// bypassed; the stores stay authoritative.
func (s *DefaultService) OptionsForDate(ctx context.Context, date string) ([]models.AppointmentOption, error) {
	if cached, err := s.Cache.Get(ctx, CacheKey(date)); err == nil {
		var opts []models.AppointmentOption
		if err := json.Unmarshal([]byte(cached), &opts); err == nil {
			return opts, nil
		}
		s.Logger.Warn("discarding undecodable availability cache entry", zap.String("date", date))
	} else if err != utils.ErrCacheMiss {
		s.Logger.Warn("availability cache read failed", zap.Error(err))
	}

	catalog, err := s.Catalog.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	bookings, err := s.Bookings.GetByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	open := ComputeOpenSlots(date, catalog, bookings)

	if payload, err := json.Marshal(open); err == nil {
		if err := s.Cache.Set(ctx, CacheKey(date), string(payload), cacheTTL); err != nil {
			s.Logger.Warn("availability cache write failed", zap.Error(err))
		}
	}

	return open, nil
}

// Specialties returns the distinct treatment names. The catalog is immutable
// reference data, so a longer TTL is fine.
func (s *DefaultService) Specialties(ctx context.Context) ([]models.Specialty, error) {
	if cached, err := s.Cache.Get(ctx, specialtiesCacheKey); err == nil {
		var specialties []models.Specialty
		if err := json.Unmarshal([]byte(cached), &specialties); err == nil {
			return specialties, nil
		}
	}

	specialties, err := s.Catalog.GetSpecialties(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(specialties); err == nil {
		if err := s.Cache.Set(ctx, specialtiesCacheKey, string(payload), specialtiesTTL); err != nil {
			s.Logger.Warn("specialties cache write failed", zap.Error(err))
		}
	}

	return specialties, nil
}
