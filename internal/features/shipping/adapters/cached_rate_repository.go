package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"solarmarket-shipping/internal/core/cache"
	"solarmarket-shipping/internal/core/logger"
	"solarmarket-shipping/internal/features/shipping/domain"
	"solarmarket-shipping/internal/features/shipping/ports"

	"go.uber.org/zap"
)

// CachedRateRepository decorates a RateRepository with a per-supplier cache
// of active-rate lists, which are read on every checkout but change rarely.
// Saving a rate busts the owning supplier's cache entry.
type CachedRateRepository struct {
	inner ports.RateRepository
	cache cache.Cache
	ttl   time.Duration
}

// NewCachedRateRepository creates a new CachedRateRepository.
func NewCachedRateRepository(inner ports.RateRepository, c cache.Cache, ttl time.Duration) *CachedRateRepository {
	return &CachedRateRepository{
		inner: inner,
		cache: c,
		ttl:   ttl,
	}
}

func activeRatesKey(supplierID string) string {
	return "active_rates:" + supplierID
}

// GetActiveRates serves from the cache when possible. Cache faults degrade
// to the inner repository; they never fail the calculation.
func (r *CachedRateRepository) GetActiveRates(ctx context.Context, supplierID string) ([]domain.ShippingRate, error) {
	key := activeRatesKey(supplierID)

	data, err := r.cache.Get(ctx, key)
	switch {
	case err == nil:
		var rates []domain.ShippingRate
		if err := json.Unmarshal(data, &rates); err == nil {
			return rates, nil
		}
		logger.Get().Warn("Discarding undecodable rate cache entry",
			zap.String("supplier_id", supplierID),
		)
	case !errors.Is(err, cache.ErrCacheMiss):
		logger.Get().Warn("Rate cache read failed, falling back to store",
			zap.String("supplier_id", supplierID),
			zap.Error(err),
		)
	}

	rates, err := r.inner.GetActiveRates(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(rates); err == nil {
		if err := r.cache.Set(ctx, key, data, r.ttl); err != nil {
			logger.Get().Warn("Failed to cache active rates",
				zap.String("supplier_id", supplierID),
				zap.Error(err),
			)
		}
	}

	return rates, nil
}

// ListBySupplier is an admin path and always reads through.
func (r *CachedRateRepository) ListBySupplier(ctx context.Context, supplierID string) ([]domain.ShippingRate, error) {
	return r.inner.ListBySupplier(ctx, supplierID)
}

// Save persists through the inner repository and invalidates the supplier's
// cached active-rate list.
func (r *CachedRateRepository) Save(ctx context.Context, rate *domain.ShippingRate) error {
	if err := r.inner.Save(ctx, rate); err != nil {
		return err
	}

	if err := r.cache.Delete(ctx, activeRatesKey(rate.SupplierID)); err != nil {
		return fmt.Errorf("rate saved but cache invalidation failed for supplier %s: %w", rate.SupplierID, err)
	}
	return nil
}
