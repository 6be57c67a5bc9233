// Package cache holds read-through caches that sit in front of the database repositories.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/jewellery_billing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/jewellery_billing_app/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
)

const rateKeyPrefix = "rates:"

// CachedRateRepository caches the rates recorded for a date in Redis.
// Redis failures are logged and the call falls through to the wrapped repository.
type CachedRateRepository struct {
	portsrepo.RateRepositoryFacade
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedRateRepository wraps inner with a Redis cache of per-date rate sets.
func NewCachedRateRepository(inner portsrepo.RateRepositoryFacade, client *redis.Client, ttl time.Duration, logger *slog.Logger) *CachedRateRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &CachedRateRepository{
		RateRepositoryFacade: inner,
		client:               client,
		ttl:                  ttl,
		logger:               logger.With(slog.String("component", "rate_cache")),
	}
}

func rateKey(date time.Time) string {
	return rateKeyPrefix + date.Format("2006-01-02")
}

// FindRatesForDate serves the date's rates from Redis, loading and storing them on a miss.
func (c *CachedRateRepository) FindRatesForDate(ctx context.Context, date time.Time) ([]domain.Rate, error) {
	key := rateKey(date)

	data, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var rates []domain.Rate
		jsonErr := json.Unmarshal(data, &rates)
		if jsonErr == nil {
			return rates, nil
		}
		c.logger.WarnContext(ctx, "Discarding undecodable cached rates", slog.String("key", key), slog.String("error", jsonErr.Error()))
	case errors.Is(err, redis.Nil):
	default:
		c.logger.WarnContext(ctx, "Rate cache read failed", slog.String("key", key), slog.String("error", err.Error()))
	}

	rates, err := c.RateRepositoryFacade.FindRatesForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(rates)
	if err != nil {
		c.logger.WarnContext(ctx, "Failed to encode rates for cache", slog.String("key", key), slog.String("error", err.Error()))
		return rates, nil
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "Rate cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
	return rates, nil
}

// SaveRate persists the rate and drops the cached set for its date.
func (c *CachedRateRepository) SaveRate(ctx context.Context, rate domain.Rate) error {
	if err := c.RateRepositoryFacade.SaveRate(ctx, rate); err != nil {
		return err
	}
	key := rateKey(rate.DateEffective)
	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.logger.WarnContext(ctx, "Rate cache invalidation failed", slog.String("key", key), slog.String("error", err.Error()))
	}
	return nil
}
