package cachecompliancerepo

import (
	"context"
	"time"

	cacherepo "compliancedesk/internal/repositories/cache"
)

// Calendars are cheap to rebuild and date sensitive, so the TTL here is
// expected to be short.
type repository struct {
	cache       cacherepo.Cache
	calendarTTL time.Duration
}

func New(cache cacherepo.Cache, calendarTTL time.Duration) *repository {
	return &repository{
		cache:       cache,
		calendarTTL: calendarTTL,
	}
}

func (r *repository) Get(ctx context.Context, key string) (string, error) {
	eventsJSON, err := r.cache.Get(ctx, key).Result()
	if err != nil {
		return "", err
	}

	return eventsJSON, nil
}

func (r *repository) Set(ctx context.Context, key string, value interface{}) error {
	return r.cache.Set(ctx, key, value, r.calendarTTL).Err()
}

func (r *repository) Del(ctx context.Context, keys ...string) error {
	return r.cache.Del(ctx, keys...).Err()
}
