package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/campus-dev/coursehub-api/internal/dto"
)

const courseListCacheKey = "courses:all"

// CourseListCache keeps the rendered course listing in Redis. Any write that
// changes what the listing shows must invalidate it. A nil client disables
// caching entirely.
type CourseListCache struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// NewCourseListCache constructs the cache wrapper.
func NewCourseListCache(client *redis.Client, ttl time.Duration, logger zerolog.Logger) *CourseListCache {
	return &CourseListCache{
		client: client,
		ttl:    ttl,
		logger: logger.With().Str("component", "course_list_cache").Logger(),
	}
}

// Get returns the cached listing and whether it was present.
func (c *CourseListCache) Get(ctx context.Context) ([]dto.CourseSummary, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	cached, err := c.client.Get(ctx, courseListCacheKey).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn().Err(err).Msg("failed to read course list cache")
		}
		return nil, false
	}

	var courses []dto.CourseSummary
	if err := json.Unmarshal([]byte(cached), &courses); err != nil {
		return nil, false
	}

	c.logger.Debug().Msg("course list cache hit")

	return courses, true
}

// Set stores the rendered listing. Failures are logged and swallowed; the
// cache is never allowed to fail a request.
func (c *CourseListCache) Set(ctx context.Context, courses []dto.CourseSummary) {
	if c == nil || c.client == nil {
		return
	}

	payload, err := json.Marshal(courses)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, courseListCacheKey, payload, c.ttl).Err(); err != nil {
		c.logger.Warn().Err(err).Msg("failed to store course list cache")
	}
}

// Invalidate drops the cached listing.
func (c *CourseListCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}

	if err := c.client.Del(ctx, courseListCacheKey).Err(); err != nil {
		c.logger.Warn().Err(err).Msg("failed to invalidate course list cache")
	}
}
