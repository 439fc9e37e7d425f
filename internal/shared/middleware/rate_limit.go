package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"todo-backend/internal/infrastructure/cache"
	"todo-backend/internal/shared/response"
)

// RateLimit is a fixed-window per-client-IP limiter backed by Redis.
// When Redis is unreachable the request is let through; availability of the
// API is worth more than the limit.
func RateLimit(redis *cache.RedisClient, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:%s", c.ClientIP())

		count, err := redis.Client.Incr(c.Request.Context(), key).Result()
		if err != nil {
			log.Warn().Err(err).Msg("rate limiter unavailable, allowing request")
			c.Next()
			return
		}
		if count == 1 {
			redis.Client.Expire(c.Request.Context(), key, window)
		}

		if count > int64(limit) {
			response.TooManyRequests(c, "Rate limit exceeded, slow down")
			c.Abort()
			return
		}

		c.Next()
	}
}
