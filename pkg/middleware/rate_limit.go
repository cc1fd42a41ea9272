package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimitMiddleware admits limit requests per caller and route in each
// fixed window. Callers without a token are keyed by client IP. A limit of
// zero or less disables the check.
func RateLimitMiddleware(redisClient *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	if window < time.Second {
		window = time.Second
	}

	return func(c *gin.Context) {
		if limit <= 0 {
			c.Next()
			return
		}

		caller, exists := c.Get(UserIDKey)
		if !exists {
			caller = c.ClientIP()
		}
		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}

		bucket, retryAfter := windowBucket(time.Now(), window)
		key := fmt.Sprintf("rate_limit:%s:%v:%d", route, caller, bucket)

		// The counter and its expiry are written together so a key can never
		// outlive its window.
		ctx := c.Request.Context()
		pipe := redisClient.TxPipeline()
		count := pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, window)
		if _, err := pipe.Exec(ctx); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Rate limit check failed"})
			c.Abort()
			return
		}

		if count.Val() > int64(limit) {
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// windowBucket numbers the window containing now and returns the seconds
// left until it closes.
func windowBucket(now time.Time, window time.Duration) (int64, int64) {
	seconds := int64(window / time.Second)
	unix := now.Unix()
	return unix / seconds, seconds - unix%seconds
}
