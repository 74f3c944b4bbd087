package middleware

import (
	"bytes"
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

const (
	// IdempotencyHeader is the standard HTTP header for idempotency keys
	IdempotencyHeader = "Idempotency-Key"

	// IdempotencyCacheTTL defines how long responses are cached in Redis
	IdempotencyCacheTTL = 24 * time.Hour

	// LockTimeout prevents indefinite locks if a request crashes
	LockTimeout = 10 * time.Second

	redisKeyPrefix = "idempotency:"
	lockKeyPrefix  = "lock:"
)

// bodyCaptureWriter tees the response body so 2xx results can be cached.
type bodyCaptureWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bodyCaptureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the cached response for a repeated Idempotency-Key, so
// a retried accept or manual settlement cannot double-write. Requests
// without the header pass through untouched.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempotencyKey := c.GetHeader(IdempotencyHeader)
		if idempotencyKey == "" {
			c.Next()
			return
		}

		ctx := context.Background()
		cacheKey := redisKeyPrefix + idempotencyKey
		lockKey := lockKeyPrefix + idempotencyKey

		cached, err := rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			c.Header("X-Idempotency-Hit", "true")
			c.Data(http.StatusOK, "application/json", []byte(cached))
			c.Abort()
			return
		}

		acquired, err := rdb.SetNX(ctx, lockKey, "processing", LockTimeout).Result()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "idempotency store unavailable"})
			c.Abort()
			return
		}
		if !acquired {
			c.JSON(http.StatusConflict, gin.H{"error": "a request with this idempotency key is currently being processed"})
			c.Abort()
			return
		}
		defer func() {
			if err := rdb.Del(ctx, lockKey).Err(); err != nil {
				log.Printf("failed to release idempotency lock: %v", err)
			}
		}()

		writer := &bodyCaptureWriter{ResponseWriter: c.Writer}
		c.Writer = writer
		c.Next()

		status := writer.Status()
		if status >= 200 && status < 300 {
			if err := rdb.Set(ctx, cacheKey, writer.body.String(), IdempotencyCacheTTL).Err(); err != nil {
				log.Printf("failed to cache idempotent response: %v", err)
			}
		}
	}
}
