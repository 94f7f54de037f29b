package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go-talent/internal/shared/apperror"
	"go-talent/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const IdempotencyHeader = "Idempotency-Key"

// Idempotency replays the stored response for a repeated POST carrying the
// same Idempotency-Key and rejects a duplicate that arrives while the first
// is still running. The handler stores the response under
// "idempotency_cache_key" and releases "idempotency_lock_key".
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader(IdempotencyHeader)
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), c.ClientIP(), idempKey)
		lockKey := cacheKey + ":lock"

		val, err := rdb.Get(c.Request.Context(), cacheKey).Result()
		if err == nil {
			var cached json.RawMessage
			if json.Unmarshal([]byte(val), &cached) == nil {
				c.Header("Idempotent-Replay", "true")
				c.AbortWithStatusJSON(http.StatusCreated, cached)
				return
			}
		}

		// Short expiry so a crashed request does not hold the key forever.
		isNew, err := rdb.SetNX(c.Request.Context(), lockKey, "locked", 30*time.Second).Result()
		if err != nil {
			// Redis down: fall through without idempotency.
			c.Next()
			return
		}
		if !isNew {
			response.Abort(c, http.StatusConflict, apperror.CodeConflict, "A request with this Idempotency-Key is still being processed")
			return
		}

		c.Set("idempotency_cache_key", cacheKey)
		c.Set("idempotency_lock_key", lockKey)

		c.Next()
	}
}
