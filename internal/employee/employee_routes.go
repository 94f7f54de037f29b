package employee

import (
	"go-talent/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RegisterRoutes mounts the directory API on r (the /api group).
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rdb *redis.Client,
) {
	employees := r.Group("/employees")
	{
		employees.GET("", handler.GetAll)
		employees.GET("/:id", handler.GetById)

		create := []gin.HandlerFunc{middleware.RateLimitByIP(2, 10)}
		if rdb != nil {
			create = append(create, middleware.Idempotency(rdb))
		}
		create = append(create, handler.Create)
		employees.POST("", create...)
	}

	r.GET("/form-options", handler.GetFormOptions)
}
