package employee

import (
	"encoding/json"
	"net/http"
	"time"

	"go-talent/internal/domain"
	"go-talent/internal/shared/apperror"
	"go-talent/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	rdb     *redis.Client
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, logger: l}
}

// NewHandlerWithRedis enables caching of create responses for the
// idempotency middleware.
func NewHandlerWithRedis(service Service, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	h := NewHandler(service, logger...)
	h.rdb = rdb
	return h
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	fields := []zap.Field{
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	}
	switch {
	case httpErr.Status >= http.StatusInternalServerError:
		h.logger.Error("employee request failed", fields...)
	case httpErr.Status == http.StatusNotFound:
		h.logger.Debug("employee request failed", fields...)
	default:
		h.logger.Warn("employee request failed", fields...)
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Field)
}

func (h *Handler) GetAll(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) GetById(c *gin.Context) {
	id := c.Param("id")
	h.logger.Debug("http get employee by id", zap.String("employee_id", id))

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Create(c *gin.Context) {
	lockKey, _ := c.Get("idempotency_lock_key")
	cacheKey, _ := c.Get("idempotency_cache_key")

	if h.rdb != nil {
		if lk, ok := lockKey.(string); ok && lk != "" {
			defer h.rdb.Del(c.Request.Context(), lk)
		}
	}

	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create employee validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if h.rdb != nil {
		if ck, ok := cacheKey.(string); ok && ck != "" {
			if payload, marshalErr := json.Marshal(resp); marshalErr == nil {
				_ = h.rdb.Set(c.Request.Context(), ck, payload, 24*time.Hour).Err()
			}
		}
	}

	response.Success(c, http.StatusCreated, resp)
}

func (h *Handler) GetFormOptions(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.FormOptions(c.Request.Context()))
}

// parseFilter reads the optional filter parameters. A parameter given more
// than once, or in array form (name[]=x), is rejected.
func parseFilter(c *gin.Context) (domain.EmployeeFilter, error) {
	query := c.Request.URL.Query()
	values := make(map[string]string, len(filterParams))
	for _, param := range filterParams {
		if _, isArray := query[param+"[]"]; isArray {
			return domain.EmployeeFilter{}, singleValueError(param)
		}
		vs := query[param]
		if len(vs) > 1 {
			return domain.EmployeeFilter{}, singleValueError(param)
		}
		if len(vs) == 1 {
			values[param] = vs[0]
		}
	}
	return domain.EmployeeFilter{
		Name:        values["name"],
		Affiliation: values["affiliation"],
		Post:        values["post"],
		Skill:       values["skill"],
	}, nil
}
