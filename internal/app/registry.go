package app

import (
	"net/http"

	"go-talent/internal/employee"
	"go-talent/internal/formoption"
	"go-talent/internal/middleware"
	"go-talent/internal/shared/apperror"
	"go-talent/internal/shared/idalloc"
	"go-talent/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type moduleDeps struct {
	repo      employee.Repository
	rdb       *redis.Client
	alloc     idalloc.Allocator
	locker    idalloc.Locker
	catalog   *formoption.Catalog
	publisher employee.EventPublisher
	strict    bool
}

func registerModules(router *gin.Engine, deps moduleDeps) {
	logger := zap.L()

	// --- Middleware ---
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.ContextLogger(logger),
		middleware.AccessLog(logger),
		middleware.Metrics(),
	)

	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		response.Error(c, http.StatusMethodNotAllowed,
			apperror.ErrMethodNotAllowed.Code, apperror.ErrMethodNotAllowed.Message, "")
	})
	router.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound,
			apperror.ErrNotFound.Code, apperror.ErrNotFound.Message, "")
	})

	// --- Services ---
	employeeService := employee.NewService(employee.ServiceDeps{
		Repo:          deps.repo,
		Allocator:     deps.alloc,
		Locker:        deps.locker,
		Catalog:       deps.catalog,
		Publisher:     deps.publisher,
		StrictOptions: deps.strict,
	}, logger)

	// --- Handlers ---
	var employeeHandler *employee.Handler
	if deps.rdb != nil {
		employeeHandler = employee.NewHandlerWithRedis(employeeService, deps.rdb, logger)
	} else {
		employeeHandler = employee.NewHandler(employeeService, logger)
	}

	// --- Routes ---
	router.GET("/healthz", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	employee.RegisterRoutes(api, employeeHandler, deps.rdb)
}
