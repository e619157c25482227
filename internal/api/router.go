package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/govjobtrack/jobtrack/internal/api/handler"
	"github.com/govjobtrack/jobtrack/internal/api/middleware"
	"github.com/govjobtrack/jobtrack/internal/auth"
	"github.com/govjobtrack/jobtrack/internal/core/domain"
	"github.com/govjobtrack/jobtrack/internal/core/service"
	mongodb "github.com/govjobtrack/jobtrack/internal/infrastructure/db/mongo"
	redisdb "github.com/govjobtrack/jobtrack/internal/infrastructure/db/redis"
	"github.com/govjobtrack/jobtrack/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The role catalog must already be seeded; rdb may be nil, which disables
// the principal cache.
func NewRouter(db *mongo.Database, rdb *redis.Client, catalog *domain.RoleCatalog, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("jobtrack"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db, catalog)
	jobRepo := mongodb.NewJobRepository(db)
	bookmarkRepo := mongodb.NewBookmarkRepository(db)

	codec := auth.NewTokenCodec(auth.DeriveKey(cfg.JWTSecret, log), cfg.TokenTTL)

	var cache auth.PrincipalCache
	if rdb != nil {
		cache = redisdb.NewPrincipalCache(rdb, cfg.RoleCacheTTL)
	}
	resolver := auth.NewResolver(codec, userRepo, cache)
	e.Use(middleware.Authenticate(resolver))

	authHandler := handler.NewAuthHandler(service.NewAuthService(userRepo, codec, log))
	jobHandler := handler.NewJobHandler(service.NewJobService(jobRepo, userRepo, log))
	bookmarkHandler := handler.NewBookmarkHandler(service.NewBookmarkService(bookmarkRepo, jobRepo, log))

	requireAdmin := middleware.Require(auth.Role(domain.RoleAdmin))
	requireUser := middleware.Require(auth.Role(domain.RoleUser))

	// --- Auth routes ---
	v1 := e.Group("/v1")
	v1.POST("/auth/register", authHandler.Register)
	v1.POST("/auth/login", authHandler.Login)

	// --- Job routes: reads are public, writes are admin-only ---
	v1.GET("/jobs", jobHandler.List)
	v1.GET("/jobs/:id", jobHandler.Get)
	v1.POST("/jobs", jobHandler.Create, requireAdmin)
	v1.PUT("/jobs/:id", jobHandler.Update, requireAdmin)
	v1.DELETE("/jobs/:id", jobHandler.Delete, requireAdmin)

	// --- Bookmark routes: user role required ---
	v1.GET("/bookmarks", bookmarkHandler.List, requireUser)
	v1.POST("/bookmarks/jobs/:jobID", bookmarkHandler.Add, requireUser)
	v1.DELETE("/bookmarks/jobs/:jobID", bookmarkHandler.Remove, requireUser)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
