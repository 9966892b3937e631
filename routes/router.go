package routes

import (
	"estatehub/internal/handlers"
	"estatehub/internal/middleware"
	"estatehub/internal/repositories/interfaces"
	"estatehub/internal/services"
	"estatehub/pkg/auth"
	"estatehub/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Dependencies are the process-scoped resources the router is built from.
type Dependencies struct {
	Properties     interfaces.PropertyRepository
	Reviews        interfaces.ReviewRepository
	Testimonials   interfaces.TestimonialRepository
	Verifier       auth.TokenVerifier
	Store          handlers.Pinger
	Logger         *logger.Logger
	Metrics        *middleware.Metrics
	AllowedOrigins []string
	TrustedProxies []string
	Version        string
}

func NewRouter(deps Dependencies) (*gin.Engine, error) {
	log := deps.Logger
	if log == nil {
		log = logger.NewNop()
	}
	audit := logger.NewAuditLogger(log)

	propertyHandler := handlers.NewPropertyHandler(services.NewPropertyService(deps.Properties, audit))
	reviewHandler := handlers.NewReviewHandler(services.NewReviewService(deps.Reviews, deps.Properties, audit))
	testimonialHandler := handlers.NewTestimonialHandler(services.NewTestimonialService(deps.Testimonials, audit))
	healthHandler := handlers.NewHealthHandler(deps.Store, deps.Version)

	router := gin.New()
	if err := router.SetTrustedProxies(deps.TrustedProxies); err != nil {
		return nil, err
	}

	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware(deps.AllowedOrigins))
	router.Use(middleware.LoggingMiddleware(log))
	if deps.Metrics != nil {
		router.Use(deps.Metrics.Middleware())
		router.GET("/metrics", deps.Metrics.Handler())
	}

	router.GET("/", healthHandler.Root)
	router.GET("/health", healthHandler.Health)

	requireAuth := middleware.AuthRequired(deps.Verifier, log)
	SetupPropertyRoutes(router, propertyHandler, requireAuth)
	SetupReviewRoutes(router, reviewHandler, requireAuth)
	SetupTestimonialRoutes(router, testimonialHandler, requireAuth)

	return router, nil
}
