package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"estatehub/internal/config"
	"estatehub/internal/middleware"
	"estatehub/internal/repositories/mongodb"
	"estatehub/pkg/auth"
	"estatehub/pkg/database"
	"estatehub/pkg/logger"
	"estatehub/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(&logger.Config{
		Level:   logger.LogLevel(cfg.App.LogLevel),
		Format:  cfg.App.LogFormat,
		AppName: cfg.App.Name,
		Version: cfg.App.Version,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewMongoDB(ctx, &database.DatabaseConfig{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to MongoDB")
	}
	appLogger.WithField("database", cfg.Database.Database).Info("Connected to MongoDB")

	if err := database.NewMigrator(db.Database, appLogger).Up(ctx); err != nil {
		appLogger.WithError(err).Fatal("Failed to run migrations")
	}

	verifier, err := newVerifier(ctx, cfg.Auth)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to initialize token verifier")
	}

	router, err := routes.NewRouter(routes.Dependencies{
		Properties:     mongodb.NewPropertyRepository(db.Database),
		Reviews:        mongodb.NewReviewRepository(db.Database),
		Testimonials:   mongodb.NewTestimonialRepository(db.Database),
		Verifier:       verifier,
		Store:          db,
		Logger:         appLogger,
		Metrics:        middleware.NewMetrics("estatehub"),
		AllowedOrigins: cfg.Security.CORSAllowedOrigins,
		TrustedProxies: cfg.Security.TrustedProxies,
		Version:        cfg.App.Version,
	})
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to build router")
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		appLogger.WithField("port", cfg.App.Port).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.WithError(err).Fatal("Server failed")
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.WithError(err).Error("Server shutdown failed")
	}
	if err := db.Close(shutdownCtx); err != nil {
		appLogger.WithError(err).Error("Failed to disconnect from MongoDB")
	}
}

func newVerifier(ctx context.Context, cfg *config.AuthConfig) (auth.TokenVerifier, error) {
	switch cfg.Provider {
	case config.AuthProviderJWT:
		return auth.NewJWTVerifier(cfg.JWTSecret, cfg.JWTIssuer)
	default:
		return auth.NewFirebaseVerifier(ctx, cfg.CredentialsFile, cfg.ProjectID)
	}
}
