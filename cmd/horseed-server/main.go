package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/xuseen0619585707-eng/horseed-hospital-hms/internal/db"
	"github.com/xuseen0619585707-eng/horseed-hospital-hms/internal/handler"
	"github.com/xuseen0619585707-eng/horseed-hospital-hms/internal/middleware"
	"github.com/xuseen0619585707-eng/horseed-hospital-hms/internal/repository"
	"github.com/xuseen0619585707-eng/horseed-hospital-hms/internal/service"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := godotenv.Load(); err == nil {
		log.Info().Msg("loaded .env")
	} else {
		log.Info().Msg("no .env file found (fine if env is injected)")
	}

	ctx := context.Background()
	pool := mustCreateDBPoolWithRetry(ctx, log)

	if err := db.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("could not ensure schema")
	}

	userRepo := repository.NewUserRepo(pool)
	patientRepo := repository.NewPatientRepo(pool)
	auditRepo := repository.NewAuditRepo(pool)

	authSvc := service.NewAuthService(userRepo)
	patientSvc := service.NewPatientService(patientRepo)

	if err := authSvc.EnsureAdmin(ctx); err != nil {
		log.Fatal().Err(err).Msg("could not seed admin user")
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(cors.Default())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	handler.RegisterAuthRoutes(r, authSvc, auditRepo)
	handler.RegisterPatientRoutes(r, patientSvc, auditRepo)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Info().Str("port", port).Msg("starting server")
	if err := r.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// mustCreateDBPoolWithRetry blocks until the database is ready or exits
// fatally after a few attempts.
func mustCreateDBPoolWithRetry(ctx context.Context, log zerolog.Logger) *pgxpool.Pool {
	const maxAttempts = 5

	var (
		pool *pgxpool.Pool
		err  error
	)

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		pool, err = db.NewPool(ctx)
		if err == nil {
			log.Info().Int("attempt", attempt).Msg("database pool created")
			return pool
		}
		log.Warn().Int("attempt", attempt).Int("max", maxAttempts).Err(err).Msg("database not ready")
		time.Sleep(2 * time.Second)
	}

	log.Fatal().Err(err).Msgf("could not create db pool after %d attempts", maxAttempts)
	return nil // unreachable
}
