package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/raul0r/Gestor-Medico/internal/config"
	"github.com/raul0r/Gestor-Medico/internal/domain/billing"
	"github.com/raul0r/Gestor-Medico/internal/domain/catalog"
	"github.com/raul0r/Gestor-Medico/internal/domain/patient"
	"github.com/raul0r/Gestor-Medico/internal/domain/scheduling"
	"github.com/raul0r/Gestor-Medico/internal/platform/blobstore"
	"github.com/raul0r/Gestor-Medico/internal/platform/middleware"
	"github.com/raul0r/Gestor-Medico/internal/platform/seed"
)

const version = "0.1.0"

// BlobFileStore adapts a blobstore.Store to the patient.FileStore interface,
// turning stored blob IDs into download URLs served by this process.
type BlobFileStore struct {
	store blobstore.Store
}

func NewBlobFileStore(store blobstore.Store) *BlobFileStore {
	return &BlobFileStore{store: store}
}

// Put implements patient.FileStore.
func (b *BlobFileStore) Put(ctx context.Context, name, contentType string, r io.Reader) (string, error) {
	meta, err := b.store.Put(ctx, name, contentType, r)
	if err != nil {
		return "", err
	}
	return "/api/v1/files/" + meta.ID.String(), nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "gestor-server",
		Short: "Clinic front-office API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the clinic API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the server version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	loc, err := cfg.Location()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to resolve clinic timezone")
	}

	// Repositories. Everything lives in memory; the process owns the data for
	// the lifetime of the session.
	patientRepo := patient.NewMemRepo()
	serviceRepo := catalog.NewMemServiceRepo()
	apptRepo := scheduling.NewMemRepo()
	blobs := blobstore.NewMemory(cfg.MaxUploadBytes)

	if cfg.SeedDemoData {
		err := seed.Load(context.Background(), seed.Repos{
			Patients:     patientRepo,
			Services:     serviceRepo,
			Appointments: apptRepo,
		}, loc)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to seed demo data")
		}
		logger.Info().Msg("demo data loaded")
	}

	// Services
	patientSvc := patient.NewService(patientRepo)
	catalogSvc := catalog.NewCatalog(serviceRepo)
	schedSvc := scheduling.NewService(apptRepo, patientRepo, serviceRepo, loc)
	billingSvc := billing.NewService(apptRepo, serviceRepo, loc)

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Content-Type", "X-Request-ID"},
	}))

	apiV1 := e.Group("/api/v1")

	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}
	apiV1.Use(middleware.RateLimit(rateLimitCfg))

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": version,
		})
	})

	// Domain handlers
	patient.NewHandler(patientSvc, NewBlobFileStore(blobs), cfg.MaxUploadBytes).RegisterRoutes(apiV1)
	catalog.NewHandler(catalogSvc).RegisterRoutes(apiV1)
	scheduling.NewHandler(schedSvc, cfg.DayStartHour).RegisterRoutes(apiV1)
	billing.NewHandler(billingSvc, loc).RegisterRoutes(apiV1)
	blobstore.NewHandler(blobs).RegisterRoutes(apiV1)

	// Start server
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server stopped")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("forced shutdown")
		return err
	}
	logger.Info().Msg("server stopped cleanly")
	return nil
}
