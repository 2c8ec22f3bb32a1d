package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/evalhub/evalhub/internal/config"
	"github.com/evalhub/evalhub/internal/domain/source"
	"github.com/evalhub/evalhub/internal/domain/task"
	"github.com/evalhub/evalhub/internal/domain/test"
	"github.com/evalhub/evalhub/internal/domain/testrun"
	"github.com/evalhub/evalhub/internal/domain/testset"
	"github.com/evalhub/evalhub/internal/domain/views"
	"github.com/evalhub/evalhub/internal/platform/auth"
	"github.com/evalhub/evalhub/internal/platform/backend"
	"github.com/evalhub/evalhub/internal/platform/db"
	"github.com/evalhub/evalhub/internal/platform/middleware"
	"github.com/evalhub/evalhub/pkg/pagination"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "evalhub-server",
		Short: "Query gateway for the EvalHub test-management backend",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the query gateway server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.DatabaseURL == "" {
				return fmt.Errorf("DATABASE_URL is required for migrations")
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			count, err := migrator.Up(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Printf("Applied %d migration(s) successfully.\n", count)
			return nil
		},
	}
	upCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(upCmd)

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.DatabaseURL == "" {
				return fmt.Errorf("DATABASE_URL is required for migrations")
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			statuses, err := migrator.Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			fmt.Printf("%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
			fmt.Println("---------- ---------------------------------------- ---------- --------------------")
			for _, s := range statuses {
				status := "pending"
				appliedAt := ""
				if s.Applied {
					status = "applied"
					if s.AppliedAt != nil {
						appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
				}
				fmt.Printf("%-10d %-40s %-10s %s\n", s.Version, s.Name, status, appliedAt)
			}
			return nil
		},
	}
	statusCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(statusCmd)

	return cmd
}

func runServer() error {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	pagination.SetMaxLimit(cfg.PageSizeMax)

	bc := backend.NewClient(cfg.BackendBaseURL, logger,
		backend.WithHTTPClient(&http.Client{Timeout: time.Duration(cfg.BackendTimeout) * time.Second}),
		backend.WithToken(cfg.BackendToken),
	)
	logger.Info().Str("backend", cfg.BackendBaseURL).Msg("configured query backend")

	// The database is optional: saved views and the persistent audit trail
	// need it, the query endpoints do not.
	ctx := context.Background()
	var pool *pgxpool.Pool
	if cfg.DatabaseURL != "" {
		pool, err = db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer pool.Close()
		logger.Info().Msg("connected to database")
	} else {
		logger.Warn().Msg("DATABASE_URL not set; saved views disabled")
	}

	e := newRouter(cfg, logger, bc, pool)

	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}

// newRouter assembles the echo instance: middleware chain, health endpoints
// and the /api/v1 route tree. pool may be nil, in which case the saved-views
// routes and the persistent audit recorder are skipped.
func newRouter(cfg *config.Config, logger zerolog.Logger, bc *backend.Client, pool *pgxpool.Pool) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.BodyLimit("1M"))
	e.Use(middleware.RequestTimeout(30 * time.Second))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	if cfg.ResolvedAuthMode() == "development" {
		e.Use(auth.DevAuthMiddleware())
	} else {
		e.Use(auth.JWTMiddleware(auth.JWTConfig{
			Issuer:   cfg.AuthIssuer,
			Audience: cfg.AuthAudience,
			JWKSURL:  cfg.AuthJWKSURL,
		}))
	}

	var recorders []middleware.AuditRecorder
	if pool != nil {
		recorders = append(recorders, middleware.NewPGAuditRecorder(pool))
	}
	e.Use(middleware.Audit(logger, recorders...))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})
	e.GET("/health/backend", func(c echo.Context) error {
		if err := bc.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{
				"status": "unhealthy",
				"error":  err.Error(),
			})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
	})
	if pool != nil {
		e.GET("/health/db", db.HealthHandler(pool))
	}

	apiV1 := e.Group("/api/v1", auth.RequireRole("viewer", "editor"))

	cacheStore := middleware.NewInMemoryCacheStore()
	cacheStore.StartCleanup(context.Background(), time.Minute)
	apiV1.Use(middleware.ResponseCacheMiddleware(cacheStore, 30*time.Second))
	apiV1.Use(middleware.ETagMiddleware(middleware.DefaultCacheConfig()))

	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}
	apiV1.Use(middleware.RateLimit(rateLimitCfg))

	test.RegisterRoutes(apiV1.Group("/tests"), bc, logger)
	task.RegisterRoutes(apiV1.Group("/tasks"), bc, logger)
	testrun.RegisterRoutes(apiV1.Group("/test-runs"), bc, logger)
	testset.RegisterRoutes(apiV1.Group("/test-sets"), bc, logger)
	source.RegisterRoutes(apiV1.Group("/sources"), bc, logger)

	if pool != nil {
		viewsHandler := views.NewHandler(views.NewService(views.NewRepoPG(pool)))
		viewsHandler.RegisterRoutes(apiV1)
	}

	return e
}
