package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abcclinic/clinic/internal/clinic"
	"github.com/abcclinic/clinic/internal/config"
	"github.com/abcclinic/clinic/internal/domain/admin"
	"github.com/abcclinic/clinic/internal/domain/booking"
	"github.com/abcclinic/clinic/internal/domain/diagnostics"
	"github.com/abcclinic/clinic/internal/domain/prescriptions"
	"github.com/abcclinic/clinic/internal/platform/auth"
	"github.com/abcclinic/clinic/internal/platform/db"
	"github.com/abcclinic/clinic/internal/platform/middleware"
	"github.com/abcclinic/clinic/internal/platform/telemetry"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "clinic-server",
		Short: "ABC Clinic booking and admin API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(adminCmd())

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

func adminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage admin credentials",
	}

	hashCmd := &cobra.Command{
		Use:   "hash",
		Short: "Hash a password for the ADMIN_USERS list",
		RunE: func(cmd *cobra.Command, args []string) error {
			password, _ := cmd.Flags().GetString("password")
			if password == "" {
				return fmt.Errorf("--password is required")
			}
			hash, err := auth.HashPassword(password)
			if err != nil {
				return err
			}
			fmt.Println(hash)
			return nil
		},
	}
	hashCmd.Flags().String("password", "", "Password to hash")
	cmd.AddCommand(hashCmd)

	return cmd
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

	// Database
	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	logger.Info().Msg("connected to database")

	// Telemetry
	metrics := telemetry.NewProvider("clinic-server")

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(metrics.MetricsMiddleware())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// Auth
	adminUsers, err := cfg.AdminUsers()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid admin user list")
	}
	creds := make([]auth.Credential, len(adminUsers))
	for i, u := range adminUsers {
		creds[i] = auth.Credential{Username: u.Username, Password: u.Password}
	}
	verifier := auth.NewVerifier(creds)
	issuer := auth.NewTokenIssuer(cfg.AdminTokenSecret, time.Duration(cfg.AdminTokenTTL)*time.Minute)

	// API groups
	apiV1 := e.Group("/api/v1")
	adminGroup := apiV1.Group("/admin", auth.RequireAdmin(issuer))

	// Static site content
	catalog := clinic.Default()
	clinic.NewHandler(catalog).RegisterRoutes(apiV1)

	// Prescriptions
	rxRepo := prescriptions.NewPrescriptionRepoPG(pool)
	rxSvc := prescriptions.NewService(rxRepo)
	rxSvc.SetMetrics(metrics)
	prescriptions.NewHandler(rxSvc).RegisterRoutes(apiV1, adminGroup)

	// Appointments
	apptRepo := booking.NewAppointmentRepoPG(pool)
	apptSvc := booking.NewService(apptRepo, catalog)
	apptSvc.SetMetrics(metrics)
	booking.NewHandler(apptSvc).RegisterRoutes(apiV1, adminGroup)

	// Diagnostic bookings
	labRepo := diagnostics.NewBookingRepoPG(pool)
	labSvc := diagnostics.NewService(labRepo, catalog)
	labSvc.SetMetrics(metrics)
	diagnostics.NewHandler(labSvc).RegisterRoutes(apiV1, adminGroup)

	// Admin login and dashboard
	adminSvc := admin.NewService(rxRepo, apptRepo, labRepo)
	admin.NewHandler(adminSvc, verifier, issuer, logger).RegisterRoutes(apiV1, adminGroup)

	// Health and metrics
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})
	e.GET("/health/db", db.HealthHandler(pool))
	e.GET("/metrics", metrics.PrometheusHandler())

	// Pool gauges for the metrics endpoint
	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			stats := pool.Stat()
			metrics.SetGauge("db.pool.active_connections", int64(stats.AcquiredConns()))
			metrics.SetGauge("db.pool.idle_connections", int64(stats.IdleConns()))
		}
	}()

	// Graceful shutdown
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
