package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/SscSPs/money_tracker/internal/core/services"
	"github.com/SscSPs/money_tracker/internal/handlers"
	"github.com/SscSPs/money_tracker/internal/middleware"
	"github.com/SscSPs/money_tracker/internal/platform/config"
	"github.com/SscSPs/money_tracker/internal/repositories/database/pgsql"
	"github.com/SscSPs/money_tracker/internal/utils"
	"github.com/SscSPs/money_tracker/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

// @title Money Tracker API
// @version 1.0
// @description Multi-currency income, expense and budget tracking.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfg    *config.Config
		logger *slog.Logger
	)

	root := &cobra.Command{
		Use:           "money_tracker",
		Short:         "Multi-currency finance tracker API",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			logger = newLogger(cfg.LogLevel)
			slog.SetDefault(logger)
			return nil
		},
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run migrations and start the HTTP server",
			RunE: func(cmd *cobra.Command, args []string) error {
				return serve(cmd.Context(), cfg, logger)
			},
		},
		newMigrateCmd(func() *config.Config { return cfg }, func() *slog.Logger { return logger }),
		&cobra.Command{
			Use:   "token <userID>",
			Short: "Issue a signed JWT for a user (local development)",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				userID, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil || userID <= 0 {
					return fmt.Errorf("invalid user ID '%s'", args[0])
				}
				token, err := utils.GenerateJWT(userID, cfg.JWTSecret, cfg.JWTExpiryDuration, cfg.JWTIssuer)
				if err != nil {
					return fmt.Errorf("failed to sign token: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), token)
				return nil
			},
		},
	)
	return root
}

func newMigrateCmd(cfg func() *config.Config, logger func() *slog.Logger) *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back database migrations",
	}
	for _, dir := range []database.Direction{database.Up, database.Down} {
		migrateCmd.AddCommand(&cobra.Command{
			Use:   string(dir),
			Short: fmt.Sprintf("Migrate %s", dir),
			RunE: func(cmd *cobra.Command, args []string) error {
				changed, err := database.RunMigrations(cfg().DatabaseURL, cfg().MigrationsPath, dir)
				if err != nil {
					return err
				}
				logger().Info("Migrations finished", slog.String("direction", string(dir)), slog.Bool("changed", changed))
				return nil
			},
		})
	}
	return migrateCmd
}

func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...")
	changed, err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, database.Up)
	if err != nil {
		return err
	}
	if changed {
		logger.Info("Database migrations applied successfully.")
	} else {
		logger.Info("No new migrations to apply.")
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return fmt.Errorf("failed to initialize database pool: %w", err)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	if err := r.SetTrustedProxies(nil); err != nil {
		return fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		return fmt.Errorf("invalid RATE_LIMIT '%s': %w", cfg.RateLimit, err)
	}

	container := services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(dbPool))
	handlers.RegisterRoutes(r, cfg, container, rateLimiter)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed to run: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
