package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/SscSPs/invoice_finance_app/cmd/docs"
	"github.com/SscSPs/invoice_finance_app/internal/adapters/database/memory"
	"github.com/SscSPs/invoice_finance_app/internal/adapters/database/pgsql"
	"github.com/SscSPs/invoice_finance_app/internal/adapters/notification"
	"github.com/SscSPs/invoice_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/invoice_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/invoice_finance_app/internal/core/ports/services"
	"github.com/SscSPs/invoice_finance_app/internal/core/services"
	"github.com/SscSPs/invoice_finance_app/internal/dto"
	"github.com/SscSPs/invoice_finance_app/internal/handlers"
	"github.com/SscSPs/invoice_finance_app/internal/middleware"
	"github.com/SscSPs/invoice_finance_app/internal/platform/config"
	"github.com/SscSPs/invoice_finance_app/internal/platform/metrics"
	"github.com/SscSPs/invoice_finance_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// @title Invoice Finance API
// @version 1.0
// @description Trade invoice financing: invoice lifecycle, credit facilities and the double-entry ledger.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := middleware.WithLogger(context.Background(), logger)

	tm, directory, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to open ledger store", slog.String("driver", cfg.StoreDriver), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()

	chart, err := services.EnsureChartOfAccounts(ctx, tm, cfg.SystemUserID)
	if err != nil {
		logger.Error("Failed to provision chart of accounts", slog.String("error", err.Error()))
		os.Exit(1)
	}

	appMetrics := metrics.New()
	container := services.NewServiceContainer(cfg, services.Dependencies{
		TxManager: tm,
		Directory: directory,
		Notifier:  notification.LogNotifier{},
		Chart:     chart,
		Metrics:   appMetrics,
	})

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		dto.RegisterValidators(v)
	}

	rateLimiter, err := middleware.NewLimiter(cfg.RateLimit, cfg.RedisURL)
	if err != nil {
		logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container, rateLimiter, appMetrics.Handler())

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("store", cfg.StoreDriver))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", slog.String("error", err.Error()))
	}
}

// openStore builds the transaction manager and directory for the configured driver.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.TransactionManager, portssvc.OrganizationDirectory, func(), error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		store := memory.New()
		if cfg.DirectorySeedPath != "" {
			seed, err := config.LoadDirectorySeed(cfg.DirectorySeedPath)
			if err != nil {
				return nil, nil, nil, err
			}
			seedDirectory(store, seed)
			logger.Info("Directory seeded",
				slog.Int("organizations", len(seed.Organizations)),
				slog.Int("users", len(seed.Users)))
		}
		logger.Warn("Using in-memory store; all data is lost on restart")
		return store, store, func() {}, nil
	}

	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return nil, nil, nil, err
	}

	logger.Info("Running database migrations...")
	applied, err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsURL)
	if err != nil {
		pool.Close()
		return nil, nil, nil, err
	}
	if applied {
		logger.Info("Database migrations applied successfully.")
	} else {
		logger.Info("No new migrations to apply.")
	}

	return pgsql.NewTxManager(pool), pgsql.NewDirectory(pool), func() { database.ClosePgxPool(pool) }, nil
}

func seedDirectory(store *memory.Store, seed *config.DirectorySeed) {
	for _, org := range seed.Organizations {
		store.AddOrganization(domain.Organization{
			OrganizationID: org.ID,
			Name:           org.Name,
			TaxID:          org.TaxID,
			IsBank:         org.IsBank,
			IsBuyer:        org.IsBuyer,
			IsSeller:       org.IsSeller,
		})
	}
	for _, u := range seed.Users {
		store.AddUser(domain.User{
			UserID:         u.ID,
			OrganizationID: u.OrganizationID,
			Name:           u.Name,
			Role:           domain.UserRole(u.Role),
		})
	}
}
