package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/justsurfingit/jobboard/internal/config"
	"github.com/justsurfingit/jobboard/internal/database"
	"github.com/justsurfingit/jobboard/internal/handlers"
	"github.com/justsurfingit/jobboard/internal/notify"
	"github.com/justsurfingit/jobboard/internal/ratelimit"
	"github.com/justsurfingit/jobboard/internal/services"
	"github.com/justsurfingit/jobboard/internal/storage"
)

func main() {
	// 1. Configuration
	cfg := config.Load()
	logger := cfg.Logger
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	// 2. Database Connection
	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	logger.Println("Running Migrations...")
	if err := database.Migrate(db); err != nil {
		logger.Fatalf("Migration failed: %v", err)
	}
	if cfg.SeedDemoData {
		if err := database.SeedDemoData(db); err != nil {
			logger.Printf("Seeding demo data failed: %v", err)
		}
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatalf("Failed to get sql.DB: %v", err)
	}
	defer sqlDB.Close()

	// 3. Initialize Core Services (Dependencies)
	jobService := services.NewJobService(db)
	companyService := services.NewCompanyService(db)
	applicationService := services.NewApplicationService(db)
	blogService := services.NewBlogService(db)
	contactService := services.NewContactService(db)

	store, err := storage.NewStore(cfg.UploadDir, cfg.MaxUploadBytes)
	if err != nil {
		logger.Fatalf("Upload storage unavailable: %v", err)
	}
	mailer := notify.NewMailer(cfg)

	// 4. Background upload sweeper
	sweeper := storage.NewSweeper(store, applicationService, cfg.SweepGrace, logger)
	if err := sweeper.Start(cfg.SweepSchedule); err != nil {
		logger.Fatalf("Upload sweeper: %v", err)
	}

	// 5. Rate limiting for public writes (optional)
	opts := handlers.RouterOptions{
		AllowedOrigins: cfg.AllowedOrigins,
		Logger:         logger,
	}
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		defer rdb.Close()
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			logger.Printf("⚠️  Redis unreachable, limits fail open until it returns: %v", err)
		} else {
			logger.Println("✅ Connected to Redis")
		}
		opts.ContactLimiter = ratelimit.NewRedisLimiter(rdb, "contact", cfg.ContactLimit, cfg.ContactWindow)
		opts.ApplyLimiter = ratelimit.NewRedisLimiter(rdb, "apply", cfg.ApplyLimit, cfg.ContactWindow)
	}

	// 6. Initialize Handlers & Router
	router := handlers.NewRouter(handlers.Handlers{
		Jobs:         handlers.NewJobHandler(jobService, logger),
		Applications: handlers.NewApplicationHandler(jobService, applicationService, store, mailer, cfg.MaxUploadBytes, logger),
		Blog:         handlers.NewBlogHandler(blogService, logger),
		Companies:    handlers.NewCompanyHandler(companyService, logger),
		Contact:      handlers.NewContactHandler(contactService, mailer, logger),
		Uploads:      handlers.NewUploadHandler(store, logger),
		DB:           sqlDB,
	}, opts)

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Printf("🚀 Server starting on port %s...", cfg.Port)
		errChan <- httpServer.ListenAndServe()
	}()

	// 7. Graceful shutdown
	waitForShutdown(httpServer, errChan, cfg.ShutdownTimeout, logger)
	sweeper.Stop()
	mailer.Wait()
	logger.Println("Server stopped")
}

func waitForShutdown(httpServer *http.Server, errChan <-chan error, timeout time.Duration, logger *log.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Printf("Server failed: %v", err)
		}
	case sig := <-sigChan:
		logger.Printf("Received %s, shutting down", sig)
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			logger.Printf("Shutdown error: %v", err)
		}
	}
}
