package cmd

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	config "bughunt-platform.com/bughunt-platform/internal/configs"
	httpapi "bughunt-platform.com/bughunt-platform/internal/http"
	repository "bughunt-platform.com/bughunt-platform/internal/repositories"
	"bughunt-platform.com/bughunt-platform/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the bug-hunt dashboard HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()

		database := config.New(cfg.DatabaseDSN)

		redisClient := config.NewRedisClient(cfg.RedisAddr)
		defer redisClient.Close()

		taskRepo := repository.NewTaskRepository(database)
		historyRepo := repository.NewHistoryRepository(database)
		userRepo := repository.NewUserRepository(database)
		tokenRepo := repository.NewTokenRepository(database)

		taskService := services.NewTaskService(taskRepo, historyRepo)
		importService := services.NewImportService(taskRepo)
		leaderboardService := services.NewLeaderboardService(
			historyRepo,
			redisClient,
			time.Duration(cfg.LeaderboardCacheTTL)*time.Second,
		)
		authService := services.NewAuthService(
			userRepo,
			tokenRepo,
			time.Duration(cfg.TokenTTLHours)*time.Hour,
		)

		e := echo.New()

		handler := httpapi.NewHandler(taskService, importService, leaderboardService, cfg.MaxUploadMB)
		authHandler := httpapi.NewAuthHandler(authService)
		httpapi.Register(e, handler, authHandler, authService, cfg.RateLimit)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				log.Printf("server stopped: %v", err)
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)

		log.Println("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
