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
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/digitalocean/lead-callback/pkg/api"
	"github.com/digitalocean/lead-callback/pkg/clients/retell"
	"github.com/digitalocean/lead-callback/pkg/config"
	"github.com/digitalocean/lead-callback/pkg/logger"
	"github.com/digitalocean/lead-callback/pkg/middleware"
	"github.com/digitalocean/lead-callback/pkg/services"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file loaded, using process environment")
	}

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v\n%s", err, config.Usage())
	}

	lg, err := logger.New(cfg.LogLevel, cfg.IsProduction())
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	if cfg.RetellAPIKey == "" {
		lg.Warn("RETELL_API_KEY is not set, calls will be rejected by Retell")
	}

	// Initialize API clients
	retellClient := retell.NewClient(cfg.RetellAPIKey, cfg.RetellBaseURL, cfg.CallTimeout)

	// Initialize services
	callbackService := services.NewCallbackService(retellClient, cfg, lg)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	handlers := api.NewHandlers(callbackService, cfg, lg)
	router := api.NewRouter(handlers, lg)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           middleware.CORS(cfg.CORSAllowedOrigins, router),
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          zap.NewStdLog(lg.Named("http")),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		lg.Info("Server listening", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatal("Error starting server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	lg.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		lg.Error("Error during shutdown", zap.Error(err))
	}
}
