package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rnperera/portfolio-backend/internal/api/router"
	appconfig "github.com/rnperera/portfolio-backend/internal/config"
	"github.com/rnperera/portfolio-backend/internal/enquiry"
	"github.com/rnperera/portfolio-backend/internal/observability/metrics"
	"github.com/rnperera/portfolio-backend/pkg/logging"
)

func main() {
	// Load .env if present; real environments set variables directly.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting portfolio API server",
		"env", cfg.Env,
		"port", cfg.Port,
		"email_configured", cfg.EmailConfigured(),
	)

	enquiryMetrics := metrics.NewEnquiryMetrics(nil)
	recorder := enquiry.NewMemoryRecorder()
	sender := setupEmailSender(cfg, logger)
	enquiryHandler := enquiry.NewHandler(recorder, sender, enquiryMetrics, logger)

	r := router.New(&router.Config{
		Logger:             logger,
		EnquiryHandler:     enquiryHandler,
		MetricsHandler:     promhttp.Handler(),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// setupEmailSender builds the SendGrid sender, or returns nil for log-only
// mode when no credential is configured.
func setupEmailSender(cfg *appconfig.Config, logger *logging.Logger) enquiry.EmailSender {
	s := enquiry.NewSendGridSender(enquiry.SendGridConfig{
		APIKey:    cfg.SendGridAPIKey,
		ToEmail:   cfg.EnquiryToEmail,
		ToName:    cfg.EnquiryToName,
		FromEmail: cfg.EnquiryFromEmail,
		FromName:  cfg.EnquiryFromName,
	}, logger)
	if s == nil {
		logger.Warn("no SendGrid credential configured, enquiries will be recorded but not emailed")
		return nil
	}
	return s
}
