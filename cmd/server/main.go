package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "clubhub-backend/internal/api/http"
	"clubhub-backend/internal/config"
	"clubhub-backend/internal/firebase"
	"clubhub-backend/internal/logger"
	"clubhub-backend/internal/repository/firestore"
	"clubhub-backend/internal/security"
	"clubhub-backend/internal/service"
	"clubhub-backend/internal/validation"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting ClubHub Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Firebase configuration", "project_id", cfg.Firebase.ProjectID)

	ctx := context.Background()

	// Initialize Firebase app and Firestore client
	app, err := firebase.App(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
	if err != nil {
		logger.Error("Failed to initialize Firebase app", "error", err)
		log.Fatalf("Failed to initialize Firebase app: %v", err)
	}

	client, err := firestore.NewClient(ctx, app)
	if err != nil {
		logger.Error("Failed to connect to Firestore", "error", err)
		log.Fatalf("Failed to connect to Firestore: %v", err)
	}
	defer client.Close()
	logger.Info("Firestore connection established")

	// Initialize Repositories
	store := firestore.NewStore(client)

	// Initialize Security
	var verifier security.Verifier
	if cfg.Firebase.CredentialsFile != "" {
		verifier, err = security.NewFirebaseVerifier(ctx, app)
		if err != nil {
			logger.Error("Failed to initialize Firebase verifier", "error", err)
			log.Fatalf("Failed to initialize Firebase verifier: %v", err)
		}
		logger.Info("Using Firebase ID-token verification")
	} else {
		verifier = security.NewTokenManager(cfg.Auth.DevSecret)
		logger.Warn("Using local HS256 token verification; not for production")
	}

	// Initialize Services
	emailSvc := service.NewSendGridService(
		cfg.SendGrid.APIKey,
		cfg.SendGrid.FromEmail,
		cfg.SendGrid.FromName,
		cfg.SendGrid.AdminEmail,
	)
	sheetsSvc := service.NewSheetsMirror(
		cfg.Sheets.WebhookURL,
		time.Duration(cfg.Sheets.TimeoutSeconds)*time.Second,
	)
	notifier := service.NewNotifier(
		emailSvc,
		sheetsSvc,
		store.DeadLetters,
		cfg.SendGrid.AdminEmail,
		cfg.Intake.TestMode,
	)

	emailValidator := validation.NewEmailValidator(cfg.SendGrid.FromEmail, nil)
	minFillTime := time.Duration(cfg.Intake.MinFillTimeSeconds) * time.Second

	applicationSvc := service.NewApplicationService(
		store.Applications,
		emailValidator,
		notifier,
		cfg.Intake.TestMode,
		minFillTime,
	)
	registrationSvc := service.NewRegistrationService(
		store.Registrations,
		store.Events,
		emailValidator,
		notifier,
		cfg.Intake.TestMode,
		minFillTime,
	)
	eventSvc := service.NewEventService(store.Events)
	adminSvc := service.NewAdminService(
		store.Applications,
		store.Registrations,
		store.Members,
		notifier,
	)

	// Set up HTTP server
	router := httpapi.NewRouter(httpapi.RouterConfig{
		Applications:      applicationSvc,
		Registrations:     registrationSvc,
		Events:            eventSvc,
		Admin:             adminSvc,
		Verifier:          verifier,
		RequireAdminClaim: cfg.Auth.RequireAdminClaim,
	})

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve HTTP: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownGraceSeconds)*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
	logger.Info("HTTP server stopped")
}
