package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"database/sql"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/thekey8/prequal-service/internal/cache"
	"github.com/thekey8/prequal-service/internal/config"
	"github.com/thekey8/prequal-service/internal/handler"
	"github.com/thekey8/prequal-service/internal/integrations/eibor"
	"github.com/thekey8/prequal-service/internal/middleware"
	"github.com/thekey8/prequal-service/internal/repository"
	"github.com/thekey8/prequal-service/internal/service"
	"github.com/thekey8/prequal-service/internal/utils/email"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}

	// Initialize draft store
	drafts := cache.NewStore(cfg, logger)
	if err := drafts.Ping(context.Background()); err != nil {
		logger.Fatalf("Failed to ping redis: %v", err)
	}

	// Initialize layers
	repo := repository.NewRepository(db)
	rates := eibor.NewClient(cfg, logger)
	mailer := email.NewSender(cfg, logger)
	svc := service.NewService(repo, drafts, rates, mailer, logger, cfg)
	h := handler.NewHandler(svc, logger)

	// Refresh the EIBOR feed on startup and nightly
	if err := svc.RefreshEIBORRates(); err != nil {
		logger.Warnf("Initial EIBOR refresh failed: %v", err)
	}
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("0 2 * * *", func() {
		if err := svc.RefreshEIBORRates(); err != nil {
			logger.Errorf("Scheduled EIBOR refresh failed: %v", err)
		}
	}); err != nil {
		logger.Fatalf("Failed to schedule EIBOR refresh: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Setup router
	r := mux.NewRouter()
	// Public routes
	r.HandleFunc("/register", h.Register).Methods("POST")
	r.HandleFunc("/login", h.Login).Methods("POST")
	r.HandleFunc("/eligibility", h.Evaluate).Methods("POST")
	r.HandleFunc("/eligibility/email", h.EmailSummary).Methods("POST")
	r.HandleFunc("/sessions/{id}", h.ApplyStep).Methods("PUT")
	r.HandleFunc("/sessions/{id}", h.GetSession).Methods("GET")
	r.HandleFunc("/market/eibor", h.MarketRates).Methods("GET")
	r.HandleFunc("/calculator/schedule", h.Schedule).Methods("POST")
	// Protected routes
	authRouter := r.PathPrefix("/applications").Subrouter()
	authRouter.Use(middleware.AuthMiddleware(cfg))
	authRouter.HandleFunc("", h.SaveApplication).Methods("POST")
	authRouter.HandleFunc("", h.ListApplications).Methods("GET")
	authRouter.HandleFunc("/{id}", h.GetApplication).Methods("GET")

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
