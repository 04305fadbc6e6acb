package main

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/muraalee/almalead/internal/config"
	"github.com/muraalee/almalead/internal/infra/database"
	"github.com/muraalee/almalead/internal/infra/http/handlers"
	"github.com/muraalee/almalead/internal/infra/http/middleware"
	"github.com/muraalee/almalead/internal/infra/mail"
	"github.com/muraalee/almalead/internal/infra/storage"
	"github.com/muraalee/almalead/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}

	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		logrus.WithError(err).Fatal("database connection failed")
	}
	defer db.Close()

	if err := database.Migrate(cfg.DatabaseURL); err != nil {
		logrus.WithError(err).Fatal("migrations failed")
	}

	// 1. Repositories
	leadRepo := database.NewLeadRepository(db)
	userRepo := database.NewUserRepository(db)

	// 2. Gateways
	resumeStorage, err := storage.NewMinioStorage(storage.Options{
		Endpoint:  cfg.MinioEndpoint,
		AccessKey: cfg.MinioAccessKey,
		SecretKey: cfg.MinioSecretKey,
		Bucket:    cfg.MinioBucket,
		Secure:    cfg.MinioSecure,
	})
	if err != nil {
		logrus.WithError(err).Fatal("object storage client failed")
	}

	mailSender := mail.NewEmailSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPFromEmail, cfg.SMTPFromName)

	// 3. Services
	leadService := usecase.NewLeadService(leadRepo, resumeStorage, mailSender, cfg.AttorneyEmail)
	authService := usecase.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiration)

	if _, err := authService.SeedAttorney(
		context.Background(),
		cfg.AttorneyEmail, cfg.AttorneyPassword,
		cfg.AttorneyFirstName, cfg.AttorneyLastName,
	); err != nil {
		logrus.WithError(err).Fatal("attorney seeding failed")
	}

	// 4. Handlers
	leadHandler := handlers.NewLeadHandler(leadService, cfg.MaxUploadSize)
	authHandler := handlers.NewAuthHandler(authService)
	healthHandler := handlers.NewHealthHandler(db)

	// 5. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	r.Get("/", healthHandler.HandleRoot)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", authHandler.HandleLogin)
		r.Post("/leads", leadHandler.HandleCreate)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(authService))
			r.Get("/leads", leadHandler.HandleList)
			r.Get("/leads/{id}", leadHandler.HandleGet)
			r.Patch("/leads/{id}/state", leadHandler.HandleUpdateState)
		})
	})

	logrus.WithField("addr", cfg.HTTPAddr).Info("almalead API listening")
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
