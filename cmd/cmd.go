package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"photo-album-backend/internal/config"
	"photo-album-backend/internal/handlers"
	"photo-album-backend/internal/middleware"
	"photo-album-backend/internal/repository"
	"photo-album-backend/internal/services"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func Run() {
	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Setup logger
	setupLogger(cfg.Log.Level)

	// Connect to database
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, err := repository.Connect(ctx, cfg.Database.URI)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer client.Disconnect(context.Background())
	log.Info().Msg("Database connection established")

	db := client.Database(cfg.Database.DBName)

	// Initialize repositories
	albumRepo := repository.NewAlbumRepository(db)
	imageRepo := repository.NewImageRepository(db)
	userRepo := repository.NewUserRepository(db)
	shareRepo := repository.NewShareRepository(db)

	// Initialize services
	googleAuth := services.NewGoogleAuth(
		cfg.Google.ClientID,
		cfg.Google.ClientSecret,
		cfg.Google.RedirectURL,
	)
	uploader, err := services.NewUploader(
		context.Background(),
		cfg.Storage.Region,
		cfg.Storage.Bucket,
		cfg.Storage.AccessKey,
		cfg.Storage.SecretKey,
		cfg.Storage.Endpoint,
		cfg.Storage.Folder,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create uploader")
	}

	// Initialize handlers
	albumHandler := handlers.NewAlbumHandler(albumRepo, imageRepo)
	imageHandler := handlers.NewImageHandler(imageRepo, uploader)
	userHandler := handlers.NewUserHandler(userRepo, googleAuth, cfg.Server.FrontendURL)
	shareHandler := handlers.NewShareHandler(shareRepo)

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.Server.CORSOrigin},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// Auth routes
	r.Get("/auth/google", userHandler.Login)
	r.Get("/auth/google/callback", userHandler.Callback)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession)
		r.Get("/user/profile/google", userHandler.Profile)
	})

	// Album routes
	r.Post("/albums", albumHandler.CreateAlbum)
	r.Get("/albums", albumHandler.ListAlbums)
	r.Post("/albums/{id}/share", albumHandler.ShareAlbum)
	r.Post("/albums/{id}", albumHandler.UpdateAlbum)
	r.Delete("/albums/{id}", albumHandler.DeleteAlbum)

	// Image routes
	r.Post("/images", imageHandler.UploadImage)
	r.Get("/images", imageHandler.ListImages)
	r.Delete("/images/{id}", imageHandler.DeleteImage)

	// User and share routes
	r.Get("/v1/users", userHandler.ListUsers)
	r.Get("/v1/shareData", shareHandler.ListShareData)
	r.Delete("/v1/shareData/{id}", shareHandler.DeleteShareData)

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("host", cfg.Server.Host).
			Int("port", cfg.Server.Port).
			Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// setupLogger configures zerolog logger
func setupLogger(level string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
