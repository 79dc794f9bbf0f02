//	@title			Private Media API
//	@version		1.0
//	@description	Private media-sharing backend: session-authenticated uploads with presigned-URL retrieval.
//
//	@host		localhost:8080
//	@BasePath	/api

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/mywebsite/privatemedia/internal/auth"
	"github.com/mywebsite/privatemedia/internal/config"
	"github.com/mywebsite/privatemedia/internal/db"
	"github.com/mywebsite/privatemedia/internal/media"
	appMiddleware "github.com/mywebsite/privatemedia/internal/middleware"
	"github.com/mywebsite/privatemedia/internal/post"
	"github.com/mywebsite/privatemedia/internal/session"
	"github.com/mywebsite/privatemedia/internal/storage"

	_ "github.com/mywebsite/privatemedia/docs/swagger"
)

func main() {
	cfg := config.Load()

	startCtx, cancelStart := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStart()

	pool, err := db.Connect(startCtx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer pool.Close()

	if err := db.Migrate(cfg.DatabaseURL); err != nil {
		log.Fatalf("database migration failed: %v", err)
	}

	store, err := storage.NewMinioStorage(
		startCtx,
		cfg.StorageEndpoint,
		cfg.StorageAccessKey,
		cfg.StorageSecretKey,
		cfg.StorageBucket,
		cfg.StorageUseSSL,
	)
	if err != nil {
		log.Fatalf("object storage init failed: %v", err)
	}

	sessions, err := session.NewRedisStore(startCtx, cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		log.Fatalf("session store init failed: %v", err)
	}

	// Wire dependencies: repository → service → handler
	postRepo := post.NewRepository(pool)

	authSvc := auth.NewService(cfg.AdminPassword, cfg.UserPassword)
	authHandler := auth.NewHandler(authSvc, sessions, cfg.SessionTTL, cfg.IsProduction())
	mediaHandler := media.NewHandler(postRepo, store)

	// Router
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Swagger UI — available at http://localhost:8080/swagger/
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// API
	r.Route("/api", func(r chi.Router) {
		// Public session endpoints
		r.Post("/authenticate", authHandler.Authenticate)
		r.Post("/logout", authHandler.Logout)

		// Protected media endpoints
		r.Group(func(r chi.Router) {
			r.Use(appMiddleware.RequireAuth(sessions))
			r.Get("/media", mediaHandler.List)
			r.Post("/upload", mediaHandler.Upload)
			r.Delete("/media/{id}", mediaHandler.Delete)
		})
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine; wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("server listening on :%s (env=%s)", cfg.Port, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-quit
	log.Println("shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}

	log.Println("server stopped")
}
