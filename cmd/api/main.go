//	@title			Devfolio API
//	@version		1.0
//	@description	Backend for a personal portfolio and blog: content management, media uploads, and a signed-URL media proxy.
//
//	@host		localhost:8080
//	@BasePath	/api/v1
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT Bearer token. Format: **Bearer {token}**

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
	"go.uber.org/zap"

	"github.com/devfolio/service/internal/blog"
	"github.com/devfolio/service/internal/config"
	"github.com/devfolio/service/internal/db"
	"github.com/devfolio/service/internal/devlog"
	"github.com/devfolio/service/internal/media"
	appMiddleware "github.com/devfolio/service/internal/middleware"
	"github.com/devfolio/service/internal/portfolio"
	"github.com/devfolio/service/internal/resume"
	"github.com/devfolio/service/internal/storage"

	_ "github.com/devfolio/service/docs/swagger"
)

func main() {
	cfg := config.Load()

	logger := newLogger(cfg.IsProduction())
	defer func() { _ = logger.Sync() }()
	sugar := logger.Sugar()

	if err := cfg.Validate(); err != nil {
		sugar.Fatalf("configuration invalid: %v", err)
	}

	client, err := db.Connect(cfg.MongoURI)
	if err != nil {
		sugar.Fatalf("database connection failed: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = client.Disconnect(ctx)
	}()

	database := client.Database(cfg.MongoDatabase)
	if err := db.EnsureIndexes(context.Background(), database); err != nil {
		sugar.Fatalf("index creation failed: %v", err)
	}

	store, err := storage.NewMinioStorage(
		cfg.StorageEndpoint,
		cfg.StorageAccessKey,
		cfg.StorageSecretKey,
		cfg.StorageBucket,
		cfg.StorageUseSSL,
	)
	if err != nil {
		sugar.Fatalf("object storage init failed: %v", err)
	}

	// Wire dependencies: repository → service → handler
	mediaSvc := media.NewService(store, sugar)
	mediaHandler := media.NewHandler(mediaSvc)

	resumeSvc := resume.NewService(store, sugar)
	resumeHandler := resume.NewHandler(resumeSvc)

	portfolioRepo := portfolio.NewRepository(database.Collection(db.CollectionPortfolio))
	portfolioSvc := portfolio.NewService(portfolioRepo)
	portfolioHandler := portfolio.NewHandler(portfolioSvc)

	blogRepo := blog.NewRepository(database.Collection(db.CollectionBlogPosts))
	blogSvc := blog.NewService(blogRepo)
	blogHandler := blog.NewHandler(blogSvc)

	devlogRepo := devlog.NewRepository(database.Collection(db.CollectionDevLogs))
	devlogSvc := devlog.NewService(devlogRepo)
	devlogHandler := devlog.NewHandler(devlogSvc)

	admin := appMiddleware.RequireAdmin(cfg.JWTSecret)

	// Router
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger(sugar))
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
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

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Public media proxy; upload is admin-only
		r.Get("/media", mediaHandler.Media)
		r.With(admin).Post("/upload", mediaHandler.Upload)

		r.Route("/resume", func(r chi.Router) {
			r.Get("/current", resumeHandler.Current)
			r.Get("/download", resumeHandler.Download)
			r.With(admin).Post("/upload", resumeHandler.Upload)
		})

		r.Route("/portfolio", func(r chi.Router) {
			r.Get("/", portfolioHandler.List)
			r.Get("/{id}", portfolioHandler.Get)
			r.Get("/{id}/logs", devlogHandler.ListByProject)
			r.With(admin).Post("/", portfolioHandler.Create)
			r.With(admin).Put("/{id}", portfolioHandler.Update)
			r.With(admin).Delete("/{id}", portfolioHandler.Delete)
			r.With(admin).Post("/{id}/logs", devlogHandler.Create)
		})

		r.Route("/blog", func(r chi.Router) {
			r.Get("/", blogHandler.List)
			r.Get("/{id}", blogHandler.Get)
			r.With(admin).Post("/", blogHandler.Create)
			r.With(admin).Put("/{id}", blogHandler.Update)
			r.With(admin).Delete("/{id}", blogHandler.Delete)
		})

		r.Route("/logs", func(r chi.Router) {
			r.Get("/{id}", devlogHandler.Get)
			r.With(admin).Put("/{id}", devlogHandler.Update)
			r.With(admin).Delete("/{id}", devlogHandler.Delete)
		})
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine; wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sugar.Infof("server listening on :%s (env=%s)", cfg.Port, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			sugar.Fatalf("server error: %v", err)
		}
	}()

	<-quit
	sugar.Info("shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		sugar.Fatalf("forced shutdown: %v", err)
	}

	sugar.Info("server stopped")
}

func newLogger(production bool) *zap.Logger {
	var logger *zap.Logger
	var err error
	if production {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	return logger
}
