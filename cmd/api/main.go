package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/videovault/videos-ms-go/internal/cache"
	"github.com/videovault/videos-ms-go/internal/cloudinary"
	"github.com/videovault/videos-ms-go/internal/config"
	"github.com/videovault/videos-ms-go/internal/db"
	"github.com/videovault/videos-ms-go/internal/handler/api"
	"github.com/videovault/videos-ms-go/internal/logger"
	cMiddleware "github.com/videovault/videos-ms-go/internal/middleware"
	"github.com/videovault/videos-ms-go/internal/port"
	"github.com/videovault/videos-ms-go/internal/renderer"
	"github.com/videovault/videos-ms-go/internal/repository/mariadb"
	"github.com/videovault/videos-ms-go/internal/task"
	videoSvc "github.com/videovault/videos-ms-go/internal/usecase/video"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	database := initDb(ctx, cfg)

	r := initRouter(ctx, cfg.JWTPublicKey)

	cld := cloudinary.NewClient(&cloudinary.Config{
		CloudName:    cfg.CloudinaryCloudName,
		APIKey:       cfg.CloudinaryAPIKey,
		APISecret:    cfg.CloudinaryAPISecret,
		UploadFolder: cfg.UploadFolder,
	})

	videoRepo := mariadb.NewVideoRepository(database.DB)
	var ca port.Cache
	var dispatcher port.TaskDispatcher
	if cfg.RedisAddr != "" {
		ca = cache.NewCache(cfg.RedisAddr, cfg.RedisPassword)
		dispatcher = task.NewDispatcher(cfg.RedisAddr, cfg.RedisPassword)
		logger.Info(ctx, "✅  Redis cache enabled")
	} else {
		ca = cache.NewNoop()
		dispatcher = task.NewNoopDispatcher()
		logger.Warn(ctx, "⚠️  Redis not configured — caching is disabled")
	}

	ticketIssuerSvc := videoSvc.NewTicketIssuer(cld, cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.UploadFolder, time.Now)
	r.Post("/signature", api.IssueSignatureHandler(ticketIssuerSvc))

	uploadIngestorSvc := videoSvc.NewUploadIngestor(videoRepo, cld, dispatcher, db.NewUUID)
	r.Post("/videos/upload", api.UploadVideoHandler(uploadIngestorSvc))

	videoRegistrarSvc := videoSvc.NewVideoRegistrar(videoRepo, db.NewUUID)
	r.Post("/videos", api.RegisterVideoHandler(videoRegistrarSvc))

	videoListerSvc := videoSvc.NewVideoLister(videoRepo)
	r.Get("/videos", api.ListVideosHandler(videoListerSvc))

	getVideoSvc := videoSvc.NewVideoGetter(videoRepo)
	rendererSvc := renderer.NewHTTPRenderer(ca)
	r.With(cMiddleware.WithVideoID()).
		Get("/videos/{id}", api.GetVideoHandler(rendererSvc, getVideoSvc))

	deleteVideoSvc := videoSvc.NewVideoDeleter(videoRepo, cld, ca)
	r.With(cMiddleware.WithVideoID()).
		Delete("/videos/{id}", api.DeleteVideoHandler(deleteVideoSvc))

	listenRouter(ctx, r, cfg, database)
}

func initDb(ctx context.Context, cfg *config.Settings) *db.Database {
	logger.Info(ctx, "initialising database...")

	database, err := db.New(cfg.MariaDBDSN, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}

	return database
}

func initRouter(ctx context.Context, jwtKey string) *chi.Mux {
	logger.Info(ctx, "initialising router...")

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(cMiddleware.WithSessionAuth(jwtKey))

	r.NotFound(api.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	return r
}

func listenRouter(ctx context.Context, r *chi.Mux, cfg *config.Settings, database *db.Database) {
	srv := &http.Server{Addr: ":" + strconv.Itoa(cfg.ServerPort), Handler: r}

	// start serving
	go func() {
		logger.Infof(ctx, "🚀 API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "❌  Listen error: %v", err)
			os.Exit(1)
		}
	}()

	// block until we get SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "❌  Server shutdown failed: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "✅  Server gracefully stopped")

	if err := database.Close(); err != nil {
		logger.Errorf(ctx, "DB close error: %v", err)
		os.Exit(1)
	}
}
