package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/dsouza95/clickgate/internal/config"
	"github.com/dsouza95/clickgate/internal/db"
	"github.com/dsouza95/clickgate/internal/geo"
	"github.com/dsouza95/clickgate/internal/handlers"
	"github.com/dsouza95/clickgate/internal/models"
	"github.com/dsouza95/clickgate/internal/web"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	cfg := config.Load()
	ctx := context.Background()

	// A missing or unreachable database degrades the capture path per
	// request; /health keeps answering either way.
	var store *models.Store
	if cfg.DatabaseURL == "" {
		slog.Warn("DATABASE_URL not set, clicks will not be persisted")
	} else {
		pool, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			slog.Error("database unavailable, serving degraded", "error", err)
		} else if err := db.Migrate(ctx, pool); err != nil {
			slog.Error("schema migration failed, serving degraded", "error", err)
			pool.Close()
		} else {
			defer pool.Close()
			store = models.NewStore(pool)
		}
	}
	if cfg.BotUsername == "" {
		slog.Warn("BOT_USERNAME not set, capture requests will fail")
	}

	geoReader, err := geo.Open(cfg.GeoIPPath)
	if err != nil {
		slog.Warn("geo database unavailable, country lookups disabled", "error", err)
		geoReader, _ = geo.Open("")
	}
	defer geoReader.Close()

	templates, err := web.NewTemplateRegistry()
	if err != nil {
		slog.Error("templates failed to parse", "error", err)
		os.Exit(1)
	}

	h := &handlers.Handler{Cfg: cfg, Geo: geoReader, Templates: templates}
	if store != nil {
		h.Store = store
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)

	r.Get("/health", h.Health)
	r.Post("/save-click", h.SaveClick)
	r.Get("/qr", h.LandingQRCode)
	if cfg.Prelander {
		r.Get("/", h.Prelander)
	} else {
		r.Get("/", h.Capture)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("clickgate listening", "port", cfg.Port, "prelander", cfg.Prelander)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown", "error", err)
	}
}
