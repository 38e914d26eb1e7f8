package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/FutureQuant/Random-walk/internal/api"
	"github.com/FutureQuant/Random-walk/internal/config"
	"github.com/FutureQuant/Random-walk/internal/logging"
	"github.com/FutureQuant/Random-walk/internal/recorder"
	"github.com/FutureQuant/Random-walk/internal/store"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config (optional)")
	flag.Parse()

	// A missing .env is normal outside local development.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("could not load .env")
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	cfg.ApplyEnv()
	logging.Setup(cfg.Log.Level, cfg.Log.Format)

	if wd, err := os.Getwd(); err == nil {
		presetsDir := cfg.API.PresetsDir
		if !filepath.IsAbs(presetsDir) {
			presetsDir = filepath.Join(wd, presetsDir)
		}
		if info, err := os.Stat(presetsDir); err == nil && info.IsDir() {
			log.Infof("Presets directory found: %s", presetsDir)
		} else {
			log.Warnf("Presets directory not found at: %s (error: %v)", presetsDir, err)
		}
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	var rec recorder.Recorder = recorder.NewNoopRecorder()
	if cfg.Database.SQLitePath != "" {
		sqliteRec, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.WithError(err).Warn("run history disabled")
		} else {
			rec = sqliteRec
		}
	}
	defer rec.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cache := store.NewResultCache(cfg.API.CacheTTL)
	go cache.RunCleanup(ctx, 5*time.Minute)

	router := api.NewRouter(api.Options{
		Cache:          cache,
		Recorder:       rec,
		PresetsDir:     cfg.API.PresetsDir,
		MaxCount:       cfg.API.MaxCount,
		AllowedOrigins: cfg.API.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.API.Port,
		Handler: router,
	}
	go func() {
		log.Infof("Starting API server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("server shutdown")
	}
}
