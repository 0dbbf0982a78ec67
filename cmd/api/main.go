package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/flowmint-scheduler/internal/audit"
	"github.com/BruksfildServices01/flowmint-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/flowmint-scheduler/internal/db"
	"github.com/BruksfildServices01/flowmint-scheduler/internal/locker"
	"github.com/BruksfildServices01/flowmint-scheduler/internal/logger"
	"github.com/BruksfildServices01/flowmint-scheduler/internal/routes"
)

func main() {

	cfg := config.Load()
	log := logger.New(cfg)
	defer func() { _ = log.Sync() }()

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		log.Fatal("database", zap.Error(err))
	}

	if err := dbpkg.Seed(context.Background(), db, cfg, log); err != nil {
		log.Fatal("seed", zap.Error(err))
	}

	// --------------------------------------------------
	// Employee lock
	// --------------------------------------------------
	var lk locker.Locker = locker.NewMemory(cfg.LockWait)
	if cfg.RedisURL != "" {
		rdb, err := locker.Open(cfg.RedisURL)
		if err != nil {
			log.Fatal("redis", zap.Error(err))
		}
		defer rdb.Close()

		lk = locker.NewRedis(rdb, cfg.LockTTL, cfg.LockWait, log)
		log.Info("using redis employee lock")
	} else {
		log.Info("using in-process employee lock")
	}

	auditDispatcher := audit.NewDispatcher(audit.New(db), log)

	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		DB:     db,
		Config: cfg,
		Locker: lk,
		Audit:  auditDispatcher,
		Log:    log,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server shutdown", zap.Error(err))
	}

	auditDispatcher.Close()

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
