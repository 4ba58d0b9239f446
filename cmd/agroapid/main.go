package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/ipa-agro/agromanager/internal/config"
	"github.com/ipa-agro/agromanager/internal/repository"
	"github.com/ipa-agro/agromanager/internal/repository/memory"
	"github.com/ipa-agro/agromanager/internal/repository/mongodb"
	"github.com/ipa-agro/agromanager/internal/server/handlers"
	"github.com/ipa-agro/agromanager/internal/server/router"
	"github.com/ipa-agro/agromanager/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	var (
		seedRepo   repository.SeedProductions
		farmerRepo repository.Farmers
	)

	switch cfg.Storage.Backend {
	case "mongodb":
		store, err := mongodb.NewStore(context.Background(), cfg.Storage.MongoDB.URI, cfg.Storage.MongoDB.DBName)
		if err != nil {
			baseLogger.Fatal("failed to init mongodb store", zap.Error(err))
		}
		defer func() {
			if err := store.Close(context.Background()); err != nil {
				baseLogger.Error("failed to close mongodb connection", zap.Error(err))
			}
		}()
		seedRepo = store.SeedProductions()
		farmerRepo = store.Farmers()
		baseLogger.Info("using mongodb storage", zap.String("db", cfg.Storage.MongoDB.DBName))
	default:
		seedRepo = memory.NewSeedProductionRepository()
		farmerRepo = memory.NewFarmerRepository()
		baseLogger.Info("using in-memory storage")
	}

	seedHandler := handlers.NewSeedProductionHandler(seedRepo, baseLogger.Named("handlers.seed"))
	farmerHandler := handlers.NewFarmerHandler(farmerRepo, baseLogger.Named("handlers.farmer"))
	authHandler := handlers.NewAuthHandler(cfg.Auth, baseLogger.Named("handlers.auth"))
	engine := router.New(seedHandler, farmerHandler, authHandler, baseLogger.Named("router"))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
