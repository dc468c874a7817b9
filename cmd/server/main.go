package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/omgcarlo/RetailSavvy/internal/config"
	"github.com/omgcarlo/RetailSavvy/internal/infra"
	"github.com/omgcarlo/RetailSavvy/internal/repository"
	"github.com/omgcarlo/RetailSavvy/internal/repository/memory"
	"github.com/omgcarlo/RetailSavvy/internal/router"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	var (
		db    *gorm.DB
		rdb   *redis.Client
		repos repository.Registry
	)

	switch cfg.StorageBackend {
	case "memory":
		_, repos = memory.NewRegistry()
		log.Warn().Msg("using in-memory storage: data is lost on restart")
	case "postgres":
		db, err = infra.NewDatabase(cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to postgres")
		}
		repos = repository.Registry{
			Products:     repository.NewProductRepository(db),
			Transactions: repository.NewTransactionRepository(db),
			Customers:    repository.NewCustomerRepository(db),
			Debts:        repository.NewDebtRepository(db),
			Expenses:     repository.NewExpenseRepository(db),
			Users:        repository.NewUserRepository(db),
		}
	default:
		log.Fatal().Str("backend", cfg.StorageBackend).Msg("unknown STORAGE_BACKEND")
	}

	// Redis is optional: without it the product list cache is disabled.
	if cfg.RedisURL != "" && cfg.StorageBackend == "postgres" {
		rdb, err = infra.NewRedis(cfg.RedisURL)
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, product cache disabled")
			rdb = nil
		}
	}

	r := router.New(cfg, repos, db, rdb)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("RetailSavvy backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
