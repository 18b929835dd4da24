package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"example.com/signup/internal/api"
	"example.com/signup/internal/catalog"
	"example.com/signup/internal/config"
	"example.com/signup/internal/domain"
	"example.com/signup/internal/logging"
	"example.com/signup/internal/registry"
	httptransport "example.com/signup/internal/transport/http"
)

func main() {
	cfg := config.Load()

	logging.Init(logging.Config{
		Service: "signup-service",
		Env:     cfg.LogEnv,
		Backend: logging.Backend(cfg.LogBackend),
		Debug:   cfg.LogDebug,
	})

	seed := catalog.Default()
	if cfg.CatalogPath != "" {
		loaded, err := catalog.Load(cfg.CatalogPath)
		if err != nil {
			slog.Error("failed to load activity catalog", "path", cfg.CatalogPath, "err", err)
			os.Exit(1)
		}
		seed = loaded
	}

	store := registry.NewMemory(seed)
	service := domain.NewService(store, domain.WithValidationRules(domain.ValidationRules{
		RejectDuplicates: cfg.RejectDuplicateSignups,
		EnforceCapacity:  cfg.EnforceCapacity,
	}))
	handler := api.NewHandler(service)

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Handler:        handler,
		AllowedOrigins: cfg.AllowedOrigins,
		RequestTimeout: cfg.RequestTimeout,
	})

	server := httptransport.NewServer(httptransport.ServerConfig{
		Address:      cfg.HTTPAddress,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}, router)

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("signup service listening",
			"addr", cfg.HTTPAddress,
			"activities", len(seed),
			"reject_duplicates", cfg.RejectDuplicateSignups,
			"enforce_capacity", cfg.EnforceCapacity,
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	<-shutdownCh

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "err", err)
	}
}
