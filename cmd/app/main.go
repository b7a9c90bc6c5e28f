package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/chris/bank-ledger/pkg/config"
	"github.com/chris/bank-ledger/pkg/handlers"
	"github.com/chris/bank-ledger/pkg/session"
	"github.com/chris/bank-ledger/pkg/storage/memory"
	"github.com/chris/bank-ledger/pkg/users"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// The registry owns usernames and ids; the ledger owns balances and
	// histories and consults the registry for transfer recipients. Both
	// are constructed once here and injected, never reached as globals.
	registry := users.New()
	store := memory.New(registry)
	sessions := session.NewManager([]byte(cfg.SessionSecret), cfg.SessionTTL)

	router := handlers.NewRouter(handlers.Deps{
		Users:    registry,
		Ledger:   store,
		Sessions: sessions,
		Logger:   logger,
	})

	srv := &http.Server{Addr: ":" + cfg.HTTPPort, Handler: router}

	go func() {
		logger.Info("starting server", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	// All state is in memory; shutdown only drains in-flight requests.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
}
