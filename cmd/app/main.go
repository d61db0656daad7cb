package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"orderbot/cmd"
	httpin "orderbot/internal/adapters/in/http"
	"orderbot/internal/core/ports"

	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, err := cmd.NewBackend(ctx, configs)
	if err != nil {
		log.Fatalf("Error opening %s store: %v", configs.Store, err)
	}
	defer func() { _ = backend.Close() }()

	var events ports.OrderEventPublisher
	publisher, err := cmd.NewPublisher(configs, logger)
	switch {
	case err != nil:
		logger.Warn("order events disabled", "error", err)
	case publisher != nil:
		defer func() { _ = publisher.Close() }()
		events = publisher
	}

	app := cmd.NewCompositionRoot(configs, backend, events, logger)
	if err = app.Seed(ctx); err != nil {
		log.Fatalf("Error seeding catalog: %v", err)
	}

	jobManager := app.JobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, configs, logger)
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) {
	e := httpin.NewEcho(logger)
	e.Logger.SetLevel(log.INFO)
	if err := app.HTTPServer().Register(e, configs.BackOfficeToken); err != nil {
		log.Fatalf("Error registering HTTP routes: %v", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort))
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Error(err)
		}
		return
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Error(err)
	}
}
