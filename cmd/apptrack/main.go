package main

import (
	"apptrack/internal/app"
	"apptrack/internal/app/deps"
	"apptrack/internal/app/services"
	evaluatereminders "apptrack/internal/core/services/evaluate_reminders"
	"apptrack/internal/implementations/periodicrunner"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	dl "apptrack/internal/core/domain/logging"
)

func main() {
	deps, shutdownDeps := deps.InitDeps()
	services := services.InitServices(deps)

	// The reminder loop runs inside the HTTP process: the appointment store
	// is in-memory, so the evaluator must see the collection the handlers
	// write to.
	runner := periodicrunner.New(
		deps.Logger,
		services.EvaluateReminders,
		evaluatereminders.Input{},
		deps.Config.EvaluationPeriod,
	)
	runner.Start(context.Background())
	deps.Logger.Info(
		context.Background(),
		"Periodic reminder evaluation has started.",
		dl.Entry("periodSeconds", deps.Config.EvaluationPeriod.Seconds()),
	)

	httpServer := app.InitHttpServer(deps, services)
	go start(httpServer, deps)

	stopCh, closeCh := createChannel()
	defer closeCh()

	<-stopCh
	runner.Stop()
	shutdown(context.Background(), httpServer, deps, shutdownDeps)
}

func createChannel() (chan os.Signal, func()) {
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	return stopCh, func() {
		close(stopCh)
	}
}

func start(server *http.Server, deps *deps.Deps) {
	deps.Logger.Info(
		context.Background(),
		"HTTP server has started.",
		dl.Entry("address", server.Addr),
		dl.Entry("isTestMode", deps.Config.IsTestMode),
	)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic(err)
	} else {
		deps.Logger.Info(context.Background(), "HTTP service is stopping gracefully.")
	}
}

func shutdown(ctx context.Context, server *http.Server, deps *deps.Deps, shutDownDeps func()) {
	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		panic(err)
	}

	shutDownDeps()
	deps.Logger.Info(ctx, "HTTP server has shutdowned.")
}
