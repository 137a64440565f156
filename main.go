package main

import (
	"context"
	"errors"
	"log"
	"net/http"

	"strategy/src/config"
	"strategy/src/scheduler"
	"strategy/src/utils"
	"strategy/src/worker"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig("./settings")
	if err != nil {
		log.Println(err, "Error while loading config")
		return
	}
	errC, err := run(cfg)
	if err != nil {
		log.Println(err, "Couldn't run")
		return
	}

	if err := <-errC; err != nil {
		log.Println(err, "Error while running")
	}
}

func run(cfg *config.Config) (<-chan error, error) {
	errC := make(chan error, 1)

	logger := utils.NewLogger(logrus.InfoLevel, false, "")
	server, err := worker.NewServer(cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := startScheduledTasks(cfg, server, logger); err != nil {
		return nil, err
	}

	httpServer := worker.NewHTTPServer(server, cfg.Service.Port)
	go func() {
		logger.Infof("starting server on port %s", cfg.Service.Port)

		// "ListenAndServe always returns a non-nil error. After Shutdown or Close, the returned error is
		// ErrServerClosed."
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errC <- err
		}
	}()
	return errC, nil
}

// startScheduledTasks wires the two timers: the price refresh cycle and the
// rate-limit counter reset. The refresh cron is the only invoker of the job
// besides the manual trigger endpoint, which keeps runs serialized.
func startScheduledTasks(cfg *config.Config, server *worker.Server, logger *logrus.Logger) error {
	ctx := utils.WithLogger(context.Background(), logger)

	_, err := scheduler.NewScheduledTask("refresh-assets", cfg.Scheduler.RefreshCron, func() {
		if _, err := server.Controller.RefreshAssets(ctx); err != nil {
			logger.Errorf("scheduled refresh failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	_, err = scheduler.NewScheduledTask("counter-reset", cfg.Scheduler.CounterResetCron, func() {
		if err := server.Controller.ResetCounter(ctx); err != nil {
			logger.Errorf("scheduled counter reset failed: %v", err)
		}
	})
	return err
}
