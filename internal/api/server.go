package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/pulsefin/pulse-api/internal/api/handler"
	"github.com/pulsefin/pulse-api/internal/api/handler/router"
	"github.com/pulsefin/pulse-api/internal/config"
	"github.com/pulsefin/pulse-api/internal/usecases/analyzing"
	"github.com/pulsefin/pulse-api/internal/usecases/authenticating"
	"github.com/pulsefin/pulse-api/internal/usecases/configuring"
	"github.com/pulsefin/pulse-api/internal/usecases/dataset"
	"github.com/pulsefin/pulse-api/internal/usecases/detecting"
	"github.com/pulsefin/pulse-api/internal/usecases/reporting"
	"github.com/pulsefin/pulse-api/internal/usecases/simulating"
	"github.com/pulsefin/pulse-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	analyzer analyzing.AnalyzerService,
	detector detecting.DetectorService,
	simulator simulating.SimulatorService,
	datasetService dataset.DatasetService,
	settingsService configuring.SettingsService,
	reporter reporting.ReporterService,
	authenticator authenticating.Authenticator,
) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Records(datasetService)...),
		router.WithRoutes(handler.Dashboard(analyzer, detector)...),
		router.WithRoutes(handler.Scenario(simulator)...),
		router.WithRoutes(handler.Settings(settingsService)...),
		router.WithRoutes(handler.Report(reporter)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("server error")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("interrupt signal received")
	case <-ctx.Done():
		logrus.Info("application context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("error during server shutdown")
		return err
	}

	logrus.Info("server stopped")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
