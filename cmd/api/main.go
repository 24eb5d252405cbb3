package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pulsefin/pulse-api/infrastructure/database/postgres"
	"github.com/pulsefin/pulse-api/infrastructure/repository"
	"github.com/pulsefin/pulse-api/internal/api"
	"github.com/pulsefin/pulse-api/internal/config"
	"github.com/pulsefin/pulse-api/internal/scheduler"
	"github.com/pulsefin/pulse-api/internal/usecases/analyzing"
	"github.com/pulsefin/pulse-api/internal/usecases/authenticating"
	"github.com/pulsefin/pulse-api/internal/usecases/configuring"
	"github.com/pulsefin/pulse-api/internal/usecases/dataset"
	"github.com/pulsefin/pulse-api/internal/usecases/detecting"
	"github.com/pulsefin/pulse-api/internal/usecases/reporting"
	"github.com/pulsefin/pulse-api/internal/usecases/simulating"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level %q, using info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	recordRepo := repository.NewMonthRecordRepository(pgConn)
	settingsRepo := repository.NewSettingsRepository(pgConn)
	presetRepo := repository.NewScenarioPresetRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)
	if err := authenticator.EnsureAdminUser(); err != nil {
		logrus.WithError(err).Error("error bootstrapping admin user")
	}

	analyzer := analyzing.NewService(recordRepo, settingsRepo)
	detector := detecting.NewService(recordRepo)
	simulator := simulating.NewService(recordRepo, presetRepo)
	datasetService := dataset.NewService(recordRepo)
	settingsService := configuring.NewService(settingsRepo)
	reporter := reporting.NewService(analyzer, detector, settingsRepo, cfg)

	anomalyScanService := scheduler.NewAnomalyScanService(detector, cfg)
	if err := anomalyScanService.Start(ctx); err != nil {
		logrus.WithError(err).Error("error starting anomaly scan job")
	}

	server, err := api.New(
		cfg,
		analyzer,
		detector,
		simulator,
		datasetService,
		settingsService,
		reporter,
		authenticator,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("error connecting to PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("error pinging PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
