package handler

import (
	"net/http"

	"github.com/pulsefin/pulse-api/internal/api/handler/router"
	"github.com/pulsefin/pulse-api/internal/usecases/analyzing"
	"github.com/pulsefin/pulse-api/internal/usecases/authenticating"
	"github.com/pulsefin/pulse-api/internal/usecases/configuring"
	"github.com/pulsefin/pulse-api/internal/usecases/dataset"
	"github.com/pulsefin/pulse-api/internal/usecases/detecting"
	"github.com/pulsefin/pulse-api/internal/usecases/reporting"
	"github.com/pulsefin/pulse-api/internal/usecases/simulating"
	"github.com/pulsefin/pulse-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(service),
		},
	}
}

func Records(service dataset.DatasetService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/records",
			Method:  http.MethodGet,
			Handler: ListRecords(service),
		},
		{
			Path:        "/v1/records",
			Method:      http.MethodPost,
			Handler:     SaveRecord(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrController()},
		},
		{
			Path:        "/v1/records",
			Method:      http.MethodPut,
			Handler:     ReplaceRecords(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrController()},
		},
		{
			Path:        "/v1/records/:period",
			Method:      http.MethodDelete,
			Handler:     DeleteRecord(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrController()},
		},
	}
}

func Dashboard(analyzer analyzing.AnalyzerService, detector detecting.DetectorService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/kpis",
			Method:  http.MethodGet,
			Handler: GetKPISeries(analyzer),
		},
		{
			Path:    "/v1/dashboard/kpis/:period",
			Method:  http.MethodGet,
			Handler: GetKPIByPeriod(analyzer),
		},
		{
			Path:    "/v1/dashboard/periods",
			Method:  http.MethodGet,
			Handler: GetPeriods(analyzer),
		},
		{
			Path:    "/v1/dashboard/ampel",
			Method:  http.MethodGet,
			Handler: GetAmpelBoard(analyzer),
		},
		{
			Path:    "/v1/dashboard/waterfall",
			Method:  http.MethodGet,
			Handler: GetWaterfall(analyzer),
		},
		{
			Path:    "/v1/dashboard/anomalies",
			Method:  http.MethodGet,
			Handler: GetAnomalies(detector),
		},
	}
}

func Scenario(service simulating.SimulatorService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/scenario/simulate",
			Method:  http.MethodPost,
			Handler: Simulate(service),
		},
		{
			Path:    "/v1/scenario/presets",
			Method:  http.MethodGet,
			Handler: ListPresets(service),
		},
		{
			Path:        "/v1/scenario/presets",
			Method:      http.MethodPut,
			Handler:     UpsertPreset(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrController()},
		},
		{
			Path:        "/v1/scenario/presets/reset",
			Method:      http.MethodPost,
			Handler:     ResetPresets(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrController()},
		},
	}
}

func Settings(service configuring.SettingsService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/settings",
			Method:  http.MethodGet,
			Handler: GetSettings(service),
		},
		{
			Path:        "/v1/settings",
			Method:      http.MethodPut,
			Handler:     SaveSettings(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Report(service reporting.ReporterService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/report/summary",
			Method:  http.MethodGet,
			Handler: GetReportSummary(service),
		},
	}
}
