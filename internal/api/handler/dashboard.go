package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"

	"github.com/pulsefin/pulse-api/internal/usecases/analyzing"
	"github.com/pulsefin/pulse-api/internal/usecases/detecting"
	"github.com/pulsefin/pulse-api/pkg/apiErrors"
	"github.com/pulsefin/pulse-api/pkg/log"
)

// GetKPISeries returns the derived KPI series, optionally bounded by
// ?from=YYYY-MM&to=YYYY-MM.
func GetKPISeries(service analyzing.AnalyzerService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		from := r.URL.Query().Get("from")
		to := r.URL.Query().Get("to")

		series, err := service.GetKPISeries(from, to)
		if err != nil {
			writeAnalyzerError(w, r, err, "dashboard: kpi series failed")
			return
		}

		writeJSON(w, r, series)
	})
}

// GetPeriods returns the stored period keys in chronological order, for
// period selectors.
func GetPeriods(service analyzing.AnalyzerService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		periods, err := service.GetPeriods()
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("dashboard: listing periods failed")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "error loading periods", nil)
			return
		}

		writeJSON(w, r, periods)
	})
}

// GetKPIByPeriod returns the derived KPIs of one month.
func GetKPIByPeriod(service analyzing.AnalyzerService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		period := httprouter.ParamsFromContext(r.Context()).ByName("period")

		kpi, err := service.GetKPIByPeriod(period)
		if err != nil {
			writeAnalyzerError(w, r, err, "dashboard: kpi lookup failed")
			return
		}

		writeJSON(w, r, kpi)
	})
}

// GetAmpelBoard returns the classified KPI board. ?period=YYYY-MM selects a
// month, the latest by default.
func GetAmpelBoard(service analyzing.AnalyzerService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		board, err := service.GetAmpelBoard(r.URL.Query().Get("period"))
		if err != nil {
			writeAnalyzerError(w, r, err, "dashboard: ampel board failed")
			return
		}

		writeJSON(w, r, board)
	})
}

// GetWaterfall returns the EBIT bridge of one month (latest by default).
func GetWaterfall(service analyzing.AnalyzerService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		waterfall, err := service.GetWaterfall(r.URL.Query().Get("period"))
		if err != nil {
			writeAnalyzerError(w, r, err, "dashboard: waterfall failed")
			return
		}

		writeJSON(w, r, waterfall)
	})
}

// GetAnomalies runs the anomaly screen over the stored series.
func GetAnomalies(service detecting.DetectorService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		anomalies, err := service.DetectAnomalies()
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("dashboard: anomaly detection failed")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "error detecting anomalies", nil)
			return
		}

		writeJSON(w, r, anomalies)
	})
}

func writeAnalyzerError(w http.ResponseWriter, r *http.Request, err error, logMsg string) {
	logger := log.ForContext(r.Context()).WithError(err)

	if errors.Is(err, analyzing.ErrPeriodNotFound) {
		logger.Warn(logMsg)
		apiErrors.WriteError(w, apiErrors.ErrPeriodNotFound, err.Error(), nil)
		return
	}

	logger.Error(logMsg)
	apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)
}
