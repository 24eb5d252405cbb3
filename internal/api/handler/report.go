package handler

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/pulsefin/pulse-api/internal/usecases/analyzing"
	"github.com/pulsefin/pulse-api/internal/usecases/reporting"
	"github.com/pulsefin/pulse-api/pkg/apiErrors"
	"github.com/pulsefin/pulse-api/pkg/log"
)

// GetReportSummary returns the formatted numeric block the external report
// layer builds its documents from. ?period=YYYY-MM selects a month, the
// latest by default.
func GetReportSummary(service reporting.ReporterService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.GetSummary(r.URL.Query().Get("period"))
		if err != nil {
			logger := log.ForContext(r.Context()).WithError(err)

			if errors.Is(err, analyzing.ErrPeriodNotFound) {
				logger.Warn("report: summary failed")
				apiErrors.WriteError(w, apiErrors.ErrPeriodNotFound, err.Error(), nil)
				return
			}

			logger.Error("report: summary failed")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "error building report summary", nil)
			return
		}

		writeJSON(w, r, summary)
	})
}
