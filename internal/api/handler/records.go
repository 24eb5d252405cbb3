package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"

	"github.com/pulsefin/pulse-api/internal/domain"
	"github.com/pulsefin/pulse-api/internal/usecases/dataset"
	"github.com/pulsefin/pulse-api/pkg/apiErrors"
	"github.com/pulsefin/pulse-api/pkg/log"
)

// ListRecords returns the full raw dataset ordered by period.
func ListRecords(service dataset.DatasetService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		records, err := service.GetRecords()
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("records: listing failed")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "error loading records", nil)
			return
		}

		writeJSON(w, r, records)
	})
}

// SaveRecord upserts a single month.
func SaveRecord(service dataset.DatasetService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var record domain.RawMonthRecord
		if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		if err := service.SaveRecord(&record); err != nil {
			writeDatasetError(w, r, err, "records: save failed")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

type ReplaceRecordsResponse struct {
	Imported int `json:"imported"`
}

// ReplaceRecords swaps the whole dataset, e.g. on import.
func ReplaceRecords(service dataset.DatasetService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var records []*domain.RawMonthRecord
		if err := json.NewDecoder(r.Body).Decode(&records); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		n, err := service.ReplaceRecords(records)
		if err != nil {
			writeDatasetError(w, r, err, "records: replace failed")
			return
		}

		log.ForContext(r.Context()).WithField("imported", n).Info("records: dataset replaced")
		writeJSON(w, r, ReplaceRecordsResponse{Imported: n})
	})
}

// DeleteRecord removes one month by period.
func DeleteRecord(service dataset.DatasetService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		period := httprouter.ParamsFromContext(r.Context()).ByName("period")

		if err := service.DeleteRecord(period); err != nil {
			if errors.Is(err, dataset.ErrPeriodNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrPeriodNotFound, err.Error(), nil)
				return
			}
			writeDatasetError(w, r, err, "records: delete failed")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func writeDatasetError(w http.ResponseWriter, r *http.Request, err error, logMsg string) {
	log.ForContext(r.Context()).WithError(err).Warn(logMsg)
	apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)
}
