package handler

import (
	"net/http"

	"github.com/pulsefin/pulse-api/internal/domain"
	"github.com/pulsefin/pulse-api/internal/usecases/configuring"
	"github.com/pulsefin/pulse-api/pkg/apiErrors"
	"github.com/pulsefin/pulse-api/pkg/log"
)

func GetSettings(service configuring.SettingsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		settings, err := service.GetSettings()
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("settings: loading failed")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "error loading settings", nil)
			return
		}

		writeJSON(w, r, settings)
	})
}

func SaveSettings(service configuring.SettingsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var settings domain.Settings
		if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		saved, err := service.SaveSettings(&settings)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("settings: saving failed")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		writeJSON(w, r, saved)
	})
}
