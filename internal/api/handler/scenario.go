package handler

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/pulsefin/pulse-api/internal/domain"
	"github.com/pulsefin/pulse-api/internal/usecases/simulating"
	"github.com/pulsefin/pulse-api/pkg/apiErrors"
	"github.com/pulsefin/pulse-api/pkg/log"
)

type SimulateRequest struct {
	Period         string               `json:"period"`
	Delta          domain.ScenarioDelta `json:"delta"`
	ForecastMonths int                  `json:"forecastMonths"`
}

// Simulate applies a what-if delta to a baseline month.
func Simulate(service simulating.SimulatorService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req SimulateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		result, err := service.Simulate(req.Period, req.Delta, req.ForecastMonths)
		if err != nil {
			writeSimulatorError(w, r, err)
			return
		}

		writeJSON(w, r, result)
	})
}

// ListPresets returns all scenario presets, built-ins first.
func ListPresets(service simulating.SimulatorService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		presets, err := service.GetPresets()
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("scenario: listing presets failed")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "error loading presets", nil)
			return
		}

		writeJSON(w, r, presets)
	})
}

type UpsertPresetRequest struct {
	Key   string               `json:"key"`
	Label string               `json:"label"`
	Delta domain.ScenarioDelta `json:"delta"`
}

// UpsertPreset saves the submitted delta under a fresh key, or renames an
// existing preset when a key is supplied.
func UpsertPreset(service simulating.SimulatorService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req UpsertPresetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		if req.Key != "" {
			if err := service.RenamePreset(req.Key, req.Label); err != nil {
				log.ForContext(r.Context()).WithError(err).Warn("scenario: renaming preset failed")
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
				return
			}
			w.WriteHeader(http.StatusNoContent)
			return
		}

		preset, err := service.SavePreset(req.Label, req.Delta)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("scenario: saving preset failed")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(preset); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("encoding response")
		}
	})
}

// ResetPresets restores the built-in presets, dropping user-defined ones.
func ResetPresets(service simulating.SimulatorService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		presets, err := service.ResetPresets()
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("scenario: resetting presets failed")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "error resetting presets", nil)
			return
		}

		writeJSON(w, r, presets)
	})
}

func writeSimulatorError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	if errors.Is(err, simulating.ErrPeriodNotFound) {
		logger.Warn("scenario: simulation failed")
		apiErrors.WriteError(w, apiErrors.ErrPeriodNotFound, err.Error(), nil)
		return
	}

	logger.Warn("scenario: simulation rejected")
	apiErrors.WriteError(w, apiErrors.ErrInvalidDelta, err.Error(), nil)
}
