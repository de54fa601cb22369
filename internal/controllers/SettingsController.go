package controllers

import (
	json "github.com/goccy/go-json"
	"iconpicker/internal/models"
	"iconpicker/internal/providers"
	"iconpicker/internal/services"
	"net/http"
)

type SettingsController struct {
	logger  providers.Logger
	service services.SettingsServiceInterface
}

func NewSettingsController(logger providers.Logger, service services.SettingsServiceInterface) *SettingsController {
	return &SettingsController{logger: logger, service: service}
}

func (sc *SettingsController) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := sc.service.Load(r.Context())
	if err != nil {
		writeError(w, r, sc.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (sc *SettingsController) SaveSettings(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload models.Settings
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	ids, err := sc.service.Save(r.Context(), payload)
	if err != nil {
		writeError(w, r, sc.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, ids)
}
