package mockapi

import (
	"net/http"

	"github.com/rpupo63/portfolio-sync/errs"
	"github.com/rpupo63/portfolio-sync/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type settingsHandler struct {
	responder    Responder
	logger       zerolog.Logger
	settingsRepo *SettingsRepo
}

func newSettingsHandler(settingsRepo *SettingsRepo) settingsHandler {
	logger := log.With().Str("handlerName", "settingsHandler").Logger()

	return settingsHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		settingsRepo: settingsRepo,
	}
}

// getSettings answers 404 until the settings are first saved.
func (h settingsHandler) getSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, ok := h.settingsRepo.Find()
		if !ok {
			h.responder.WriteError(w, errs.NewNotFoundError("Site settings not found"))
			return
		}
		h.responder.WriteJSON(w, settings)
	}
}

func (h settingsHandler) updateSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var settings models.SiteSettings
		if err := decodeJSON(r, &settings); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, h.settingsRepo.Save(settings))
	}
}
