package server

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ZhalgasKracavshik/smartspeak/internal/database"
)

// Settings clients may read and write through the API. The seed is
// read-only: it is minted by the server and must never change once
// lessons have been generated with it.
var writableSettings = map[string]bool{
	database.TelegramChatKey: true,
	"interface-language":     true,
	"daily-goal-minutes":     true,
	"voice-rate":             true,
	"theme":                  true,
	"selected-grade":         true,
	"show-translations":      true,
}

var readableSettings = map[string]bool{
	database.SeedKey:         true,
	database.TelegramChatKey: true,
	"interface-language":     true,
	"daily-goal-minutes":     true,
	"voice-rate":             true,
	"theme":                  true,
	"selected-grade":         true,
	"show-translations":      true,
}

func (s *Server) handleGetSetting(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if !readableSettings[key] {
		writeError(w, http.StatusNotFound, "unknown setting")
		return
	}

	value, found, err := database.NewSettingsRepository().Get(userID(r), key)
	if err != nil {
		log.Printf("Error reading setting %s: %v", key, err)
		writeError(w, http.StatusInternalServerError, "failed to read setting")
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "setting not set")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"key": key, "value": value})
}

func (s *Server) handlePutSetting(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if !writableSettings[key] {
		writeError(w, http.StatusForbidden, "setting is not writable")
		return
	}

	var body struct {
		Value string `json:"value"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	if body.Value == "" {
		writeError(w, http.StatusBadRequest, "value is required")
		return
	}

	if err := database.NewSettingsRepository().Set(userID(r), key, body.Value); err != nil {
		log.Printf("Error writing setting %s: %v", key, err)
		writeError(w, http.StatusInternalServerError, "failed to write setting")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"key": key, "value": body.Value})
}
