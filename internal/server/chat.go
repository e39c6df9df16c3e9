package server

import (
	"errors"
	"log"
	"net/http"

	"github.com/ZhalgasKracavshik/smartspeak/internal/ai"
)

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if s.chat == nil {
		writeError(w, http.StatusServiceUnavailable, "AI assistant is not configured")
		return
	}

	var body struct {
		Message string       `json:"message"`
		Context string       `json:"context"`
		History []ai.Message `json:"history"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	if body.Message == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	reply, err := s.chat.Generate(body.Message, body.Context, body.History)
	if err != nil {
		var svcErr *ai.ServiceError
		if errors.As(err, &svcErr) {
			writeError(w, http.StatusBadGateway, svcErr.Message)
			return
		}
		log.Printf("Error generating chat reply: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to generate reply")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"reply": reply})
}
