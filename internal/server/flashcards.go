package server

import (
	"log"
	"net/http"
	"strconv"

	"github.com/ZhalgasKracavshik/smartspeak/internal/database"
	"github.com/ZhalgasKracavshik/smartspeak/pkg/models"
)

const defaultFlashcardLimit = 20

func (s *Server) handleListFlashcards(w http.ResponseWriter, r *http.Request) {
	repo := database.NewWordRepository()

	limit := defaultFlashcardLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	var (
		words []models.Word
		err   error
	)
	switch {
	case r.URL.Query().Get("topic") != "":
		var topicID int64
		topicID, err = strconv.ParseInt(r.URL.Query().Get("topic"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid topic")
			return
		}
		words, err = repo.GetByTopic(topicID, limit)
	case r.URL.Query().Get("level") != "":
		words, err = repo.GetByLevel(r.URL.Query().Get("level"), limit)
	default:
		words, err = repo.GetAll()
	}
	if err != nil {
		log.Printf("Error loading flashcards: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to load flashcards")
		return
	}

	writeJSON(w, http.StatusOK, words)
}
