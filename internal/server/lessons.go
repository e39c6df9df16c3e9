package server

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ZhalgasKracavshik/smartspeak/internal/database"
	"github.com/ZhalgasKracavshik/smartspeak/internal/generator"
	"github.com/ZhalgasKracavshik/smartspeak/internal/progress"
	"github.com/ZhalgasKracavshik/smartspeak/pkg/models"
)

// ensureSeed returns the user's generation seed, minting and persisting a
// fresh one on first use. Lessons are derived from this seed alone, so it
// must stay stable for the user's lifetime.
func ensureSeed(userID string) (string, error) {
	settingsRepo := database.NewSettingsRepository()
	seed, found, err := settingsRepo.Get(userID, database.SeedKey)
	if err != nil {
		return "", err
	}
	if found && seed != "" {
		return seed, nil
	}

	seed = uuid.NewString()
	if err := settingsRepo.Set(userID, database.SeedKey, seed); err != nil {
		return "", err
	}
	return seed, nil
}

func (s *Server) handleListLessons(w http.ResponseWriter, r *http.Request) {
	seed, err := ensureSeed(userID(r))
	if err != nil {
		log.Printf("Error resolving seed: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to resolve seed")
		return
	}

	if d := r.URL.Query().Get("difficulty"); d != "" {
		writeJSON(w, http.StatusOK, s.gen.ByDifficulty(models.Difficulty(d), seed))
		return
	}
	writeJSON(w, http.StatusOK, s.gen.Summaries(seed))
}

func (s *Server) handleGetLesson(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid lesson id")
		return
	}

	seed, err := ensureSeed(userID(r))
	if err != nil {
		log.Printf("Error resolving seed: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to resolve seed")
		return
	}

	lesson, err := s.gen.Lesson(id, seed)
	if errors.Is(err, generator.ErrNotFound) {
		writeError(w, http.StatusNotFound, "no such lesson")
		return
	}
	writeJSON(w, http.StatusOK, lesson)
}

// handleCompleteLesson applies a lesson result. XP is scaled by the score
// fraction: partial mastery yields partial reward.
func (s *Server) handleCompleteLesson(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid lesson id")
		return
	}

	var body struct {
		Correct int `json:"correct"`
		Total   int `json:"total"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	if body.Total <= 0 || body.Correct < 0 || body.Correct > body.Total {
		writeError(w, http.StatusBadRequest, "correct/total out of range")
		return
	}

	seed, err := ensureSeed(userID(r))
	if err != nil {
		log.Printf("Error resolving seed: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to resolve seed")
		return
	}

	lesson, err := s.gen.Lesson(id, seed)
	if errors.Is(err, generator.ErrNotFound) {
		writeError(w, http.StatusNotFound, "no such lesson")
		return
	}

	fraction := float64(body.Correct) / float64(body.Total)
	earnedXP := int(fraction*float64(lesson.XPReward) + 0.5)

	s.applyTransition(w, r, func(p models.UserProgress) models.UserProgress {
		return progress.CompleteLesson(p, id, earnedXP, progress.Today(s.now()))
	})
}
