package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ZhalgasKracavshik/smartspeak/internal/database"
	"github.com/ZhalgasKracavshik/smartspeak/internal/progress"
	"github.com/ZhalgasKracavshik/smartspeak/pkg/models"
)

// progressResponse is returned by every mutating progress endpoint.
type progressResponse struct {
	Progress        models.UserProgress `json:"progress"`
	NewAchievements []string            `json:"newAchievements"`
}

// loadProgress fetches and upgrades the user's document. A local miss
// falls through to the remote mirror, so a user continuing on a new
// machine picks up where they left off; truly new users get a fresh
// record. The remote copy is re-saved locally on the next write.
func (s *Server) loadProgress(userID string) (models.UserProgress, error) {
	raw, found, err := database.NewProgressRepository().Get(userID)
	if err != nil {
		return models.UserProgress{}, err
	}
	if !found && s.remote != nil {
		raw, found, err = s.remote.FetchProgress(userID)
		if err != nil {
			log.Printf("Remote fetch failed for user %s: %v", userID, err)
			found = false
		}
	}
	if !found {
		return progress.NewProgress(), nil
	}
	return progress.Upgrade(raw)
}

// saveProgress persists the document locally and schedules the remote
// mirror write. A remote failure never propagates: local state is
// authoritative.
func (s *Server) saveProgress(userID string, p models.UserProgress) error {
	doc, err := json.Marshal(p)
	if err != nil {
		return err
	}
	if err := database.NewProgressRepository().Upsert(userID, p.SchemaVersion, doc); err != nil {
		return err
	}
	if s.sync != nil {
		s.sync.Schedule(userID, p.SchemaVersion, doc)
	}
	return nil
}

// applyTransition runs one pure transition over the stored document and
// writes the result back, reporting achievements the transition unlocked.
func (s *Server) applyTransition(w http.ResponseWriter, r *http.Request, transition func(models.UserProgress) models.UserProgress) {
	uid := userID(r)

	before, err := s.loadProgress(uid)
	if err != nil {
		log.Printf("Error loading progress for user %s: %v", uid, err)
		writeError(w, http.StatusInternalServerError, "failed to load progress")
		return
	}

	after := transition(before)

	// Hour-based awards piggyback on any activity event, as in the client.
	after = progress.CheckTimeBasedAchievements(after, s.now().Hour())

	if err := s.saveProgress(uid, after); err != nil {
		log.Printf("Error saving progress for user %s: %v", uid, err)
		writeError(w, http.StatusInternalServerError, "failed to save progress")
		return
	}

	writeJSON(w, http.StatusOK, progressResponse{
		Progress:        after,
		NewAchievements: newlyUnlocked(before, after),
	})
}

func newlyUnlocked(before, after models.UserProgress) []string {
	fresh := []string{}
	for _, id := range after.UnlockedAchievements {
		if !before.HasAchievement(id) {
			fresh = append(fresh, id)
		}
	}
	return fresh
}

func (s *Server) handleGetProgress(w http.ResponseWriter, r *http.Request) {
	p, err := s.loadProgress(userID(r))
	if err != nil {
		log.Printf("Error loading progress: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to load progress")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleCompleteTest(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Score int `json:"score"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	if body.Score < 0 || body.Score > 100 {
		writeError(w, http.StatusBadRequest, "score out of range")
		return
	}

	s.applyTransition(w, r, func(p models.UserProgress) models.UserProgress {
		return progress.RecordTestCompletion(p, body.Score, progress.Today(s.now()))
	})
}

// countBody reads an optional {"count": n} body; default 1.
func countBody(w http.ResponseWriter, r *http.Request) (int, bool) {
	var body struct {
		Count *int `json:"count"`
	}
	if r.ContentLength != 0 && !decodeBody(w, r, &body) {
		return 0, false
	}
	if body.Count == nil {
		return 1, true
	}
	if *body.Count <= 0 {
		writeError(w, http.StatusBadRequest, "count must be positive")
		return 0, false
	}
	return *body.Count, true
}

func (s *Server) handleVocabularyMastered(w http.ResponseWriter, r *http.Request) {
	count, ok := countBody(w, r)
	if !ok {
		return
	}
	s.applyTransition(w, r, func(p models.UserProgress) models.UserProgress {
		return progress.RecordVocabularyMastery(p, count)
	})
}

func (s *Server) handlePhrasalVerbsMastered(w http.ResponseWriter, r *http.Request) {
	count, ok := countBody(w, r)
	if !ok {
		return
	}
	s.applyTransition(w, r, func(p models.UserProgress) models.UserProgress {
		return progress.RecordPhrasalVerbMastery(p, count)
	})
}

func (s *Server) handleGrammarCompleted(w http.ResponseWriter, r *http.Request) {
	s.applyTransition(w, r, progress.RecordGrammarTopicCompletion)
}

func (s *Server) handleFlashcardsReviewed(w http.ResponseWriter, r *http.Request) {
	count, ok := countBody(w, r)
	if !ok {
		return
	}
	s.applyTransition(w, r, func(p models.UserProgress) models.UserProgress {
		return progress.RecordFlashcardReview(p, count)
	})
}

func (s *Server) handleStudyTime(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Minutes int `json:"minutes"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	if body.Minutes <= 0 {
		writeError(w, http.StatusBadRequest, "minutes must be positive")
		return
	}
	s.applyTransition(w, r, func(p models.UserProgress) models.UserProgress {
		return progress.AddStudyTime(p, body.Minutes)
	})
}

func (s *Server) handleSectionVisit(w http.ResponseWriter, r *http.Request) {
	sectionID := chi.URLParam(r, "id")
	s.applyTransition(w, r, func(p models.UserProgress) models.UserProgress {
		return progress.RecordSectionVisit(p, sectionID)
	})
}

func (s *Server) handleGetStreak(w http.ResponseWriter, r *http.Request) {
	p, err := s.loadProgress(userID(r))
	if err != nil {
		log.Printf("Error loading progress: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to load progress")
		return
	}

	today := progress.Today(s.now())
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"streak":     p.StreakData,
		"status":     progress.CurrentStatus(p.StreakData, today),
		"motivation": progress.StreakMotivation(p.StreakData.CurrentStreak),
		"calendar":   progress.CalendarWindow(p.StreakData, today, 3),
	})
}

func (s *Server) handleStreakFreeze(w http.ResponseWriter, r *http.Request) {
	uid := userID(r)

	p, err := s.loadProgress(uid)
	if err != nil {
		log.Printf("Error loading progress: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to load progress")
		return
	}

	frozen, err := progress.UseStreakFreeze(p.StreakData, progress.Today(s.now()))
	if errors.Is(err, progress.ErrNoFreeze) {
		writeError(w, http.StatusConflict, "no streak freeze available")
		return
	}

	p.StreakData = frozen
	if err := s.saveProgress(uid, p); err != nil {
		log.Printf("Error saving progress: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to save progress")
		return
	}
	writeJSON(w, http.StatusOK, p)
}
