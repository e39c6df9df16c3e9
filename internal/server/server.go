// Package server exposes the core to the browser client: lessons,
// progress events, the chat proxy, pronunciation scoring, flashcards and
// settings. Handlers orchestrate only — load document, apply a pure
// transition, persist, schedule sync — all rules live in internal/progress
// and internal/generator.
package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ZhalgasKracavshik/smartspeak/internal/ai"
	"github.com/ZhalgasKracavshik/smartspeak/internal/database"
	"github.com/ZhalgasKracavshik/smartspeak/internal/generator"
	syncpkg "github.com/ZhalgasKracavshik/smartspeak/internal/sync"
)

// Server wires the core components behind the HTTP API.
type Server struct {
	gen    *generator.Generator
	chat   *ai.Gemini // nil when no credential is configured
	sync   *syncpkg.Manager
	remote *database.RemoteStore // nil in local-only deployments
	now    func() time.Time
}

// New creates a server. chat and remote may be nil; the chat endpoint then
// reports a service error instead of proxying, and progress stays local.
func New(gen *generator.Generator, chat *ai.Gemini, syncMgr *syncpkg.Manager, remote *database.RemoteStore) *Server {
	return &Server{gen: gen, chat: chat, sync: syncMgr, remote: remote, now: time.Now}
}

type ctxKey int

const userIDKey ctxKey = 0

// Router builds the API route table.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	r.Route("/api", func(r chi.Router) {
		r.Use(requireUser)

		r.Get("/lessons", s.handleListLessons)
		r.Get("/lessons/{id}", s.handleGetLesson)
		r.Post("/lessons/{id}/complete", s.handleCompleteLesson)

		r.Get("/progress", s.handleGetProgress)
		r.Post("/tests/complete", s.handleCompleteTest)
		r.Post("/vocabulary/mastered", s.handleVocabularyMastered)
		r.Post("/phrasal-verbs/mastered", s.handlePhrasalVerbsMastered)
		r.Post("/grammar/completed", s.handleGrammarCompleted)
		r.Post("/flashcards/reviewed", s.handleFlashcardsReviewed)
		r.Post("/study-time", s.handleStudyTime)
		r.Post("/sections/{id}/visit", s.handleSectionVisit)

		r.Get("/streak", s.handleGetStreak)
		r.Post("/streak/freeze", s.handleStreakFreeze)

		r.Post("/chat", s.handleChat)
		r.Post("/pronunciation/score", s.handlePronunciationScore)

		r.Get("/flashcards", s.handleListFlashcards)

		r.Get("/settings/{key}", s.handleGetSetting)
		r.Put("/settings/{key}", s.handlePutSetting)
	})

	return r
}

// requireUser pulls the anonymous user id the client generated on first
// run. No authentication — the id scopes data, nothing more.
func requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-User-ID")
		if userID == "" {
			writeError(w, http.StatusBadRequest, "missing X-User-ID header")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, userID)))
	})
}

func userID(r *http.Request) string {
	id, _ := r.Context().Value(userIDKey).(string)
	return id
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
