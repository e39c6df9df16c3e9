package server

import (
	"net/http"

	"github.com/ZhalgasKracavshik/smartspeak/pkg/textutil"
)

// Score bands for pronunciation practice.
const (
	pronunciationExcellent = 80
	pronunciationGood      = 50
)

func (s *Server) handlePronunciationScore(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Target     string `json:"target"`
		Transcript string `json:"transcript"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	if body.Target == "" {
		writeError(w, http.StatusBadRequest, "target is required")
		return
	}

	score := textutil.Similarity(body.Target, body.Transcript)

	verdict := "try-again"
	switch {
	case score >= pronunciationExcellent:
		verdict = "excellent"
	case score >= pronunciationGood:
		verdict = "good"
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"score":   score,
		"verdict": verdict,
	})
}
