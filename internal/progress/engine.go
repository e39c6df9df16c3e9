// Package progress is the gamification state machine over UserProgress.
// Every transition is a pure function (UserProgress, event) -> UserProgress:
// inputs are never mutated, "today" and the wall-clock hour are supplied by
// the caller, and persistence happens outside the package. The zero-value
// record from NewProgress is both the initial state and a replayable one.
package progress

import (
	"time"

	"github.com/ZhalgasKracavshik/smartspeak/pkg/models"
)

// XPPerLevel is the flat XP cost of a level: level = experience/100 + 1.
const XPPerLevel = 100

// DateLayout is the civil-date form used for streak bookkeeping.
const DateLayout = "2006-01-02"

// NewProgress returns the initial progress record for a fresh user.
func NewProgress() models.UserProgress {
	return models.UserProgress{
		SchemaVersion:        models.ProgressSchemaVersion,
		Level:                1,
		CompletedLessons:     []int{},
		UnlockedAchievements: []string{},
		VisitedSections:      []string{},
		StreakData:           NewStreakData(),
	}
}

// CalculateLevel derives the level from total experience.
func CalculateLevel(experience int) int {
	return experience/XPPerLevel + 1
}

// ExperienceForNextLevel returns the cumulative XP needed to leave the
// given level.
func ExperienceForNextLevel(currentLevel int) int {
	return currentLevel * XPPerLevel
}

// ProgressToNextLevel returns how far into the current level the user is,
// as a percentage.
func ProgressToNextLevel(experience int) float64 {
	inLevel := experience - (CalculateLevel(experience)-1)*XPPerLevel
	return float64(inLevel) / float64(XPPerLevel) * 100
}

// AddExperience grants XP and recomputes the derived fields. Reputation
// grows by a tenth of the grant, totalScore by the whole grant.
// Precondition: amount >= 0 — negative amounts are a caller bug, not a
// runtime-checked error.
func AddExperience(p models.UserProgress, amount int) models.UserProgress {
	out := p
	out.Experience = p.Experience + amount
	out.Level = CalculateLevel(out.Experience)
	out.Reputation = p.Reputation + amount/10
	out.TotalScore = p.TotalScore + amount
	return out
}

// CompleteLesson records a lesson completion on the given day. Completing
// an already-completed lesson is the identity — no double XP. earnedXP is
// the caller-computed round(correctFraction * lesson XP reward).
func CompleteLesson(p models.UserProgress, lessonID, earnedXP int, today string) models.UserProgress {
	if p.HasCompletedLesson(lessonID) {
		return p
	}

	out := AddExperience(p, earnedXP)
	out.CompletedLessons = appendInts(p.CompletedLessons, lessonID)
	out.StreakData = UpdateStreak(out.StreakData, today)
	out.LastActivityDate = today
	return CheckAllAchievements(out)
}

// RecordTestCompletion records a timed-test result. The raw 0-100 score is
// used directly as XP — intentionally simpler than the lesson path's
// fractional scaling. The perfect-score counter is bumped before XP so the
// perfect-score achievement sees it in the same evaluation pass.
func RecordTestCompletion(p models.UserProgress, score int, today string) models.UserProgress {
	out := p
	out.TestsCompleted = p.TestsCompleted + 1
	if score == 100 {
		out.PerfectScores = out.PerfectScores + 1
	}
	out = AddExperience(out, score)
	out.StreakData = UpdateStreak(out.StreakData, today)
	out.LastActivityDate = today
	return CheckAllAchievements(out)
}

// RecordVocabularyMastery bumps the mastered-words counter. No XP side
// effect; achievements are re-evaluated.
func RecordVocabularyMastery(p models.UserProgress, count int) models.UserProgress {
	out := p
	out.VocabularyMastered = p.VocabularyMastered + count
	return CheckAllAchievements(out)
}

// RecordPhrasalVerbMastery bumps the phrasal-verbs counter.
func RecordPhrasalVerbMastery(p models.UserProgress, count int) models.UserProgress {
	out := p
	out.PhrasalVerbsMastered = p.PhrasalVerbsMastered + count
	return CheckAllAchievements(out)
}

// RecordGrammarTopicCompletion bumps the grammar-topics counter.
func RecordGrammarTopicCompletion(p models.UserProgress) models.UserProgress {
	out := p
	out.GrammarTopicsCompleted = p.GrammarTopicsCompleted + 1
	return CheckAllAchievements(out)
}

// RecordFlashcardReview bumps the reviewed-flashcards counter.
func RecordFlashcardReview(p models.UserProgress, count int) models.UserProgress {
	out := p
	out.FlashcardsReviewed = p.FlashcardsReviewed + count
	return out
}

// AddStudyTime accumulates study minutes.
func AddStudyTime(p models.UserProgress, minutes int) models.UserProgress {
	out := p
	out.TotalStudyTimeMinutes = p.TotalStudyTimeMinutes + minutes
	return out
}

// RecordSectionVisit marks a page as visited. Idempotent; achievements are
// only re-evaluated when the visit completes the full required set, since
// ordinary visits cannot unlock anything else.
func RecordSectionVisit(p models.UserProgress, sectionID string) models.UserProgress {
	if p.HasVisited(sectionID) {
		return p
	}

	out := p
	out.VisitedSections = appendStrings(p.VisitedSections, sectionID)

	for _, s := range RequiredSections {
		if !out.HasVisited(s) {
			return out
		}
	}
	return CheckAllAchievements(out)
}

// Today formats a wall-clock instant as the civil date the streak
// transitions expect.
func Today(t time.Time) string {
	return t.Format(DateLayout)
}

// appendStrings copies before appending so transitions never share a
// backing array with their input.
func appendStrings(in []string, add ...string) []string {
	out := make([]string, len(in), len(in)+len(add))
	copy(out, in)
	return append(out, add...)
}

func appendInts(in []int, add ...int) []int {
	out := make([]int, len(in), len(in)+len(add))
	copy(out, in)
	return append(out, add...)
}
