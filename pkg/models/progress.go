package models

// ProgressSchemaVersion is the current shape of the persisted progress
// document. Older documents are upgraded once at load time.
const ProgressSchemaVersion = 2

// UserProgress is the single mutable aggregate of the learning state.
// It is persisted as a whole document on every change; all transitions
// over it live in internal/progress and never mutate their input.
type UserProgress struct {
	SchemaVersion int `json:"schemaVersion"`

	// Core stats. Level is derived from experience, never set directly.
	Level      int `json:"level"`
	Experience int `json:"experience"`
	Reputation int `json:"reputation"`

	// Learning progress
	CompletedLessons []int `json:"completedLessons"`
	TotalScore       int   `json:"totalScore"`

	// Achievements & streak
	UnlockedAchievements []string   `json:"unlockedAchievements"`
	StreakData           StreakData `json:"streakData"`

	// Mastery counters, all monotonically non-decreasing
	PerfectScores          int `json:"perfectScores"`
	VocabularyMastered     int `json:"vocabularyMastered"`
	PhrasalVerbsMastered   int `json:"phrasalVerbsMastered"`
	GrammarTopicsCompleted int `json:"grammarTopicsCompleted"`

	// Time tracking
	TotalStudyTimeMinutes int    `json:"totalStudyTimeMinutes"`
	LastActivityDate      string `json:"lastActivityDate"`

	// Statistics
	TestsCompleted     int `json:"testsCompleted"`
	FlashcardsReviewed int `json:"flashcardsReviewed"`

	// Visited pages, for the explorer achievement
	VisitedSections []string `json:"visitedSections"`
}

// HasCompletedLesson reports whether the lesson id is already recorded.
func (p *UserProgress) HasCompletedLesson(lessonID int) bool {
	for _, id := range p.CompletedLessons {
		if id == lessonID {
			return true
		}
	}
	return false
}

// HasAchievement reports whether the achievement id is already unlocked.
func (p *UserProgress) HasAchievement(id string) bool {
	for _, a := range p.UnlockedAchievements {
		if a == id {
			return true
		}
	}
	return false
}

// HasVisited reports whether the section was already visited.
func (p *UserProgress) HasVisited(sectionID string) bool {
	for _, s := range p.VisitedSections {
		if s == sectionID {
			return true
		}
	}
	return false
}
