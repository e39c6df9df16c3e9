package models

// Difficulty is the lesson tier. It determines question count and XP reward.
type Difficulty string

const (
	DifficultyEasy    Difficulty = "easy"
	DifficultyMedium  Difficulty = "medium"
	DifficultyHard    Difficulty = "hard"
	DifficultyExtreme Difficulty = "extreme"
)

// QuestionTemplate is a curated bank entry for a topic. The bank is the
// source of truth; per-user lessons are materialized from it.
type QuestionTemplate struct {
	Question    string   `json:"question" db:"question"`
	Options     []string `json:"options"`
	Correct     int      `json:"correct" db:"correct"`
	Explanation string   `json:"explanation" db:"explanation"`
}

// LessonQuestion is a per-user materialization of a QuestionTemplate:
// same prompt, user-specific option order, remapped correct index.
// Never persisted — always reproducible from (seed, lesson id).
type LessonQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// Lesson is one of the 200 levels on the learning path. Pure derived
// data, regenerated on demand.
type Lesson struct {
	ID          int              `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Level       int              `json:"level"`
	Difficulty  Difficulty       `json:"difficulty"`
	Topic       string           `json:"topic"`
	XPReward    int              `json:"xpReward"`
	Questions   []LessonQuestion `json:"questions"`
}

// LessonSummary is the list-view projection of a Lesson (no questions).
type LessonSummary struct {
	ID            int        `json:"id"`
	Title         string     `json:"title"`
	Topic         string     `json:"topic"`
	Difficulty    Difficulty `json:"difficulty"`
	XPReward      int        `json:"xpReward"`
	QuestionCount int        `json:"questionCount"`
}
