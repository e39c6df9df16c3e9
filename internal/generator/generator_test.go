package generator

import (
	"reflect"
	"testing"

	"github.com/ZhalgasKracavshik/smartspeak/pkg/models"
)

func TestMaterializeAllIsDeterministic(t *testing.T) {
	a := New().MaterializeAll("seed-alpha")
	b := New().MaterializeAll("seed-alpha")

	if len(a) != LessonCount {
		t.Fatalf("expected %d lessons, got %d", LessonCount, len(a))
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed produced different lesson tables")
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := New().MaterializeAll("seed-alpha")
	b := New().MaterializeAll("seed-beta")

	if reflect.DeepEqual(a, b) {
		t.Errorf("different seeds produced identical lesson tables")
	}
}

func TestTierLayout(t *testing.T) {
	tests := []struct {
		id         int
		difficulty models.Difficulty
		questions  int
		xp         int
	}{
		{1, models.DifficultyEasy, 5, 10},
		{50, models.DifficultyEasy, 5, 10},
		{51, models.DifficultyMedium, 7, 20},
		{100, models.DifficultyMedium, 7, 20},
		{101, models.DifficultyHard, 10, 30},
		{150, models.DifficultyHard, 10, 30},
		{151, models.DifficultyExtreme, 12, 50},
		{200, models.DifficultyExtreme, 12, 50},
	}

	g := New()
	for _, tt := range tests {
		lesson, err := g.Lesson(tt.id, "seed")
		if err != nil {
			t.Fatalf("Lesson(%d): %v", tt.id, err)
		}
		if lesson.Difficulty != tt.difficulty {
			t.Errorf("lesson %d: difficulty = %s, want %s", tt.id, lesson.Difficulty, tt.difficulty)
		}
		if len(lesson.Questions) != tt.questions {
			t.Errorf("lesson %d: %d questions, want %d", tt.id, len(lesson.Questions), tt.questions)
		}
		if lesson.XPReward != tt.xp {
			t.Errorf("lesson %d: xpReward = %d, want %d", tt.id, lesson.XPReward, tt.xp)
		}
	}
}

func TestTopicRotation(t *testing.T) {
	g := New()
	for _, id := range []int{1, 2, 16, 17, 33, 200} {
		lesson, err := g.Lesson(id, "seed")
		if err != nil {
			t.Fatalf("Lesson(%d): %v", id, err)
		}
		want := Topics[(id-1)%len(Topics)]
		if lesson.Topic != want {
			t.Errorf("lesson %d: topic = %q, want %q", id, lesson.Topic, want)
		}
	}
}

func TestLessonOutOfRange(t *testing.T) {
	g := New()
	for _, id := range []int{0, -1, 201, 1000} {
		if _, err := g.Lesson(id, "seed"); err != ErrNotFound {
			t.Errorf("Lesson(%d): err = %v, want ErrNotFound", id, err)
		}
	}
}

// Shuffled options must still carry the correct answer: the option at
// CorrectAnswer has to be the same text the source template marks correct.
func TestCorrectAnswerSurvivesShuffle(t *testing.T) {
	byQuestion := make(map[string]models.QuestionTemplate)
	for _, bank := range curatedBanks {
		for _, tmpl := range bank {
			byQuestion[tmpl.Question] = tmpl
		}
	}

	for _, lesson := range New().MaterializeAll("integrity-seed") {
		if _, curated := curatedBanks[lesson.Topic]; !curated {
			continue
		}
		for _, q := range lesson.Questions {
			tmpl, ok := byQuestion[q.Question]
			if !ok {
				t.Fatalf("lesson %d: question %q not in any bank", lesson.ID, q.Question)
			}
			if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
				t.Fatalf("lesson %d: correctAnswer %d out of range", lesson.ID, q.CorrectAnswer)
			}
			if got, want := q.Options[q.CorrectAnswer], tmpl.Options[tmpl.Correct]; got != want {
				t.Errorf("lesson %d: correct option = %q, want %q", lesson.ID, got, want)
			}
		}
	}
}

func TestQuestionsAreDistinctWithinLesson(t *testing.T) {
	for _, lesson := range New().MaterializeAll("distinct-seed") {
		if _, curated := curatedBanks[lesson.Topic]; !curated {
			continue
		}
		seen := make(map[string]bool)
		for _, q := range lesson.Questions {
			if seen[q.Question] {
				t.Errorf("lesson %d repeats question %q", lesson.ID, q.Question)
			}
			seen[q.Question] = true
		}
	}
}

func TestByDifficultyPartition(t *testing.T) {
	g := New()
	total := 0
	for _, d := range []models.Difficulty{
		models.DifficultyEasy, models.DifficultyMedium,
		models.DifficultyHard, models.DifficultyExtreme,
	} {
		lessons := g.ByDifficulty(d, "seed")
		if len(lessons) != 50 {
			t.Errorf("%s: %d lessons, want 50", d, len(lessons))
		}
		total += len(lessons)
	}
	if total != LessonCount {
		t.Errorf("tiers cover %d lessons, want %d", total, LessonCount)
	}
}

func TestNext(t *testing.T) {
	g := New()

	if next := g.Next(0, "seed"); next.ID != 1 {
		t.Errorf("Next(0) = lesson %d, want 1", next.ID)
	}
	if next := g.Next(41, "seed"); next.ID != 42 {
		t.Errorf("Next(41) = lesson %d, want 42", next.ID)
	}
	// Finished path wraps to the start.
	if next := g.Next(LessonCount, "seed"); next.ID != 1 {
		t.Errorf("Next(%d) = lesson %d, want 1", LessonCount, next.ID)
	}
	if next := g.Next(-5, "seed"); next.ID != 1 {
		t.Errorf("Next(-5) = lesson %d, want 1", next.ID)
	}
}

func TestSummariesMatchLessons(t *testing.T) {
	g := New()
	lessons := g.MaterializeAll("seed")
	summaries := g.Summaries("seed")

	if len(summaries) != len(lessons) {
		t.Fatalf("%d summaries for %d lessons", len(summaries), len(lessons))
	}
	for i, s := range summaries {
		if s.ID != lessons[i].ID || s.QuestionCount != len(lessons[i].Questions) {
			t.Errorf("summary %d does not match its lesson", s.ID)
		}
	}
}

func TestNewWithBankExtendsTopic(t *testing.T) {
	extra := map[string][]models.QuestionTemplate{
		"Articles": {
			{Question: "___ apple a day keeps the doctor away.", Options: []string{"A", "An", "The", "-"}, Correct: 1, Explanation: "Vowel sound takes 'an'."},
		},
	}
	g := NewWithBank(extra)

	// Lesson 13 is the first Articles lesson; with a one-template bank
	// every question must be that template.
	lesson, err := g.Lesson(13, "seed")
	if err != nil {
		t.Fatalf("Lesson(13): %v", err)
	}
	if lesson.Topic != "Articles" {
		t.Fatalf("lesson 13 topic = %q, want Articles", lesson.Topic)
	}
	if len(lesson.Questions) != 1 {
		t.Fatalf("one-template bank produced %d questions, want 1", len(lesson.Questions))
	}
	if lesson.Questions[0].Question != extra["Articles"][0].Question {
		t.Errorf("question = %q, want the imported template", lesson.Questions[0].Question)
	}

	// The curated banks themselves must not grow.
	if plain := New().MaterializeAll("seed"); plain[12].Topic != "Articles" || len(plain[12].Questions) != 5 {
		t.Errorf("base generator affected by NewWithBank")
	}
}

func TestPlaceholderTopicsStillFillTheLesson(t *testing.T) {
	// Past Continuous (lesson 4) has no curated bank yet.
	lesson, err := New().Lesson(4, "seed")
	if err != nil {
		t.Fatalf("Lesson(4): %v", err)
	}
	if len(lesson.Questions) != 5 {
		t.Fatalf("placeholder lesson has %d questions, want 5", len(lesson.Questions))
	}
	for _, q := range lesson.Questions {
		if len(q.Options) != 4 {
			t.Errorf("placeholder question has %d options, want 4", len(q.Options))
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer > 3 {
			t.Errorf("placeholder correctAnswer %d out of range", q.CorrectAnswer)
		}
	}
}

func TestSeededRandRange(t *testing.T) {
	rng := newSeededRand("range-check")
	for i := 0; i < 1000; i++ {
		v := rng.intn(4)
		if v < 0 || v > 3 {
			t.Fatalf("intn(4) = %d", v)
		}
	}
}
