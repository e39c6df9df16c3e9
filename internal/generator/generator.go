// Package generator materializes the 200-level learning path. Every lesson
// is a pure function of (seed, lesson id): the same seed yields the same
// question selection and option order on any machine, so the client and the
// server never have to exchange lesson content to agree on it.
package generator

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"sync"

	"github.com/ZhalgasKracavshik/smartspeak/pkg/models"
)

// LessonCount is the fixed length of the learning path.
const LessonCount = 200

// ErrNotFound is returned for lesson ids outside 1..LessonCount.
var ErrNotFound = errors.New("lesson not found")

// tierFor returns the difficulty, question count and XP reward for a
// 1-based lesson id. Ids 1-50 are easy, 51-100 medium, 101-150 hard,
// 151-200 extreme — exactly 50 lessons per tier.
func tierFor(id int) (models.Difficulty, int, int) {
	switch ((id - 1) / 50) % 4 {
	case 1:
		return models.DifficultyMedium, 7, 20
	case 2:
		return models.DifficultyHard, 10, 30
	case 3:
		return models.DifficultyExtreme, 12, 50
	default:
		return models.DifficultyEasy, 5, 10
	}
}

// seededRand is the reproducible generator driving question selection and
// option shuffling: frac(sin(state) * 10000) with an incrementing state.
// Not a statistical RNG — the point is that every implementation of the
// content format derives the identical sequence from the same hash.
type seededRand struct {
	state float64
}

func newSeededRand(key string) *seededRand {
	// Character-code sum of the key, matching the original content format.
	var hash int
	for _, r := range key {
		hash += int(r)
	}
	return &seededRand{state: float64(hash)}
}

func (r *seededRand) next() float64 {
	x := math.Sin(r.state) * 10000
	r.state++
	return x - math.Floor(x)
}

// intn returns a value in [0, n).
func (r *seededRand) intn(n int) int {
	v := int(r.next() * float64(n))
	if v >= n { // frac() can land exactly on 1.0 edge after float truncation
		v = n - 1
	}
	return v
}

// shuffled returns a permutation of [0, n) via Fisher-Yates.
func (r *seededRand) shuffled(n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := r.intn(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}

// Generator materializes lessons from the curated banks. Safe for
// concurrent use; the last materialized table is memoized per seed.
type Generator struct {
	banks map[string][]models.QuestionTemplate

	mu       sync.Mutex
	memoSeed string
	memo     []models.Lesson
}

// New returns a Generator over the in-code curated banks.
func New() *Generator {
	return NewWithBank(nil)
}

// NewWithBank returns a Generator whose banks are the curated ones plus
// the given extra templates (e.g. rows loaded from the words import).
// Templates for the same topic are appended after the curated ones, so
// determinism holds per (seed, bank) pair.
func NewWithBank(extra map[string][]models.QuestionTemplate) *Generator {
	banks := make(map[string][]models.QuestionTemplate, len(curatedBanks)+len(extra))
	for topic, entries := range curatedBanks {
		banks[topic] = entries
	}
	for topic, entries := range extra {
		banks[topic] = append(banks[topic], entries...)
	}
	return &Generator{banks: banks}
}

// MaterializeAll regenerates the full 200-lesson table for the seed.
// The result for a given seed is cached until a different seed is asked for.
func (g *Generator) MaterializeAll(seed string) []models.Lesson {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.memoSeed == seed && g.memo != nil {
		return g.memo
	}

	lessons := make([]models.Lesson, 0, LessonCount)
	for i := 1; i <= LessonCount; i++ {
		topic := Topics[(i-1)%len(Topics)]
		difficulty, questionCount, xpReward := tierFor(i)

		lessons = append(lessons, models.Lesson{
			ID:          i,
			Title:       fmt.Sprintf("%s - Уровень %d", topic, i),
			Description: fmt.Sprintf("Освойте %s на уровне %d", topic, i),
			Level:       i,
			Difficulty:  difficulty,
			Topic:       topic,
			XPReward:    xpReward,
			Questions:   g.generateQuestions(topic, questionCount, seed+strconv.Itoa(i)),
		})
	}

	g.memoSeed = seed
	g.memo = lessons
	return lessons
}

// Lesson returns a single lesson. Callers pay the full materialization
// cost on a seed change; the bank is small enough that this is fine.
func (g *Generator) Lesson(id int, seed string) (models.Lesson, error) {
	if id < 1 || id > LessonCount {
		return models.Lesson{}, ErrNotFound
	}
	return g.MaterializeAll(seed)[id-1], nil
}

// Summaries returns the list-view projection of every lesson.
func (g *Generator) Summaries(seed string) []models.LessonSummary {
	lessons := g.MaterializeAll(seed)
	summaries := make([]models.LessonSummary, len(lessons))
	for i, l := range lessons {
		summaries[i] = models.LessonSummary{
			ID:            l.ID,
			Title:         l.Title,
			Topic:         l.Topic,
			Difficulty:    l.Difficulty,
			XPReward:      l.XPReward,
			QuestionCount: len(l.Questions),
		}
	}
	return summaries
}

// ByDifficulty returns all lessons of one tier, in id order.
func (g *Generator) ByDifficulty(d models.Difficulty, seed string) []models.Lesson {
	var out []models.Lesson
	for _, l := range g.MaterializeAll(seed) {
		if l.Difficulty == d {
			out = append(out, l)
		}
	}
	return out
}

// Next returns the lesson after the given level, or the first lesson when
// the path is finished or the level is out of range.
func (g *Generator) Next(currentLevel int, seed string) models.Lesson {
	lessons := g.MaterializeAll(seed)
	if currentLevel >= 0 && currentLevel < len(lessons) {
		return lessons[currentLevel]
	}
	return lessons[0]
}

// generateQuestions materializes the per-user question set for one lesson.
// perLessonSeed is the user seed concatenated with the lesson id, so two
// lessons on the same topic still draw different questions.
func (g *Generator) generateQuestions(topic string, count int, perLessonSeed string) []models.LessonQuestion {
	rng := newSeededRand(perLessonSeed + topic)

	bank := g.banks[topic]
	if len(bank) == 0 {
		return placeholderQuestions(topic, count, rng)
	}

	// Pick distinct bank indices, insertion order preserved.
	want := count
	if len(bank) < want {
		want = len(bank)
	}
	var indices []int
	seen := make(map[int]bool, want)
	for len(indices) < want {
		idx := rng.intn(len(bank))
		if !seen[idx] {
			seen[idx] = true
			indices = append(indices, idx)
		}
	}

	questions := make([]models.LessonQuestion, 0, want)
	for _, idx := range indices {
		tmpl := bank[idx]

		// Permute the options and keep correctAnswer pointing at the
		// same option text it did in the template.
		perm := rng.shuffled(len(tmpl.Options))
		options := make([]string, len(perm))
		correct := 0
		for pos, orig := range perm {
			options[pos] = tmpl.Options[orig]
			if orig == tmpl.Correct {
				correct = pos
			}
		}

		questions = append(questions, models.LessonQuestion{
			Question:      tmpl.Question,
			Options:       options,
			CorrectAnswer: correct,
			Explanation:   tmpl.Explanation,
		})
	}
	return questions
}

// placeholderQuestions synthesizes generic questions for topics without a
// curated bank. Deliberate fallback, not an error: the path stays 200
// lessons long while banks are still being authored.
func placeholderQuestions(topic string, count int, rng *seededRand) []models.LessonQuestion {
	base := []string{"Option A", "Option B", "Option C", "Option D"}
	questions := make([]models.LessonQuestion, count)
	for i := range questions {
		perm := rng.shuffled(len(base))
		options := make([]string, len(perm))
		for pos, orig := range perm {
			options[pos] = base[orig]
		}
		questions[i] = models.LessonQuestion{
			Question:      fmt.Sprintf("%s - Question %d: Choose the correct answer.", topic, i+1),
			Options:       options,
			CorrectAnswer: rng.intn(4),
			Explanation:   fmt.Sprintf("This tests your knowledge of %s.", topic),
		}
	}
	return questions
}
