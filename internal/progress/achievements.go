package progress

import "github.com/ZhalgasKracavshik/smartspeak/pkg/models"

// RequiredSections is the full set of app pages the explorer achievement
// needs visited.
var RequiredSections = []string{
	"home", "learning-path", "test-levels", "flashcards", "materials", "about",
}

// Achievements is the static catalog. Unlock conditions are evaluated
// against progress counters in CheckAllAchievements; early-bird and
// night-owl are awarded out-of-band by CheckTimeBasedAchievements, and
// speed-demon / comeback are catalog-only for now (displayed, never
// auto-awarded).
var Achievements = []models.Achievement{
	// Learning
	{ID: "first-lesson", Title: "Первые шаги", Description: "Завершите первый урок", Icon: "🎯", Category: models.CategoryLearning, Requirement: 1, Rarity: models.RarityCommon, XPReward: 10},
	{ID: "lessons-10", Title: "Начинающий", Description: "Завершите 10 уроков", Icon: "📚", Category: models.CategoryLearning, Requirement: 10, Rarity: models.RarityCommon, XPReward: 50},
	{ID: "lessons-50", Title: "Прилежный ученик", Description: "Завершите 50 уроков", Icon: "🎓", Category: models.CategoryLearning, Requirement: 50, Rarity: models.RarityRare, XPReward: 200},
	{ID: "lessons-100", Title: "Мастер обучения", Description: "Завершите 100 уроков", Icon: "🏆", Category: models.CategoryLearning, Requirement: 100, Rarity: models.RarityEpic, XPReward: 500},
	{ID: "lessons-200", Title: "Легенда SmartSpeak", Description: "Завершите все 200 уроков", Icon: "👑", Category: models.CategoryLearning, Requirement: 200, Rarity: models.RarityLegendary, XPReward: 1000},

	// Levels
	{ID: "level-5", Title: "Уровень 5", Description: "Достигните 5 уровня", Icon: "⭐", Category: models.CategoryLearning, Requirement: 5, Rarity: models.RarityCommon, XPReward: 25},
	{ID: "level-10", Title: "Уровень 10", Description: "Достигните 10 уровня", Icon: "🌟", Category: models.CategoryLearning, Requirement: 10, Rarity: models.RarityCommon, XPReward: 50},
	{ID: "level-25", Title: "Уровень 25", Description: "Достигните 25 уровня", Icon: "💫", Category: models.CategoryLearning, Requirement: 25, Rarity: models.RarityRare, XPReward: 150},
	{ID: "level-50", Title: "Уровень 50", Description: "Достигните 50 уровня", Icon: "✨", Category: models.CategoryLearning, Requirement: 50, Rarity: models.RarityEpic, XPReward: 300},
	{ID: "level-100", Title: "Уровень 100", Description: "Достигните 100 уровня", Icon: "🔥", Category: models.CategoryLearning, Requirement: 100, Rarity: models.RarityLegendary, XPReward: 1000},

	// Streaks
	{ID: "streak-3", Title: "Начало привычки", Description: "3 дня подряд", Icon: "🔥", Category: models.CategoryStreak, Requirement: 3, Rarity: models.RarityCommon, XPReward: 30},
	{ID: "streak-7", Title: "Неделя силы", Description: "7 дней подряд", Icon: "🔥", Category: models.CategoryStreak, Requirement: 7, Rarity: models.RarityRare, XPReward: 100},
	{ID: "streak-14", Title: "Две недели", Description: "14 дней подряд", Icon: "🔥", Category: models.CategoryStreak, Requirement: 14, Rarity: models.RarityRare, XPReward: 200},
	{ID: "streak-30", Title: "Месяц дисциплины", Description: "30 дней подряд", Icon: "🔥", Category: models.CategoryStreak, Requirement: 30, Rarity: models.RarityEpic, XPReward: 500},
	{ID: "streak-100", Title: "Непобедимый", Description: "100 дней подряд", Icon: "🔥", Category: models.CategoryStreak, Requirement: 100, Rarity: models.RarityLegendary, XPReward: 2000},

	// Mastery
	{ID: "perfect-score", Title: "Идеальный результат", Description: "Получите 100 баллов в тесте", Icon: "💯", Category: models.CategoryMastery, Requirement: 1, Rarity: models.RarityRare, XPReward: 100},
	{ID: "perfect-5", Title: "Перфекционист", Description: "Получите 100 баллов 5 раз", Icon: "🎯", Category: models.CategoryMastery, Requirement: 5, Rarity: models.RarityEpic, XPReward: 300},
	{ID: "vocabulary-master", Title: "Мастер словаря", Description: "Выучите 1000 слов", Icon: "📖", Category: models.CategoryMastery, Requirement: 1000, Rarity: models.RarityEpic, XPReward: 500},
	{ID: "phrasal-expert", Title: "Эксперт фразовых глаголов", Description: "Выучите 100 phrasal verbs", Icon: "🎪", Category: models.CategoryMastery, Requirement: 100, Rarity: models.RarityRare, XPReward: 250},
	{ID: "grammar-guru", Title: "Гуру грамматики", Description: "Изучите все времена", Icon: "⚡", Category: models.CategoryMastery, Requirement: 12, Rarity: models.RarityEpic, XPReward: 400},

	// Special
	{ID: "early-bird", Title: "Ранняя пташка", Description: "Занимайтесь до 8 утра", Icon: "🌅", Category: models.CategorySpecial, Requirement: 1, Rarity: models.RarityRare, XPReward: 50},
	{ID: "night-owl", Title: "Ночная сова", Description: "Занимайтесь после 23:00", Icon: "🦉", Category: models.CategorySpecial, Requirement: 1, Rarity: models.RarityRare, XPReward: 50},
	{ID: "speed-demon", Title: "Скоростной демон", Description: "Завершите урок за 2 минуты", Icon: "⚡", Category: models.CategorySpecial, Requirement: 1, Rarity: models.RarityEpic, XPReward: 150},
	{ID: "comeback", Title: "Возвращение", Description: "Вернитесь после перерыва в 7+ дней", Icon: "🎉", Category: models.CategorySpecial, Requirement: 1, Rarity: models.RarityRare, XPReward: 100},
	{ID: "explorer", Title: "Исследователь", Description: "Посетите все разделы приложения", Icon: "🗺️", Category: models.CategorySpecial, Requirement: 1, Rarity: models.RarityCommon, XPReward: 50},
}

// AchievementByID looks an achievement up in the catalog.
func AchievementByID(id string) (models.Achievement, bool) {
	for _, a := range Achievements {
		if a.ID == id {
			return a, true
		}
	}
	return models.Achievement{}, false
}

// counterFor maps an achievement to the progress counter it is checked
// against. ok is false for achievements this table does not evaluate
// (time-based and catalog-only ones).
func counterFor(a models.Achievement, p models.UserProgress) (current int, ok bool) {
	switch a.ID {
	case "first-lesson", "lessons-10", "lessons-50", "lessons-100", "lessons-200":
		return len(p.CompletedLessons), true
	case "level-5", "level-10", "level-25", "level-50", "level-100":
		return p.Level, true
	case "streak-3", "streak-7", "streak-14", "streak-30", "streak-100":
		return p.StreakData.CurrentStreak, true
	case "perfect-score", "perfect-5":
		return p.PerfectScores, true
	case "vocabulary-master":
		return p.VocabularyMastered, true
	case "phrasal-expert":
		return p.PhrasalVerbsMastered, true
	case "grammar-guru":
		return p.GrammarTopicsCompleted, true
	case "explorer":
		for _, s := range RequiredSections {
			if !p.HasVisited(s) {
				return 0, true
			}
		}
		return 1, true
	default:
		return 0, false
	}
}

// CheckAllAchievements evaluates the whole catalog against the progress
// counters. All newly qualifying achievements are unlocked in one batch:
// their XP rewards are summed and applied through a single AddExperience,
// so level and reputation are recomputed once, never from an intermediate
// state.
func CheckAllAchievements(p models.UserProgress) models.UserProgress {
	var newIDs []string
	var xpBonus int
	for _, a := range Achievements {
		if p.HasAchievement(a.ID) {
			continue
		}
		current, ok := counterFor(a, p)
		if ok && current >= a.Requirement {
			newIDs = append(newIDs, a.ID)
			xpBonus += a.XPReward
		}
	}
	if len(newIDs) == 0 {
		return p
	}

	out := AddExperience(p, xpBonus)
	out.UnlockedAchievements = appendStrings(p.UnlockedAchievements, newIDs...)
	return out
}

// CheckTimeBasedAchievements awards early-bird / night-owl from the
// caller-supplied wall-clock hour (0-23). Each grants its XP exactly once.
func CheckTimeBasedAchievements(p models.UserProgress, hour int) models.UserProgress {
	out := p
	if hour < 8 && !out.HasAchievement("early-bird") {
		if a, found := AchievementByID("early-bird"); found {
			out = AddExperience(out, a.XPReward)
			out.UnlockedAchievements = appendStrings(out.UnlockedAchievements, "early-bird")
		}
	}
	if hour >= 23 && !out.HasAchievement("night-owl") {
		if a, found := AchievementByID("night-owl"); found {
			out = AddExperience(out, a.XPReward)
			out.UnlockedAchievements = appendStrings(out.UnlockedAchievements, "night-owl")
		}
	}
	return out
}
