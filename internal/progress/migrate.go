package progress

import (
	"encoding/json"
	"fmt"

	"github.com/ZhalgasKracavshik/smartspeak/pkg/models"
)

// Upgrade decodes a persisted progress document and brings it to the
// current schema. Documents written before streak data and the mastery
// counters existed get those fields backfilled here, once, at load time —
// the engine itself never checks for missing fields.
func Upgrade(raw []byte) (models.UserProgress, error) {
	if len(raw) == 0 {
		return NewProgress(), nil
	}

	var p models.UserProgress
	if err := json.Unmarshal(raw, &p); err != nil {
		return models.UserProgress{}, fmt.Errorf("failed to decode progress document: %v", err)
	}
	return UpgradeRecord(p), nil
}

// UpgradeRecord normalizes an in-memory record: nil collections become
// empty, the level invariant is re-established from experience, and the
// schema version is stamped. Safe to run on current documents (no-op).
func UpgradeRecord(p models.UserProgress) models.UserProgress {
	out := p
	if out.CompletedLessons == nil {
		out.CompletedLessons = []int{}
	}
	if out.UnlockedAchievements == nil {
		out.UnlockedAchievements = []string{}
	}
	if out.VisitedSections == nil {
		out.VisitedSections = []string{}
	}
	if out.StreakData.ActivityDates == nil {
		out.StreakData.ActivityDates = []string{}
	}
	if out.StreakData.LongestStreak < out.StreakData.CurrentStreak {
		out.StreakData.LongestStreak = out.StreakData.CurrentStreak
	}
	out.Level = CalculateLevel(out.Experience)
	out.SchemaVersion = models.ProgressSchemaVersion
	return out
}
