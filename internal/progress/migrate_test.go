package progress

import (
	"strings"
	"testing"

	"github.com/ZhalgasKracavshik/smartspeak/pkg/models"
)

func TestUpgradeEmptyDocument(t *testing.T) {
	p, err := Upgrade(nil)
	if err != nil {
		t.Fatalf("Upgrade(nil): %v", err)
	}
	if p.Level != 1 || p.SchemaVersion != models.ProgressSchemaVersion {
		t.Errorf("fresh record: %+v", p)
	}
	if p.CompletedLessons == nil || p.UnlockedAchievements == nil {
		t.Errorf("fresh record has nil collections")
	}
}

func TestUpgradeLegacyDocument(t *testing.T) {
	// A v1 document: no streak data, no schema version, stale level.
	raw := []byte(`{"experience":350,"level":1,"completedLessons":[1,2,3]}`)

	p, err := Upgrade(raw)
	if err != nil {
		t.Fatalf("Upgrade: %v", err)
	}
	if p.Level != 4 {
		t.Errorf("level = %d, want 4 (recomputed from experience)", p.Level)
	}
	if p.SchemaVersion != models.ProgressSchemaVersion {
		t.Errorf("schemaVersion = %d", p.SchemaVersion)
	}
	if p.StreakData.ActivityDates == nil || p.UnlockedAchievements == nil || p.VisitedSections == nil {
		t.Errorf("legacy collections not backfilled")
	}
	if len(p.CompletedLessons) != 3 {
		t.Errorf("completedLessons = %v", p.CompletedLessons)
	}
}

func TestUpgradeRepairsLongestStreak(t *testing.T) {
	p := NewProgress()
	p.StreakData.CurrentStreak = 9
	p.StreakData.LongestStreak = 4

	out := UpgradeRecord(p)
	if out.StreakData.LongestStreak != 9 {
		t.Errorf("longestStreak = %d, want 9", out.StreakData.LongestStreak)
	}
}

func TestUpgradeMalformedDocument(t *testing.T) {
	_, err := Upgrade([]byte(`{not json`))
	if err == nil {
		t.Fatalf("expected error for malformed document")
	}
	if !strings.Contains(err.Error(), "failed to decode") {
		t.Errorf("unexpected error: %v", err)
	}
}
