package models

// AchievementCategory groups achievements for display.
type AchievementCategory string

const (
	CategoryLearning AchievementCategory = "learning"
	CategoryStreak   AchievementCategory = "streak"
	CategoryMastery  AchievementCategory = "mastery"
	CategorySocial   AchievementCategory = "social"
	CategorySpecial  AchievementCategory = "special"
)

// Rarity is the achievement rarity tier.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Achievement is a read-only catalog entry. Unlocking is a pure function
// of a progress counter against Requirement; once unlocked it is permanent
// and its XP reward is granted exactly once.
type Achievement struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Icon        string              `json:"icon"`
	Category    AchievementCategory `json:"category"`
	Requirement int                 `json:"requirement"`
	Rarity      Rarity              `json:"rarity"`
	XPReward    int                 `json:"xpReward"`
}
