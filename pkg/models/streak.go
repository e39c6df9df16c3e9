package models

// StreakData tracks consecutive calendar days with at least one recorded
// activity. Dates are civil dates in "YYYY-MM-DD" form; the caller decides
// what "today" is so the transitions stay clock-free.
type StreakData struct {
	CurrentStreak    int      `json:"currentStreak"`
	LongestStreak    int      `json:"longestStreak"`
	LastActivityDate string   `json:"lastActivityDate"`
	ActivityDates    []string `json:"activityDates"`
	FreezeCount      int      `json:"freezeCount"`
}

// HasActivityOn reports whether the given date is already recorded.
func (s *StreakData) HasActivityOn(date string) bool {
	for _, d := range s.ActivityDates {
		if d == date {
			return true
		}
	}
	return false
}
