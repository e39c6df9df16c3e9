package progress

import (
	"errors"
	"time"

	"github.com/ZhalgasKracavshik/smartspeak/pkg/models"
)

// ErrNoFreeze is returned when a streak freeze is requested with a zero
// balance. A normal outcome, not an error condition worth logging.
var ErrNoFreeze = errors.New("no streak freeze available")

// NewStreakData returns the zero streak record.
func NewStreakData() models.StreakData {
	return models.StreakData{
		ActivityDates: []string{},
	}
}

// yesterdayOf returns the civil date one day before today. Malformed input
// yields an empty string, which can never match a recorded date.
func yesterdayOf(today string) string {
	t, err := time.Parse(DateLayout, today)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, -1).Format(DateLayout)
}

// UpdateStreak records activity on the given day. Repeat activity on an
// already-recorded day changes nothing; activity the day after the last one
// extends the streak; any longer gap restarts it at 1. longestStreak tracks
// the maximum ever reached.
func UpdateStreak(s models.StreakData, today string) models.StreakData {
	if s.HasActivityOn(today) {
		return s
	}

	out := s
	switch s.LastActivityDate {
	case yesterdayOf(today):
		out.CurrentStreak = s.CurrentStreak + 1
	case today:
		// Defensive: lastActivityDate set without the date being in
		// activityDates. Keep the streak as is.
	default:
		out.CurrentStreak = 1
	}

	out.ActivityDates = appendStrings(s.ActivityDates, today)
	out.LastActivityDate = today
	if out.CurrentStreak > out.LongestStreak {
		out.LongestStreak = out.CurrentStreak
	}
	return out
}

// UseStreakFreeze consumes one freeze to mark today as active without
// advancing the streak count. Applied before a streak would otherwise
// break; a later UpdateStreak on the next day then continues normally.
func UseStreakFreeze(s models.StreakData, today string) (models.StreakData, error) {
	if s.FreezeCount <= 0 {
		return s, ErrNoFreeze
	}

	out := s
	out.FreezeCount = s.FreezeCount - 1
	out.LastActivityDate = today
	if !s.HasActivityOn(today) {
		out.ActivityDates = appendStrings(s.ActivityDates, today)
	}
	return out, nil
}

// EarnStreakFreeze adds one freeze to the balance.
func EarnStreakFreeze(s models.StreakData) models.StreakData {
	out := s
	out.FreezeCount = s.FreezeCount + 1
	return out
}

// StreakStatus describes where the streak stands relative to today.
type StreakStatus struct {
	IsActive       bool   `json:"isActive"`
	DaysUntilBreak int    `json:"daysUntilBreak"`
	Message        string `json:"message"`
}

// CurrentStatus reports whether the streak is safe, at risk today, or
// already broken. The notifier uses the at-risk case for reminders.
func CurrentStatus(s models.StreakData, today string) StreakStatus {
	switch s.LastActivityDate {
	case today:
		return StreakStatus{IsActive: true, DaysUntilBreak: 1, Message: "🔥 Отлично! Вы уже занимались сегодня!"}
	case yesterdayOf(today):
		return StreakStatus{IsActive: true, DaysUntilBreak: 0, Message: "⚠️ Не забудьте позаниматься сегодня, чтобы сохранить streak!"}
	default:
		return StreakStatus{Message: "💔 Streak прерван. Начните новый сегодня!"}
	}
}

// CalendarDay is one cell of the activity calendar.
type CalendarDay struct {
	Date        string `json:"date"`
	HasActivity bool   `json:"hasActivity"`
	IsToday     bool   `json:"isToday"`
}

// CalendarWindow returns one day per calendar date from monthsBack months
// ago through today, flagged with recorded activity.
func CalendarWindow(s models.StreakData, today string, monthsBack int) []CalendarDay {
	end, err := time.Parse(DateLayout, today)
	if err != nil {
		return nil
	}
	var days []CalendarDay
	for d := end.AddDate(0, -monthsBack, 0); !d.After(end); d = d.AddDate(0, 0, 1) {
		date := d.Format(DateLayout)
		days = append(days, CalendarDay{
			Date:        date,
			HasActivity: s.HasActivityOn(date),
			IsToday:     date == today,
		})
	}
	return days
}

// StreakMotivation returns the encouragement line for a streak length.
func StreakMotivation(streak int) string {
	switch {
	case streak == 0:
		return "Начните свой путь сегодня! 🚀"
	case streak == 1:
		return "Отличное начало! 🎯"
	case streak < 7:
		return "Продолжайте в том же духе! 💪"
	case streak < 14:
		return "Неделя позади! Вы великолепны! 🌟"
	case streak < 30:
		return "Это уже привычка! 🔥"
	case streak < 100:
		return "Вы невероятны! 🏆"
	default:
		return "Легенда SmartSpeak! 👑"
	}
}
