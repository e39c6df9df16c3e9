package progress

import (
	"errors"
	"testing"
)

func TestUpdateStreakConsecutiveDays(t *testing.T) {
	s := UpdateStreak(NewStreakData(), "2026-03-01")
	if s.CurrentStreak != 1 {
		t.Fatalf("day 1: streak = %d, want 1", s.CurrentStreak)
	}

	s = UpdateStreak(s, "2026-03-02")
	if s.CurrentStreak != 2 {
		t.Fatalf("day 2: streak = %d, want 2", s.CurrentStreak)
	}

	// Two-day gap resets to 1 but longest survives.
	s = UpdateStreak(s, "2026-03-05")
	if s.CurrentStreak != 1 {
		t.Errorf("after gap: streak = %d, want 1", s.CurrentStreak)
	}
	if s.LongestStreak != 2 {
		t.Errorf("longestStreak = %d, want 2", s.LongestStreak)
	}
}

func TestUpdateStreakSameDayIsIdentity(t *testing.T) {
	s := UpdateStreak(NewStreakData(), "2026-03-01")
	again := UpdateStreak(s, "2026-03-01")

	if again.CurrentStreak != 1 {
		t.Errorf("second activity bumped streak to %d", again.CurrentStreak)
	}
	if len(again.ActivityDates) != 1 {
		t.Errorf("date recorded twice: %v", again.ActivityDates)
	}
}

func TestUpdateStreakMonthBoundary(t *testing.T) {
	s := UpdateStreak(NewStreakData(), "2026-02-28")
	s = UpdateStreak(s, "2026-03-01")
	if s.CurrentStreak != 2 {
		t.Errorf("Feb 28 -> Mar 1: streak = %d, want 2", s.CurrentStreak)
	}
}

func TestStreakFreezePreservesWithoutAdvancing(t *testing.T) {
	s := UpdateStreak(NewStreakData(), "2026-03-01")
	for _, d := range []string{"2026-03-02", "2026-03-03", "2026-03-04", "2026-03-05"} {
		s = UpdateStreak(s, d)
	}
	s = EarnStreakFreeze(s)
	if s.FreezeCount != 1 {
		t.Fatalf("freezeCount = %d, want 1", s.FreezeCount)
	}

	// Day 6 has no activity; the freeze covers it.
	frozen, err := UseStreakFreeze(s, "2026-03-06")
	if err != nil {
		t.Fatalf("UseStreakFreeze: %v", err)
	}
	if frozen.FreezeCount != 0 {
		t.Errorf("freezeCount = %d, want 0", frozen.FreezeCount)
	}
	if frozen.CurrentStreak != 5 {
		t.Errorf("freeze advanced streak to %d", frozen.CurrentStreak)
	}

	// Day 7 activity continues as if day 6 were active.
	next := UpdateStreak(frozen, "2026-03-07")
	if next.CurrentStreak != 6 {
		t.Errorf("post-freeze streak = %d, want 6", next.CurrentStreak)
	}
}

func TestUseStreakFreezeWithoutBalance(t *testing.T) {
	s := NewStreakData()
	_, err := UseStreakFreeze(s, "2026-03-06")
	if !errors.Is(err, ErrNoFreeze) {
		t.Errorf("err = %v, want ErrNoFreeze", err)
	}
}

func TestCurrentStatus(t *testing.T) {
	s := UpdateStreak(NewStreakData(), "2026-03-01")

	today := CurrentStatus(s, "2026-03-01")
	if !today.IsActive || today.DaysUntilBreak != 1 {
		t.Errorf("same day: %+v", today)
	}

	atRisk := CurrentStatus(s, "2026-03-02")
	if !atRisk.IsActive || atRisk.DaysUntilBreak != 0 {
		t.Errorf("at risk: %+v", atRisk)
	}

	broken := CurrentStatus(s, "2026-03-04")
	if broken.IsActive {
		t.Errorf("broken streak reported active: %+v", broken)
	}
}

func TestCalendarWindow(t *testing.T) {
	s := UpdateStreak(NewStreakData(), "2026-03-01")
	days := CalendarWindow(s, "2026-03-02", 1)

	if len(days) == 0 {
		t.Fatalf("empty window")
	}
	if first := days[0]; first.Date != "2026-02-02" {
		t.Errorf("window starts at %s, want 2026-02-02", first.Date)
	}
	last := days[len(days)-1]
	if last.Date != "2026-03-02" || !last.IsToday {
		t.Errorf("window ends at %+v", last)
	}

	var active int
	for _, d := range days {
		if d.HasActivity {
			active++
			if d.Date != "2026-03-01" {
				t.Errorf("unexpected activity on %s", d.Date)
			}
		}
	}
	if active != 1 {
		t.Errorf("%d active days, want 1", active)
	}
}

func TestStreakMotivationBands(t *testing.T) {
	seen := make(map[string]bool)
	for _, streak := range []int{0, 1, 3, 10, 20, 50, 150} {
		msg := StreakMotivation(streak)
		if msg == "" {
			t.Fatalf("empty motivation for streak %d", streak)
		}
		if seen[msg] {
			t.Errorf("streak %d reuses message %q", streak, msg)
		}
		seen[msg] = true
	}
}
