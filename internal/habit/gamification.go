package habit

import (
	"sort"
	"time"
)

// XP rules.
const (
	XPPerCompletion  = 10
	XPStreakBonus    = 50
	StreakBonusEvery = 7
)

// XPForLevel returns the total XP needed to reach level. Level 1 needs none.
func XPForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	return 50 * level * (level - 1)
}

// LevelForXP returns the level reached with xp total experience.
func LevelForXP(xp int) int {
	level := 1
	for XPForLevel(level+1) <= xp {
		level++
	}
	return level
}

// LevelProgress returns the XP earned inside the current level and the XP the
// level spans.
func LevelProgress(xp int) (current, span int) {
	level := LevelForXP(xp)
	start := XPForLevel(level)
	return xp - start, XPForLevel(level+1) - start
}

// CurrentStreak counts consecutive completed days ending today, or ending
// yesterday when today is not completed yet.
func CurrentStreak(completed map[string]bool, today time.Time) int {
	day := truncateDay(today)
	if !completed[day.Format(DateLayout)] {
		day = day.AddDate(0, 0, -1)
	}
	return runEndingAt(completed, day)
}

// runEndingAt counts consecutive completed days ending on day.
func runEndingAt(completed map[string]bool, day time.Time) int {
	n := 0
	for completed[day.Format(DateLayout)] {
		n++
		day = day.AddDate(0, 0, -1)
	}
	return n
}

// LongestStreak returns the longest run of consecutive completed days.
func LongestStreak(completed map[string]bool) int {
	days := make([]time.Time, 0, len(completed))
	for s, ok := range completed {
		if !ok {
			continue
		}
		d, err := time.Parse(DateLayout, s)
		if err != nil {
			continue
		}
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	longest, run := 0, 0
	for i, d := range days {
		if i > 0 && days[i-1].AddDate(0, 0, 1).Equal(d) {
			run++
		} else {
			run = 1
		}
		longest = max(longest, run)
	}
	return longest
}

// completionRate is the share of scheduled days in the window [from, to] that
// were completed, as a percentage rounded to one decimal.
func completionRate(completed map[string]bool, targets []time.Weekday, from, to time.Time) float64 {
	scheduled, done := 0, 0
	for d := truncateDay(from); !d.After(to); d = d.AddDate(0, 0, 1) {
		if !scheduledOn(targets, d.Weekday()) {
			continue
		}
		scheduled++
		if completed[d.Format(DateLayout)] {
			done++
		}
	}
	if scheduled == 0 {
		return 0
	}
	rate := float64(done) / float64(scheduled) * 100
	return float64(int(rate*10+0.5)) / 10
}

func scheduledOn(targets []time.Weekday, wd time.Weekday) bool {
	if len(targets) == 0 {
		return true
	}
	for _, t := range targets {
		if t == wd {
			return true
		}
	}
	return false
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
