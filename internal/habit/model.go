// Package habit tracks daily habits with XP, levels, streaks and achievements.
// State lives behind the Store port and is namespaced per visitor.
package habit

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the format of every log date.
const DateLayout = "2006-01-02"

const maxNameLength = 40

var (
	// ErrInvalidHabit is returned for habit input that fails validation.
	ErrInvalidHabit = errors.New("invalid habit")

	// ErrInvalidDate is returned for a malformed or future log date.
	ErrInvalidDate = errors.New("invalid date")

	// ErrHabitNotFound is returned when a habit ID does not exist for the visitor.
	ErrHabitNotFound = errors.New("habit not found")
)

// Habit is one tracked habit.
type Habit struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Emoji      string         `json:"emoji"`
	Category   string         `json:"category,omitempty"`
	TargetDays []time.Weekday `json:"targetDays,omitempty"` // Empty means every day
	CreatedAt  time.Time      `json:"createdAt"`
	Archived   bool           `json:"archived"`
}

// HabitInput carries the user-editable fields of a habit.
type HabitInput struct {
	Name       string         `json:"name"`
	Emoji      string         `json:"emoji"`
	Category   string         `json:"category"`
	TargetDays []time.Weekday `json:"targetDays"`
	Archived   bool           `json:"archived"`
}

// HabitLog records whether a habit was completed on a day.
// There is at most one log per (HabitID, Date).
type HabitLog struct {
	HabitID   string    `json:"habitId"`
	Date      string    `json:"date"` // YYYY-MM-DD
	Completed bool      `json:"completed"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserProgress is the visitor-wide gamification state.
type UserProgress struct {
	TotalXP          int           `json:"totalXp"`
	Level            int           `json:"level"`
	TotalCompletions int           `json:"totalCompletions"`
	LongestStreak    int           `json:"longestStreak"`
	Achievements     []Achievement `json:"achievements"`
}

// Achievement is an unlocked badge.
type Achievement struct {
	ID         AchievementID `json:"id"`
	UnlockedAt time.Time     `json:"unlockedAt"`
}

// HasAchievement reports whether id is already unlocked.
func (p UserProgress) HasAchievement(id AchievementID) bool {
	for _, a := range p.Achievements {
		if a.ID == id {
			return true
		}
	}
	return false
}

// LogResult reports the effect of SetLog.
type LogResult struct {
	Log             HabitLog      `json:"log"`
	XPDelta         int           `json:"xpDelta"`
	Streak          int           `json:"streak"`
	LeveledUp       bool          `json:"leveledUp"`
	Progress        UserProgress  `json:"progress"`
	NewAchievements []Achievement `json:"newAchievements,omitempty"`
}

// Stats summarises one habit.
type Stats struct {
	HabitID        string  `json:"habitId"`
	CurrentStreak  int     `json:"currentStreak"`
	LongestStreak  int     `json:"longestStreak"`
	CompletionRate float64 `json:"completionRate"` // Percentage over the last 30 days
	Completions    int     `json:"completions"`
}

// ParseDate validates a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not YYYY-MM-DD", ErrInvalidDate, s)
	}
	return d, nil
}
