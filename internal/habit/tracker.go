package habit

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultEmoji = "✅"
	statsWindow  = 30
)

// Tracker runs habit operations for one visitor against a Store.
//
// Every operation is a read-modify-write without locking; two concurrent
// writers for the same visitor can overwrite each other. Storage failures are
// logged and never returned. Queries treat a failed read as empty state.
// Mutations skip the write when a read they depend on failed, and a failed
// write leaves the stored state untouched.
type Tracker struct {
	store  Store
	scope  string
	logger *zap.Logger
	now    func() time.Time
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithLogger sets the logger for storage failures.
func WithLogger(l *zap.Logger) Option {
	return func(t *Tracker) {
		t.logger = l
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

// NewTracker creates a tracker whose keys are namespaced by scope.
func NewTracker(store Store, scope string, opts ...Option) *Tracker {
	t := &Tracker{
		store:  store,
		scope:  scope,
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Habits returns every habit in creation order.
func (t *Tracker) Habits(ctx context.Context) []Habit {
	habits, _ := t.readHabits(ctx)
	return habits
}

// CreateHabit validates in and stores a new habit.
func (t *Tracker) CreateHabit(ctx context.Context, in HabitInput) (Habit, error) {
	in, err := normalizeInput(in)
	if err != nil {
		return Habit{}, err
	}

	h := Habit{
		ID:         uuid.NewString(),
		Name:       in.Name,
		Emoji:      in.Emoji,
		Category:   in.Category,
		TargetDays: in.TargetDays,
		CreatedAt:  t.now().UTC(),
		Archived:   in.Archived,
	}

	habits, ok := t.readHabits(ctx)
	if !ok {
		return h, nil
	}
	habits = append(habits, h)
	if !t.save(ctx, KeyHabits, habits) {
		return h, nil
	}

	progress, ok := t.readProgress(ctx)
	if !ok {
		return h, nil
	}
	if unlocked := unlockAchievements(&progress, len(habits), t.now().UTC()); len(unlocked) > 0 {
		t.save(ctx, KeyProgress, progress)
	}

	return h, nil
}

// UpdateHabit replaces the editable fields of habit id.
func (t *Tracker) UpdateHabit(ctx context.Context, id string, in HabitInput) (Habit, error) {
	in, err := normalizeInput(in)
	if err != nil {
		return Habit{}, err
	}

	habits, ok := t.readHabits(ctx)
	if !ok {
		return Habit{ID: id, Name: in.Name, Emoji: in.Emoji, Category: in.Category, TargetDays: in.TargetDays, Archived: in.Archived}, nil
	}
	i := slices.IndexFunc(habits, func(h Habit) bool { return h.ID == id })
	if i < 0 {
		return Habit{}, fmt.Errorf("%w: %s", ErrHabitNotFound, id)
	}

	habits[i].Name = in.Name
	habits[i].Emoji = in.Emoji
	habits[i].Category = in.Category
	habits[i].TargetDays = in.TargetDays
	habits[i].Archived = in.Archived

	t.save(ctx, KeyHabits, habits)
	return habits[i], nil
}

// DeleteHabit removes habit id and all of its logs. Progress is kept.
func (t *Tracker) DeleteHabit(ctx context.Context, id string) error {
	habits, ok := t.readHabits(ctx)
	if !ok {
		return nil
	}
	i := slices.IndexFunc(habits, func(h Habit) bool { return h.ID == id })
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrHabitNotFound, id)
	}
	logs, ok := t.readLogs(ctx)
	if !ok {
		return nil
	}

	habits = slices.Delete(habits, i, i+1)
	if !t.save(ctx, KeyHabits, habits) {
		return nil
	}
	logs = slices.DeleteFunc(logs, func(l HabitLog) bool { return l.HabitID == id })
	t.save(ctx, KeyLogs, logs)
	return nil
}

// Logs returns the logs dated within [from, to], ordered by date then habit.
// An empty bound is open.
func (t *Tracker) Logs(ctx context.Context, from, to string) ([]HabitLog, error) {
	for _, d := range []string{from, to} {
		if d == "" {
			continue
		}
		if _, err := ParseDate(d); err != nil {
			return nil, err
		}
	}

	var out []HabitLog
	logs, _ := t.readLogs(ctx)
	for _, l := range logs {
		if from != "" && l.Date < from {
			continue
		}
		if to != "" && l.Date > to {
			continue
		}
		out = append(out, l)
	}

	slices.SortFunc(out, func(a, b HabitLog) int {
		if c := strings.Compare(a.Date, b.Date); c != 0 {
			return c
		}
		return strings.Compare(a.HabitID, b.HabitID)
	})
	return out, nil
}

// SetLog records completion of habitID on date, replacing any earlier log for
// the same day, and applies XP, level, streak and achievement changes. When
// the change cannot be persisted the result carries the unchanged progress
// and no XP or achievements.
func (t *Tracker) SetLog(ctx context.Context, habitID, date string, completed bool) (*LogResult, error) {
	day, err := ParseDate(date)
	if err != nil {
		return nil, err
	}
	now := t.now()
	if day.After(truncateDay(now)) {
		return nil, fmt.Errorf("%w: %s is in the future", ErrInvalidDate, date)
	}

	entry := HabitLog{HabitID: habitID, Date: date, Completed: completed, UpdatedAt: now.UTC()}
	habits, ok := t.readHabits(ctx)
	if !ok {
		return t.unchanged(ctx, entry), nil
	}
	if !slices.ContainsFunc(habits, func(h Habit) bool { return h.ID == habitID }) {
		return nil, fmt.Errorf("%w: %s", ErrHabitNotFound, habitID)
	}
	logs, ok := t.readLogs(ctx)
	if !ok {
		return t.unchanged(ctx, entry), nil
	}
	progress, ok := t.readProgress(ctx)
	if !ok {
		return t.unchanged(ctx, entry), nil
	}
	previous := progress
	previous.Achievements = slices.Clone(progress.Achievements)

	wasCompleted := false
	if i := slices.IndexFunc(logs, func(l HabitLog) bool { return l.HabitID == habitID && l.Date == date }); i >= 0 {
		wasCompleted = logs[i].Completed
		logs[i] = entry
	} else {
		logs = append(logs, entry)
	}

	done := completedDays(logs, habitID)
	before := progress.Level
	result := &LogResult{Log: entry}

	switch {
	case completed && !wasCompleted:
		result.XPDelta = XPPerCompletion
		progress.TotalCompletions++
		if run := runEndingAt(done, day); run > 0 && run%StreakBonusEvery == 0 {
			result.XPDelta += XPStreakBonus
		}
		progress.TotalXP += result.XPDelta
	case !completed && wasCompleted:
		result.XPDelta = -min(XPPerCompletion, progress.TotalXP)
		progress.TotalXP += result.XPDelta
		progress.TotalCompletions = max(0, progress.TotalCompletions-1)
	}

	progress.Level = LevelForXP(progress.TotalXP)
	progress.LongestStreak = max(progress.LongestStreak, LongestStreak(done))
	result.LeveledUp = progress.Level > before
	result.Streak = CurrentStreak(done, now)
	result.NewAchievements = unlockAchievements(&progress, len(habits), now.UTC())
	result.Progress = progress

	if !t.save(ctx, KeyLogs, logs) {
		return &LogResult{Log: entry, Progress: previous}, nil
	}
	t.save(ctx, KeyProgress, progress)

	return result, nil
}

// unchanged is the SetLog result for a change that was not persisted.
func (t *Tracker) unchanged(ctx context.Context, entry HabitLog) *LogResult {
	return &LogResult{Log: entry, Progress: t.Progress(ctx)}
}

// Progress returns the visitor's gamification state.
func (t *Tracker) Progress(ctx context.Context) UserProgress {
	p, _ := t.readProgress(ctx)
	return p
}

// HabitStats summarises habit id over its logs and the last 30 days.
func (t *Tracker) HabitStats(ctx context.Context, id string) (Stats, error) {
	habits := t.Habits(ctx)
	i := slices.IndexFunc(habits, func(h Habit) bool { return h.ID == id })
	if i < 0 {
		return Stats{}, fmt.Errorf("%w: %s", ErrHabitNotFound, id)
	}
	h := habits[i]

	logs, _ := t.readLogs(ctx)
	done := completedDays(logs, id)
	today := truncateDay(t.now())
	from := today.AddDate(0, 0, -(statsWindow - 1))
	if created := truncateDay(h.CreatedAt); created.After(from) {
		from = created
	}

	return Stats{
		HabitID:        id,
		CurrentStreak:  CurrentStreak(done, today),
		LongestStreak:  LongestStreak(done),
		CompletionRate: completionRate(done, h.TargetDays, from, today),
		Completions:    len(done),
	}, nil
}

func (t *Tracker) readHabits(ctx context.Context) ([]Habit, bool) {
	var habits []Habit
	ok := t.load(ctx, KeyHabits, &habits)
	return habits, ok
}

func (t *Tracker) readLogs(ctx context.Context) ([]HabitLog, bool) {
	var logs []HabitLog
	ok := t.load(ctx, KeyLogs, &logs)
	return logs, ok
}

func (t *Tracker) readProgress(ctx context.Context) (UserProgress, bool) {
	var p UserProgress
	ok := t.load(ctx, KeyProgress, &p)
	if p.Level < 1 {
		p.Level = LevelForXP(p.TotalXP)
	}
	if p.Achievements == nil {
		p.Achievements = []Achievement{}
	}
	return p, ok
}

// load decodes key into v and reports whether the store could be read.
// Missing keys and corrupt data still report true, so the next write replaces
// them.
func (t *Tracker) load(ctx context.Context, key string, v any) bool {
	scoped := ScopedKey(t.scope, key)
	data, err := t.store.Load(ctx, scoped)
	if err != nil {
		t.logger.Warn("habit storage read failed", zap.String("key", scoped), zap.Error(err))
		return false
	}
	if data == nil {
		return true
	}
	if err := json.Unmarshal(data, v); err != nil {
		t.logger.Warn("habit storage data corrupt", zap.String("key", scoped), zap.Error(err))
	}
	return true
}

// save encodes v under key and reports whether it was stored.
func (t *Tracker) save(ctx context.Context, key string, v any) bool {
	scoped := ScopedKey(t.scope, key)
	data, err := json.Marshal(v)
	if err != nil {
		t.logger.Error("habit state encode failed", zap.String("key", scoped), zap.Error(err))
		return false
	}
	if err := t.store.Save(ctx, scoped, data); err != nil {
		t.logger.Error("habit storage write failed", zap.String("key", scoped), zap.Error(err))
		return false
	}
	return true
}

func completedDays(logs []HabitLog, habitID string) map[string]bool {
	done := make(map[string]bool)
	for _, l := range logs {
		if l.HabitID == habitID && l.Completed {
			done[l.Date] = true
		}
	}
	return done
}

func normalizeInput(in HabitInput) (HabitInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return in, fmt.Errorf("%w: name is required", ErrInvalidHabit)
	}
	if utf8.RuneCountInString(in.Name) > maxNameLength {
		return in, fmt.Errorf("%w: name is longer than %d characters", ErrInvalidHabit, maxNameLength)
	}

	in.Emoji = strings.TrimSpace(in.Emoji)
	if in.Emoji == "" {
		in.Emoji = defaultEmoji
	}
	in.Category = strings.TrimSpace(in.Category)

	seen := make(map[time.Weekday]bool, len(in.TargetDays))
	days := make([]time.Weekday, 0, len(in.TargetDays))
	for _, d := range in.TargetDays {
		if d < time.Sunday || d > time.Saturday {
			return in, fmt.Errorf("%w: target day %d out of range", ErrInvalidHabit, d)
		}
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}
	slices.Sort(days)
	if len(days) == 0 {
		days = nil
	}
	in.TargetDays = days

	return in, nil
}
