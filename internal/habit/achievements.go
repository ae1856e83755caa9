package habit

import "time"

// AchievementID identifies a badge.
type AchievementID string

const (
	AchievementFirstStep      AchievementID = "first_step"
	AchievementStreak3        AchievementID = "streak_3"
	AchievementStreak7        AchievementID = "streak_7"
	AchievementStreak30       AchievementID = "streak_30"
	AchievementCompletions10  AchievementID = "completions_10"
	AchievementCompletions100 AchievementID = "completions_100"
	AchievementLevel5         AchievementID = "level_5"
	AchievementCollector      AchievementID = "collector"
)

// AchievementInfo is the display copy and unlock rule for a badge.
type AchievementInfo struct {
	ID          AchievementID `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Emoji       string        `json:"emoji"`

	unlocked func(p UserProgress, habitCount int) bool
}

// Achievements lists every badge in display order.
var Achievements = []AchievementInfo{
	{
		ID: AchievementFirstStep, Title: "첫 걸음", Description: "처음으로 습관을 완료했어요", Emoji: "👣",
		unlocked: func(p UserProgress, _ int) bool { return p.TotalCompletions >= 1 },
	},
	{
		ID: AchievementStreak3, Title: "작심삼일 돌파", Description: "3일 연속으로 완료했어요", Emoji: "🔥",
		unlocked: func(p UserProgress, _ int) bool { return p.LongestStreak >= 3 },
	},
	{
		ID: AchievementStreak7, Title: "일주일 챌린지", Description: "7일 연속으로 완료했어요", Emoji: "📅",
		unlocked: func(p UserProgress, _ int) bool { return p.LongestStreak >= 7 },
	},
	{
		ID: AchievementStreak30, Title: "한 달의 기적", Description: "30일 연속으로 완료했어요", Emoji: "🏆",
		unlocked: func(p UserProgress, _ int) bool { return p.LongestStreak >= 30 },
	},
	{
		ID: AchievementCompletions10, Title: "꾸준함의 시작", Description: "총 10번 완료했어요", Emoji: "✨",
		unlocked: func(p UserProgress, _ int) bool { return p.TotalCompletions >= 10 },
	},
	{
		ID: AchievementCompletions100, Title: "습관 장인", Description: "총 100번 완료했어요", Emoji: "💎",
		unlocked: func(p UserProgress, _ int) bool { return p.TotalCompletions >= 100 },
	},
	{
		ID: AchievementLevel5, Title: "레벨 5 달성", Description: "레벨 5에 도달했어요", Emoji: "🚀",
		unlocked: func(p UserProgress, _ int) bool { return p.Level >= 5 },
	},
	{
		ID: AchievementCollector, Title: "습관 수집가", Description: "습관을 5개 이상 만들었어요", Emoji: "🗂️",
		unlocked: func(_ UserProgress, habitCount int) bool { return habitCount >= 5 },
	},
}

// unlockAchievements appends every newly earned badge to p and returns them.
// Unlocked badges are never revoked.
func unlockAchievements(p *UserProgress, habitCount int, now time.Time) []Achievement {
	var unlocked []Achievement
	for _, info := range Achievements {
		if p.HasAchievement(info.ID) || !info.unlocked(*p, habitCount) {
			continue
		}
		a := Achievement{ID: info.ID, UnlockedAt: now}
		p.Achievements = append(p.Achievements, a)
		unlocked = append(unlocked, a)
	}
	return unlocked
}
