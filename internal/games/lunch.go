// Package games implements the lunch picker and the balance game.
package games

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"strings"
)

// MaxLunchPicks bounds how many menus one request may draw.
const MaxLunchPicks = 5

// ErrNoCandidates is returned when filters leave nothing to pick from.
var ErrNoCandidates = errors.New("no menu candidates left")

// ErrInvalidCount is returned for a pick count outside 1..MaxLunchPicks.
var ErrInvalidCount = errors.New("invalid pick count")

// Menu is one lunch option.
type Menu struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Emoji    string `json:"emoji"`
}

// Lunch categories in display order.
var LunchCategories = []string{"한식", "중식", "일식", "양식", "분식", "아시안"}

var menus = []Menu{
	{Name: "김치찌개", Category: "한식", Emoji: "🍲"},
	{Name: "된장찌개", Category: "한식", Emoji: "🥘"},
	{Name: "제육볶음", Category: "한식", Emoji: "🐷"},
	{Name: "비빔밥", Category: "한식", Emoji: "🍚"},
	{Name: "순대국", Category: "한식", Emoji: "🍜"},
	{Name: "불고기 정식", Category: "한식", Emoji: "🥩"},
	{Name: "냉면", Category: "한식", Emoji: "🥶"},
	{Name: "짜장면", Category: "중식", Emoji: "🍜"},
	{Name: "짬뽕", Category: "중식", Emoji: "🌶️"},
	{Name: "탕수육", Category: "중식", Emoji: "🍖"},
	{Name: "마라탕", Category: "중식", Emoji: "🔥"},
	{Name: "볶음밥", Category: "중식", Emoji: "🍳"},
	{Name: "초밥", Category: "일식", Emoji: "🍣"},
	{Name: "돈카츠", Category: "일식", Emoji: "🍱"},
	{Name: "라멘", Category: "일식", Emoji: "🍜"},
	{Name: "우동", Category: "일식", Emoji: "🥢"},
	{Name: "규동", Category: "일식", Emoji: "🍚"},
	{Name: "파스타", Category: "양식", Emoji: "🍝"},
	{Name: "피자", Category: "양식", Emoji: "🍕"},
	{Name: "햄버거", Category: "양식", Emoji: "🍔"},
	{Name: "샐러드", Category: "양식", Emoji: "🥗"},
	{Name: "스테이크", Category: "양식", Emoji: "🥩"},
	{Name: "떡볶이", Category: "분식", Emoji: "🍢"},
	{Name: "김밥", Category: "분식", Emoji: "🍙"},
	{Name: "라볶이", Category: "분식", Emoji: "🍜"},
	{Name: "쫄면", Category: "분식", Emoji: "🥢"},
	{Name: "쌀국수", Category: "아시안", Emoji: "🍜"},
	{Name: "팟타이", Category: "아시안", Emoji: "🍤"},
	{Name: "분짜", Category: "아시안", Emoji: "🥬"},
	{Name: "커리", Category: "아시안", Emoji: "🍛"},
	{Name: "나시고렝", Category: "아시안", Emoji: "🍳"},
}

// LunchOptions filters a pick. Empty Categories means all categories.
type LunchOptions struct {
	Categories []string
	Exclude    []string
	Count      int // Zero means 1
}

// Menus returns the full catalogue.
func Menus() []Menu {
	return slices.Clone(menus)
}

// PickLunch draws Count distinct menus that match opts.
func PickLunch(rng *rand.Rand, opts LunchOptions) ([]Menu, error) {
	count := opts.Count
	if count == 0 {
		count = 1
	}
	if count < 0 || count > MaxLunchPicks {
		return nil, fmt.Errorf("%w: %d (max %d)", ErrInvalidCount, count, MaxLunchPicks)
	}

	excluded := make(map[string]bool, len(opts.Exclude))
	for _, name := range opts.Exclude {
		excluded[strings.TrimSpace(name)] = true
	}

	var candidates []Menu
	for _, m := range menus {
		if len(opts.Categories) > 0 && !slices.Contains(opts.Categories, m.Category) {
			continue
		}
		if excluded[m.Name] {
			continue
		}
		candidates = append(candidates, m)
	}
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}

	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	return candidates[:min(count, len(candidates))], nil
}
