package web

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/justestif/go-life-cheatkey/internal/ai"
	"github.com/justestif/go-life-cheatkey/internal/habit"
	"github.com/justestif/go-life-cheatkey/internal/mood"
)

// Templates manages HTML template rendering.
type Templates struct {
	templates map[string]*template.Template
	partials  map[string]*template.Template
	funcs     template.FuncMap
}

// NewTemplates creates a new template manager by loading templates from the given filesystem.
func NewTemplates(templatesFS fs.FS) (*Templates, error) {
	t := &Templates{
		templates: make(map[string]*template.Template),
		partials:  make(map[string]*template.Template),
		funcs:     defaultFuncs(),
	}

	if err := t.load(templatesFS); err != nil {
		return nil, err
	}

	return t, nil
}

// Render renders a page template with the given data.
func (t *Templates) Render(w io.Writer, page string, data any) error {
	tmpl, ok := t.templates[page]
	if !ok {
		return fmt.Errorf("template %q not found", page)
	}

	// Execute the "base" template which includes the page content
	return tmpl.ExecuteTemplate(w, "base", data)
}

// RenderPartial renders a partial template (without base layout) with the given data.
func (t *Templates) RenderPartial(w io.Writer, partial string, data any) error {
	tmpl, ok := t.partials[partial]
	if !ok {
		return fmt.Errorf("partial %q not found", partial)
	}
	return tmpl.Execute(w, data)
}

// load parses all templates from the filesystem.
func (t *Templates) load(templatesFS fs.FS) error {
	// Load base layout
	layoutPattern := "layouts/*.html"
	layouts, err := fs.Glob(templatesFS, layoutPattern)
	if err != nil {
		return fmt.Errorf("finding layouts: %w", err)
	}

	// Load partials
	partialPattern := "partials/*.html"
	partials, err := fs.Glob(templatesFS, partialPattern)
	if err != nil {
		return fmt.Errorf("finding partials: %w", err)
	}

	// Load each page template with layouts and partials
	pagePattern := "pages/*.html"
	pages, err := fs.Glob(templatesFS, pagePattern)
	if err != nil {
		return fmt.Errorf("finding pages: %w", err)
	}

	// Common files to include with every page
	commonFiles := append(layouts, partials...)

	for _, page := range pages {
		// Create a new template for each page
		name := filepath.Base(page)
		name = name[:len(name)-len(".html")] // Remove .html extension

		files := append([]string{page}, commonFiles...)

		tmpl, err := template.New(name).Funcs(t.funcs).ParseFS(templatesFS, files...)
		if err != nil {
			return fmt.Errorf("parsing template %s: %w", name, err)
		}

		// Execute "base" layout if it exists, otherwise the page itself
		t.templates[name] = tmpl
	}

	// Load partials as standalone templates for HTMX fragments
	for _, partial := range partials {
		name := filepath.Base(partial)
		name = name[:len(name)-len(".html")] // Remove .html extension

		tmpl, err := template.New(name).Funcs(t.funcs).ParseFS(templatesFS, partial)
		if err != nil {
			return fmt.Errorf("parsing partial %s: %w", name, err)
		}
		t.partials[name] = tmpl
	}

	return nil
}

// defaultFuncs returns the default template functions.
func defaultFuncs() template.FuncMap {
	return template.FuncMap{
		// moodLabel returns the Korean display name of a mood.
		"moodLabel": func(m mood.Mood) string {
			return mood.GetMoodCategory(m).Label
		},

		// weekdays formats target days as "월 수 금", or "매일" when empty.
		"weekdays": func(days []time.Weekday) string {
			if len(days) == 0 {
				return "매일"
			}
			names := make([]string, len(days))
			for i, d := range days {
				names[i] = weekdayNames[d]
			}
			return strings.Join(names, " ")
		},

		// percent returns part/total as a whole percentage for progress bars.
		"percent": func(part, total int) int {
			if total <= 0 {
				return 0
			}
			return part * 100 / total
		},

		"formatDate": func(t time.Time) string {
			return t.Format("2006.01.02")
		},

		// add adds two integers (for 1-based indexing in loops)
		"add": func(a, b int) int {
			return a + b
		},
	}
}

var weekdayNames = [...]string{"일", "월", "화", "수", "목", "금", "토"}

// PageData contains common data passed to all page templates.
type PageData struct {
	Title       string
	CurrentPath string
}

// Tool is one card on the home page.
type Tool struct {
	Name        string
	Emoji       string
	Description string
	Href        string
}

var homeTools = []Tool{
	{Name: "사진 무드 분석", Emoji: "🎨", Description: "코디 사진의 색으로 오늘의 무드를 찾아드려요.", Href: "/mood"},
	{Name: "습관 트래커", Emoji: "🔥", Description: "매일 체크하고 경험치와 배지를 모아보세요.", Href: "/habits"},
	{Name: "AI 글쓰기", Emoji: "✍️", Description: "변명, 탄원서, 거절 멘트까지 센스 있게.", Href: "#ai"},
	{Name: "생활 계산기", Emoji: "🧮", Description: "대출 이자, 실수령액, 중개수수료를 한 번에.", Href: "#calc"},
	{Name: "결정 게임", Emoji: "🎲", Description: "점심 메뉴 고르기와 밸런스 게임.", Href: "#games"},
}

// KindOption is a selectable AI generator.
type KindOption struct {
	Kind  ai.Kind
	Label string
}

var aiKindOptions = []KindOption{
	{Kind: ai.KindExcuse, Label: "변명 생성기"},
	{Kind: ai.KindPetition, Label: "탄원서 작성"},
	{Kind: ai.KindRefusal, Label: "거절 멘트"},
	{Kind: ai.KindConsult, Label: "고민 상담"},
	{Kind: ai.KindHabit, Label: "습관 추천"},
}

// MoodOption describes one mood bucket on the mood page.
type MoodOption struct {
	Mood mood.Mood
	mood.MoodCategory
}

func moodOptions() []MoodOption {
	out := make([]MoodOption, len(mood.Moods))
	for i, m := range mood.Moods {
		out[i] = MoodOption{Mood: m, MoodCategory: mood.GetMoodCategory(m)}
	}
	return out
}

// HomePageData contains data for the home page template.
type HomePageData struct {
	PageData
	Tools           []Tool
	AIEnabled       bool
	AIKinds         []KindOption
	LunchCategories []string
}

// MoodPageData contains data for the mood page template.
type MoodPageData struct {
	PageData
	Moods []MoodOption
}

// HabitsPageData contains data for the habit tracker page template.
type HabitsPageData struct {
	PageData
	Habits       []habit.Habit
	DoneToday    map[string]bool
	Progress     habit.UserProgress
	LevelCurrent int
	LevelSpan    int
	Today        string
	Badges       []BadgeView
}

// BadgeView is one achievement as shown on the habits page.
type BadgeView struct {
	habit.AchievementInfo
	Unlocked bool
}

func badgeViews(p habit.UserProgress) []BadgeView {
	out := make([]BadgeView, len(habit.Achievements))
	for i, a := range habit.Achievements {
		out[i] = BadgeView{AchievementInfo: a, Unlocked: p.HasAchievement(a.ID)}
	}
	return out
}
