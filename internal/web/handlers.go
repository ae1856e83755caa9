package web

import (
	"math/rand"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/justestif/go-life-cheatkey/internal/ai"
	"github.com/justestif/go-life-cheatkey/internal/games"
	"github.com/justestif/go-life-cheatkey/internal/habit"
	"github.com/justestif/go-life-cheatkey/internal/mood"
)

// Handlers contains HTTP handlers for the web application.
type Handlers struct {
	templates *Templates
	logger    *zap.Logger
	analyzer  *mood.Analyzer
	store     habit.Store
	generator *ai.Generator
	visitors  VisitorRecorder
	balance   *games.Balance
	now       func() time.Time

	lunchMu  sync.Mutex
	lunchRng *rand.Rand
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(cfg ServerConfig, templates *Templates) *Handlers {
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Handlers{
		templates: templates,
		logger:    logger,
		analyzer:  cfg.Analyzer,
		store:     cfg.Store,
		generator: cfg.Generator,
		visitors:  cfg.Visitors,
		// Balance locks its own rng; lunchRng is guarded by lunchMu.
		balance:  games.NewBalance(rand.New(rand.NewSource(rng.Int63()))),
		now:      now,
		lunchRng: rng,
	}
}

// Home handles the home page (GET /).
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	data := HomePageData{
		PageData:        h.pageData(r, "인생 치트키"),
		Tools:           homeTools,
		AIEnabled:       h.generator != nil,
		LunchCategories: games.LunchCategories,
		AIKinds:         aiKindOptions,
	}
	h.render(w, "home", data)
}

// MoodPage handles the colour mood page (GET /mood).
func (h *Handlers) MoodPage(w http.ResponseWriter, r *http.Request) {
	data := MoodPageData{
		PageData: h.pageData(r, "사진 무드 분석"),
		Moods:    moodOptions(),
	}
	h.render(w, "mood", data)
}

// HabitsPage handles the habit tracker page (GET /habits).
func (h *Handlers) HabitsPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, "habits", h.habitsPageData(r))
}

// HabitList renders the habit list fragment (GET /habits/list).
func (h *Handlers) HabitList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.RenderPartial(w, "habit_list", h.habitsPageData(r)); err != nil {
		h.logger.Error("rendering partial", zap.String("partial", "habit_list"), zap.Error(err))
		http.Error(w, "Failed to render template", http.StatusInternalServerError)
	}
}

func (h *Handlers) habitsPageData(r *http.Request) HabitsPageData {
	tracker := h.tracker(r)
	progress := tracker.Progress(r.Context())
	current, span := habit.LevelProgress(progress.TotalXP)

	today := h.now().Format(habit.DateLayout)
	done := make(map[string]bool)
	if logs, err := tracker.Logs(r.Context(), today, today); err == nil {
		for _, l := range logs {
			done[l.HabitID] = l.Completed
		}
	}

	return HabitsPageData{
		PageData:     h.pageData(r, "습관 트래커"),
		Habits:       tracker.Habits(r.Context()),
		DoneToday:    done,
		Progress:     progress,
		LevelCurrent: current,
		LevelSpan:    span,
		Today:        today,
		Badges:       badgeViews(progress),
	}
}

type healthResponse struct {
	Status         string `json:"status"`
	ActiveVisitors *int   `json:"activeVisitors24h,omitempty"`
}

// Health reports liveness (GET /healthz), with the day's active visitor
// count when the visitor store can provide it.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok"}
	if counter, ok := h.visitors.(visitorCounter); ok {
		n, err := counter.CountActiveSince(r.Context(), h.now().Add(-24*time.Hour))
		if err != nil {
			h.logger.Warn("counting visitors", zap.Error(err))
		} else {
			resp.ActiveVisitors = &n
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) pageData(r *http.Request, title string) PageData {
	return PageData{
		Title:       title,
		CurrentPath: r.URL.Path,
	}
}

func (h *Handlers) render(w http.ResponseWriter, page string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.Render(w, page, data); err != nil {
		h.logger.Error("rendering template", zap.String("page", page), zap.Error(err))
		http.Error(w, "Failed to render template", http.StatusInternalServerError)
	}
}

// tracker scopes the habit tracker to the calling visitor.
func (h *Handlers) tracker(r *http.Request) *habit.Tracker {
	return habit.NewTracker(h.store, VisitorID(r.Context()),
		habit.WithLogger(h.logger),
		habit.WithClock(h.now),
	)
}
