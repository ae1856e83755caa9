package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/justestif/go-life-cheatkey/internal/habit"
)

// ListHabits handles GET /api/habits.
func (h *Handlers) ListHabits(w http.ResponseWriter, r *http.Request) {
	habits := h.tracker(r).Habits(r.Context())
	if habits == nil {
		habits = []habit.Habit{}
	}
	writeJSON(w, http.StatusOK, habits)
}

// CreateHabit handles POST /api/habits.
func (h *Handlers) CreateHabit(w http.ResponseWriter, r *http.Request) {
	var in habit.HabitInput
	if err := decodeJSON(w, r, &in); err != nil {
		h.fail(w, r, err)
		return
	}

	created, err := h.tracker(r).CreateHabit(r.Context(), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// UpdateHabit handles PUT /api/habits/{id}.
func (h *Handlers) UpdateHabit(w http.ResponseWriter, r *http.Request) {
	var in habit.HabitInput
	if err := decodeJSON(w, r, &in); err != nil {
		h.fail(w, r, err)
		return
	}

	updated, err := h.tracker(r).UpdateHabit(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteHabit handles DELETE /api/habits/{id}.
func (h *Handlers) DeleteHabit(w http.ResponseWriter, r *http.Request) {
	if err := h.tracker(r).DeleteHabit(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HabitStats handles GET /api/habits/{id}/stats.
func (h *Handlers) HabitStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.tracker(r).HabitStats(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

type setLogRequest struct {
	Completed bool `json:"completed"`
}

// SetHabitLog handles PUT /api/habits/{id}/logs/{date}.
func (h *Handlers) SetHabitLog(w http.ResponseWriter, r *http.Request) {
	var req setLogRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	res, err := h.tracker(r).SetLog(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "date"), req.Completed)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// ListLogs handles GET /api/habits/logs?from=YYYY-MM-DD&to=YYYY-MM-DD.
func (h *Handlers) ListLogs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	logs, err := h.tracker(r).Logs(r.Context(), q.Get("from"), q.Get("to"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if logs == nil {
		logs = []habit.HabitLog{}
	}
	writeJSON(w, http.StatusOK, logs)
}

type progressResponse struct {
	habit.UserProgress
	LevelCurrent int `json:"levelCurrent"`
	LevelSpan    int `json:"levelSpan"`
}

// Progress handles GET /api/habits/progress.
func (h *Handlers) Progress(w http.ResponseWriter, r *http.Request) {
	p := h.tracker(r).Progress(r.Context())
	current, span := habit.LevelProgress(p.TotalXP)
	writeJSON(w, http.StatusOK, progressResponse{UserProgress: p, LevelCurrent: current, LevelSpan: span})
}
