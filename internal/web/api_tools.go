package web

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/justestif/go-life-cheatkey/internal/calc"
	"github.com/justestif/go-life-cheatkey/internal/games"
)

// Loan handles POST /api/calc/loan.
func (h *Handlers) Loan(w http.ResponseWriter, r *http.Request) {
	var in calc.LoanInput
	if err := decodeJSON(w, r, &in); err != nil {
		h.fail(w, r, err)
		return
	}
	res, err := calc.Loan(in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Salary handles POST /api/calc/salary.
func (h *Handlers) Salary(w http.ResponseWriter, r *http.Request) {
	var in calc.SalaryInput
	if err := decodeJSON(w, r, &in); err != nil {
		h.fail(w, r, err)
		return
	}
	res, err := calc.Salary(in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Brokerage handles POST /api/calc/brokerage.
func (h *Handlers) Brokerage(w http.ResponseWriter, r *http.Request) {
	var in calc.BrokerageInput
	if err := decodeJSON(w, r, &in); err != nil {
		h.fail(w, r, err)
		return
	}
	res, err := calc.Brokerage(in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Lunch handles GET /api/games/lunch?category=..&exclude=..&count=N.
// Repeated and comma separated values are both accepted.
func (h *Handlers) Lunch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := games.LunchOptions{
		Categories: splitValues(q["category"]),
		Exclude:    splitValues(q["exclude"]),
	}
	if c := q.Get("count"); c != "" {
		n, err := strconv.Atoi(c)
		if err != nil {
			h.fail(w, r, fmt.Errorf("%w: count must be a number", errBadRequest))
			return
		}
		opts.Count = n
	}

	h.lunchMu.Lock()
	picks, err := games.PickLunch(h.lunchRng, opts)
	h.lunchMu.Unlock()
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"menus": picks})
}

type balanceResponse struct {
	Question games.Question `json:"question"`
	Tally    games.Tally    `json:"tally"`
}

// BalanceQuestion handles GET /api/games/balance?category=...
func (h *Handlers) BalanceQuestion(w http.ResponseWriter, r *http.Request) {
	q, err := h.balance.Random(r.URL.Query().Get("category"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	t, err := h.balance.Tally(q.ID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, balanceResponse{Question: q, Tally: t})
}

type voteRequest struct {
	Choice string `json:"choice"`
}

// BalanceVote handles POST /api/games/balance/{id}/vote.
func (h *Handlers) BalanceVote(w http.ResponseWriter, r *http.Request) {
	var req voteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	t, err := h.balance.Vote(chi.URLParam(r, "id"), req.Choice)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func splitValues(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
