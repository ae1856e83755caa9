package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/justestif/go-life-cheatkey/internal/ai"
)

// Generate handles POST /api/ai/{kind}.
func (h *Handlers) Generate(w http.ResponseWriter, r *http.Request) {
	kind, err := ai.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if h.generator == nil {
		h.fail(w, r, ai.ErrMissingAPIKey)
		return
	}

	var req ai.Request
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	resp, err := h.generator.Generate(r.Context(), kind, req)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.logger.Debug("generated text",
		zap.String("kind", string(kind)),
		zap.String("visitor_id", VisitorID(r.Context())),
	)
	writeJSON(w, http.StatusOK, resp)
}
