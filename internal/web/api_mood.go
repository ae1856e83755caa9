package web

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/justestif/go-life-cheatkey/internal/mood"
)

const (
	maxUploadBytes = 10 << 20
	maxSampleCount = 10000
)

// AnalyzeMood handles POST /api/mood/analyze with a multipart "image" field
// and an optional "samples" count.
func (h *Handlers) AnalyzeMood(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.fail(w, r, err)
			return
		}
		h.fail(w, r, fmt.Errorf("%w: expected multipart form: %v", errBadRequest, err))
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	samples, err := parseSamples(r.FormValue("samples"))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		h.fail(w, r, fmt.Errorf("%w: image file is required", errBadRequest))
		return
	}
	defer file.Close()

	res, err := h.analyzer.AnalyzeWithSamples(file, samples)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func parseSamples(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > maxSampleCount {
		return 0, fmt.Errorf("%w: samples must be between 1 and %d", errBadRequest, maxSampleCount)
	}
	return n, nil
}

// MoodCard handles POST /api/mood/card, rendering a posted result as PNG.
func (h *Handlers) MoodCard(w http.ResponseWriter, r *http.Request) {
	var res mood.Result
	if err := decodeJSON(w, r, &res); err != nil {
		h.fail(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := mood.RenderCard(&buf, &res); err != nil {
		h.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", `inline; filename="mood-card.png"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	_, _ = buf.WriteTo(w)
}
