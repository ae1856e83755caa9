package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/justestif/go-life-cheatkey/internal/ai"
	"github.com/justestif/go-life-cheatkey/internal/calc"
	"github.com/justestif/go-life-cheatkey/internal/games"
	"github.com/justestif/go-life-cheatkey/internal/habit"
	"github.com/justestif/go-life-cheatkey/internal/mood"
)

const maxJSONBytes = 1 << 20

// errBadRequest marks malformed request input.
var errBadRequest = errors.New("bad request")

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// decodeJSON reads a size-limited JSON body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return err
		}
		return fmt.Errorf("%w: invalid JSON body: %v", errBadRequest, err)
	}
	return nil
}

// fail writes err with the status its kind maps to.
func (h *Handlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := errorStatus(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			zap.String("path", r.URL.Path),
			zap.Int("status", status),
			zap.Error(err),
		)
	}
	writeError(w, status, msg)
}

func errorStatus(err error) (int, string) {
	var (
		tooLarge   *http.MaxBytesError
		upstream   *ai.UpstreamError
		extraction *ai.ExtractionError
		field      *ai.FieldError
	)

	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge, fmt.Sprintf("요청이 너무 큽니다 (최대 %d바이트)", tooLarge.Limit)

	case errors.Is(err, mood.ErrImageLoad), errors.Is(err, mood.ErrEnvironment):
		return http.StatusUnprocessableEntity, "이미지를 읽을 수 없습니다. 다른 사진으로 시도해 주세요."

	case errors.As(err, &field):
		return http.StatusBadRequest, field.Error()

	case errors.Is(err, errBadRequest),
		errors.Is(err, mood.ErrEmptyResult),
		errors.Is(err, habit.ErrInvalidHabit),
		errors.Is(err, habit.ErrInvalidDate),
		errors.Is(err, calc.ErrInvalidInput),
		errors.Is(err, games.ErrInvalidCount),
		errors.Is(err, games.ErrInvalidChoice),
		errors.Is(err, games.ErrNoCandidates):
		return http.StatusBadRequest, err.Error()

	case errors.Is(err, habit.ErrHabitNotFound),
		errors.Is(err, games.ErrQuestionNotFound),
		errors.Is(err, ai.ErrUnknownKind):
		return http.StatusNotFound, err.Error()

	case errors.Is(err, ai.ErrMissingAPIKey):
		return http.StatusServiceUnavailable, "AI 기능이 설정되지 않았습니다."

	case errors.As(err, &upstream):
		status := upstream.StatusCode
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		if upstream.Message == "" {
			return status, http.StatusText(status)
		}
		return status, upstream.Message

	case errors.As(err, &extraction):
		return http.StatusBadGateway, "AI 응답을 해석하지 못했습니다. 다시 시도해 주세요."

	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "AI 응답 시간이 초과되었습니다."

	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
