package web

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"math/rand"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/justestif/go-life-cheatkey/internal/ai"
	"github.com/justestif/go-life-cheatkey/internal/habit"
	"github.com/justestif/go-life-cheatkey/internal/mood"
	"github.com/justestif/go-life-cheatkey/internal/storage"
	webfs "github.com/justestif/go-life-cheatkey/web"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

type fakeCompleter struct {
	out   string
	err   error
	calls int
}

func (f *fakeCompleter) Complete(context.Context, string, string) (string, error) {
	f.calls++
	return f.out, f.err
}

type recordingVisitors struct {
	seen []string
}

func (r *recordingVisitors) Touch(_ context.Context, id string) error {
	r.seen = append(r.seen, id)
	return nil
}

func (r *recordingVisitors) CountActiveSince(context.Context, time.Time) (int, error) {
	return len(r.seen), nil
}

func newTestServer(t *testing.T, mutate func(*ServerConfig)) *Server {
	t.Helper()

	templates, err := fs.Sub(webfs.TemplatesFS, "templates")
	require.NoError(t, err)
	static, err := fs.Sub(webfs.StaticFS, "static")
	require.NoError(t, err)

	cfg := ServerConfig{
		TemplatesFS: templates,
		StaticFS:    static,
		Logger:      zap.NewNop(),
		Analyzer:    mood.NewAnalyzer(mood.DefaultConfig(), rand.NewSource(1)),
		Store:       storage.NewMemory(),
		Rand:        rand.New(rand.NewSource(1)),
		Now:         func() time.Time { return testNow },
	}
	if mutate != nil {
		mutate(&cfg)
	}

	srv, err := NewServer(cfg)
	require.NoError(t, err)
	return srv
}

// do sends a request, carrying the visitor cookie when one is given.
func do(t *testing.T, srv *Server, method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func visitorCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == visitorCookieName {
			return c
		}
	}
	t.Fatal("visitor cookie not set")
	return nil
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestNewServerRequiresDependencies(t *testing.T) {
	_, err := NewServer(ServerConfig{Store: storage.NewMemory()})
	assert.Error(t, err)
	_, err = NewServer(ServerConfig{Analyzer: mood.NewAnalyzer(mood.DefaultConfig(), nil)})
	assert.Error(t, err)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := do(t, srv, http.MethodGet, "/healthz", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	visitors := &recordingVisitors{seen: []string{"a", "b"}}
	srv = newTestServer(t, func(cfg *ServerConfig) { cfg.Visitors = visitors })
	rec = do(t, srv, http.MethodGet, "/healthz", nil, nil)
	assert.JSONEq(t, `{"status":"ok","activeVisitors24h":2}`, rec.Body.String())
}

func TestPages(t *testing.T) {
	srv := newTestServer(t, nil)

	for _, path := range []string{"/", "/mood", "/habits", "/habits/list"} {
		t.Run(path, func(t *testing.T) {
			rec := do(t, srv, http.MethodGet, path, nil, nil)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
			assert.NotEmpty(t, rec.Body.String())
		})
	}

	rec := do(t, srv, http.MethodGet, "/", nil, nil)
	assert.Contains(t, rec.Body.String(), "인생 치트키")
	assert.Contains(t, rec.Body.String(), "AI 기능이 아직 설정되지 않았어요")
}

func TestStatic(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := do(t, srv, http.MethodGet, "/static/css/app.css", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Result().Cookies(), "static assets do not issue visitor cookies")
}

func TestVisitorCookie(t *testing.T) {
	visitors := &recordingVisitors{}
	srv := newTestServer(t, func(cfg *ServerConfig) { cfg.Visitors = visitors })

	rec := do(t, srv, http.MethodGet, "/api/habits", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cookie := visitorCookie(t, rec)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, int(visitorTTL.Seconds()), cookie.MaxAge)

	rec = do(t, srv, http.MethodGet, "/api/habits", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Result().Cookies(), "known visitors keep their cookie")

	require.Len(t, visitors.seen, 2)
	assert.Equal(t, cookie.Value, visitors.seen[0])
	assert.Equal(t, cookie.Value, visitors.seen[1])

	rec = do(t, srv, http.MethodGet, "/api/habits", nil, &http.Cookie{Name: visitorCookieName, Value: "not-a-uuid"})
	assert.NotEqual(t, "not-a-uuid", visitorCookie(t, rec).Value)
}

func multipartImage(t *testing.T, field string, data []byte, samples string) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if data != nil {
		fw, err := mw.CreateFormFile(field, "photo.png")
		require.NoError(t, err)
		_, err = fw.Write(data)
		require.NoError(t, err)
	}
	if samples != "" {
		require.NoError(t, mw.WriteField("samples", samples))
	}
	require.NoError(t, mw.Close())
	return &body, mw.FormDataContentType()
}

func grayPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 128, G: 128, B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestAnalyzeMood(t *testing.T) {
	srv := newTestServer(t, nil)

	tests := []struct {
		name       string
		field      string
		data       []byte
		samples    string
		wantStatus int
	}{
		{name: "gray image", field: "image", data: grayPNG(t), wantStatus: http.StatusOK},
		{name: "custom samples", field: "image", data: grayPNG(t), samples: "50", wantStatus: http.StatusOK},
		{name: "bad samples", field: "image", data: grayPNG(t), samples: "-3", wantStatus: http.StatusBadRequest},
		{name: "missing image", field: "photo", data: grayPNG(t), wantStatus: http.StatusBadRequest},
		{name: "not an image", field: "image", data: []byte("definitely not a png"), wantStatus: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, contentType := multipartImage(t, tt.field, tt.data, tt.samples)
			req := httptest.NewRequest(http.MethodPost, "/api/mood/analyze", body)
			req.Header.Set("Content-Type", contentType)
			rec := httptest.NewRecorder()
			srv.Handler().ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantStatus != http.StatusOK {
				assert.NotEmpty(t, decode[errorResponse](t, rec).Error)
				return
			}
			res := decode[mood.Result](t, rec)
			assert.Equal(t, mood.Minimal, res.PrimaryMood)
			require.Len(t, res.DominantColors, mood.DefaultClusterCount)
			for _, hex := range res.DominantColors {
				assert.Equal(t, "#808080", hex)
			}
		})
	}
}

func TestAnalyzeMoodTooLarge(t *testing.T) {
	srv := newTestServer(t, nil)

	body, contentType := multipartImage(t, "image", make([]byte, maxUploadBytes+1), "")
	req := httptest.NewRequest(http.MethodPost, "/api/mood/analyze", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestAnalyzeMoodNotMultipart(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := do(t, srv, http.MethodPost, "/api/mood/analyze", map[string]string{"image": "x"}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMoodCard(t *testing.T) {
	srv := newTestServer(t, nil)

	res := mood.Present(mood.Scores{mood.Minimal: 30}, []mood.RGB{{R: 128, G: 128, B: 128}})
	rec := do(t, srv, http.MethodPost, "/api/mood/card", res, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))

	img, err := png.Decode(rec.Body)
	require.NoError(t, err)
	assert.Positive(t, img.Bounds().Dx())

	rec = do(t, srv, http.MethodPost, "/api/mood/card", mood.Result{}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, srv, http.MethodPost, "/api/mood/card", "{not json", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHabitFlow(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := do(t, srv, http.MethodPost, "/api/habits", habit.HabitInput{Name: "물 2L 마시기", Emoji: "💧"}, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	cookie := visitorCookie(t, rec)
	created := decode[habit.Habit](t, rec)
	assert.NotEmpty(t, created.ID)

	rec = do(t, srv, http.MethodGet, "/api/habits", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]habit.Habit](t, rec), 1)

	rec = do(t, srv, http.MethodGet, "/api/habits", nil, nil)
	assert.JSONEq(t, `[]`, rec.Body.String(), "another visitor sees nothing")

	rec = do(t, srv, http.MethodPut, "/api/habits/"+created.ID+"/logs/2026-03-10", map[string]bool{"completed": true}, cookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	logged := decode[habit.LogResult](t, rec)
	assert.Equal(t, habit.XPPerCompletion, logged.XPDelta)
	assert.Equal(t, 1, logged.Streak)

	rec = do(t, srv, http.MethodPut, "/api/habits/"+created.ID+"/logs/2026-03-11", map[string]bool{"completed": true}, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "future dates are rejected")

	rec = do(t, srv, http.MethodPut, "/api/habits/"+created.ID+"/logs/03-10-2026", map[string]bool{"completed": true}, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, srv, http.MethodGet, "/api/habits/"+created.ID+"/stats", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decode[habit.Stats](t, rec)
	assert.Equal(t, 1, stats.CurrentStreak)
	assert.Equal(t, 1, stats.Completions)

	rec = do(t, srv, http.MethodGet, "/api/habits/logs?from=2026-03-01&to=2026-03-31", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]habit.HabitLog](t, rec), 1)

	rec = do(t, srv, http.MethodGet, "/api/habits/logs?from=yesterday", nil, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, srv, http.MethodGet, "/api/habits/progress", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	progress := decode[progressResponse](t, rec)
	assert.Equal(t, 10, progress.TotalXP)
	assert.True(t, progress.HasAchievement(habit.AchievementFirstStep))

	rec = do(t, srv, http.MethodPut, "/api/habits/"+created.ID, habit.HabitInput{Name: "물 3L 마시기"}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "물 3L 마시기", decode[habit.Habit](t, rec).Name)

	rec = do(t, srv, http.MethodGet, "/habits", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "물 3L 마시기")
	assert.Contains(t, rec.Body.String(), "첫 걸음")

	rec = do(t, srv, http.MethodDelete, "/api/habits/"+created.ID, nil, cookie)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, srv, http.MethodDelete, "/api/habits/"+created.ID, nil, cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHabitValidation(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := do(t, srv, http.MethodPost, "/api/habits", habit.HabitInput{Name: "   "}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, srv, http.MethodPost, "/api/habits", "[1,2", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, srv, http.MethodPut, "/api/habits/missing", habit.HabitInput{Name: "x"}, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, srv, http.MethodGet, "/api/habits/missing/stats", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGenerate(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		srv := newTestServer(t, nil)
		rec := do(t, srv, http.MethodPost, "/api/ai/excuse", ai.Request{Situation: "지각", Relationship: "팀장님"}, nil)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	tests := []struct {
		name       string
		path       string
		req        ai.Request
		completer  *fakeCompleter
		wantStatus int
		wantCalls  int
	}{
		{
			name:       "excuse",
			path:       "/api/ai/excuse",
			req:        ai.Request{Situation: "지각", Relationship: "팀장님"},
			completer:  &fakeCompleter{out: "지하철이 멈췄습니다."},
			wantStatus: http.StatusOK,
			wantCalls:  1,
		},
		{
			name:       "unknown kind",
			path:       "/api/ai/poem",
			req:        ai.Request{Situation: "x"},
			completer:  &fakeCompleter{},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "missing field",
			path:       "/api/ai/excuse",
			req:        ai.Request{Situation: "지각"},
			completer:  &fakeCompleter{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "upstream status passes through",
			path:       "/api/ai/refusal",
			req:        ai.Request{Situation: "회식", Relationship: "동기"},
			completer:  &fakeCompleter{err: &ai.UpstreamError{StatusCode: http.StatusTooManyRequests, Message: "quota"}},
			wantStatus: http.StatusTooManyRequests,
			wantCalls:  1,
		},
		{
			name:       "unparseable json",
			path:       "/api/ai/consult",
			req:        ai.Request{Situation: "이직 고민"},
			completer:  &fakeCompleter{out: "그냥 힘내세요"},
			wantStatus: http.StatusBadGateway,
			wantCalls:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, func(cfg *ServerConfig) {
				cfg.Generator = ai.NewGenerator(tt.completer, zap.NewNop())
			})
			rec := do(t, srv, http.MethodPost, tt.path, tt.req, nil)
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			assert.Equal(t, tt.wantCalls, tt.completer.calls)
		})
	}
}

func TestGenerateRateLimited(t *testing.T) {
	completer := &fakeCompleter{out: "죄송합니다."}
	srv := newTestServer(t, func(cfg *ServerConfig) {
		cfg.Generator = ai.NewGenerator(completer, zap.NewNop())
		cfg.AIRatePerMinute = 2
	})

	req := ai.Request{Situation: "약속 취소", Relationship: "친구"}
	for i := 0; i < 2; i++ {
		rec := do(t, srv, http.MethodPost, "/api/ai/excuse", req, nil)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := do(t, srv, http.MethodPost, "/api/ai/excuse", req, nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "30", rec.Header().Get("Retry-After"))
	assert.Equal(t, 2, completer.calls)

	rec = do(t, srv, http.MethodPost, "/api/calc/salary", map[string]int64{"annualSalary": 40_000_000}, nil)
	assert.Equal(t, http.StatusOK, rec.Code, "only AI routes are limited")
}

func TestIPLimiter(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l := newIPLimiter(3)
	l.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		assert.True(t, l.allow("10.0.0.1"))
	}
	assert.False(t, l.allow("10.0.0.1"))
	assert.True(t, l.allow("10.0.0.2"), "limits are per IP")

	now = now.Add(20 * time.Second)
	assert.True(t, l.allow("10.0.0.1"), "one token refills every 20s")
	assert.False(t, l.allow("10.0.0.1"))

	now = now.Add(limiterIdleTTL + time.Second)
	l.allow("10.0.0.3")
	l.mu.Lock()
	_, ok := l.visitors["10.0.0.2"]
	l.mu.Unlock()
	assert.False(t, ok, "idle limiters are swept")
}

func TestCalcEndpoints(t *testing.T) {
	srv := newTestServer(t, nil)

	tests := []struct {
		name       string
		path       string
		body       any
		wantStatus int
	}{
		{"loan", "/api/calc/loan", map[string]any{"principal": 10_000_000, "annualRate": 5, "months": 24, "method": "equal_payment"}, http.StatusOK},
		{"loan invalid", "/api/calc/loan", map[string]any{"principal": 0, "annualRate": 5, "months": 24}, http.StatusBadRequest},
		{"salary", "/api/calc/salary", map[string]any{"annualSalary": 40_000_000}, http.StatusOK},
		{"salary invalid", "/api/calc/salary", map[string]any{"annualSalary": -1}, http.StatusBadRequest},
		{"brokerage", "/api/calc/brokerage", map[string]any{"type": "sale", "price": 500_000_000}, http.StatusOK},
		{"brokerage invalid", "/api/calc/brokerage", map[string]any{"type": "lease", "price": 1}, http.StatusBadRequest},
		{"malformed", "/api/calc/loan", "{", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, srv, http.MethodPost, tt.path, tt.body, nil)
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}
}

func TestLunch(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := do(t, srv, http.MethodGet, "/api/games/lunch?category=분식&count=2", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var got struct {
		Menus []struct {
			Name     string `json:"name"`
			Category string `json:"category"`
		} `json:"menus"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Menus, 2)
	for _, m := range got.Menus {
		assert.Equal(t, "분식", m.Category)
	}

	rec = do(t, srv, http.MethodGet, "/api/games/lunch?category=분식,일식&exclude=떡볶이&count=5", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "떡볶이")

	for _, path := range []string{
		"/api/games/lunch?count=9",
		"/api/games/lunch?count=two",
		"/api/games/lunch?category=디저트",
	} {
		rec = do(t, srv, http.MethodGet, path, nil, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
	}
}

func TestBalance(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := do(t, srv, http.MethodGet, "/api/games/balance?category=음식", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	q := decode[balanceResponse](t, rec)
	assert.Equal(t, "음식", q.Question.Category)

	rec = do(t, srv, http.MethodPost, "/api/games/balance/"+q.Question.ID+"/vote", voteRequest{Choice: "b"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, srv, http.MethodPost, "/api/games/balance/"+q.Question.ID+"/vote", voteRequest{Choice: "a"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got struct {
		A        int     `json:"a"`
		B        int     `json:"b"`
		PercentA float64 `json:"percentA"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 1, got.A)
	assert.Equal(t, 1, got.B)
	assert.Equal(t, 50.0, got.PercentA)

	rec = do(t, srv, http.MethodPost, "/api/games/balance/nope/vote", voteRequest{Choice: "a"}, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, srv, http.MethodPost, "/api/games/balance/"+q.Question.ID+"/vote", voteRequest{Choice: "c"}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, srv, http.MethodGet, "/api/games/balance?category=우주", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{&http.MaxBytesError{Limit: 10}, http.StatusRequestEntityTooLarge},
		{mood.ErrImageLoad, http.StatusUnprocessableEntity},
		{&ai.FieldError{Field: "situation", Reason: "required"}, http.StatusBadRequest},
		{habit.ErrHabitNotFound, http.StatusNotFound},
		{&ai.UpstreamError{StatusCode: 401, Message: "bad key"}, http.StatusUnauthorized},
		{&ai.UpstreamError{StatusCode: 200}, http.StatusBadGateway},
		{&ai.ExtractionError{Raw: "?"}, http.StatusBadGateway},
		{context.DeadlineExceeded, http.StatusGatewayTimeout},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			got, msg := errorStatus(tt.err)
			assert.Equal(t, tt.want, got)
			assert.NotEmpty(t, strings.TrimSpace(msg))
		})
	}
}
