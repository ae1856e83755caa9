// Package web provides the HTTP server, JSON API and pages for life-cheatkey.
package web

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	visitorCookieName = "visitor_id"
	visitorTTL        = 365 * 24 * time.Hour
)

type visitorKey struct{}

// VisitorRecorder records that a visitor was seen.
type VisitorRecorder interface {
	Touch(ctx context.Context, id string) error
}

// visitorCounter is implemented by recorders that can report recent activity.
type visitorCounter interface {
	CountActiveSince(ctx context.Context, since time.Time) (int, error)
}

// VisitorID returns the anonymous visitor ID stored in ctx, or "" if none.
func VisitorID(ctx context.Context) string {
	id, _ := ctx.Value(visitorKey{}).(string)
	return id
}

// withVisitor identifies the caller by the visitor_id cookie, issuing a new
// ID when the cookie is missing or malformed. rec may be nil.
func withVisitor(rec VisitorRecorder, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := visitorFromRequest(r)
			if id == "" {
				id = uuid.NewString()
				setVisitorCookie(w, r, id)
			}

			if rec != nil {
				if err := rec.Touch(r.Context(), id); err != nil {
					logger.Warn("recording visitor", zap.String("visitor_id", id), zap.Error(err))
				}
			}

			ctx := context.WithValue(r.Context(), visitorKey{}, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// visitorFromRequest extracts a well-formed visitor ID from the request cookie.
func visitorFromRequest(r *http.Request) string {
	cookie, err := r.Cookie(visitorCookieName)
	if err != nil {
		return ""
	}
	id, err := uuid.Parse(cookie.Value)
	if err != nil {
		return ""
	}
	return id.String()
}

func setVisitorCookie(w http.ResponseWriter, r *http.Request, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     visitorCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(visitorTTL.Seconds()),
	})
}
