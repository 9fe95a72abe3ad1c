package session

import (
	"context"
	"net/http"
	"regexp"

	"github.com/rs/xid"
)

const (
	HeaderName = "X-Session-ID"
	CookieName = "session_id"
)

type contextKey string

const idKey contextKey = "session_id"

var validID = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// NewID returns a fresh session id.
func NewID() string {
	return xid.New().String()
}

func ContextWithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, idKey, id)
}

func IDFromContext(ctx context.Context) string {
	id, ok := ctx.Value(idKey).(string)
	if !ok {
		return ""
	}
	return id
}

// Middleware resolves the caller's session id from the X-Session-ID header
// or the session_id cookie. Callers without a valid id get a new one, sent
// back as both a cookie and a header.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := fromRequest(r)
		if id == "" {
			id = NewID()
			http.SetCookie(w, &http.Cookie{
				Name:     CookieName,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		w.Header().Set(HeaderName, id)

		next.ServeHTTP(w, r.WithContext(ContextWithID(r.Context(), id)))
	})
}

func fromRequest(r *http.Request) string {
	if id := r.Header.Get(HeaderName); validID.MatchString(id) {
		return id
	}
	if c, err := r.Cookie(CookieName); err == nil && validID.MatchString(c.Value) {
		return c.Value
	}
	return ""
}
