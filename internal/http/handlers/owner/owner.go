// Package owner extracts the acting user's identifier from requests.
// Authentication is handled by an upstream gateway, handlers only need the
// forwarded identifier.
package owner

import (
	"apptrack/internal/core/domain/appointment"
	"context"
	"net/http"
)

const (
	HEADER        = "X-Owner-ID"
	OWNER_MAX_LEN = 128
)

type contextKey string

const CONTEXT_OWNER_KEY = contextKey("owner")

func Parse(r *http.Request) (ownerID appointment.UserID, ok bool) {
	header := r.Header.Get(HEADER)
	if header == "" || len(header) > OWNER_MAX_LEN {
		return ownerID, false
	}
	return appointment.UserID(header), true
}

func SetOwnerToContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := Parse(r)
		if ok {
			ctx := context.WithValue(r.Context(), CONTEXT_OWNER_KEY, ownerID)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

func FromContext(ctx context.Context) (ownerID appointment.UserID, ok bool) {
	ownerID, ok = ctx.Value(CONTEXT_OWNER_KEY).(appointment.UserID)
	return ownerID, ok
}
