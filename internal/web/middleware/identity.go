package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/aswanig/labportal/internal/core"
)

type contextKey string

const ctxKeyIdentity contextKey = "identity"

// Identity returns middleware that resolves the X-User header through the
// identity directory and stores the resolved identity in the request
// context. Requests with a missing or unknown login are rejected.
//
// Transporting the login in a plain header is deliberate: authentication is
// handled outside this service, and the directory only maps an already
// established login to its role and permissions.
func Identity(dir core.Directory) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			login := r.Header.Get("X-User")
			if login == "" {
				slog.Warn("identity: missing X-User header",
					"path", r.URL.Path,
					"method", r.Method,
				)
				http.Error(w, `{"error":"missing X-User header","code":"AUTH001"}`, http.StatusUnauthorized)
				return
			}

			ident, err := dir.Resolve(login)
			if err != nil {
				slog.Warn("identity: unknown login",
					"path", r.URL.Path,
					"method", r.Method,
					"user", login,
				)
				http.Error(w, `{"error":"unknown user","code":"AUTH001"}`, http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyIdentity, ident)
			ctx = core.ContextWithIPAddress(ctx, r.RemoteAddr)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext extracts the resolved caller identity.
// The second return is false for requests that skipped the Identity
// middleware.
func IdentityFromContext(ctx context.Context) (core.Identity, bool) {
	ident, ok := ctx.Value(ctxKeyIdentity).(core.Identity)
	return ident, ok
}
