// Package auth_forward stashes the caller's Authorization header into the
// request context. The portal never validates credentials itself; the
// backend gateway forwards the header verbatim on every call.
package auth_forward

import (
	"net/http"

	"portal/internal/pkg/authctx"
)

func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := authctx.WithAuthorization(r.Context(), r.Header.Get("Authorization"))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
