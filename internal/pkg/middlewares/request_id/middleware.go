// Package request_id tags every request with an X-Request-ID so portal
// logs can be correlated with backend logs. An incoming id is kept;
// otherwise a fresh UUID is issued.
package request_id

import (
	"net/http"

	"github.com/google/uuid"
)

const Header = "X-Request-ID"

func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(Header)
			if requestID == "" {
				requestID = uuid.NewString()
				r.Header.Set(Header, requestID)
			}
			w.Header().Set(Header, requestID)

			next.ServeHTTP(w, r)
		})
	}
}
