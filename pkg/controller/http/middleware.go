package http

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

// webhookAuth validates the shared webhook token when one is
// configured. Without a token the endpoint is open, matching
// deployments where the ticketing system cannot send headers.
func webhookAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			got := r.Header.Get("X-Webhook-Token")
			if got == "" {
				got = strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			}

			if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				http.Error(w, "invalid webhook token", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
