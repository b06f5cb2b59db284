package middleware

import (
	"net/http"

	"photo-album-backend/internal/services"
)

// RequireSession gates protected routes on the presence of the session
// cookie. The token itself is not verified here: it is an opaque
// provider credential, checked upstream when the profile is fetched.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if services.SessionToken(r) == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"error":"Access Denied"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}
