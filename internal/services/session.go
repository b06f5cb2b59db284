package services

import "net/http"

// SessionCookieName is the cookie carrying the provider access token.
const SessionCookieName = "access_token"

// SetSessionCookie issues the session cookie. HTTP-only and secure,
// session-scoped: no explicit expiry.
func SetSessionCookie(w http.ResponseWriter, accessToken string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    accessToken,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

// SessionToken returns the session cookie value, or "" when absent.
func SessionToken(r *http.Request) string {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
