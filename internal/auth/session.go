package auth

import "net/http"

// SessionCookie builds the cookie that carries a freshly signed session
// token. The secure flag is only set in production so local development
// over plain HTTP keeps working.
func SessionCookie(token string, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(SessionDuration.Seconds()),
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// ExpiredSessionCookie overwrites the session cookie with an immediately
// expiring empty value. Logging out is a client-side destruction; the
// token itself is not revocable server-side before expiry.
func ExpiredSessionCookie(secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
