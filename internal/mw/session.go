package mw

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type contextKey string

const SessionCtxKey contextKey = "session_id"

const sessionCookie = "heladeria_session"

// Session attaches a cart-session id to every request. The id travels in
// an HS256-signed cookie; a missing or invalid cookie gets replaced with
// a fresh session transparently.
func Session(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sid := ""
			if c, err := r.Cookie(sessionCookie); err == nil {
				sid = parseSession(c.Value, secret)
			}

			if sid == "" {
				sid = uuid.NewString()
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
					"sid": sid,
					"exp": jwt.NewNumericDate(time.Now().Add(30 * 24 * time.Hour)),
				})
				signed, err := token.SignedString([]byte(secret))
				if err != nil {
					http.Error(w, "internal error", http.StatusInternalServerError)
					return
				}
				http.SetCookie(w, &http.Cookie{
					Name:     sessionCookie,
					Value:    signed,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), SessionCtxKey, sid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func parseSession(tokenString, secret string) string {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return ""
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}

	sid, _ := claims["sid"].(string)
	return sid
}

// SessionID returns the cart-session id set by Session.
func SessionID(ctx context.Context) string {
	sid, _ := ctx.Value(SessionCtxKey).(string)
	return sid
}
