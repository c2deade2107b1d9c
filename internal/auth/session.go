// Package auth covers the credential lifecycle: bcrypt hashing on the
// write path and signed session tokens carried in an HTTP-only cookie.
package auth

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionCookie is the name of the cookie holding the session token.
const SessionCookie = "session"

const sessionTTL = 24 * time.Hour

var ErrInvalidSession = errors.New("invalid session token")

// SessionClaims identify the logged-in user inside a session token.
type SessionClaims struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Sessions issues and verifies session tokens. Construct one at startup
// and inject it wherever a login state is read or written.
type Sessions struct {
	secret []byte
}

func NewSessions(secret string) *Sessions {
	return &Sessions{secret: []byte(secret)}
}

// Issue returns a signed session token for the given user.
func (s *Sessions) Issue(userID int, username string) (string, error) {
	claims := SessionClaims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse verifies a session token and returns its claims.
func (s *Sessions) Parse(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSession
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidSession
	}
	return claims, nil
}

// SetCookie attaches a session token to the response. HttpOnly keeps it
// away from page scripts.
func (s *Sessions) SetCookie(c *gin.Context, token string) {
	c.SetCookie(SessionCookie, token, int(sessionTTL.Seconds()), "/", "", false, true)
}

// ClearCookie expires the session cookie, logging the client out.
func (s *Sessions) ClearCookie(c *gin.Context) {
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
}
