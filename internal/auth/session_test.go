package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessions_IssueAndParse(t *testing.T) {
	sessions := NewSessions("test-secret")

	token, err := sessions.Issue(42, "lernantino")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := sessions.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "lernantino", claims.Username)
}

func TestSessions_RejectsWrongSecret(t *testing.T) {
	token, err := NewSessions("secret-a").Issue(1, "a")
	require.NoError(t, err)

	_, err = NewSessions("secret-b").Parse(token)
	assert.Error(t, err)
}

func TestSessions_RejectsExpiredToken(t *testing.T) {
	sessions := NewSessions("test-secret")

	claims := SessionClaims{
		UserID:   7,
		Username: "expired",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-25 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = sessions.Parse(token)
	assert.Error(t, err)
}

func TestSessions_RejectsGarbageToken(t *testing.T) {
	sessions := NewSessions("test-secret")

	_, err := sessions.Parse("not.a.token")
	assert.Error(t, err)

	_, err = sessions.Parse("")
	assert.Error(t, err)
}
