package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestParseUserID(t *testing.T) {
	req := require.New(t)
	userID := uuid.New()
	token := signToken(t, "secret", jwt.MapClaims{
		"sub": userID.String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	got, err := ParseUserID(token, "secret")

	req.NoError(err)
	req.Equal(userID, got)
}

func TestParseUserID_WrongSecret(t *testing.T) {
	req := require.New(t)
	token := signToken(t, "secret", jwt.MapClaims{
		"sub": uuid.NewString(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := ParseUserID(token, "other-secret")
	req.Error(err)
}

func TestParseUserID_Expired(t *testing.T) {
	req := require.New(t)
	token := signToken(t, "secret", jwt.MapClaims{
		"sub": uuid.NewString(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	_, err := ParseUserID(token, "secret")
	req.Error(err)
}

func TestParseUserID_GarbageInput(t *testing.T) {
	req := require.New(t)

	_, err := ParseUserID("not-a-jwt", "secret")
	req.Error(err)
}

func TestParseUserID_SubjectNotAUserID(t *testing.T) {
	req := require.New(t)
	token := signToken(t, "secret", jwt.MapClaims{
		"sub": "bob",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := ParseUserID(token, "secret")
	req.Error(err)
}
