package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID.String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func protected(t *testing.T, seen *uuid.UUID) http.Handler {
	t.Helper()
	return Auth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*seen = GetUserID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body struct {
		Error map[string]string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body.Error
}

func TestAuth_ValidTokenPassesUserID(t *testing.T) {
	req := require.New(t)
	userID := uuid.New()
	var seen uuid.UUID

	r := httptest.NewRequest(http.MethodGet, "/api/messages/users", nil)
	r.Header.Set("Authorization", "Bearer "+signToken(t, userID))
	rec := httptest.NewRecorder()

	protected(t, &seen).ServeHTTP(rec, r)

	req.Equal(http.StatusNoContent, rec.Code)
	req.Equal(userID, seen)
}

func TestAuth_MissingHeader(t *testing.T) {
	req := require.New(t)
	var seen uuid.UUID

	r := httptest.NewRequest(http.MethodGet, "/api/messages/users", nil)
	rec := httptest.NewRecorder()

	protected(t, &seen).ServeHTTP(rec, r)

	req.Equal(http.StatusUnauthorized, rec.Code)
	req.Equal(uuid.Nil, seen)

	body := errorBody(t, rec)
	req.Equal("UNAUTHORIZED", body["code"])
	req.NotEmpty(body["message"])
}

func TestAuth_NonBearerHeader(t *testing.T) {
	req := require.New(t)
	var seen uuid.UUID

	r := httptest.NewRequest(http.MethodGet, "/api/messages/users", nil)
	r.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()

	protected(t, &seen).ServeHTTP(rec, r)

	req.Equal(http.StatusUnauthorized, rec.Code)
	req.Equal("UNAUTHORIZED", errorBody(t, rec)["code"])
}

func TestAuth_InvalidToken(t *testing.T) {
	req := require.New(t)
	var seen uuid.UUID

	r := httptest.NewRequest(http.MethodGet, "/api/messages/users", nil)
	r.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()

	protected(t, &seen).ServeHTTP(rec, r)

	req.Equal(http.StatusUnauthorized, rec.Code)
	req.Equal(uuid.Nil, seen)
	req.Equal("UNAUTHORIZED", errorBody(t, rec)["code"])
}
