package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// next-хендлер отвечает 200 с user_id из контекста либо 401
func echoUserID() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if uid, ok := GetUserIDFromContext(r.Context()); ok {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(strconv.FormatInt(uid, 10)))
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	})
}

func serveWithAuth(secret, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	WithAuth(secret)(echoUserID()).ServeHTTP(rr, req)
	return rr
}

func TestIssueAndParseToken(t *testing.T) {
	tok, err := IssueToken(77, "s", time.Hour)
	require.NoError(t, err)
	id, err := ParseToken(tok, "s")
	require.NoError(t, err)
	assert.Equal(t, int64(77), id)

	_, err = ParseToken(tok, "other")
	assert.Error(t, err)

	expired, err := IssueToken(1, "s", -time.Minute)
	require.NoError(t, err)
	_, err = ParseToken(expired, "s")
	assert.Error(t, err)
}

// Тест: валидный bearer — user_id попадает в контекст
func TestWithAuth_ValidBearerSetsUserID(t *testing.T) {
	tok, err := IssueToken(77, "test-secret", time.Hour)
	require.NoError(t, err)

	rr := serveWithAuth("test-secret", "Bearer "+tok)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "77", rr.Body.String())

	// схема без учёта регистра
	rr = serveWithAuth("test-secret", "bearer "+tok)
	assert.Equal(t, http.StatusOK, rr.Code)
}

// Тест: отсутствие заголовка — user_id не устанавливается
func TestWithAuth_NoHeaderLeavesAnonymous(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, serveWithAuth("any", "").Code)
}

// Тест: невалидный или просроченный токен — user_id не устанавливается
func TestWithAuth_InvalidToken(t *testing.T) {
	tokA, _ := IssueToken(5, "secret-A", time.Hour)
	assert.Equal(t, http.StatusUnauthorized, serveWithAuth("secret-B", "Bearer "+tokA).Code)

	expired, _ := IssueToken(5, "secret-A", -time.Second)
	assert.Equal(t, http.StatusUnauthorized, serveWithAuth("secret-A", "Bearer "+expired).Code)

	for _, h := range []string{"Basic abc", "Bearer", "Bearer   ", "garbage"} {
		assert.Equal(t, http.StatusUnauthorized, serveWithAuth("secret-A", h).Code, h)
	}
}
