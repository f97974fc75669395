package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"ITINERARY_BACK-END/internal/config"
	"ITINERARY_BACK-END/internal/models"
	"ITINERARY_BACK-END/internal/utils"
)

var jwtCfg = &config.JWTConfig{Secret: "test-secret", AccessTokenTTL: time.Hour}

func whoami(w http.ResponseWriter, r *http.Request) {
	actor, ok := utils.ActorFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusTeapot)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, actor)
}

func TestAuthMiddleware(t *testing.T) {
	userID := uuid.New()
	token, err := GenerateToken(userID, "agent@example.com", models.RoleAdmin, jwtCfg)
	require.NoError(t, err)

	expired, err := GenerateToken(userID, "", "", &config.JWTConfig{Secret: jwtCfg.Secret, AccessTokenTTL: -time.Minute})
	require.NoError(t, err)
	foreign, err := GenerateToken(userID, "", "", &config.JWTConfig{Secret: "other", AccessTokenTTL: time.Hour})
	require.NoError(t, err)

	tests := []struct {
		name    string
		header  string
		query   string
		upgrade bool
		status  int
		message string
	}{
		{name: "valid", header: "Bearer " + token, status: http.StatusOK},
		{name: "missing", status: http.StatusUnauthorized, message: "Authorization header required"},
		{name: "bad format", header: "Token " + token, status: http.StatusUnauthorized, message: "Invalid authorization header format"},
		{name: "expired", header: "Bearer " + expired, status: http.StatusUnauthorized, message: "Invalid token"},
		{name: "wrong secret", header: "Bearer " + foreign, status: http.StatusUnauthorized, message: "Invalid token"},
		{name: "query token on websocket", query: token, upgrade: true, status: http.StatusOK},
		{name: "query token on plain request", query: token, status: http.StatusUnauthorized, message: "Authorization header required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := "/api/itineraries"
			if tt.query != "" {
				target += "?access_token=" + tt.query
			}
			r := httptest.NewRequest(http.MethodGet, target, nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			if tt.upgrade {
				r.Header.Set("Upgrade", "websocket")
			}
			w := httptest.NewRecorder()
			AuthMiddleware(whoami, jwtCfg)(w, r)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, userID.String(), gjson.Get(w.Body.String(), "user_id").String())
			} else {
				assert.Equal(t, tt.message, gjson.Get(w.Body.String(), "message").String())
			}
		})
	}
}

func TestAuthMiddlewareRole(t *testing.T) {
	token, err := GenerateToken(uuid.New(), "", models.RoleAdmin, jwtCfg)
	require.NoError(t, err)
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	AuthMiddleware(whoami, jwtCfg)(w, r)
	assert.Equal(t, models.RoleAdmin, gjson.Get(w.Body.String(), "role").String())
}

func TestRecovery(t *testing.T) {
	h := Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}), Logging, Recovery)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal error", gjson.Get(w.Body.String(), "error").String())
}

func TestLoggingCapturesStatus(t *testing.T) {
	var seen *responseWriter
	h := Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = w.(*responseWriter)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("ok"))
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil))
	require.NotNil(t, seen)
	assert.Equal(t, http.StatusCreated, seen.status)
	assert.Equal(t, 2, seen.size)
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	h := rl.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	hit := func(addr string) int {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = addr
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, hit("10.0.0.1:1000"))
	assert.Equal(t, http.StatusOK, hit("10.0.0.1:1001"))
	assert.Equal(t, http.StatusTooManyRequests, hit("10.0.0.1:1002"))
	assert.Equal(t, http.StatusOK, hit("10.0.0.2:1000"))
}

func TestRateLimiterForgetsIdleVisitors(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	now := time.Now()
	rl.now = func() time.Time { return now }
	rl.getLimiter("a")
	now = now.Add(visitorTTL + time.Second)
	rl.getLimiter("b")
	assert.Len(t, rl.visitors, 1)
}

func TestRateLimiterDisabled(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	h := NewRateLimiter(0, 0).Limit(next)
	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestClientIP(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "192.0.2.1:5555"
	assert.Equal(t, "192.0.2.1", clientIP(r))
	r.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	assert.Equal(t, "203.0.113.9", clientIP(r))
}
