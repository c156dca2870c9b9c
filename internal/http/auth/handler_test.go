package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/waserda/kasir/internal/auth"
	authhttp "github.com/waserda/kasir/internal/http/auth"
)

func newRouter(t *testing.T) (*auth.Service, http.Handler) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia"), bcrypt.MinCost)
	require.NoError(t, err)

	svc := auth.NewService(auth.Config{Username: "admin", PasswordHash: string(hash), Secret: "s3cret", TTL: time.Hour})

	r := chi.NewRouter()
	r.Route("/auth", authhttp.NewHandler(svc, zap.NewNop()).Routes)
	r.Group(func(r chi.Router) {
		r.Use(authhttp.Middleware(svc, zap.NewNop()))
		r.Get("/private", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})
	})

	return svc, r
}

func login(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body)))

	return rec
}

func TestLogin(t *testing.T) {
	_, h := newRouter(t)

	rec := login(t, h, `{"username":"admin","password":"rahasia"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Token)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, authhttp.CookieName, cookies[0].Name)
	assert.Equal(t, body.Token, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestLogin_Rejected(t *testing.T) {
	_, h := newRouter(t)

	rec := login(t, h, `{"username":"admin","password":"salah"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
}

func TestLogout(t *testing.T) {
	_, h := newRouter(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/logout", nil))

	require.Equal(t, http.StatusNoContent, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Less(t, cookies[0].MaxAge, 0)
}

func TestMiddleware(t *testing.T) {
	svc, h := newRouter(t)

	token, _, err := svc.Login("admin", "rahasia")
	require.NoError(t, err)

	tests := []struct {
		name       string
		setup      func(r *http.Request)
		wantStatus int
	}{
		{
			name:       "NoToken",
			setup:      func(*http.Request) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Bearer",
			setup:      func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) },
			wantStatus: http.StatusTeapot,
		},
		{
			name:       "Cookie",
			setup:      func(r *http.Request) { r.AddCookie(&http.Cookie{Name: authhttp.CookieName, Value: token}) },
			wantStatus: http.StatusTeapot,
		},
		{
			name:       "Tampered",
			setup:      func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token+"x") },
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			tt.setup(req)

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
