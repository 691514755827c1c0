package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/yad-anakin/diva/config"
)

func loginBody(email, password string) map[string]string {
	return map[string]string{"email": email, "password": password}
}

func TestLoginSuccessSetsSession(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/login", loginBody("admin@diva.local", "swordfish"), false)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]bool
	decodeBody(t, w, &body)
	assert.True(t, body["ok"])

	cookie := sessionCookie(t, w)
	require.NotNil(t, cookie)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, 7*24*60*60, cookie.MaxAge)

	// The issued cookie must actually open the gate.
	req := httptest.NewRequest(http.MethodGet, "/api/services", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	env := newTestEnv(t)

	cases := map[string]map[string]string{
		"wrong password": loginBody("admin@diva.local", "guess"),
		"wrong email":    loginBody("someone@else.test", "swordfish"),
		"empty email":    loginBody("", "swordfish"),
		"empty password": loginBody("admin@diva.local", ""),
		"oversized":      loginBody("admin@diva.local", strings.Repeat("x", 300)),
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			w := env.request(t, http.MethodPost, "/api/login", body, false)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), "Invalid credentials")
			assert.Nil(t, sessionCookie(t, w))
		})
	}
}

func TestLoginWithoutConfiguredAdmin(t *testing.T) {
	cfg := testConfig()
	cfg.AdminEmail = ""
	cfg.AdminPassword = ""
	env := newTestEnvWithConfig(t, cfg)

	w := env.request(t, http.MethodPost, "/api/login", loginBody("admin@diva.local", "swordfish"), false)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Server not configured")
}

func TestLoginRequiresJSON(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader("email=a&password=b"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Unsupported content-type")
}

func TestLoginAgainstBcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("swordfish"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := testConfig()
	cfg.AdminPassword = ""
	cfg.AdminPasswordHash = string(hash)
	env := newTestEnvWithConfig(t, cfg)

	w := env.request(t, http.MethodPost, "/api/login", loginBody("admin@diva.local", "swordfish"), false)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.request(t, http.MethodPost, "/api/login", loginBody("admin@diva.local", "guess"), false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutClearsCookie(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/logout", nil, true)
	require.Equal(t, http.StatusOK, w.Code)

	cookie := sessionCookie(t, w)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.LessOrEqual(t, cookie.MaxAge, 0)
}

func TestHealthReportsDatabase(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/health", nil, true)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		OK  bool `json:"ok"`
		Dev *struct {
			URI string `json:"uri"`
		} `json:"devInfo"`
	}
	decodeBody(t, w, &body)
	assert.True(t, body.OK)
	require.NotNil(t, body.Dev, "non-production health includes connection info")
	assert.Equal(t, config.RedactDSN(env.cfg.DBURL), body.Dev.URI)
	assert.NotContains(t, body.Dev.URI, "secret")
}

func TestHealthDatabaseDown(t *testing.T) {
	env := newTestEnv(t)
	env.pinger.err = assert.AnError

	w := env.request(t, http.MethodGet, "/api/health", nil, true)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "database unreachable")
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	res := w.Result()
	defer res.Body.Close()
	for _, c := range res.Cookies() {
		if c.Name == "auth" {
			return c
		}
	}
	return nil
}
