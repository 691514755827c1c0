// utils/auth.go
package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionCookieName is the marker proving a prior successful login.
const SessionCookieName = "auth"

// SessionTTL bounds how long a login stays valid.
const SessionTTL = 7 * 24 * time.Hour

// Paths reachable without a session. Everything else is gated.
var publicPaths = map[string]bool{
	"/login":     true,
	"/api/login": true,
}

var staticPrefixes = []string{
	"/assets",
	"/favicon",
	"/icons",
	"/screenshots",
	"/manifest.webmanifest",
	"/sw.js",
}

// SessionManager issues and verifies the signed session cookie.
type SessionManager struct {
	secret []byte
	secure bool
}

// NewSessionManager builds a manager for the given HMAC secret. An empty
// secret gets a random per-process one, which invalidates sessions on
// restart but keeps the server usable.
func NewSessionManager(secret string, secure bool) *SessionManager {
	if secret == "" {
		secret = GenerateSessionSecret()
	}
	return &SessionManager{secret: []byte(secret), secure: secure}
}

// GenerateSessionSecret returns a fresh random HMAC key.
func GenerateSessionSecret() string {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		panic("failed to generate session secret")
	}
	return base64.StdEncoding.EncodeToString(key)
}

// Issue signs a session token for the admin identity.
func (m *SessionManager) Issue() (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "admin",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
	})
	return token.SignedString(m.secret)
}

// Verify reports whether the token is a currently valid session marker.
func (m *SessionManager) Verify(tokenString string) bool {
	if tokenString == "" {
		return false
	}
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	return err == nil && token.Valid
}

// SetCookie attaches the session marker: httpOnly, SameSite=Lax, 7 days.
func (m *SessionManager) SetCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, int(SessionTTL.Seconds()), "/", "", m.secure, true)
}

// ClearCookie drops the session marker immediately.
func (m *SessionManager) ClearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", m.secure, true)
}

// Authenticated reports whether the request carries a valid session marker.
func (m *SessionManager) Authenticated(c *gin.Context) bool {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil {
		return false
	}
	return m.Verify(cookie)
}

// SessionGate intercepts every request before any handler runs. Static assets
// and the two public login paths pass through; anything else without a valid
// session gets a 401 on API paths or a redirect to /login carrying the
// original destination. An authenticated visit to /login bounces home.
func SessionGate(m *SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		for _, prefix := range staticPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		authed := m.Authenticated(c)

		if publicPaths[path] {
			if path == "/login" && authed {
				c.Redirect(http.StatusFound, "/")
				c.Abort()
				return
			}
			c.Next()
			return
		}

		if !authed {
			if strings.HasPrefix(path, "/api/") {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
				return
			}
			c.Redirect(http.StatusFound, "/login?next="+url.QueryEscape(path))
			c.Abort()
			return
		}

		c.Next()
	}
}

// ConstantTimeEqual compares two strings without early exit on mismatched
// bytes. Length is still observable, which matches the original login check.
func ConstantTimeEqual(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
