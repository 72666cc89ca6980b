package middleware

import (
	"net/http"

	"github.com/WINZED31/Baladeya/internal/metrics"
	"github.com/WINZED31/Baladeya/internal/service/auth"

	"github.com/gin-gonic/gin"
)

const (
	ctxKeyUser    = "current_user"
	ctxKeyToken   = "session_token"
	ctxKeyIsAdmin = "is_admin"
)

type SessionMiddleware struct {
	authService *auth.Service
	cookieName  string
	metrics     *metrics.Metrics
}

func NewSessionMiddleware(authService *auth.Service, cookieName string, m *metrics.Metrics) *SessionMiddleware {
	return &SessionMiddleware{
		authService: authService,
		cookieName:  cookieName,
		metrics:     m,
	}
}

// Load resolves the session cookie on every request. A missing cookie is
// an anonymous visit with no side effect; a failed validation purges the
// cookie before the render continues anonymously. The admin flag is
// recomputed here on every request, never carried over.
func (m *SessionMiddleware) Load() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(m.cookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		u, err := m.authService.ValidateSession(c.Request.Context(), token)
		if err != nil {
			m.purgeCookie(c)
			if m.metrics != nil {
				m.metrics.SessionChecks.WithLabelValues("purged").Inc()
			}
			c.Next()
			return
		}

		c.Set(ctxKeyUser, u)
		c.Set(ctxKeyToken, token)
		c.Set(ctxKeyIsAdmin, m.authService.IsAdmin(c.Request.Context(), u.ID))

		m.authService.TouchSession(c.Request.Context(), token)
		if m.metrics != nil {
			m.metrics.SessionChecks.WithLabelValues("valid").Inc()
		}
		c.Next()
	}
}

// RequireAuth sends anonymous visitors to the login page.
func (m *SessionMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin hides admin pages from non-admins. The role was re-checked
// by Load for this very request.
func (m *SessionMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAdmin(c) {
			c.Redirect(http.StatusSeeOther, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (m *SessionMiddleware) purgeCookie(c *gin.Context) {
	c.SetCookie(m.cookieName, "", -1, "/", "", false, true)
}
