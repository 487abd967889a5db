package handlers

import (
	"net/http"
	"strings"

	"github.com/bucketlistprince/hpm-tech-solutions/models"
	"github.com/bucketlistprince/hpm-tech-solutions/service"

	"github.com/gin-gonic/gin"
)

const (
	// SessionCookie is the HTTP-only cookie carrying the session token.
	SessionCookie = "session_token"

	contextKeySession = "session"
)

// RequireSession validates the session token from the cookie (or an
// Authorization Bearer header) and attaches the decoded session to the
// request context. Requests without a valid session are rejected with 401.
func RequireSession(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}

		session, err := auth.ParseSession(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}

		c.Set(contextKeySession, session)
		c.Next()
	}
}

func sessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie
	}

	header := c.GetHeader("Authorization")
	if parts := strings.SplitN(header, " ", 2); len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}

	return ""
}

// GetSession extracts the authenticated session from the gin context.
func GetSession(c *gin.Context) (models.Session, bool) {
	session, ok := c.Get(contextKeySession)
	if !ok {
		return models.Session{}, false
	}
	s, ok := session.(models.Session)
	return s, ok
}
