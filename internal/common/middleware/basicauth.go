package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AccessGate validates HTTP Basic credentials against the configured
// admin pair. Every protected request re-presents credentials; there is
// no session state.
type AccessGate struct {
	username string
	password string
}

func NewAccessGate(username, password string) *AccessGate {
	return &AccessGate{username: username, password: password}
}

// Authenticate returns true only on an exact match of both credentials.
func (g *AccessGate) Authenticate(username, password string) bool {
	return username == g.username && password == g.password
}

// RequireAdmin rejects the request before any store access when the
// Basic credentials are missing or wrong. The response is uniform
// regardless of which credential failed.
func (g *AccessGate) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		username, password, ok := c.Request.BasicAuth()
		if !ok || !g.Authenticate(username, password) {
			c.Header("WWW-Authenticate", `Basic realm="ashen-admin"`)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Next()
	}
}
