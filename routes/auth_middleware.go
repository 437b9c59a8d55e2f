package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feedbook/feedbook-be/model"
	"github.com/feedbook/feedbook-be/services"
)

const SESSION_KEY = "session"

type AuthConfig struct {
	sessionNotRequired bool
}

// Auth resolves the process-wide current session. There are no per-request
// tokens: the facade mirrors the single-session model of the underlying
// services, so "who is logged in" is the same answer for every caller.
func Auth(auth *services.AuthService, config *AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := auth.CurrentSession()
		if session == nil {
			if config.sessionNotRequired {
				return
			}
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "not logged in",
			})
			c.Abort()
			return
		}
		c.Set(SESSION_KEY, session)
	}
}

func getSession(c *gin.Context) *model.Session {
	session, ok := c.Get(SESSION_KEY)
	if !ok {
		return nil
	}
	return session.(*model.Session)
}
