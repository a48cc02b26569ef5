package middleware

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/VarnikaSingh27/AI-VoiceCallingAgent/src/storage"
	"github.com/VarnikaSingh27/AI-VoiceCallingAgent/src/utils"
)

// SessionRequiredMiddleware guards every dashboard-scoped route. The guard is
// evaluated on each request, not once: a session cleared mid-flight locks the
// very next call out. Absent or malformed persisted sessions both count as
// logged out.
func SessionRequiredMiddleware(store *storage.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store.Load() == nil {
			utils.SendError(c, http.StatusUnauthorized, "Unauthorized",
				"No active session, please log in",
				"https://voice-dashboard.com/session-required", "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CORSMiddleware allows the browser dashboard, served from another origin,
// to reach the gateway.
func CORSMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
