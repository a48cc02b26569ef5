package middleware

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/VarnikaSingh27/AI-VoiceCallingAgent/src/models"
	"github.com/VarnikaSingh27/AI-VoiceCallingAgent/src/storage"
)

func newGuardedRouter(store *storage.SessionStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/guarded", SessionRequiredMiddleware(store), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func get(router *gin.Engine, path string) int {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))
	return recorder.Code
}

func TestSessionRequiredRejectsWithoutSession(t *testing.T) {
	store := storage.NewSessionStore(filepath.Join(t.TempDir(), "session.json"))
	router := newGuardedRouter(store)

	if code := get(router, "/guarded"); code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", code)
	}
}

func TestSessionRequiredEvaluatedPerRequest(t *testing.T) {
	store := storage.NewSessionStore(filepath.Join(t.TempDir(), "session.json"))
	router := newGuardedRouter(store)

	session := &models.UserSession{
		Category: models.CategoryCompany,
		Username: "acme-ops",
		Theme:    models.ThemeCorporate,
	}
	if err := store.Save(session); err != nil {
		t.Fatalf("save: %v", err)
	}
	if code := get(router, "/guarded"); code != http.StatusOK {
		t.Fatalf("status with session = %d, want 200", code)
	}

	// Clearing the session locks out the very next request.
	if err := store.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if code := get(router, "/guarded"); code != http.StatusUnauthorized {
		t.Fatalf("status after clear = %d, want 401", code)
	}
}
