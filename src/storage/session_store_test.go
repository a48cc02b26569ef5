package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/VarnikaSingh27/AI-VoiceCallingAgent/src/models"
)

func newStore(t *testing.T) (*SessionStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	return NewSessionStore(path), path
}

func TestLoadAbsentReturnsNil(t *testing.T) {
	store, _ := newStore(t)
	if session := store.Load(); session != nil {
		t.Fatalf("Load on absent file = %+v, want nil", session)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store, _ := newStore(t)
	session := &models.UserSession{
		Category:    models.CategoryGovernment,
		Subcategory: "municipal",
		Username:    "government-municipal-demo-acc",
		Theme:       models.ThemeGovernance,
	}

	if err := store.Save(session); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded := store.Load()
	if loaded == nil {
		t.Fatal("Load returned nil after Save")
	}
	if *loaded != *session {
		t.Fatalf("Load = %+v, want %+v", loaded, session)
	}
}

func TestLoadMalformedTreatedAsAbsent(t *testing.T) {
	store, path := newStore(t)
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if session := store.Load(); session != nil {
		t.Fatalf("Load on malformed file = %+v, want nil", session)
	}
}

func TestClearIsIdempotent(t *testing.T) {
	store, _ := newStore(t)
	session := &models.UserSession{
		Category: models.CategoryCompany,
		Username: "acme",
		Theme:    models.ThemeCorporate,
	}

	if err := store.Save(session); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if store.Load() != nil {
		t.Fatal("session still present after Clear")
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("second Clear failed: %v", err)
	}
}

func TestThemeDerivedColors(t *testing.T) {
	governance := &models.UserSession{Theme: models.ThemeGovernance}
	if governance.AccentColor() != "#001f3f" || governance.SecondaryColor() != "#138808" {
		t.Fatalf("governance colors = %s/%s", governance.AccentColor(), governance.SecondaryColor())
	}

	corporate := &models.UserSession{Theme: models.ThemeCorporate}
	if corporate.AccentColor() != "#1976D2" || corporate.SecondaryColor() != "#64B5F6" {
		t.Fatalf("corporate colors = %s/%s", corporate.AccentColor(), corporate.SecondaryColor())
	}
}
