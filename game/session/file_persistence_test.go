package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/landrush/landrush/game/engine"
	"github.com/landrush/landrush/game/service"
)

// stubConfigManager serves a single config for persistence tests
type stubConfigManager struct {
	config *engine.GameConfig
}

func newStubConfigManager() *stubConfigManager {
	return &stubConfigManager{config: createTestConfig()}
}

func (s *stubConfigManager) LoadConfig(name string) (*engine.GameConfig, error) {
	return s.config, nil
}

func (s *stubConfigManager) ListConfigs() ([]*service.ConfigInfo, error) {
	return []*service.ConfigInfo{{
		Filename:    "test.json",
		ConfigID:    "test",
		Name:        s.config.Name,
		Description: s.config.Description,
		Players:     len(s.config.Players),
		GoIncome:    s.config.GoIncome,
	}}, nil
}

func (s *stubConfigManager) GetDefault() *engine.GameConfig {
	return s.config
}

func (s *stubConfigManager) SaveConfig(name string, config *engine.GameConfig) error {
	s.config = config
	return nil
}

func newTestPersistence(t *testing.T) *FilePersistence {
	t.Helper()
	fp, err := NewFilePersistence(t.TempDir(), newStubConfigManager())
	if err != nil {
		t.Fatalf("NewFilePersistence failed: %v", err)
	}
	return fp
}

func TestFilePersistence_SaveAndLoad(t *testing.T) {
	fp := newTestPersistence(t)
	manager := NewManagerWithPersistence(fp)

	session, err := manager.Create("abcd", createTestConfig())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Play some turns and record a round so there is state worth keeping.
	session.Engine.TakeTurn("Alice", 3)
	session.Engine.TryBuy("Alice")
	session.History.RecordRound(1, []engine.BalanceSample{
		{Round: 1, Player: "Alice", Cash: 850},
		{Round: 1, Player: "Bob", Cash: 1000},
	})
	if err := fp.Save(session); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := fp.Load("abcd")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.ID != "abcd" {
		t.Errorf("Expected session abcd, got %s", loaded.ID)
	}
	pos, ok := loaded.Engine.Position("Alice")
	if !ok || pos != 3 {
		t.Errorf("Expected Alice restored at 3, got %d (ok=%v)", pos, ok)
	}
	if sp, _ := loaded.Engine.Board().Get(3); sp.Owner != "Alice" {
		t.Errorf("Expected ownership restored, got %q", sp.Owner)
	}
	samples := loaded.History.Samples()
	if len(samples) != 2 || samples[0].Cash != 850 {
		t.Errorf("Expected recorded history restored, got %v", samples)
	}
	if loaded.Roller == nil {
		t.Error("Expected a fresh roller on the restored session")
	}
}

func TestFilePersistence_SaveNilSession(t *testing.T) {
	fp := newTestPersistence(t)
	if err := fp.Save(nil); err == nil {
		t.Error("Expected error saving a nil session")
	}
}

func TestFilePersistence_LoadMissing(t *testing.T) {
	fp := newTestPersistence(t)
	if _, err := fp.Load("zzzz"); err != ErrSessionNotFound {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
}

func TestFilePersistence_LoadCorrupt(t *testing.T) {
	dir := t.TempDir()
	fp, err := NewFilePersistence(dir, newStubConfigManager())
	if err != nil {
		t.Fatalf("NewFilePersistence failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "bad1.json"), []byte("{broken"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := fp.Load("bad1"); err == nil {
		t.Error("Expected error loading a corrupt session file")
	}
}

func TestFilePersistence_Delete(t *testing.T) {
	fp := newTestPersistence(t)
	manager := NewManagerWithPersistence(fp)

	if _, err := manager.Create("dead", createTestConfig()); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if !fp.Exists("dead") {
		t.Fatal("Expected the session file to exist after create")
	}
	if err := fp.Delete("dead"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if fp.Exists("dead") {
		t.Error("Expected the session file to be removed")
	}
	if err := fp.Delete("dead"); err != ErrSessionNotFound {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
}

func TestFilePersistence_ListAll(t *testing.T) {
	fp := newTestPersistence(t)
	manager := NewManagerWithPersistence(fp)

	for _, id := range []string{"aaaa", "bbbb", "cccc"} {
		if _, err := manager.Create(id, createTestConfig()); err != nil {
			t.Fatalf("Create %s failed: %v", id, err)
		}
	}

	ids, err := fp.ListAll()
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(ids) != 3 {
		t.Errorf("Expected 3 persisted sessions, got %d", len(ids))
	}
}
