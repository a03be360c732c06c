package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "prefs.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file and its parent directory were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.censorbox/prefs.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".censorbox", "prefs.db")); err != nil {
		t.Errorf("Database not created under HOME: %v", err)
	}
}

func TestStoreMutedDefault(t *testing.T) {
	store := openTestStore(t)

	muted, ok, err := store.Muted()
	if err != nil {
		t.Fatalf("Muted() failed: %v", err)
	}
	if ok || muted {
		t.Errorf("Muted() on empty store = %v, %v; want false, false", muted, ok)
	}
}

func TestStoreMutedRoundTrip(t *testing.T) {
	store := openTestStore(t)

	if err := store.SetMuted(true); err != nil {
		t.Fatalf("SetMuted(true) failed: %v", err)
	}
	muted, ok, err := store.Muted()
	if err != nil || !ok || !muted {
		t.Errorf("Muted() = %v, %v, %v; want true, true, nil", muted, ok, err)
	}

	if err := store.SetMuted(false); err != nil {
		t.Fatalf("SetMuted(false) failed: %v", err)
	}
	muted, ok, err = store.Muted()
	if err != nil || !ok || muted {
		t.Errorf("Muted() = %v, %v, %v; want false, true, nil", muted, ok, err)
	}
}

func TestStoreMutedBadValue(t *testing.T) {
	store := openTestStore(t)

	if err := store.Set(KeyMuted, "loud"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if _, _, err := store.Muted(); err == nil {
		t.Error("Muted() should fail on a non-boolean value")
	}
}

func TestStoreLastDifficulty(t *testing.T) {
	store := openTestStore(t)

	name, err := store.LastDifficulty()
	if err != nil || name != "" {
		t.Errorf("LastDifficulty() on empty store = %q, %v", name, err)
	}

	if err := store.SetLastDifficulty("hard"); err != nil {
		t.Fatalf("SetLastDifficulty() failed: %v", err)
	}
	if err := store.SetLastDifficulty("easy"); err != nil {
		t.Fatalf("SetLastDifficulty() failed: %v", err)
	}

	name, err = store.LastDifficulty()
	if err != nil || name != "easy" {
		t.Errorf("LastDifficulty() = %q, %v; want easy", name, err)
	}
}

func TestStorePersistsAcrossOpen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "prefs.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SetMuted(true); err != nil {
		t.Fatalf("SetMuted() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	muted, ok, err := store.Muted()
	if err != nil || !ok || !muted {
		t.Errorf("Muted() after reopen = %v, %v, %v", muted, ok, err)
	}
}

func TestStoreAll(t *testing.T) {
	store := openTestStore(t)

	store.SetLastDifficulty("normal")
	store.SetMuted(false)

	prefs, err := store.All()
	if err != nil {
		t.Fatalf("All() failed: %v", err)
	}
	if len(prefs) != 2 {
		t.Fatalf("All() returned %d prefs, want 2", len(prefs))
	}
	if prefs[0].Key != KeyLastDifficulty || prefs[1].Key != KeyMuted {
		t.Errorf("All() not ordered by key: %+v", prefs)
	}
	if prefs[0].UpdatedAt.IsZero() {
		t.Error("UpdatedAt was not populated")
	}
}
