package scoring

import (
	"os"
	"path/filepath"
	"testing"
)

// TestJSONFileStoreMissingFile verifies that a store whose file does not
// exist yet behaves as empty rather than failing.
func TestJSONFileStoreMissingFile(t *testing.T) {
	store := NewJSONFileStoreAt(filepath.Join(t.TempDir(), "scores.json"))

	value, ok, err := store.Get("memory.best")
	if err != nil {
		t.Fatalf("Get returned an unexpected error: %v", err)
	}
	if ok {
		t.Errorf("expected no value for a fresh store, got %q", value)
	}
}

// TestJSONFileStoreRoundTrip verifies that Set persists a value that a
// fresh store instance can read back.
func TestJSONFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "scores.json")
	store := NewJSONFileStoreAt(path)

	if err := store.Set("memory.best", "725"); err != nil {
		t.Fatalf("Set returned an unexpected error: %v", err)
	}

	reopened := NewJSONFileStoreAt(path)
	value, ok, err := reopened.Get("memory.best")
	if err != nil {
		t.Fatalf("Get returned an unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected the value to survive a reopen")
	}
	if value != "725" {
		t.Errorf("expected value 725, got %q", value)
	}
}

// TestJSONFileStoreKeepsOtherKeys verifies that writing one key does not
// clobber the others.
func TestJSONFileStoreKeepsOtherKeys(t *testing.T) {
	store := NewJSONFileStoreAt(filepath.Join(t.TempDir(), "scores.json"))

	if err := store.Set("memory.best", "100"); err != nil {
		t.Fatalf("Set returned an unexpected error: %v", err)
	}
	if err := store.Set("other.key", "abc"); err != nil {
		t.Fatalf("Set returned an unexpected error: %v", err)
	}

	value, ok, _ := store.Get("memory.best")
	if !ok || value != "100" {
		t.Errorf("expected memory.best to remain 100, got %q (ok=%v)", value, ok)
	}
}

// TestJSONFileStoreCorruptFile verifies that unreadable content surfaces as
// an error rather than silently dropping data.
func TestJSONFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}

	store := NewJSONFileStoreAt(path)
	if _, _, err := store.Get("memory.best"); err == nil {
		t.Error("expected an error for a corrupt scores file")
	}
}
