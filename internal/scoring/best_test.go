package scoring

import (
	"errors"
	"testing"
)

// MockStore is an in-memory implementation of the Store interface used to
// test best-score handling without touching the filesystem.
type MockStore struct {
	Values map[string]string
	err    error // To simulate errors from the storage layer.
}

func NewMockStore() *MockStore {
	return &MockStore{Values: make(map[string]string)}
}

func (m *MockStore) Get(key string) (string, bool, error) {
	if m.err != nil {
		return "", false, m.err
	}
	value, ok := m.Values[key]
	return value, ok, nil
}

func (m *MockStore) Set(key, value string) error {
	if m.err != nil {
		return m.err
	}
	m.Values[key] = value
	return nil
}

// TestLoadBestEmpty verifies initialization when no best score was ever
// recorded.
func TestLoadBestEmpty(t *testing.T) {
	best := LoadBest(NewMockStore())

	if best.Recorded() {
		t.Error("expected no recorded best for an empty store")
	}
	if best.Value() != 0 {
		t.Errorf("expected zero value, got %d", best.Value())
	}
}

// TestLoadBestExisting verifies that a previously saved best score is read
// at startup.
func TestLoadBestExisting(t *testing.T) {
	store := NewMockStore()
	store.Values["memory.best"] = "840"

	best := LoadBest(store)
	if !best.Recorded() {
		t.Fatal("expected a recorded best")
	}
	if best.Value() != 840 {
		t.Errorf("expected best 840, got %d", best.Value())
	}
}

// TestLoadBestGarbageValue verifies that an unparseable stored value counts
// as no best score.
func TestLoadBestGarbageValue(t *testing.T) {
	store := NewMockStore()
	store.Values["memory.best"] = "not-a-number"

	best := LoadBest(store)
	if best.Recorded() {
		t.Error("expected garbage value to count as no best score")
	}
}

// TestUpdateRecordsNewBest verifies the read-then-conditionally-write
// sequence: better scores persist, worse ones do not.
func TestUpdateRecordsNewBest(t *testing.T) {
	store := NewMockStore()
	best := LoadBest(store)

	if !best.Update(500) {
		t.Error("first completed round should always set a record")
	}
	if store.Values["memory.best"] != "500" {
		t.Errorf("expected 500 persisted, got %q", store.Values["memory.best"])
	}

	if best.Update(400) {
		t.Error("a lower score must not count as a record")
	}
	if store.Values["memory.best"] != "500" {
		t.Errorf("lower score overwrote the stored best: %q", store.Values["memory.best"])
	}

	if best.Update(500) {
		t.Error("equalling the best is not a new record")
	}

	if !best.Update(725) {
		t.Error("a higher score should set a record")
	}
	if store.Values["memory.best"] != "725" {
		t.Errorf("expected 725 persisted, got %q", store.Values["memory.best"])
	}
}

// TestStoreFailuresTolerated verifies that persistence failures degrade to
// "no best recorded" on read and a discarded write, never an error.
func TestStoreFailuresTolerated(t *testing.T) {
	store := NewMockStore()
	store.err = errors.New("disk on fire")

	best := LoadBest(store)
	if best.Recorded() {
		t.Error("a failed read should count as no best score")
	}

	// The write fails silently; the in-memory value still advances so the
	// current session can report records.
	if !best.Update(300) {
		t.Error("expected the first score to count as a record")
	}
	if best.Value() != 300 {
		t.Errorf("expected in-memory best 300, got %d", best.Value())
	}
}
