package scoring

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store defines the interface for persisting score values by key.
// This allows for mocking the storage layer during tests.
type Store interface {
	// Get loads the value for key. The second return is false when the key
	// has never been written.
	Get(key string) (string, bool, error)
	// Set writes the value for key, overwriting any existing value.
	Set(key, value string) error
}

// JSONFileStore is an implementation of Store backed by a JSON file.
type JSONFileStore struct {
	path string
}

// NewJSONFileStore creates a JSONFileStore at the default location under
// the user's config directory.
func NewJSONFileStore() (*JSONFileStore, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("could not get user home directory: %w", err)
	}
	return NewJSONFileStoreAt(filepath.Join(homeDir, ".config", "funhub", "scores.json")), nil
}

// NewJSONFileStoreAt creates a JSONFileStore at an explicit path.
func NewJSONFileStoreAt(path string) *JSONFileStore {
	return &JSONFileStore{path: path}
}

// Get reads and decodes the value for key from the JSON file.
// A missing file is not an error; it simply holds no keys.
func (jfs *JSONFileStore) Get(key string) (string, bool, error) {
	values, err := jfs.load()
	if err != nil {
		return "", false, err
	}
	value, ok := values[key]
	return value, ok, nil
}

// Set writes the value for key back to the JSON file, creating the file and
// its directory as needed.
func (jfs *JSONFileStore) Set(key, value string) error {
	values, err := jfs.load()
	if err != nil {
		return err
	}
	values[key] = value

	dir := filepath.Dir(jfs.path)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating scores directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding scores: %w", err)
	}
	if err := os.WriteFile(jfs.path, data, 0644); err != nil {
		return fmt.Errorf("error writing scores file: %w", err)
	}
	return nil
}

func (jfs *JSONFileStore) load() (map[string]string, error) {
	data, err := os.ReadFile(jfs.path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading scores file: %w", err)
	}

	values := make(map[string]string)
	if len(data) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("error decoding scores file: %w", err)
	}
	return values, nil
}
