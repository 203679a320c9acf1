package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/aaltjes/internal/core/ports/driven"
)

var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore keeps the settings in a TOML file. The dotted key
// "watch.per_minute" addresses per_minute in the [watch] table.
type ConfigStore struct {
	mu   sync.RWMutex
	path string
	tree map[string]any
}

// NewConfigStore opens config.toml in configDir, creating the directory
// when needed. An empty configDir means ~/.aaltjes.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		configDir = filepath.Join(home, ".aaltjes")
	}
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, fmt.Errorf("creating config directory: %w", err)
	}

	s := &ConfigStore{path: filepath.Join(configDir, "config.toml")}
	if err := s.reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// reload replaces the in-memory tree with the file contents. A missing
// file is an empty configuration.
func (s *ConfigStore) reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tree := make(map[string]any)
	data, err := os.ReadFile(s.path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return fmt.Errorf("reading config: %w", err)
	default:
		if err := toml.Unmarshal(data, &tree); err != nil {
			return fmt.Errorf("parsing %s: %w", s.path, err)
		}
	}
	s.tree = tree
	return nil
}

// Get looks key up through the nested tables.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	parts := strings.Split(key, ".")
	table := s.tree
	for _, part := range parts[:len(parts)-1] {
		next, ok := table[part].(map[string]any)
		if !ok {
			return nil, false
		}
		table = next
	}
	val, ok := table[parts[len(parts)-1]]
	if _, isTable := val.(map[string]any); isTable {
		return nil, false
	}
	return val, ok
}

func (s *ConfigStore) GetString(key string) string {
	val, _ := s.Get(key)
	str, _ := val.(string)
	return str
}

// GetInt accepts TOML integers and numeric strings, so hand-edited
// files with per_minute = "45" keep working.
func (s *ConfigStore) GetInt(key string) int {
	val, _ := s.Get(key)
	switch v := val.(type) {
	case int64:
		return int(v)
	case int:
		return v
	case string:
		n, _ := strconv.Atoi(strings.TrimSpace(v))
		return n
	}
	return 0
}

// GetBool accepts TOML booleans and their string forms.
func (s *ConfigStore) GetBool(key string) bool {
	val, _ := s.Get(key)
	switch v := val.(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(strings.TrimSpace(v))
		return b
	}
	return false
}

// Set stores value under key and rewrites the file. Missing tables on
// the path are created; a path through a plain value is an error.
func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	parts := strings.Split(key, ".")
	table := s.tree
	for i, part := range parts[:len(parts)-1] {
		switch next := table[part].(type) {
		case map[string]any:
			table = next
		case nil:
			child := make(map[string]any)
			table[part] = child
			table = child
		default:
			return fmt.Errorf("setting %s: %s is not a table", key, strings.Join(parts[:i+1], "."))
		}
	}
	table[parts[len(parts)-1]] = value
	return s.write()
}

// write replaces the file through a temp file in the same directory.
// The caller holds the lock.
func (s *ConfigStore) write() error {
	data, err := toml.Marshal(s.tree)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing config: %w", err)
	}
	return nil
}

// Path returns the config file location.
func (s *ConfigStore) Path() string {
	return s.path
}
