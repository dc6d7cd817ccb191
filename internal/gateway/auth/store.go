package auth

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// flagKey is the fixed key the authenticated flag is persisted under,
// mirroring the client-side storage contract.
const flagKey = "omni_auth"

// Store is a file-persisted boolean authentication flag. The file is read
// once on first access; Login and Logout persist immediately.
type Store struct {
	path string

	loadOnce sync.Once
	mu       sync.RWMutex
	flags    map[string]bool
}

func NewStore(path string) *Store {
	return &Store{path: path, flags: map[string]bool{}}
}

func (s *Store) ensureLoaded() {
	s.loadOnce.Do(func() {
		data, err := os.ReadFile(s.path)
		if err != nil {
			return
		}
		var flags map[string]bool
		if err := json.Unmarshal(data, &flags); err != nil {
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		for k, v := range flags {
			s.flags[k] = v
		}
	})
}

func (s *Store) persist() {
	s.mu.RLock()
	data, err := json.MarshalIndent(s.flags, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return
	}
	_ = os.MkdirAll(filepath.Dir(s.path), 0o755)
	_ = os.WriteFile(s.path, data, 0o644)
}

func (s *Store) IsAuthenticated() bool {
	if s == nil {
		return false
	}
	s.ensureLoaded()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.flags[flagKey]
}

func (s *Store) Login() {
	if s == nil {
		return
	}
	s.ensureLoaded()
	s.mu.Lock()
	s.flags[flagKey] = true
	s.mu.Unlock()
	s.persist()
}

func (s *Store) Logout() {
	if s == nil {
		return
	}
	s.ensureLoaded()
	s.mu.Lock()
	delete(s.flags, flagKey)
	s.mu.Unlock()
	s.persist()
}
