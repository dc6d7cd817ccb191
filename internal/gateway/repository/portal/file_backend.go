package portal

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"omniportal/internal/gateway/entity"
)

// FileBackend keeps created projects in a JSON snapshot, newest first.
// All I/O is best effort; a broken file simply yields no restored projects.
type FileBackend struct {
	path string

	mu   sync.Mutex
	rows []entity.Project

	loadOnce sync.Once
}

func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

func (b *FileBackend) ensureLoaded() {
	b.loadOnce.Do(func() {
		data, err := os.ReadFile(b.path)
		if err != nil {
			return
		}
		var rows []entity.Project
		if err := json.Unmarshal(data, &rows); err != nil {
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		for _, row := range rows {
			if strings.TrimSpace(row.ID) == "" {
				continue
			}
			b.rows = append(b.rows, row)
		}
	})
}

func (b *FileBackend) Load() []entity.Project {
	if b == nil {
		return nil
	}
	b.ensureLoaded()
	b.mu.Lock()
	defer b.mu.Unlock()
	return entity.CloneProjects(b.rows)
}

func (b *FileBackend) Append(p entity.Project) {
	if b == nil {
		return
	}
	b.ensureLoaded()
	b.mu.Lock()
	b.rows = append([]entity.Project{p.Clone()}, b.rows...)
	rows := entity.CloneProjects(b.rows)
	b.mu.Unlock()

	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return
	}
	_ = os.MkdirAll(filepath.Dir(b.path), 0o755)
	_ = os.WriteFile(b.path, data, 0o644)
}

var _ ProjectBackend = (*FileBackend)(nil)
