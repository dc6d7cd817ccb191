package portal

import (
	"database/sql"
	"encoding/json"
	"strings"
	"sync"

	_ "github.com/jackc/pgx/v5/stdlib"

	"omniportal/internal/gateway/entity"
)

// PostgresBackend persists created projects as JSON rows. Writes are best
// effort to keep the repository's no-failure contract.
type PostgresBackend struct {
	db *sql.DB

	schemaOnce sync.Once
	schemaErr  error
}

func NewPostgresBackend(dsn string) (*PostgresBackend, error) {
	db, err := sql.Open("pgx", strings.TrimSpace(dsn))
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &PostgresBackend{db: db}, nil
}

func (b *PostgresBackend) ensureSchema() error {
	b.schemaOnce.Do(func() {
		_, b.schemaErr = b.db.Exec(`
CREATE TABLE IF NOT EXISTS portal_projects (
  project_id TEXT PRIMARY KEY,
  data JSONB NOT NULL,
  created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
);`)
	})
	return b.schemaErr
}

func (b *PostgresBackend) Load() []entity.Project {
	if b == nil || b.db == nil {
		return nil
	}
	if err := b.ensureSchema(); err != nil {
		return nil
	}
	rows, err := b.db.Query(`SELECT data FROM portal_projects ORDER BY created_at DESC`)
	if err != nil {
		return nil
	}
	defer rows.Close()

	var out []entity.Project
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			continue
		}
		var p entity.Project
		if err := json.Unmarshal(raw, &p); err != nil {
			continue
		}
		if strings.TrimSpace(p.ID) == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (b *PostgresBackend) Append(p entity.Project) {
	if b == nil || b.db == nil {
		return
	}
	if err := b.ensureSchema(); err != nil {
		return
	}
	data, err := json.Marshal(p)
	if err != nil {
		return
	}
	_, _ = b.db.Exec(`
INSERT INTO portal_projects (project_id, data)
VALUES ($1, $2)
ON CONFLICT (project_id) DO UPDATE SET data = EXCLUDED.data`,
		p.ID, data)
}

func (b *PostgresBackend) Close() error {
	if b == nil || b.db == nil {
		return nil
	}
	return b.db.Close()
}

var _ ProjectBackend = (*PostgresBackend)(nil)
