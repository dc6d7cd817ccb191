package portal

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"omniportal/internal/gateway/entity"
)

func TestFileBackendRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.json")

	b := NewFileBackend(path)
	b.Append(entity.Project{ID: "p-a", Title: "第一个"})
	b.Append(entity.Project{ID: "p-b", Title: "第二个"})

	restored := NewFileBackend(path).Load()
	if len(restored) != 2 {
		t.Fatalf("restored %d projects, want 2", len(restored))
	}
	// Newest first.
	if restored[0].ID != "p-b" || restored[1].ID != "p-a" {
		t.Fatalf("unexpected order: %q, %q", restored[0].ID, restored[1].ID)
	}
}

func TestFileBackendIgnoresBrokenSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if rows := NewFileBackend(path).Load(); len(rows) != 0 {
		t.Fatalf("expected no rows from broken snapshot, got %d", len(rows))
	}
}

func TestStoreRestoresBackendProjects(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.json")
	ctx := context.Background()

	first := New(WithBackend(NewFileBackend(path)))
	created := first.CreateProject(ctx, entity.Project{Title: "持久化项目"})

	second := New(WithBackend(NewFileBackend(path)))
	restored, ok := second.GetProjectByID(ctx, created.ID)
	if !ok {
		t.Fatalf("created project did not survive restart")
	}
	if restored.Title != "持久化项目" {
		t.Fatalf("restored title = %q", restored.Title)
	}
	// Restored projects come before the seed data.
	if projects := second.GetProjects(ctx); projects[0].ID != created.ID {
		t.Fatalf("expected restored project first, got %q", projects[0].ID)
	}
}
