package portal

import (
	"context"
	"testing"
	"time"

	"omniportal/internal/gateway/entity"
)

func TestSeedLookups(t *testing.T) {
	s := New()
	ctx := context.Background()

	profile := s.GetUserProfile(ctx)
	if profile.Name != "Luna" {
		t.Fatalf("profile name = %q, want Luna", profile.Name)
	}

	p, ok := s.GetProjectByID(ctx, "1")
	if !ok {
		t.Fatalf("expected project 1 to exist")
	}
	if p.Title != "AI 沉浸式五感疗愈展" || p.Progress != 45 {
		t.Fatalf("unexpected project 1: %+v", p)
	}

	if _, ok := s.GetProjectByID(ctx, "999"); ok {
		t.Fatalf("expected project 999 to be missing")
	}

	// Finance-tracked projects resolve through the same lookup.
	if _, ok := s.GetProjectByID(ctx, "101"); !ok {
		t.Fatalf("expected finance project 101 to resolve")
	}
}

func TestUpdateUserProfileReplacesWholesale(t *testing.T) {
	s := New()
	ctx := context.Background()

	next := entity.UserProfile{Name: "Nova", Title: "创作者"}
	got := s.UpdateUserProfile(ctx, next)
	if got.Name != "Nova" {
		t.Fatalf("updated name = %q, want Nova", got.Name)
	}
	// The old tags are gone, not merged.
	if len(got.Tags) != 0 {
		t.Fatalf("expected tags to be replaced, got %v", got.Tags)
	}
	if again := s.GetUserProfile(ctx); again.Name != "Nova" {
		t.Fatalf("profile did not persist, got %q", again.Name)
	}
}

func TestCreateProjectVisibleEverywhere(t *testing.T) {
	s := New()
	ctx := context.Background()

	created := s.CreateProject(ctx, entity.Project{Title: "新项目", Description: "测试"})
	if created.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if created.Owner != entity.CurrentUserID {
		t.Fatalf("owner = %q, want %q", created.Owner, entity.CurrentUserID)
	}

	all := s.GetProjects(ctx)
	if len(all) == 0 || all[0].ID != created.ID {
		t.Fatalf("expected created project first in plaza list")
	}

	if _, ok := s.GetProjectByID(ctx, created.ID); !ok {
		t.Fatalf("created project not found by id")
	}

	mine := s.GetMyInitiatedProjects(ctx)
	found := false
	for _, p := range mine {
		if p.ID == created.ID {
			found = true
		}
	}
	if !found {
		t.Fatalf("created project missing from my projects")
	}
}

func TestCreateProjectIDsAreUnique(t *testing.T) {
	s := New()
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		p := s.CreateProject(ctx, entity.Project{Title: "批量"})
		if seen[p.ID] {
			t.Fatalf("duplicate project id %q", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestMyProjectsDedupAndOwnerFilter(t *testing.T) {
	s := New()
	ctx := context.Background()

	mine := s.GetMyInitiatedProjects(ctx)

	seen := map[string]bool{}
	for _, p := range mine {
		if seen[p.ID] {
			t.Fatalf("duplicate id %q in my projects", p.ID)
		}
		seen[p.ID] = true
		if p.Owner != entity.CurrentUserID {
			t.Fatalf("project %q has owner %q", p.ID, p.Owner)
		}
	}
	// Seed plaza contributes "1" and "3"; finance contributes "102".
	for _, id := range []string{"1", "3", "102"} {
		if !seen[id] {
			t.Fatalf("expected project %q in my projects", id)
		}
	}
	if seen["2"] || seen["101"] {
		t.Fatalf("projects owned by others leaked into my projects: %v", seen)
	}
}

func TestFinanceDataSnapshot(t *testing.T) {
	s := New()
	ctx := context.Background()

	fin := s.GetFinanceData(ctx)
	if fin.TotalAssets != 1425900 {
		t.Fatalf("total assets = %v", fin.TotalAssets)
	}
	if len(fin.Transactions) != 3 {
		t.Fatalf("expected 3 seed transactions, got %d", len(fin.Transactions))
	}
	if len(fin.ActiveProjects) != 3 {
		t.Fatalf("expected 3 active projects, got %d", len(fin.ActiveProjects))
	}
}

func TestLoadMoreTransactionsAppends(t *testing.T) {
	s := New()
	ctx := context.Background()

	first := s.LoadMoreTransactions(ctx)
	if len(first) != 3 {
		t.Fatalf("batch size = %d, want 3", len(first))
	}
	second := s.LoadMoreTransactions(ctx)

	// Same content, fresh ids each time.
	for i := range first {
		if first[i].Name != second[i].Name {
			t.Fatalf("batch content differs at %d: %q vs %q", i, first[i].Name, second[i].Name)
		}
		if first[i].ID == second[i].ID {
			t.Fatalf("batch ids repeat: %q", first[i].ID)
		}
	}

	fin := s.GetFinanceData(ctx)
	if len(fin.Transactions) != 9 {
		t.Fatalf("expected 3 seed + 6 loaded transactions, got %d", len(fin.Transactions))
	}
}

func TestOmniLifeAndToolboxLookups(t *testing.T) {
	s := New()
	ctx := context.Background()

	items := s.GetOmniLifeItems(ctx)
	if len(items) == 0 {
		t.Fatalf("expected seeded omni items")
	}
	item, ok := s.GetOmniItemByID(ctx, items[0].ID)
	if !ok || item.ID != items[0].ID {
		t.Fatalf("omni item lookup failed for %q", items[0].ID)
	}
	if _, ok := s.GetOmniItemByID(ctx, "nope"); ok {
		t.Fatalf("expected miss for unknown omni item")
	}

	tools := s.GetToolboxItems(ctx)
	if len(tools) != 8 {
		t.Fatalf("expected 8 toolbox items, got %d", len(tools))
	}
	if _, ok := s.GetToolboxItemByID(ctx, "tool-1"); !ok {
		t.Fatalf("toolbox lookup failed for tool-1")
	}
}

func TestClaimAllianceTaskLeavesBoardUnchanged(t *testing.T) {
	s := New()
	ctx := context.Background()

	tasks := s.GetAllianceTasks(ctx)
	if len(tasks) == 0 {
		t.Fatalf("expected seeded tasks")
	}
	claimed, ok := s.ClaimAllianceTask(ctx, tasks[0].ID)
	if !ok || claimed.ID != tasks[0].ID {
		t.Fatalf("claim failed for %q", tasks[0].ID)
	}
	if _, ok := s.ClaimAllianceTask(ctx, "missing"); ok {
		t.Fatalf("expected claim miss for unknown task")
	}
	after := s.GetAllianceTasks(ctx)
	if len(after) != len(tasks) {
		t.Fatalf("board changed after claim: %d -> %d", len(tasks), len(after))
	}
}

func TestReadsReturnCopies(t *testing.T) {
	s := New()
	ctx := context.Background()

	p1 := s.GetProjects(ctx)
	p1[0].Title = "mutated"
	p2 := s.GetProjects(ctx)
	if p2[0].Title == "mutated" {
		t.Fatalf("caller mutation reached the store")
	}

	fin := s.GetFinanceData(ctx)
	fin.Transactions[0].Name = "mutated"
	if s.GetFinanceData(ctx).Transactions[0].Name == "mutated" {
		t.Fatalf("transaction mutation reached the store")
	}
}

func TestCancelledContextStopsWaitNotMutation(t *testing.T) {
	s := New(WithLatency(200 * time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	created := s.CreateProject(ctx, entity.Project{Title: "速创"})
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Fatalf("cancelled context did not skip the wait, took %v", elapsed)
	}
	// The write still happened.
	if _, ok := s.GetProjectByID(context.Background(), created.ID); !ok {
		t.Fatalf("mutation was lost on cancelled context")
	}
}
