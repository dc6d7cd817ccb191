package suggest

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"omniportal/internal/llm"
)

func TestSuggestRolesOffline(t *testing.T) {
	s := New(nil)
	ctx := context.Background()

	roles := s.SuggestRoles(ctx, "任意描述")
	if len(roles) != 3 {
		t.Fatalf("expected 3 fallback roles, got %d", len(roles))
	}
	if roles[0].Title != "运营负责人" || roles[0].EquityShare != 15 {
		t.Fatalf("unexpected first fallback role: %+v", roles[0])
	}
	// Deterministic across calls and inputs.
	again := s.SuggestRoles(ctx, "完全不同的描述")
	if again[0].ID != roles[0].ID || again[2].Title != roles[2].Title {
		t.Fatalf("fallback roles are not stable")
	}
}

func TestSuggestRolesMapsPayload(t *testing.T) {
	fake := &llm.FakeClient{
		JSON: json.RawMessage(`[
			{"title":"主理人","requiredTalents":["统筹","沟通"],"suggestedEquity":17.6},
			{"title":"设计师","requiredTalents":["审美"],"suggestedEquity":9.2}
		]`),
	}
	s := New(fake, WithClock(func() time.Time { return time.UnixMilli(1700000000000) }))

	roles := s.SuggestRoles(context.Background(), "一个游民新闻 DAO")
	if len(roles) != 2 {
		t.Fatalf("got %d roles, want 2", len(roles))
	}
	if roles[0].ID != "gen-1700000000000-0" || roles[1].ID != "gen-1700000000000-1" {
		t.Fatalf("unexpected ids: %q, %q", roles[0].ID, roles[1].ID)
	}
	// Equity rounds to the nearest integer.
	if roles[0].EquityShare != 18 || roles[1].EquityShare != 9 {
		t.Fatalf("equity = %d, %d", roles[0].EquityShare, roles[1].EquityShare)
	}
	if fake.LastSchema == nil {
		t.Fatalf("expected a response schema on the request")
	}
	if !strings.Contains(fake.LastPrompt, "一个游民新闻 DAO") {
		t.Fatalf("prompt does not carry the description")
	}
}

func TestSuggestRolesFailureYieldsEmpty(t *testing.T) {
	s := New(&llm.FakeClient{JSONErr: errors.New("quota")})

	roles := s.SuggestRoles(context.Background(), "desc")
	if roles == nil || len(roles) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", roles)
	}
}

func TestSuggestRolesMalformedYieldsEmpty(t *testing.T) {
	s := New(&llm.FakeClient{JSON: json.RawMessage(`{"oops":true}`)})

	if roles := s.SuggestRoles(context.Background(), "desc"); len(roles) != 0 {
		t.Fatalf("expected empty result for malformed payload, got %v", roles)
	}
}

func TestSuggestRolesCachesByDescription(t *testing.T) {
	fake := &llm.FakeClient{
		JSON: json.RawMessage(`[{"title":"主理人","requiredTalents":["统筹"],"suggestedEquity":10}]`),
	}
	s := New(fake)
	ctx := context.Background()

	first := s.SuggestRoles(ctx, "同一个描述")
	second := s.SuggestRoles(ctx, "同一个描述")
	if fake.JSONCalls != 1 {
		t.Fatalf("expected 1 upstream call, got %d", fake.JSONCalls)
	}
	if first[0].ID != second[0].ID {
		t.Fatalf("cached result differs")
	}
	// The cache hands out copies.
	second[0].Title = "mutated"
	if third := s.SuggestRoles(ctx, "同一个描述"); third[0].Title == "mutated" {
		t.Fatalf("caller mutation reached the cache")
	}
}

func TestAnalyzeStrengthsOffline(t *testing.T) {
	s := New(nil)

	got := s.AnalyzeStrengths(context.Background(), "bio")
	want := []string{"跨界整合者", "高维审美", "技术赋能", "长期主义"}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("strength[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestAnalyzeStrengthsFailureFallback(t *testing.T) {
	s := New(&llm.FakeClient{JSONErr: errors.New("boom")})

	got := s.AnalyzeStrengths(context.Background(), "bio")
	// The online-failure fallback differs from the offline set.
	if len(got) != 4 || got[0] != "创意驱动" {
		t.Fatalf("got %v", got)
	}
}

func TestAnalyzeStrengthsMapsPayload(t *testing.T) {
	s := New(&llm.FakeClient{JSON: json.RawMessage(`["敏捷开发","社群运营"]`)})

	got := s.AnalyzeStrengths(context.Background(), "bio")
	if len(got) != 2 || got[0] != "敏捷开发" {
		t.Fatalf("got %v", got)
	}
}
