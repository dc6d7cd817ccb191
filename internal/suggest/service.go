package suggest

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	genai "google.golang.org/genai"

	"omniportal/internal/gateway/entity"
	"omniportal/internal/llm"
)

const roleCacheSize = 256

// Service turns free-text project descriptions and biographies into
// structured suggestions. With no client configured it serves deterministic
// offline data; with one, failures degrade to empty or fixed results and are
// never surfaced as errors.
type Service struct {
	llm   llm.Client
	cache *lru.Cache[string, []entity.ProjectRole]
	now   func() time.Time
}

type Option func(*Service)

// WithClock overrides the timestamp source used in generated role ids.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New builds a suggestion service. A nil client selects offline mode.
func New(client llm.Client, opts ...Option) *Service {
	cache, _ := lru.New[string, []entity.ProjectRole](roleCacheSize)
	s := &Service{llm: client, cache: cache, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Available reports whether an online client is configured.
func (s *Service) Available() bool { return s.llm != nil }

// fallbackRoles is the offline blueprint. Deterministic across calls.
func fallbackRoles() []entity.ProjectRole {
	return []entity.ProjectRole{
		{ID: "1", Title: "运营负责人", RequiredTalents: []string{"领导力", "组织能力"}, EquityShare: 15},
		{ID: "2", Title: "市场营销", RequiredTalents: []string{"创意", "沟通"}, EquityShare: 10},
		{ID: "3", Title: "产品主理人", RequiredTalents: []string{"审美", "服务意识"}, EquityShare: 10},
	}
}

func cloneRoles(in []entity.ProjectRole) []entity.ProjectRole {
	out := make([]entity.ProjectRole, len(in))
	for i, r := range in {
		out[i] = r.Clone()
	}
	return out
}

type roleSuggestion struct {
	Title           string   `json:"title"`
	RequiredTalents []string `json:"requiredTalents"`
	SuggestedEquity float64  `json:"suggestedEquity"`
}

var roleSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":           {Type: genai.TypeString},
			"requiredTalents": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			"suggestedEquity": {Type: genai.TypeNumber, Description: "Suggested equity share between 5 and 20"},
		},
		Required: []string{"title", "requiredTalents", "suggestedEquity"},
	},
}

// SuggestRoles proposes 3-5 team roles for a project description. An empty
// result means "no suggestions"; callers cannot tell a failed call apart
// from a genuinely empty one.
func (s *Service) SuggestRoles(ctx context.Context, description string) []entity.ProjectRole {
	if s.llm == nil {
		return fallbackRoles()
	}

	key := strings.TrimSpace(description)
	if cached, ok := s.cache.Get(key); ok {
		return cloneRoles(cached)
	}

	prompt := promptSpec{
		Purpose:    "Suggest 3-5 key team roles required to make the described co-creation project successful.",
		Background: "The description may be written in Chinese. For each role, list the primary talents needed and a suggested equity share.",
		Input:      description,
		OutputFields: []promptField{
			{Name: "title", Type: "string", Required: true, Description: "role title, in Chinese"},
			{Name: "requiredTalents", Type: "string[]", Required: true, Description: "primary talents, in Chinese"},
			{Name: "suggestedEquity", Type: "number", Required: true, Description: "equity share between 5 and 20"},
		},
		Rules: []string{
			"Return between 3 and 5 roles.",
			"Translate titles and talents to Chinese.",
		},
		Language: "Chinese",
	}.render()

	raw, err := s.llm.GenerateJSON(ctx, prompt, roleSchema)
	if err != nil {
		log.Printf("suggest: role generation failed: %v", err)
		return []entity.ProjectRole{}
	}
	var items []roleSuggestion
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Printf("suggest: role payload malformed: %v", err)
		return []entity.ProjectRole{}
	}

	ts := s.now().UnixMilli()
	roles := make([]entity.ProjectRole, 0, len(items))
	for i, item := range items {
		roles = append(roles, entity.ProjectRole{
			ID:              fmt.Sprintf("gen-%d-%d", ts, i),
			Title:           item.Title,
			RequiredTalents: append([]string(nil), item.RequiredTalents...),
			EquityShare:     int(math.Round(item.SuggestedEquity)),
		})
	}
	if len(roles) > 0 {
		s.cache.Add(key, cloneRoles(roles))
	}
	return roles
}

var strengthSchema = &genai.Schema{
	Type:  genai.TypeArray,
	Items: &genai.Schema{Type: genai.TypeString},
}

// AnalyzeStrengths summarizes a biography into 4-6 keyword strengths.
func (s *Service) AnalyzeStrengths(ctx context.Context, bio string) []string {
	if s.llm == nil {
		return []string{"跨界整合者", "高维审美", "技术赋能", "长期主义"}
	}

	prompt := promptSpec{
		Purpose:    "List 4-6 specific \"Core Strengths\" or \"Superpowers\" (keywords) for the given user persona and skills.",
		Input:      bio,
		OutputFields: []promptField{
			{Name: "strengths", Type: "string[]", Required: true, Description: "keywords such as 跨界整合, 敏捷开发, 高维审美"},
		},
		Rules: []string{
			"Return between 4 and 6 keywords.",
			"Keywords must be short, in Chinese.",
		},
		Language: "Chinese",
	}.render()

	raw, err := s.llm.GenerateJSON(ctx, prompt, strengthSchema)
	if err != nil {
		log.Printf("suggest: strength analysis failed: %v", err)
		return []string{"创意驱动", "全栈思维", "执行力", "系统化"}
	}
	var keywords []string
	if err := json.Unmarshal(raw, &keywords); err != nil {
		log.Printf("suggest: strength payload malformed: %v", err)
		return []string{"创意驱动", "全栈思维", "执行力", "系统化"}
	}
	return keywords
}
