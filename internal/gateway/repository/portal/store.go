package portal

import (
	"context"
	"os"
	"strings"
	"sync"
	"time"

	"omniportal/internal/common/uid"
	"omniportal/internal/gateway/entity"
)

// Store is the in-memory repository. A single mutex guards every collection
// so each operation runs to completion before any other caller can observe
// intermediate state. All reads hand out copies; callers can never reach the
// stored slices.
type Store struct {
	delay   time.Duration
	ids     *uid.Generator
	backend ProjectBackend

	mu           sync.RWMutex
	profile      entity.UserProfile
	projects     []entity.Project // plaza list, newest first
	finance      entity.FinanceData
	transactions []entity.Transaction
	omniItems    []entity.OmniItem
	toolbox      []entity.ToolboxItem
	tasks        []entity.AllianceTask
}

type Option func(*Store)

// WithLatency sets the simulated I/O latency per operation (default 0).
func WithLatency(d time.Duration) Option {
	return func(s *Store) { s.delay = d }
}

// WithIDGenerator overrides the id source, mainly for tests.
func WithIDGenerator(g *uid.Generator) Option {
	return func(s *Store) { s.ids = g }
}

// WithBackend attaches a persistence backend for created projects.
func WithBackend(b ProjectBackend) Option {
	return func(s *Store) { s.backend = b }
}

func New(opts ...Option) *Store {
	s := &Store{
		ids:          uid.New(),
		profile:      seedProfile(),
		projects:     seedProjects(),
		finance:      seedFinance(),
		transactions: seedTransactions(),
		omniItems:    seedOmniItems(),
		toolbox:      seedToolboxItems(),
		tasks:        seedAllianceTasks(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.backend != nil {
		// Previously created projects come back newest first.
		restored := s.backend.Load()
		if len(restored) > 0 {
			s.projects = append(restored, s.projects...)
		}
	}
	return s
}

// NewFromEnv builds a store whose created projects persist to Postgres when
// PORTAL_STORE_PG_DSN is set, else to a JSON snapshot at path, else nowhere.
func NewFromEnv(path string, opts ...Option) *Store {
	if dsn := strings.TrimSpace(os.Getenv("PORTAL_STORE_PG_DSN")); dsn != "" {
		if b, err := NewPostgresBackend(dsn); err == nil {
			return New(append(opts, WithBackend(b))...)
		}
	}
	if strings.TrimSpace(path) != "" {
		return New(append(opts, WithBackend(NewFileBackend(path)))...)
	}
	return New(opts...)
}

// wait simulates storage latency. A cancelled context only stops the wait;
// the operation itself still runs to completion.
func (s *Store) wait(ctx context.Context) {
	if s.delay <= 0 {
		return
	}
	t := time.NewTimer(s.delay)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

func (s *Store) GetUserProfile(ctx context.Context) entity.UserProfile {
	s.wait(ctx)
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile.Clone()
}

// UpdateUserProfile replaces the profile wholesale. No merge, no validation.
func (s *Store) UpdateUserProfile(ctx context.Context, next entity.UserProfile) entity.UserProfile {
	s.wait(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = next.Clone()
	return s.profile.Clone()
}

func (s *Store) GetProjects(ctx context.Context) []entity.Project {
	s.wait(ctx)
	s.mu.RLock()
	defer s.mu.RUnlock()
	return entity.CloneProjects(s.projects)
}

// GetMyInitiatedProjects unions the plaza list with the finance-tracked
// projects, keeps one entry per id (the later occurrence wins), and filters
// to the current user.
func (s *Store) GetMyInitiatedProjects(ctx context.Context) []entity.Project {
	s.wait(ctx)
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]entity.Project, 0, len(s.projects)+len(s.finance.ActiveProjects))
	all = append(all, s.projects...)
	all = append(all, s.finance.ActiveProjects...)

	order := make([]string, 0, len(all))
	byID := make(map[string]entity.Project, len(all))
	for _, p := range all {
		if _, seen := byID[p.ID]; !seen {
			order = append(order, p.ID)
		}
		byID[p.ID] = p
	}

	mine := make([]entity.Project, 0, len(order))
	for _, id := range order {
		if p := byID[id]; p.Owner == entity.CurrentUserID {
			mine = append(mine, p.Clone())
		}
	}
	return mine
}

// GetProjectByID searches the non-deduplicated union by string-compared id
// and returns the first match.
func (s *Store) GetProjectByID(ctx context.Context, id string) (entity.Project, bool) {
	s.wait(ctx)
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.projects {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	for _, p := range s.finance.ActiveProjects {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return entity.Project{}, false
}

// CreateProject assigns a fresh process-unique id and the fixed owner, then
// inserts the project at the front of the plaza list.
func (s *Store) CreateProject(ctx context.Context, draft entity.Project) entity.Project {
	s.wait(ctx)
	stored := draft.Clone()
	stored.ID = s.ids.Next("p")
	stored.Owner = entity.CurrentUserID

	s.mu.Lock()
	s.projects = append([]entity.Project{stored}, s.projects...)
	s.mu.Unlock()

	if s.backend != nil {
		s.backend.Append(stored)
	}
	return stored.Clone()
}

// GetFinanceData combines the static aggregates with a fresh copy of the
// transaction list. The aggregates are a stored snapshot, never recomputed.
func (s *Store) GetFinanceData(ctx context.Context) entity.FinanceData {
	s.wait(ctx)
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := s.finance.Clone()
	out.Transactions = append([]entity.Transaction(nil), s.transactions...)
	return out
}

// LoadMoreTransactions appends the fixed synthetic batch and returns only
// the new rows.
func (s *Store) LoadMoreTransactions(ctx context.Context) []entity.Transaction {
	s.wait(ctx)
	batch := []entity.Transaction{
		{ID: s.ids.Next("tx"), Name: "Apple One 订阅", Date: "3天前", Amount: -35.00, Type: entity.TransactionExpense},
		{ID: s.ids.Next("tx"), Name: "知识星球收入", Date: "5天前", Amount: 890.00, Type: entity.TransactionIncome},
		{ID: s.ids.Next("tx"), Name: "美股分红", Date: "上周", Amount: 120.50, Type: entity.TransactionInvestment},
	}
	s.mu.Lock()
	s.transactions = append(s.transactions, batch...)
	s.mu.Unlock()
	return append([]entity.Transaction(nil), batch...)
}

func (s *Store) GetOmniLifeItems(ctx context.Context) []entity.OmniItem {
	s.wait(ctx)
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.OmniItem, len(s.omniItems))
	for i, item := range s.omniItems {
		out[i] = item.Clone()
	}
	return out
}

func (s *Store) GetOmniItemByID(ctx context.Context, id string) (entity.OmniItem, bool) {
	s.wait(ctx)
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.omniItems {
		if item.ID == id {
			return item.Clone(), true
		}
	}
	return entity.OmniItem{}, false
}

func (s *Store) GetToolboxItems(ctx context.Context) []entity.ToolboxItem {
	s.wait(ctx)
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.ToolboxItem, len(s.toolbox))
	for i, item := range s.toolbox {
		out[i] = item.Clone()
	}
	return out
}

func (s *Store) GetToolboxItemByID(ctx context.Context, id string) (entity.ToolboxItem, bool) {
	s.wait(ctx)
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.toolbox {
		if item.ID == id {
			return item.Clone(), true
		}
	}
	return entity.ToolboxItem{}, false
}

func (s *Store) GetAllianceTasks(ctx context.Context) []entity.AllianceTask {
	s.wait(ctx)
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.AllianceTask, len(s.tasks))
	for i, task := range s.tasks {
		out[i] = task.Clone()
	}
	return out
}

// ClaimAllianceTask simulates the claim interaction. It records nothing;
// the board state is unchanged afterwards.
func (s *Store) ClaimAllianceTask(ctx context.Context, id string) (entity.AllianceTask, bool) {
	s.wait(ctx)
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, task := range s.tasks {
		if task.ID == id {
			return task.Clone(), true
		}
	}
	return entity.AllianceTask{}, false
}

var _ Repository = (*Store)(nil)
