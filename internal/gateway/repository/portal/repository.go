package portal

import (
	"context"

	"omniportal/internal/gateway/entity"
)

// Repository is the single source of truth for all portal entities. All
// operations simulate asynchronous storage: they may suspend the caller for
// the configured latency but, once invoked, always run to completion.
// Lookups report misses through a boolean, never an error.
type Repository interface {
	GetUserProfile(ctx context.Context) entity.UserProfile
	UpdateUserProfile(ctx context.Context, next entity.UserProfile) entity.UserProfile

	GetProjects(ctx context.Context) []entity.Project
	GetMyInitiatedProjects(ctx context.Context) []entity.Project
	GetProjectByID(ctx context.Context, id string) (entity.Project, bool)
	CreateProject(ctx context.Context, draft entity.Project) entity.Project

	GetFinanceData(ctx context.Context) entity.FinanceData
	LoadMoreTransactions(ctx context.Context) []entity.Transaction

	GetOmniLifeItems(ctx context.Context) []entity.OmniItem
	GetOmniItemByID(ctx context.Context, id string) (entity.OmniItem, bool)
	GetToolboxItems(ctx context.Context) []entity.ToolboxItem
	GetToolboxItemByID(ctx context.Context, id string) (entity.ToolboxItem, bool)
	GetAllianceTasks(ctx context.Context) []entity.AllianceTask
	ClaimAllianceTask(ctx context.Context, id string) (entity.AllianceTask, bool)
}

// ProjectBackend persists created projects across restarts. Persistence is
// best effort: a failing backend never fails a repository operation.
type ProjectBackend interface {
	Load() []entity.Project
	Append(p entity.Project)
}
