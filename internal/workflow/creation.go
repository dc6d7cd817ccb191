package workflow

import (
	"context"
	"fmt"
	"sync"
	"time"

	"omniportal/internal/gateway/entity"
)

// Stage is the creation flow position.
type Stage int

const (
	StageDraft Stage = iota + 1
	StageReview
)

func (s Stage) String() string {
	switch s {
	case StageDraft:
		return "draft"
	case StageReview:
		return "review"
	default:
		return "unknown"
	}
}

const (
	placeholderTitle = "新共创项目"
	titleRunes       = 8
	minTitleSource   = 10
	descriptionCap   = 120
)

// Suggester provides the role blueprint for a project description.
type Suggester interface {
	SuggestRoles(ctx context.Context, description string) []entity.ProjectRole
}

// ProjectStore is the slice of the repository the flow publishes through.
type ProjectStore interface {
	CreateProject(ctx context.Context, draft entity.Project) entity.Project
	GetMyInitiatedProjects(ctx context.Context) []entity.Project
}

// CreationFlow is the two-stage suggestion-driven project creation machine.
// Draft accumulates a free-text vision; review holds the editable role
// blueprint until it is published or discarded.
type CreationFlow struct {
	suggester Suggester
	store     ProjectStore
	now       func() time.Time

	mu          sync.Mutex
	stage       Stage
	description string
	roles       []entity.ProjectRole
}

func New(suggester Suggester, store ProjectStore) *CreationFlow {
	return &CreationFlow{
		suggester: suggester,
		store:     store,
		now:       time.Now,
		stage:     StageDraft,
	}
}

func (f *CreationFlow) Stage() Stage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stage
}

func (f *CreationFlow) Description() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.description
}

// Roles returns a copy of the working role set.
func (f *CreationFlow) Roles() []entity.ProjectRole {
	f.mu.Lock()
	defer f.mu.Unlock()
	return cloneRoles(f.roles)
}

// SetDescription updates the draft vision. Ignored outside the draft stage.
func (f *CreationFlow) SetDescription(desc string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.stage != StageDraft {
		return
	}
	f.description = desc
}

// GenerateBlueprint obtains role suggestions for the current description and
// moves to review. Whatever comes back, including nothing, becomes the
// working role set.
func (f *CreationFlow) GenerateBlueprint(ctx context.Context) []entity.ProjectRole {
	f.mu.Lock()
	if f.stage != StageDraft {
		roles := cloneRoles(f.roles)
		f.mu.Unlock()
		return roles
	}
	desc := f.description
	f.mu.Unlock()

	suggested := f.suggester.SuggestRoles(ctx, desc)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.roles = cloneRoles(suggested)
	f.stage = StageReview
	return cloneRoles(f.roles)
}

// SetRoleEquity updates one role's equity share by id. Shares are not
// validated against each other. Reports whether the role was found.
func (f *CreationFlow) SetRoleEquity(id string, share int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.stage != StageReview {
		return false
	}
	for i := range f.roles {
		if f.roles[i].ID == id {
			f.roles[i].EquityShare = share
			return true
		}
	}
	return false
}

// Back returns to draft and discards the working role set. The description
// is kept for further editing.
func (f *CreationFlow) Back() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.stage != StageReview {
		return
	}
	f.roles = nil
	f.stage = StageDraft
}

// Publish commits the blueprint as a new project, re-fetches the caller's
// project list, and resets the flow to an empty draft. Reports false when
// the flow is not in review.
func (f *CreationFlow) Publish(ctx context.Context) (entity.Project, []entity.Project, bool) {
	f.mu.Lock()
	if f.stage != StageReview {
		f.mu.Unlock()
		return entity.Project{}, nil, false
	}
	desc := f.description
	roles := cloneRoles(f.roles)
	f.mu.Unlock()

	rolesNeeded := make([]string, len(roles))
	for i, r := range roles {
		rolesNeeded[i] = r.Title
	}
	draft := entity.Project{
		Title:         projectTitle(desc),
		Description:   truncateDescription(desc),
		Progress:      0,
		RolesNeeded:   rolesNeeded,
		DetailedRoles: roles,
		Image:         fmt.Sprintf("https://picsum.photos/400/200?random=%d", f.now().UnixMilli()),
	}

	created := f.store.CreateProject(ctx, draft)
	mine := f.store.GetMyInitiatedProjects(ctx)

	f.mu.Lock()
	f.description = ""
	f.roles = nil
	f.stage = StageDraft
	f.mu.Unlock()

	return created, mine, true
}

// projectTitle derives a display title from the vision text: the first 8
// runes plus an ellipsis, or a fixed placeholder for very short input.
func projectTitle(desc string) string {
	runes := []rune(desc)
	if len(runes) < minTitleSource {
		return placeholderTitle
	}
	title := string(runes[:titleRunes])
	if len(runes) > titleRunes {
		title += "..."
	}
	return title
}

func truncateDescription(desc string) string {
	runes := []rune(desc)
	if len(runes) > descriptionCap {
		return string(runes[:descriptionCap]) + "..."
	}
	return desc
}

func cloneRoles(in []entity.ProjectRole) []entity.ProjectRole {
	out := make([]entity.ProjectRole, len(in))
	for i, r := range in {
		out[i] = r.Clone()
	}
	return out
}
