package entity

// ToolboxCategory splits the toolbox page into its two sections.
type ToolboxCategory string

const (
	ToolboxTools     ToolboxCategory = "tools"
	ToolboxThinkTank ToolboxCategory = "thinkTank"
)

// ToolboxItem is a seed-only toolbox entry.
type ToolboxItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Desc        string          `json:"desc"`
	IconName    string          `json:"iconName"`
	Category    ToolboxCategory `json:"category"`
	Features    []string        `json:"features,omitempty"`
	ActionLabel string          `json:"actionLabel,omitempty"`
}

func (t ToolboxItem) Clone() ToolboxItem {
	out := t
	out.Features = append([]string(nil), t.Features...)
	return out
}
