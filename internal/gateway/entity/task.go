package entity

// AllianceTaskType is the closed set of bounty categories.
type AllianceTaskType string

const (
	TaskDesign  AllianceTaskType = "Design"
	TaskDev     AllianceTaskType = "Dev"
	TaskOps     AllianceTaskType = "Ops"
	TaskContent AllianceTaskType = "Content"
)

// TaskDifficulty grades an alliance task.
type TaskDifficulty string

const (
	DifficultyEasy   TaskDifficulty = "Easy"
	DifficultyMedium TaskDifficulty = "Medium"
	DifficultyHard   TaskDifficulty = "Hard"
)

// AllianceTask is a seed-only bounty board entry. Claiming one is a
// simulated interaction and records nothing.
type AllianceTask struct {
	ID             string           `json:"id"`
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	Reward         int              `json:"reward"`
	Type           AllianceTaskType `json:"type"`
	RequiredSkills []string         `json:"requiredSkills"`
	Difficulty     TaskDifficulty   `json:"difficulty"`
	Applicants     int              `json:"applicants"`
	IsMatched      bool             `json:"isMatched,omitempty"`
}

func (t AllianceTask) Clone() AllianceTask {
	out := t
	out.RequiredSkills = append([]string(nil), t.RequiredSkills...)
	return out
}
