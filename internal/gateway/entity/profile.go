package entity

// SkillCategory groups a set of skills under a display category.
type SkillCategory struct {
	Category string   `json:"category"`
	IconName string   `json:"iconName"`
	Color    string   `json:"color"`
	Bg       string   `json:"bg"`
	Skills   []string `json:"skills"`
}

// AllianceAchievement is a single badge on the profile page.
type AllianceAchievement struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Detail   string `json:"detail"`
	Year     string `json:"year"`
	IconName string `json:"iconName"`
	Level    string `json:"level,omitempty"`
}

// ZoneOfGenius holds the two free-form strength lists of the profile.
type ZoneOfGenius struct {
	Enjoy      []string `json:"enjoy"`
	Effortless []string `json:"effortless"`
}

// UserProfile is the single live profile record. Updates replace it
// wholesale; there is no partial merge.
type UserProfile struct {
	Name                 string                `json:"name"`
	Title                string                `json:"title"`
	Location             string                `json:"location"`
	Intro                string                `json:"intro"`
	Tags                 []string              `json:"tags"`
	SkillStack           []SkillCategory       `json:"skillStack"`
	AllianceAchievements []AllianceAchievement `json:"allianceAchievements"`
	ZoneOfGenius         ZoneOfGenius          `json:"zoneOfGenius"`
}

// Clone returns a copy whose slices are detached from the receiver.
func (p UserProfile) Clone() UserProfile {
	out := p
	out.Tags = append([]string(nil), p.Tags...)
	out.SkillStack = make([]SkillCategory, len(p.SkillStack))
	for i, sc := range p.SkillStack {
		sc.Skills = append([]string(nil), sc.Skills...)
		out.SkillStack[i] = sc
	}
	out.AllianceAchievements = append([]AllianceAchievement(nil), p.AllianceAchievements...)
	out.ZoneOfGenius.Enjoy = append([]string(nil), p.ZoneOfGenius.Enjoy...)
	out.ZoneOfGenius.Effortless = append([]string(nil), p.ZoneOfGenius.Effortless...)
	return out
}
