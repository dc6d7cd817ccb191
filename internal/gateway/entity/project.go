package entity

// ProjectRole describes one position a project is recruiting for. Equity
// shares are caller-edited and never validated to sum to anything.
type ProjectRole struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	RequiredTalents []string `json:"requiredTalents"`
	AssignedUserID  string   `json:"assignedUserId,omitempty"`
	EquityShare     int      `json:"equityShare"`
	IsFilled        bool     `json:"isFilled"`
}

func (r ProjectRole) Clone() ProjectRole {
	out := r
	out.RequiredTalents = append([]string(nil), r.RequiredTalents...)
	return out
}

// Project is a co-creation record. Finance-tracked projects reuse the same
// shape with UserEquity/TotalDividends set.
type Project struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	Progress      int           `json:"progress"`
	RolesNeeded   []string      `json:"rolesNeeded"`
	DetailedRoles []ProjectRole `json:"detailedRoles,omitempty"`
	Image         string        `json:"image"`
	Owner         UserID        `json:"owner,omitempty"`
	IsRecommended bool          `json:"isRecommended,omitempty"`

	// Finance-view projection.
	UserEquity     float64 `json:"userEquity,omitempty"`
	TotalDividends float64 `json:"totalDividends,omitempty"`
}

func (p Project) Clone() Project {
	out := p
	out.RolesNeeded = append([]string(nil), p.RolesNeeded...)
	if p.DetailedRoles != nil {
		out.DetailedRoles = make([]ProjectRole, len(p.DetailedRoles))
		for i, r := range p.DetailedRoles {
			out.DetailedRoles[i] = r.Clone()
		}
	}
	return out
}

func CloneProjects(in []Project) []Project {
	out := make([]Project, len(in))
	for i, p := range in {
		out[i] = p.Clone()
	}
	return out
}
