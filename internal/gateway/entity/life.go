package entity

// OmniItemType is the closed set of marketplace listing kinds.
type OmniItemType string

const (
	OmniSchool     OmniItemType = "school"
	OmniServices   OmniItemType = "services"
	OmniGoods      OmniItemType = "goods"
	OmniPlaces     OmniItemType = "places"
	OmniEvents     OmniItemType = "events"
	OmniHealer     OmniItemType = "healer"
	OmniTravel     OmniItemType = "travel"
	OmniInvestment OmniItemType = "investment"
	OmniRWA        OmniItemType = "rwa"
)

// OmniItem is a marketplace listing. Kind-specific fields stay empty for
// kinds they do not apply to. Seed data only; there is no create or update
// operation for listings.
type OmniItem struct {
	ID          string       `json:"id"`
	Type        OmniItemType `json:"type"`
	Title       string       `json:"title"`
	Subtitle    string       `json:"subtitle"`
	Price       string       `json:"price"`
	Unit        string       `json:"unit,omitempty"`
	Image       string       `json:"image"`
	Tag         string       `json:"tag"`
	IsLive      bool         `json:"isLive,omitempty"`
	Rating      float64      `json:"rating,omitempty"`
	Date        string       `json:"date,omitempty"`
	Dist        string       `json:"dist,omitempty"`
	Avatars     []string     `json:"avatars"`
	Description string       `json:"description,omitempty"`

	// RWA and token gating fields.
	APY           string   `json:"apy,omitempty"`
	MinInvestment string   `json:"minInvestment,omitempty"`
	TokenGate     string   `json:"tokenGate,omitempty"`
	Benefits      []string `json:"benefits,omitempty"`
}

func (i OmniItem) Clone() OmniItem {
	out := i
	out.Avatars = append([]string(nil), i.Avatars...)
	out.Benefits = append([]string(nil), i.Benefits...)
	return out
}
