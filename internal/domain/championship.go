package domain

import "context"

// ChampionshipDocumentType is the content store type of championship results.
const ChampionshipDocumentType = "championshipResult"

type ChampionshipLevel string

const (
	ChampionshipLevelState    ChampionshipLevel = "state"
	ChampionshipLevelRegional ChampionshipLevel = "regional"
	ChampionshipLevelDistrict ChampionshipLevel = "district"
)

// ChampionshipLevels lists the levels in display order.
var ChampionshipLevels = []ChampionshipLevel{
	ChampionshipLevelState,
	ChampionshipLevelRegional,
	ChampionshipLevelDistrict,
}

func (l ChampionshipLevel) Valid() bool {
	for _, known := range ChampionshipLevels {
		if l == known {
			return true
		}
	}
	return false
}

// ImageRef is a content store image field.
type ImageRef struct {
	Asset struct {
		Ref string `json:"_ref"`
	} `json:"asset"`
}

// Placement is one podium finish of a championship.
type Placement struct {
	TeamName   string    `json:"teamName,omitempty"`
	SchoolName string    `json:"schoolName,omitempty"`
	SchoolLogo *ImageRef `json:"schoolLogo,omitempty"`
	Roster     []string  `json:"roster,omitempty"`
	CoachName  string    `json:"coachName,omitempty"`
}

// DisplayName is the team name, falling back to the school name.
func (p *Placement) DisplayName() string {
	if p == nil {
		return ""
	}
	if p.TeamName != "" {
		return p.TeamName
	}
	return p.SchoolName
}

// ChampionshipResult is a championshipResult document.
type ChampionshipResult struct {
	ID                string            `json:"_id"`
	TournamentName    string            `json:"tournamentName"`
	Game              string            `json:"game"`
	GameLogo          *ImageRef         `json:"gameLogo,omitempty"`
	ChampionshipLevel ChampionshipLevel `json:"championshipLevel"`
	Season            string            `json:"season"`
	Year              int               `json:"year"`
	EventDate         string            `json:"eventDate"`
	Division          string            `json:"division,omitempty"`
	FirstPlace        *Placement        `json:"firstPlace,omitempty"`
	SecondPlace       *Placement        `json:"secondPlace,omitempty"`
	ThirdPlace        *Placement        `json:"thirdPlace,omitempty"`
	TotalParticipants int               `json:"totalParticipants,omitempty"`
	Highlights        string            `json:"highlights,omitempty"`
	BracketImage      *ImageRef         `json:"bracketImage,omitempty"`
	VideoHighlight    string            `json:"videoHighlight,omitempty"`
}

// ChampionshipSource loads every championship result from the content store.
type ChampionshipSource interface {
	ChampionshipResults(ctx context.Context) ([]ChampionshipResult, error)
}
