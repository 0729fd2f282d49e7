// Package champions serves the championship results listing shown on the
// champions page.
package champions

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/idahoesports/site/internal/domain"

	"github.com/rs/zerolog"
)

const (
	gameLogoSize   = 80
	schoolLogoSize = 60
)

type levelBadge struct {
	text  string
	emoji string
}

var levelBadges = map[domain.ChampionshipLevel]levelBadge{
	domain.ChampionshipLevelState:    {text: "State Champion", emoji: "🏆"},
	domain.ChampionshipLevelRegional: {text: "Regional Champion", emoji: "🎖️"},
	domain.ChampionshipLevelDistrict: {text: "District Champion", emoji: "🏅"},
}

var placementMedals = []string{"🥇", "🥈", "🥉"}

// ImageURLBuilder turns a content store image reference into a sized URL.
type ImageURLBuilder interface {
	ImageURL(ref string, width, height int) (string, error)
}

type PlacementView struct {
	Rank          int      `json:"rank"`
	Medal         string   `json:"medal"`
	DisplayName   string   `json:"displayName"`
	SchoolName    string   `json:"schoolName"`
	SchoolLogoURL string   `json:"schoolLogoUrl,omitempty"`
	CoachName     string   `json:"coachName,omitempty"`
	Roster        []string `json:"roster,omitempty"`
}

type ChampionshipView struct {
	ID                string                   `json:"id"`
	TournamentName    string                   `json:"tournamentName"`
	Game              string                   `json:"game"`
	GameLogoURL       string                   `json:"gameLogoUrl,omitempty"`
	Level             domain.ChampionshipLevel `json:"level"`
	BadgeText         string                   `json:"badgeText"`
	PreviewTitle      string                   `json:"previewTitle"`
	Subtitle          string                   `json:"subtitle"`
	Season            string                   `json:"season"`
	Year              int                      `json:"year"`
	EventDate         string                   `json:"eventDate,omitempty"`
	Division          string                   `json:"division,omitempty"`
	TotalParticipants int                      `json:"totalParticipants,omitempty"`
	Highlights        string                   `json:"highlights,omitempty"`
	BracketImageURL   string                   `json:"bracketImageUrl,omitempty"`
	VideoHighlight    string                   `json:"videoHighlight,omitempty"`
	Placements        []PlacementView          `json:"placements"`
}

type YearGroup struct {
	Year          int                `json:"year"`
	Championships []ChampionshipView `json:"championships"`
}

type Facets struct {
	Years  []int                      `json:"years"`
	Games  []string                   `json:"games"`
	Levels []domain.ChampionshipLevel `json:"levels"`
}

type Listing struct {
	Count  int         `json:"count"`
	Label  string      `json:"label"`
	Groups []YearGroup `json:"groups"`
	Facets Facets      `json:"facets"`
}

type Service struct {
	source domain.ChampionshipSource
	images ImageURLBuilder
	logger zerolog.Logger
}

type ServiceDependencies struct {
	Source domain.ChampionshipSource
	// Images is optional; without it no logo URLs are produced.
	Images ImageURLBuilder
	Logger zerolog.Logger
}

func NewService(deps ServiceDependencies) *Service {
	return &Service{
		source: deps.Source,
		images: deps.Images,
		logger: deps.Logger,
	}
}

// List loads every result, applies filter and groups the matches by year.
// Facets always describe the full unfiltered set.
func (s *Service) List(ctx context.Context, filter Filter) (Listing, error) {
	results, err := s.source.ChampionshipResults(ctx)
	if err != nil {
		return Listing{}, fmt.Errorf("failed to load championship results: %w", err)
	}

	listing := Listing{
		Groups: []YearGroup{},
		Facets: buildFacets(results),
	}

	groupIndex := make(map[int]int)

	for _, result := range results {
		if !filter.Matches(result) {
			continue
		}

		view := s.view(result)

		idx, ok := groupIndex[result.Year]
		if !ok {
			idx = len(listing.Groups)
			groupIndex[result.Year] = idx
			listing.Groups = append(listing.Groups, YearGroup{Year: result.Year})
		}
		listing.Groups[idx].Championships = append(listing.Groups[idx].Championships, view)
		listing.Count++
	}

	sort.SliceStable(listing.Groups, func(i, j int) bool {
		return listing.Groups[i].Year > listing.Groups[j].Year
	})

	listing.Label = CountLabel(listing.Count)

	return listing, nil
}

// CountLabel is the noun shown next to the result count.
func CountLabel(count int) string {
	if count == 1 {
		return "championship"
	}
	return "championships"
}

// Badge returns the badge text for a level. Unknown levels are shown as state.
func Badge(level domain.ChampionshipLevel) string {
	return badgeFor(level).text
}

// PreviewTitle is the one-line summary used by the content studio.
func PreviewTitle(r domain.ChampionshipResult) string {
	return fmt.Sprintf("%s %s - %s %d", badgeFor(r.ChampionshipLevel).emoji, r.Game, r.Season, r.Year)
}

func Subtitle(r domain.ChampionshipResult) string {
	winner := ""
	if r.FirstPlace != nil {
		winner = r.FirstPlace.SchoolName
	}
	if winner == "" {
		winner = "TBD"
	}
	return "Champion: " + winner
}

// CapitalizeSeason upper-cases the first letter only.
func CapitalizeSeason(season string) string {
	r, size := utf8.DecodeRuneInString(season)
	if r == utf8.RuneError {
		return season
	}
	return string(unicode.ToUpper(r)) + season[size:]
}

func badgeFor(level domain.ChampionshipLevel) levelBadge {
	if b, ok := levelBadges[level]; ok {
		return b
	}
	return levelBadges[domain.ChampionshipLevelState]
}

func (s *Service) view(r domain.ChampionshipResult) ChampionshipView {
	view := ChampionshipView{
		ID:                r.ID,
		TournamentName:    r.TournamentName,
		Game:              r.Game,
		GameLogoURL:       s.imageURL(r.GameLogo, gameLogoSize),
		Level:             r.ChampionshipLevel,
		BadgeText:         Badge(r.ChampionshipLevel),
		PreviewTitle:      PreviewTitle(r),
		Subtitle:          Subtitle(r),
		Season:            CapitalizeSeason(r.Season),
		Year:              r.Year,
		EventDate:         r.EventDate,
		Division:          r.Division,
		TotalParticipants: r.TotalParticipants,
		Highlights:        r.Highlights,
		BracketImageURL:   s.imageURL(r.BracketImage, 0),
		VideoHighlight:    r.VideoHighlight,
		Placements:        []PlacementView{},
	}

	for i, p := range []*domain.Placement{r.FirstPlace, r.SecondPlace, r.ThirdPlace} {
		// Placements without a school are not shown.
		if p == nil || p.SchoolName == "" {
			continue
		}

		view.Placements = append(view.Placements, PlacementView{
			Rank:          i + 1,
			Medal:         placementMedals[i],
			DisplayName:   p.DisplayName(),
			SchoolName:    p.SchoolName,
			SchoolLogoURL: s.imageURL(p.SchoolLogo, schoolLogoSize),
			CoachName:     p.CoachName,
			Roster:        p.Roster,
		})
	}

	return view
}

func (s *Service) imageURL(img *domain.ImageRef, size int) string {
	if s.images == nil || img == nil || img.Asset.Ref == "" {
		return ""
	}

	url, err := s.images.ImageURL(img.Asset.Ref, size, size)
	if err != nil {
		s.logger.Debug().Err(err).Str("ref", img.Asset.Ref).Msg("Skipping unresolvable image reference")
		return ""
	}

	return url
}

func buildFacets(results []domain.ChampionshipResult) Facets {
	years := make(map[int]struct{})
	games := make(map[string]struct{})

	facets := Facets{
		Years:  []int{},
		Games:  []string{},
		Levels: append([]domain.ChampionshipLevel(nil), domain.ChampionshipLevels...),
	}

	for _, r := range results {
		if _, ok := years[r.Year]; !ok {
			years[r.Year] = struct{}{}
			facets.Years = append(facets.Years, r.Year)
		}
		if _, ok := games[r.Game]; !ok && strings.TrimSpace(r.Game) != "" {
			games[r.Game] = struct{}{}
			facets.Games = append(facets.Games, r.Game)
		}
	}

	sort.Sort(sort.Reverse(sort.IntSlice(facets.Years)))
	sort.Strings(facets.Games)

	return facets
}
