package champions

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/idahoesports/site/internal/domain"
)

// FilterAll is the query value meaning "no restriction".
const FilterAll = "all"

var ErrInvalidFilter = errors.New("invalid filter")

// Filter narrows the championship listing. Zero values match everything.
type Filter struct {
	Search string
	Year   int
	Game   string
	Level  domain.ChampionshipLevel
}

// ParseFilter builds a Filter from raw query values.
func ParseFilter(search, year, game, level string) (Filter, error) {
	f := Filter{
		Search: strings.TrimSpace(search),
	}

	if year != "" && year != FilterAll {
		y, err := strconv.Atoi(year)
		if err != nil || y <= 0 {
			return Filter{}, fmt.Errorf("%w: year %q", ErrInvalidFilter, year)
		}
		f.Year = y
	}

	if game != FilterAll {
		f.Game = game
	}

	if level != "" && level != FilterAll {
		l := domain.ChampionshipLevel(level)
		if !l.Valid() {
			return Filter{}, fmt.Errorf("%w: level %q", ErrInvalidFilter, level)
		}
		f.Level = l
	}

	return f, nil
}

func (f Filter) Matches(r domain.ChampionshipResult) bool {
	if f.Year != 0 && r.Year != f.Year {
		return false
	}
	if f.Game != "" && r.Game != f.Game {
		return false
	}
	if f.Level != "" && r.ChampionshipLevel != f.Level {
		return false
	}

	return f.matchesSearch(r)
}

func (f Filter) matchesSearch(r domain.ChampionshipResult) bool {
	if f.Search == "" {
		return true
	}

	term := strings.ToLower(f.Search)

	candidates := []string{r.Game}
	if r.FirstPlace != nil {
		candidates = append(candidates, r.FirstPlace.SchoolName, r.FirstPlace.TeamName)
	}
	if r.SecondPlace != nil {
		candidates = append(candidates, r.SecondPlace.SchoolName)
	}
	if r.ThirdPlace != nil {
		candidates = append(candidates, r.ThirdPlace.SchoolName)
	}

	for _, c := range candidates {
		if c != "" && strings.Contains(strings.ToLower(c), term) {
			return true
		}
	}

	return false
}
