package classifier

import (
	"strings"

	"github.com/gosimple/slug"
	"github.com/idahoesports/site/internal/domain"
)

// PriorityRule assigns a priority when the subject contains any of its keywords.
type PriorityRule struct {
	Keywords []string
	Priority domain.Priority
}

// TagRule attaches a tag when the subject or message contains any of its keywords.
type TagRule struct {
	Keywords []string
	Label    string
}

// Tag is the slug sent to the task service, e.g. "School Inquiry" -> "school-inquiry".
func (r TagRule) Tag() string {
	return slug.Make(r.Label)
}

// Matches reports whether text (already lowercased) contains any keyword.
func (r PriorityRule) Matches(text string) bool {
	return containsAny(text, r.Keywords)
}

func (r TagRule) Matches(text string) bool {
	return containsAny(text, r.Keywords)
}

// DefaultPriorityRules are evaluated in order, the first match wins.
var DefaultPriorityRules = []PriorityRule{
	{Keywords: []string{"urgent", "emergency"}, Priority: domain.PriorityUrgent},
	{Keywords: []string{"important", "asap"}, Priority: domain.PriorityHigh},
	{Keywords: []string{"question", "info"}, Priority: domain.PriorityLow},
}

// DefaultPriority applies when no priority rule matches.
const DefaultPriority = domain.PriorityNormal

// DefaultTagRules all apply; a submission may carry several tags.
var DefaultTagRules = []TagRule{
	{Keywords: []string{"school", "team"}, Label: "School Inquiry"},
	{Keywords: []string{"sponsor", "partner"}, Label: "Sponsorship"},
	{Keywords: []string{"tournament", "competition"}, Label: "Tournament"},
	{Keywords: []string{"volunteer", "help"}, Label: "Volunteer"},
	{Keywords: []string{"bug", "error", "broken"}, Label: "Technical"},
}

// FallbackTagLabel is used when no tag rule matches.
const FallbackTagLabel = "General Inquiry"

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
