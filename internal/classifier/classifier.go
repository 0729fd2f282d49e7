// Package classifier turns a contact form submission into a task record:
// title, description, priority tier and topic tags.
package classifier

import (
	"fmt"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"github.com/idahoesports/site/internal/domain"
)

const (
	// TitlePrefix is prepended to the subject to form the task title.
	TitlePrefix = "Contact: "

	// SourceLabel identifies where the task came from.
	SourceLabel = "Website Contact Form"

	// TimestampLayout renders the submission time in the description.
	TimestampLayout = "1/2/2006, 3:04:05 PM"
)

// Classifier holds the rule tables. The zero value is not usable; use New or Default.
type Classifier struct {
	priorityRules   []PriorityRule
	defaultPriority domain.Priority
	tagRules        []TagRule
	fallbackTag     string
}

type ClassifierDependencies struct {
	PriorityRules   []PriorityRule
	DefaultPriority domain.Priority
	TagRules        []TagRule
	FallbackLabel   string
}

func New(deps ClassifierDependencies) *Classifier {
	defaultPriority := deps.DefaultPriority
	if !defaultPriority.Valid() {
		defaultPriority = DefaultPriority
	}

	fallbackLabel := deps.FallbackLabel
	if fallbackLabel == "" {
		fallbackLabel = FallbackTagLabel
	}

	return &Classifier{
		priorityRules:   deps.PriorityRules,
		defaultPriority: defaultPriority,
		tagRules:        deps.TagRules,
		fallbackTag:     slug.Make(fallbackLabel),
	}
}

// Default returns a classifier using the organisation's keyword tables.
func Default() *Classifier {
	return New(ClassifierDependencies{
		PriorityRules:   DefaultPriorityRules,
		DefaultPriority: DefaultPriority,
		TagRules:        DefaultTagRules,
		FallbackLabel:   FallbackTagLabel,
	})
}

// Classify derives the task for input. now is embedded in the description.
func (c *Classifier) Classify(input domain.SubmissionInput, now time.Time) domain.ClassifiedTask {
	return domain.ClassifiedTask{
		Title:       TitlePrefix + input.Subject,
		Description: Describe(input, now),
		Priority:    c.Priority(input.Subject),
		Tags:        c.Tags(input.Subject, input.Message),
		Status:      domain.TaskStatusNew,
	}
}

// Priority looks at the subject only.
func (c *Classifier) Priority(subject string) domain.Priority {
	text := strings.ToLower(subject)

	for _, rule := range c.priorityRules {
		if rule.Matches(text) {
			return rule.Priority
		}
	}

	return c.defaultPriority
}

// Tags looks at subject and message together. The result is never empty.
func (c *Classifier) Tags(subject, message string) []string {
	text := strings.ToLower(subject + " " + message)

	tags := []string{}
	for _, rule := range c.tagRules {
		if rule.Matches(text) {
			tags = append(tags, rule.Tag())
		}
	}

	if len(tags) == 0 {
		tags = append(tags, c.fallbackTag)
	}

	return tags
}

// Describe renders the task description. Nothing is escaped; the task service
// treats it as plain text.
func Describe(input domain.SubmissionInput, now time.Time) string {
	var b strings.Builder

	b.WriteString("**Contact Information:**\n")
	fmt.Fprintf(&b, "- Name: %s\n", input.Name)
	fmt.Fprintf(&b, "- Email: %s\n", input.Email)
	b.WriteString("\n**Message:**\n")
	b.WriteString(input.Message)
	b.WriteString("\n\n---\n")
	fmt.Fprintf(&b, "*Submitted: %s*\n", now.Format(TimestampLayout))
	fmt.Fprintf(&b, "*Source: %s*", SourceLabel)

	return strings.TrimSpace(b.String())
}
