package classifier

import (
	"testing"
	"time"

	"github.com/idahoesports/site/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, time.March, 5, 14, 7, 9, 0, time.UTC)

func TestClassifier_Priority(t *testing.T) {
	c := Default()

	tests := []struct {
		name     string
		subject  string
		expected domain.Priority
	}{
		{name: "urgent", subject: "URGENT: need a call back", expected: domain.PriorityUrgent},
		{name: "emergency", subject: "Emergency at the venue", expected: domain.PriorityUrgent},
		{name: "important", subject: "Important registration change", expected: domain.PriorityHigh},
		{name: "asap", subject: "Reply ASAP please", expected: domain.PriorityHigh},
		{name: "question", subject: "Quick question", expected: domain.PriorityLow},
		{name: "info", subject: "Looking for Info", expected: domain.PriorityLow},
		{name: "no keyword", subject: "Hello there", expected: domain.PriorityNormal},
		{name: "urgent wins over important", subject: "important and urgent", expected: domain.PriorityUrgent},
		{name: "important wins over question", subject: "important question", expected: domain.PriorityHigh},
		{name: "substring match", subject: "information request", expected: domain.PriorityLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.Priority(tt.subject))
		})
	}
}

func TestClassifier_PriorityIgnoresMessage(t *testing.T) {
	task := Default().Classify(domain.SubmissionInput{
		Name:    "A",
		Email:   "a@b.co",
		Subject: "Hello",
		Message: "this is urgent",
	}, fixedNow)

	assert.Equal(t, domain.PriorityNormal, task.Priority)
}

func TestClassifier_Tags(t *testing.T) {
	c := Default()

	tests := []struct {
		name     string
		subject  string
		message  string
		expected []string
	}{
		{name: "fallback", subject: "Hello", message: "Just saying hi", expected: []string{"general-inquiry"}},
		{name: "school", subject: "Our School", message: "", expected: []string{"school-inquiry"}},
		{name: "team in message", subject: "Hi", message: "our team wants in", expected: []string{"school-inquiry"}},
		{name: "sponsor", subject: "Sponsor opportunity", message: "", expected: []string{"sponsorship"}},
		{name: "partner", subject: "hi", message: "We want to PARTNER", expected: []string{"sponsorship"}},
		{name: "competition", subject: "competition", message: "", expected: []string{"tournament"}},
		{name: "help", subject: "Can you help", message: "", expected: []string{"volunteer"}},
		{name: "error", subject: "Site error", message: "", expected: []string{"technical"}},
		{
			name:     "multiple tags",
			subject:  "Question",
			message:  "I want to volunteer at the tournament",
			expected: []string{"tournament", "volunteer"},
		},
		{
			name:     "sponsor and tournament overlap",
			subject:  "Sponsor the tournament",
			message:  "",
			expected: []string{"sponsorship", "tournament"},
		},
		{
			name:     "keyword split across subject and message does not match",
			subject:  "tourna",
			message:  "ment",
			expected: []string{"general-inquiry"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.Tags(tt.subject, tt.message))
		})
	}
}

func TestTagRule_Tag(t *testing.T) {
	expected := []string{"school-inquiry", "sponsorship", "tournament", "volunteer", "technical"}

	require.Len(t, DefaultTagRules, len(expected))
	for i, rule := range DefaultTagRules {
		assert.Equal(t, expected[i], rule.Tag())
	}
}

func TestClassifier_EndToEnd(t *testing.T) {
	input := domain.SubmissionInput{
		Name:    "A",
		Email:   "a@b.co",
		Subject: "Urgent: broken bracket",
		Message: "tournament bug",
	}

	task := Default().Classify(input, fixedNow)

	assert.Equal(t, "Contact: Urgent: broken bracket", task.Title)
	assert.Equal(t, domain.PriorityUrgent, task.Priority)
	assert.Contains(t, task.Tags, "tournament")
	assert.Contains(t, task.Tags, "technical")
	assert.NotContains(t, task.Tags, "general-inquiry")
	assert.Equal(t, domain.TaskStatusNew, task.Status)
}

func TestClassifier_Idempotent(t *testing.T) {
	c := Default()
	input := domain.SubmissionInput{Name: "A", Email: "a@b", Subject: "Team question", Message: "help"}

	first := c.Classify(input, fixedNow)
	second := c.Classify(input, fixedNow)
	assert.Equal(t, first, second)

	later := c.Classify(input, fixedNow.Add(time.Minute))
	assert.Equal(t, first.Priority, later.Priority)
	assert.Equal(t, first.Tags, later.Tags)
	assert.NotEqual(t, first.Description, later.Description)
}

func TestDescribe(t *testing.T) {
	input := domain.SubmissionInput{
		Name:    "Jordan",
		Email:   "jordan@example.com",
		Subject: "Hi",
		Message: "<b>line one</b>\nline two",
	}

	expected := "**Contact Information:**\n" +
		"- Name: Jordan\n" +
		"- Email: jordan@example.com\n" +
		"\n**Message:**\n" +
		"<b>line one</b>\nline two\n" +
		"\n---\n" +
		"*Submitted: 3/5/2024, 2:07:09 PM*\n" +
		"*Source: Website Contact Form*"

	assert.Equal(t, expected, Describe(input, fixedNow))
}

func TestNew_Defaults(t *testing.T) {
	c := New(ClassifierDependencies{})

	assert.Equal(t, domain.PriorityNormal, c.Priority("urgent"))
	assert.Equal(t, []string{"general-inquiry"}, c.Tags("sponsor", "bug"))
}
