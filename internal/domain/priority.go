package domain

import "fmt"

// Priority is the task urgency, ordered from most to least urgent. The numeric
// values are the ones the task service expects on the wire.
type Priority int

const (
	PriorityUrgent Priority = 1
	PriorityHigh   Priority = 2
	PriorityNormal Priority = 3
	PriorityLow    Priority = 4
)

func (p Priority) String() string {
	switch p {
	case PriorityUrgent:
		return "urgent"
	case PriorityHigh:
		return "high"
	case PriorityNormal:
		return "normal"
	case PriorityLow:
		return "low"
	default:
		return fmt.Sprintf("priority(%d)", int(p))
	}
}

// Valid reports whether p is one of the four known tiers.
func (p Priority) Valid() bool {
	return p >= PriorityUrgent && p <= PriorityLow
}
