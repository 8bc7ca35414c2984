package encounter

import "strings"

// Decision is the player's answer to a bargain.
type Decision int

const (
	DecisionDecline Decision = iota
	DecisionAccept
)

// String returns a human-readable decision name.
func (d Decision) String() string {
	switch d {
	case DecisionAccept:
		return "accept"
	default:
		return "decline"
	}
}

// ParseDecision accepts only "yes" (case-insensitive, surrounding space
// ignored). Anything else declines.
func ParseDecision(input string) Decision {
	if strings.ToLower(strings.TrimSpace(input)) == "yes" {
		return DecisionAccept
	}
	return DecisionDecline
}
