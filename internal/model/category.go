package model

import (
	"fmt"
	"strings"
)

// Status is a closed set of wealth categories.
type Status string

const (
	// Rich describes someone with lots of money.
	Rich Status = "rich"

	// Poor describes someone with no money.
	Poor Status = "poor"
)

// String returns the string representation of Status.
func (s Status) String() string {
	return string(s)
}

// IsValid checks whether the Status value is one of the defined variants.
func (s Status) IsValid() bool {
	switch s {
	case Rich, Poor:
		return true
	default:
		return false
	}
}

// Describe returns the fixed sentence printed for the category.
func (s Status) Describe() string {
	switch s {
	case Rich:
		return "The rich have lots of money!"
	case Poor:
		return "The poor have no money..."
	default:
		return ""
	}
}

// ParseStatus converts a string to a Status.
// Returns an error if the string does not match any valid status.
func ParseStatus(s string) (Status, error) {
	status := Status(strings.ToLower(s))
	if !status.IsValid() {
		return "", fmt.Errorf("invalid status: %q (valid: rich, poor)", s)
	}
	return status, nil
}

// Work is a closed set of occupations.
type Work string

const (
	// Civilian is a civilian occupation.
	Civilian Work = "civilian"

	// Soldier is a military occupation.
	Soldier Work = "soldier"
)

// String returns the string representation of Work.
func (w Work) String() string {
	return string(w)
}

// IsValid checks whether the Work value is one of the defined variants.
func (w Work) IsValid() bool {
	switch w {
	case Civilian, Soldier:
		return true
	default:
		return false
	}
}

// Describe returns the fixed sentence printed for the occupation.
func (w Work) Describe() string {
	switch w {
	case Civilian:
		return "Civilians work!"
	case Soldier:
		return "Soldiers fight!"
	default:
		return ""
	}
}

// ParseWork converts a string to a Work value.
func ParseWork(s string) (Work, error) {
	work := Work(strings.ToLower(s))
	if !work.IsValid() {
		return "", fmt.Errorf("invalid work: %q (valid: civilian, soldier)", s)
	}
	return work, nil
}
