package types

import "fmt"

// MissionNature represents the nature of a business value
type MissionNature string

const (
	NatureInformation MissionNature = "information"
	NatureProcessus   MissionNature = "processus"
	NatureFonction    MissionNature = "fonction"
)

// AllMissionNatures returns all valid mission natures
func AllMissionNatures() []MissionNature {
	return []MissionNature{
		NatureInformation,
		NatureProcessus,
		NatureFonction,
	}
}

// IsValid checks if the mission nature is valid
func (n MissionNature) IsValid() bool {
	switch n {
	case NatureInformation,
		NatureProcessus,
		NatureFonction:
		return true
	default:
		return false
	}
}

// Normalize returns the nature, treating empty or unknown values as
// NatureInformation for backward compatibility with legacy documents.
func (n MissionNature) Normalize() MissionNature {
	if n.IsValid() {
		return n
	}
	return NatureInformation
}

// String returns the string representation of the mission nature
func (n MissionNature) String() string {
	return string(n)
}

// ParseMissionNature parses a string into a MissionNature
func ParseMissionNature(s string) (MissionNature, error) {
	n := MissionNature(s)
	if !n.IsValid() {
		return "", fmt.Errorf("invalid mission nature: %s", s)
	}
	return n, nil
}
