package types

import "strings"

// ApplicationStatus represents the compliance status of a gap requirement
type ApplicationStatus string

const (
	ApplicationApplied          ApplicationStatus = "Appliqué"
	ApplicationPartiallyApplied ApplicationStatus = "Partiellement appliqué"
	ApplicationNotApplied       ApplicationStatus = "Non appliqué"
	ApplicationNotApplicable    ApplicationStatus = "Non applicable"
)

// AllApplicationStatuses returns all canonical statuses in display order
func AllApplicationStatuses() []ApplicationStatus {
	return []ApplicationStatus{
		ApplicationApplied,
		ApplicationPartiallyApplied,
		ApplicationNotApplied,
		ApplicationNotApplicable,
	}
}

var diacriticFolder = strings.NewReplacer(
	"à", "a", "â", "a", "ä", "a",
	"é", "e", "è", "e", "ê", "e", "ë", "e",
	"î", "i", "ï", "i",
	"ô", "o", "ö", "o",
	"ù", "u", "û", "u", "ü", "u",
	"ç", "c",
)

// FoldApplication lowercases, trims and removes French diacritics so that
// statuses from hand-edited documents can be matched against the canonical
// four values.
func FoldApplication(s string) string {
	return diacriticFolder.Replace(strings.ToLower(strings.TrimSpace(s)))
}

// ParseApplicationStatus matches a raw status string against the canonical
// statuses, case and diacritic insensitively.
func ParseApplicationStatus(s string) (ApplicationStatus, bool) {
	folded := FoldApplication(s)
	for _, st := range AllApplicationStatuses() {
		if folded == FoldApplication(string(st)) {
			return st, true
		}
	}
	return "", false
}

// Normalize returns the canonical form of the status when it matches one of
// the four known values, keeping the raw value as-is otherwise so that no
// user input is lost.
func (s ApplicationStatus) Normalize() ApplicationStatus {
	if s == "" {
		return ApplicationNotApplied
	}
	if st, ok := ParseApplicationStatus(string(s)); ok {
		return st
	}
	return s
}

// IsApplied reports whether the folded status starts with "applique".
// "Partiellement appliqué" folds to "partiellement applique" and is
// therefore not applied.
func (s ApplicationStatus) IsApplied() bool {
	return strings.HasPrefix(FoldApplication(string(s)), "applique")
}

// String returns the string representation of the application status
func (s ApplicationStatus) String() string {
	return string(s)
}
