package types

import "fmt"

// StakeholderCategory represents the relationship category of a stakeholder
type StakeholderCategory string

const (
	CategoryPrestataire  StakeholderCategory = "prestataire"
	CategoryPartenaire   StakeholderCategory = "partenaire"
	CategoryBeneficiaire StakeholderCategory = "beneficiaire"
)

// AllStakeholderCategories returns all valid stakeholder categories
func AllStakeholderCategories() []StakeholderCategory {
	return []StakeholderCategory{
		CategoryPrestataire,
		CategoryPartenaire,
		CategoryBeneficiaire,
	}
}

// IsValid checks if the stakeholder category is valid
func (c StakeholderCategory) IsValid() bool {
	switch c {
	case CategoryPrestataire,
		CategoryPartenaire,
		CategoryBeneficiaire:
		return true
	default:
		return false
	}
}

// Normalize returns the category, treating empty or unknown values as
// CategoryPrestataire for backward compatibility.
func (c StakeholderCategory) Normalize() StakeholderCategory {
	if c.IsValid() {
		return c
	}
	return CategoryPrestataire
}

// String returns the string representation of the stakeholder category
func (c StakeholderCategory) String() string {
	return string(c)
}

// ParseStakeholderCategory parses a string into a StakeholderCategory
func ParseStakeholderCategory(s string) (StakeholderCategory, error) {
	c := StakeholderCategory(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid stakeholder category: %s", s)
	}
	return c, nil
}
