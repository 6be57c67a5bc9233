package domain

import "strings"

// DiamondCategory is the material category whose stones count towards certified carats.
const DiamondCategory = "Diamond"

// Material is a stone or material in the catalog.
type Material struct {
	MaterialID string `json:"materialID"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	AuditFields
}

// IsDiamond reports whether the material belongs to the diamond category.
func (m Material) IsDiamond() bool {
	return strings.EqualFold(m.Category, DiamondCategory)
}
