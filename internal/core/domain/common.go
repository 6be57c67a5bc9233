package domain

import "time"

// AuditFields holds standard audit information for domain entities.
// CreatedBy is a free-form operator name; there is no user model behind it.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// NewAuditFields stamps creation and update fields with the same instant and operator.
func NewAuditFields(now time.Time, operator string) AuditFields {
	return AuditFields{
		CreatedAt:     now,
		CreatedBy:     operator,
		LastUpdatedAt: now,
		LastUpdatedBy: operator,
	}
}
