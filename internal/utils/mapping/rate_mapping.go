package mapping

import (
	"github.com/SscSPs/jewellery_billing_app/internal/core/domain"
	"github.com/SscSPs/jewellery_billing_app/internal/models"
)

// ToModelRate converts a domain Rate to a model Rate
func ToModelRate(d domain.Rate) models.Rate {
	return models.Rate{
		RateID:        d.RateID,
		RateType:      string(d.RateType),
		Value:         d.Value,
		DateEffective: d.DateEffective,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRate converts a model Rate to a domain Rate
func ToDomainRate(m models.Rate) domain.Rate {
	return domain.Rate{
		RateID:        m.RateID,
		RateType:      domain.RateType(m.RateType),
		Value:         m.Value,
		DateEffective: m.DateEffective,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
