package mapping

import (
	"github.com/SscSPs/jewellery_billing_app/internal/core/domain"
	"github.com/SscSPs/jewellery_billing_app/internal/models"
)

// ToModelCategoryCharges converts domain charges to a row. Absent charges are stored as zero;
// the service only persists complete charge sets.
func ToModelCategoryCharges(d domain.CategoryCharges) models.CategoryCharges {
	return models.CategoryCharges{
		CategoryCode:                d.CategoryCode,
		WastagePercent:              valueOrZero(d.WastagePercent),
		MakingChargePerGram:         valueOrZero(d.MakingChargePerGram),
		CertificationChargePerCarat: valueOrZero(d.CertificationChargePerCarat),
		AuditFields:                 ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCategoryCharges converts a row to domain charges.
func ToDomainCategoryCharges(m models.CategoryCharges) domain.CategoryCharges {
	return domain.CategoryCharges{
		CategoryCode:                m.CategoryCode,
		WastagePercent:              ptr(m.WastagePercent),
		MakingChargePerGram:         ptr(m.MakingChargePerGram),
		CertificationChargePerCarat: ptr(m.CertificationChargePerCarat),
		AuditFields:                 ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelMaterial converts a domain Material to a model Material
func ToModelMaterial(d domain.Material) models.Material {
	return models.Material{
		MaterialID:  d.MaterialID,
		Code:        d.Code,
		Name:        d.Name,
		Category:    d.Category,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainMaterial converts a model Material to a domain Material
func ToDomainMaterial(m models.Material) domain.Material {
	return domain.Material{
		MaterialID:  m.MaterialID,
		Code:        m.Code,
		Name:        m.Name,
		Category:    m.Category,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelJewelryItem splits a domain item into its row and its stone rows.
func ToModelJewelryItem(d domain.JewelryItem) (models.JewelryItem, []models.JewelryStone) {
	item := models.JewelryItem{
		Code:                d.Code,
		Name:                d.Name,
		GrossWeight:         valueOrZero(d.GrossWeight),
		NetWeight:           valueOrZero(d.NetWeight),
		CertificateRequired: d.CertificateRequired,
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
	if d.Purity != nil {
		item.Purity = *d.Purity
	}

	stones := make([]models.JewelryStone, len(d.Stones))
	for i, s := range d.Stones {
		stones[i] = models.JewelryStone{
			ItemCode:     d.Code,
			LineNo:       i + 1,
			Code:         s.Code,
			Name:         s.Name,
			WeightCarats: valueOrZero(s.WeightCarats),
			RatePerCarat: valueOrZero(s.RatePerCarat),
		}
	}
	return item, stones
}

// ToDomainJewelryItem joins an item row with its stone rows.
func ToDomainJewelryItem(m models.JewelryItem, stones []models.JewelryStone) domain.JewelryItem {
	item := domain.JewelryItem{
		Code:                m.Code,
		Name:                m.Name,
		Purity:              ptr(m.Purity),
		GrossWeight:         ptr(m.GrossWeight),
		NetWeight:           ptr(m.NetWeight),
		CertificateRequired: m.CertificateRequired,
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
	if len(stones) > 0 {
		item.Stones = make([]domain.StoneLine, len(stones))
		for i, s := range stones {
			item.Stones[i] = domain.StoneLine{
				Code:         s.Code,
				Name:         s.Name,
				WeightCarats: ptr(s.WeightCarats),
				RatePerCarat: ptr(s.RatePerCarat),
			}
		}
	}
	return item
}
