package mapping

import (
	"github.com/SscSPs/jewellery_billing_app/internal/core/domain"
	"github.com/SscSPs/jewellery_billing_app/internal/models"
)

// ToModelEstimate flattens a domain Estimate into its row.
func ToModelEstimate(d domain.Estimate) models.Estimate {
	b := d.Breakdown
	stones := make([]models.EstimateStoneLine, len(b.StoneLines))
	for i, s := range b.StoneLines {
		stones[i] = models.EstimateStoneLine{
			Code:         s.Code,
			Name:         s.Name,
			WeightCarats: s.WeightCarats,
			RatePerCarat: s.RatePerCarat,
			Cost:         s.Cost,
			IsDiamond:    s.IsDiamond,
		}
	}
	return models.Estimate{
		EstimateID:          d.EstimateID,
		Number:              d.Number,
		Kind:                string(d.Kind),
		Mode:                string(b.Mode),
		CustomerName:        d.CustomerName,
		CustomerPhone:       d.CustomerPhone,
		EstimateDate:        d.EstimateDate,
		ItemCode:            d.ItemCode,
		ItemName:            d.ItemName,
		GrossWeight:         toNullDecimal(d.GrossWeight),
		NetWeight:           b.NetWeight,
		Purity:              b.Purity,
		FineWeight:          b.FineWeight,
		GoldRatePerGram:     b.GoldRatePerGram,
		GoldPricePerGram:    b.GoldPricePerGram,
		GoldValue:           b.GoldValue,
		WastageAmount:       b.WastageAmount,
		MakingAmount:        b.MakingAmount,
		TotalGoldAmount:     b.TotalGoldAmount,
		StoneLines:          stones,
		StoneTotal:          b.StoneTotal,
		DiamondCarats:       b.DiamondCarats,
		CertificationCharge: b.CertificationCharge,
		Subtotal:            b.Subtotal,
		TaxPercent:          b.TaxPercent,
		TaxAmount:           b.TaxAmount,
		GrandTotal:          b.GrandTotal,
		USDToINRRate:        toNullDecimal(b.USDToINRRate),
		SubtotalUSD:         toNullDecimal(b.SubtotalUSD),
		TaxAmountUSD:        toNullDecimal(b.TaxAmountUSD),
		GrandTotalUSD:       toNullDecimal(b.GrandTotalUSD),
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEstimate rebuilds a domain Estimate from its row.
func ToDomainEstimate(m models.Estimate) domain.Estimate {
	stones := make([]domain.StoneLineCost, len(m.StoneLines))
	for i, s := range m.StoneLines {
		stones[i] = domain.StoneLineCost{
			Code:         s.Code,
			Name:         s.Name,
			WeightCarats: s.WeightCarats,
			RatePerCarat: s.RatePerCarat,
			Cost:         s.Cost,
			IsDiamond:    s.IsDiamond,
		}
	}
	return domain.Estimate{
		EstimateID:    m.EstimateID,
		Number:        m.Number,
		Kind:          domain.EstimateKind(m.Kind),
		CustomerName:  m.CustomerName,
		CustomerPhone: m.CustomerPhone,
		EstimateDate:  m.EstimateDate,
		ItemCode:      m.ItemCode,
		ItemName:      m.ItemName,
		GrossWeight:   fromNullDecimal(m.GrossWeight),
		Breakdown: domain.PricingBreakdown{
			Mode:                domain.BillingMode(m.Mode),
			NetWeight:           m.NetWeight,
			Purity:              m.Purity,
			FineWeight:          m.FineWeight,
			GoldRatePerGram:     m.GoldRatePerGram,
			GoldPricePerGram:    m.GoldPricePerGram,
			GoldValue:           m.GoldValue,
			WastageAmount:       m.WastageAmount,
			MakingAmount:        m.MakingAmount,
			TotalGoldAmount:     m.TotalGoldAmount,
			StoneLines:          stones,
			StoneTotal:          m.StoneTotal,
			DiamondCarats:       m.DiamondCarats,
			CertificationCharge: m.CertificationCharge,
			Subtotal:            m.Subtotal,
			TaxPercent:          m.TaxPercent,
			TaxAmount:           m.TaxAmount,
			GrandTotal:          m.GrandTotal,
			USDToINRRate:        fromNullDecimal(m.USDToINRRate),
			SubtotalUSD:         fromNullDecimal(m.SubtotalUSD),
			TaxAmountUSD:        fromNullDecimal(m.TaxAmountUSD),
			GrandTotalUSD:       fromNullDecimal(m.GrandTotalUSD),
		},
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
