package domain

import "github.com/shopspring/decimal"

// CategoryCharges holds the default charge parameters for a jewelry category.
type CategoryCharges struct {
	CategoryCode                string           `json:"categoryCode"`
	WastagePercent              *decimal.Decimal `json:"wastagePercent"`
	MakingChargePerGram         *decimal.Decimal `json:"makingChargePerGram"`
	CertificationChargePerCarat *decimal.Decimal `json:"certificationChargePerCarat"`
	AuditFields
}

// Merge returns a copy of c where every nil charge is taken from defaults.
// Values already present in c win.
func (c CategoryCharges) Merge(defaults CategoryCharges) CategoryCharges {
	if c.CategoryCode == "" {
		c.CategoryCode = defaults.CategoryCode
	}
	if c.WastagePercent == nil {
		c.WastagePercent = defaults.WastagePercent
	}
	if c.MakingChargePerGram == nil {
		c.MakingChargePerGram = defaults.MakingChargePerGram
	}
	if c.CertificationChargePerCarat == nil {
		c.CertificationChargePerCarat = defaults.CertificationChargePerCarat
	}
	return c
}

// Complete reports whether every charge parameter is present.
func (c CategoryCharges) Complete() bool {
	return c.WastagePercent != nil && c.MakingChargePerGram != nil && c.CertificationChargePerCarat != nil
}
