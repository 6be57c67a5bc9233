package models

import "github.com/shopspring/decimal"

// CategoryCharges is a row of category_charges.
type CategoryCharges struct {
	CategoryCode                string          `db:"category_code"`
	WastagePercent              decimal.Decimal `db:"wastage_percent"`
	MakingChargePerGram         decimal.Decimal `db:"making_charge_per_gram"`
	CertificationChargePerCarat decimal.Decimal `db:"certification_charge_per_carat"`
	AuditFields
}

// Material is a row of materials.
type Material struct {
	MaterialID string `db:"material_id"`
	Code       string `db:"code"`
	Name       string `db:"name"`
	Category   string `db:"category"`
	AuditFields
}

// JewelryItem is a row of jewelry_items. Net weight is stored resolved.
type JewelryItem struct {
	Code                string          `db:"code"`
	Name                string          `db:"name"`
	Purity              int             `db:"purity"`
	GrossWeight         decimal.Decimal `db:"gross_weight"`
	NetWeight           decimal.Decimal `db:"net_weight"`
	CertificateRequired bool            `db:"certificate_required"`
	AuditFields
}

// JewelryStone is a row of jewelry_item_stones, ordered by line_no within an item.
type JewelryStone struct {
	ItemCode     string          `db:"item_code"`
	LineNo       int             `db:"line_no"`
	Code         string          `db:"stone_code"`
	Name         string          `db:"stone_name"`
	WeightCarats decimal.Decimal `db:"weight_carats"`
	RatePerCarat decimal.Decimal `db:"rate_per_carat"`
}
