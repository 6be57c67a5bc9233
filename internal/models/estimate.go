package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EstimateStoneLine is one priced stone line, stored in estimates.stone_lines as JSONB.
type EstimateStoneLine struct {
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	WeightCarats decimal.Decimal `json:"weightCarats"`
	RatePerCarat decimal.Decimal `json:"ratePerCarat"`
	Cost         decimal.Decimal `json:"cost"`
	IsDiamond    bool            `json:"isDiamond"`
}

// Estimate is a row of estimates: the customer metadata plus the flattened,
// rounded price breakdown.
type Estimate struct {
	EstimateID          string              `db:"estimate_id"`
	Number              string              `db:"number"`
	Kind                string              `db:"kind"`
	Mode                string              `db:"mode"`
	CustomerName        string              `db:"customer_name"`
	CustomerPhone       string              `db:"customer_phone"`
	EstimateDate        time.Time           `db:"estimate_date"`
	ItemCode            string              `db:"item_code"`
	ItemName            string              `db:"item_name"`
	GrossWeight         decimal.NullDecimal `db:"gross_weight"`
	NetWeight           decimal.Decimal     `db:"net_weight"`
	Purity              int                 `db:"purity"`
	FineWeight          decimal.Decimal     `db:"fine_weight"`
	GoldRatePerGram     decimal.Decimal     `db:"gold_rate_per_gram"`
	GoldPricePerGram    decimal.Decimal     `db:"gold_price_per_gram"`
	GoldValue           decimal.Decimal     `db:"gold_value"`
	WastageAmount       decimal.Decimal     `db:"wastage_amount"`
	MakingAmount        decimal.Decimal     `db:"making_amount"`
	TotalGoldAmount     decimal.Decimal     `db:"total_gold_amount"`
	StoneLines          []EstimateStoneLine `db:"stone_lines"`
	StoneTotal          decimal.Decimal     `db:"stone_total"`
	DiamondCarats       decimal.Decimal     `db:"diamond_carats"`
	CertificationCharge decimal.Decimal     `db:"certification_charge"`
	Subtotal            decimal.Decimal     `db:"subtotal"`
	TaxPercent          decimal.Decimal     `db:"tax_percent"`
	TaxAmount           decimal.Decimal     `db:"tax_amount"`
	GrandTotal          decimal.Decimal     `db:"grand_total"`
	USDToINRRate        decimal.NullDecimal `db:"usd_to_inr_rate"`
	SubtotalUSD         decimal.NullDecimal `db:"subtotal_usd"`
	TaxAmountUSD        decimal.NullDecimal `db:"tax_amount_usd"`
	GrandTotalUSD       decimal.NullDecimal `db:"grand_total_usd"`
	AuditFields
}
