package domain

import "github.com/shopspring/decimal"

// BillingMode selects the tax rule set and currency presentation.
type BillingMode string

const (
	// ModeINR prices in rupees and adds GST on the subtotal.
	ModeINR BillingMode = "INR"
	// ModeUSD converts the subtotal to dollars, applies customs duty plus state
	// tax in dollar space and reports totals in both currencies.
	ModeUSD BillingMode = "USD"
)

// Valid reports whether m is a known billing mode.
func (m BillingMode) Valid() bool {
	return m == ModeINR || m == ModeUSD
}

// PresentationPlaces is the number of decimal places monetary values are shown with.
const PresentationPlaces int32 = 2

// CaratPlaces is the number of decimal places carat weights are kept and shown with.
const CaratPlaces int32 = 3

// StoneLineCost is a stone line with its computed cost.
type StoneLineCost struct {
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	WeightCarats decimal.Decimal `json:"weightCarats"`
	RatePerCarat decimal.Decimal `json:"ratePerCarat"`
	Cost         decimal.Decimal `json:"cost"`
	IsDiamond    bool            `json:"isDiamond"`
}

// PricingBreakdown is the full price build-up of one item.
// Values are kept at full precision; call Rounded before presenting them.
// The USD fields are nil in INR mode.
type PricingBreakdown struct {
	Mode                BillingMode      `json:"mode"`
	NetWeight           decimal.Decimal  `json:"netWeight"`
	Purity              int              `json:"purity"`
	FineWeight          decimal.Decimal  `json:"fineWeight"`
	GoldRatePerGram     decimal.Decimal  `json:"goldRatePerGram"`
	GoldPricePerGram    decimal.Decimal  `json:"goldPricePerGram"`
	GoldValue           decimal.Decimal  `json:"goldValue"`
	WastageAmount       decimal.Decimal  `json:"wastageAmount"`
	MakingAmount        decimal.Decimal  `json:"makingAmount"`
	TotalGoldAmount     decimal.Decimal  `json:"totalGoldAmount"`
	StoneLines          []StoneLineCost  `json:"stoneLines"`
	StoneTotal          decimal.Decimal  `json:"stoneTotal"`
	DiamondCarats       decimal.Decimal  `json:"diamondCarats"`
	CertificationCharge decimal.Decimal  `json:"certificationCharge"`
	Subtotal            decimal.Decimal  `json:"subtotal"`
	TaxPercent          decimal.Decimal  `json:"taxPercent"`
	TaxAmount           decimal.Decimal  `json:"taxAmount"`
	GrandTotal          decimal.Decimal  `json:"grandTotal"`
	USDToINRRate        *decimal.Decimal `json:"usdToInrRate,omitempty"`
	SubtotalUSD         *decimal.Decimal `json:"subtotalUSD,omitempty"`
	TaxAmountUSD        *decimal.Decimal `json:"taxAmountUSD,omitempty"`
	GrandTotalUSD       *decimal.Decimal `json:"grandTotalUSD,omitempty"`
}

// Rounded returns a copy with every monetary and weight value rounded to places.
// Diamond carats keep CaratPlaces. Rates and percentages are left untouched.
// Purity and mode are copied as is.
func (b PricingBreakdown) Rounded(places int32) PricingBreakdown {
	r := b
	r.NetWeight = b.NetWeight.Round(places)
	r.FineWeight = b.FineWeight.Round(places)
	r.GoldPricePerGram = b.GoldPricePerGram.Round(places)
	r.GoldValue = b.GoldValue.Round(places)
	r.WastageAmount = b.WastageAmount.Round(places)
	r.MakingAmount = b.MakingAmount.Round(places)
	r.TotalGoldAmount = b.TotalGoldAmount.Round(places)
	r.StoneTotal = b.StoneTotal.Round(places)
	r.DiamondCarats = b.DiamondCarats.Round(CaratPlaces)
	r.CertificationCharge = b.CertificationCharge.Round(places)
	r.Subtotal = b.Subtotal.Round(places)
	r.TaxAmount = b.TaxAmount.Round(places)
	r.GrandTotal = b.GrandTotal.Round(places)
	r.SubtotalUSD = roundPtr(b.SubtotalUSD, places)
	r.TaxAmountUSD = roundPtr(b.TaxAmountUSD, places)
	r.GrandTotalUSD = roundPtr(b.GrandTotalUSD, places)

	if b.StoneLines != nil {
		r.StoneLines = make([]StoneLineCost, len(b.StoneLines))
		for i, line := range b.StoneLines {
			line.Cost = line.Cost.Round(places)
			r.StoneLines[i] = line
		}
	}
	return r
}

func roundPtr(d *decimal.Decimal, places int32) *decimal.Decimal {
	if d == nil {
		return nil
	}
	v := d.Round(places)
	return &v
}
