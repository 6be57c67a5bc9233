package dto

import (
	"github.com/SscSPs/jewellery_billing_app/internal/core/domain"
	"github.com/SscSPs/jewellery_billing_app/internal/utils"
	"github.com/shopspring/decimal"
)

// ManualRates are rates typed in at the counter. They only fill gaps: a rate
// already recorded for the day always wins over a manual value.
type ManualRates struct {
	GoldRate           *decimal.Decimal `json:"goldRate,omitempty"`
	GoldRateUnit       string           `json:"goldRateUnit,omitempty" binding:"omitempty,oneof=PER_GRAM PER_10_GRAM"`
	USDToINRRate       *decimal.Decimal `json:"usdToInrRate,omitempty"`
	GSTPercent         *decimal.Decimal `json:"gstPercent,omitempty"`
	CustomsDutyPercent *decimal.Decimal `json:"customsDutyPercent,omitempty"`
	StateTaxPercent    *decimal.Decimal `json:"stateTaxPercent,omitempty"`
}

// ToSnapshot converts the manual rates to a snapshot with the gold rate per gram.
func (m ManualRates) ToSnapshot() domain.RateSnapshot {
	var s domain.RateSnapshot
	if m.GoldRate != nil {
		s = s.With(domain.RateGold24K, domain.GoldRateUnit(m.GoldRateUnit).ToPerGram(*m.GoldRate))
	}
	if m.USDToINRRate != nil {
		s = s.With(domain.RateUSDINR, *m.USDToINRRate)
	}
	if m.GSTPercent != nil {
		s = s.With(domain.RateGST, *m.GSTPercent)
	}
	if m.CustomsDutyPercent != nil {
		s = s.With(domain.RateCustomsDuty, *m.CustomsDutyPercent)
	}
	if m.StateTaxPercent != nil {
		s = s.With(domain.RateStateTax, *m.StateTaxPercent)
	}
	return s
}

// ChargesOverride replaces individual category charges for one quote.
type ChargesOverride struct {
	WastagePercent              *decimal.Decimal `json:"wastagePercent,omitempty"`
	MakingChargePerGram         *decimal.Decimal `json:"makingChargePerGram,omitempty"`
	CertificationChargePerCarat *decimal.Decimal `json:"certificationChargePerCarat,omitempty"`
}

// ToDomain converts the override to partial category charges.
func (o *ChargesOverride) ToDomain() domain.CategoryCharges {
	if o == nil {
		return domain.CategoryCharges{}
	}
	return domain.CategoryCharges{
		WastagePercent:              o.WastagePercent,
		MakingChargePerGram:         o.MakingChargePerGram,
		CertificationChargePerCarat: o.CertificationChargePerCarat,
	}
}

// QuoteItem describes an item that is not (necessarily) in the catalog.
// Missing values are reported by the calculator with the field that blocked it.
type QuoteItem struct {
	Code                string             `json:"code" binding:"max=32"`
	Name                string             `json:"name" binding:"max=100"`
	Purity              *int               `json:"purity"`
	GrossWeight         *decimal.Decimal   `json:"grossWeight,omitempty"`
	NetWeight           *decimal.Decimal   `json:"netWeight,omitempty"`
	CertificateRequired bool               `json:"certificateRequired"`
	Stones              []StoneLineRequest `json:"stones" binding:"omitempty,dive"`
}

// ToDomain converts the quote item to a domain.JewelryItem.
func (q QuoteItem) ToDomain() domain.JewelryItem {
	return domain.JewelryItem{
		Code:                q.Code,
		Name:                q.Name,
		Purity:              q.Purity,
		GrossWeight:         q.GrossWeight,
		NetWeight:           q.NetWeight,
		CertificateRequired: q.CertificateRequired,
		Stones:              ToStoneLines(q.Stones),
	}
}

// QuoteRequest prices an ad hoc item.
// Charges default to those of the category derived from Item.Code.
type QuoteRequest struct {
	Mode        string           `json:"mode" binding:"required,billingmode"`
	Item        QuoteItem        `json:"item"`
	Charges     *ChargesOverride `json:"charges,omitempty"`
	ManualRates ManualRates      `json:"manualRates"`
}

// PriceItemRequest prices a catalog item.
type PriceItemRequest struct {
	Mode                string           `json:"mode" binding:"required,billingmode"`
	CertificateRequired *bool            `json:"certificateRequired,omitempty"`
	Charges             *ChargesOverride `json:"charges,omitempty"`
	ManualRates         ManualRates      `json:"manualRates"`
}

// BatchPriceRequest prices several catalog items with one set of rates.
type BatchPriceRequest struct {
	Mode        string      `json:"mode" binding:"required,billingmode"`
	ItemCodes   []string    `json:"itemCodes" binding:"required,min=1,max=200,dive,required"`
	ManualRates ManualRates `json:"manualRates"`
}

// StoneLineCostResponse is a priced stone line.
type StoneLineCostResponse struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	WeightCarats string `json:"weightCarats"`
	RatePerCarat string `json:"ratePerCarat"`
	Cost         string `json:"cost"`
	IsDiamond    bool   `json:"isDiamond"`
}

// BreakdownResponse is the presented price build-up.
// Amounts and weights carry two decimal places; rates and percentages are as entered.
type BreakdownResponse struct {
	Mode                string                  `json:"mode"`
	NetWeight           string                  `json:"netWeight"`
	Purity              int                     `json:"purity"`
	FineWeight          string                  `json:"fineWeight"`
	GoldRatePerGram     string                  `json:"goldRatePerGram"`
	GoldPricePerGram    string                  `json:"goldPricePerGram"`
	GoldValue           string                  `json:"goldValue"`
	WastageAmount       string                  `json:"wastageAmount"`
	MakingAmount        string                  `json:"makingAmount"`
	TotalGoldAmount     string                  `json:"totalGoldAmount"`
	StoneLines          []StoneLineCostResponse `json:"stoneLines"`
	StoneTotal          string                  `json:"stoneTotal"`
	DiamondCarats       string                  `json:"diamondCarats"`
	CertificationCharge string                  `json:"certificationCharge"`
	Subtotal            string                  `json:"subtotal"`
	TaxPercent          string                  `json:"taxPercent"`
	TaxAmount           string                  `json:"taxAmount"`
	GrandTotal          string                  `json:"grandTotal"`
	USDToINRRate        *string                 `json:"usdToInrRate,omitempty"`
	SubtotalUSD         *string                 `json:"subtotalUSD,omitempty"`
	TaxAmountUSD        *string                 `json:"taxAmountUSD,omitempty"`
	GrandTotalUSD       *string                 `json:"grandTotalUSD,omitempty"`
}

// ToBreakdownResponse rounds a full precision breakdown for presentation.
func ToBreakdownResponse(b *domain.PricingBreakdown) BreakdownResponse {
	p := domain.PresentationPlaces
	money := func(d decimal.Decimal) string { return utils.FormatWithPrecision(d, p) }
	moneyPtr := func(d *decimal.Decimal) *string {
		if d == nil {
			return nil
		}
		s := money(*d)
		return &s
	}

	stones := make([]StoneLineCostResponse, len(b.StoneLines))
	for i, s := range b.StoneLines {
		stones[i] = StoneLineCostResponse{
			Code:         s.Code,
			Name:         s.Name,
			WeightCarats: s.WeightCarats.String(),
			RatePerCarat: s.RatePerCarat.String(),
			Cost:         money(s.Cost),
			IsDiamond:    s.IsDiamond,
		}
	}

	resp := BreakdownResponse{
		Mode:                string(b.Mode),
		NetWeight:           money(b.NetWeight),
		Purity:              b.Purity,
		FineWeight:          money(b.FineWeight),
		GoldRatePerGram:     b.GoldRatePerGram.String(),
		GoldPricePerGram:    money(b.GoldPricePerGram),
		GoldValue:           money(b.GoldValue),
		WastageAmount:       money(b.WastageAmount),
		MakingAmount:        money(b.MakingAmount),
		TotalGoldAmount:     money(b.TotalGoldAmount),
		StoneLines:          stones,
		StoneTotal:          money(b.StoneTotal),
		DiamondCarats:       utils.FormatWithPrecision(b.DiamondCarats, domain.CaratPlaces),
		CertificationCharge: money(b.CertificationCharge),
		Subtotal:            money(b.Subtotal),
		TaxPercent:          b.TaxPercent.String(),
		TaxAmount:           money(b.TaxAmount),
		GrandTotal:          money(b.GrandTotal),
		SubtotalUSD:         moneyPtr(b.SubtotalUSD),
		TaxAmountUSD:        moneyPtr(b.TaxAmountUSD),
		GrandTotalUSD:       moneyPtr(b.GrandTotalUSD),
	}
	if b.USDToINRRate != nil {
		rate := b.USDToINRRate.String()
		resp.USDToINRRate = &rate
	}
	return resp
}

// ErrorResponse is the body of every failed request. Field and Code are set
// when a pricing input blocked the calculation.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
	Code  string `json:"code,omitempty"`
}

// BatchPriceItemResponse is the outcome for one item of a batch.
type BatchPriceItemResponse struct {
	ItemCode  string             `json:"itemCode"`
	Breakdown *BreakdownResponse `json:"breakdown,omitempty"`
	Error     *ErrorResponse     `json:"error,omitempty"`
}

// BatchPriceResponse lists batch outcomes in request order.
type BatchPriceResponse struct {
	Results []BatchPriceItemResponse `json:"results"`
}
