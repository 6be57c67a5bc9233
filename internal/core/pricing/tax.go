package pricing

import (
	"github.com/shopspring/decimal"
)

// TaxResult is the tax portion of a breakdown. USD fields are set only in dual-currency mode.
type TaxResult struct {
	TaxPercent    decimal.Decimal
	TaxAmount     decimal.Decimal
	GrandTotal    decimal.Decimal
	SubtotalUSD   *decimal.Decimal
	TaxAmountUSD  *decimal.Decimal
	GrandTotalUSD *decimal.Decimal
}

// ApplyGST adds GST to an INR subtotal.
func ApplyGST(subtotal, gstPercent decimal.Decimal) TaxResult {
	tax := subtotal.Mul(gstPercent).Div(hundred)
	return TaxResult{
		TaxPercent: gstPercent,
		TaxAmount:  tax,
		GrandTotal: subtotal.Add(tax),
	}
}

// ApplyUSDDuty converts an INR subtotal to dollars, levies customs duty plus
// state tax on the dollar value and converts only the tax back to rupees.
// The INR grand total is subtotal + tax converted back, so grandTotalUSD x rate
// is not expected to equal the INR grand total.
func ApplyUSDDuty(subtotal, usdToINRRate, customsDutyPercent, stateTaxPercent decimal.Decimal) (TaxResult, error) {
	if !usdToINRRate.IsPositive() {
		return TaxResult{}, divisionByZero(FieldUSDToINRRate)
	}

	taxPercent := customsDutyPercent.Add(stateTaxPercent)
	subtotalUSD := subtotal.Div(usdToINRRate)
	taxUSD := subtotalUSD.Mul(taxPercent).Div(hundred)
	grandTotalUSD := subtotalUSD.Add(taxUSD)
	taxINR := taxUSD.Mul(usdToINRRate)

	return TaxResult{
		TaxPercent:    taxPercent,
		TaxAmount:     taxINR,
		GrandTotal:    subtotal.Add(taxINR),
		SubtotalUSD:   &subtotalUSD,
		TaxAmountUSD:  &taxUSD,
		GrandTotalUSD: &grandTotalUSD,
	}, nil
}
