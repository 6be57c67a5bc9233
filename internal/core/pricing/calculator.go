// Package pricing computes the price build-up of a jewelry item from its
// physical attributes, its category charges and the day's rates.
//
// Everything here is pure: no I/O, no shared state. The same Input always
// yields the same breakdown, so callers may price concurrently and retry freely.
package pricing

import (
	"github.com/SscSPs/jewellery_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Input is everything needed to price one item.
type Input struct {
	Mode         domain.BillingMode
	Item         domain.JewelryItem
	Charges      domain.CategoryCharges
	Rates        domain.RateSnapshot
	DiamondCodes DiamondCodeSet
}

// Compute prices in. It either returns a complete breakdown at full precision
// or a *FieldError naming the input that blocked it; there is no partial result.
func Compute(in Input) (domain.PricingBreakdown, error) {
	if !in.Mode.Valid() {
		return domain.PricingBreakdown{}, invalidInput(FieldMode, "must be INR or USD")
	}

	purity, err := resolvePurity(in.Item.Purity)
	if err != nil {
		return domain.PricingBreakdown{}, err
	}
	netWeight, err := ResolveNetWeight(in.Item)
	if err != nil {
		return domain.PricingBreakdown{}, err
	}
	stones, err := resolveStones(in.Item.Stones, in.DiamondCodes)
	if err != nil {
		return domain.PricingBreakdown{}, err
	}
	wastagePercent, err := nonNegative(in.Charges.WastagePercent, FieldWastagePercent, missingInput)
	if err != nil {
		return domain.PricingBreakdown{}, err
	}
	makingCharge, err := nonNegative(in.Charges.MakingChargePerGram, FieldMakingCharge, missingInput)
	if err != nil {
		return domain.PricingBreakdown{}, err
	}
	goldRate, err := nonNegative(in.Rates.GoldRatePerGram, FieldGoldRate, missingRate)
	if err != nil {
		return domain.PricingBreakdown{}, err
	}

	b := domain.PricingBreakdown{
		Mode:            in.Mode,
		NetWeight:       netWeight,
		Purity:          purity,
		GoldRatePerGram: goldRate,
		StoneLines:      stones,
	}

	b.FineWeight = FineWeight(netWeight, purity)
	b.GoldPricePerGram = GoldPricePerGram(goldRate, purity)
	b.GoldValue = GoldValue(b.GoldPricePerGram, b.FineWeight)
	b.WastageAmount = WastageAmount(netWeight, wastagePercent, b.GoldPricePerGram)
	b.MakingAmount = MakingAmount(netWeight, makingCharge)
	b.TotalGoldAmount = TotalGoldAmount(b.GoldValue, b.WastageAmount, b.MakingAmount)
	b.StoneTotal = StoneTotal(stones)
	b.DiamondCarats = DiamondCarats(stones, in.DiamondCodes)

	certify := in.Item.CertificateRequired && b.DiamondCarats.IsPositive()
	chargePerCarat := decimal.Zero
	if certify {
		chargePerCarat, err = nonNegative(in.Charges.CertificationChargePerCarat, FieldCertificationCharge, missingInput)
		if err != nil {
			return domain.PricingBreakdown{}, err
		}
	}
	b.CertificationCharge = CertificationCharge(b.DiamondCarats, certify, chargePerCarat)
	b.Subtotal = Subtotal(b.TotalGoldAmount, b.StoneTotal, b.CertificationCharge)

	tax, err := computeTax(in.Mode, b.Subtotal, in.Rates)
	if err != nil {
		return domain.PricingBreakdown{}, err
	}
	b.TaxPercent = tax.TaxPercent
	b.TaxAmount = tax.TaxAmount
	b.GrandTotal = tax.GrandTotal
	if in.Mode == domain.ModeUSD {
		rate := *in.Rates.USDToINRRate
		b.USDToINRRate = &rate
		b.SubtotalUSD = tax.SubtotalUSD
		b.TaxAmountUSD = tax.TaxAmountUSD
		b.GrandTotalUSD = tax.GrandTotalUSD
	}
	return b, nil
}

func computeTax(mode domain.BillingMode, subtotal decimal.Decimal, rates domain.RateSnapshot) (TaxResult, error) {
	if mode == domain.ModeINR {
		gst, err := nonNegative(rates.GSTPercent, FieldGSTPercent, missingRate)
		if err != nil {
			return TaxResult{}, err
		}
		return ApplyGST(subtotal, gst), nil
	}

	usdRate, err := nonNegative(rates.USDToINRRate, FieldUSDToINRRate, missingRate)
	if err != nil {
		return TaxResult{}, err
	}
	if usdRate.IsZero() {
		return TaxResult{}, divisionByZero(FieldUSDToINRRate)
	}
	customs, err := nonNegative(rates.CustomsDutyPercent, FieldCustomsDutyPercent, missingRate)
	if err != nil {
		return TaxResult{}, err
	}
	stateTax, err := nonNegative(rates.StateTaxPercent, FieldStateTaxPercent, missingRate)
	if err != nil {
		return TaxResult{}, err
	}
	return ApplyUSDDuty(subtotal, usdRate, customs, stateTax)
}

// ResolveNetWeight returns the item's net weight, deriving it as gross weight
// minus the stones' weight (carats converted to grams) when it was not given.
// A given net weight may not exceed a given gross weight.
func ResolveNetWeight(item domain.JewelryItem) (decimal.Decimal, error) {
	if item.NetWeight != nil {
		if item.NetWeight.IsNegative() {
			return decimal.Zero, invalidInput(FieldNetWeight, "must not be negative")
		}
		if item.GrossWeight != nil {
			if item.GrossWeight.IsNegative() {
				return decimal.Zero, invalidInput(FieldGrossWeight, "must not be negative")
			}
			if item.NetWeight.GreaterThan(*item.GrossWeight) {
				return decimal.Zero, invalidInput(FieldNetWeight, "must not exceed gross weight")
			}
		}
		return *item.NetWeight, nil
	}

	gross, err := nonNegative(item.GrossWeight, FieldGrossWeight, missingInput)
	if err != nil {
		return decimal.Zero, err
	}
	stoneCarats := decimal.Zero
	for i, stone := range item.Stones {
		w, err := nonNegative(stone.WeightCarats, stoneField(i, "weightCarats"), missingInput)
		if err != nil {
			return decimal.Zero, err
		}
		stoneCarats = stoneCarats.Add(w)
	}
	net := gross.Sub(stoneCarats.Mul(domain.GramsPerCarat))
	if net.IsNegative() {
		return decimal.Zero, invalidInput(FieldNetWeight, "stone weight exceeds gross weight")
	}
	return net, nil
}

func resolvePurity(purity *int) (int, error) {
	if purity == nil {
		return 0, missingInput(FieldPurity)
	}
	if *purity < domain.MinPurityKarat || *purity > domain.MaxPurityKarat {
		return 0, invalidInput(FieldPurity, "must be between 1 and 24 karat")
	}
	return *purity, nil
}

func resolveStones(lines []domain.StoneLine, diamondCodes DiamondCodeSet) ([]domain.StoneLineCost, error) {
	costs := make([]domain.StoneLineCost, 0, len(lines))
	for i, line := range lines {
		weight, err := nonNegative(line.WeightCarats, stoneField(i, "weightCarats"), missingInput)
		if err != nil {
			return nil, err
		}
		rate, err := nonNegative(line.RatePerCarat, stoneField(i, "ratePerCarat"), missingInput)
		if err != nil {
			return nil, err
		}
		costs = append(costs, domain.StoneLineCost{
			Code:         line.Code,
			Name:         line.Name,
			WeightCarats: weight,
			RatePerCarat: rate,
			Cost:         StoneCost(weight, rate),
			IsDiamond:    diamondCodes.Contains(line.Code),
		})
	}
	return costs, nil
}

// nonNegative dereferences v, reporting absence through onMissing and
// rejecting negative values. Absent is never read as zero.
func nonNegative(v *decimal.Decimal, field string, onMissing func(string) error) (decimal.Decimal, error) {
	if v == nil {
		return decimal.Zero, onMissing(field)
	}
	if v.IsNegative() {
		return decimal.Zero, invalidInput(field, "must not be negative")
	}
	return *v, nil
}
