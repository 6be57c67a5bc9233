package pricing

import (
	"strings"

	"github.com/SscSPs/jewellery_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	karatBasis = decimal.NewFromInt(domain.MaxPurityKarat)
	hundred    = decimal.NewFromInt(100)
)

// FineWeight is the pure-gold equivalent of netWeight at purityKarat.
func FineWeight(netWeight decimal.Decimal, purityKarat int) decimal.Decimal {
	return netWeight.Mul(decimal.NewFromInt(int64(purityKarat))).Div(karatBasis)
}

// GoldPricePerGram scales the 24K per-gram rate to purityKarat.
func GoldPricePerGram(goldRate24kPerGram decimal.Decimal, purityKarat int) decimal.Decimal {
	return goldRate24kPerGram.Mul(decimal.NewFromInt(int64(purityKarat))).Div(karatBasis)
}

// GoldValue prices the fine weight.
func GoldValue(goldPricePerGram, fineWeight decimal.Decimal) decimal.Decimal {
	return goldPricePerGram.Mul(fineWeight)
}

// WastageAmount charges wastagePercent of the net weight at the karat gold price.
// The basis is net weight (not fine weight) and the karat price (not 24K).
func WastageAmount(netWeight, wastagePercent, goldPricePerGram decimal.Decimal) decimal.Decimal {
	return netWeight.Mul(wastagePercent).Div(hundred).Mul(goldPricePerGram)
}

// MakingAmount is the labour charge on the net weight.
func MakingAmount(netWeight, makingChargePerGram decimal.Decimal) decimal.Decimal {
	return netWeight.Mul(makingChargePerGram)
}

// TotalGoldAmount sums gold value, wastage and making.
func TotalGoldAmount(goldValue, wastageAmount, makingAmount decimal.Decimal) decimal.Decimal {
	return goldValue.Add(wastageAmount).Add(makingAmount)
}

// StoneCost is the cost of one stone line.
func StoneCost(weightCarats, ratePerCarat decimal.Decimal) decimal.Decimal {
	return weightCarats.Mul(ratePerCarat)
}

// StoneTotal sums weight x rate over lines. An empty list costs zero.
func StoneTotal(lines []domain.StoneLineCost) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(StoneCost(line.WeightCarats, line.RatePerCarat))
	}
	return total
}

// DiamondCodeSet is a set of material codes in the diamond category.
type DiamondCodeSet map[string]struct{}

// NewDiamondCodeSet builds a set from codes; matching ignores case and surrounding space.
func NewDiamondCodeSet(codes []string) DiamondCodeSet {
	set := make(DiamondCodeSet, len(codes))
	for _, code := range codes {
		set[normalizeCode(code)] = struct{}{}
	}
	return set
}

// Contains reports whether code is a diamond code.
func (s DiamondCodeSet) Contains(code string) bool {
	_, ok := s[normalizeCode(code)]
	return ok
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// DiamondCarats sums the carat weight of lines whose code is in diamondCodes.
func DiamondCarats(lines []domain.StoneLineCost, diamondCodes DiamondCodeSet) decimal.Decimal {
	carats := decimal.Zero
	for _, line := range lines {
		if diamondCodes.Contains(line.Code) {
			carats = carats.Add(line.WeightCarats)
		}
	}
	return carats
}

// CertificationCharge is diamondCarats x chargePerCarat when certification is
// required, zero otherwise.
func CertificationCharge(diamondCarats decimal.Decimal, certificationRequired bool, chargePerCarat decimal.Decimal) decimal.Decimal {
	if !certificationRequired {
		return decimal.Zero
	}
	return diamondCarats.Mul(chargePerCarat)
}

// Subtotal sums the gold amount, stones and certification.
func Subtotal(totalGoldAmount, stoneTotal, certificationCharge decimal.Decimal) decimal.Decimal {
	return totalGoldAmount.Add(stoneTotal).Add(certificationCharge)
}
