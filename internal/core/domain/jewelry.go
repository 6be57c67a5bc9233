package domain

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// Purity bounds in karats (parts of gold out of 24).
const (
	MinPurityKarat = 1
	MaxPurityKarat = 24
)

// GramsPerCarat converts stone weight in carats to grams.
var GramsPerCarat = decimal.RequireFromString("0.2")

// JewelryItem is a finished piece as it is priced.
// Optional numeric fields are pointers so that "not entered" is never confused with zero.
type JewelryItem struct {
	Code                string           `json:"code"`
	Name                string           `json:"name"`
	Purity              *int             `json:"purity"`      // karat, 1-24
	GrossWeight         *decimal.Decimal `json:"grossWeight"` // grams
	NetWeight           *decimal.Decimal `json:"netWeight"`   // grams; derived from gross and stones when nil
	CertificateRequired bool             `json:"certificateRequired"`
	Stones              []StoneLine      `json:"stones"`
	AuditFields
}

// StoneLine is one stone/material entry set in a jewelry item.
type StoneLine struct {
	Code         string           `json:"code"`
	Name         string           `json:"name"`
	WeightCarats *decimal.Decimal `json:"weightCarats"`
	RatePerCarat *decimal.Decimal `json:"ratePerCarat"`
}

// CategoryCode derives the charge category from an item code: its leading
// letters, upper-cased ("rg0012" -> "RG"). Returns "" when the code has no
// alphabetic prefix.
func CategoryCode(itemCode string) string {
	itemCode = strings.TrimSpace(itemCode)
	end := 0
	for i, r := range itemCode {
		if !unicode.IsLetter(r) {
			break
		}
		end = i + len(string(r))
	}
	return strings.ToUpper(itemCode[:end])
}
