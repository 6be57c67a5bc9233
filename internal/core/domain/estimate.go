package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EstimateKind distinguishes a saved estimate from a printed bill.
type EstimateKind string

const (
	KindEstimate EstimateKind = "ESTIMATE"
	KindBill     EstimateKind = "BILL"
)

// Valid reports whether k is a known kind.
func (k EstimateKind) Valid() bool {
	return k == KindEstimate || k == KindBill
}

// NumberPrefix is the prefix of document numbers of this kind.
func (k EstimateKind) NumberPrefix() string {
	if k == KindBill {
		return "BILL"
	}
	return "EST"
}

// Estimate is a saved, flattened pricing record: the rounded breakdown plus
// the customer and item metadata it was produced for.
type Estimate struct {
	EstimateID    string           `json:"estimateID"`
	Number        string           `json:"number"`
	Kind          EstimateKind     `json:"kind"`
	CustomerName  string           `json:"customerName"`
	CustomerPhone string           `json:"customerPhone"`
	EstimateDate  time.Time        `json:"estimateDate"`
	ItemCode      string           `json:"itemCode"`
	ItemName      string           `json:"itemName"`
	GrossWeight   *decimal.Decimal `json:"grossWeight,omitempty"`
	Breakdown     PricingBreakdown `json:"breakdown"`
	AuditFields
}
