package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateType identifies one daily rate metric.
type RateType string

const (
	RateGold24K     RateType = "GOLD_24K"     // 24K gold, per gram
	RateUSDINR      RateType = "USD_INR"      // rupees per US dollar
	RateGST         RateType = "GST"          // percent
	RateCustomsDuty RateType = "CUSTOMS_DUTY" // percent
	RateStateTax    RateType = "STATE_TAX"    // percent
)

// AllRateTypes lists every rate type in display order.
var AllRateTypes = []RateType{RateGold24K, RateUSDINR, RateGST, RateCustomsDuty, RateStateTax}

// Valid reports whether t is a known rate type.
func (t RateType) Valid() bool {
	for _, known := range AllRateTypes {
		if t == known {
			return true
		}
	}
	return false
}

// GoldRateUnit is the unit a gold rate is quoted in at the boundary.
// Storage and pricing always use per gram.
type GoldRateUnit string

const (
	PerGram     GoldRateUnit = "PER_GRAM"
	PerTenGrams GoldRateUnit = "PER_10_GRAM"
)

// ToPerGram converts a gold rate quoted in unit to the per-gram rate.
func (u GoldRateUnit) ToPerGram(value decimal.Decimal) decimal.Decimal {
	if u == PerTenGrams {
		return value.Div(decimal.NewFromInt(10))
	}
	return value
}

// Rate is one recorded daily value for a RateType.
// Once recorded for a date it is never overwritten.
type Rate struct {
	RateID        string          `json:"rateID"`
	RateType      RateType        `json:"rateType"`
	Value         decimal.Decimal `json:"value"`
	DateEffective time.Time       `json:"dateEffective"`
	AuditFields
}

// RateSnapshot is the set of rates in force for a pricing date.
// A nil field means no value is known; pricing must not proceed on it.
type RateSnapshot struct {
	Date               time.Time        `json:"date"`
	GoldRatePerGram    *decimal.Decimal `json:"goldRatePerGram"`
	USDToINRRate       *decimal.Decimal `json:"usdToInrRate"`
	GSTPercent         *decimal.Decimal `json:"gstPercent"`
	CustomsDutyPercent *decimal.Decimal `json:"customsDutyPercent"`
	StateTaxPercent    *decimal.Decimal `json:"stateTaxPercent"`
}

// Get returns the value held for t, or nil.
func (s RateSnapshot) Get(t RateType) *decimal.Decimal {
	switch t {
	case RateGold24K:
		return s.GoldRatePerGram
	case RateUSDINR:
		return s.USDToINRRate
	case RateGST:
		return s.GSTPercent
	case RateCustomsDuty:
		return s.CustomsDutyPercent
	case RateStateTax:
		return s.StateTaxPercent
	}
	return nil
}

// With returns a copy of s holding value for t.
func (s RateSnapshot) With(t RateType, value decimal.Decimal) RateSnapshot {
	v := value
	switch t {
	case RateGold24K:
		s.GoldRatePerGram = &v
	case RateUSDINR:
		s.USDToINRRate = &v
	case RateGST:
		s.GSTPercent = &v
	case RateCustomsDuty:
		s.CustomsDutyPercent = &v
	case RateStateTax:
		s.StateTaxPercent = &v
	}
	return s
}

// FillMissing returns a copy of s where absent rates are taken from manual.
// Rates already recorded for the day are never replaced.
func (s RateSnapshot) FillMissing(manual RateSnapshot) RateSnapshot {
	for _, t := range AllRateTypes {
		if s.Get(t) == nil {
			if v := manual.Get(t); v != nil {
				s = s.With(t, *v)
			}
		}
	}
	return s
}

// Missing lists the rate types with no value.
func (s RateSnapshot) Missing() []RateType {
	var missing []RateType
	for _, t := range AllRateTypes {
		if s.Get(t) == nil {
			missing = append(missing, t)
		}
	}
	return missing
}
