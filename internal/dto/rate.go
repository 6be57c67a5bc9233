package dto

import (
	"time"

	"github.com/SscSPs/jewellery_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format used on the wire.
const DateLayout = "2006-01-02"

// RecordRateRequest defines the structure for recording a daily rate.
type RecordRateRequest struct {
	RateType string           `json:"rateType" binding:"required,ratetype"`
	Value    *decimal.Decimal `json:"value" binding:"required"`
	// Unit applies to GOLD_24K only. Defaults to PER_GRAM.
	Unit string `json:"unit,omitempty" binding:"omitempty,oneof=PER_GRAM PER_10_GRAM"`
	// DateEffective defaults to today in the business timezone.
	DateEffective string `json:"dateEffective,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

// ListRatesParams defines the query parameters for listing rates.
type ListRatesParams struct {
	RateType string `form:"type" binding:"omitempty,ratetype"`
	From     string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To       string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Limit    int    `form:"limit" binding:"omitempty,min=1,max=500"`
}

// RateResponse defines the structure for API responses containing a rate.
type RateResponse struct {
	RateID        string          `json:"rateID"`
	RateType      string          `json:"rateType"`
	Value         decimal.Decimal `json:"value"`
	DateEffective string          `json:"dateEffective"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
}

// RateSnapshotResponse is the set of rates in force for a date, with the
// types that still have to be entered manually.
type RateSnapshotResponse struct {
	Date               string           `json:"date"`
	GoldRatePerGram    *decimal.Decimal `json:"goldRatePerGram"`
	USDToINRRate       *decimal.Decimal `json:"usdToInrRate"`
	GSTPercent         *decimal.Decimal `json:"gstPercent"`
	CustomsDutyPercent *decimal.Decimal `json:"customsDutyPercent"`
	StateTaxPercent    *decimal.Decimal `json:"stateTaxPercent"`
	Missing            []string         `json:"missing"`
}

// ToRateResponse converts a domain.Rate to RateResponse DTO.
func ToRateResponse(rate *domain.Rate) RateResponse {
	return RateResponse{
		RateID:        rate.RateID,
		RateType:      string(rate.RateType),
		Value:         rate.Value,
		DateEffective: rate.DateEffective.Format(DateLayout),
		CreatedAt:     rate.CreatedAt,
		CreatedBy:     rate.CreatedBy,
	}
}

// ToListRateResponse converts a slice of domain.Rate to RateResponse DTOs.
func ToListRateResponse(rates []domain.Rate) []RateResponse {
	responses := make([]RateResponse, len(rates))
	for i := range rates {
		responses[i] = ToRateResponse(&rates[i])
	}
	return responses
}

// ToRateSnapshotResponse converts a domain.RateSnapshot to its DTO.
func ToRateSnapshotResponse(s *domain.RateSnapshot) RateSnapshotResponse {
	missing := make([]string, 0, len(domain.AllRateTypes))
	for _, t := range s.Missing() {
		missing = append(missing, string(t))
	}
	return RateSnapshotResponse{
		Date:               s.Date.Format(DateLayout),
		GoldRatePerGram:    s.GoldRatePerGram,
		USDToINRRate:       s.USDToINRRate,
		GSTPercent:         s.GSTPercent,
		CustomsDutyPercent: s.CustomsDutyPercent,
		StateTaxPercent:    s.StateTaxPercent,
		Missing:            missing,
	}
}
