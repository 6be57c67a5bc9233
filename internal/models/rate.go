package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rate is a row of daily_rates. (rate_type, date_effective) is unique.
type Rate struct {
	RateID        string          `db:"rate_id"`
	RateType      string          `db:"rate_type"`
	Value         decimal.Decimal `db:"value"`
	DateEffective time.Time       `db:"date_effective"`
	AuditFields
}
