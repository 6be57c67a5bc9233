package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/jewellery_billing_app/internal/core/domain"
)

// RateListFilter narrows a rate listing. Zero values mean no restriction.
type RateListFilter struct {
	RateType domain.RateType
	From     *time.Time
	To       *time.Time
	Limit    int
}

// RateReader defines read operations for daily rates
type RateReader interface {
	// FindRate retrieves the rate of the given type effective on date.
	FindRate(ctx context.Context, rateType domain.RateType, date time.Time) (*domain.Rate, error)

	// FindRatesForDate retrieves every rate recorded for date, in any order.
	FindRatesForDate(ctx context.Context, date time.Time) ([]domain.Rate, error)

	// ListRates retrieves rates newest first.
	ListRates(ctx context.Context, filter RateListFilter) ([]domain.Rate, error)
}

// RateWriter defines write operations for daily rates
type RateWriter interface {
	// SaveRate persists a new rate. A second rate of the same type for the
	// same date fails with apperrors.ErrDuplicate.
	SaveRate(ctx context.Context, rate domain.Rate) error
}

// RateRepositoryFacade combines all rate-related repository interfaces
type RateRepositoryFacade interface {
	RateReader
	RateWriter
}
