package services

import (
	"context"
	"time"

	"github.com/SscSPs/jewellery_billing_app/internal/core/domain"
	"github.com/SscSPs/jewellery_billing_app/internal/dto"
)

// RateReaderSvc defines read operations for daily rates
type RateReaderSvc interface {
	// GetRate retrieves the rate of a type for a calendar date (YYYY-MM-DD).
	GetRate(ctx context.Context, rateType string, date string) (*domain.Rate, error)

	// GetTodaySnapshot returns the rates recorded for today in the business
	// timezone. Rates not yet recorded are left nil.
	GetTodaySnapshot(ctx context.Context) (*domain.RateSnapshot, error)

	// GetSnapshot returns the rates recorded for a calendar date.
	GetSnapshot(ctx context.Context, date time.Time) (*domain.RateSnapshot, error)

	// ListRates retrieves recorded rates, newest first.
	ListRates(ctx context.Context, params dto.ListRatesParams) ([]domain.Rate, error)
}

// RateWriterSvc defines write operations for daily rates
type RateWriterSvc interface {
	// RecordRate stores a rate for a date. Gold rates are normalised to per gram.
	RecordRate(ctx context.Context, req dto.RecordRateRequest, operator string) (*domain.Rate, error)
}

// RateSvcFacade combines all rate-related service interfaces
type RateSvcFacade interface {
	RateReaderSvc
	RateWriterSvc
}
