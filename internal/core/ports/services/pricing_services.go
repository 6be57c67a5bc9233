package services

import (
	"context"
	"time"

	"github.com/SscSPs/jewellery_billing_app/internal/core/domain"
	"github.com/SscSPs/jewellery_billing_app/internal/dto"
)

// BatchItemResult is the outcome of pricing one item of a batch.
// Exactly one of Breakdown and Err is set.
type BatchItemResult struct {
	ItemCode  string
	Breakdown *domain.PricingBreakdown
	Err       error
}

// PricingSvcFacade prices items against the day's rates.
// Breakdowns are returned at full precision; rounding is left to presentation.
type PricingSvcFacade interface {
	// Quote prices an ad hoc item described entirely by the request.
	Quote(ctx context.Context, req dto.QuoteRequest) (*domain.PricingBreakdown, error)

	// QuoteOn is Quote against the rates recorded for date instead of today's.
	QuoteOn(ctx context.Context, date time.Time, req dto.QuoteRequest) (*domain.PricingBreakdown, error)

	// PriceItem prices a catalog item by code.
	PriceItem(ctx context.Context, code string, req dto.PriceItemRequest) (*domain.PricingBreakdown, error)

	// BatchPrice prices several catalog items. Per-item failures are reported in
	// the results; the returned error is reserved for failures affecting the whole batch.
	BatchPrice(ctx context.Context, req dto.BatchPriceRequest) ([]BatchItemResult, error)
}
