package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/jewellery_billing_app/internal/core/domain"
)

// EstimateListFilter selects a page of estimates, newest first.
// When AfterCreatedAt is set only rows strictly older than the
// (AfterCreatedAt, AfterID) key are returned.
type EstimateListFilter struct {
	Kind           domain.EstimateKind
	From           *time.Time
	To             *time.Time
	Limit          int
	AfterCreatedAt *time.Time
	AfterID        string
}

// EstimateReader defines read operations for saved estimates and bills
type EstimateReader interface {
	FindEstimateByID(ctx context.Context, estimateID string) (*domain.Estimate, error)
	ListEstimates(ctx context.Context, filter EstimateListFilter) ([]domain.Estimate, error)
}

// EstimateWriter defines write operations for saved estimates and bills
type EstimateWriter interface {
	// SaveEstimate persists an estimate. Estimates are immutable once saved.
	SaveEstimate(ctx context.Context, estimate domain.Estimate) error
}

// EstimateRepositoryFacade combines all estimate-related repository interfaces
type EstimateRepositoryFacade interface {
	EstimateReader
	EstimateWriter
}
