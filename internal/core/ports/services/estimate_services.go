package services

import (
	"context"

	"github.com/SscSPs/jewellery_billing_app/internal/core/domain"
	"github.com/SscSPs/jewellery_billing_app/internal/dto"
)

// EstimateReaderSvc defines read operations for saved estimates
type EstimateReaderSvc interface {
	GetEstimate(ctx context.Context, estimateID string) (*domain.Estimate, error)
	ListEstimates(ctx context.Context, params dto.ListEstimatesParams) (*dto.ListEstimatesResponse, error)
}

// EstimateWriterSvc defines write operations for saved estimates
type EstimateWriterSvc interface {
	// SaveEstimate prices the request server side and stores the result.
	SaveEstimate(ctx context.Context, req dto.SaveEstimateRequest, operator string) (*domain.Estimate, error)
}

// EstimateDocumentSvc renders saved estimates as documents.
type EstimateDocumentSvc interface {
	// ExportEstimates renders the matching estimates as an xlsx workbook.
	ExportEstimates(ctx context.Context, params dto.ExportEstimatesParams) ([]byte, error)

	// RenderBill renders one estimate as a printable PDF.
	RenderBill(ctx context.Context, estimateID string) ([]byte, error)
}

// EstimateSvcFacade combines all estimate-related service interfaces
type EstimateSvcFacade interface {
	EstimateReaderSvc
	EstimateWriterSvc
	EstimateDocumentSvc
}
