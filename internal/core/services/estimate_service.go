package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/jewellery_billing_app/internal/apperrors"
	"github.com/SscSPs/jewellery_billing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/jewellery_billing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/jewellery_billing_app/internal/core/ports/services"
	"github.com/SscSPs/jewellery_billing_app/internal/dto"
	"github.com/SscSPs/jewellery_billing_app/internal/reports"
	"github.com/SscSPs/jewellery_billing_app/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

const (
	defaultEstimatePageSize = 20
	maxExportRows           = 5000
)

// estimateService implements the EstimateSvcFacade interface
type estimateService struct {
	BaseService
	estimateRepo portsrepo.EstimateRepositoryFacade
	pricingSvc   portssvc.PricingSvcFacade
	shopName     string
}

// NewEstimateService creates a new estimate service. shopName heads printed bills.
func NewEstimateService(
	repo portsrepo.EstimateRepositoryFacade,
	pricingSvc portssvc.PricingSvcFacade,
	shopName string,
	options ...ServiceOption,
) portssvc.EstimateSvcFacade {
	return &estimateService{
		BaseService:  newBaseService(options),
		estimateRepo: repo,
		pricingSvc:   pricingSvc,
		shopName:     shopName,
	}
}

var _ portssvc.EstimateSvcFacade = (*estimateService)(nil)

func (s *estimateService) SaveEstimate(ctx context.Context, req dto.SaveEstimateRequest, operator string) (*domain.Estimate, error) {
	kind := domain.KindEstimate
	if req.Kind != "" {
		kind = domain.EstimateKind(req.Kind)
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: kind must be ESTIMATE or BILL", apperrors.ErrValidation)
	}
	customer := strings.TrimSpace(req.CustomerName)
	if customer == "" {
		return nil, fmt.Errorf("%w: customerName is required", apperrors.ErrValidation)
	}
	date := s.Today()
	if req.EstimateDate != "" {
		var err error
		if date, err = parseDate("estimateDate", req.EstimateDate); err != nil {
			return nil, err
		}
	}

	// Totals are always recomputed here against the estimate date's rates;
	// client-side figures are never trusted.
	breakdown, err := s.pricingSvc.QuoteOn(ctx, date, req.Quote)
	if err != nil {
		return nil, err
	}

	estimate := domain.Estimate{
		EstimateID:    uuid.NewString(),
		Number:        fmt.Sprintf("%s-%s", kind.NumberPrefix(), ulid.Make().String()),
		Kind:          kind,
		CustomerName:  customer,
		CustomerPhone: strings.TrimSpace(req.CustomerPhone),
		EstimateDate:  date,
		ItemCode:      normalizeCode(req.Quote.Item.Code),
		ItemName:      strings.TrimSpace(req.Quote.Item.Name),
		GrossWeight:   req.Quote.Item.GrossWeight,
		Breakdown:     breakdown.Rounded(domain.PresentationPlaces),
		AuditFields:   domain.NewAuditFields(s.Now(), operator),
	}

	if err := s.estimateRepo.SaveEstimate(ctx, estimate); err != nil {
		s.LogError(ctx, err, "Failed to save estimate", slog.String("number", estimate.Number))
		return nil, fmt.Errorf("failed to save estimate: %w", err)
	}

	s.LogInfo(ctx, "Estimate saved",
		slog.String("estimate_id", estimate.EstimateID),
		slog.String("number", estimate.Number),
		slog.String("grand_total", estimate.Breakdown.GrandTotal.String()))
	return &estimate, nil
}

func (s *estimateService) GetEstimate(ctx context.Context, estimateID string) (*domain.Estimate, error) {
	if _, err := uuid.Parse(estimateID); err != nil {
		return nil, fmt.Errorf("%w: invalid estimate ID", apperrors.ErrValidation)
	}
	estimate, err := s.estimateRepo.FindEstimateByID(ctx, estimateID)
	if err != nil {
		return nil, fmt.Errorf("failed to get estimate %s: %w", estimateID, err)
	}
	return estimate, nil
}

func (s *estimateService) listFilter(kind, from, to string, limit int) (portsrepo.EstimateListFilter, error) {
	filter := portsrepo.EstimateListFilter{
		Kind:  domain.EstimateKind(kind),
		Limit: limit,
	}
	if filter.Kind != "" && !filter.Kind.Valid() {
		return filter, fmt.Errorf("%w: kind must be ESTIMATE or BILL", apperrors.ErrValidation)
	}
	var err error
	if filter.From, err = parseOptionalDate("from", from); err != nil {
		return filter, err
	}
	if filter.To, err = parseOptionalDate("to", to); err != nil {
		return filter, err
	}
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return filter, fmt.Errorf("%w: from must not be after to", apperrors.ErrValidation)
	}
	return filter, nil
}

func (s *estimateService) ListEstimates(ctx context.Context, params dto.ListEstimatesParams) (*dto.ListEstimatesResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultEstimatePageSize
	}
	filter, err := s.listFilter(params.Kind, params.From, params.To, limit+1)
	if err != nil {
		return nil, err
	}
	if params.NextToken != "" {
		cursor, err := pagination.DecodeCursor(params.NextToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		filter.AfterCreatedAt = &cursor.CreatedAt
		filter.AfterID = cursor.ID
	}

	estimates, err := s.estimateRepo.ListEstimates(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list estimates")
		return nil, fmt.Errorf("failed to list estimates: %w", err)
	}

	resp := &dto.ListEstimatesResponse{}
	if len(estimates) > limit {
		estimates = estimates[:limit]
		last := estimates[len(estimates)-1]
		token := pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.EstimateID})
		resp.NextToken = &token
	}
	resp.Estimates = dto.ToListEstimateResponse(estimates)
	return resp, nil
}

func (s *estimateService) ExportEstimates(ctx context.Context, params dto.ExportEstimatesParams) ([]byte, error) {
	filter, err := s.listFilter(params.Kind, params.From, params.To, maxExportRows)
	if err != nil {
		return nil, err
	}
	estimates, err := s.estimateRepo.ListEstimates(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to load estimates for export")
		return nil, fmt.Errorf("failed to load estimates for export: %w", err)
	}

	out, err := reports.EstimatesWorkbook(estimates)
	if err != nil {
		s.LogError(ctx, err, "Failed to render estimates workbook")
		return nil, fmt.Errorf("failed to export estimates: %w", err)
	}
	s.LogInfo(ctx, "Estimates exported", slog.Int("rows", len(estimates)))
	return out, nil
}

func (s *estimateService) RenderBill(ctx context.Context, estimateID string) ([]byte, error) {
	estimate, err := s.GetEstimate(ctx, estimateID)
	if err != nil {
		return nil, err
	}
	out, err := reports.BillPDF(s.shopName, estimate)
	if err != nil {
		s.LogError(ctx, err, "Failed to render bill", slog.String("estimate_id", estimateID))
		return nil, fmt.Errorf("failed to render bill: %w", err)
	}
	return out, nil
}
