package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/jewellery_billing_app/internal/apperrors"
	"github.com/SscSPs/jewellery_billing_app/internal/core/domain"
	portssvc "github.com/SscSPs/jewellery_billing_app/internal/core/ports/services"
	"github.com/SscSPs/jewellery_billing_app/internal/core/pricing"
	"github.com/SscSPs/jewellery_billing_app/internal/dto"
	"golang.org/x/sync/errgroup"
)

const defaultBatchConcurrency = 4

// pricingService implements the PricingSvcFacade interface
type pricingService struct {
	BaseService
	rateSvc          portssvc.RateReaderSvc
	catalogSvc       portssvc.CatalogSvcFacade
	batchConcurrency int
}

// NewPricingService creates a new pricing service. batchConcurrency bounds the
// number of items priced in parallel by BatchPrice.
func NewPricingService(
	rateSvc portssvc.RateReaderSvc,
	catalogSvc portssvc.CatalogSvcFacade,
	batchConcurrency int,
	options ...ServiceOption,
) portssvc.PricingSvcFacade {
	if batchConcurrency <= 0 {
		batchConcurrency = defaultBatchConcurrency
	}
	return &pricingService{
		BaseService:      newBaseService(options),
		rateSvc:          rateSvc,
		catalogSvc:       catalogSvc,
		batchConcurrency: batchConcurrency,
	}
}

var _ portssvc.PricingSvcFacade = (*pricingService)(nil)

// pricingContext is what every item priced by one request shares.
type pricingContext struct {
	mode         domain.BillingMode
	rates        domain.RateSnapshot
	diamondCodes pricing.DiamondCodeSet
}

func (s *pricingService) newPricingContext(ctx context.Context, date time.Time, mode string, manual dto.ManualRates) (*pricingContext, error) {
	snapshot, err := s.rateSvc.GetSnapshot(ctx, date)
	if err != nil {
		return nil, err
	}
	codes, err := s.catalogSvc.DiamondCodes(ctx)
	if err != nil {
		return nil, err
	}
	return &pricingContext{
		mode:         domain.BillingMode(mode),
		rates:        snapshot.FillMissing(manual.ToSnapshot()),
		diamondCodes: pricing.NewDiamondCodeSet(codes),
	}, nil
}

// chargesFor completes override with the defaults of the item's category.
// An unknown category is not an error; the calculator reports whichever
// charge is still missing.
func (s *pricingService) chargesFor(ctx context.Context, itemCode string, override domain.CategoryCharges) (domain.CategoryCharges, error) {
	category := domain.CategoryCode(itemCode)
	if category == "" || override.Complete() {
		return override, nil
	}
	defaults, err := s.catalogSvc.GetCategoryCharges(ctx, category)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "No charges configured for category", slog.String("category", category))
			return override, nil
		}
		return domain.CategoryCharges{}, err
	}
	return override.Merge(*defaults), nil
}

func (s *pricingService) compute(ctx context.Context, pc *pricingContext, item domain.JewelryItem, charges domain.CategoryCharges) (*domain.PricingBreakdown, error) {
	breakdown, err := pricing.Compute(pricing.Input{
		Mode:         pc.mode,
		Item:         item,
		Charges:      charges,
		Rates:        pc.rates,
		DiamondCodes: pc.diamondCodes,
	})
	if err != nil {
		s.LogWarn(ctx, err, "Pricing blocked", slog.String("item_code", item.Code), slog.String("mode", string(pc.mode)))
		return nil, err
	}
	return &breakdown, nil
}

func (s *pricingService) Quote(ctx context.Context, req dto.QuoteRequest) (*domain.PricingBreakdown, error) {
	return s.QuoteOn(ctx, s.Today(), req)
}

func (s *pricingService) QuoteOn(ctx context.Context, date time.Time, req dto.QuoteRequest) (*domain.PricingBreakdown, error) {
	pc, err := s.newPricingContext(ctx, date, req.Mode, req.ManualRates)
	if err != nil {
		return nil, err
	}
	item := req.Item.ToDomain()
	charges, err := s.chargesFor(ctx, item.Code, req.Charges.ToDomain())
	if err != nil {
		return nil, err
	}
	return s.compute(ctx, pc, item, charges)
}

func (s *pricingService) PriceItem(ctx context.Context, code string, req dto.PriceItemRequest) (*domain.PricingBreakdown, error) {
	pc, err := s.newPricingContext(ctx, s.Today(), req.Mode, req.ManualRates)
	if err != nil {
		return nil, err
	}
	return s.priceCatalogItem(ctx, pc, code, req.CertificateRequired, req.Charges.ToDomain())
}

func (s *pricingService) priceCatalogItem(ctx context.Context, pc *pricingContext, code string, certificateRequired *bool, override domain.CategoryCharges) (*domain.PricingBreakdown, error) {
	item, err := s.catalogSvc.GetJewelryItem(ctx, code)
	if err != nil {
		return nil, err
	}
	if certificateRequired != nil {
		item.CertificateRequired = *certificateRequired
	}
	charges, err := s.chargesFor(ctx, item.Code, override)
	if err != nil {
		return nil, err
	}
	return s.compute(ctx, pc, *item, charges)
}

func (s *pricingService) BatchPrice(ctx context.Context, req dto.BatchPriceRequest) ([]portssvc.BatchItemResult, error) {
	if len(req.ItemCodes) == 0 {
		return nil, fmt.Errorf("%w: itemCodes must not be empty", apperrors.ErrValidation)
	}
	pc, err := s.newPricingContext(ctx, s.Today(), req.Mode, req.ManualRates)
	if err != nil {
		return nil, err
	}

	results := make([]portssvc.BatchItemResult, len(req.ItemCodes))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.batchConcurrency)
	for i, code := range req.ItemCodes {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			breakdown, err := s.priceCatalogItem(gctx, pc, code, nil, domain.CategoryCharges{})
			results[i] = portssvc.BatchItemResult{ItemCode: code, Breakdown: breakdown, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch pricing aborted: %w", err)
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	s.LogInfo(ctx, "Batch priced",
		slog.Int("items", len(results)),
		slog.Int("failed", failed),
		slog.String("mode", req.Mode))
	return results, nil
}
