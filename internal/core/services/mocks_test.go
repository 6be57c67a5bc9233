package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/jewellery_billing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/jewellery_billing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/jewellery_billing_app/internal/core/ports/services"
	"github.com/SscSPs/jewellery_billing_app/internal/core/services"
	"github.com/SscSPs/jewellery_billing_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// fixedNow is 01:30 on 16 May 2026 in India, still the 15th in UTC.
var fixedNow = time.Date(2026, 5, 15, 20, 0, 0, 0, time.UTC)

var ist = time.FixedZone("IST", 5*3600+1800)

// fixedToday is the business date of fixedNow, as stored.
var fixedToday = time.Date(2026, 5, 16, 0, 0, 0, 0, time.UTC)

func testOptions() []services.ServiceOption {
	return []services.ServiceOption{
		services.WithClock(func() time.Time { return fixedNow }),
		services.WithLocation(ist),
	}
}

func dp(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func intPtr(i int) *int { return &i }

// --- Mock RateRepository ---
type MockRateRepository struct {
	mock.Mock
}

var _ portsrepo.RateRepositoryFacade = (*MockRateRepository)(nil)

func (m *MockRateRepository) SaveRate(ctx context.Context, rate domain.Rate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockRateRepository) FindRate(ctx context.Context, rateType domain.RateType, date time.Time) (*domain.Rate, error) {
	args := m.Called(ctx, rateType, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rate), args.Error(1)
}

func (m *MockRateRepository) FindRatesForDate(ctx context.Context, date time.Time) ([]domain.Rate, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rate), args.Error(1)
}

func (m *MockRateRepository) ListRates(ctx context.Context, filter portsrepo.RateListFilter) ([]domain.Rate, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rate), args.Error(1)
}

// --- Mock CategoryChargesRepository ---
type MockChargesRepository struct {
	mock.Mock
}

var _ portsrepo.CategoryChargesRepositoryFacade = (*MockChargesRepository)(nil)

func (m *MockChargesRepository) FindCategoryCharges(ctx context.Context, categoryCode string) (*domain.CategoryCharges, error) {
	args := m.Called(ctx, categoryCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CategoryCharges), args.Error(1)
}

func (m *MockChargesRepository) UpsertCategoryCharges(ctx context.Context, charges domain.CategoryCharges) error {
	args := m.Called(ctx, charges)
	return args.Error(0)
}

// --- Mock MaterialRepository ---
type MockMaterialRepository struct {
	mock.Mock
}

var _ portsrepo.MaterialRepositoryFacade = (*MockMaterialRepository)(nil)

func (m *MockMaterialRepository) SaveMaterial(ctx context.Context, material domain.Material) error {
	args := m.Called(ctx, material)
	return args.Error(0)
}

func (m *MockMaterialRepository) ListMaterials(ctx context.Context, category string) ([]domain.Material, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Material), args.Error(1)
}

// --- Mock JewelryRepository ---
type MockJewelryRepository struct {
	mock.Mock
}

var _ portsrepo.JewelryRepositoryFacade = (*MockJewelryRepository)(nil)

func (m *MockJewelryRepository) SaveJewelryItem(ctx context.Context, item domain.JewelryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockJewelryRepository) FindJewelryItemByCode(ctx context.Context, code string) (*domain.JewelryItem, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JewelryItem), args.Error(1)
}

// --- Mock EstimateRepository ---
type MockEstimateRepository struct {
	mock.Mock
}

var _ portsrepo.EstimateRepositoryFacade = (*MockEstimateRepository)(nil)

func (m *MockEstimateRepository) SaveEstimate(ctx context.Context, estimate domain.Estimate) error {
	args := m.Called(ctx, estimate)
	return args.Error(0)
}

func (m *MockEstimateRepository) FindEstimateByID(ctx context.Context, estimateID string) (*domain.Estimate, error) {
	args := m.Called(ctx, estimateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Estimate), args.Error(1)
}

func (m *MockEstimateRepository) ListEstimates(ctx context.Context, filter portsrepo.EstimateListFilter) ([]domain.Estimate, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Estimate), args.Error(1)
}

// --- Mock PricingService ---
type MockPricingService struct {
	mock.Mock
}

var _ portssvc.PricingSvcFacade = (*MockPricingService)(nil)

func (m *MockPricingService) Quote(ctx context.Context, req dto.QuoteRequest) (*domain.PricingBreakdown, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PricingBreakdown), args.Error(1)
}

func (m *MockPricingService) QuoteOn(ctx context.Context, date time.Time, req dto.QuoteRequest) (*domain.PricingBreakdown, error) {
	args := m.Called(ctx, date, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PricingBreakdown), args.Error(1)
}

func (m *MockPricingService) PriceItem(ctx context.Context, code string, req dto.PriceItemRequest) (*domain.PricingBreakdown, error) {
	args := m.Called(ctx, code, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PricingBreakdown), args.Error(1)
}

func (m *MockPricingService) BatchPrice(ctx context.Context, req dto.BatchPriceRequest) ([]portssvc.BatchItemResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]portssvc.BatchItemResult), args.Error(1)
}
