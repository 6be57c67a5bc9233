package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/jewellery_billing_app/internal/apperrors"
	"github.com/SscSPs/jewellery_billing_app/internal/core/domain"
	portssvc "github.com/SscSPs/jewellery_billing_app/internal/core/ports/services"
	"github.com/SscSPs/jewellery_billing_app/internal/core/pricing"
	"github.com/SscSPs/jewellery_billing_app/internal/core/services"
	"github.com/SscSPs/jewellery_billing_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// PricingServiceTestSuite prices through real rate and catalog services
// backed by mocked repositories.
type PricingServiceTestSuite struct {
	suite.Suite
	mockRateRepo     *MockRateRepository
	mockChargesRepo  *MockChargesRepository
	mockMaterialRepo *MockMaterialRepository
	mockJewelryRepo  *MockJewelryRepository
	service          portssvc.PricingSvcFacade
	ctx              context.Context
}

func (suite *PricingServiceTestSuite) SetupTest() {
	suite.mockRateRepo = new(MockRateRepository)
	suite.mockChargesRepo = new(MockChargesRepository)
	suite.mockMaterialRepo = new(MockMaterialRepository)
	suite.mockJewelryRepo = new(MockJewelryRepository)

	rateSvc := services.NewRateService(suite.mockRateRepo, testOptions()...)
	catalogSvc := services.NewCatalogService(suite.mockChargesRepo, suite.mockMaterialRepo, suite.mockJewelryRepo, testOptions()...)
	suite.service = services.NewPricingService(rateSvc, catalogSvc, 2, testOptions()...)
	suite.ctx = context.Background()

	suite.mockMaterialRepo.On("ListMaterials", mock.Anything, domain.DiamondCategory).
		Return([]domain.Material{{Code: "DIA1", Category: domain.DiamondCategory}}, nil).Maybe()
}

func TestPricingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PricingServiceTestSuite))
}

func (suite *PricingServiceTestSuite) recordedRates(rates ...domain.Rate) {
	suite.mockRateRepo.On("FindRatesForDate", mock.Anything, fixedToday).Return(rates, nil)
}

func goldAndGST() []domain.Rate {
	return []domain.Rate{
		{RateType: domain.RateGold24K, Value: *dp("6000"), DateEffective: fixedToday},
		{RateType: domain.RateGST, Value: *dp("3"), DateEffective: fixedToday},
	}
}

func ringCharges() *domain.CategoryCharges {
	return &domain.CategoryCharges{
		CategoryCode:                "RG",
		WastagePercent:              dp("8"),
		MakingChargePerGram:         dp("500"),
		CertificationChargePerCarat: dp("1500"),
	}
}

func ringQuote() dto.QuoteRequest {
	return dto.QuoteRequest{
		Mode: "INR",
		Item: dto.QuoteItem{
			Code:      "RG0012",
			Purity:    intPtr(22),
			NetWeight: dp("10"),
			Stones: []dto.StoneLineRequest{
				{Code: "RUBY", Name: "Ruby", WeightCarats: dp("1"), RatePerCarat: dp("2000")},
			},
		},
	}
}

func (suite *PricingServiceTestSuite) TestQuote_UsesCategoryDefaults() {
	suite.recordedRates(goldAndGST()...)
	suite.mockChargesRepo.On("FindCategoryCharges", mock.Anything, "RG").Return(ringCharges(), nil).Once()

	b, err := suite.service.Quote(suite.ctx, ringQuote())

	suite.Require().NoError(err)
	suite.Equal("4400.00", b.WastageAmount.StringFixed(2))
	suite.Equal("61816.67", b.Subtotal.StringFixed(2))
	suite.Equal("63671.17", b.GrandTotal.StringFixed(2))
	suite.mockChargesRepo.AssertExpectations(suite.T())
}

func (suite *PricingServiceTestSuite) TestQuote_CompleteOverrideSkipsCategoryLookup() {
	suite.recordedRates(goldAndGST()...)
	req := ringQuote()
	req.Charges = &dto.ChargesOverride{
		WastagePercent:              dp("0"),
		MakingChargePerGram:         dp("0"),
		CertificationChargePerCarat: dp("0"),
	}

	b, err := suite.service.Quote(suite.ctx, req)

	suite.Require().NoError(err)
	suite.Equal("52416.67", b.Subtotal.StringFixed(2))
	suite.mockChargesRepo.AssertNotCalled(suite.T(), "FindCategoryCharges", mock.Anything, mock.Anything)
}

func (suite *PricingServiceTestSuite) TestQuote_PartialOverrideMergesWithDefaults() {
	suite.recordedRates(goldAndGST()...)
	suite.mockChargesRepo.On("FindCategoryCharges", mock.Anything, "RG").Return(ringCharges(), nil).Once()
	req := ringQuote()
	req.Charges = &dto.ChargesOverride{MakingChargePerGram: dp("0")}

	b, err := suite.service.Quote(suite.ctx, req)

	suite.Require().NoError(err)
	suite.True(b.MakingAmount.IsZero())
	suite.Equal("4400.00", b.WastageAmount.StringFixed(2))
}

func (suite *PricingServiceTestSuite) TestQuote_ManualRateFillsGap() {
	suite.recordedRates(domain.Rate{RateType: domain.RateGST, Value: *dp("3"), DateEffective: fixedToday})
	suite.mockChargesRepo.On("FindCategoryCharges", mock.Anything, "RG").Return(ringCharges(), nil).Once()
	req := ringQuote()
	req.ManualRates = dto.ManualRates{GoldRate: dp("60000"), GoldRateUnit: "PER_10_GRAM"}

	b, err := suite.service.Quote(suite.ctx, req)

	suite.Require().NoError(err)
	suite.Equal("6000", b.GoldRatePerGram.String())
	suite.Equal("63671.17", b.GrandTotal.StringFixed(2))
}

func (suite *PricingServiceTestSuite) TestQuote_RecordedRateWinsOverManual() {
	suite.recordedRates(goldAndGST()...)
	suite.mockChargesRepo.On("FindCategoryCharges", mock.Anything, "RG").Return(ringCharges(), nil).Once()
	req := ringQuote()
	req.ManualRates = dto.ManualRates{GoldRate: dp("7000")}

	b, err := suite.service.Quote(suite.ctx, req)

	suite.Require().NoError(err)
	suite.Equal("6000", b.GoldRatePerGram.String())
}

func (suite *PricingServiceTestSuite) TestQuote_MissingRateBlocksPricing() {
	suite.recordedRates(domain.Rate{RateType: domain.RateGST, Value: *dp("3"), DateEffective: fixedToday})
	suite.mockChargesRepo.On("FindCategoryCharges", mock.Anything, "RG").Return(ringCharges(), nil).Once()

	b, err := suite.service.Quote(suite.ctx, ringQuote())

	suite.Nil(b)
	suite.ErrorIs(err, apperrors.ErrMissingRate)
	fe, ok := pricing.AsFieldError(err)
	suite.Require().True(ok)
	suite.Equal(pricing.FieldGoldRate, fe.Field)
}

func (suite *PricingServiceTestSuite) TestQuote_UnknownCategoryReportsMissingCharge() {
	suite.recordedRates(goldAndGST()...)
	suite.mockChargesRepo.On("FindCategoryCharges", mock.Anything, "RG").
		Return(nil, apperrors.NewNotFoundError("no charges for category RG")).Once()

	_, err := suite.service.Quote(suite.ctx, ringQuote())

	suite.ErrorIs(err, apperrors.ErrInvalidInput)
	fe, ok := pricing.AsFieldError(err)
	suite.Require().True(ok)
	suite.Equal(pricing.FieldWastagePercent, fe.Field)
}

func (suite *PricingServiceTestSuite) TestQuote_ZeroDollarRate() {
	suite.recordedRates(domain.Rate{RateType: domain.RateGold24K, Value: *dp("6000"), DateEffective: fixedToday})
	suite.mockChargesRepo.On("FindCategoryCharges", mock.Anything, "RG").Return(ringCharges(), nil).Once()
	req := ringQuote()
	req.Mode = "USD"
	req.ManualRates = dto.ManualRates{USDToINRRate: dp("0"), CustomsDutyPercent: dp("10"), StateTaxPercent: dp("3.75")}

	_, err := suite.service.Quote(suite.ctx, req)

	suite.ErrorIs(err, apperrors.ErrDivisionByZero)
}

func (suite *PricingServiceTestSuite) TestPriceItem_CertificateOverride() {
	suite.recordedRates(goldAndGST()...)
	suite.mockChargesRepo.On("FindCategoryCharges", mock.Anything, "RG").Return(ringCharges(), nil).Once()
	suite.mockJewelryRepo.On("FindJewelryItemByCode", mock.Anything, "RG0100").Return(&domain.JewelryItem{
		Code:      "RG0100",
		Purity:    intPtr(18),
		NetWeight: dp("4"),
		Stones: []domain.StoneLine{
			{Code: "DIA1", WeightCarats: dp("0.5"), RatePerCarat: dp("50000")},
		},
	}, nil).Once()
	certify := true

	b, err := suite.service.PriceItem(suite.ctx, "rg0100", dto.PriceItemRequest{Mode: "INR", CertificateRequired: &certify})

	suite.Require().NoError(err)
	suite.Equal("0.5", b.DiamondCarats.String())
	suite.Equal("750.00", b.CertificationCharge.StringFixed(2))
}

func (suite *PricingServiceTestSuite) TestPriceItem_NotFound() {
	suite.recordedRates(goldAndGST()...)
	suite.mockJewelryRepo.On("FindJewelryItemByCode", mock.Anything, "RG9999").
		Return(nil, apperrors.NewNotFoundError("jewelry item RG9999 not found")).Once()

	_, err := suite.service.PriceItem(suite.ctx, "RG9999", dto.PriceItemRequest{Mode: "INR"})

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PricingServiceTestSuite) TestBatchPrice_ReportsPerItemFailures() {
	suite.recordedRates(goldAndGST()...)
	suite.mockChargesRepo.On("FindCategoryCharges", mock.Anything, "RG").Return(ringCharges(), nil)
	suite.mockJewelryRepo.On("FindJewelryItemByCode", mock.Anything, "RG0012").Return(&domain.JewelryItem{
		Code:      "RG0012",
		Purity:    intPtr(22),
		NetWeight: dp("10"),
		Stones: []domain.StoneLine{
			{Code: "RUBY", WeightCarats: dp("1"), RatePerCarat: dp("2000")},
		},
	}, nil).Once()
	suite.mockJewelryRepo.On("FindJewelryItemByCode", mock.Anything, "RG9999").
		Return(nil, apperrors.NewNotFoundError("jewelry item RG9999 not found")).Once()
	suite.mockJewelryRepo.On("FindJewelryItemByCode", mock.Anything, "RG0013").Return(&domain.JewelryItem{
		Code:      "RG0013",
		NetWeight: dp("5"),
	}, nil).Once()

	results, err := suite.service.BatchPrice(suite.ctx, dto.BatchPriceRequest{
		Mode:      "INR",
		ItemCodes: []string{"RG0012", "RG9999", "RG0013"},
	})

	suite.Require().NoError(err)
	suite.Require().Len(results, 3)

	suite.Equal("RG0012", results[0].ItemCode)
	suite.Require().NoError(results[0].Err)
	suite.Equal("63671.17", results[0].Breakdown.GrandTotal.StringFixed(2))

	suite.Equal("RG9999", results[1].ItemCode)
	suite.Nil(results[1].Breakdown)
	suite.ErrorIs(results[1].Err, apperrors.ErrNotFound)

	suite.Equal("RG0013", results[2].ItemCode)
	suite.ErrorIs(results[2].Err, apperrors.ErrInvalidInput)
	fe, ok := pricing.AsFieldError(results[2].Err)
	suite.Require().True(ok)
	suite.Equal(pricing.FieldPurity, fe.Field)
}

func (suite *PricingServiceTestSuite) TestBatchPrice_Empty() {
	_, err := suite.service.BatchPrice(suite.ctx, dto.BatchPriceRequest{Mode: "INR"})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "FindRatesForDate", mock.Anything, mock.Anything)
}

func (suite *PricingServiceTestSuite) TestBatchPrice_RateLookupFailureFailsBatch() {
	suite.mockRateRepo.On("FindRatesForDate", mock.Anything, fixedToday).
		Return(nil, apperrors.NewAppError(500, "database down", nil)).Once()

	results, err := suite.service.BatchPrice(suite.ctx, dto.BatchPriceRequest{Mode: "INR", ItemCodes: []string{"RG0012"}})

	suite.Nil(results)
	suite.Error(err)
}

func (suite *PricingServiceTestSuite) TestQuote_RejectsInconsistentWeights() {
	suite.recordedRates(goldAndGST()...)
	suite.mockChargesRepo.On("FindCategoryCharges", mock.Anything, "RG").Return(ringCharges(), nil)

	tests := []struct {
		name  string
		gross string
		net   string
		field string
	}{
		{"negative gross", "-5", "10", pricing.FieldGrossWeight},
		{"net above gross", "2", "10", pricing.FieldNetWeight},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			req := ringQuote()
			req.Item.GrossWeight = dp(tt.gross)
			req.Item.NetWeight = dp(tt.net)

			b, err := suite.service.Quote(suite.ctx, req)

			suite.Nil(b)
			suite.ErrorIs(err, apperrors.ErrInvalidInput)
			fe, ok := pricing.AsFieldError(err)
			suite.Require().True(ok)
			suite.Equal(tt.field, fe.Field)
		})
	}
}

func (suite *PricingServiceTestSuite) TestQuoteOn_UsesThatDaysRates() {
	pastDay := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	suite.mockRateRepo.On("FindRatesForDate", mock.Anything, pastDay).Return([]domain.Rate{
		{RateType: domain.RateGold24K, Value: *dp("5400"), DateEffective: pastDay},
		{RateType: domain.RateGST, Value: *dp("3"), DateEffective: pastDay},
	}, nil).Once()
	suite.mockChargesRepo.On("FindCategoryCharges", mock.Anything, "RG").Return(ringCharges(), nil).Once()

	b, err := suite.service.QuoteOn(suite.ctx, pastDay, ringQuote())

	suite.Require().NoError(err)
	suite.Equal("5400", b.GoldRatePerGram.String())
	suite.Equal("4950.00", b.GoldPricePerGram.StringFixed(2))
	suite.mockRateRepo.AssertNotCalled(suite.T(), "FindRatesForDate", mock.Anything, fixedToday)
}
