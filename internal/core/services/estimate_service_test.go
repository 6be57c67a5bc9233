package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/jewellery_billing_app/internal/apperrors"
	"github.com/SscSPs/jewellery_billing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/jewellery_billing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/jewellery_billing_app/internal/core/ports/services"
	"github.com/SscSPs/jewellery_billing_app/internal/core/services"
	"github.com/SscSPs/jewellery_billing_app/internal/dto"
	"github.com/SscSPs/jewellery_billing_app/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type EstimateServiceTestSuite struct {
	suite.Suite
	mockEstimateRepo *MockEstimateRepository
	mockPricingSvc   *MockPricingService
	service          portssvc.EstimateSvcFacade
	ctx              context.Context
}

func (suite *EstimateServiceTestSuite) SetupTest() {
	suite.mockEstimateRepo = new(MockEstimateRepository)
	suite.mockPricingSvc = new(MockPricingService)
	suite.service = services.NewEstimateService(suite.mockEstimateRepo, suite.mockPricingSvc, "Test Jewellers", testOptions()...)
	suite.ctx = context.Background()
}

func TestEstimateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EstimateServiceTestSuite))
}

// fullPrecisionBreakdown is the ring of the pricing tests before rounding.
func fullPrecisionBreakdown() *domain.PricingBreakdown {
	return &domain.PricingBreakdown{
		Mode:             domain.ModeINR,
		NetWeight:        *dp("10"),
		Purity:           22,
		FineWeight:       *dp("9.1666666666666667"),
		GoldRatePerGram:  *dp("6000"),
		GoldPricePerGram: *dp("5500"),
		GoldValue:        *dp("50416.666666666667"),
		WastageAmount:    *dp("4400"),
		MakingAmount:     *dp("5000"),
		TotalGoldAmount:  *dp("59816.666666666667"),
		StoneLines: []domain.StoneLineCost{
			{Code: "RUBY", Name: "Ruby", WeightCarats: *dp("1"), RatePerCarat: *dp("2000"), Cost: *dp("2000")},
		},
		StoneTotal: *dp("2000"),
		Subtotal:   *dp("61816.666666666667"),
		TaxPercent: *dp("3"),
		TaxAmount:  *dp("1854.5"),
		GrandTotal: *dp("63671.166666666667"),
	}
}

func saveRequest() dto.SaveEstimateRequest {
	return dto.SaveEstimateRequest{
		CustomerName:  "  Meera Iyer ",
		CustomerPhone: "9876543210",
		Quote: dto.QuoteRequest{
			Mode: "INR",
			Item: dto.QuoteItem{Code: "rg0012", Name: "Ruby ring", Purity: intPtr(22), GrossWeight: dp("10.2"), NetWeight: dp("10")},
		},
	}
}

func (suite *EstimateServiceTestSuite) TestSaveEstimate_PricesAndRounds() {
	req := saveRequest()
	suite.mockPricingSvc.On("QuoteOn", suite.ctx, fixedToday, req.Quote).Return(fullPrecisionBreakdown(), nil).Once()
	suite.mockEstimateRepo.On("SaveEstimate", suite.ctx, mock.AnythingOfType("domain.Estimate")).Return(nil).Once()

	estimate, err := suite.service.SaveEstimate(suite.ctx, req, "asha")

	suite.Require().NoError(err)
	suite.Equal(domain.KindEstimate, estimate.Kind)
	suite.True(strings.HasPrefix(estimate.Number, "EST-"), estimate.Number)
	suite.Equal("Meera Iyer", estimate.CustomerName)
	suite.Equal("RG0012", estimate.ItemCode)
	suite.Equal(fixedToday, estimate.EstimateDate)
	suite.Equal("63671.17", estimate.Breakdown.GrandTotal.String())
	suite.Equal("9.17", estimate.Breakdown.FineWeight.String())
	suite.Equal("asha", estimate.CreatedBy)
	suite.Equal(fixedNow, estimate.CreatedAt)
	_, parseErr := uuid.Parse(estimate.EstimateID)
	suite.NoError(parseErr)
	suite.mockEstimateRepo.AssertExpectations(suite.T())
}

func (suite *EstimateServiceTestSuite) TestSaveEstimate_BillNumberAndDate() {
	req := saveRequest()
	req.Kind = "BILL"
	req.EstimateDate = "2026-05-01"
	backDated := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	// A back-dated estimate is priced at that day's rates, not today's.
	suite.mockPricingSvc.On("QuoteOn", suite.ctx, backDated, req.Quote).Return(fullPrecisionBreakdown(), nil).Once()
	suite.mockEstimateRepo.On("SaveEstimate", suite.ctx, mock.MatchedBy(func(e domain.Estimate) bool {
		return e.Kind == domain.KindBill && strings.HasPrefix(e.Number, "BILL-")
	})).Return(nil).Once()

	estimate, err := suite.service.SaveEstimate(suite.ctx, req, "asha")

	suite.Require().NoError(err)
	suite.Equal(backDated, estimate.EstimateDate)
	suite.mockPricingSvc.AssertExpectations(suite.T())
	suite.mockPricingSvc.AssertNotCalled(suite.T(), "Quote", mock.Anything, mock.Anything)
}

func (suite *EstimateServiceTestSuite) TestSaveEstimate_NumbersAreUnique() {
	suite.mockPricingSvc.On("QuoteOn", suite.ctx, fixedToday, mock.Anything).Return(fullPrecisionBreakdown(), nil)
	suite.mockEstimateRepo.On("SaveEstimate", suite.ctx, mock.Anything).Return(nil)

	first, err := suite.service.SaveEstimate(suite.ctx, saveRequest(), "asha")
	suite.Require().NoError(err)
	second, err := suite.service.SaveEstimate(suite.ctx, saveRequest(), "asha")
	suite.Require().NoError(err)

	suite.NotEqual(first.Number, second.Number)
	suite.NotEqual(first.EstimateID, second.EstimateID)
}

func (suite *EstimateServiceTestSuite) TestSaveEstimate_ValidationErrors() {
	tests := []struct {
		name   string
		mutate func(*dto.SaveEstimateRequest)
	}{
		{"blank customer", func(r *dto.SaveEstimateRequest) { r.CustomerName = "   " }},
		{"unknown kind", func(r *dto.SaveEstimateRequest) { r.Kind = "INVOICE" }},
		{"bad date", func(r *dto.SaveEstimateRequest) { r.EstimateDate = "01-05-2026" }},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			req := saveRequest()
			tt.mutate(&req)
			_, err := suite.service.SaveEstimate(suite.ctx, req, "asha")
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.mockPricingSvc.AssertNotCalled(suite.T(), "QuoteOn", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EstimateServiceTestSuite) TestSaveEstimate_PricingFailureSavesNothing() {
	req := saveRequest()
	suite.mockPricingSvc.On("QuoteOn", suite.ctx, fixedToday, req.Quote).Return(nil, apperrors.ErrMissingRate).Once()

	estimate, err := suite.service.SaveEstimate(suite.ctx, req, "asha")

	suite.Nil(estimate)
	suite.ErrorIs(err, apperrors.ErrMissingRate)
	suite.mockEstimateRepo.AssertNotCalled(suite.T(), "SaveEstimate", mock.Anything, mock.Anything)
}

func (suite *EstimateServiceTestSuite) TestGetEstimate() {
	id := uuid.NewString()
	expected := &domain.Estimate{EstimateID: id, Number: "EST-1"}
	suite.mockEstimateRepo.On("FindEstimateByID", suite.ctx, id).Return(expected, nil).Once()

	estimate, err := suite.service.GetEstimate(suite.ctx, id)

	suite.Require().NoError(err)
	suite.Equal(expected, estimate)
}

func (suite *EstimateServiceTestSuite) TestGetEstimate_InvalidID() {
	_, err := suite.service.GetEstimate(suite.ctx, "not-a-uuid")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockEstimateRepo.AssertNotCalled(suite.T(), "FindEstimateByID", mock.Anything, mock.Anything)
}

func estimatesCreatedAt(times ...time.Time) []domain.Estimate {
	estimates := make([]domain.Estimate, len(times))
	for i, t := range times {
		estimates[i] = domain.Estimate{
			EstimateID:  uuid.NewString(),
			Number:      "EST-" + t.Format("150405"),
			Kind:        domain.KindEstimate,
			AuditFields: domain.NewAuditFields(t, "asha"),
		}
	}
	return estimates
}

func (suite *EstimateServiceTestSuite) TestListEstimates_FirstPage() {
	t0 := fixedNow
	page := estimatesCreatedAt(t0, t0.Add(-time.Minute), t0.Add(-2*time.Minute))
	suite.mockEstimateRepo.On("ListEstimates", suite.ctx, mock.MatchedBy(func(f portsrepo.EstimateListFilter) bool {
		return f.Limit == 3 && f.AfterCreatedAt == nil && f.Kind == ""
	})).Return(page, nil).Once()

	resp, err := suite.service.ListEstimates(suite.ctx, dto.ListEstimatesParams{Limit: 2})

	suite.Require().NoError(err)
	suite.Len(resp.Estimates, 2)
	suite.Require().NotNil(resp.NextToken)
	cursor, err := pagination.DecodeCursor(*resp.NextToken)
	suite.Require().NoError(err)
	suite.True(cursor.CreatedAt.Equal(page[1].CreatedAt))
	suite.Equal(page[1].EstimateID, cursor.ID)
}

func (suite *EstimateServiceTestSuite) TestListEstimates_LastPageHasNoToken() {
	page := estimatesCreatedAt(fixedNow)
	after := pagination.Cursor{CreatedAt: fixedNow.Add(time.Hour), ID: uuid.NewString()}
	suite.mockEstimateRepo.On("ListEstimates", suite.ctx, mock.MatchedBy(func(f portsrepo.EstimateListFilter) bool {
		return f.Limit == 21 &&
			f.AfterCreatedAt != nil && f.AfterCreatedAt.Equal(after.CreatedAt) &&
			f.AfterID == after.ID
	})).Return(page, nil).Once()

	resp, err := suite.service.ListEstimates(suite.ctx, dto.ListEstimatesParams{NextToken: pagination.EncodeCursor(after)})

	suite.Require().NoError(err)
	suite.Len(resp.Estimates, 1)
	suite.Nil(resp.NextToken)
}

func (suite *EstimateServiceTestSuite) TestListEstimates_InvalidParams() {
	tests := []struct {
		name   string
		params dto.ListEstimatesParams
	}{
		{"bad token", dto.ListEstimatesParams{NextToken: "%%%"}},
		{"from after to", dto.ListEstimatesParams{From: "2026-05-10", To: "2026-05-01"}},
		{"unknown kind", dto.ListEstimatesParams{Kind: "QUOTE"}},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.service.ListEstimates(suite.ctx, tt.params)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.mockEstimateRepo.AssertNotCalled(suite.T(), "ListEstimates", mock.Anything, mock.Anything)
}

func (suite *EstimateServiceTestSuite) TestExportEstimates() {
	estimate := domain.Estimate{
		EstimateID:   uuid.NewString(),
		Number:       "EST-01J0000000000000000000000",
		Kind:         domain.KindEstimate,
		CustomerName: "Meera Iyer",
		EstimateDate: fixedToday,
		ItemCode:     "RG0012",
		Breakdown:    fullPrecisionBreakdown().Rounded(domain.PresentationPlaces),
	}
	suite.mockEstimateRepo.On("ListEstimates", suite.ctx, mock.MatchedBy(func(f portsrepo.EstimateListFilter) bool {
		return f.Kind == domain.KindEstimate && f.Limit == 5000
	})).Return([]domain.Estimate{estimate}, nil).Once()

	out, err := suite.service.ExportEstimates(suite.ctx, dto.ExportEstimatesParams{Kind: "ESTIMATE"})

	suite.Require().NoError(err)
	suite.Require().Greater(len(out), 2)
	suite.Equal("PK", string(out[:2]))
}

func (suite *EstimateServiceTestSuite) TestExportEstimates_RepositoryError() {
	suite.mockEstimateRepo.On("ListEstimates", suite.ctx, mock.Anything).Return(nil, errors.New("connection reset")).Once()

	out, err := suite.service.ExportEstimates(suite.ctx, dto.ExportEstimatesParams{})

	suite.Nil(out)
	suite.Error(err)
}

func (suite *EstimateServiceTestSuite) TestRenderBill() {
	id := uuid.NewString()
	suite.mockEstimateRepo.On("FindEstimateByID", suite.ctx, id).Return(&domain.Estimate{
		EstimateID:   id,
		Number:       "BILL-01J0000000000000000000000",
		Kind:         domain.KindBill,
		CustomerName: "Meera Iyer",
		EstimateDate: fixedToday,
		ItemCode:     "RG0012",
		ItemName:     "Ruby ring",
		Breakdown:    fullPrecisionBreakdown().Rounded(domain.PresentationPlaces),
	}, nil).Once()

	out, err := suite.service.RenderBill(suite.ctx, id)

	suite.Require().NoError(err)
	suite.Equal("%PDF-", string(out[:5]))
}

func (suite *EstimateServiceTestSuite) TestRenderBill_NotFound() {
	id := uuid.NewString()
	suite.mockEstimateRepo.On("FindEstimateByID", suite.ctx, id).
		Return(nil, apperrors.NewNotFoundError("estimate not found")).Once()

	_, err := suite.service.RenderBill(suite.ctx, id)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}
