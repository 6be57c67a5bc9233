package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/jewellery_billing_app/internal/apperrors"
	"github.com/SscSPs/jewellery_billing_app/internal/core/domain"
	portssvc "github.com/SscSPs/jewellery_billing_app/internal/core/ports/services"
	"github.com/SscSPs/jewellery_billing_app/internal/core/services"
	"github.com/SscSPs/jewellery_billing_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CatalogServiceTestSuite struct {
	suite.Suite
	mockChargesRepo  *MockChargesRepository
	mockMaterialRepo *MockMaterialRepository
	mockJewelryRepo  *MockJewelryRepository
	service          portssvc.CatalogSvcFacade
	ctx              context.Context
}

func (suite *CatalogServiceTestSuite) SetupTest() {
	suite.mockChargesRepo = new(MockChargesRepository)
	suite.mockMaterialRepo = new(MockMaterialRepository)
	suite.mockJewelryRepo = new(MockJewelryRepository)
	suite.service = services.NewCatalogService(suite.mockChargesRepo, suite.mockMaterialRepo, suite.mockJewelryRepo, testOptions()...)
	suite.ctx = context.Background()
}

func TestCatalogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogServiceTestSuite))
}

func (suite *CatalogServiceTestSuite) TestUpsertCategoryCharges_NormalisesCode() {
	req := dto.CategoryChargesRequest{
		WastagePercent:              dp("8"),
		MakingChargePerGram:         dp("500"),
		CertificationChargePerCarat: dp("1500"),
	}
	suite.mockChargesRepo.On("UpsertCategoryCharges", suite.ctx, mock.MatchedBy(func(c domain.CategoryCharges) bool {
		return c.CategoryCode == "RG" && c.Complete() && c.LastUpdatedBy == "asha"
	})).Return(nil).Once()

	charges, err := suite.service.UpsertCategoryCharges(suite.ctx, " rg ", req, "asha")

	suite.Require().NoError(err)
	suite.Equal("RG", charges.CategoryCode)
	suite.Equal("500", charges.MakingChargePerGram.String())
	suite.mockChargesRepo.AssertExpectations(suite.T())
}

func (suite *CatalogServiceTestSuite) TestUpsertCategoryCharges_ValidationErrors() {
	complete := dto.CategoryChargesRequest{
		WastagePercent:              dp("8"),
		MakingChargePerGram:         dp("500"),
		CertificationChargePerCarat: dp("1500"),
	}
	tests := []struct {
		name string
		code string
		req  dto.CategoryChargesRequest
	}{
		{"code with digits", "RG1", complete},
		{"empty code", " ", complete},
		{"missing wastage", "RG", dto.CategoryChargesRequest{MakingChargePerGram: dp("500"), CertificationChargePerCarat: dp("1500")}},
		{"negative making", "RG", dto.CategoryChargesRequest{WastagePercent: dp("8"), MakingChargePerGram: dp("-1"), CertificationChargePerCarat: dp("1500")}},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.service.UpsertCategoryCharges(suite.ctx, tt.code, tt.req, "asha")
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.mockChargesRepo.AssertNotCalled(suite.T(), "UpsertCategoryCharges", mock.Anything, mock.Anything)
}

func (suite *CatalogServiceTestSuite) TestGetCategoryCharges_NotFound() {
	suite.mockChargesRepo.On("FindCategoryCharges", suite.ctx, "NK").
		Return(nil, apperrors.NewNotFoundError("no charges for category NK")).Once()

	_, err := suite.service.GetCategoryCharges(suite.ctx, "nk")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CatalogServiceTestSuite) TestCreateMaterial_DiamondCategoryIsCanonical() {
	suite.mockMaterialRepo.On("SaveMaterial", suite.ctx, mock.MatchedBy(func(m domain.Material) bool {
		return m.Code == "DIA1" && m.Category == domain.DiamondCategory && m.MaterialID != ""
	})).Return(nil).Once()

	material, err := suite.service.CreateMaterial(suite.ctx, dto.CreateMaterialRequest{
		Code: "dia1", Name: "Round brilliant", Category: "DIAMOND",
	}, "asha")

	suite.Require().NoError(err)
	suite.True(material.IsDiamond())
	suite.Equal(domain.DiamondCategory, material.Category)
}

func (suite *CatalogServiceTestSuite) TestCreateMaterial_Duplicate() {
	suite.mockMaterialRepo.On("SaveMaterial", suite.ctx, mock.AnythingOfType("domain.Material")).
		Return(apperrors.NewDuplicateError("material RUBY already exists")).Once()

	_, err := suite.service.CreateMaterial(suite.ctx, dto.CreateMaterialRequest{
		Code: "RUBY", Name: "Ruby", Category: "Precious",
	}, "asha")

	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *CatalogServiceTestSuite) TestCreateMaterial_BlankFields() {
	_, err := suite.service.CreateMaterial(suite.ctx, dto.CreateMaterialRequest{Code: "X", Name: "  ", Category: "Other"}, "asha")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockMaterialRepo.AssertNotCalled(suite.T(), "SaveMaterial", mock.Anything, mock.Anything)
}

func (suite *CatalogServiceTestSuite) TestListMaterials_EmptyIsNotNil() {
	suite.mockMaterialRepo.On("ListMaterials", suite.ctx, "").Return(nil, nil).Once()

	materials, err := suite.service.ListMaterials(suite.ctx, "")

	suite.Require().NoError(err)
	suite.NotNil(materials)
	suite.Empty(materials)
}

func (suite *CatalogServiceTestSuite) TestDiamondCodes() {
	suite.mockMaterialRepo.On("ListMaterials", suite.ctx, domain.DiamondCategory).Return([]domain.Material{
		{Code: "DIA1", Category: "Diamond"},
		{Code: "DIA2", Category: "diamond"},
	}, nil).Once()

	codes, err := suite.service.DiamondCodes(suite.ctx)

	suite.Require().NoError(err)
	suite.Equal([]string{"DIA1", "DIA2"}, codes)
}

func (suite *CatalogServiceTestSuite) TestCreateJewelryItem_DerivesNetWeight() {
	req := dto.CreateJewelryItemRequest{
		Code:        "rg0012",
		Name:        "Solitaire ring",
		Purity:      intPtr(18),
		GrossWeight: dp("10"),
		Stones: []dto.StoneLineRequest{
			{Code: "dia1", Name: "Diamond", WeightCarats: dp("1"), RatePerCarat: dp("50000")},
			{Code: "ruby", Name: "Ruby", WeightCarats: dp("0.5"), RatePerCarat: dp("2000")},
		},
	}
	suite.mockJewelryRepo.On("SaveJewelryItem", suite.ctx, mock.MatchedBy(func(item domain.JewelryItem) bool {
		return item.Code == "RG0012" && item.NetWeight != nil && item.NetWeight.Equal(*dp("9.7"))
	})).Return(nil).Once()

	item, err := suite.service.CreateJewelryItem(suite.ctx, req, "asha")

	suite.Require().NoError(err)
	suite.Equal("9.7", item.NetWeight.String())
	suite.Require().Len(item.Stones, 2)
	suite.Equal("DIA1", item.Stones[0].Code)
	suite.Equal("RUBY", item.Stones[1].Code)
}

func (suite *CatalogServiceTestSuite) TestCreateJewelryItem_ValidationErrors() {
	base := func() dto.CreateJewelryItemRequest {
		return dto.CreateJewelryItemRequest{Code: "NK01", Name: "Necklace", Purity: intPtr(22), GrossWeight: dp("20")}
	}
	tests := []struct {
		name   string
		mutate func(*dto.CreateJewelryItemRequest)
	}{
		{"code without category", func(r *dto.CreateJewelryItemRequest) { r.Code = "0001" }},
		{"purity above 24", func(r *dto.CreateJewelryItemRequest) { r.Purity = intPtr(25) }},
		{"purity missing", func(r *dto.CreateJewelryItemRequest) { r.Purity = nil }},
		{"negative gross", func(r *dto.CreateJewelryItemRequest) { r.GrossWeight = dp("-1") }},
		{"net above gross", func(r *dto.CreateJewelryItemRequest) { r.NetWeight = dp("21") }},
		{"stones heavier than item", func(r *dto.CreateJewelryItemRequest) {
			r.Stones = []dto.StoneLineRequest{{Code: "RUBY", WeightCarats: dp("150"), RatePerCarat: dp("10")}}
		}},
		{"stone without rate", func(r *dto.CreateJewelryItemRequest) {
			r.Stones = []dto.StoneLineRequest{{Code: "RUBY", WeightCarats: dp("1")}}
		}},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			req := base()
			tt.mutate(&req)
			_, err := suite.service.CreateJewelryItem(suite.ctx, req, "asha")
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.mockJewelryRepo.AssertNotCalled(suite.T(), "SaveJewelryItem", mock.Anything, mock.Anything)
}

func (suite *CatalogServiceTestSuite) TestGetJewelryItem_NormalisesCode() {
	expected := &domain.JewelryItem{Code: "RG0012"}
	suite.mockJewelryRepo.On("FindJewelryItemByCode", suite.ctx, "RG0012").Return(expected, nil).Once()

	item, err := suite.service.GetJewelryItem(suite.ctx, " rg0012")

	suite.Require().NoError(err)
	suite.Equal(expected, item)
}
