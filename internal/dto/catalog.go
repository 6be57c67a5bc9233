package dto

import (
	"time"

	"github.com/SscSPs/jewellery_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CategoryChargesRequest defines the default charges of a category.
type CategoryChargesRequest struct {
	WastagePercent              *decimal.Decimal `json:"wastagePercent" binding:"required"`
	MakingChargePerGram         *decimal.Decimal `json:"makingChargePerGram" binding:"required"`
	CertificationChargePerCarat *decimal.Decimal `json:"certificationChargePerCarat" binding:"required"`
}

// CategoryChargesResponse defines the API representation of category charges.
type CategoryChargesResponse struct {
	CategoryCode                string           `json:"categoryCode"`
	WastagePercent              *decimal.Decimal `json:"wastagePercent"`
	MakingChargePerGram         *decimal.Decimal `json:"makingChargePerGram"`
	CertificationChargePerCarat *decimal.Decimal `json:"certificationChargePerCarat"`
	LastUpdatedAt               time.Time        `json:"lastUpdatedAt"`
	LastUpdatedBy               string           `json:"lastUpdatedBy"`
}

// ToCategoryChargesResponse converts domain.CategoryCharges to its DTO.
func ToCategoryChargesResponse(c *domain.CategoryCharges) CategoryChargesResponse {
	return CategoryChargesResponse{
		CategoryCode:                c.CategoryCode,
		WastagePercent:              c.WastagePercent,
		MakingChargePerGram:         c.MakingChargePerGram,
		CertificationChargePerCarat: c.CertificationChargePerCarat,
		LastUpdatedAt:               c.LastUpdatedAt,
		LastUpdatedBy:               c.LastUpdatedBy,
	}
}

// CreateMaterialRequest defines the structure for adding a material to the catalog.
type CreateMaterialRequest struct {
	Code     string `json:"code" binding:"required,max=32"`
	Name     string `json:"name" binding:"required,max=100"`
	Category string `json:"category" binding:"required,max=50"`
}

// MaterialResponse defines the API representation of a material.
type MaterialResponse struct {
	MaterialID string    `json:"materialID"`
	Code       string    `json:"code"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	IsDiamond  bool      `json:"isDiamond"`
	CreatedAt  time.Time `json:"createdAt"`
	CreatedBy  string    `json:"createdBy"`
}

// ToMaterialResponse converts a domain.Material to MaterialResponse DTO.
func ToMaterialResponse(m *domain.Material) MaterialResponse {
	return MaterialResponse{
		MaterialID: m.MaterialID,
		Code:       m.Code,
		Name:       m.Name,
		Category:   m.Category,
		IsDiamond:  m.IsDiamond(),
		CreatedAt:  m.CreatedAt,
		CreatedBy:  m.CreatedBy,
	}
}

// ToListMaterialResponse converts materials to their DTOs.
func ToListMaterialResponse(materials []domain.Material) []MaterialResponse {
	responses := make([]MaterialResponse, len(materials))
	for i := range materials {
		responses[i] = ToMaterialResponse(&materials[i])
	}
	return responses
}

// StoneLineRequest is one stone set in an item.
// Weight and rate are validated by the service so that the error names the line.
type StoneLineRequest struct {
	Code         string           `json:"code" binding:"required,max=32"`
	Name         string           `json:"name" binding:"max=100"`
	WeightCarats *decimal.Decimal `json:"weightCarats"`
	RatePerCarat *decimal.Decimal `json:"ratePerCarat"`
}

// CreateJewelryItemRequest defines the structure for adding an item to the catalog.
type CreateJewelryItemRequest struct {
	Code                string             `json:"code" binding:"required,max=32"`
	Name                string             `json:"name" binding:"required,max=100"`
	Purity              *int               `json:"purity" binding:"required,karat"`
	GrossWeight         *decimal.Decimal   `json:"grossWeight" binding:"required"`
	NetWeight           *decimal.Decimal   `json:"netWeight,omitempty"`
	CertificateRequired bool               `json:"certificateRequired"`
	Stones              []StoneLineRequest `json:"stones" binding:"omitempty,dive"`
}

// JewelryItemResponse defines the API representation of a catalog item.
type JewelryItemResponse struct {
	Code                string             `json:"code"`
	Name                string             `json:"name"`
	CategoryCode        string             `json:"categoryCode"`
	Purity              *int               `json:"purity"`
	GrossWeight         *decimal.Decimal   `json:"grossWeight"`
	NetWeight           *decimal.Decimal   `json:"netWeight"`
	CertificateRequired bool               `json:"certificateRequired"`
	Stones              []StoneLineRequest `json:"stones"`
	CreatedAt           time.Time          `json:"createdAt"`
	CreatedBy           string             `json:"createdBy"`
}

// ToStoneLines converts stone line DTOs to domain stone lines.
func ToStoneLines(reqs []StoneLineRequest) []domain.StoneLine {
	if len(reqs) == 0 {
		return nil
	}
	lines := make([]domain.StoneLine, len(reqs))
	for i, r := range reqs {
		lines[i] = domain.StoneLine{
			Code:         r.Code,
			Name:         r.Name,
			WeightCarats: r.WeightCarats,
			RatePerCarat: r.RatePerCarat,
		}
	}
	return lines
}

// ToJewelryItemResponse converts a domain.JewelryItem to its DTO.
func ToJewelryItemResponse(item *domain.JewelryItem) JewelryItemResponse {
	stones := make([]StoneLineRequest, len(item.Stones))
	for i, s := range item.Stones {
		stones[i] = StoneLineRequest{
			Code:         s.Code,
			Name:         s.Name,
			WeightCarats: s.WeightCarats,
			RatePerCarat: s.RatePerCarat,
		}
	}
	return JewelryItemResponse{
		Code:                item.Code,
		Name:                item.Name,
		CategoryCode:        domain.CategoryCode(item.Code),
		Purity:              item.Purity,
		GrossWeight:         item.GrossWeight,
		NetWeight:           item.NetWeight,
		CertificateRequired: item.CertificateRequired,
		Stones:              stones,
		CreatedAt:           item.CreatedAt,
		CreatedBy:           item.CreatedBy,
	}
}
