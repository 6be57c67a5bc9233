package services

import (
	"context"

	"github.com/SscSPs/jewellery_billing_app/internal/core/domain"
	"github.com/SscSPs/jewellery_billing_app/internal/dto"
)

// CategoryChargesSvc manages the default charges of item categories.
type CategoryChargesSvc interface {
	UpsertCategoryCharges(ctx context.Context, categoryCode string, req dto.CategoryChargesRequest, operator string) (*domain.CategoryCharges, error)
	GetCategoryCharges(ctx context.Context, categoryCode string) (*domain.CategoryCharges, error)
}

// MaterialSvc manages material master data.
type MaterialSvc interface {
	CreateMaterial(ctx context.Context, req dto.CreateMaterialRequest, operator string) (*domain.Material, error)
	ListMaterials(ctx context.Context, category string) ([]domain.Material, error)

	// DiamondCodes returns the codes of every material in the diamond category.
	DiamondCodes(ctx context.Context) ([]string, error)
}

// JewelrySvc manages catalog items.
type JewelrySvc interface {
	CreateJewelryItem(ctx context.Context, req dto.CreateJewelryItemRequest, operator string) (*domain.JewelryItem, error)
	GetJewelryItem(ctx context.Context, code string) (*domain.JewelryItem, error)
}

// CatalogSvcFacade combines all catalog-related service interfaces
type CatalogSvcFacade interface {
	CategoryChargesSvc
	MaterialSvc
	JewelrySvc
}
