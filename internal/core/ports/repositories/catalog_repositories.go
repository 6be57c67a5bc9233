package repositories

import (
	"context"

	"github.com/SscSPs/jewellery_billing_app/internal/core/domain"
)

// CategoryChargesRepositoryFacade persists the default charges of each category.
type CategoryChargesRepositoryFacade interface {
	// FindCategoryCharges retrieves the charges configured for a category code.
	FindCategoryCharges(ctx context.Context, categoryCode string) (*domain.CategoryCharges, error)

	// UpsertCategoryCharges inserts or replaces the charges of a category.
	UpsertCategoryCharges(ctx context.Context, charges domain.CategoryCharges) error
}

// MaterialReader defines read operations for material master data
type MaterialReader interface {
	// ListMaterials retrieves materials ordered by code. An empty category lists all.
	ListMaterials(ctx context.Context, category string) ([]domain.Material, error)
}

// MaterialWriter defines write operations for material master data
type MaterialWriter interface {
	// SaveMaterial persists a new material. Codes are unique.
	SaveMaterial(ctx context.Context, material domain.Material) error
}

// MaterialRepositoryFacade combines all material-related repository interfaces
type MaterialRepositoryFacade interface {
	MaterialReader
	MaterialWriter
}

// JewelryReader defines read operations for catalog items
type JewelryReader interface {
	// FindJewelryItemByCode retrieves an item together with its stone lines.
	FindJewelryItemByCode(ctx context.Context, code string) (*domain.JewelryItem, error)
}

// JewelryWriter defines write operations for catalog items
type JewelryWriter interface {
	// SaveJewelryItem persists an item and its stone lines atomically.
	SaveJewelryItem(ctx context.Context, item domain.JewelryItem) error
}

// JewelryRepositoryFacade combines all jewelry-related repository interfaces
type JewelryRepositoryFacade interface {
	JewelryReader
	JewelryWriter
}
