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
	"github.com/SscSPs/jewellery_billing_app/internal/core/pricing"
	"github.com/SscSPs/jewellery_billing_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// catalogService implements the CatalogSvcFacade interface
type catalogService struct {
	BaseService
	chargesRepo  portsrepo.CategoryChargesRepositoryFacade
	materialRepo portsrepo.MaterialRepositoryFacade
	jewelryRepo  portsrepo.JewelryRepositoryFacade
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(
	chargesRepo portsrepo.CategoryChargesRepositoryFacade,
	materialRepo portsrepo.MaterialRepositoryFacade,
	jewelryRepo portsrepo.JewelryRepositoryFacade,
	options ...ServiceOption,
) portssvc.CatalogSvcFacade {
	return &catalogService{
		BaseService:  newBaseService(options),
		chargesRepo:  chargesRepo,
		materialRepo: materialRepo,
		jewelryRepo:  jewelryRepo,
	}
}

var _ portssvc.CatalogSvcFacade = (*catalogService)(nil)

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (s *catalogService) UpsertCategoryCharges(ctx context.Context, categoryCode string, req dto.CategoryChargesRequest, operator string) (*domain.CategoryCharges, error) {
	code := normalizeCode(categoryCode)
	if code == "" || domain.CategoryCode(code) != code {
		return nil, fmt.Errorf("%w: category code must consist of letters only", apperrors.ErrValidation)
	}
	values := []struct {
		name  string
		value *decimal.Decimal
	}{
		{"wastagePercent", req.WastagePercent},
		{"makingChargePerGram", req.MakingChargePerGram},
		{"certificationChargePerCarat", req.CertificationChargePerCarat},
	}
	for _, v := range values {
		if v.value == nil {
			return nil, fmt.Errorf("%w: %s is required", apperrors.ErrValidation, v.name)
		}
		if v.value.IsNegative() {
			return nil, fmt.Errorf("%w: %s must not be negative", apperrors.ErrValidation, v.name)
		}
	}

	charges := domain.CategoryCharges{
		CategoryCode:                code,
		WastagePercent:              req.WastagePercent,
		MakingChargePerGram:         req.MakingChargePerGram,
		CertificationChargePerCarat: req.CertificationChargePerCarat,
		AuditFields:                 domain.NewAuditFields(s.Now(), operator),
	}
	if err := s.chargesRepo.UpsertCategoryCharges(ctx, charges); err != nil {
		s.LogError(ctx, err, "Failed to save category charges", slog.String("category", code))
		return nil, fmt.Errorf("failed to save charges for category %s: %w", code, err)
	}

	s.LogInfo(ctx, "Category charges saved", slog.String("category", code))
	return &charges, nil
}

func (s *catalogService) GetCategoryCharges(ctx context.Context, categoryCode string) (*domain.CategoryCharges, error) {
	code := normalizeCode(categoryCode)
	charges, err := s.chargesRepo.FindCategoryCharges(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get charges for category %s: %w", code, err)
	}
	return charges, nil
}

func (s *catalogService) CreateMaterial(ctx context.Context, req dto.CreateMaterialRequest, operator string) (*domain.Material, error) {
	material := domain.Material{
		MaterialID:  uuid.NewString(),
		Code:        normalizeCode(req.Code),
		Name:        strings.TrimSpace(req.Name),
		Category:    strings.TrimSpace(req.Category),
		AuditFields: domain.NewAuditFields(s.Now(), operator),
	}
	if material.Code == "" || material.Name == "" || material.Category == "" {
		return nil, fmt.Errorf("%w: code, name and category are required", apperrors.ErrValidation)
	}
	if material.IsDiamond() {
		material.Category = domain.DiamondCategory
	}

	if err := s.materialRepo.SaveMaterial(ctx, material); err != nil {
		s.LogError(ctx, err, "Failed to save material", slog.String("code", material.Code))
		return nil, fmt.Errorf("failed to create material %s: %w", material.Code, err)
	}

	s.LogInfo(ctx, "Material created", slog.String("code", material.Code), slog.String("category", material.Category))
	return &material, nil
}

func (s *catalogService) ListMaterials(ctx context.Context, category string) ([]domain.Material, error) {
	materials, err := s.materialRepo.ListMaterials(ctx, strings.TrimSpace(category))
	if err != nil {
		return nil, fmt.Errorf("failed to list materials: %w", err)
	}
	if materials == nil {
		return []domain.Material{}, nil
	}
	return materials, nil
}

func (s *catalogService) DiamondCodes(ctx context.Context) ([]string, error) {
	materials, err := s.ListMaterials(ctx, domain.DiamondCategory)
	if err != nil {
		return nil, err
	}
	codes := make([]string, 0, len(materials))
	for _, m := range materials {
		if m.IsDiamond() {
			codes = append(codes, m.Code)
		}
	}
	return codes, nil
}

func (s *catalogService) CreateJewelryItem(ctx context.Context, req dto.CreateJewelryItemRequest, operator string) (*domain.JewelryItem, error) {
	item := domain.JewelryItem{
		Code:                normalizeCode(req.Code),
		Name:                strings.TrimSpace(req.Name),
		Purity:              req.Purity,
		GrossWeight:         req.GrossWeight,
		NetWeight:           req.NetWeight,
		CertificateRequired: req.CertificateRequired,
		Stones:              dto.ToStoneLines(req.Stones),
		AuditFields:         domain.NewAuditFields(s.Now(), operator),
	}
	if err := validateJewelryItem(&item); err != nil {
		s.LogWarn(ctx, err, "Rejected jewelry item", slog.String("code", item.Code))
		return nil, err
	}

	if err := s.jewelryRepo.SaveJewelryItem(ctx, item); err != nil {
		s.LogError(ctx, err, "Failed to save jewelry item", slog.String("code", item.Code))
		return nil, fmt.Errorf("failed to create jewelry item %s: %w", item.Code, err)
	}

	s.LogInfo(ctx, "Jewelry item created",
		slog.String("code", item.Code),
		slog.Int("stones", len(item.Stones)))
	return &item, nil
}

// validateJewelryItem checks a catalog item and fills in its net weight.
func validateJewelryItem(item *domain.JewelryItem) error {
	if item.Code == "" || item.Name == "" {
		return fmt.Errorf("%w: code and name are required", apperrors.ErrValidation)
	}
	if domain.CategoryCode(item.Code) == "" {
		return fmt.Errorf("%w: item code must start with its category letters", apperrors.ErrValidation)
	}
	if item.Purity == nil || *item.Purity < domain.MinPurityKarat || *item.Purity > domain.MaxPurityKarat {
		return fmt.Errorf("%w: purity must be between %d and %d karat", apperrors.ErrValidation, domain.MinPurityKarat, domain.MaxPurityKarat)
	}
	if item.GrossWeight == nil || item.GrossWeight.IsNegative() {
		return fmt.Errorf("%w: grossWeight is required and must not be negative", apperrors.ErrValidation)
	}
	for i, stone := range item.Stones {
		if stone.WeightCarats == nil || stone.WeightCarats.IsNegative() ||
			stone.RatePerCarat == nil || stone.RatePerCarat.IsNegative() {
			return fmt.Errorf("%w: stones[%d] needs a non-negative weightCarats and ratePerCarat", apperrors.ErrValidation, i)
		}
		item.Stones[i].Code = normalizeCode(stone.Code)
	}

	net, err := pricing.ResolveNetWeight(*item)
	if err != nil {
		return err
	}
	item.NetWeight = &net
	return nil
}

func (s *catalogService) GetJewelryItem(ctx context.Context, code string) (*domain.JewelryItem, error) {
	normalized := normalizeCode(code)
	item, err := s.jewelryRepo.FindJewelryItemByCode(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to get jewelry item %s: %w", normalized, err)
	}
	return item, nil
}
