package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/jewellery_billing_app/internal/apperrors"
	"github.com/SscSPs/jewellery_billing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/jewellery_billing_app/internal/core/ports/repositories"
	"github.com/SscSPs/jewellery_billing_app/internal/models"
	"github.com/SscSPs/jewellery_billing_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxCategoryChargesRepository implements portsrepo.CategoryChargesRepositoryFacade using pgxpool.
type PgxCategoryChargesRepository struct {
	BaseRepository
}

func newPgxCategoryChargesRepository(db *pgxpool.Pool) portsrepo.CategoryChargesRepositoryFacade {
	return &PgxCategoryChargesRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// FindCategoryCharges retrieves the charges of a category.
func (r *PgxCategoryChargesRepository) FindCategoryCharges(ctx context.Context, categoryCode string) (*domain.CategoryCharges, error) {
	query := `
		SELECT category_code, wastage_percent, making_charge_per_gram, certification_charge_per_carat,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM category_charges
		WHERE category_code = $1;
	`
	var m models.CategoryCharges
	err := r.Pool.QueryRow(ctx, query, categoryCode).Scan(
		&m.CategoryCode, &m.WastagePercent, &m.MakingChargePerGram, &m.CertificationChargePerCarat,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("charges not configured for category " + categoryCode)
		}
		return nil, apperrors.NewAppError(500, "failed to find category charges", err)
	}

	charges := mapping.ToDomainCategoryCharges(m)
	return &charges, nil
}

// UpsertCategoryCharges inserts the charges of a category or replaces them, keeping the original creation audit.
func (r *PgxCategoryChargesRepository) UpsertCategoryCharges(ctx context.Context, charges domain.CategoryCharges) error {
	m := mapping.ToModelCategoryCharges(charges)
	query := `
		INSERT INTO category_charges (
			category_code, wastage_percent, making_charge_per_gram, certification_charge_per_carat,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (category_code) DO UPDATE SET
			wastage_percent = EXCLUDED.wastage_percent,
			making_charge_per_gram = EXCLUDED.making_charge_per_gram,
			certification_charge_per_carat = EXCLUDED.certification_charge_per_carat,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CategoryCode, m.WastagePercent, m.MakingChargePerGram, m.CertificationChargePerCarat,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save charges for category "+m.CategoryCode, err)
	}
	return nil
}
