package pgsql

import (
	"context"

	"github.com/SscSPs/jewellery_billing_app/internal/apperrors"
	"github.com/SscSPs/jewellery_billing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/jewellery_billing_app/internal/core/ports/repositories"
	"github.com/SscSPs/jewellery_billing_app/internal/models"
	"github.com/SscSPs/jewellery_billing_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxMaterialRepository implements portsrepo.MaterialRepositoryFacade using pgxpool.
type PgxMaterialRepository struct {
	BaseRepository
}

func newPgxMaterialRepository(db *pgxpool.Pool) portsrepo.MaterialRepositoryFacade {
	return &PgxMaterialRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

func (r *PgxMaterialRepository) SaveMaterial(ctx context.Context, material domain.Material) error {
	m := mapping.ToModelMaterial(material)
	query := `
		INSERT INTO materials (material_id, code, name, category, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.MaterialID, m.Code, m.Name, m.Category,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewDuplicateError("material code " + m.Code + " already exists")
		}
		return apperrors.NewAppError(500, "failed to save material "+m.Code, err)
	}
	return nil
}

func (r *PgxMaterialRepository) ListMaterials(ctx context.Context, category string) ([]domain.Material, error) {
	query := `
		SELECT material_id, code, name, category, created_at, created_by, last_updated_at, last_updated_by
		FROM materials
		WHERE ($1::text = '' OR lower(category) = lower($1::text))
		ORDER BY code;
	`
	rows, err := r.Pool.Query(ctx, query, category)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list materials", err)
	}

	modelMaterials, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Material, error) {
		var m models.Material
		err := row.Scan(&m.MaterialID, &m.Code, &m.Name, &m.Category,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
		return m, err
	})
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan materials", err)
	}

	materials := make([]domain.Material, len(modelMaterials))
	for i, m := range modelMaterials {
		materials[i] = mapping.ToDomainMaterial(m)
	}
	return materials, nil
}
