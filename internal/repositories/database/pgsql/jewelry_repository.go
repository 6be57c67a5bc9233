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

// PgxJewelryRepository implements portsrepo.JewelryRepositoryFacade using pgxpool.
type PgxJewelryRepository struct {
	BaseRepository
}

func newPgxJewelryRepository(db *pgxpool.Pool) portsrepo.JewelryRepositoryFacade {
	return &PgxJewelryRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// SaveJewelryItem inserts an item and its stone lines in a single transaction.
func (r *PgxJewelryRepository) SaveJewelryItem(ctx context.Context, item domain.JewelryItem) error {
	modelItem, modelStones := mapping.ToModelJewelryItem(item)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO jewelry_items (
			code, name, purity, gross_weight, net_weight, certificate_required,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`,
		modelItem.Code, modelItem.Name, modelItem.Purity, modelItem.GrossWeight, modelItem.NetWeight,
		modelItem.CertificateRequired, modelItem.CreatedAt, modelItem.CreatedBy,
		modelItem.LastUpdatedAt, modelItem.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewDuplicateError("jewelry item " + modelItem.Code + " already exists")
		}
		return apperrors.NewAppError(500, "failed to save jewelry item "+modelItem.Code, err)
	}

	if len(modelStones) > 0 {
		batch := &pgx.Batch{}
		stoneQuery := `
			INSERT INTO jewelry_item_stones (item_code, line_no, stone_code, stone_name, weight_carats, rate_per_carat)
			VALUES ($1, $2, $3, $4, $5, $6);
		`
		for _, s := range modelStones {
			batch.Queue(stoneQuery, s.ItemCode, s.LineNo, s.Code, s.Name, s.WeightCarats, s.RatePerCarat)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return apperrors.NewAppError(500, "failed to save stones of jewelry item "+modelItem.Code, err)
		}
	}

	return r.Commit(ctx, tx)
}

// FindJewelryItemByCode retrieves an item with its stone lines in entry order.
func (r *PgxJewelryRepository) FindJewelryItemByCode(ctx context.Context, code string) (*domain.JewelryItem, error) {
	var m models.JewelryItem
	err := r.Pool.QueryRow(ctx, `
		SELECT code, name, purity, gross_weight, net_weight, certificate_required,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM jewelry_items
		WHERE code = $1;`, code,
	).Scan(
		&m.Code, &m.Name, &m.Purity, &m.GrossWeight, &m.NetWeight, &m.CertificateRequired,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("jewelry item " + code + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find jewelry item "+code, err)
	}

	rows, err := r.Pool.Query(ctx, `
		SELECT item_code, line_no, stone_code, stone_name, weight_carats, rate_per_carat
		FROM jewelry_item_stones
		WHERE item_code = $1
		ORDER BY line_no;`, code,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query stones of jewelry item "+code, err)
	}
	stones, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.JewelryStone, error) {
		var s models.JewelryStone
		err := row.Scan(&s.ItemCode, &s.LineNo, &s.Code, &s.Name, &s.WeightCarats, &s.RatePerCarat)
		return s, err
	})
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan stones of jewelry item "+code, err)
	}

	item := mapping.ToDomainJewelryItem(m, stones)
	return &item, nil
}
