package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/SscSPs/jewellery_billing_app/internal/apperrors"
	"github.com/SscSPs/jewellery_billing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/jewellery_billing_app/internal/core/ports/repositories"
	"github.com/SscSPs/jewellery_billing_app/internal/models"
	"github.com/SscSPs/jewellery_billing_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const estimateColumns = `
	estimate_id, number, kind, mode, customer_name, customer_phone, estimate_date, item_code, item_name,
	gross_weight, net_weight, purity, fine_weight, gold_rate_per_gram, gold_price_per_gram, gold_value,
	wastage_amount, making_amount, total_gold_amount, stone_lines, stone_total, diamond_carats,
	certification_charge, subtotal, tax_percent, tax_amount, grand_total,
	usd_to_inr_rate, subtotal_usd, tax_amount_usd, grand_total_usd,
	created_at, created_by, last_updated_at, last_updated_by`

// PgxEstimateRepository implements portsrepo.EstimateRepositoryFacade using pgxpool.
type PgxEstimateRepository struct {
	BaseRepository
}

func newPgxEstimateRepository(db *pgxpool.Pool) portsrepo.EstimateRepositoryFacade {
	return &PgxEstimateRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// SaveEstimate inserts a saved estimate or bill. Stone lines are stored as JSONB.
func (r *PgxEstimateRepository) SaveEstimate(ctx context.Context, estimate domain.Estimate) error {
	m := mapping.ToModelEstimate(estimate)
	query := `
		INSERT INTO estimates (` + estimateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18,
		        $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32, $33, $34, $35);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.EstimateID, m.Number, m.Kind, m.Mode, m.CustomerName, m.CustomerPhone, m.EstimateDate,
		m.ItemCode, m.ItemName, m.GrossWeight, m.NetWeight, m.Purity, m.FineWeight,
		m.GoldRatePerGram, m.GoldPricePerGram, m.GoldValue, m.WastageAmount, m.MakingAmount,
		m.TotalGoldAmount, m.StoneLines, m.StoneTotal, m.DiamondCarats, m.CertificationCharge,
		m.Subtotal, m.TaxPercent, m.TaxAmount, m.GrandTotal,
		m.USDToINRRate, m.SubtotalUSD, m.TaxAmountUSD, m.GrandTotalUSD,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewDuplicateError("estimate " + m.Number + " already exists")
		}
		return apperrors.NewAppError(500, "failed to save estimate "+m.Number, err)
	}
	return nil
}

func (r *PgxEstimateRepository) FindEstimateByID(ctx context.Context, estimateID string) (*domain.Estimate, error) {
	query := `SELECT ` + estimateColumns + ` FROM estimates WHERE estimate_id = $1;`

	m, err := scanEstimate(r.Pool.QueryRow(ctx, query, estimateID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("estimate " + estimateID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find estimate "+estimateID, err)
	}

	estimate := mapping.ToDomainEstimate(m)
	return &estimate, nil
}

// ListEstimates retrieves estimates newest first. With a cursor, only rows strictly
// older than (AfterCreatedAt, AfterID) are returned.
func (r *PgxEstimateRepository) ListEstimates(ctx context.Context, filter portsrepo.EstimateListFilter) ([]domain.Estimate, error) {
	query := `SELECT ` + estimateColumns + ` FROM estimates WHERE 1=1`
	var args []interface{}

	if filter.Kind != "" {
		args = append(args, string(filter.Kind))
		query += " AND kind = $" + strconv.Itoa(len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		query += " AND estimate_date >= $" + strconv.Itoa(len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += " AND estimate_date <= $" + strconv.Itoa(len(args))
	}
	if filter.AfterCreatedAt != nil {
		args = append(args, *filter.AfterCreatedAt, filter.AfterID)
		query += " AND (created_at, estimate_id) < ($" + strconv.Itoa(len(args)-1) + ", $" + strconv.Itoa(len(args)) + ")"
	}
	query += " ORDER BY created_at DESC, estimate_id DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += " LIMIT $" + strconv.Itoa(len(args))
	}

	rows, err := r.Pool.Query(ctx, query+";", args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list estimates", err)
	}
	modelEstimates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Estimate, error) {
		return scanEstimate(row)
	})
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan estimates", err)
	}

	estimates := make([]domain.Estimate, len(modelEstimates))
	for i, m := range modelEstimates {
		estimates[i] = mapping.ToDomainEstimate(m)
	}
	return estimates, nil
}

func scanEstimate(row pgx.Row) (models.Estimate, error) {
	var m models.Estimate
	err := row.Scan(
		&m.EstimateID, &m.Number, &m.Kind, &m.Mode, &m.CustomerName, &m.CustomerPhone, &m.EstimateDate,
		&m.ItemCode, &m.ItemName, &m.GrossWeight, &m.NetWeight, &m.Purity, &m.FineWeight,
		&m.GoldRatePerGram, &m.GoldPricePerGram, &m.GoldValue, &m.WastageAmount, &m.MakingAmount,
		&m.TotalGoldAmount, &m.StoneLines, &m.StoneTotal, &m.DiamondCarats, &m.CertificationCharge,
		&m.Subtotal, &m.TaxPercent, &m.TaxAmount, &m.GrandTotal,
		&m.USDToINRRate, &m.SubtotalUSD, &m.TaxAmountUSD, &m.GrandTotalUSD,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}
