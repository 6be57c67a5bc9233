package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/SscSPs/jewellery_billing_app/internal/apperrors"
	"github.com/SscSPs/jewellery_billing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/jewellery_billing_app/internal/core/ports/repositories"
	"github.com/SscSPs/jewellery_billing_app/internal/models"
	"github.com/SscSPs/jewellery_billing_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const rateColumns = `rate_id, rate_type, value, date_effective, created_at, created_by, last_updated_at, last_updated_by`

// PgxRateRepository implements portsrepo.RateRepositoryFacade using pgxpool.
type PgxRateRepository struct {
	BaseRepository
}

func newPgxRateRepository(db *pgxpool.Pool) portsrepo.RateRepositoryFacade {
	return &PgxRateRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// SaveRate inserts a daily rate. A second rate of the same type for the same date is rejected.
func (r *PgxRateRepository) SaveRate(ctx context.Context, rate domain.Rate) error {
	modelRate := mapping.ToModelRate(rate)
	query := `
		INSERT INTO daily_rates (` + rateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelRate.RateID,
		modelRate.RateType,
		modelRate.Value,
		modelRate.DateEffective,
		modelRate.CreatedAt,
		modelRate.CreatedBy,
		modelRate.LastUpdatedAt,
		modelRate.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewDuplicateError(modelRate.RateType + " rate already recorded for " + modelRate.DateEffective.Format("2006-01-02"))
		}
		return apperrors.NewAppError(500, "failed to save rate "+modelRate.RateID, err)
	}
	return nil
}

// FindRate retrieves the rate of one type recorded for a date.
func (r *PgxRateRepository) FindRate(ctx context.Context, rateType domain.RateType, date time.Time) (*domain.Rate, error) {
	query := `SELECT ` + rateColumns + ` FROM daily_rates WHERE rate_type = $1 AND date_effective = $2;`

	var m models.Rate
	err := r.Pool.QueryRow(ctx, query, string(rateType), date).Scan(
		&m.RateID, &m.RateType, &m.Value, &m.DateEffective,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(string(rateType) + " rate not found for " + date.Format("2006-01-02"))
		}
		return nil, apperrors.NewAppError(500, "failed to find rate", err)
	}

	rate := mapping.ToDomainRate(m)
	return &rate, nil
}

// FindRatesForDate retrieves every rate recorded for a date.
func (r *PgxRateRepository) FindRatesForDate(ctx context.Context, date time.Time) ([]domain.Rate, error) {
	query := `SELECT ` + rateColumns + ` FROM daily_rates WHERE date_effective = $1 ORDER BY rate_type;`

	rows, err := r.Pool.Query(ctx, query, date)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query rates for "+date.Format("2006-01-02"), err)
	}
	return collectRates(rows)
}

// ListRates retrieves rate history, newest date first.
func (r *PgxRateRepository) ListRates(ctx context.Context, filter portsrepo.RateListFilter) ([]domain.Rate, error) {
	query := `SELECT ` + rateColumns + ` FROM daily_rates WHERE 1=1`
	var args []interface{}

	if filter.RateType != "" {
		args = append(args, string(filter.RateType))
		query += " AND rate_type = $" + strconv.Itoa(len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		query += " AND date_effective >= $" + strconv.Itoa(len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += " AND date_effective <= $" + strconv.Itoa(len(args))
	}
	query += " ORDER BY date_effective DESC, rate_type"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += " LIMIT $" + strconv.Itoa(len(args))
	}

	rows, err := r.Pool.Query(ctx, query+";", args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list rates", err)
	}
	return collectRates(rows)
}

func collectRates(rows pgx.Rows) ([]domain.Rate, error) {
	modelRates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Rate, error) {
		var m models.Rate
		err := row.Scan(
			&m.RateID, &m.RateType, &m.Value, &m.DateEffective,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		)
		return m, err
	})
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan rates", err)
	}

	rates := make([]domain.Rate, len(modelRates))
	for i, m := range modelRates {
		rates[i] = mapping.ToDomainRate(m)
	}
	return rates, nil
}
