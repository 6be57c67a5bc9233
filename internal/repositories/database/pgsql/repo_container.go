package pgsql

import (
	portsrepo "github.com/SscSPs/jewellery_billing_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		RateRepo:     newPgxRateRepository(dbPool),
		ChargesRepo:  newPgxCategoryChargesRepository(dbPool),
		MaterialRepo: newPgxMaterialRepository(dbPool),
		JewelryRepo:  newPgxJewelryRepository(dbPool),
		EstimateRepo: newPgxEstimateRepository(dbPool),
	}
}
