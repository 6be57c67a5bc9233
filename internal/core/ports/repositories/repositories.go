package repositories

// RepositoryProvider holds all repository interfaces needed by services.
type RepositoryProvider struct {
	RateRepo     RateRepositoryFacade
	ChargesRepo  CategoryChargesRepositoryFacade
	MaterialRepo MaterialRepositoryFacade
	JewelryRepo  JewelryRepositoryFacade
	EstimateRepo EstimateRepositoryFacade
}
