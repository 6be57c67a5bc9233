package services

// ServiceContainer holds instances of all the application services.
// Handlers reach every piece of business logic through it.
type ServiceContainer struct {
	Rate     RateSvcFacade
	Catalog  CatalogSvcFacade
	Pricing  PricingSvcFacade
	Estimate EstimateSvcFacade
}
