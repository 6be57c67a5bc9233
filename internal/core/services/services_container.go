package services

import (
	portsrepo "github.com/SscSPs/jewellery_billing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/jewellery_billing_app/internal/core/ports/services"
	"github.com/SscSPs/jewellery_billing_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, options ...ServiceOption) *portssvc.ServiceContainer {
	options = append([]ServiceOption{WithLocation(cfg.BusinessLocation)}, options...)

	container := &portssvc.ServiceContainer{}
	container.Rate = NewRateService(repos.RateRepo, options...)
	container.Catalog = NewCatalogService(repos.ChargesRepo, repos.MaterialRepo, repos.JewelryRepo, options...)
	container.Pricing = NewPricingService(container.Rate, container.Catalog, cfg.BatchPricingConcurrency, options...)
	container.Estimate = NewEstimateService(repos.EstimateRepo, container.Pricing, cfg.ShopName, options...)
	return container
}
