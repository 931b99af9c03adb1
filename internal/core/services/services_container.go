package services

import (
	portsrepo "github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/ports/repositories"
	portssvc "github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/ports/services"
	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.DailyLedger = NewDailyLedgerService(repos.LedgerRepo)
	container.SalesReconciler = NewSalesReconcilerService(container.DailyLedger, repos.LedgerRepo, repos.OrderAggRepo)
	container.Order = NewOrderService(
		repos.OrderRepo,
		repos.ProductRepo,
		repos.DiscountRepo,
		repos.MemberRepo,
	)
	container.Discount = NewDiscountService(repos.DiscountRepo)
	container.Member = NewMemberService(repos.MemberRepo)
	container.Outlet = NewOutletService(repos.OutletRepo)
	container.Category = NewCategoryService(repos.CategoryRepo)
	container.Product = NewProductService(repos.ProductRepo, repos.CategoryRepo)

	return container
}
