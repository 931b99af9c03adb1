package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	LedgerRepo   LedgerRepository
	OrderRepo    OrderRepository
	OrderAggRepo OrderAggregateRepository
	DiscountRepo DiscountRepository
	MemberRepo   MemberRepository
	OutletRepo   OutletRepository
	CategoryRepo CategoryRepository
	ProductRepo  ProductRepository
}
