package pgsql

import (
	portsrepo "github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		LedgerRepo:   newPgxLedgerRepository(dbPool),
		OrderRepo:    newPgxOrderRepository(dbPool),
		OrderAggRepo: newPgxReportingRepository(dbPool),
		DiscountRepo: newPgxDiscountRepository(dbPool),
		MemberRepo:   newPgxMemberRepository(dbPool),
		OutletRepo:   newPgxOutletRepository(dbPool),
		CategoryRepo: newPgxCategoryRepository(dbPool),
		ProductRepo:  newPgxProductRepository(dbPool),
	}
}
