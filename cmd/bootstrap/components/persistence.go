package components

import (
	"auction-scheduler/internal/infra/readstore"
	sqlc "auction-scheduler/internal/infra/sqlc/generated"
	"auction-scheduler/internal/infra/sqlite"
	"auction-scheduler/internal/infra/uow"
	"auction-scheduler/internal/usecase/queries"
	"auction-scheduler/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Persistence exposes one storage backend through the ports the use cases depend on.
type Persistence struct {
	fx.Out

	UnitOfWork shared.UnitOfWork
	ReadStore  queries.AuctionReadStore
}

func NewPostgresPersistence(pool *pgxpool.Pool) Persistence {
	q := NewSQLQueries(pool)
	return Persistence{
		UnitOfWork: uow.NewPostgresUoW(pool, q),
		ReadStore:  readstore.NewAuctionReadStore(q, NewDBTX(pool)),
	}
}

// NewSQLitePersistence serves both ports from the same store.
func NewSQLitePersistence(store *sqlite.Store) Persistence {
	return Persistence{
		UnitOfWork: store,
		ReadStore:  store,
	}
}

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
