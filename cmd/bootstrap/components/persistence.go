package components

import (
	"invite-role-bridge/internal/infra/readstore"
	sqlc "invite-role-bridge/internal/infra/sqlc/generated"
	"invite-role-bridge/internal/infra/uow"
	"invite-role-bridge/internal/usecase/queries"
	"invite-role-bridge/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Invite
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.InviteReadQueries)),
		),
		fx.Annotate(
			readstore.NewInviteReadStore,
			fx.As(new(queries.InviteReadStore)),
		),
	),
)

// Ledger repositories are bound per transaction inside the unit of work.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
