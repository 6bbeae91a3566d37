package components

import (
	"invite-role-bridge/internal/infra/snapshotstore"
	"invite-role-bridge/internal/pkg/clock"
	"invite-role-bridge/internal/usecase"
	"invite-role-bridge/internal/usecase/commands"
	"invite-role-bridge/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	// one in-memory store shared by the reconciler, issuance and the admin view
	fx.Annotate(
		snapshotstore.New,
		fx.As(new(commands.SnapshotStore)),
		fx.As(new(queries.SnapshotReader)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewEntitlementGate,
		commands.NewInviteUseCase,
		commands.NewJoinReconciler,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewInviteQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
