//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"invite-role-bridge/internal/domain/invite"
	"invite-role-bridge/internal/infra"
	"invite-role-bridge/internal/pkg/clock"
	"invite-role-bridge/internal/pkg/config"
	"invite-role-bridge/internal/pkg/errs"
	"invite-role-bridge/internal/usecase/commands"
	"invite-role-bridge/internal/usecase/shared"
	"invite-role-bridge/tests/common/builder"
	commandsmock "invite-role-bridge/tests/mock/commands"
	sharedmock "invite-role-bridge/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	guildID  = "1100000000000000001"
	memberID = builder.DefaultMemberID
	roleID   = builder.DefaultRoleID
)

var (
	// one hour after the builder's default creation time
	gateNow = time.Date(2026, 3, 1, 13, 0, 0, 0, time.UTC)
	errDB   = errs.New("connection reset")
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// expectTx makes every Within call run its function against repo.
func expectTx(ctrl *gomock.Controller, uow *sharedmock.MockUnitOfWork) *sharedmock.MockInviteRepository {
	repo := sharedmock.NewMockInviteRepository(ctrl)
	tx := sharedmock.NewMockTx(ctrl)
	tx.EXPECT().Invites().Return(repo).AnyTimes()
	uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, tx)
		}).AnyTimes()
	return repo
}

type GateSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	repo     *sharedmock.MockInviteRepository
	roles    *commandsmock.MockRoleGranter
	prompter *commandsmock.MockVerificationPrompter
	cfg      config.Config
	gate     commands.EntitlementGate
}

func (s *GateSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	uow := sharedmock.NewMockUnitOfWork(s.ctrl)
	s.repo = expectTx(s.ctrl, uow)
	s.roles = commandsmock.NewMockRoleGranter(s.ctrl)
	s.prompter = commandsmock.NewMockVerificationPrompter(s.ctrl)
	s.cfg = config.NewTestConfig()
	s.gate = commands.NewEntitlementGate(uow, s.roles, s.prompter, clock.NewMockClock(gateNow), s.cfg, discardLogger())
}

func (s *GateSuite) SetupSubTest() {
	s.SetupTest()
}

func TestGateSuite(t *testing.T) {
	suite.Run(t, new(GateSuite))
}

// =============================================================================
// Transition JOINED
// =============================================================================

func (s *GateSuite) TestTransition_Joined() {
	s.Run("pending invite is claimed and prompted", func() {
		inv := builder.NewInviteBuilder().Build()
		prompt := invite.VerificationPrompt{ChannelID: s.cfg.Discord.RulesChannelID, MessageID: "1700000000000000001"}

		gomock.InOrder(
			s.repo.EXPECT().FindByCodeForUpdate(gomock.Any(), "aB3dE9").Return(inv, nil),
			s.repo.EXPECT().UpdateState(gomock.Any(), inv, invite.StatusPending).Return(nil),
			s.prompter.EXPECT().PostPrompt(gomock.Any(), s.cfg.Discord.RulesChannelID, memberID).Return(prompt, nil),
			s.repo.EXPECT().UpdatePrompt(gomock.Any(), inv).Return(nil),
		)

		err := s.gate.Transition(context.Background(), "aB3dE9", invite.EventJoined, guildID, memberID)

		s.Require().NoError(err)
		s.Equal(invite.StatusPendingVerification, inv.Status())
		s.Equal(memberID, inv.MemberID())
		s.Equal(prompt, inv.Prompt())
	})

	s.Run("join in a foreign guild matches nothing pending", func() {
		err := s.gate.Transition(context.Background(), "aB3dE9", invite.EventJoined, "1100000000000000099", memberID)

		s.True(errs.Is(err, commands.ErrUnknownGuild))
		s.True(errs.Is(err, commands.ErrNoSuchPendingInvite))
	})

	s.Run("unknown code", func() {
		s.repo.EXPECT().FindByCodeForUpdate(gomock.Any(), "vanity").
			Return(nil, infra.WrapRepoErr("invite not found", nil, infra.KindNotFound))

		err := s.gate.Transition(context.Background(), "vanity", invite.EventJoined, guildID, memberID)

		s.True(errs.Is(err, commands.ErrNoSuchPendingInvite))
	})

	s.Run("invite already claimed", func() {
		inv := builder.NewInviteBuilder().Claimed("1400000000000000077").Build()
		s.repo.EXPECT().FindByCodeForUpdate(gomock.Any(), "aB3dE9").Return(inv, nil)

		err := s.gate.Transition(context.Background(), "aB3dE9", invite.EventJoined, guildID, memberID)

		s.True(errs.Is(err, commands.ErrNoSuchPendingInvite))
		s.Equal("1400000000000000077", inv.MemberID())
	})

	s.Run("lapsed invite is expired instead of claimed", func() {
		inv := builder.NewInviteBuilder().WithExpiresAt(gateNow.Add(-time.Minute)).Build()
		s.repo.EXPECT().FindByCodeForUpdate(gomock.Any(), "aB3dE9").Return(inv, nil)
		s.repo.EXPECT().UpdateState(gomock.Any(), inv, invite.StatusPending).Return(nil)

		err := s.gate.Transition(context.Background(), "aB3dE9", invite.EventJoined, guildID, memberID)

		s.True(errs.Is(err, commands.ErrNoSuchPendingInvite))
		s.True(errs.Is(err, invite.ErrExpired))
		s.Equal(invite.StatusExpired, inv.Status())
	})

	s.Run("concurrent claim loses the conditional update", func() {
		inv := builder.NewInviteBuilder().Build()
		s.repo.EXPECT().FindByCodeForUpdate(gomock.Any(), "aB3dE9").Return(inv, nil)
		s.repo.EXPECT().UpdateState(gomock.Any(), inv, invite.StatusPending).
			Return(infra.WrapRepoErr("invite state changed concurrently", nil, infra.KindConflict))

		err := s.gate.Transition(context.Background(), "aB3dE9", invite.EventJoined, guildID, memberID)

		s.True(errs.Is(err, commands.ErrNoSuchPendingInvite))
	})

	s.Run("prompt failure keeps the claim", func() {
		inv := builder.NewInviteBuilder().Build()
		s.repo.EXPECT().FindByCodeForUpdate(gomock.Any(), "aB3dE9").Return(inv, nil)
		s.repo.EXPECT().UpdateState(gomock.Any(), inv, invite.StatusPending).Return(nil)
		s.prompter.EXPECT().PostPrompt(gomock.Any(), gomock.Any(), memberID).
			Return(invite.VerificationPrompt{}, errs.Mark(errs.New("missing access"), errs.ErrPermissionDenied))

		err := s.gate.Transition(context.Background(), "aB3dE9", invite.EventJoined, guildID, memberID)

		s.NoError(err)
		s.Equal(invite.StatusPendingVerification, inv.Status())
		s.True(inv.Prompt().IsZero())
	})

	s.Run("database failure is not a ledger refusal", func() {
		s.repo.EXPECT().FindByCodeForUpdate(gomock.Any(), "aB3dE9").
			Return(nil, infra.WrapRepoErr("failed to find invite by code", errDB))

		err := s.gate.Transition(context.Background(), "aB3dE9", invite.EventJoined, guildID, memberID)

		s.Require().Error(err)
		s.False(errs.Is(err, commands.ErrNoSuchPendingInvite))
		s.True(infra.IsKind(err, infra.KindDBFailure))
	})
}

// =============================================================================
// Transition EXPIRED and others
// =============================================================================

func (s *GateSuite) TestTransition_Expired() {
	s.Run("pending invite expires", func() {
		inv := builder.NewInviteBuilder().Build()
		s.repo.EXPECT().FindByCodeForUpdate(gomock.Any(), "aB3dE9").Return(inv, nil)
		s.repo.EXPECT().UpdateState(gomock.Any(), inv, invite.StatusPending).Return(nil)

		s.NoError(s.gate.Transition(context.Background(), "aB3dE9", invite.EventExpired, guildID, ""))
		s.Equal(invite.StatusExpired, inv.Status())
	})

	s.Run("claimed invite does not expire", func() {
		inv := builder.NewInviteBuilder().Claimed(memberID).Build()
		s.repo.EXPECT().FindByCodeForUpdate(gomock.Any(), "aB3dE9").Return(inv, nil)

		err := s.gate.Transition(context.Background(), "aB3dE9", invite.EventExpired, guildID, "")

		s.True(errs.Is(err, commands.ErrNoSuchPendingInvite))
		s.Equal(invite.StatusPendingVerification, inv.Status())
	})

	s.Run("confirmation is not a transition event", func() {
		err := s.gate.Transition(context.Background(), "aB3dE9", invite.EventConfirmed, guildID, memberID)
		s.True(errs.Is(err, commands.ErrUnsupportedEvent))
	})
}

// =============================================================================
// ConfirmAndGrant
// =============================================================================

func (s *GateSuite) TestConfirmAndGrant() {
	claimed := func() *invite.Invite {
		return builder.NewInviteBuilder().Claimed(memberID).Build()
	}

	s.Run("foreign guild is refused before the ledger is read", func() {
		got, err := s.gate.ConfirmAndGrant(context.Background(), "1100000000000000099", memberID)

		s.Empty(got)
		s.True(errs.Is(err, commands.ErrUnknownGuild))
	})

	s.Run("grants the role and closes the entry", func() {
		pending := claimed()
		locked := claimed()

		gomock.InOrder(
			s.repo.EXPECT().FindAwaitingVerificationForUpdate(gomock.Any(), memberID).Return(pending, nil),
			s.roles.EXPECT().FindRole(gomock.Any(), guildID, roleID).Return(&commands.Role{ID: roleID, Position: 2}, nil),
			s.roles.EXPECT().TopRolePosition(gomock.Any(), guildID).Return(5, nil),
			s.roles.EXPECT().GrantRole(gomock.Any(), guildID, memberID, roleID).Return(nil),
			s.repo.EXPECT().FindByCodeForUpdate(gomock.Any(), "aB3dE9").Return(locked, nil),
			s.repo.EXPECT().UpdateState(gomock.Any(), locked, invite.StatusPendingVerification).Return(nil),
		)

		got, err := s.gate.ConfirmAndGrant(context.Background(), guildID, memberID)

		s.Require().NoError(err)
		s.Equal(roleID, got)
		s.Equal(invite.StatusUsed, locked.Status())
		s.Require().NotNil(locked.UsedAt())
		s.Equal(gateNow, *locked.UsedAt())
	})

	s.Run("nothing awaiting verification", func() {
		s.repo.EXPECT().FindAwaitingVerificationForUpdate(gomock.Any(), memberID).
			Return(nil, infra.WrapRepoErr("no invite awaiting verification", nil, infra.KindNotFound))

		_, err := s.gate.ConfirmAndGrant(context.Background(), guildID, memberID)

		s.True(errs.Is(err, commands.ErrNoPendingVerification))
	})

	s.Run("role missing from the guild", func() {
		s.repo.EXPECT().FindAwaitingVerificationForUpdate(gomock.Any(), memberID).Return(claimed(), nil)
		s.roles.EXPECT().FindRole(gomock.Any(), guildID, roleID).Return(nil, nil)

		_, err := s.gate.ConfirmAndGrant(context.Background(), guildID, memberID)

		s.True(errs.Is(err, commands.ErrRoleNotFound))
	})

	s.Run("role at the bot's own position is refused", func() {
		s.repo.EXPECT().FindAwaitingVerificationForUpdate(gomock.Any(), memberID).Return(claimed(), nil)
		s.roles.EXPECT().FindRole(gomock.Any(), guildID, roleID).Return(&commands.Role{ID: roleID, Position: 5}, nil)
		s.roles.EXPECT().TopRolePosition(gomock.Any(), guildID).Return(5, nil)

		_, err := s.gate.ConfirmAndGrant(context.Background(), guildID, memberID)

		s.True(errs.Is(err, commands.ErrInsufficientBotPrivilege))
		s.True(errs.Is(err, invite.ErrInsufficientPrivilege))
	})

	s.Run("failed grant leaves the entry awaiting verification", func() {
		s.repo.EXPECT().FindAwaitingVerificationForUpdate(gomock.Any(), memberID).Return(claimed(), nil)
		s.roles.EXPECT().FindRole(gomock.Any(), guildID, roleID).Return(&commands.Role{ID: roleID, Position: 1}, nil)
		s.roles.EXPECT().TopRolePosition(gomock.Any(), guildID).Return(5, nil)
		s.roles.EXPECT().GrantRole(gomock.Any(), guildID, memberID, roleID).
			Return(errs.Mark(errs.New("gateway timeout"), errs.ErrTransientUnavailable))

		_, err := s.gate.ConfirmAndGrant(context.Background(), guildID, memberID)

		s.True(errs.Is(err, errs.ErrTransientUnavailable))
	})

	s.Run("bot identity lookup failure", func() {
		s.repo.EXPECT().FindAwaitingVerificationForUpdate(gomock.Any(), memberID).Return(claimed(), nil)
		s.roles.EXPECT().FindRole(gomock.Any(), guildID, roleID).Return(&commands.Role{ID: roleID, Position: 1}, nil)
		s.roles.EXPECT().TopRolePosition(gomock.Any(), guildID).
			Return(0, errs.Mark(errs.New("forbidden"), errs.ErrPermissionDenied))

		_, err := s.gate.ConfirmAndGrant(context.Background(), guildID, memberID)

		s.True(errs.Is(err, errs.ErrPermissionDenied))
	})

	s.Run("second confirmation racing the first", func() {
		locked := claimed()
		s.repo.EXPECT().FindAwaitingVerificationForUpdate(gomock.Any(), memberID).Return(claimed(), nil)
		s.roles.EXPECT().FindRole(gomock.Any(), guildID, roleID).Return(&commands.Role{ID: roleID, Position: 1}, nil)
		s.roles.EXPECT().TopRolePosition(gomock.Any(), guildID).Return(5, nil)
		s.roles.EXPECT().GrantRole(gomock.Any(), guildID, memberID, roleID).Return(nil)
		s.repo.EXPECT().FindByCodeForUpdate(gomock.Any(), "aB3dE9").Return(locked, nil)
		s.repo.EXPECT().UpdateState(gomock.Any(), locked, invite.StatusPendingVerification).
			Return(infra.WrapRepoErr("invite state changed concurrently", nil, infra.KindConflict))

		_, err := s.gate.ConfirmAndGrant(context.Background(), guildID, memberID)

		s.True(errs.Is(err, commands.ErrNoPendingVerification))
	})

	s.Run("entry already closed when re-read", func() {
		s.repo.EXPECT().FindAwaitingVerificationForUpdate(gomock.Any(), memberID).Return(claimed(), nil)
		s.roles.EXPECT().FindRole(gomock.Any(), guildID, roleID).Return(&commands.Role{ID: roleID, Position: 1}, nil)
		s.roles.EXPECT().TopRolePosition(gomock.Any(), guildID).Return(5, nil)
		s.roles.EXPECT().GrantRole(gomock.Any(), guildID, memberID, roleID).Return(nil)
		s.repo.EXPECT().FindByCodeForUpdate(gomock.Any(), "aB3dE9").
			Return(builder.NewInviteBuilder().Used(memberID, gateNow).Build(), nil)

		_, err := s.gate.ConfirmAndGrant(context.Background(), guildID, memberID)

		s.True(errs.Is(err, commands.ErrNoPendingVerification))
	})
}

func TestEntitlementGate_UnitOfWorkFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	uow := sharedmock.NewMockUnitOfWork(ctrl)
	uow.EXPECT().Within(gomock.Any(), gomock.Any()).Return(errDB)

	gate := commands.NewEntitlementGate(uow, commandsmock.NewMockRoleGranter(ctrl), commandsmock.NewMockVerificationPrompter(ctrl),
		clock.NewMockClock(gateNow), config.NewTestConfig(), discardLogger())

	_, err := gate.ConfirmAndGrant(context.Background(), guildID, memberID)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errDB))
}
