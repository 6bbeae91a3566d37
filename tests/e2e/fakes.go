//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"sync"
	"time"

	"invite-role-bridge/internal/domain/invite"
	"invite-role-bridge/internal/domain/snapshot"
	"invite-role-bridge/internal/usecase/commands"

	"go.uber.org/fx"
)

const (
	// position of the bot's highest role in the fake guild
	fakeBotTopPosition = 5
	FakeRoleID         = "1300000000000000002"
	// sits above the bot, grants must be refused
	FakeHighRoleID = "1300000000000000009"
)

type Grant struct {
	GuildID  string
	MemberID string
	RoleID   string
}

type SentMail struct {
	To  string
	URL string
}

// FakeDiscord stands in for the guild: it keeps the invite list the lister
// reports and records what the bot did to it.
type FakeDiscord struct {
	mu      sync.Mutex
	next    int
	invites map[string]int
	grants  []Grant
	prompts []string
	mail    []SentMail
}

var fakeDiscordModule = fx.Module("fakediscord",
	fx.Provide(
		func() *FakeDiscord { return &FakeDiscord{invites: make(map[string]int)} },
		func(f *FakeDiscord) commands.InviteLister { return f },
		func(f *FakeDiscord) commands.RoleGranter { return f },
		func(f *FakeDiscord) commands.InviteCreator { return f },
		func(f *FakeDiscord) commands.VerificationPrompter { return f },
		func(f *FakeDiscord) commands.Mailer { return f },
	),
)

func (f *FakeDiscord) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.invites = make(map[string]int)
	f.grants = nil
	f.prompts = nil
	f.mail = nil
}

// Use simulates a member joining through code.
func (f *FakeDiscord) Use(code string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.invites[code]; ok {
		f.invites[code]++
	}
}

// Revoke removes code the way the platform drops an exhausted single-use invite.
func (f *FakeDiscord) Revoke(code string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.invites, code)
}

func (f *FakeDiscord) AddInvite(code string, uses int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.invites[code] = uses
}

func (f *FakeDiscord) Grants() []Grant {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Grant(nil), f.grants...)
}

func (f *FakeDiscord) Prompts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.prompts...)
}

func (f *FakeDiscord) Mail() []SentMail {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]SentMail(nil), f.mail...)
}

func (f *FakeDiscord) ListInvites(_ context.Context, _ string) (snapshot.Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return snapshot.New(f.invites)
}

func (f *FakeDiscord) FindRole(_ context.Context, _, roleID string) (*commands.Role, error) {
	switch roleID {
	case FakeRoleID:
		return &commands.Role{ID: roleID, Name: "Member", Position: 2}, nil
	case FakeHighRoleID:
		return &commands.Role{ID: roleID, Name: "Admin", Position: 9}, nil
	default:
		return nil, nil
	}
}

func (f *FakeDiscord) TopRolePosition(_ context.Context, _ string) (int, error) {
	return fakeBotTopPosition, nil
}

func (f *FakeDiscord) GrantRole(_ context.Context, guildID, memberID, roleID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.grants = append(f.grants, Grant{GuildID: guildID, MemberID: memberID, RoleID: roleID})
	return nil
}

func (f *FakeDiscord) CreateInvite(_ context.Context, _ string, _ time.Duration, _ string) (string, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.next++
	code := fmt.Sprintf("e2eInv%03d", f.next)
	f.invites[code] = 0
	return code, 0, nil
}

func (f *FakeDiscord) PostPrompt(_ context.Context, channelID, memberID string) (invite.VerificationPrompt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, memberID)
	return invite.VerificationPrompt{
		ChannelID: channelID,
		MessageID: fmt.Sprintf("17000000000000%05d", len(f.prompts)),
	}, nil
}

func (f *FakeDiscord) SendInvite(_ context.Context, to invite.Email, inviteURL string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mail = append(f.mail, SentMail{To: to.Value(), URL: inviteURL})
	return nil
}
