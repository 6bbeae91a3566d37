//go:build unit

package discord

import (
	"io"
	"log/slog"
	"net/http"
	"sync"

	"github.com/bwmarrin/discordgo"
)

type fakeAPI struct {
	mu sync.Mutex

	invites      func(call int) ([]*discordgo.Invite, error)
	inviteCalls  int
	roles        []*discordgo.Role
	rolesErr     error
	member       *discordgo.Member
	memberErr    error
	roleAddErrs  []error
	roleAdds     [][3]string
	created      *discordgo.Invite
	createErr    error
	createdWith  discordgo.Invite
	sentChannel  string
	sent         *discordgo.MessageSend
	sendErr      error
	optionCounts []int
}

func (f *fakeAPI) GuildInvites(_ string, options ...discordgo.RequestOption) ([]*discordgo.Invite, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inviteCalls++
	f.optionCounts = append(f.optionCounts, len(options))
	return f.invites(f.inviteCalls)
}

func (f *fakeAPI) GuildRoles(_ string, _ ...discordgo.RequestOption) ([]*discordgo.Role, error) {
	return f.roles, f.rolesErr
}

func (f *fakeAPI) GuildMember(_, _ string, _ ...discordgo.RequestOption) (*discordgo.Member, error) {
	return f.member, f.memberErr
}

func (f *fakeAPI) GuildMemberRoleAdd(guildID, userID, roleID string, options ...discordgo.RequestOption) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.roleAdds = append(f.roleAdds, [3]string{guildID, userID, roleID})
	f.optionCounts = append(f.optionCounts, len(options))
	if len(f.roleAddErrs) == 0 {
		return nil
	}
	err := f.roleAddErrs[0]
	f.roleAddErrs = f.roleAddErrs[1:]
	return err
}

func (f *fakeAPI) ChannelInviteCreate(_ string, i discordgo.Invite, _ ...discordgo.RequestOption) (*discordgo.Invite, error) {
	f.createdWith = i
	return f.created, f.createErr
}

func (f *fakeAPI) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.sentChannel = channelID
	f.sent = data
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	return &discordgo.Message{ID: "1200000000000000009", ChannelID: channelID}, nil
}

func restErr(status int) error {
	return &discordgo.RESTError{
		Response:     &http.Response{StatusCode: status, Status: http.StatusText(status)},
		ResponseBody: []byte(`{"message":"error"}`),
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
