package discord

import (
	"context"
	"fmt"

	"invite-role-bridge/internal/domain/invite"

	"github.com/bwmarrin/discordgo"
)

type Prompter struct {
	api      API
	buttonID string
}

func NewPrompter(api API, buttonID string) *Prompter {
	return &Prompter{api: api, buttonID: buttonID}
}

// PostPrompt mentions the member with an "accept rules" button in the rules channel.
func (p *Prompter) PostPrompt(ctx context.Context, channelID, memberID string) (invite.VerificationPrompt, error) {
	msg, err := p.api.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Content: fmt.Sprintf("Welcome <@%s>! Please read the server rules and press the button below to unlock your role.", memberID),
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    "Accept rules",
						Style:    discordgo.SuccessButton,
						CustomID: p.buttonID,
					},
				},
			},
		},
		AllowedMentions: &discordgo.MessageAllowedMentions{
			Users: []string{memberID},
		},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return invite.VerificationPrompt{}, classify(err, "post verification prompt")
	}
	return invite.VerificationPrompt{ChannelID: msg.ChannelID, MessageID: msg.ID}, nil
}
