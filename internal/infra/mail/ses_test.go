//go:build unit

package mail

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"invite-role-bridge/internal/domain/invite"
	appconfig "invite-role-bridge/internal/pkg/config"
	"invite-role-bridge/internal/pkg/errs"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSES struct {
	input *sesv2.SendEmailInput
	err   error
}

func (f *fakeSES) SendEmail(_ context.Context, params *sesv2.SendEmailInput, _ ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &sesv2.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustEmail(t *testing.T, raw string) invite.Email {
	t.Helper()
	e, err := invite.NewEmail(raw)
	require.NoError(t, err)
	return e
}

func TestSESMailer_SendInvite(t *testing.T) {
	client := &fakeSES{}
	m := newSESMailer(client, appconfig.MailConfig{
		FromEmail: "noreply@example.com",
		FromName:  "Community Team",
		Subject:   "Your invitation",
	}, discardLogger())

	err := m.SendInvite(context.Background(), mustEmail(t, "buyer@example.com"), "https://discord.gg/abc123")

	require.NoError(t, err)
	require.NotNil(t, client.input)
	assert.Equal(t, "Community Team <noreply@example.com>", aws.ToString(client.input.FromEmailAddress))
	assert.Equal(t, []string{"buyer@example.com"}, client.input.Destination.ToAddresses)
	assert.Equal(t, "Your invitation", aws.ToString(client.input.Content.Simple.Subject.Data))
	assert.Contains(t, aws.ToString(client.input.Content.Simple.Body.Html.Data), `href="https://discord.gg/abc123"`)
	assert.Contains(t, aws.ToString(client.input.Content.Simple.Body.Text.Data), "https://discord.gg/abc123")
}

func TestSESMailer_SendInviteFailure(t *testing.T) {
	client := &fakeSES{err: errors.New("throttled")}
	m := newSESMailer(client, appconfig.MailConfig{FromEmail: "noreply@example.com"}, discardLogger())

	err := m.SendInvite(context.Background(), mustEmail(t, "buyer@example.com"), "https://discord.gg/abc123")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "buyer@example.com")
	assert.Equal(t, "noreply@example.com", aws.ToString(client.input.FromEmailAddress))
}

func TestNewSESMailer_DisabledWithoutSender(t *testing.T) {
	m, err := NewSESMailer(context.Background(), appconfig.MailConfig{}, discardLogger())
	require.NoError(t, err)

	err = m.SendInvite(context.Background(), mustEmail(t, "buyer@example.com"), "https://discord.gg/abc123")
	assert.True(t, errs.Is(err, ErrMailDisabled))
}
