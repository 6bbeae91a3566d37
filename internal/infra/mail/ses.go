// Package mail delivers invite links through Amazon SES.
package mail

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"strings"

	"invite-role-bridge/internal/domain/invite"
	appconfig "invite-role-bridge/internal/pkg/config"
	"invite-role-bridge/internal/pkg/errs"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

var ErrMailDisabled = errs.New("mail delivery is disabled")

type sesAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

type SESMailer struct {
	client   sesAPI
	from     string
	subject  string
	disabled bool
	logger   *slog.Logger
}

// NewSESMailer returns a disabled mailer when no sender is configured.
func NewSESMailer(ctx context.Context, cfg appconfig.MailConfig, logger *slog.Logger) (*SESMailer, error) {
	if cfg.FromEmail == "" {
		logger.Warn("mail delivery disabled: MAIL_FROM_EMAIL not configured")
		return &SESMailer{disabled: true, logger: logger}, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return nil, errs.Wrap(err, "failed to load AWS config")
	}

	logger.Info("mail delivery enabled", "from", cfg.FromEmail, "region", cfg.AWSRegion)
	return newSESMailer(sesv2.NewFromConfig(awsCfg), cfg, logger), nil
}

func newSESMailer(client sesAPI, cfg appconfig.MailConfig, logger *slog.Logger) *SESMailer {
	from := cfg.FromEmail
	if cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", cfg.FromName, cfg.FromEmail)
	}
	return &SESMailer{
		client:  client,
		from:    from,
		subject: cfg.Subject,
		logger:  logger,
	}
}

func (m *SESMailer) SendInvite(ctx context.Context, to invite.Email, inviteURL string) error {
	if m.disabled {
		m.logger.Info("skipping invite mail (delivery disabled)", "to", to.Value())
		return ErrMailDisabled
	}

	htmlBody, textBody, err := renderInvite(inviteURL)
	if err != nil {
		return err
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(m.from),
		Destination: &types.Destination{
			ToAddresses: []string{to.Value()},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(m.subject), Charset: aws.String("UTF-8")},
				Body: &types.Body{
					Html: &types.Content{Data: aws.String(htmlBody), Charset: aws.String("UTF-8")},
					Text: &types.Content{Data: aws.String(textBody), Charset: aws.String("UTF-8")},
				},
			},
		},
	}

	out, err := m.client.SendEmail(ctx, input)
	if err != nil {
		return errs.Wrapf(err, "failed to send invite mail to %s", to.Value())
	}

	attrs := []any{"to", to.Value()}
	if out != nil && out.MessageId != nil {
		attrs = append(attrs, "message_id", *out.MessageId)
	}
	m.logger.Info("invite mail sent", attrs...)
	return nil
}

var htmlTemplate = template.Must(template.New("invite").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
	<p>Thanks for your purchase!</p>
	<p>Join our Discord server with your personal invite link:</p>
	<p><a href="{{.}}">{{.}}</a></p>
	<p>The link works once. After joining, accept the server rules to unlock your role.</p>
</body>
</html>
`))

func renderInvite(inviteURL string) (string, string, error) {
	var html strings.Builder
	if err := htmlTemplate.Execute(&html, inviteURL); err != nil {
		return "", "", errs.Wrap(err, "render invite mail")
	}
	text := "Thanks for your purchase!\n\n" +
		"Join our Discord server with your personal invite link:\n" + inviteURL + "\n\n" +
		"The link works once. After joining, accept the server rules to unlock your role.\n"
	return html.String(), text, nil
}
