package bootstrap

import (
	"context"
	"log/slog"

	"invite-role-bridge/internal/infra/mail"
	"invite-role-bridge/internal/pkg/config"
	"invite-role-bridge/internal/usecase/commands"

	"go.uber.org/fx"
)

var MailModule = fx.Module("mail",
	fx.Provide(
		fx.Annotate(
			NewMailer,
			fx.As(new(commands.Mailer)),
		),
	),
)

func NewMailer(cfg config.Config, logger *slog.Logger) (*mail.SESMailer, error) {
	return mail.NewSESMailer(context.Background(), cfg.Mail, logger)
}
