// Package mail sends transactional e-mail over SMTP.
package mail

import (
	"context"
	"log/slog"
	"time"

	"zembil/config"
	"zembil/internal/domain/service"

	"github.com/pkg/errors"
	gomail "gopkg.in/mail.v2"
)

const smtpTimeout = 20 * time.Second

type smtpMailer struct {
	from string
	send func(messages ...*gomail.Message) error
}

// NewMailer returns an SMTP mailer, or a mailer that only logs when no SMTP host is configured.
func NewMailer(cfg *config.Config, logger *slog.Logger) service.Mailer {
	mailCfg := cfg.Mail
	if mailCfg == nil || mailCfg.Host == "" {
		return &logMailer{logger: logger}
	}

	dialer := gomail.NewDialer(mailCfg.Host, mailCfg.Port, mailCfg.Username, mailCfg.Password)
	dialer.Timeout = smtpTimeout

	from := mailCfg.From
	if from == "" {
		from = mailCfg.Username
	}

	return &smtpMailer{from: from, send: dialer.DialAndSend}
}

func newSenderMailer(from string, sender gomail.Sender) *smtpMailer {
	return &smtpMailer{
		from: from,
		send: func(messages ...*gomail.Message) error {
			return gomail.Send(sender, messages...)
		},
	}
}

// Send delivers a plain text message.
func (m *smtpMailer) Send(ctx context.Context, mail *service.Mail) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", mail.To)
	msg.SetHeader("Subject", mail.Subject)
	msg.SetBody("text/plain", mail.Body)

	if err := m.send(msg); err != nil {
		return errors.Wrapf(err, "failed to send mail to %s", mail.To)
	}

	return nil
}

// logMailer writes messages to the log instead of sending them.
type logMailer struct {
	logger *slog.Logger
}

func (m *logMailer) Send(ctx context.Context, mail *service.Mail) error {
	m.logger.InfoContext(ctx, "SMTP not configured, mail not sent",
		slog.String("to", mail.To),
		slog.String("subject", mail.Subject),
		slog.String("body", mail.Body),
	)

	return nil
}
