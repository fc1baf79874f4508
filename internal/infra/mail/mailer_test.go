package mail

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"mime/quotedprintable"
	netmail "net/mail"
	"strings"
	"testing"

	"zembil/config"
	"zembil/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomail "gopkg.in/mail.v2"
)

func TestSMTPMailer_Send(t *testing.T) {
	var (
		gotFrom string
		gotTo   []string
		raw     bytes.Buffer
	)
	sender := gomail.SendFunc(func(from string, to []string, msg io.WriterTo) error {
		gotFrom = from
		gotTo = to
		_, err := msg.WriteTo(&raw)

		return err
	})

	mailer := newSenderMailer("noreply@zembil.test", sender)
	err := mailer.Send(context.Background(), &service.Mail{
		To:      "buyer@zembil.test",
		Subject: "Password reset",
		Body:    "http://localhost/auth/reset?token=abc",
	})
	require.NoError(t, err)

	assert.Equal(t, "noreply@zembil.test", gotFrom)
	assert.Equal(t, []string{"buyer@zembil.test"}, gotTo)
	assert.Contains(t, raw.String(), "Subject: Password reset")
	assert.Equal(t, "http://localhost/auth/reset?token=abc", decodedBody(t, &raw))
}

// decodedBody parses the raw message and undoes the quoted-printable transfer encoding.
func decodedBody(t *testing.T, raw io.Reader) string {
	t.Helper()

	msg, err := netmail.ReadMessage(raw)
	require.NoError(t, err)
	require.Equal(t, "quoted-printable", msg.Header.Get("Content-Transfer-Encoding"))

	body, err := io.ReadAll(quotedprintable.NewReader(msg.Body))
	require.NoError(t, err)

	return strings.TrimRight(string(body), "\r\n")
}

func TestSMTPMailer_SendKeepsLongResetLinkIntact(t *testing.T) {
	var raw bytes.Buffer
	sender := gomail.SendFunc(func(_ string, _ []string, msg io.WriterTo) error {
		_, err := msg.WriteTo(&raw)

		return err
	})

	link := "https://zembil.example/api/v1/auth/reset?token=" + strings.Repeat("a1b2c3d4", 16)
	err := newSenderMailer("noreply@zembil.test", sender).Send(context.Background(), &service.Mail{
		To:      "buyer@zembil.test",
		Subject: "Password reset",
		Body:    "Reset your password: " + link,
	})
	require.NoError(t, err)

	assert.NotContains(t, raw.String(), link)
	assert.Equal(t, "Reset your password: "+link, decodedBody(t, &raw))
}

func TestSMTPMailer_SendError(t *testing.T) {
	sender := gomail.SendFunc(func(string, []string, io.WriterTo) error {
		return errors.New("relay denied")
	})

	mailer := newSenderMailer("noreply@zembil.test", sender)
	err := mailer.Send(context.Background(), &service.Mail{To: "a@b.c", Subject: "s", Body: "b"})
	assert.ErrorContains(t, err, "relay denied")
}

func TestSMTPMailer_CanceledContext(t *testing.T) {
	called := false
	sender := gomail.SendFunc(func(string, []string, io.WriterTo) error {
		called = true

		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := newSenderMailer("x@y.z", sender).Send(ctx, &service.Mail{To: "a@b.c"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestNewMailer_LogsWithoutHost(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	mailer := NewMailer(&config.Config{Mail: &config.MailConfig{}}, logger)
	require.NoError(t, mailer.Send(context.Background(), &service.Mail{To: "a@b.c", Subject: "hello"}))

	assert.Contains(t, logs.String(), "mail not sent")
	assert.Contains(t, logs.String(), "a@b.c")
}
