// Package mailer sends HTML notification emails over SMTP.
package mailer

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sitebuilder/internal/config"
	"gopkg.in/gomail.v2"
)

// ErrNotConfigured means SMTP credentials are missing and nothing was sent.
var ErrNotConfigured = errors.New("smtp credentials not configured")

// Message is a single HTML email.
type Message struct {
	To       string
	Subject  string
	HTMLBody string
}

// Mailer delivers messages through one SMTP account.
type Mailer struct {
	cfg  config.SMTPConfig
	send func(*gomail.Message) error
}

// New returns a Mailer for cfg. The dialer upgrades to STARTTLS when the server offers it.
func New(cfg config.SMTPConfig) *Mailer {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	return &Mailer{
		cfg: cfg,
		send: func(m *gomail.Message) error {
			return dialer.DialAndSend(m)
		},
	}
}

// Enabled reports whether credentials are configured.
func (m *Mailer) Enabled() bool {
	return m.cfg.Enabled()
}

// Send delivers msg.
func (m *Mailer) Send(ctx context.Context, msg Message) error {
	if !m.Enabled() {
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	gm := gomail.NewMessage()
	gm.SetHeader("From", m.cfg.From)
	gm.SetHeader("To", msg.To)
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/html", msg.HTMLBody)

	if err := m.send(gm); err != nil {
		return errors.Wrapf(err, "send mail to %s via %s", msg.To, m.cfg.Host)
	}
	return nil
}
