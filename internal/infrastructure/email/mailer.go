// Package email provides Mailer implementations for tenant notifications.
// The SMTP mailer talks to a plain SMTP submission endpoint; when no host
// is configured the log mailer stands in so alert plumbing keeps working
// in development.
package email

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/rs/zerolog"
)

// Config captures the SMTP settings for the mailer.
type Config struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

// SMTPMailer sends plain-text mail over authenticated SMTP.
type SMTPMailer struct {
	cfg Config
}

func NewSMTPMailer(cfg Config) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// Send delivers a single message. The context is accepted for interface
// symmetry; net/smtp has no context plumbing, so cancellation is bounded
// by the connection's own timeouts.
func (m *SMTPMailer) Send(_ context.Context, to, subject, body string) error {
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)

	msg := strings.Join([]string{
		"From: InventoryFlow Alerts <" + m.cfg.From + ">",
		"To: " + to,
		"Subject: " + subject,
		"",
		body,
	}, "\r\n")

	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

// LogMailer writes would-be emails to the log instead of sending them.
type LogMailer struct {
	log zerolog.Logger
}

func NewLogMailer(log zerolog.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) Send(_ context.Context, to, subject, body string) error {
	m.log.Info().
		Str("to", to).
		Str("subject", subject).
		Int("body_bytes", len(body)).
		Msg("email suppressed (no smtp host configured)")
	return nil
}
