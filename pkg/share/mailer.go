package share

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"github.com/iim-amit/AmitKumar-Lumio/config"
	"github.com/iim-amit/AmitKumar-Lumio/credentials"
)

// Mailer sends a composed email. Implementations wrap a concrete transport.
type Mailer interface {
	Send(ctx context.Context, from string, email Email) error
}

// SMTPMailer sends email through an SMTP server using go-mail.
type SMTPMailer struct {
	cfg     config.SMTPConfig
	secrets credentials.SecretProvider
}

// NewSMTPMailer creates an SMTPMailer. The password is resolved from the
// secret provider at send time, so rotating it does not require a restart.
func NewSMTPMailer(cfg config.SMTPConfig, secrets credentials.SecretProvider) *SMTPMailer {
	if secrets == nil {
		secrets = credentials.GetDefaultProvider()
	}
	return &SMTPMailer{cfg: cfg, secrets: secrets}
}

// Send delivers one email to all recipients.
func (m *SMTPMailer) Send(ctx context.Context, from string, email Email) error {
	if !m.cfg.IsConfigured() {
		return fmt.Errorf("smtp host is not configured")
	}

	msg := gomail.NewMsg()
	if err := msg.From(from); err != nil {
		return fmt.Errorf("setting sender: %w", err)
	}
	if err := msg.To(email.To...); err != nil {
		return fmt.Errorf("setting recipients: %w", err)
	}
	msg.Subject(email.Subject)

	switch email.ContentType {
	case "text/html":
		msg.SetBodyString(gomail.TypeTextHTML, email.Body)
	default:
		msg.SetBodyString(gomail.TypeTextPlain, email.Body)
	}

	opts := []gomail.Option{
		gomail.WithPort(m.cfg.GetPort()),
	}
	if m.cfg.StartTLS {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSMandatory))
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.NoTLS))
	}
	if m.cfg.Username != "" {
		password, err := m.secrets.Get()
		if err != nil {
			return fmt.Errorf("resolving smtp password: %w", err)
		}
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(m.cfg.Username),
			gomail.WithPassword(password),
		)
	}

	client, err := gomail.NewClient(m.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("creating smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("sending mail: %w", err)
	}
	return nil
}
