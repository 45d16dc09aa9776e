package smtp

import (
	"context"
	"errors"
	"fmt"

	"github.com/tasker-otp/internal/config"
	"github.com/tasker-otp/internal/domain"
	"github.com/wneessen/go-mail"
)

const authType = mail.SMTPAuthAutoDiscover

// Mailer delivers emails over SMTP.
type Mailer struct {
	cfg config.SMTP
}

func NewMailer(cfg *config.Config) (*Mailer, error) {
	if cfg.SMTP.Host == "" {
		return nil, errors.New("SMTP host is required")
	}
	if cfg.SMTP.From == "" {
		return nil, errors.New("SMTP from address is required")
	}
	return &Mailer{cfg: cfg.SMTP}, nil
}

func (m *Mailer) SendEmail(ctx context.Context, e domain.Email) error {
	msg, err := m.buildMessage(e)
	if err != nil {
		return err
	}
	client, err := mail.NewClient(m.cfg.Host, m.clientOptions()...)
	if err != nil {
		return fmt.Errorf("creating mail client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return &domain.DeliveryError{Code: reason(err), Err: fmt.Errorf("sending email: %w", err)}
	}
	return nil
}

func (m *Mailer) buildMessage(e domain.Email) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if m.cfg.FromName != "" {
		if err := msg.FromFormat(m.cfg.FromName, m.cfg.From); err != nil {
			return nil, fmt.Errorf("setting from address: %w", err)
		}
	} else if err := msg.From(m.cfg.From); err != nil {
		return nil, fmt.Errorf("setting from address: %w", err)
	}
	if err := msg.To(e.To); err != nil {
		return nil, &domain.DeliveryError{Code: "EENVELOPE", Err: fmt.Errorf("setting to address: %w", err)}
	}
	msg.Subject(e.Subject)
	msg.SetBodyString(mail.TypeTextHTML, e.HTML)
	if e.Text != "" {
		msg.AddAlternativeString(mail.TypeTextPlain, e.Text)
	}
	return msg, nil
}

// clientOptions mirrors the usual SMTP conventions: implicit TLS on 465,
// opportunistic STARTTLS elsewhere. The auth mechanism is negotiated with the
// server.
func (m *Mailer) clientOptions() []mail.Option {
	opts := []mail.Option{
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(authType),
		mail.WithUsername(m.cfg.Username),
		mail.WithPassword(m.cfg.Password),
	}
	if m.cfg.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(m.cfg.Timeout))
	}
	if m.cfg.Port == 465 {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}
	return opts
}

func reason(err error) string {
	var se *mail.SendError
	if errors.As(err, &se) {
		return se.Reason.String()
	}
	return ""
}
