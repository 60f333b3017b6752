package report

import (
	"bytes"
	"fmt"

	"officer-mobility/config"
	"officer-mobility/internal/mobility"

	"gopkg.in/gomail.v2"
)

// Sender delivers a composed message. *gomail.Dialer satisfies it.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type Mailer struct {
	sender Sender
	from   string
	to     []string
}

func NewMailer(cfg config.SMTPConfig) *Mailer {
	return &Mailer{
		sender: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
		to:     cfg.To,
	}
}

func newMailerWithSender(sender Sender, from string, to []string) *Mailer {
	return &Mailer{sender: sender, from: from, to: to}
}

// Compose builds the report message without sending it.
func (m *Mailer) Compose(subject string, r *mobility.FleetReport) (*gomail.Message, error) {
	var body bytes.Buffer
	if err := Render(&body, subject, r); err != nil {
		return nil, err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body.String())
	return msg, nil
}

func (m *Mailer) Send(subject string, r *mobility.FleetReport) error {
	if len(m.to) == 0 {
		return fmt.Errorf("no report recipients configured")
	}
	msg, err := m.Compose(subject, r)
	if err != nil {
		return err
	}
	if err := m.sender.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send mobility report: %w", err)
	}
	return nil
}
