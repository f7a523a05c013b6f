package mailer

import (
	"context"
	"fmt"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendgridClient interface {
	SendWithContext(ctx context.Context, email *sgmail.SGMailV3) (*rest.Response, error)
}

// SendGridSender отправляет письма через SendGrid API
type SendGridSender struct {
	client sendgridClient
	from   From
}

// NewSendGridSender создает новый SendGrid отправитель
func NewSendGridSender(apiKey string, from From) *SendGridSender {
	return &SendGridSender{client: sendgrid.NewSendClient(apiKey), from: from}
}

// Send отправляет письмо
func (s *SendGridSender) Send(ctx context.Context, msg Message) error {
	if msg.To == "" {
		return ErrNoRecipient
	}

	email := sgmail.NewSingleEmail(
		sgmail.NewEmail(s.from.Name, s.from.Email),
		msg.Subject,
		sgmail.NewEmail(msg.ToName, msg.To),
		"",
		msg.HTML,
	)

	resp, err := s.client.SendWithContext(ctx, email)
	if err != nil {
		return fmt.Errorf("%w: sendgrid to=%s: %v", ErrSend, msg.To, err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("%w: sendgrid to=%s: status %d: %s", ErrSend, msg.To, resp.StatusCode, resp.Body)
	}

	return nil
}

// NewSender выбирает отправителя по имени провайдера
func NewSender(provider string, smtpCfg SMTPConfig, sendGridAPIKey string, from From) (Sender, error) {
	switch provider {
	case "smtp":
		return NewSMTPSender(smtpCfg, from), nil
	case "sendgrid":
		return NewSendGridSender(sendGridAPIKey, from), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, provider)
	}
}
