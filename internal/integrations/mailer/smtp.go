package mailer

import (
	"context"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"
)

// SMTPConfig параметры SMTP сервера
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

// SMTPSender отправляет письма через SMTP (PLAIN auth, STARTTLS при поддержке сервером)
type SMTPSender struct {
	cfg  SMTPConfig
	from From
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPSender создает новый SMTP отправитель
func NewSMTPSender(cfg SMTPConfig, from From) *SMTPSender {
	return &SMTPSender{cfg: cfg, from: from, send: smtp.SendMail}
}

// Send отправляет письмо
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if msg.To == "" {
		return ErrNoRecipient
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrSend, err)
	}

	var auth smtp.Auth
	if s.cfg.User != "" {
		auth = smtp.PlainAuth("", s.cfg.User, s.cfg.Password, s.cfg.Host)
	}

	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
	if err := s.send(addr, auth, s.from.Email, []string{msg.To}, buildMIME(s.from, msg)); err != nil {
		return fmt.Errorf("%w: smtp to=%s: %v", ErrSend, msg.To, err)
	}

	return nil
}

func buildMIME(from From, msg Message) []byte {
	var b strings.Builder

	b.WriteString("From: " + formatAddress(from.Name, from.Email) + "\r\n")
	b.WriteString("To: " + formatAddress(msg.ToName, msg.To) + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", msg.Subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.HTML)

	return []byte(b.String())
}

func formatAddress(name, email string) string {
	if name == "" {
		return email
	}
	return mime.QEncoding.Encode("utf-8", name) + " <" + email + ">"
}
