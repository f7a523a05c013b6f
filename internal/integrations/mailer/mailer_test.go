package mailer

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"github.com/sendgrid/rest"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

type recordingSender struct {
	messages []Message
	failTo   string
}

func (s *recordingSender) Send(_ context.Context, msg Message) error {
	if msg.To == s.failTo {
		return ErrSend
	}
	s.messages = append(s.messages, msg)
	return nil
}

func testNotification(status domain.BookingStatus) *domain.BookingNotification {
	start := time.Date(2025, 11, 3, 9, 0, 0, 0, time.UTC)
	return &domain.BookingNotification{
		BookingID:     1,
		Status:        string(status),
		GuestName:     "Alice",
		GuestEmail:    "alice@example.com",
		GuestTimezone: "Europe/Paris",
		HostName:      "Bob",
		HostEmail:     "bob@example.com",
		EventTitle:    "Réunion de 30 minutes",
		StartTime:     start,
		EndTime:       start.Add(30 * time.Minute),
		CancelToken:   "tok-123",
	}
}

func TestFormatDateFR(t *testing.T) {
	d := time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "lundi 3 novembre 2025", FormatDateFR(d))
	assert.Equal(t, "10:00 - 10:30", FormatTimeRange(d, d.Add(30*time.Minute)))
}

func TestMailer_NotifyBookingCreated(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	sender := &recordingSender{}
	m := New(sender, paris, "https://rdv.example.com/", logger.NewNop())

	require.NoError(t, m.NotifyBookingCreated(context.Background(), testNotification(domain.StatusConfirmed)))
	require.Len(t, sender.messages, 2)

	guest := sender.messages[0]
	assert.Equal(t, "alice@example.com", guest.To)
	assert.Equal(t, "Confirmation: Réunion de 30 minutes avec Bob", guest.Subject)
	assert.Contains(t, guest.HTML, "Votre rendez-vous est confirmé!")
	assert.Contains(t, guest.HTML, "lundi 3 novembre 2025")
	// 09:00 UTC = 10:00 в Париже (CET)
	assert.Contains(t, guest.HTML, "10:00 - 10:30 (Europe/Paris)")
	assert.Contains(t, guest.HTML, "https://rdv.example.com/annulation?token=tok-123")

	host := sender.messages[1]
	assert.Equal(t, "bob@example.com", host.To)
	assert.Equal(t, "Nouveau rendez-vous: Réunion de 30 minutes avec Alice", host.Subject)
	assert.Contains(t, host.HTML, "alice@example.com")
	assert.NotContains(t, host.HTML, "annulation?token")
}

func TestMailer_NotifyBookingCreated_Pending(t *testing.T) {
	sender := &recordingSender{}
	m := New(sender, time.UTC, "", logger.NewNop())

	require.NoError(t, m.NotifyBookingCreated(context.Background(), testNotification(domain.StatusPending)))
	require.Len(t, sender.messages, 2)
	assert.True(t, strings.HasPrefix(sender.messages[0].Subject, "Demande reçue"))
	assert.Contains(t, sender.messages[0].HTML, "doit encore la confirmer")
}

func TestMailer_NotifyBookingCancelled(t *testing.T) {
	sender := &recordingSender{}
	m := New(sender, time.UTC, "https://rdv.example.com", logger.NewNop())

	n := testNotification(domain.StatusCancelled)
	reason := "Empêchement <urgent>"
	n.CancelReason = &reason

	require.NoError(t, m.NotifyBookingCancelled(context.Background(), n))
	require.Len(t, sender.messages, 2)
	assert.Equal(t, "Annulation: Réunion de 30 minutes", sender.messages[0].Subject)
	assert.Contains(t, sender.messages[0].HTML, "Rendez-vous annulé")
	assert.Contains(t, sender.messages[0].HTML, "Empêchement &lt;urgent&gt;")
	assert.NotContains(t, sender.messages[0].HTML, "annulation?token")
}

func TestMailer_PartialFailure(t *testing.T) {
	sender := &recordingSender{failTo: "bob@example.com"}
	m := New(sender, time.UTC, "", logger.NewNop())

	err := m.NotifyBookingCreated(context.Background(), testNotification(domain.StatusConfirmed))
	assert.ErrorIs(t, err, ErrSend)
	assert.Len(t, sender.messages, 1)
}

func TestMailer_NotifyBookingReminder(t *testing.T) {
	sender := &recordingSender{}
	m := New(sender, time.UTC, "", logger.NewNop())

	require.NoError(t, m.NotifyBookingReminder(context.Background(), testNotification(domain.StatusConfirmed)))
	require.Len(t, sender.messages, 1)
	assert.Equal(t, "Rappel: Réunion de 30 minutes avec Bob", sender.messages[0].Subject)
}

func TestSMTPSender_Send(t *testing.T) {
	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte

	s := NewSMTPSender(SMTPConfig{Host: "smtp.example.com", Port: 587, User: "u", Password: "p"}, From{Email: "no-reply@example.com", Name: "Agenda"})
	s.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	}

	err := s.Send(context.Background(), Message{To: "alice@example.com", Subject: "Annulation: Réunion", HTML: "<p>x</p>"})
	require.NoError(t, err)

	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, "no-reply@example.com", gotFrom)
	assert.Equal(t, []string{"alice@example.com"}, gotTo)
	assert.Contains(t, string(gotMsg), "Content-Type: text/html")
	assert.Contains(t, string(gotMsg), "=?utf-8?q?")
	assert.True(t, strings.HasSuffix(string(gotMsg), "<p>x</p>"))

	assert.ErrorIs(t, s.Send(context.Background(), Message{}), ErrNoRecipient)
}

type fakeSendGrid struct {
	status int
	err    error
}

func (f *fakeSendGrid) SendWithContext(context.Context, *sgmail.SGMailV3) (*rest.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &rest.Response{StatusCode: f.status, Body: "body"}, nil
}

func TestSendGridSender_Send(t *testing.T) {
	msg := Message{To: "alice@example.com", Subject: "s", HTML: "h"}

	ok := &SendGridSender{client: &fakeSendGrid{status: 202}}
	assert.NoError(t, ok.Send(context.Background(), msg))

	rejected := &SendGridSender{client: &fakeSendGrid{status: 401}}
	assert.ErrorIs(t, rejected.Send(context.Background(), msg), ErrSend)

	broken := &SendGridSender{client: &fakeSendGrid{err: errors.New("dial")}}
	assert.ErrorIs(t, broken.Send(context.Background(), msg), ErrSend)
}

func TestNewSender(t *testing.T) {
	s, err := NewSender("smtp", SMTPConfig{Host: "h", Port: 25}, "", From{})
	require.NoError(t, err)
	assert.IsType(t, &SMTPSender{}, s)

	s, err = NewSender("sendgrid", SMTPConfig{}, "key", From{})
	require.NoError(t, err)
	assert.IsType(t, &SendGridSender{}, s)

	_, err = NewSender("pigeon", SMTPConfig{}, "", From{})
	assert.ErrorIs(t, err, ErrUnknownProvider)
}
