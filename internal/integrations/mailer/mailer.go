package mailer

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Mailer собирает письма о бронированиях и отправляет их через Sender
type Mailer struct {
	sender        Sender
	loc           *time.Location
	publicBaseURL string
	log           Logger
}

// New создает новый Mailer
// loc - часовой пояс, в котором показываются даты и время в письмах
func New(sender Sender, loc *time.Location, publicBaseURL string, log Logger) *Mailer {
	if loc == nil {
		loc = time.UTC
	}
	return &Mailer{
		sender:        sender,
		loc:           loc,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		log:           log,
	}
}

// NotifyBookingCreated отправляет подтверждение гостю и уведомление хосту
func (m *Mailer) NotifyBookingCreated(ctx context.Context, n *domain.BookingNotification) error {
	data := m.data(n)

	guestTemplate := "guest_confirmed"
	guestSubject := "Confirmation: " + n.EventTitle + " avec " + n.HostName
	if n.Status == string(domain.StatusPending) {
		guestTemplate = "guest_pending"
		guestSubject = "Demande reçue: " + n.EventTitle + " avec " + n.HostName
	}

	guest := data
	guest.RecipientName = n.GuestName

	host := data
	host.RecipientName = n.HostName
	host.WithGuest = true
	host.Timezone = ""
	host.CancelURL = ""

	return errors.Join(
		m.send(ctx, guestTemplate, guestSubject, n.GuestEmail, n.GuestName, guest),
		m.send(ctx, "host_new", "Nouveau rendez-vous: "+n.EventTitle+" avec "+n.GuestName, n.HostEmail, n.HostName, host),
	)
}

// NotifyBookingCancelled отправляет письмо об отмене гостю и хосту
func (m *Mailer) NotifyBookingCancelled(ctx context.Context, n *domain.BookingNotification) error {
	data := m.data(n)
	data.CancelURL = ""
	subject := "Annulation: " + n.EventTitle

	guest := data
	guest.RecipientName = n.GuestName

	host := data
	host.RecipientName = n.HostName
	host.WithGuest = true

	return errors.Join(
		m.send(ctx, "cancelled", subject, n.GuestEmail, n.GuestName, guest),
		m.send(ctx, "cancelled", subject, n.HostEmail, n.HostName, host),
	)
}

// NotifyBookingReminder отправляет напоминание гостю
func (m *Mailer) NotifyBookingReminder(ctx context.Context, n *domain.BookingNotification) error {
	data := m.data(n)
	data.RecipientName = n.GuestName
	return m.send(ctx, "reminder", "Rappel: "+n.EventTitle+" avec "+n.HostName, n.GuestEmail, n.GuestName, data)
}

func (m *Mailer) send(ctx context.Context, tmpl, subject, to, toName string, data templateData) error {
	if to == "" {
		m.log.Warn("Mailer: skip %s for booking without recipient", tmpl)
		return nil
	}

	html, err := render(tmpl, data)
	if err != nil {
		return err
	}

	if err := m.sender.Send(ctx, Message{To: to, ToName: toName, Subject: subject, HTML: html}); err != nil {
		m.log.Error("Mailer: failed to send %s to=%s: %v", tmpl, to, err)
		return err
	}

	m.log.Info("Mailer: sent %s to=%s", tmpl, to)
	return nil
}

func (m *Mailer) data(n *domain.BookingNotification) templateData {
	start := n.StartTime.In(m.loc)
	end := n.EndTime.In(m.loc)

	data := templateData{
		GuestName:  n.GuestName,
		GuestEmail: n.GuestEmail,
		HostName:   n.HostName,
		EventTitle: n.EventTitle,
		Date:       FormatDateFR(start),
		TimeRange:  FormatTimeRange(start, end),
		Timezone:   n.GuestTimezone,
	}
	if n.CancelReason != nil {
		data.CancelReason = *n.CancelReason
	}
	if m.publicBaseURL != "" && n.CancelToken != "" {
		data.CancelURL = m.publicBaseURL + "/annulation?token=" + url.QueryEscape(n.CancelToken)
	}

	return data
}
