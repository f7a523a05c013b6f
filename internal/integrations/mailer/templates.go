package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

var (
	frenchWeekdays = [...]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"}
	frenchMonths   = [...]string{"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"}
)

// FormatDateFR форматирует дату как "lundi 3 novembre 2025"
func FormatDateFR(t time.Time) string {
	return frenchWeekdays[t.Weekday()] + " " + strconv.Itoa(t.Day()) + " " + frenchMonths[t.Month()-1] + " " + strconv.Itoa(t.Year())
}

// FormatTimeRange форматирует интервал как "10:00 - 10:30"
func FormatTimeRange(start, end time.Time) string {
	return start.Format(domain.TimeFormat) + " - " + end.Format(domain.TimeFormat)
}

const layoutHead = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`

const detailsBlock = `{{define "details"}}<div style="background-color: #f3f4f6; padding: 20px; border-radius: 8px; margin: 20px 0;">
<h3 style="margin-top: 0;">{{.EventTitle}}</h3>
<p><strong>Date:</strong> {{.Date}}</p>
<p><strong>Heure:</strong> {{.TimeRange}}{{if .Timezone}} ({{.Timezone}}){{end}}</p>
{{- if .WithGuest}}
<p><strong>Invité:</strong> {{.GuestName}} ({{.GuestEmail}})</p>
{{- else}}
<p><strong>Avec:</strong> {{.HostName}}</p>
{{- end}}
{{- if .CancelReason}}
<p><strong>Raison:</strong> {{.CancelReason}}</p>
{{- end}}
</div>{{end}}`

const cancelLinkBlock = `{{define "cancel_link"}}{{if .CancelURL}}<p>Vous pouvez annuler votre rendez-vous à tout moment : <a href="{{.CancelURL}}">{{.CancelURL}}</a></p>{{end}}{{end}}`

var templates = template.Must(template.New("mail").Parse(detailsBlock + cancelLinkBlock + `
{{define "guest_confirmed"}}` + layoutHead + `
<h2 style="color: #3b82f6;">Votre rendez-vous est confirmé!</h2>
<p>Bonjour {{.GuestName}},</p>
<p>Votre rendez-vous a été réservé avec succès.</p>
{{template "details" .}}
{{template "cancel_link" .}}
<p>À bientôt!</p>
</div>{{end}}

{{define "guest_pending"}}` + layoutHead + `
<h2 style="color: #f59e0b;">Demande de rendez-vous reçue</h2>
<p>Bonjour {{.GuestName}},</p>
<p>Votre demande a bien été enregistrée. {{.HostName}} doit encore la confirmer.</p>
{{template "details" .}}
{{template "cancel_link" .}}
</div>{{end}}

{{define "host_new"}}` + layoutHead + `
<h2 style="color: #3b82f6;">Nouveau rendez-vous!</h2>
<p>Bonjour {{.HostName}},</p>
<p>Vous avez un nouveau rendez-vous.</p>
{{template "details" .}}
</div>{{end}}

{{define "cancelled"}}` + layoutHead + `
<h2 style="color: #ef4444;">Rendez-vous annulé</h2>
<p>Bonjour {{.RecipientName}},</p>
<p>Votre rendez-vous a été annulé.</p>
{{template "details" .}}
<p>Vous pouvez réserver un nouveau créneau à tout moment.</p>
</div>{{end}}

{{define "reminder"}}` + layoutHead + `
<h2 style="color: #3b82f6;">Rappel de rendez-vous</h2>
<p>Bonjour {{.GuestName}},</p>
<p>Nous vous rappelons votre rendez-vous à venir.</p>
{{template "details" .}}
{{template "cancel_link" .}}
</div>{{end}}
`))

type templateData struct {
	RecipientName string
	GuestName     string
	GuestEmail    string
	HostName      string
	EventTitle    string
	Date          string
	TimeRange     string
	Timezone      string
	CancelReason  string
	CancelURL     string
	WithGuest     bool
}

func render(name string, data templateData) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrRender, name, err)
	}
	return buf.String(), nil
}
