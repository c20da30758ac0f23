package mail

import (
	"bytes"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"

	"github.com/botpilothq/console/internal/entity"
)

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

const digestTemplate = `<h2>Follow-ups due today</h2>
<table border="0" cellpadding="4">
  <tr><th align="left">Name</th><th align="left">Email</th><th align="left">Status</th><th align="left">Priority</th></tr>
  {{range .Leads}}
  <tr><td>{{.Name}}</td><td>{{.Email}}</td><td>{{.Status}}</td><td>{{.Priority}}</td></tr>
  {{end}}
</table>`

type digestData struct {
	Leads []entity.Lead
}

// SendFollowUpDigest mails the operator the leads whose follow-up is due.
func (s *EmailSender) SendFollowUpDigest(to string, leads []entity.Lead) error {
	t, err := template.New("digest").Parse(digestTemplate)
	if err != nil {
		return fmt.Errorf("parse digest template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, digestData{Leads: leads}); err != nil {
		return fmt.Errorf("render digest: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("%d lead follow-up(s) due today", len(leads)))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send digest: %w", err)
	}
	return nil
}
