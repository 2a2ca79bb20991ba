package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"

	"github.com/andrefarias-dev/briefing-backend/internal/infra/queue"
)

var newLeadTemplate = template.Must(template.New("new_lead").Parse(`
<h2>Novo briefing recebido 🎉</h2>
<p><strong>Nome:</strong> {{.Nome}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>WhatsApp:</strong> {{.Whatsapp}}</p>
<p><strong>Tipo de projeto:</strong> {{.TipoProjeto}}</p>
<p><strong>Orçamento estimado:</strong> {{.OrcamentoEstimado}}</p>
<p>Confira os detalhes no painel admin.</p>
`))

func NewEmailSender(host string, port int, user, password, from, to string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		To:       to,
	}
}

// SendNewLead é o consumidor da fila de leads: avisa o time por email.
func (s *EmailSender) SendNewLead(payload queue.LeadCreatedPayload) error {
	data := NewLeadEmailData{
		Nome:              payload.Nome,
		Email:             payload.Email,
		Whatsapp:          payload.Whatsapp,
		TipoProjeto:       payload.TipoProjeto,
		OrcamentoEstimado: payload.OrcamentoEstimado,
	}

	var body bytes.Buffer
	if err := newLeadTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("erro ao processar template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.To)
	m.SetHeader("Subject", fmt.Sprintf("Novo briefing: %s (%s)", data.Nome, data.TipoProjeto))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	return nil
}
