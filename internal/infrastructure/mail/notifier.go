package mail

import (
	"bytes"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"

	"github.com/futurestec/crm-leads-api/internal/application/lead"
	"github.com/futurestec/crm-leads-api/internal/domain/entity"
	"github.com/futurestec/crm-leads-api/pkg/config"
)

var _ lead.InterestNotifier = (*SMTPNotifier)(nil)

// SMTPNotifier envía la notificación de "nuevo lead interesado" a un destinatario
// fijo por SMTP. El envío bloquea hasta completar o fallar.
type SMTPNotifier struct {
	cfg    config.SMTPConfig
	dialer *gomail.Dialer
}

// NewSMTPNotifier construye el notificador con el transporte configurado.
func NewSMTPNotifier(cfg config.SMTPConfig) *SMTPNotifier {
	return &SMTPNotifier{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
	}
}

var interestedTmpl = template.Must(template.New("interested").Parse(`
<h1>New Interested Lead</h1>
<p>A lead has expressed interest:</p>
<ul>
  <li><strong>Name:</strong> {{.Name}}</li>
  <li><strong>Email:</strong> {{.Email}}</li>
  <li><strong>Mobile:</strong> {{.Mobile}}</li>
  <li><strong>Status:</strong> {{.Status}}</li>
  <li><strong>Follow-up Status:</strong> {{.FollowupStatus}}</li>
  <li><strong>Owner:</strong> {{.Owner}}</li>
  <li><strong>Created Date:</strong> {{.CreatedDate.Format "2006-01-02 15:04:05"}}</li>
</ul>
`))

// NotifyInterested envía el resumen del lead al destinatario configurado.
func (n *SMTPNotifier) NotifyInterested(l *entity.Lead) error {
	var body bytes.Buffer
	if err := interestedTmpl.Execute(&body, l); err != nil {
		return fmt.Errorf("render notificación: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.cfg.From)
	m.SetHeader("To", n.cfg.NotifyTo)
	m.SetHeader("Subject", "New Interested Lead")
	m.SetBody("text/html", body.String())

	if err := n.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("enviar notificación: %w", err)
	}
	return nil
}
