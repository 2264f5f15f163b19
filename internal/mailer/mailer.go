package mailer

import (
	"github.com/HebertyRichards/API-web-barber/internal/config"
	"gopkg.in/gomail.v2"
)

// Sender entrega uma mensagem HTML. A entrega é melhor-esforço: falhas
// nunca desfazem a escrita já confirmada no banco.
type Sender interface {
	Send(subject string, recipients []string, htmlBody string) error
}

type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPSender(cfg *config.Config) *SMTPSender {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass)
	dialer.SSL = cfg.SMTPPort == 465

	return &SMTPSender{
		dialer: dialer,
		from:   cfg.EmailUser,
	}
}

func (s *SMTPSender) Send(subject string, recipients []string, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", recipients...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	return s.dialer.DialAndSend(m)
}

var _ Sender = (*SMTPSender)(nil)
