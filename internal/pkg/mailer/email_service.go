package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendRunReport(toEmail, opportunityName string, generated, failed int) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	return &emailService{
		dialer:      gomail.NewDialer(host, port, username, password),
		senderEmail: senderEmail,
	}
}

// SendRunReport notifies an operator that a generation run finished.
func (s *emailService) SendRunReport(toEmail, opportunityName string, generated, failed int) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Fichas de inscrição geradas — %s", opportunityName))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Geração de fichas concluída</h2>
			<p>Oportunidade: <strong>%s</strong></p>
			<p>Fichas geradas: <strong>%d</strong></p>
			<p>Falhas: <strong>%d</strong></p>
		</div>
	`, opportunityName, generated, failed)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send run report to %s: %w", toEmail, err)
	}
	return nil
}
