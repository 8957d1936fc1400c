package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendANCReminder(toEmail, customerName, scheduleMessage string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
}

func NewEmailService(host string, port int, username, password, senderEmail, senderName string) IEmailService {
	return &emailService{
		dialer:      gomail.NewDialer(host, port, username, password),
		senderEmail: senderEmail,
		senderName:  senderName,
	}
}

func (s *emailService) SendANCReminder(toEmail, customerName, scheduleMessage string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.senderEmail, s.senderName))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Pengingat Jadwal Kontrol Kehamilan")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Halo, %s</h2>
			<p>%s</p>
			<p>Jaga kesehatan Anda dan si kecil. Sampai jumpa di kunjungan berikutnya!</p>
			<p style="color: #888; font-size: 12px;">Email ini dikirim otomatis oleh CarePal.</p>
		</div>
	`, customerName, scheduleMessage)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send anc reminder to %s: %w", toEmail, err)
	}
	return nil
}
