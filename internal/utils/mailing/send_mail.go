package mailing

import (
	"fmt"
	"strconv"

	"gopkg.in/gomail.v2"
)

type (
	Mailer interface {
		SendMail(toEmail string, subject string, body string) error
	}

	MailConfig struct {
		AppURL       string
		SMTPHost     string
		SMTPPort     string
		SMTPSender   string
		SMTPEmail    string
		SMTPPassword string
	}

	smtpMailer struct {
		config MailConfig
		port   int
	}
)

func NewMailer(config MailConfig) (Mailer, error) {
	port, err := strconv.Atoi(config.SMTPPort)
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT %q: %w", config.SMTPPort, err)
	}
	return &smtpMailer{config: config, port: port}, nil
}

func (m *smtpMailer) SendMail(toEmail string, subject string, body string) error {
	mailer := gomail.NewMessage()
	mailer.SetHeader("From", m.from())
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)

	dialer := gomail.NewDialer(
		m.config.SMTPHost,
		m.port,
		m.config.SMTPEmail,
		m.config.SMTPPassword,
	)
	return dialer.DialAndSend(mailer)
}

func (m *smtpMailer) from() string {
	if m.config.SMTPSender == "" {
		return m.config.SMTPEmail
	}
	return mailAddress(m.config.SMTPSender, m.config.SMTPEmail)
}

func mailAddress(name, email string) string {
	return gomail.NewMessage().FormatAddress(email, name)
}
