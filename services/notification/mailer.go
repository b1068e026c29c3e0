package notification

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"time"

	"bokaenkelt/config"
	"bokaenkelt/utils"

	"go.uber.org/zap"
)

// SMTPMailer implements NotificationService over a TLS SMTP connection.
type SMTPMailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

// NewSMTPMailer builds a mailer from the loaded configuration.
func NewSMTPMailer() *SMTPMailer {
	cfg := config.AppConfig
	return &SMTPMailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUser,
		password: cfg.SMTPPass,
		from:     cfg.SMTPFrom,
	}
}

// SendConfirmation mails a booking confirmation.
func (m *SMTPMailer) SendConfirmation(email, name, appointment string) error {
	subject := "Bokningsbekräftelse"
	body := fmt.Sprintf(
		"<h2>Hej %s,</h2>"+
			"<p>Tack för din bokning hos oss.</p>"+
			"<p><strong>Din tid är:</strong> %s</p>"+
			"<p><strong>Vi ser fram emot att träffa dig!</strong></p>",
		name, appointment)
	return m.send(email, subject, body)
}

// SendReminder mails an appointment reminder.
func (m *SMTPMailer) SendReminder(email, appointment string) error {
	subject := "Påminnelse om din bokning"
	body := fmt.Sprintf(
		"<p>Detta är en påminnelse om att du har en bokad tid %s.</p>", appointment)
	return m.send(email, subject, body)
}

// send delivers one message, retrying once on failure. Retry stays confined
// to the notification side effect; admission never re-runs because of it.
func (m *SMTPMailer) send(to, subject, body string) error {
	var err error
	for attempt := 1; attempt <= 2; attempt++ {
		if err = m.deliver(to, subject, body); err == nil {
			return nil
		}
		utils.GetLogger().Warn("email delivery attempt failed",
			zap.String("to", to), zap.Int("attempt", attempt), zap.Error(err))
		time.Sleep(time.Duration(attempt) * time.Second)
	}
	return err
}

func (m *SMTPMailer) deliver(to, subject, body string) error {
	msg := fmt.Sprintf("To: %s\r\n", to) +
		fmt.Sprintf("From: BokaEnkelt <%s>\r\n", m.from) +
		fmt.Sprintf("Subject: %s\r\n", subject) +
		"Content-Type: text/html; charset=UTF-8\r\n\r\n" +
		body

	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	tlsConfig := &tls.Config{ServerName: m.host}

	conn, err := tls.Dial("tcp", fmt.Sprintf("%s:%d", m.host, m.port), tlsConfig)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, m.host)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer client.Quit()

	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("SMTP auth failed: %w", err)
	}
	if err := client.Mail(m.from); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}
	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to open message body: %w", err)
	}
	if _, err := w.Write([]byte(msg)); err != nil {
		return fmt.Errorf("failed to write message body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finish message: %w", err)
	}
	return nil
}
