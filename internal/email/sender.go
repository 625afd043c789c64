// Package email sends best-effort notification mail. A failure to send
// never fails the request that triggered it.
package email

import (
	"fmt"
	"net/smtp"
	"strings"
)

type Config struct {
	SMTPHost  string
	SMTPPort  int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

func (c Config) Enabled() bool {
	return c.SMTPHost != "" && c.FromEmail != ""
}

// Sender delivers a message to a list of recipients.
type Sender interface {
	Send(to []string, subject, body string) error
}

// SMTPSender is the production Sender.
type SMTPSender struct {
	config Config
	auth   smtp.Auth
}

func NewSMTPSender(config Config) (*SMTPSender, error) {
	if !config.Enabled() {
		return nil, fmt.Errorf("smtp host and from address are required")
	}

	sender := &SMTPSender{config: config}
	if config.Username != "" && config.Password != "" {
		sender.auth = smtp.PlainAuth("", config.Username, config.Password, config.SMTPHost)
	}
	return sender, nil
}

func (s *SMTPSender) Send(to []string, subject, body string) error {
	if len(to) == 0 {
		return fmt.Errorf("no recipients specified")
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s <%s>\r\n", s.config.FromName, s.config.FromEmail)
	fmt.Fprintf(&msg, "To: %s\r\n", strings.Join(to, ", "))
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	addr := fmt.Sprintf("%s:%d", s.config.SMTPHost, s.config.SMTPPort)
	return smtp.SendMail(addr, s.auth, s.config.FromEmail, to, []byte(msg.String()))
}

// NopSender is used when SMTP is unconfigured (development, tests).
type NopSender struct{}

func (NopSender) Send(to []string, subject, body string) error {
	return nil
}
