package main

import (
	"errors"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/Zachkp/portfolio/internal/config"
)

var errMailNotConfigured = errors.New("SMTP credentials not configured")

var headerSafe = strings.NewReplacer("\r", " ", "\n", " ")

type ContactRequest struct {
	FullName string `json:"fullName" binding:"required,max=200"`
	Email    string `json:"email" binding:"required,email"`
	Message  string `json:"message" binding:"required,max=5000"`
}

// mailer delivers a contact form submission.
type mailer interface {
	Send(req ContactRequest) error
}

type smtpMailer struct {
	host, port string
	user, pass string
	to         string
	configured bool
	send       func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func newSMTPMailer(cfg *config.Config) *smtpMailer {
	to := cfg.ToEmail
	if to == "" {
		to = cfg.SMTPUser
	}
	return &smtpMailer{
		host:       cfg.SMTPHost,
		port:       cfg.SMTPPort,
		user:       cfg.SMTPUser,
		pass:       cfg.SMTPPass,
		to:         to,
		configured: cfg.SMTPConfigured(),
		send:       smtp.SendMail,
	}
}

func (m *smtpMailer) Send(req ContactRequest) error {
	if !m.configured {
		return errMailNotConfigured
	}

	auth := smtp.PlainAuth("", m.user, m.pass, m.host)
	if err := m.send(m.host+":"+m.port, auth, m.user, []string{m.to}, m.compose(req)); err != nil {
		return fmt.Errorf("send contact mail: %w", err)
	}
	return nil
}

func (m *smtpMailer) compose(req ContactRequest) []byte {
	// Header values must stay on one line.
	subject := fmt.Sprintf("Portfolio Contact: %s", headerSafe.Replace(req.FullName))
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, req.FullName, req.Email, req.Message)

	return []byte("To: " + m.to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + m.user + "\r\n" +
		"Reply-To: " + req.Email + "\r\n" +
		"\r\n" +
		body + "\r\n")
}
