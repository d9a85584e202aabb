// Package mail implements the MailSender domain service over SMTP.
package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/pkg/errors"

	"craftapp/config"
	"craftapp/internal/domain/service"
)

const (
	activationSubject = "Account Activation"
	resetSubject      = "Password Reset"
)

var codeBody = template.Must(template.New("code").Parse(`
<html>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
	<h2>{{.Title}}</h2>
	<p>Your {{.Kind}} code is: <strong>{{.Code}}</strong></p>
	<p>If you didn't request this, please ignore this email.</p>
</body>
</html>
`))

type codeEmailData struct {
	Title string
	Kind  string
	Code  string
}

// smtpSender delivers one-time codes through a plain SMTP relay.
type smtpSender struct {
	host     string
	port     int
	username string
	password string
	from     string
}

// NewSMTPSender is the constructor for smtpSender.
func NewSMTPSender(cfg *config.Config) (service.MailSender, error) {
	if cfg.SMTP == nil {
		return nil, errors.New("smtp configuration is required")
	}

	return &smtpSender{
		host:     cfg.SMTP.Host,
		port:     cfg.SMTP.Port,
		username: cfg.SMTP.Username,
		password: cfg.SMTP.Password,
		from:     cfg.SMTP.From,
	}, nil
}

// SendActivationCode delivers the account activation code.
func (s *smtpSender) SendActivationCode(_ context.Context, email, code string) error {
	return s.sendCode(email, activationSubject, codeEmailData{
		Title: activationSubject,
		Kind:  "activation",
		Code:  code,
	})
}

// SendResetCode delivers the password reset code.
func (s *smtpSender) SendResetCode(_ context.Context, email, code string) error {
	return s.sendCode(email, resetSubject, codeEmailData{
		Title: resetSubject,
		Kind:  "password reset",
		Code:  code,
	})
}

func (s *smtpSender) sendCode(to, subject string, data codeEmailData) error {
	var body bytes.Buffer
	if err := codeBody.Execute(&body, data); err != nil {
		return errors.Wrap(err, "failed to render code email template")
	}

	msg := fmt.Appendf(nil,
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		s.from, to, subject, body.String(),
	)

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := fmt.Sprintf("%s:%d", s.host, s.port)

	return errors.Wrap(smtp.SendMail(addr, auth, s.from, []string{to}, msg), "failed to send email")
}
