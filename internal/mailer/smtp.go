package mailer

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"text/template"
	"time"

	gomail "gopkg.in/mail.v2"
)

type smtpClient struct {
	dialer    *gomail.Dialer
	fromEmail string
}

func NewSMTPClient(host string, port int, username, password, fromEmail string) (Client, error) {
	if fromEmail == "" {
		return nil, errors.New("from email is required")
	}

	return &smtpClient{
		dialer:    gomail.NewDialer(host, port, username, password),
		fromEmail: fromEmail,
	}, nil
}

// Send renders the named template (subject + body sections) and delivers it,
// retrying transient failures.
func (c *smtpClient) Send(templateFile, username, email string, data any) (int, error) {
	tmpl, err := template.ParseFS(FS, "templates/"+templateFile)
	if err != nil {
		return -1, err
	}

	subject := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(subject, "subject", data); err != nil {
		return -1, err
	}

	body := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(body, "body", data); err != nil {
		return -1, err
	}

	message := gomail.NewMessage()
	message.SetHeader("From", fmt.Sprintf("%s <%s>", FromName, c.fromEmail))
	message.SetHeader("To", email)
	message.SetHeader("Subject", subject.String())
	message.SetBody("text/html", body.String())

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		if err := c.dialer.DialAndSend(message); err != nil {
			lastErr = err
			time.Sleep(time.Second * time.Duration(i+1))
			continue
		}
		return http.StatusOK, nil
	}

	return -1, fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
