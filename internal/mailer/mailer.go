// Package mailer sends outreach emails through Mailjet.
package mailer

import (
	"errors"
	"fmt"

	mailjet "github.com/mailjet/mailjet-apiv3-go"
)

// ErrNotConfigured means no provider credentials were supplied. Callers
// report it as a configuration problem, distinct from a transport failure.
var ErrNotConfigured = errors.New("email provider not configured")

// EmailSender delivers one email. Implementations confirm delivery: a nil
// return means the provider accepted the message.
type EmailSender interface {
	Send(to, subject, htmlBody string) error
}

type MailjetSender struct {
	publicKey  string
	privateKey string
	sender     string
}

// NewMailjetSender builds a sender from API credentials. Keys may be empty;
// Send then fails with ErrNotConfigured instead of attempting transport.
func NewMailjetSender(publicKey, privateKey, sender string) *MailjetSender {
	return &MailjetSender{publicKey: publicKey, privateKey: privateKey, sender: sender}
}

func (m *MailjetSender) Send(to, subject, htmlBody string) error {
	if m.publicKey == "" || m.privateKey == "" || m.sender == "" {
		return ErrNotConfigured
	}

	clt := mailjet.NewMailjetClient(m.publicKey, m.privateKey)
	msgs := mailjet.MessagesV31{Info: []mailjet.InfoMessagesV31{{
		From:     &mailjet.RecipientV31{Email: m.sender},
		To:       &mailjet.RecipientsV31{mailjet.RecipientV31{Email: to}},
		Subject:  subject,
		HTMLPart: htmlBody,
	}}}

	if _, err := clt.SendMailV31(&msgs); err != nil {
		return fmt.Errorf("could not send mail: %w", err)
	}
	return nil
}
